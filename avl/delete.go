// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Remove - removes a specific item from the tree, returning its value
//
// removing an absent key does nothing and returns false
func (tree *Tree) Remove(key int) (interface{}, bool) {
	h := tree.search(key)
	if null == h {
		return nil, false
	}
	value := tree.nodes[h].value

	tree.removeNode(h)
	tree.count -= 1
	tree.stats.Removals += 1

	return value, true
}

// unlink a node and return it to the pool
func (tree *Tree) removeNode(h handle) {
	q := &tree.nodes[h]

	if null != q.left && null != q.right {
		// the successor has no left sub-tree, so it is removed by
		// one of the simple cases below; its content then moves
		// into q which keeps its own links
		s := tree.first(q.right)
		key := tree.nodes[s].key
		value := tree.nodes[s].value

		tree.removeNode(s)

		// balance stays: retracing already fixed it for q's position
		q.key = key
		q.value = value
		return
	}

	child := q.left
	if null == child {
		child = q.right
	}
	up := q.up
	leftShrunk := false
	if null != up {
		leftShrunk = h == tree.nodes[up].left
	}

	if null != child {
		tree.nodes[child].up = up
	}
	tree.replaceChild(up, h, child)
	tree.freeNode(h)

	tree.retraceRemove(up, leftShrunk)
}
