// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Insert - insert a new node into the tree
//
// an equal key goes to the right of the existing one, so both are
// kept.  Returns fault.ErrTreeFull if the node limit is reached, the
// tree is then unchanged
func (tree *Tree) Insert(key int, value interface{}) error {
	up := null
	toRight := false
	for h := tree.root; null != h; {
		up = h
		p := &tree.nodes[h]
		if p.key > key {
			h = p.left
			toRight = false
		} else {
			h = p.right
			toRight = true
		}
	}

	h, err := tree.newNode(key, value, up)
	if nil != err {
		return err
	}

	switch {
	case null == up:
		tree.root = h
	case toRight:
		tree.nodes[up].right = h
	default:
		tree.nodes[up].left = h
	}
	tree.count += 1
	tree.stats.Insertions += 1

	tree.retraceInsert(h)
	return nil
}
