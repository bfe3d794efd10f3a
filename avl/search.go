// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Find - the value stored with a key, false if the key is not present
func (tree *Tree) Find(key int) (interface{}, bool) {
	h := tree.search(key)
	if null == h {
		return nil, false
	}
	return tree.nodes[h].value, true
}

// the matching node nearest to the root
func (tree *Tree) search(key int) handle {
	h := tree.root
	for null != h {
		p := &tree.nodes[h]
		switch {
		case p.key > key:
			h = p.left
		case p.key < key:
			h = p.right
		default:
			return h
		}
	}
	return null
}
