// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avltree/fault"
)

// single RR rotation, returns the new top of the sub-tree
//
//	  p               r
//	 / \             / \
//	a   r    →      p   c
//	   / \         / \
//	  b   c       a   b
//
// the balance of p and r are corrected for any starting values, so
// the same code serves insert, delete and the double rotations
func (tree *Tree) rotateLeft(h handle) handle {
	p := &tree.nodes[h]
	rh := p.right
	if null == rh {
		fault.Panicf("avl: rotate left: node: %d has no right sub-tree", p.key)
	}
	r := &tree.nodes[rh]

	p.right = r.left
	if null != p.right {
		tree.nodes[p.right].up = h
	}
	tree.replaceChild(p.up, h, rh)
	r.up = p.up
	r.left = h
	p.up = rh

	p.balance = p.balance - 1 - maxInt(r.balance, 0)
	r.balance = r.balance - 1 + minInt(p.balance, 0)

	return rh
}

// single LL rotation, mirror image of rotateLeft
//
//	    p           l
//	   / \         / \
//	  l   c   →   a   p
//	 / \             / \
//	a   b           b   c
func (tree *Tree) rotateRight(h handle) handle {
	p := &tree.nodes[h]
	lh := p.left
	if null == lh {
		fault.Panicf("avl: rotate right: node: %d has no left sub-tree", p.key)
	}
	l := &tree.nodes[lh]

	p.left = l.right
	if null != p.left {
		tree.nodes[p.left].up = h
	}
	tree.replaceChild(p.up, h, lh)
	l.up = p.up
	l.right = h
	p.up = lh

	p.balance = p.balance + 1 - minInt(l.balance, 0)
	l.balance = l.balance + 1 + maxInt(p.balance, 0)

	return lh
}

// double LR rotation: for a left sub-tree that is right heavy
func (tree *Tree) rotateLeftRight(h handle) handle {
	lh := tree.nodes[h].left
	if null == lh {
		fault.Panicf("avl: rotate left-right: node: %d has no left sub-tree", tree.nodes[h].key)
	}
	tree.rotateLeft(lh)
	return tree.rotateRight(h)
}

// double RL rotation: for a right sub-tree that is left heavy
func (tree *Tree) rotateRightLeft(h handle) handle {
	rh := tree.nodes[h].right
	if null == rh {
		fault.Panicf("avl: rotate right-left: node: %d has no right sub-tree", tree.nodes[h].key)
	}
	tree.rotateRight(rh)
	return tree.rotateLeft(h)
}
