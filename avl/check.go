// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avltree/fault"
)

// Check - verify the tree against a from-scratch walk: parent links,
// key order, cached balance against measured heights, the AVL height
// rule and the node count
func (tree *Tree) Check() error {
	c := checker{
		tree:  tree,
		limit: len(tree.nodes),
	}
	if _, err := c.visit(tree.root, null); nil != err {
		return err
	}
	if c.count != tree.count {
		return fault.ErrCountMismatch
	}
	return nil
}

// state for one consistency check
type checker struct {
	tree     *Tree
	limit    int // more visits than arena slots means a cycle
	count    int
	previous int
	started  bool
}

// internal: in-order consistency checker, returns the height of the
// sub-tree
func (c *checker) visit(h handle, up handle) (int, error) {
	if null == h {
		return 0, nil
	}
	c.count += 1
	if c.count > c.limit {
		return 0, fault.ErrCountMismatch
	}

	p := &c.tree.nodes[h]
	if p.up != up {
		return 0, fault.ErrParentMismatch
	}

	lh, err := c.visit(p.left, h)
	if nil != err {
		return 0, err
	}

	// duplicates may be rotated to either side, so equal is allowed
	if c.started && c.previous > p.key {
		return 0, fault.ErrKeyOrder
	}
	c.previous = p.key
	c.started = true

	rh, err := c.visit(p.right, h)
	if nil != err {
		return 0, err
	}

	d := rh - lh
	if d < -1 || d > 1 {
		return 0, fault.ErrUnbalanced
	}
	if d != p.balance {
		return 0, fault.ErrBalanceMismatch
	}
	return 1 + maxInt(lh, rh), nil
}
