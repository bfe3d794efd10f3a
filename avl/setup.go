// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avltree/fault"
)

// Tree - type to hold the root node of a tree and its node storage
type Tree struct {
	nodes   []node // arena, nodes[0] is the null slot
	pool    handle // linked list of reclaimed nodes
	root    handle
	count   int
	maximum int // 0 => unlimited
	stats   Statistics
}

// Statistics - structural events since the tree was created
type Statistics struct {
	Insertions      uint64
	Removals        uint64
	SingleRotations uint64
	DoubleRotations uint64
}

// New - create an initially empty tree
func New() *Tree {
	return &Tree{
		nodes: make([]node, 1, initialArenaSize),
	}
}

// NewLimited - create an initially empty tree that refuses to hold
// more than maximumNodes nodes, zero means no limit
func NewLimited(maximumNodes int) (*Tree, error) {
	if maximumNodes < 0 {
		return nil, fault.ErrInvalidMaximumNodes
	}
	tree := New()
	tree.maximum = maximumNodes
	return tree, nil
}

// IsEmpty - true if tree contains no data
func (tree *Tree) IsEmpty() bool {
	return null == tree.root
}

// Count - number of nodes currently in the tree
func (tree *Tree) Count() int {
	return tree.count
}

// Height - number of nodes on the longest path from the root, found
// by following the taller side as recorded in the balance factors
func (tree *Tree) Height() int {
	height := 0
	for h := tree.root; null != h; height += 1 {
		if tree.nodes[h].balance < 0 {
			h = tree.nodes[h].left
		} else {
			h = tree.nodes[h].right
		}
	}
	return height
}

// Statistics - return a copy of the event counts
func (tree *Tree) Statistics() Statistics {
	return tree.stats
}

// Destroy - release every node, children before parent, leaving an
// empty tree whose storage can be reused
func (tree *Tree) Destroy() {
	tree.release(tree.root)
	tree.root = null
	tree.count = 0
}

func (tree *Tree) release(h handle) {
	if null == h {
		return
	}
	tree.release(tree.nodes[h].left)
	tree.release(tree.nodes[h].right)
	tree.freeNode(h)
}
