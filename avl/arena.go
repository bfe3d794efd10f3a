// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"math"

	"github.com/bitmark-inc/avltree/fault"
)

// index of a node in the arena of its tree
type handle uint32

// the empty handle, slot zero of the arena is never used for data
const null handle = 0

const (
	initialArenaSize = 16
	maximumHandle    = math.MaxUint32
)

// a node in the tree
type node struct {
	left    handle      // left sub-tree
	right   handle      // right sub-tree
	up      handle      // points to parent node, free list link when released
	key     int         // key part for ordering
	value   interface{} // value part for data storage
	balance int         // -1, 0, +1
}

// allocate a new node, reuses released nodes if any are available
func (tree *Tree) newNode(key int, value interface{}, up handle) (handle, error) {
	if tree.maximum > 0 && tree.count >= tree.maximum {
		return null, fault.ErrTreeFull
	}

	if null != tree.pool {
		h := tree.pool
		p := &tree.nodes[h]
		tree.pool = p.up
		*p = node{
			up:    up,
			key:   key,
			value: value,
		}
		return h, nil
	}

	if 0 == len(tree.nodes) {
		tree.nodes = make([]node, 1, initialArenaSize)
	}
	if uint64(len(tree.nodes)) > maximumHandle {
		return null, fault.ErrTreeFull
	}
	tree.nodes = append(tree.nodes, node{
		up:    up,
		key:   key,
		value: value,
	})
	return handle(len(tree.nodes) - 1), nil
}

// reclaim a node and keep it in the pool, drops the value
func (tree *Tree) freeNode(h handle) {
	tree.nodes[h] = node{
		up: tree.pool, // use as free list pointer
	}
	tree.pool = h
}

// reattach a sub-tree to whatever pointed at its old top
func (tree *Tree) replaceChild(up handle, old handle, replacement handle) {
	switch {
	case null == up:
		tree.root = replacement
	case old == tree.nodes[up].left:
		tree.nodes[up].left = replacement
	default:
		tree.nodes[up].right = replacement
	}
}

// lowest node in a sub-tree
func (tree *Tree) first(h handle) handle {
	for null != tree.nodes[h].left {
		h = tree.nodes[h].left
	}
	return h
}

func maxInt(a int, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a int, b int) int {
	if a < b {
		return a
	}
	return b
}
