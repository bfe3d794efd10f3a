// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avltree/fault"
)

// restore a node whose balance has reached ±2 with one single or
// double rotation, returns the new top of the sub-tree
func (tree *Tree) rebalance(h handle) handle {
	p := &tree.nodes[h]
	switch p.balance {
	case +2:
		if tree.nodes[p.right].balance < 0 {
			tree.stats.DoubleRotations += 1
			return tree.rotateRightLeft(h)
		}
		tree.stats.SingleRotations += 1
		return tree.rotateLeft(h)

	case -2:
		if tree.nodes[p.left].balance > 0 {
			tree.stats.DoubleRotations += 1
			return tree.rotateLeftRight(h)
		}
		tree.stats.SingleRotations += 1
		return tree.rotateRight(h)
	}
	fault.Panicf("avl: rebalance: node: %d balance: %d", p.key, p.balance)
	return null
}

// insert: walk up from a new leaf while the sub-tree height grows
//
// stops at the first node that becomes balanced, or after the single
// rotation that restores the height it had before the insert
func (tree *Tree) retraceInsert(h handle) {
	for up := tree.nodes[h].up; null != up; h, up = up, tree.nodes[up].up {
		p := &tree.nodes[up]
		if h == p.left {
			p.balance -= 1
		} else {
			p.balance += 1
		}

		switch p.balance {
		case 0:
			return
		case -1, +1:
			// this sub-tree grew: tell the parent
		case -2, +2:
			tree.rebalance(up)
			return
		default:
			fault.Panicf("avl: insert: node: %d balance: %d", p.key, p.balance)
		}
	}
}

// delete: walk up from the parent of a removed position while the
// sub-tree height shrinks, leftShrunk says which side lost height
//
// unlike insert a rotation does not end the walk, it only does so
// when the rotated sub-tree keeps its height
func (tree *Tree) retraceRemove(h handle, leftShrunk bool) {
	for null != h {
		p := &tree.nodes[h]
		if leftShrunk {
			p.balance += 1
		} else {
			p.balance -= 1
		}

		switch p.balance {
		case -1, +1:
			return // was balanced: height unchanged
		case 0:
			// the taller side shrank
		case -2, +2:
			h = tree.rebalance(h)
			if 0 != tree.nodes[h].balance {
				return
			}
		default:
			fault.Panicf("avl: delete: node: %d balance: %d", p.key, p.balance)
		}

		up := tree.nodes[h].up
		if null != up {
			leftShrunk = h == tree.nodes[up].left
		}
		h = up
	}
}
