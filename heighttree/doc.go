// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package heighttree - AVL tree that stores the height of each node
// and recomputes it on the way back out of a recursive insert or
// remove, rebalancing every node on the path
//
// Kept alongside package avl as a reference: given the same
// sequence of operations on distinct keys both produce the same
// tree shape, which the dump formats make easy to compare.
package heighttree
