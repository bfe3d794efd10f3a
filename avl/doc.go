// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package avl - an AVL balanced tree of integer keys with the
// addition of parent links so that rebalancing can walk upwards from
// the point of change instead of recursing from the root
//
// Nodes are held in a per-tree arena and refer to each other by
// handle, released nodes are kept on a free list and reused.
//
// Note: an individual tree is not thread safe, so either access only
// in a single go routine or use mutex/rwmutex to restrict access for
// the whole of each operation.
//
// Equal keys are inserted to the right of an existing key, so
// duplicates can coexist; Find and Remove act on the match nearest
// to the root.
package avl
