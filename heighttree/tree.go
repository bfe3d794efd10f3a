// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package heighttree

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/bitmark-inc/avltree/fault"
)

type node struct {
	left   *node
	right  *node
	key    int
	value  interface{}
	height int // leaf is 1
}

// Tree - root of a height tree
type Tree struct {
	root  *node
	count int
}

// New - create an empty tree
func New() *Tree {
	return &Tree{}
}

// IsEmpty - true if tree contains no data
func (tree *Tree) IsEmpty() bool {
	return nil == tree.root
}

// Count - number of nodes in the tree
func (tree *Tree) Count() int {
	return tree.count
}

// Height - the stored height of the root
func (tree *Tree) Height() int {
	return height(tree.root)
}

func height(p *node) int {
	if nil == p {
		return 0
	}
	return p.height
}

// right height minus left height, the same sign as package avl
func balance(p *node) int {
	return height(p.right) - height(p.left)
}

func (p *node) update() {
	l := height(p.left)
	r := height(p.right)
	if l > r {
		p.height = l + 1
	} else {
		p.height = r + 1
	}
}

func rotateLeft(p *node) *node {
	r := p.right
	if nil == r {
		fault.Panicf("heighttree: rotate left: node: %d has no right sub-tree", p.key)
	}
	p.right = r.left
	r.left = p
	p.update()
	r.update()
	return r
}

func rotateRight(p *node) *node {
	l := p.left
	if nil == l {
		fault.Panicf("heighttree: rotate right: node: %d has no left sub-tree", p.key)
	}
	p.left = l.right
	l.right = p
	p.update()
	l.update()
	return l
}

// recompute the height and rotate if either side is too tall
func rebalance(p *node) *node {
	p.update()
	switch b := balance(p); {
	case b < -1:
		if balance(p.left) > 0 {
			p.left = rotateLeft(p.left)
		}
		return rotateRight(p)
	case b > 1:
		if balance(p.right) < 0 {
			p.right = rotateRight(p.right)
		}
		return rotateLeft(p)
	}
	return p
}

// Insert - add a key, equal keys go to the right
func (tree *Tree) Insert(key int, value interface{}) {
	tree.root = insert(tree.root, key, value)
	tree.count += 1
}

func insert(p *node, key int, value interface{}) *node {
	if nil == p {
		return &node{
			key:    key,
			value:  value,
			height: 1,
		}
	}
	if key < p.key {
		p.left = insert(p.left, key, value)
	} else {
		p.right = insert(p.right, key, value)
	}
	return rebalance(p)
}

// Find - value of the matching node nearest the root
func (tree *Tree) Find(key int) (interface{}, bool) {
	p := tree.root
	for nil != p {
		switch {
		case key < p.key:
			p = p.left
		case key > p.key:
			p = p.right
		default:
			return p.value, true
		}
	}
	return nil, false
}

// Remove - delete the matching node nearest the root
func (tree *Tree) Remove(key int) (interface{}, bool) {
	root, removed := remove(tree.root, key)
	if nil == removed {
		return nil, false
	}
	tree.root = root
	tree.count -= 1
	return removed.value, true
}

// returns the new sub-tree top and the detached node
func remove(p *node, key int) (*node, *node) {
	if nil == p {
		return nil, nil
	}

	var removed *node
	switch {
	case key < p.key:
		p.left, removed = remove(p.left, key)
	case key > p.key:
		p.right, removed = remove(p.right, key)
	case nil == p.left:
		return p.right, p
	case nil == p.right:
		return p.left, p
	default:
		var successor *node
		p.right, successor = removeFirst(p.right)
		removed = &node{
			key:   p.key,
			value: p.value,
		}
		p.key = successor.key
		p.value = successor.value
	}
	if nil == removed {
		return p, nil
	}
	return rebalance(p), removed
}

func removeFirst(p *node) (*node, *node) {
	if nil == p.left {
		return p.right, p
	}
	var first *node
	p.left, first = removeFirst(p.left)
	return rebalance(p), first
}

// Destroy - drop every node
func (tree *Tree) Destroy() {
	tree.root = nil
	tree.count = 0
}

// Dump - pre-order "key:value:height" items with NULL for a missing
// sub-tree, debug adds the balance
func (tree *Tree) Dump(w io.Writer, debug bool) error {
	buffer := &bytes.Buffer{}
	dump(buffer, tree.root, debug)
	buffer.WriteByte('\n')
	_, err := w.Write(buffer.Bytes())
	return err
}

// String - the non-debug dump
func (tree *Tree) String() string {
	buffer := &bytes.Buffer{}
	tree.Dump(buffer, false)
	return strings.TrimSuffix(buffer.String(), "\n")
}

func dump(buffer *bytes.Buffer, p *node, debug bool) {
	if buffer.Len() > 0 {
		buffer.WriteByte(' ')
	}
	if nil == p {
		buffer.WriteString("NULL")
		return
	}
	if debug {
		fmt.Fprintf(buffer, "%d:%v:%d:%d", p.key, p.value, p.height, balance(p))
	} else {
		fmt.Fprintf(buffer, "%d:%v:%d", p.key, p.value, p.height)
	}
	dump(buffer, p.left, debug)
	dump(buffer, p.right, debug)
}
