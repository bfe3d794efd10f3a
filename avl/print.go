// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"bytes"
	"fmt"
	"io"
	"strings"
)

// token written for an absent sub-tree
const nullToken = "NULL"

// to control the print routine
type branch int

const (
	rootBranch  branch = iota
	leftBranch  branch = iota
	rightBranch branch = iota
)

// Dump - write the tree as a single pre-order line of
// "key:value:height" items, "key:value:height:balance" when debug is
// set, with NULL for each missing sub-tree
func (tree *Tree) Dump(w io.Writer, debug bool) error {
	heights := tree.measure()

	buffer := &bytes.Buffer{}
	tree.dump(buffer, tree.root, heights, debug)
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

func (tree *Tree) dump(buffer *bytes.Buffer, h handle, heights []int, debug bool) {
	if buffer.Len() > 0 {
		buffer.WriteByte(' ')
	}
	if null == h {
		buffer.WriteString(nullToken)
		return
	}

	p := &tree.nodes[h]
	if debug {
		fmt.Fprintf(buffer, "%d:%v:%d:%d", p.key, p.value, heights[h], p.balance)
	} else {
		fmt.Fprintf(buffer, "%d:%v:%d", p.key, p.value, heights[h])
	}
	tree.dump(buffer, p.left, heights, debug)
	tree.dump(buffer, p.right, heights, debug)
}

// heights of every sub-tree measured from scratch, indexed by handle
func (tree *Tree) measure() []int {
	heights := make([]int, len(tree.nodes))
	tree.measureFrom(tree.root, heights)
	return heights
}

func (tree *Tree) measureFrom(h handle, heights []int) int {
	if null == h {
		return 0
	}
	l := tree.measureFrom(tree.nodes[h].left, heights)
	r := tree.measureFrom(tree.nodes[h].right, heights)
	heights[h] = 1 + maxInt(l, r)
	return heights[h]
}

// Print - display an ASCII graphic representation of the tree
// returns the maximum depth of the tree
func (tree *Tree) Print(w io.Writer, printData bool) int {
	return tree.printTree(w, tree.root, "", rootBranch, printData)
}

// internal print - returns the maximum depth of the tree
func (tree *Tree) printTree(w io.Writer, h handle, prefix string, br branch, printData bool) int {
	if null == h {
		return 0
	}
	p := &tree.nodes[h]

	rd := 0
	ld := 0
	if null != p.right {
		t := "       "
		if leftBranch == br {
			t = "|      "
		}
		rd = tree.printTree(w, p.right, prefix+t, rightBranch, printData)
	}
	switch br {
	case rootBranch:
		fmt.Fprintf(w, "%s|------+ ", prefix)
	case leftBranch:
		fmt.Fprintf(w, "%s\\------+ ", prefix)
	case rightBranch:
		fmt.Fprintf(w, "%s/------+ ", prefix)
	}
	up := interface{}(nil)
	if null != p.up {
		up = tree.nodes[p.up].key
	}
	if printData {
		fmt.Fprintf(w, "%d → %q ^%v %+2d\n", p.key, fmt.Sprint(p.value), up, p.balance)
	} else {
		fmt.Fprintf(w, "%d ^%v\n", p.key, up)
	}
	if null != p.left {
		t := "       "
		if rightBranch == br {
			t = "|      "
		}
		ld = tree.printTree(w, p.left, prefix+t, leftBranch, printData)
	}
	if rd > ld {
		return 1 + rd
	}
	return 1 + ld
}
