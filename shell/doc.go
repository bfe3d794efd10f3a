// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package shell - line oriented command interpreter driving an AVL
// tree
//
// Input is a stream of whitespace separated words, so a command and
// its arguments may be split across lines:
//
//	insert KEY VALUE   (or: i)   add a node
//	ii KEY                       add a node whose value is the key
//	remove KEY         (or: r)   remove a node, absent keys are ignored
//	find KEY           (or: f)   print the value or NULL
//	show               (or: s)   print the pre-order dump
//	check              (or: c)   validate the tree, print ok or the error
//	exit               (or: q)   stop reading
//
// Each command runs with the shell locked, so statistics can be read
// from another goroutine while a script is running.
package shell
