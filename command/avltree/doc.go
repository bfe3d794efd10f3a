// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Interactive AVL tree program
//
// Reads insert, remove, find, show and check commands from standard
// input, or from each script file named on the command line, and
// applies them to a single tree.  Tree statistics are logged
// periodically while it runs.
package main
