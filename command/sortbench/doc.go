// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Sorting benchmark program
//
// Runs the configured sorting algorithms over a range of array
// lengths and writes two CSV files to the data directory: one row per
// test and one row per array length holding the averages.
package main
