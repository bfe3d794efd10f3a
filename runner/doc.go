// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package runner - benchmark a list of sorting algorithms over a
// range of array lengths
//
// For each algorithm the random source is reseeded so every
// algorithm sorts the same arrays.  Each array length is tested a
// fixed number of times; every test is checked, timed and published,
// then the average of the tests for that length is published.
package runner
