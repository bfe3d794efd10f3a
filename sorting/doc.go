// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package sorting - in-place sorts of int64 slices that count the
// work they do
//
// Every algorithm has the same signature so the benchmark runner can
// treat them alike; the statistics are reset at the start of each
// call.
package sorting
