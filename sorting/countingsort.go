// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package sorting

import (
	"github.com/bitmark-inc/avltree/fault"
)

// MaximumCountingRange - largest (maximum - minimum + 1) that
// CountingSort will allocate counts for
const MaximumCountingRange = 1 << 24

// size of one count or element in bytes
const wordSize = 8

// CountingSort - stable counting sort over the range of values
// present, only the min/max scan compares elements
func CountingSort(array []int64, stats *Statistics) {
	*stats = Statistics{}
	if len(array) < 2 {
		return
	}

	minimum, maximum := array[0], array[0]
	for _, v := range array[1:] {
		stats.Comparisons += 1
		if v < minimum {
			minimum = v
			continue
		}
		stats.Comparisons += 1
		if v > maximum {
			maximum = v
		}
	}

	span := uint64(maximum-minimum) + 1
	if maximum-minimum < 0 || span > MaximumCountingRange {
		fault.Panicf("sorting: counting sort: value range: [%d, %d] too large", minimum, maximum)
	}

	counts := make([]uint64, span)
	result := make([]int64, len(array))
	stats.BytesAllocated = wordSize * (span + uint64(len(result)))

	for _, v := range array {
		counts[v-minimum] += 1
	}
	for i := 1; i < len(counts); i += 1 {
		counts[i] += counts[i-1]
	}
	for i := len(array) - 1; i >= 0; i -= 1 {
		k := array[i] - minimum
		counts[k] -= 1
		result[counts[k]] = array[i]
	}
	copy(array, result)
}
