// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package sorting

// InsertionSort - each element shifted left past the larger ones,
// a shift counts as a swap
func InsertionSort(array []int64, stats *Statistics) {
	*stats = Statistics{}
	insertionSort(array, stats)
}

func insertionSort(array []int64, stats *Statistics) {
	for i := 1; i < len(array); i += 1 {
		key := array[i]
		j := i - 1
		for ; j >= 0; j -= 1 {
			stats.Comparisons += 1
			if array[j] <= key {
				break
			}
			array[j+1] = array[j]
			stats.Swaps += 1
		}
		array[j+1] = key
	}
}
