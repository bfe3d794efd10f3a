// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package sorting

// Quicksort - Lomuto partition around the last element
func Quicksort(array []int64, stats *Statistics) {
	*stats = Statistics{}
	quicksort(array, 0, len(array)-1, stats)
}

func quicksort(array []int64, lo int, hi int, stats *Statistics) {
	for lo < hi {
		p := partition(array, lo, hi, stats)

		// recurse into the smaller side to bound the stack
		if p-lo < hi-p {
			quicksort(array, lo, p-1, stats)
			lo = p + 1
		} else {
			quicksort(array, p+1, hi, stats)
			hi = p - 1
		}
	}
}

// returns the final position of the pivot
func partition(array []int64, lo int, hi int, stats *Statistics) int {
	pivot := array[hi]
	i := lo - 1
	for j := lo; j < hi; j += 1 {
		stats.Comparisons += 1
		if array[j] <= pivot {
			i += 1
			stats.swap(array, i, j)
		}
	}
	stats.swap(array, i+1, hi)
	return i + 1
}

// Quicksort3Way - Dijkstra partition into less, equal and greater
// than the first element, equal runs are never visited again
func Quicksort3Way(array []int64, stats *Statistics) {
	*stats = Statistics{}
	quicksort3Way(array, 0, len(array)-1, stats)
}

func quicksort3Way(array []int64, lo int, hi int, stats *Statistics) {
	if lo >= hi {
		return
	}
	pivot := array[lo]
	lt, i, gt := lo, lo+1, hi
	for i <= gt {
		stats.Comparisons += 1
		if array[i] < pivot {
			stats.swap(array, lt, i)
			lt += 1
			i += 1
			continue
		}
		stats.Comparisons += 1
		if array[i] > pivot {
			stats.swap(array, i, gt)
			gt -= 1
		} else {
			i += 1
		}
	}
	quicksort3Way(array, lo, lt-1, stats)
	quicksort3Way(array, gt+1, hi, stats)
}
