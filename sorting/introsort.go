// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package sorting

import (
	"math/bits"
)

// below this length a section is finished by insertion sort
const introsortThreshold = 16

// Introsort - quicksort that switches to heap sort when the
// recursion gets deeper than 2·log2(n) and to insertion sort for
// short sections
func Introsort(array []int64, stats *Statistics) {
	*stats = Statistics{}
	if len(array) < 2 {
		return
	}
	depth := 2 * (bits.Len(uint(len(array))) - 1)
	introsort(array, depth, stats)
}

func introsort(array []int64, depth int, stats *Statistics) {
	for {
		switch {
		case len(array) < introsortThreshold:
			insertionSort(array, stats)
			return
		case 0 == depth:
			heapSort(array, stats)
			return
		}
		depth -= 1

		p := partition(array, 0, len(array)-1, stats)
		introsort(array[:p], depth, stats)
		array = array[p+1:]
	}
}

func heapSort(array []int64, stats *Statistics) {
	for i := len(array)/2 - 1; i >= 0; i -= 1 {
		siftDown(array, i, len(array), stats)
	}
	for n := len(array) - 1; n > 0; n -= 1 {
		stats.swap(array, 0, n)
		siftDown(array, 0, n, stats)
	}
}

// restore the max-heap property below index i of array[:n]
func siftDown(array []int64, i int, n int, stats *Statistics) {
	for {
		largest := i
		if l := 2*i + 1; l < n {
			stats.Comparisons += 1
			if array[l] > array[largest] {
				largest = l
			}
		}
		if r := 2*i + 2; r < n {
			stats.Comparisons += 1
			if array[r] > array[largest] {
				largest = r
			}
		}
		if largest == i {
			return
		}
		stats.swap(array, i, largest)
		i = largest
	}
}
