// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package sorting

import (
	"sort"
	"strings"

	"github.com/bitmark-inc/avltree/fault"
)

// Statistics - work done by one call of an algorithm
type Statistics struct {
	Comparisons    uint64
	Swaps          uint64
	BytesAllocated uint64
}

// Function - sorts array in place filling in stats
type Function func(array []int64, stats *Statistics)

// Algorithm - a sort and the name used in reports
type Algorithm struct {
	Name         string
	Sort         Function
	MaximumRange uint64 // largest value span accepted, 0 => any
}

// configuration names, lower case
var algorithms = map[string]Algorithm{
	"insertion":     {Name: "Insertion sort", Sort: InsertionSort},
	"quicksort":     {Name: "Quicksort", Sort: Quicksort},
	"quicksort3way": {Name: "Quicksort 3-way", Sort: Quicksort3Way},
	"introsort":     {Name: "Intro sort", Sort: Introsort},
	"countingsort":  {Name: "Counting sort", Sort: CountingSort, MaximumRange: MaximumCountingRange},
}

// Lookup - find an algorithm by its configuration name
func Lookup(name string) (Algorithm, error) {
	a, ok := algorithms[strings.ToLower(name)]
	if !ok {
		return Algorithm{}, fault.ErrUnknownAlgorithm
	}
	return a, nil
}

// Names - every configuration name in order
func Names() []string {
	names := make([]string, 0, len(algorithms))
	for name := range algorithms {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsSorted - true if the array is in non-decreasing order
func IsSorted(array []int64) bool {
	for i := 1; i < len(array); i += 1 {
		if array[i-1] > array[i] {
			return false
		}
	}
	return true
}

func (stats *Statistics) swap(array []int64, i int, j int) {
	array[i], array[j] = array[j], array[i]
	stats.Swaps += 1
}
