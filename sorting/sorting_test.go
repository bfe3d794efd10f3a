// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package sorting_test

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/avltree/fault"
	"github.com/bitmark-inc/avltree/sorting"
)

func randomArray(r *rand.Rand, n int, minimum int64, maximum int64) []int64 {
	a := make([]int64, n)
	for i := range a {
		a[i] = minimum + r.Int63n(maximum-minimum+1)
	}
	return a
}

func TestAllAlgorithmsSort(t *testing.T) {
	r := rand.New(rand.NewSource(0))

	inputs := [][]int64{
		nil,
		{},
		{5},
		{2, 1},
		{3, 3, 3, 3},
		{-5, 10, -5, 0, 7, 7, -100},
		randomArray(r, 15, -3, 3),
		randomArray(r, 16, -1000, 1000),
		randomArray(r, 1000, 10, 1000000),
		randomArray(r, 3000, 0, 5),
	}
	ascending := make([]int64, 500)
	descending := make([]int64, 500)
	for i := range ascending {
		ascending[i] = int64(i)
		descending[i] = int64(len(descending) - i)
	}
	inputs = append(inputs, ascending, descending)

	for _, name := range sorting.Names() {
		algorithm, err := sorting.Lookup(name)
		assert.Nil(t, err, "lookup: %s", name)

		for i, input := range inputs {
			array := append([]int64(nil), input...)
			expected := append([]int64(nil), input...)
			sort.Slice(expected, func(a, b int) bool { return expected[a] < expected[b] })

			stats := sorting.Statistics{Comparisons: 99, Swaps: 99, BytesAllocated: 99}
			algorithm.Sort(array, &stats)

			assert.True(t, sorting.IsSorted(array), "%s: input: %d not sorted", algorithm.Name, i)
			assert.Equal(t, expected, array, "%s: input: %d", algorithm.Name, i)
			if len(input) < 2 {
				assert.Equal(t, sorting.Statistics{}, stats, "%s: input: %d stats not reset", algorithm.Name, i)
			}
		}
	}
}

func TestInsertionSortCounts(t *testing.T) {
	stats := sorting.Statistics{}

	sorting.InsertionSort([]int64{1, 2, 3, 4}, &stats)
	assert.Equal(t, sorting.Statistics{Comparisons: 3}, stats, "already sorted")

	sorting.InsertionSort([]int64{4, 3, 2, 1}, &stats)
	assert.Equal(t, sorting.Statistics{Comparisons: 6, Swaps: 6}, stats, "reversed")
}

func TestQuicksortCounts(t *testing.T) {
	stats := sorting.Statistics{}

	// pivot 2: one comparison each for 3 and 1, 1 is swapped into
	// place then the pivot
	sorting.Quicksort([]int64{3, 1, 2}, &stats)
	assert.Equal(t, uint64(2), stats.Comparisons, "comparisons")
	assert.Equal(t, uint64(2), stats.Swaps, "swaps")
	assert.Equal(t, uint64(0), stats.BytesAllocated, "in place")
}

func TestQuicksort3WayOnEqualKeys(t *testing.T) {
	array := make([]int64, 100)
	stats := sorting.Statistics{}
	sorting.Quicksort3Way(array, &stats)

	// one pass, each element after the pivot compared twice
	assert.Equal(t, uint64(198), stats.Comparisons, "comparisons")
	assert.Equal(t, uint64(0), stats.Swaps, "swaps")
}

func TestIntrosortAvoidsQuadraticBehaviour(t *testing.T) {
	n := 1 << 14
	array := make([]int64, n)
	for i := range array {
		array[i] = int64(i)
	}

	quick := sorting.Statistics{}
	sorting.Quicksort(append([]int64(nil), array...), &quick)

	intro := sorting.Statistics{}
	sorting.Introsort(array, &intro)

	assert.True(t, sorting.IsSorted(array), "sorted")
	assert.True(t, intro.Comparisons < quick.Comparisons/10, "introsort: %d  quicksort: %d", intro.Comparisons, quick.Comparisons)
}

func TestCountingSortAllocation(t *testing.T) {
	stats := sorting.Statistics{}
	sorting.CountingSort([]int64{10, 12, 11, 10}, &stats)
	assert.Equal(t, uint64(8*(3+4)), stats.BytesAllocated, "counts plus result")
	assert.Equal(t, uint64(0), stats.Swaps, "no swaps")

	assert.Panics(t, func() {
		sorting.CountingSort([]int64{0, sorting.MaximumCountingRange}, &stats)
	}, "range too large")
}

func TestLookup(t *testing.T) {
	a, err := sorting.Lookup("QuickSort")
	assert.Nil(t, err, "mixed case")
	assert.Equal(t, "Quicksort", a.Name, "name")

	_, err = sorting.Lookup("bogosort")
	assert.Equal(t, fault.ErrUnknownAlgorithm, err, "unknown")

	assert.Equal(t, []string{"countingsort", "insertion", "introsort", "quicksort", "quicksort3way"}, sorting.Names(), "names")
}

func TestIsSorted(t *testing.T) {
	assert.True(t, sorting.IsSorted(nil), "nil")
	assert.True(t, sorting.IsSorted([]int64{1, 1, 2}), "non-decreasing")
	assert.False(t, sorting.IsSorted([]int64{1, 3, 2}), "out of order")
}
