// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package runner

import (
	"context"
	"math"
	"math/rand"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltree/fault"
	"github.com/bitmark-inc/avltree/sorting"
)

// Descriptor - what to run
type Descriptor struct {
	Algorithms   []sorting.Algorithm
	Scale        Scale
	RunsPerTest  int
	Seed         int64
	MinimumValue int64 // array elements are uniform in
	MaximumValue int64 // [MinimumValue, MaximumValue]
}

// Runner - a validated descriptor and where its results go
type Runner struct {
	log        *logger.L
	descriptor Descriptor
	counts     []int
	publisher  Publisher
}

// New - validate the descriptor and create a runner
func New(log *logger.L, descriptor Descriptor, publisher Publisher) (*Runner, error) {
	if descriptor.RunsPerTest < 1 {
		return nil, fault.ErrInvalidRunsPerTest
	}
	if 0 == len(descriptor.Algorithms) {
		return nil, fault.ErrNoAlgorithms
	}
	for _, a := range descriptor.Algorithms {
		if "" == a.Name || nil == a.Sort {
			return nil, fault.ErrUnknownAlgorithm
		}
	}
	if nil == descriptor.Scale {
		return nil, fault.ErrInvalidScale
	}
	counts := descriptor.Scale.Counts()
	if 0 == len(counts) {
		return nil, fault.ErrInvalidScale
	}

	if descriptor.MinimumValue > descriptor.MaximumValue {
		return nil, fault.ErrInvalidValueRange
	}
	span := descriptor.MaximumValue - descriptor.MinimumValue
	if span < 0 || math.MaxInt64 == span {
		return nil, fault.ErrInvalidValueRange
	}
	for _, a := range descriptor.Algorithms {
		if 0 != a.MaximumRange && uint64(span)+1 > a.MaximumRange {
			log.Errorf("%s: value range: %d exceeds: %d", a.Name, span+1, a.MaximumRange)
			return nil, fault.ErrInvalidValueRange
		}
	}

	return &Runner{
		log:        log,
		descriptor: descriptor,
		counts:     counts,
		publisher:  publisher,
	}, nil
}

// Run - test every algorithm in turn, stops at the first error or
// when the context is cancelled
func (r *Runner) Run(ctx context.Context) error {
	for _, a := range r.descriptor.Algorithms {
		r.log.Infof("testing algorithm: %s", a.Name)
		if err := r.publisher.Algorithm(a.Name); nil != err {
			return err
		}
		if err := r.testAlgorithm(ctx, a); nil != err {
			r.log.Errorf("%s: error: %s", a.Name, err)
			return err
		}
		if err := r.publisher.Flush(); nil != err {
			return err
		}
	}
	return nil
}

func (r *Runner) testAlgorithm(ctx context.Context, a sorting.Algorithm) error {
	random := rand.New(rand.NewSource(r.descriptor.Seed))

	for _, n := range r.counts {
		array := make([]int64, n)
		average := Result{
			ElementCount: n,
		}

		for run := 0; run < r.descriptor.RunsPerTest; run += 1 {
			if err := ctx.Err(); nil != err {
				return err
			}

			r.populate(random, array)
			result, err := measure(a, array)
			if nil != err {
				return err
			}
			result.ElementCount = n
			result.Run = run
			if err := r.publisher.Single(result); nil != err {
				return err
			}

			average.Nanoseconds += result.Nanoseconds
			average.Comparisons += result.Comparisons
			average.Swaps += result.Swaps
			average.BytesAllocated += result.BytesAllocated
		}

		runs := uint64(r.descriptor.RunsPerTest)
		average.Nanoseconds /= runs
		average.Comparisons /= runs
		average.Swaps /= runs
		average.BytesAllocated /= runs

		r.log.Debugf("%s: count: %d  average: %d ns  comparisons: %d  swaps: %d  bytes: %d",
			a.Name, n, average.Nanoseconds, average.Comparisons, average.Swaps, average.BytesAllocated)

		if err := r.publisher.Average(average); nil != err {
			return err
		}
	}
	return nil
}

func (r *Runner) populate(random *rand.Rand, array []int64) {
	span := r.descriptor.MaximumValue - r.descriptor.MinimumValue + 1
	for i := range array {
		array[i] = r.descriptor.MinimumValue + random.Int63n(span)
	}
}

// sort one array and check the result
func measure(a sorting.Algorithm, array []int64) (Result, error) {
	result := Result{}

	start := time.Now()
	a.Sort(array, &result.Statistics)
	result.Nanoseconds = uint64(time.Since(start).Nanoseconds())

	if !sorting.IsSorted(array) {
		return Result{}, fault.ErrNotSorted
	}
	return result, nil
}
