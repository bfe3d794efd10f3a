// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package runner

import (
	"math"
	"strings"

	"github.com/bitmark-inc/avltree/fault"
)

// Scale - the sequence of array lengths to test
type Scale interface {
	Counts() []int
}

// Linear - start, start+step, … up to and including limit
type Linear struct {
	Start int
	Step  int
	Limit int
}

// Geometric - count lengths from start to limit with a constant ratio
type Geometric struct {
	Start int
	Limit int
	Count int
}

// NewScale - build a scale from configuration values, step is only
// used by linear and count only by geometric
func NewScale(kind string, start int, step int, limit int, count int) (Scale, error) {
	switch strings.ToLower(kind) {
	case "linear":
		return Linear{Start: start, Step: step, Limit: limit}, nil
	case "geometric":
		return Geometric{Start: start, Limit: limit, Count: count}, nil
	default:
		return nil, fault.ErrUnknownScale
	}
}

// Counts - lengths in increasing order, empty if the scale is invalid
func (l Linear) Counts() []int {
	if l.Start < 1 || l.Step < 1 || l.Limit < l.Start {
		return nil
	}
	counts := make([]int, 0, (l.Limit-l.Start)/l.Step+1)
	for n := l.Start; n <= l.Limit; n += l.Step {
		counts = append(counts, n)
	}
	return counts
}

// Counts - lengths in non-decreasing order, neighbouring values may
// repeat when the ratio is close to one
func (g Geometric) Counts() []int {
	if g.Start < 1 || g.Limit < g.Start || g.Count < 1 {
		return nil
	}
	if 1 == g.Count {
		return []int{g.Start}
	}
	a := float64(g.Start)
	b := math.Pow(float64(g.Limit)/a, 1/float64(g.Count-1))

	counts := make([]int, g.Count)
	for i := range counts {
		counts[i] = int(math.Round(a * math.Pow(b, float64(i))))
	}
	counts[len(counts)-1] = g.Limit
	return counts
}
