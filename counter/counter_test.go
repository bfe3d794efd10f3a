// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package counter_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/avltree/counter"
)

func TestCounter(t *testing.T) {
	var c counter.Counter

	assert.True(t, c.IsZero(), "zero value")

	for i := 1; i <= 5; i += 1 {
		assert.Equal(t, uint64(i), c.Increment(), "increment: %d", i)
	}
	assert.Equal(t, uint64(5), c.Uint64(), "total")
	assert.False(t, c.IsZero(), "not zero")
}

func TestConcurrentIncrement(t *testing.T) {
	var c counter.Counter

	wg := sync.WaitGroup{}
	for i := 0; i < 8; i += 1 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 1000; j += 1 {
				c.Increment()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, uint64(8000), c.Uint64(), "total")
}
