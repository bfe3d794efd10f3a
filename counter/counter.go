// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package counter - event counts that may be updated by one goroutine
// while another reads them
package counter

import (
	"sync/atomic"
)

// Counter - a 64 bit unsigned event count, the zero value is ready
// to use
type Counter uint64

// Increment - count one event, returns the new total
func (c *Counter) Increment() uint64 {
	return atomic.AddUint64((*uint64)(c), 1)
}

// Uint64 - current total
func (c *Counter) Uint64() uint64 {
	return atomic.LoadUint64((*uint64)(c))
}

// IsZero - true if nothing has been counted
func (c *Counter) IsZero() bool {
	return 0 == c.Uint64()
}
