// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package background - run a group of long lived goroutines that all
// stop together
package background

import (
	"sync"
)

// Process - a background task, Run must return soon after shutdown
// is closed
type Process interface {
	Run(args interface{}, shutdown <-chan struct{})
}

// Processes - list of processes to start
type Processes []Process

// T - handle for a running group
type T struct {
	shutdown chan struct{}
	once     sync.Once
	wg       sync.WaitGroup
}

// Start - run each process on its own goroutine, all receive the
// same args
func Start(processes Processes, args interface{}) *T {
	t := &T{
		shutdown: make(chan struct{}),
	}

	for _, p := range processes {
		t.wg.Add(1)
		go func(p Process) {
			defer t.wg.Done()
			p.Run(args, t.shutdown)
		}(p)
	}
	return t
}

// Stop - signal every process and wait for all of them to return,
// safe to call more than once
func (t *T) Stop() {
	t.once.Do(func() {
		close(t.shutdown)
	})
	t.wg.Wait()
}
