// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package background_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/avltree/background"
	"github.com/bitmark-inc/avltree/counter"
)

type ticker struct {
	ticks   counter.Counter
	stopped bool
	args    interface{}
}

func (state *ticker) Run(args interface{}, shutdown <-chan struct{}) {
	state.args = args
loop:
	for {
		select {
		case <-shutdown:
			break loop
		case <-time.After(time.Millisecond):
			state.ticks.Increment()
		}
	}
	state.stopped = true
}

func TestStartStop(t *testing.T) {
	proc1 := &ticker{}
	proc2 := &ticker{}

	p := background.Start(background.Processes{proc1, proc2}, "shared")
	time.Sleep(50 * time.Millisecond)
	p.Stop()

	for i, proc := range []*ticker{proc1, proc2} {
		assert.True(t, proc.stopped, "process: %d did not finish", i)
		assert.False(t, proc.ticks.IsZero(), "process: %d never ran", i)
		assert.Equal(t, "shared", proc.args, "process: %d args", i)
	}

	// a second stop must not panic on the closed channel
	p.Stop()
}

func TestNoProcesses(t *testing.T) {
	p := background.Start(nil, nil)
	p.Stop()
}
