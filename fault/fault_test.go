// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/avltree/fault"
)

var (
	ErrExistsOne    = fault.ExistsError("exists one ")
	ErrExistsTwo    = fault.ExistsError("exists two")
	ErrInvalidOne   = fault.InvalidError("invalid one")
	ErrInvalidTwo   = fault.InvalidError("invalid two")
	ErrInvariantOne = fault.InvariantError("invariant one")
	ErrInvariantTwo = fault.InvariantError("invariant two")
	ErrNotFoundOne  = fault.NotFoundError("not found one")
	ErrNotFoundTwo  = fault.NotFoundError("not found two")
	ErrProcessOne   = fault.ProcessError("process one")
	ErrProcessTwo   = fault.ProcessError("process two")
)

// test that the various errors can be subclassed
func TestClasses(t *testing.T) {
	errorList := []struct {
		err       error
		exists    bool
		invalid   bool
		invariant bool
		notFound  bool
		process   bool
	}{
		{ErrExistsOne, true, false, false, false, false},
		{ErrExistsTwo, true, false, false, false, false},
		{ErrInvalidOne, false, true, false, false, false},
		{ErrInvalidTwo, false, true, false, false, false},
		{ErrInvariantOne, false, false, true, false, false},
		{ErrInvariantTwo, false, false, true, false, false},
		{ErrNotFoundOne, false, false, false, true, false},
		{ErrNotFoundTwo, false, false, false, true, false},
		{ErrProcessOne, false, false, false, false, true},
		{ErrProcessTwo, false, false, false, false, true},
		{fault.ErrTreeFull, false, false, false, false, true},
		{fault.ErrUnbalanced, false, false, true, false, false},
	}

	for i, e := range errorList {
		err := e.err
		if fault.IsErrExists(err) != e.exists {
			t.Errorf("%d: expected 'exists' == %v for err = %v", i, e.exists, err)
		}
		if fault.IsErrInvalid(err) != e.invalid {
			t.Errorf("%d: expected 'invalid' == %v for err = %v", i, e.invalid, err)
		}
		if fault.IsErrInvariant(err) != e.invariant {
			t.Errorf("%d: expected 'invariant' == %v for err = %v", i, e.invariant, err)
		}
		if fault.IsErrNotFound(err) != e.notFound {
			t.Errorf("%d: expected 'not found' == %v for err = %v", i, e.notFound, err)
		}
		if fault.IsErrProcess(err) != e.process {
			t.Errorf("%d: expected 'process' == %v for err = %v", i, e.process, err)
		}
	}
}

func TestPanicfWithoutLogger(t *testing.T) {
	assert.PanicsWithValue(t, "rotate: node 7 has no right child", func() {
		fault.Panicf("rotate: node %d has no right child", 7)
	})
}

func TestCriticalfWithoutLogger(t *testing.T) {
	assert.NotPanics(t, func() {
		fault.Criticalf("runner error: %s", fault.ErrNotSorted)
	})
}
