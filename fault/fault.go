// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// to allow for different classes of errors
type ExistsError string
type InvalidError string
type InvariantError string
type NotFoundError string
type ProcessError string

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised   = ExistsError("already initialised")
	ErrBalanceMismatch      = InvariantError("cached balance factor does not match subtree heights")
	ErrCountMismatch        = InvariantError("node count does not match tree contents")
	ErrInvalidKey           = InvalidError("key is not a valid integer")
	ErrInvalidLoggerChannel = InvalidError("invalid logger channel")
	ErrInvalidMaximumNodes  = InvalidError("maximum nodes must not be negative")
	ErrInvalidRunsPerTest   = InvalidError("runs per test must be at least one")
	ErrInvalidScale         = InvalidError("element count scale is invalid")
	ErrInvalidStructPointer = InvalidError("configuration must be a pointer to a struct")
	ErrInvalidValueRange    = InvalidError("element value range is invalid")
	ErrKeyOrder             = InvariantError("keys are not in search tree order")
	ErrMissingArgument      = InvalidError("command argument is missing")
	ErrNoAlgorithms         = InvalidError("no algorithms to run")
	ErrNotSorted            = ProcessError("algorithm did not sort the array")
	ErrParentMismatch       = InvariantError("parent link does not match structural parent")
	ErrSameOutputFile       = InvalidError("single test and average outputs must differ")
	ErrTreeFull             = ProcessError("tree node limit reached")
	ErrUnbalanced           = InvariantError("subtree heights differ by more than one")
	ErrUnknownAlgorithm     = NotFoundError("unknown algorithm")
	ErrUnknownCommand       = InvalidError("unknown command")
	ErrUnknownScale         = NotFoundError("unknown element count scale")
)

// the error interface methods
func (e ExistsError) Error() string    { return string(e) }
func (e InvalidError) Error() string   { return string(e) }
func (e InvariantError) Error() string { return string(e) }
func (e NotFoundError) Error() string  { return string(e) }
func (e ProcessError) Error() string   { return string(e) }

// determine the class of an error
func IsErrExists(e error) bool    { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool   { _, ok := e.(InvalidError); return ok }
func IsErrInvariant(e error) bool { _, ok := e.(InvariantError); return ok }
func IsErrNotFound(e error) bool  { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool   { _, ok := e.(ProcessError); return ok }
