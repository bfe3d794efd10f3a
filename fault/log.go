// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/bitmark-inc/logger"
)

// hold a logger channel
var (
	m   sync.Mutex
	log *logger.L
)

// Initialise - setup a log channel for last attempt to log something
// must be called after logger.Initialise
func Initialise() error {
	m.Lock()
	defer m.Unlock()

	if nil != log {
		return ErrAlreadyInitialised
	}
	log = logger.New("PANIC")
	if nil == log {
		return ErrInvalidLoggerChannel
	}
	return nil
}

// Finalise - flush any data and detach the channel
func Finalise() {
	m.Lock()
	defer m.Unlock()

	if nil != log {
		log.Flush()
		log = nil
	}
}

// Criticalf - log a formatted string with arguments like fmt.Sprintf()
func Criticalf(format string, arguments ...interface{}) {
	if _, file, line, ok := runtime.Caller(1); ok {
		a := make([]interface{}, 2, 2+len(arguments))
		a[0] = file
		a[1] = line
		a = append(a, arguments...)
		internalCriticalf("(%q:%d) "+format, a...)
	} else {
		internalCriticalf(format, arguments...)
	}
}

// Panicf - panic with a formatted message, the caller location is
// logged before the panic
func Panicf(format string, arguments ...interface{}) {
	message := fmt.Sprintf(format, arguments...)
	if _, file, line, ok := runtime.Caller(1); ok {
		internalCriticalf("(%q:%d) %s", file, line, message)
	} else {
		internalCriticalf("%s", message)
	}
	flushAndWait()
	panic(message)
}

// internal routines to handle uninitialised logger channel
func internalCriticalf(format string, arguments ...interface{}) {
	m.Lock()
	defer m.Unlock()

	if nil == log {
		fmt.Printf("*** "+format+"\n", arguments...)
	} else {
		log.Criticalf(format, arguments...)
		log.Flush() // make sure log file is saved
	}
}

func flushAndWait() {
	m.Lock()
	initialised := nil != log
	m.Unlock()
	if initialised {
		time.Sleep(100 * time.Millisecond) // to allow logging output
	}
}
