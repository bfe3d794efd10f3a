// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltree/fault"
	"github.com/bitmark-inc/avltree/runner"
	"github.com/bitmark-inc/avltree/sorting"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "quiet", HasArg: getoptions.NO_ARGUMENT, Short: 'q'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "list", HasArg: getoptions.NO_ARGUMENT, Short: 'l'},
		{Long: "config-file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
	}

	program, options, _, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		exitwithstatus.Message("%s: version: %s", program, version)
	}

	if len(options["help"]) > 0 {
		exitwithstatus.Message("usage: %s [--help] [--verbose] [--quiet] [--list] --config-file=FILE", program)
	}

	if len(options["list"]) > 0 {
		for _, name := range sorting.Names() {
			a, _ := sorting.Lookup(name)
			fmt.Printf("%-16s %s\n", name, a.Name)
		}
		return
	}

	if 1 != len(options["config-file"]) {
		exitwithstatus.Message("%s: only one config-file option is required, %d were detected", program, len(options["config-file"]))
	}

	// read options and parse the configuration file
	configurationFile := options["config-file"][0]
	masterConfiguration, err := getConfiguration(configurationFile)
	if nil != err {
		exitwithstatus.Message("%s: failed to read configuration from: %q  error: %s", program, configurationFile, err)
	}

	if len(options["verbose"]) > 0 {
		masterConfiguration.Logging.Console = true
	}

	// start logging
	if err = logger.Initialise(masterConfiguration.Logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	if err = fault.Initialise(); nil != err {
		exitwithstatus.Message("%s: panic channel setup failed with error: %s", program, err)
	}
	defer fault.Finalise()

	// create a logger channel for the main program
	log := logger.New("main")
	defer log.Info("shutting down…")
	log.Info("starting…")
	log.Infof("version: %s", version)
	log.Debugf("masterConfiguration: %v", masterConfiguration)

	descriptor, err := masterConfiguration.descriptor()
	if nil != err {
		fault.Criticalf("descriptor error: %s", err)
		exitwithstatus.Message("%s: configuration error: %s", program, err)
	}

	publisher, err := runner.NewCSVPublisher(masterConfiguration.SingleFile, masterConfiguration.AverageFile)
	if nil != err {
		fault.Criticalf("output error: %s", err)
		exitwithstatus.Message("%s: output error: %s", program, err)
	}
	defer publisher.Close()

	r, err := runner.New(logger.New("runner"), descriptor, publisher)
	if nil != err {
		fault.Criticalf("runner error: %s", err)
		exitwithstatus.Message("%s: runner error: %s", program, err)
	}

	// cancel the run on CTRL-C (SIGINT) or 'kill <pid>' (SIGTERM)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		select {
		case sig := <-ch:
			log.Infof("received signal: %v", sig)
			if 0 == len(options["quiet"]) {
				fmt.Fprintf(os.Stderr, "\nreceived signal: %v\nshutting down...\n", sig)
			}
			cancel()
		case <-ctx.Done():
		}
	}()

	if 0 == len(options["quiet"]) {
		fmt.Printf("writing: %s\n         %s\n", masterConfiguration.SingleFile, masterConfiguration.AverageFile)
	}

	if err := r.Run(ctx); nil != err {
		log.Errorf("run error: %s", err)
		if context.Canceled != err {
			exitwithstatus.Message("%s: run error: %s", program, err)
		}
	}
}
