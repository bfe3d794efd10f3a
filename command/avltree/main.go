// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/background"
	"github.com/bitmark-inc/avltree/fault"
	"github.com/bitmark-inc/avltree/shell"
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
		{Long: "config-file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		exitwithstatus.Message("%s: version: %s", program, version)
	}

	if len(options["help"]) > 0 {
		exitwithstatus.Message("usage: %s [--help] [--verbose] [--quiet] --config-file=FILE [script-file...]", program)
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

	tree, err := avl.NewLimited(masterConfiguration.MaximumNodes)
	if nil != err {
		fault.Criticalf("tree setup error: %s", err)
		exitwithstatus.Message("%s: tree setup error: %s", program, err)
	}

	sh := shell.New(logger.New("shell"), tree, masterConfiguration.Debug)
	defer func() {
		sh.Lock()
		tree.Destroy()
		sh.Unlock()
	}()

	// start background processes
	processes := background.Processes{
		&reporter{
			log:      logger.New("reporter"),
			shell:    sh,
			interval: time.Duration(masterConfiguration.ReportInterval) * time.Second,
		},
	}
	bg := background.Start(processes, nil)
	defer bg.Stop()

	// turn Signals into channel messages
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)

	done := make(chan error, 1)
	go func() {
		done <- runScripts(sh, arguments, os.Stdin, os.Stdout)
	}()

	select {
	case sig := <-ch:
		log.Infof("received signal: %v", sig)
		if 0 == len(options["quiet"]) {
			fmt.Fprintf(os.Stderr, "\nreceived signal: %v\n", sig)
		}
	case err := <-done:
		if nil != err {
			log.Errorf("input error: %s", err)
			exitwithstatus.Message("%s: input error: %s", program, err)
		}
	}
}

// run each named script in turn, or standard input if there are none
func runScripts(sh *shell.Shell, fileNames []string, stdin io.Reader, stdout io.Writer) error {
	if 0 == len(fileNames) {
		return sh.Run(stdin, stdout)
	}

	for _, name := range fileNames {
		f, err := os.Open(name)
		if nil != err {
			return err
		}
		err = sh.Run(f, stdout)
		f.Close()
		if nil != err {
			return fmt.Errorf("%s: %s", name, err)
		}
	}
	return nil
}
