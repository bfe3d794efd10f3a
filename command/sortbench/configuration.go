// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltree/configuration"
	"github.com/bitmark-inc/avltree/runner"
	"github.com/bitmark-inc/avltree/sorting"
)

// basic defaults (directories and files are relative to the "DataDirectory" from Configuration file)
const (
	defaultDataDirectory = "" // this will error; use "." for the same directory as the config file
	defaultSingleFile    = "single_test_results.csv"
	defaultAverageFile   = "average_results.csv"
	defaultRunsPerTest   = 16
	defaultSeed          = 0
	defaultMinimumValue  = 10
	defaultMaximumValue  = 1000000

	defaultScaleKind  = "linear"
	defaultScaleStart = 1
	defaultScaleStep  = 1
	defaultScaleLimit = 3000
	defaultScaleCount = 250

	defaultLogDirectory = "log"
	defaultLogFile      = "sortbench.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size
)

// to hold log levels
type LoglevelMap map[string]string

// path expanded or calculated defaults
var (
	defaultAlgorithms = []string{"insertion", "quicksort", "quicksort3way"}
	defaultLogLevels  = LoglevelMap{
		logger.DefaultTag: "critical",
	}
)

// ScaleType - how the array lengths grow
type ScaleType struct {
	Kind  string `gluamapper:"kind" json:"kind"`
	Start int    `gluamapper:"start" json:"start"`
	Step  int    `gluamapper:"step" json:"step"`
	Limit int    `gluamapper:"limit" json:"limit"`
	Count int    `gluamapper:"count" json:"count"`
}

// Configuration - items read from the Lua configuration file
type Configuration struct {
	DataDirectory string               `gluamapper:"data_directory" json:"data_directory"`
	SingleFile    string               `gluamapper:"single_file" json:"single_file"`
	AverageFile   string               `gluamapper:"average_file" json:"average_file"`
	Algorithms    []string             `gluamapper:"algorithms" json:"algorithms"`
	Scale         ScaleType            `gluamapper:"scale" json:"scale"`
	RunsPerTest   int                  `gluamapper:"runs_per_test" json:"runs_per_test"`
	Seed          int64                `gluamapper:"seed" json:"seed"`
	MinimumValue  int64                `gluamapper:"minimum_value" json:"minimum_value"`
	MaximumValue  int64                `gluamapper:"maximum_value" json:"maximum_value"`
	Logging       logger.Configuration `gluamapper:"logging" json:"logging"`
}

// will read decode and verify the configuration
func getConfiguration(configurationFileName string) (*Configuration, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	// absolute path to the main directory
	dataDirectory, _ := filepath.Split(configurationFileName)

	options := &Configuration{
		DataDirectory: defaultDataDirectory,
		SingleFile:    defaultSingleFile,
		AverageFile:   defaultAverageFile,
		Algorithms:    nil, // defaulted after parsing
		Scale: ScaleType{
			Kind:  defaultScaleKind,
			Start: defaultScaleStart,
			Step:  defaultScaleStep,
			Limit: defaultScaleLimit,
			Count: defaultScaleCount,
		},
		RunsPerTest:  defaultRunsPerTest,
		Seed:         defaultSeed,
		MinimumValue: defaultMinimumValue,
		MaximumValue: defaultMaximumValue,

		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels:    defaultLogLevels,
		},
	}

	if err := configuration.ParseConfigurationFile(configurationFileName, options); err != nil {
		return nil, err
	}

	if 0 == len(options.Algorithms) {
		options.Algorithms = append([]string(nil), defaultAlgorithms...)
	}
	options.Scale.Kind = strings.ToLower(options.Scale.Kind)
	for i, name := range options.Algorithms {
		options.Algorithms[i] = strings.ToLower(name)
	}

	// ensure absolute data directory
	if "" == options.DataDirectory || "~" == options.DataDirectory {
		return nil, fmt.Errorf("Path: %q is not a valid directory", options.DataDirectory)
	} else if "." == options.DataDirectory {
		options.DataDirectory = dataDirectory // same directory as the configuration file
	}
	options.DataDirectory = filepath.Clean(options.DataDirectory)

	// this directory must exist - i.e. must be created prior to running
	if fileInfo, err := os.Stat(options.DataDirectory); nil != err {
		return nil, err
	} else if !fileInfo.IsDir() {
		return nil, fmt.Errorf("Path: %q is not a directory", options.DataDirectory)
	}

	// force all relevant items to be absolute paths
	// if not, assign them to the data directory
	mustBeAbsolute := []*string{
		&options.SingleFile,
		&options.AverageFile,
	}
	for _, f := range mustBeAbsolute {
		*f = configuration.EnsureAbsolute(options.DataDirectory, *f)
	}

	switch filepath.Dir(options.Logging.File) {
	case "", ".":
	default:
		return nil, fmt.Errorf("Files: %q is not plain name", options.Logging.File)
	}

	// make absolute and create directories if they do not already exist
	for _, d := range []*string{
		&options.Logging.Directory,
	} {
		*d = configuration.EnsureAbsolute(options.DataDirectory, *d)
		if err := os.MkdirAll(*d, 0700); nil != err {
			return nil, err
		}
	}

	// done
	return options, nil
}

// convert the configuration into a runner descriptor
func (c *Configuration) descriptor() (runner.Descriptor, error) {
	algorithms := make([]sorting.Algorithm, len(c.Algorithms))
	for i, name := range c.Algorithms {
		a, err := sorting.Lookup(name)
		if nil != err {
			return runner.Descriptor{}, fmt.Errorf("algorithm: %q: %s", name, err)
		}
		algorithms[i] = a
	}

	scale, err := runner.NewScale(c.Scale.Kind, c.Scale.Start, c.Scale.Step, c.Scale.Limit, c.Scale.Count)
	if nil != err {
		return runner.Descriptor{}, fmt.Errorf("scale: %q: %s", c.Scale.Kind, err)
	}

	return runner.Descriptor{
		Algorithms:   algorithms,
		Scale:        scale,
		RunsPerTest:  c.RunsPerTest,
		Seed:         c.Seed,
		MinimumValue: c.MinimumValue,
		MaximumValue: c.MaximumValue,
	}, nil
}
