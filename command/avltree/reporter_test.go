// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/background"
	"github.com/bitmark-inc/avltree/shell"
)

const testDirectory = "testing"

func TestMain(m *testing.M) {
	_ = os.RemoveAll(testDirectory)
	_ = os.Mkdir(testDirectory, 0700)

	logging := logger.Configuration{
		Directory: testDirectory,
		File:      "avltree.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "trace",
		},
	}
	if err := logger.Initialise(logging); nil != err {
		panic(fmt.Sprintf("logger initialization failed: %s", err))
	}

	rc := m.Run()

	logger.Finalise()
	_ = os.RemoveAll(testDirectory)
	os.Exit(rc)
}

func TestReport(t *testing.T) {
	sh := shell.New(logger.New("shell"), avl.New(), false)
	err := sh.Run(strings.NewReader("ii 1 ii 2 ii 3 r 2 f 3 jump"), &bytes.Buffer{})
	assert.Nil(t, err, "run")

	r := &reporter{
		log:      logger.New("reporter"),
		shell:    sh,
		interval: time.Millisecond,
	}
	expected := "nodes: 2  height: 2  insertions: 3  removals: 1  rotations: 1/0  " +
		"commands: [check: 0, errors: 1, exit: 0, find: 1, ii: 3, insert: 0, remove: 1, show: 0]"
	assert.Equal(t, expected, r.report(), "report")

	p := background.Start(background.Processes{r}, nil)
	time.Sleep(10 * time.Millisecond)
	p.Stop()
}

func TestRunScripts(t *testing.T) {
	dir, err := ioutil.TempDir("", "avltree")
	assert.Nil(t, err, "temp dir")
	defer os.RemoveAll(dir)

	first := filepath.Join(dir, "first")
	second := filepath.Join(dir, "second")
	assert.Nil(t, ioutil.WriteFile(first, []byte("ii 10\nii 20\n"), 0600), "write first")
	assert.Nil(t, ioutil.WriteFile(second, []byte("ii 30\nshow\n"), 0600), "write second")

	sh := shell.New(logger.New("shell"), avl.New(), false)
	out := &bytes.Buffer{}
	err = runScripts(sh, []string{first, second}, nil, out)
	assert.Nil(t, err, "scripts")
	assert.Equal(t, "20:20:2 10:10:1 NULL NULL 30:30:1 NULL NULL\n", out.String(), "tree spans scripts")

	err = runScripts(sh, []string{filepath.Join(dir, "missing")}, nil, out)
	assert.NotNil(t, err, "missing file")

	out.Reset()
	err = runScripts(sh, nil, strings.NewReader("f 30"), out)
	assert.Nil(t, err, "stdin")
	assert.Equal(t, "30\n", out.String(), "find from stdin")
}

func TestGetConfiguration(t *testing.T) {
	dir, err := ioutil.TempDir("", "avltree")
	assert.Nil(t, err, "temp dir")
	defer os.RemoveAll(dir)

	name := filepath.Join(dir, "avltree.conf")
	text := `return {
    data_directory = ".",
    maximum_nodes = 1000,
    debug = true,
}`
	assert.Nil(t, ioutil.WriteFile(name, []byte(text), 0600), "write")

	c, err := getConfiguration(name)
	assert.Nil(t, err, "configuration")
	assert.Equal(t, filepath.Clean(dir), c.DataDirectory, "data directory")
	assert.Equal(t, 1000, c.MaximumNodes, "maximum nodes")
	assert.True(t, c.Debug, "debug")
	assert.Equal(t, defaultReportInterval, c.ReportInterval, "default interval")
	assert.Equal(t, filepath.Join(dir, defaultLogDirectory), c.Logging.Directory, "log directory")

	info, err := os.Stat(c.Logging.Directory)
	assert.Nil(t, err, "log directory created")
	assert.True(t, info.IsDir(), "is directory")

	assert.Nil(t, ioutil.WriteFile(name, []byte(`return { data_directory = "" }`), 0600), "write")
	_, err = getConfiguration(name)
	assert.NotNil(t, err, "empty data directory")
}
