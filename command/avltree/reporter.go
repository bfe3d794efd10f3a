// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltree/shell"
)

// background process to log the state of the tree
type reporter struct {
	log      *logger.L
	shell    *shell.Shell
	interval time.Duration
}

// Run - log a report every interval and once more on shutdown
func (r *reporter) Run(args interface{}, shutdown <-chan struct{}) {
	r.log.Info("starting…")

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

loop:
	for {
		select {
		case <-shutdown:
			break loop
		case <-ticker.C:
			r.log.Info(r.report())
		}
	}

	r.log.Infof("final: %s", r.report())
	r.log.Info("stopped")
}

// one line summary of the tree and the commands run so far
func (r *reporter) report() string {
	stats := r.shell.Statistics()
	counts := r.shell.Snapshot()

	names := make([]string, 0, len(counts))
	for name := range counts {
		names = append(names, name)
	}
	sort.Strings(names)

	commands := make([]string, len(names))
	for i, name := range names {
		commands[i] = fmt.Sprintf("%s: %d", name, counts[name])
	}

	return fmt.Sprintf("nodes: %d  height: %d  insertions: %d  removals: %d  rotations: %d/%d  commands: [%s]",
		stats.Count,
		stats.Height,
		stats.Insertions,
		stats.Removals,
		stats.SingleRotations,
		stats.DoubleRotations,
		strings.Join(commands, ", "),
	)
}
