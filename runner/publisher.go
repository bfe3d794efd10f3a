// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package runner

import (
	"bufio"
	"encoding/csv"
	"os"
	"path/filepath"
	"strconv"

	"github.com/bitmark-inc/avltree/fault"
	"github.com/bitmark-inc/avltree/sorting"
)

// Result - outcome of one test, or the average of the tests for one
// array length in which case Run is not used
type Result struct {
	ElementCount int
	Run          int
	Nanoseconds  uint64
	sorting.Statistics
}

//go:generate mockgen -destination=mocks/publisher.go -package=mocks github.com/bitmark-inc/avltree/runner Publisher

// Publisher - receives the results in the order they are produced
type Publisher interface {
	Algorithm(name string) error
	Single(result Result) error
	Average(result Result) error
	Flush() error
}

// one output file
type csvFile struct {
	file   *os.File
	buffer *bufio.Writer
	csv    *csv.Writer
}

// CSVPublisher - writes single and average results to separate files
//
// each file is divided into sections, one per algorithm, that begin
// with a line holding the algorithm name; sections after the first
// are preceded by an empty line
//
//	single:  count,run,ns,comparisons,swaps,bytes
//	average: count,ns,comparisons,swaps,bytes
type CSVPublisher struct {
	single  csvFile
	average csvFile
	started bool
}

// NewCSVPublisher - create (or truncate) both output files
func NewCSVPublisher(singleFileName string, averageFileName string) (*CSVPublisher, error) {
	s, err := filepath.Abs(singleFileName)
	if nil != err {
		return nil, err
	}
	a, err := filepath.Abs(averageFileName)
	if nil != err {
		return nil, err
	}
	if s == a {
		return nil, fault.ErrSameOutputFile
	}

	p := &CSVPublisher{}
	if p.single, err = createCSVFile(s); nil != err {
		return nil, err
	}
	if p.average, err = createCSVFile(a); nil != err {
		p.single.file.Close()
		return nil, err
	}
	return p, nil
}

func createCSVFile(name string) (csvFile, error) {
	f, err := os.Create(name)
	if nil != err {
		return csvFile{}, err
	}
	b := bufio.NewWriter(f)
	return csvFile{
		file:   f,
		buffer: b,
		csv:    csv.NewWriter(b),
	}, nil
}

// Algorithm - start a new section in both files
func (p *CSVPublisher) Algorithm(name string) error {
	for _, f := range []csvFile{p.single, p.average} {
		if p.started {
			f.csv.Flush()
			if _, err := f.buffer.WriteString("\n"); nil != err {
				return err
			}
		}
		if err := f.csv.Write([]string{name}); nil != err {
			return err
		}
	}
	p.started = true
	return nil
}

// Single - one test row
func (p *CSVPublisher) Single(result Result) error {
	return p.single.csv.Write([]string{
		strconv.Itoa(result.ElementCount),
		strconv.Itoa(result.Run),
		strconv.FormatUint(result.Nanoseconds, 10),
		strconv.FormatUint(result.Comparisons, 10),
		strconv.FormatUint(result.Swaps, 10),
		strconv.FormatUint(result.BytesAllocated, 10),
	})
}

// Average - one averaged row
func (p *CSVPublisher) Average(result Result) error {
	return p.average.csv.Write([]string{
		strconv.Itoa(result.ElementCount),
		strconv.FormatUint(result.Nanoseconds, 10),
		strconv.FormatUint(result.Comparisons, 10),
		strconv.FormatUint(result.Swaps, 10),
		strconv.FormatUint(result.BytesAllocated, 10),
	})
}

// Flush - push buffered rows to both files
func (p *CSVPublisher) Flush() error {
	for _, f := range []csvFile{p.single, p.average} {
		f.csv.Flush()
		if err := f.csv.Error(); nil != err {
			return err
		}
		if err := f.buffer.Flush(); nil != err {
			return err
		}
	}
	return nil
}

// Close - flush and close both files
func (p *CSVPublisher) Close() error {
	err := p.Flush()
	for _, f := range []csvFile{p.single, p.average} {
		if e := f.file.Close(); nil == err {
			err = e
		}
	}
	return err
}
