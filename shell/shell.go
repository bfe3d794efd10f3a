// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package shell

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/counter"
	"github.com/bitmark-inc/avltree/fault"
)

type verb int

const (
	verbInsert verb = iota
	verbInsertKey
	verbRemove
	verbFind
	verbShow
	verbCheck
	verbExit
	verbCount // must be last
)

// names as reported by Snapshot
var verbNames = [verbCount]string{
	verbInsert:    "insert",
	verbInsertKey: "ii",
	verbRemove:    "remove",
	verbFind:      "find",
	verbShow:      "show",
	verbCheck:     "check",
	verbExit:      "exit",
}

// every accepted spelling
var verbs = map[string]verb{
	"insert": verbInsert,
	"i":      verbInsert,
	"ii":     verbInsertKey,
	"remove": verbRemove,
	"r":      verbRemove,
	"find":   verbFind,
	"f":      verbFind,
	"show":   verbShow,
	"s":      verbShow,
	"check":  verbCheck,
	"c":      verbCheck,
	"exit":   verbExit,
	"q":      verbExit,
}

// token printed by find when the key is absent
const notFound = "NULL"

// Shell - interpreter state, the embedded mutex guards the tree
type Shell struct {
	sync.Mutex
	log    *logger.L
	tree   *avl.Tree
	debug  bool
	counts [verbCount]counter.Counter
	errors counter.Counter
}

// Statistics - summary of the tree behind a shell
type Statistics struct {
	Count  int
	Height int
	avl.Statistics
}

// New - create a shell for a tree, debug selects the dump format
// that includes balance factors
func New(log *logger.L, tree *avl.Tree, debug bool) *Shell {
	return &Shell{
		log:   log,
		tree:  tree,
		debug: debug,
	}
}

// Run - execute commands from r writing results to w until exit or
// end of input
//
// a bad key or unknown command is reported on w and skipped, input
// ending in the middle of a command gives fault.ErrMissingArgument
func (s *Shell) Run(r io.Reader, w io.Writer) error {
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)

	next := func() (string, error) {
		if scanner.Scan() {
			return scanner.Text(), nil
		}
		if err := scanner.Err(); nil != err {
			return "", err
		}
		return "", fault.ErrMissingArgument
	}

	for scanner.Scan() {
		word := scanner.Text()
		v, ok := verbs[word]
		if !ok {
			s.errors.Increment()
			s.log.Warnf("unknown command: %q", word)
			if err := reply(w, "error: %s: %s\n", fault.ErrUnknownCommand, word); nil != err {
				return err
			}
			continue
		}
		s.counts[v].Increment()

		var err error
		switch v {
		case verbInsert:
			var key, value string
			if key, err = next(); nil == err {
				if value, err = next(); nil == err {
					err = s.insert(w, key, value)
				}
			}

		case verbInsertKey:
			var key string
			if key, err = next(); nil == err {
				err = s.insert(w, key, key)
			}

		case verbRemove:
			var key string
			if key, err = next(); nil == err {
				err = s.remove(w, key)
			}

		case verbFind:
			var key string
			if key, err = next(); nil == err {
				err = s.find(w, key)
			}

		case verbShow:
			s.Lock()
			err = s.tree.Dump(w, s.debug)
			s.Unlock()

		case verbCheck:
			s.Lock()
			e := s.tree.Check()
			s.Unlock()
			if nil == e {
				err = reply(w, "ok\n")
			} else {
				s.log.Errorf("check failed: %s", e)
				err = reply(w, "error: %s\n", e)
			}

		case verbExit:
			s.log.Info("exit")
			return nil
		}

		if nil != err {
			s.log.Errorf("%s: %s", verbNames[v], err)
			return err
		}
	}
	return scanner.Err()
}

func (s *Shell) insert(w io.Writer, word string, value string) error {
	key, ok, err := s.parseKey(w, word)
	if !ok {
		return err
	}

	s.Lock()
	err = s.tree.Insert(key, value)
	s.Unlock()

	if nil != err {
		s.errors.Increment()
		s.log.Warnf("insert: %d  error: %s", key, err)
		return reply(w, "error: %s\n", err)
	}
	s.log.Debugf("insert: %d → %q", key, value)
	return nil
}

func (s *Shell) remove(w io.Writer, word string) error {
	key, ok, err := s.parseKey(w, word)
	if !ok {
		return err
	}

	s.Lock()
	_, found := s.tree.Remove(key)
	s.Unlock()

	s.log.Debugf("remove: %d  found: %t", key, found)
	return nil
}

func (s *Shell) find(w io.Writer, word string) error {
	key, ok, err := s.parseKey(w, word)
	if !ok {
		return err
	}

	s.Lock()
	value, found := s.tree.Find(key)
	s.Unlock()

	if !found {
		return reply(w, "%s\n", notFound)
	}
	return reply(w, "%v\n", value)
}

// a key that does not parse is reported and the command skipped,
// err is only set if the report could not be written
func (s *Shell) parseKey(w io.Writer, word string) (int, bool, error) {
	key, err := strconv.Atoi(word)
	if nil != err {
		s.errors.Increment()
		s.log.Warnf("invalid key: %q", word)
		return 0, false, reply(w, "error: %s: %s\n", fault.ErrInvalidKey, word)
	}
	return key, true, nil
}

func reply(w io.Writer, format string, arguments ...interface{}) error {
	_, err := fmt.Fprintf(w, format, arguments...)
	return err
}

// Snapshot - number of times each command was run, plus the number
// of rejected inputs under "errors"
func (s *Shell) Snapshot() map[string]uint64 {
	result := make(map[string]uint64, verbCount+1)
	for i, name := range verbNames {
		result[name] = s.counts[i].Uint64()
	}
	result["errors"] = s.errors.Uint64()
	return result
}

// Statistics - current tree summary
func (s *Shell) Statistics() Statistics {
	s.Lock()
	defer s.Unlock()

	return Statistics{
		Count:      s.tree.Count(),
		Height:     s.tree.Height(),
		Statistics: s.tree.Statistics(),
	}
}
