// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package heighttree_test

import (
	"bytes"
	"math/rand"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/heighttree"
)

func TestScenarios(t *testing.T) {
	tree := heighttree.New()
	for _, key := range []int{30, 10, 20} {
		tree.Insert(key, strconv.Itoa(key))
	}
	assert.Equal(t, "20:20:2 10:10:1 NULL NULL 30:30:1 NULL NULL", tree.String(), "double rotation")

	tree.Destroy()
	assert.True(t, tree.IsEmpty(), "destroyed")
	assert.Equal(t, "NULL", tree.String(), "empty dump")

	for _, key := range []int{4, 2, 6, 1, 3, 5, 7} {
		tree.Insert(key, strconv.Itoa(key))
	}
	v, ok := tree.Remove(4)
	assert.True(t, ok, "remove 4")
	assert.Equal(t, "4", v, "removed value")
	assert.Equal(t, "5:5:3 2:2:2 1:1:1 NULL NULL 3:3:1 NULL NULL 6:6:2 NULL 7:7:1 NULL NULL", tree.String(), "after remove")
	assert.Equal(t, 6, tree.Count(), "count")
	assert.Equal(t, 3, tree.Height(), "height")

	_, ok = tree.Remove(4)
	assert.False(t, ok, "remove again")
	_, ok = tree.Find(4)
	assert.False(t, ok, "find removed")
	v, ok = tree.Find(7)
	assert.True(t, ok, "find 7")
	assert.Equal(t, "7", v, "value of 7")
}

// both trees must agree on shape, heights and balance after every
// operation
func TestSameShapeAsIncrementalTree(t *testing.T) {
	for seed := int64(1); seed <= 5; seed += 1 {
		r := rand.New(rand.NewSource(seed))

		reference := heighttree.New()
		incremental := avl.New()
		present := make(map[int]struct{})

		for i := 0; i < 2000; i += 1 {
			key := r.Intn(500)
			if _, ok := present[key]; ok {
				v1, ok1 := reference.Remove(key)
				v2, ok2 := incremental.Remove(key)
				assert.True(t, ok1 && ok2, "seed: %d  remove: %d", seed, key)
				assert.Equal(t, v1, v2, "seed: %d  removed value: %d", seed, key)
				delete(present, key)
			} else {
				reference.Insert(key, i)
				incremental.Insert(key, i)
				present[key] = struct{}{}
			}

			b1 := &bytes.Buffer{}
			b2 := &bytes.Buffer{}
			reference.Dump(b1, true)
			incremental.Dump(b2, true)
			if b1.String() != b2.String() {
				t.Fatalf("seed: %d  step: %d  key: %d\nreference:   %s\nincremental: %s", seed, i, key, b1, b2)
			}
		}
		assert.Equal(t, len(present), reference.Count(), "seed: %d  count", seed)
		assert.Equal(t, reference.Height(), incremental.Height(), "seed: %d  height", seed)
	}
}
