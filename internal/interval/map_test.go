// Copyright 2020-2025 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package interval_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bufbuild/docfmt/internal/interval"
)

func TestInsert(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	var m interval.Map[int, string]
	assert.Nil(m.Insert(10, 20, "a").Value)
	assert.Nil(m.Insert(0, 5, "b").Value)
	assert.Nil(m.Insert(30, 30, "c").Value)
	assert.Nil(m.Insert(21, 29, "d").Value)

	overlap := m.Insert(18, 25, "x")
	assert.Equal(10, overlap.Start)
	assert.Equal(20, overlap.End)
	assert.Equal("a", *overlap.Value)

	overlap = m.Insert(6, 40, "x")
	assert.Equal("a", *overlap.Value)

	overlap = m.Insert(12, 13, "x")
	assert.Equal("a", *overlap.Value)

	assert.Nil(m.Insert(6, 9, "e").Value)
	assert.Equal(5, m.Len())
	assert.Equal(`{[0, 5]: "b", [6, 9]: "e", [10, 20]: "a", [21, 29]: "d", 30: "c"}`, fmt.Sprintf("%q", &m))
}

func TestGet(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	var m interval.Map[uint32, int]
	m.Insert(4, 8, 1)
	m.Insert(12, 12, 2)

	assert.Nil(m.Get(3).Value)
	assert.Equal(1, *m.Get(4).Value)
	assert.Equal(1, *m.Get(8).Value)
	assert.Nil(m.Get(9).Value)
	assert.Equal(2, *m.Get(12).Value)
	assert.Nil(m.Get(13).Value)
}

func TestOverlapping(t *testing.T) {
	t.Parallel()

	var m interval.Map[int, int]
	m.Insert(0, 1, 0)
	m.Insert(3, 5, 1)
	m.Insert(7, 9, 2)
	m.Insert(11, 11, 3)

	var got []int
	for iv := range m.Overlapping(4, 10) {
		got = append(got, *iv.Value)
	}
	assert.Equal(t, []int{1, 2}, got)

	got = got[:0]
	for iv := range m.Intervals() {
		got = append(got, *iv.Value)
	}
	assert.Equal(t, []int{0, 1, 2, 3}, got)
}
