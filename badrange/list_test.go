// Copyright 2018 The OpenEBS Authors.
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//     http://www.apache.org/licenses/LICENSE-2.0
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package badrange

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListEmpty(t *testing.T) {
	var l List
	assert.True(t, l.Empty())
	assert.Equal(t, 0, l.Len())
	assert.False(t, l.Contains(0))
}

func TestListAppendDisjoint(t *testing.T) {
	var l List
	l.Append(100, 10)
	l.Append(200, 10)

	require.Equal(t, 2, l.Len())
	off, size, ok := l.Get(0)
	require.True(t, ok)
	assert.Equal(t, int64(100), off)
	assert.Equal(t, uint64(10), size)

	off, size, ok = l.Get(1)
	require.True(t, ok)
	assert.Equal(t, int64(200), off)
	assert.Equal(t, uint64(10), size)
}

func TestListAppendOverlapping(t *testing.T) {
	var l List
	l.Append(100, 10) // [100, 110)
	l.Append(105, 10) // overlaps -> [100, 115)

	require.Equal(t, 1, l.Len())
	off, size, ok := l.Get(0)
	require.True(t, ok)
	assert.Equal(t, int64(100), off)
	assert.Equal(t, uint64(15), size)
}

func TestListAppendTouching(t *testing.T) {
	var l List
	l.Append(100, 10) // [100, 110)
	l.Append(110, 10) // touches -> [100, 120)

	require.Equal(t, 1, l.Len())
	off, size, ok := l.Get(0)
	require.True(t, ok)
	assert.Equal(t, int64(100), off)
	assert.Equal(t, uint64(20), size)
}

func TestListAppendBridgesTwoEntries(t *testing.T) {
	var l List
	l.Append(0, 10)    // [0, 10)
	l.Append(100, 10)  // [100, 110)
	l.Append(10, 90)   // [10, 100) bridges both into one range

	require.Equal(t, 1, l.Len())
	off, size, ok := l.Get(0)
	require.True(t, ok)
	assert.Equal(t, int64(0), off)
	assert.Equal(t, uint64(110), size)
}

func TestListAppendOutOfOrder(t *testing.T) {
	var l List
	l.Append(200, 10)
	l.Append(0, 10)
	l.Append(100, 10)

	require.Equal(t, 3, l.Len())
	off0, _, _ := l.Get(0)
	off1, _, _ := l.Get(1)
	off2, _, _ := l.Get(2)
	assert.Equal(t, []int64{0, 100, 200}, []int64{off0, off1, off2})
}

func TestListAppendZeroSizeIgnored(t *testing.T) {
	var l List
	l.Append(100, 0)
	assert.True(t, l.Empty())
}

func TestListContains(t *testing.T) {
	var l List
	l.Append(1024, 512)

	assert.False(t, l.Contains(1023))
	assert.True(t, l.Contains(1024))
	assert.True(t, l.Contains(1535))
	assert.False(t, l.Contains(1536))
}

func TestListGetOutOfRange(t *testing.T) {
	var l List
	l.Append(0, 10)

	_, _, ok := l.Get(-1)
	assert.False(t, ok)
	_, _, ok = l.Get(1)
	assert.False(t, ok)
}

func TestListClear(t *testing.T) {
	var l List
	l.Append(0, 10)
	l.Clear()
	assert.True(t, l.Empty())
}

func TestListEntries(t *testing.T) {
	var l List
	l.Append(200, 10)
	l.Append(0, 10)

	entries := l.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, Entry{Offset: 0, Size: 10}, entries[0])
	assert.Equal(t, Entry{Offset: 200, Size: 10}, entries[1])

	// Mutating the returned slice must not affect the list's own state.
	entries[0].Size = 999
	_, size, _ := l.Get(0)
	assert.Equal(t, uint64(10), size)
}
