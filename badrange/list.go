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

// Package badrange implements the bad-region map the fault-tolerant read
// engine records unreadable byte ranges into: an ordered, coalescing list
// of half-open [offset, offset+size) intervals.
package badrange

import "sort"

// Entry is a single unreadable range.
type Entry struct {
	Offset int64
	Size   uint64
}

func (e Entry) end() int64 { return e.Offset + int64(e.Size) }

// List is a sorted, non-overlapping, non-touching set of bad ranges.
// The zero value is an empty list ready to use.
type List struct {
	entries []Entry
}

// Append records that [offset, offset+size) is unreadable, merging with
// any existing entry whose closed range touches or overlaps it:  an
// existing [b, b+t] merges with the new [a, a+s) whenever b <= a+s and
// a <= b+t.
func (l *List) Append(offset int64, size uint64) {
	if size == 0 {
		return
	}
	newEntry := Entry{Offset: offset, Size: size}

	// Find the insertion point: first entry whose start is >= offset.
	i := sort.Search(len(l.entries), func(i int) bool {
		return l.entries[i].Offset >= offset
	})

	// Merge backwards with a preceding entry that touches/overlaps.
	if i > 0 {
		prev := l.entries[i-1]
		if prev.Offset <= newEntry.end() && newEntry.Offset <= prev.end() {
			i--
			newEntry = mergeEntries(prev, newEntry)
			l.entries = append(l.entries[:i], l.entries[i+1:]...)
		}
	}

	// Merge forwards with any following entries that now touch/overlap.
	j := i
	for j < len(l.entries) {
		next := l.entries[j]
		if next.Offset <= newEntry.end() && newEntry.Offset <= next.end() {
			newEntry = mergeEntries(newEntry, next)
			j++
			continue
		}
		break
	}
	l.entries = append(l.entries[:i], append([]Entry{newEntry}, l.entries[j:]...)...)
}

func mergeEntries(a, b Entry) Entry {
	start := a.Offset
	if b.Offset < start {
		start = b.Offset
	}
	end := a.end()
	if b.end() > end {
		end = b.end()
	}
	return Entry{Offset: start, Size: uint64(end - start)}
}

// Len returns the number of distinct bad ranges recorded.
func (l *List) Len() int { return len(l.entries) }

// Get returns the offset/size pair at index, and false if index is out of
// range.
func (l *List) Get(index int) (int64, uint64, bool) {
	if index < 0 || index >= len(l.entries) {
		return 0, 0, false
	}
	e := l.entries[index]
	return e.Offset, e.Size, true
}

// Contains reports whether offset falls within any recorded bad range.
func (l *List) Contains(offset int64) bool {
	i := sort.Search(len(l.entries), func(i int) bool {
		return l.entries[i].end() > offset
	})
	return i < len(l.entries) && l.entries[i].Offset <= offset
}

// Empty reports whether no bad ranges have been recorded.
func (l *List) Empty() bool { return len(l.entries) == 0 }

// Clear removes all recorded ranges, as happens when a handle is
// re-opened.
func (l *List) Clear() { l.entries = nil }

// Entries returns a copy of the recorded ranges in ascending offset order.
func (l *List) Entries() []Entry {
	out := make([]Entry, len(l.entries))
	copy(out, l.entries)
	return out
}
