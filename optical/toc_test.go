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

package optical

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openebs/smdev/mediatypes"
)

func TestMSFToLBA(t *testing.T) {
	// 0m 2s 0f -> 2*75 - 150 = 0
	assert.Equal(t, int64(0), MSFToLBA(0, 2, 0))
}

// TOC header {first=1, last=2} with entries [{track=1, lba=0},
// {track=2, lba=16000}, {leadout, lba=320000}] must assemble into
// sessions [{0, 16000}, {16000, 304000}].
func TestBuildSessionsAssemblesFromTOC(t *testing.T) {
	starts := []uint64{0, 16000}
	leadOut := uint64(320000)

	sessions, err := buildSessions(starts, leadOut)
	require.NoError(t, err)
	require.Len(t, sessions, 2)

	assert.Equal(t, uint64(0), sessions[0].StartSector())
	assert.Equal(t, uint64(16000), sessions[0].NumberOfSectors())

	assert.Equal(t, uint64(16000), sessions[1].StartSector())
	assert.Equal(t, uint64(304000), sessions[1].NumberOfSectors())
}

func TestBuildSessionsSingleTrack(t *testing.T) {
	sessions, err := buildSessions([]uint64{0}, 100)
	require.NoError(t, err)
	require.Len(t, sessions, 1)
	assert.Equal(t, uint64(0), sessions[0].StartSector())
	assert.Equal(t, uint64(100), sessions[0].NumberOfSectors())
}

func TestBuildSessionsRejectsDecreasingOffsets(t *testing.T) {
	_, err := buildSessions([]uint64{0, 20000}, 16000)
	assert.Error(t, err)
}

func TestTrackTypeFromControlAndMode(t *testing.T) {
	// Control nibble bit 0x04 clear means an audio track regardless of
	// the data-mode byte.
	assert.Equal(t, mediatypes.TrackTypeAudio, trackTypeFromControlAndMode(0x00, 0xff))
	// Bit set selects a data track; the data-mode byte then picks the
	// sector format.
	assert.Equal(t, mediatypes.TrackTypeMode1_2048, trackTypeFromControlAndMode(0x04, 0x00))
	assert.Equal(t, mediatypes.TrackTypeMode2_2048, trackTypeFromControlAndMode(0x04, 0x01))
	assert.Equal(t, mediatypes.TrackTypeMode2_2336, trackTypeFromControlAndMode(0x04, 0x02))
}
