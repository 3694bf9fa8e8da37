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

package mediatypes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBytesPerSectorTable(t *testing.T) {
	cases := []struct {
		trackType TrackType
		want      uint32
	}{
		{TrackTypeAudio, 2352},
		{TrackTypeCDG, 2448},
		{TrackTypeMode1_2048, 2048},
		{TrackTypeMode1_2352, 2352},
		{TrackTypeMode2_2048, 2048},
		{TrackTypeMode2_2324, 2324},
		{TrackTypeMode2_2336, 2336},
		{TrackTypeMode2_2352, 2352},
		{TrackTypeCDI_2336, 2336},
		{TrackTypeCDI_2352, 2352},
	}
	for _, c := range cases {
		got, err := BytesPerSector(c.trackType)
		require.NoError(t, err)
		assert.Equal(t, c.want, got)
	}
}

func TestBytesPerSectorUnsupported(t *testing.T) {
	_, err := BytesPerSector(TrackType(999))
	assert.Error(t, err)
}

func TestBytesPerSectorIdempotent(t *testing.T) {
	a, err := BytesPerSector(TrackTypeMode1_2352)
	require.NoError(t, err)
	b, err := BytesPerSector(TrackTypeMode1_2352)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestTrackValueBytesPerSector(t *testing.T) {
	tv := TrackValue{Type: TrackTypeCDG}
	got, err := tv.BytesPerSector()
	require.NoError(t, err)
	assert.Equal(t, uint32(2448), got)
}
