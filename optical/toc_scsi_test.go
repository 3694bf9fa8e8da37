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
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openebs/smdev/mediatypes"
)

// fakeCDBIssuer stands in for *scsi.Transport: a two-track disc, track 1
// audio, track 2 a mode-1 data track, lead-out at LBA 320000.
type fakeCDBIssuer struct {
	discInfoSessionCount uint16
	discInfoErr          error
}

func (f *fakeCDBIssuer) ReadTOC(format uint8, timeBit bool, track uint8, buf []byte) (int, error) {
	if track == 1 && len(buf) == 4 {
		// Header probe: first=1, last=2.
		buf[2] = 1
		buf[3] = 2
		return 4, nil
	}

	// Full listing: header + track 1 (audio, lba 0) + track 2 (data, lba
	// 16000) + lead-out (lba 320000).
	entries := []struct {
		control byte
		track   byte
		lba     uint32
	}{
		{control: 0x00 << 4, track: 1, lba: 0},
		{control: 0x04 << 4, track: 2, lba: 16000},
		{control: 0x00 << 4, track: 0xaa, lba: 320000},
	}
	buf[2] = 1
	buf[3] = 2
	for i, e := range entries {
		off := 4 + i*8
		if off+8 > len(buf) {
			break
		}
		buf[off+1] = e.control
		buf[off+2] = e.track
		binary.BigEndian.PutUint32(buf[off+4:off+8], e.lba)
	}
	return len(buf), nil
}

func (f *fakeCDBIssuer) ReadDiscInformation(buf []byte) (int, error) {
	if f.discInfoErr != nil {
		return 0, f.discInfoErr
	}
	binary.BigEndian.PutUint16(buf[8:10], f.discInfoSessionCount)
	return len(buf), nil
}

func (f *fakeCDBIssuer) ReadTrackInformation(track uint32, buf []byte) (int, error) {
	// Data-mode byte: mode1 (0) for every data track.
	buf[6] = 0x00
	return len(buf), nil
}

// Header {first=1, last=2} with entries [{track=1, lba=0},
// {track=2, lba=16000}, {leadout, lba=320000}] assembles into sessions
// [{0, 16000}, {16000, 304000}].
func TestReadTOCSCSIAssemblesSessionsAndTracks(t *testing.T) {
	toc, err := ReadTOCSCSI(&fakeCDBIssuer{discInfoSessionCount: 2})
	require.NoError(t, err)
	require.Len(t, toc.Sessions, 2)
	assert.Equal(t, uint64(0), toc.Sessions[0].StartSector())
	assert.Equal(t, uint64(16000), toc.Sessions[0].NumberOfSectors())
	assert.Equal(t, uint64(16000), toc.Sessions[1].StartSector())
	assert.Equal(t, uint64(304000), toc.Sessions[1].NumberOfSectors())
	assert.Equal(t, uint64(320000), toc.LeadOut.StartSector())

	require.Len(t, toc.Tracks, 2)
	assert.Equal(t, mediatypes.TrackTypeAudio, toc.Tracks[0].Type)
	assert.Equal(t, mediatypes.TrackTypeMode1_2048, toc.Tracks[1].Type)
}

// A READ DISC INFORMATION failure, or a session count that disagrees with
// the READ TOC listing, is logged but never fails the probe: the TOC
// listing remains authoritative.
func TestReadTOCSCSISurvivesDiscInformationFailure(t *testing.T) {
	toc, err := ReadTOCSCSI(&fakeCDBIssuer{discInfoErr: assert.AnError})
	require.NoError(t, err)
	assert.Len(t, toc.Sessions, 2)
}

func TestReadTOCSCSITreatsSessionCountMismatchAsNonFatal(t *testing.T) {
	toc, err := ReadTOCSCSI(&fakeCDBIssuer{discInfoSessionCount: 99})
	require.NoError(t, err)
	assert.Len(t, toc.Sessions, 2)
}

func TestDiscInformationSessionCount(t *testing.T) {
	buf := make([]byte, 34)
	binary.BigEndian.PutUint16(buf[8:10], 3)

	count, ok := discInformationSessionCount(buf)
	require.True(t, ok)
	assert.Equal(t, uint16(3), count)

	_, ok = discInformationSessionCount(buf[:9])
	assert.False(t, ok)
}
