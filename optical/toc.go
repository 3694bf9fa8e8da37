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

// Package optical reads an optical disc's table of contents and assembles
// the session/track model. Two independent paths exist: the native Linux
// CDROMREADTOCHDR/CDROMREADTOCENTRY ioctls, and a portable path built on
// the SCSI READ TOC, READ DISC INFORMATION and READ TRACK INFORMATION
// commands.
package optical

import (
	"github.com/openebs/smdev/mediatypes"
	"github.com/openebs/smdev/smderrors"
)

// cdMSFOffset, cdSeconds and cdFrames are the constants used to convert
// minutes/seconds/frames addressing into a zero-based logical block
// address: lba = minute*60*75 + second*75 + frame - 150.
const (
	cdSeconds   = 60
	cdFrames    = 75
	cdMSFOffset = 150
)

// MSFToLBA converts minute/second/frame addressing to a zero-based LBA.
func MSFToLBA(minute, second, frame uint8) int64 {
	lba := int64(minute) * cdSeconds
	lba += int64(second)
	lba *= cdFrames
	lba += int64(frame)
	lba -= cdMSFOffset
	return lba
}

// TOC is the assembled result of an optical-disc probe.
type TOC struct {
	Sessions []mediatypes.SectorRange
	LeadOut  mediatypes.SectorRange
	Tracks   []mediatypes.TrackValue
}

// buildSessions turns a sequence of ascending track start LBAs plus a
// final lead-out LBA into session sector ranges: each successive pair
// (start_i, start_{i+1}) becomes a range [start_i, start_{i+1}-start_i),
// and the lead-out closes the final session. Offsets must be
// monotonically non-decreasing.
func buildSessions(starts []uint64, leadOut uint64) ([]mediatypes.SectorRange, error) {
	boundaries := make([]uint64, 0, len(starts)+1)
	boundaries = append(boundaries, starts...)
	boundaries = append(boundaries, leadOut)

	for i := 1; i < len(boundaries); i++ {
		if boundaries[i] < boundaries[i-1] {
			return nil, smderrors.New(smderrors.DomainRuntime, smderrors.CodeValueOutOfBounds,
				"optical TOC offsets are not monotonically non-decreasing")
		}
	}

	sessions := make([]mediatypes.SectorRange, 0, len(starts))
	for i := 0; i < len(starts); i++ {
		r, err := mediatypes.NewSectorRange(boundaries[i], boundaries[i+1]-boundaries[i])
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, r)
	}
	return sessions, nil
}

// trackTypeFromControlAndMode derives a track's data mode from the TOC
// control nibble and, for data tracks, the MMC data-mode byte reported by
// READ TRACK INFORMATION. This is a best-effort classification: the
// control/data-mode bits do not distinguish every TrackType this package
// models (mode2 form1/form2 in particular), so data tracks default to
// the 2048-byte-sector mode unless the disc advertises otherwise.
func trackTypeFromControlAndMode(control byte, dataMode byte) mediatypes.TrackType {
	const dataTrackBit = 0x04
	if control&dataTrackBit == 0 {
		return mediatypes.TrackTypeAudio
	}
	switch dataMode & 0x0f {
	case 0:
		return mediatypes.TrackTypeMode1_2048
	case 1:
		return mediatypes.TrackTypeMode2_2048
	case 2:
		return mediatypes.TrackTypeMode2_2336
	default:
		return mediatypes.TrackTypeMode1_2048
	}
}
