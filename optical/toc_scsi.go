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

	"github.com/sirupsen/logrus"

	"github.com/openebs/smdev/internal/smlog"
	"github.com/openebs/smdev/mediatypes"
	"github.com/openebs/smdev/scsi"
	"github.com/openebs/smdev/smderrors"
)

// cdbIssuer is the subset of *scsi.Transport the portable TOC path needs;
// factored out so tests can exercise ReadTOCSCSI against a fake transport
// instead of a real SG_IO-capable device file.
type cdbIssuer interface {
	ReadTOC(format uint8, timeBit bool, track uint8, buf []byte) (int, error)
	ReadDiscInformation(buf []byte) (int, error)
	ReadTrackInformation(track uint32, buf []byte) (int, error)
}

var _ cdbIssuer = (*scsi.Transport)(nil)

// discInformationSessionCount decodes the MMC-5 READ DISC INFORMATION
// "Number of Sessions" field, bytes 8-9 big-endian.
func discInformationSessionCount(discInfo []byte) (uint16, bool) {
	if len(discInfo) < 10 {
		return 0, false
	}
	return binary.BigEndian.Uint16(discInfo[8:10]), true
}

// ReadTOCSCSI reads the table of contents through the portable SCSI
// command set: READ TOC (format 0) for the track listing, READ DISC
// INFORMATION for the session count, and READ TRACK INFORMATION per track
// for the data mode. mediainfo falls back to it when the CD-ROM ioctls
// fail and a SCSI transport is available; scsi.Transport is implemented
// only for Linux, so on other targets mediainfo never reaches this path.
func ReadTOCSCSI(t cdbIssuer) (*TOC, error) {
	hdrBuf := make([]byte, 4)
	n, err := t.ReadTOC(0, false, 1, hdrBuf)
	if err != nil {
		return nil, smderrors.Wrap(err, smderrors.DomainIO, smderrors.CodeReadFailed, "READ TOC header failed")
	}
	if n < 4 {
		return nil, smderrors.New(smderrors.DomainInput, smderrors.CodeInvalidData, "READ TOC header too short")
	}
	firstTrack := hdrBuf[2]
	lastTrack := hdrBuf[3]

	// A full-size response holds the 4-byte header plus 8 bytes per track
	// descriptor (including the lead-out descriptor).
	numDescriptors := int(lastTrack)-int(firstTrack)+1 + 1
	buf := make([]byte, 4+8*numDescriptors)
	if _, err := t.ReadTOC(0, false, firstTrack, buf); err != nil {
		return nil, smderrors.Wrap(err, smderrors.DomainIO, smderrors.CodeReadFailed, "READ TOC failed")
	}

	starts := make([]uint64, 0, numDescriptors-1)
	controls := make([]byte, 0, numDescriptors-1)
	var leadOut uint64

	for i := 0; i < numDescriptors; i++ {
		off := 4 + i*8
		if off+8 > len(buf) {
			break
		}
		control := buf[off+1] >> 4
		trackNo := buf[off+2]
		lba := uint64(binary.BigEndian.Uint32(buf[off+4 : off+8]))
		if trackNo == 0xaa {
			leadOut = lba
			continue
		}
		starts = append(starts, lba)
		controls = append(controls, control)
	}

	sessions, err := buildSessions(starts, leadOut)
	if err != nil {
		return nil, err
	}

	// READ DISC INFORMATION's session count cross-checks the TOC-derived
	// session boundaries above; it is not itself a source of LBA data, so
	// a mismatch is logged rather than treated as fatal - the TOC listing
	// remains authoritative for the actual sector ranges.
	discInfo := make([]byte, 34)
	if n, err := t.ReadDiscInformation(discInfo); err != nil {
		smlog.Logger().WithError(err).Debug("optical: READ DISC INFORMATION failed")
	} else if count, ok := discInformationSessionCount(discInfo[:n]); ok && int(count) != len(sessions) {
		smlog.Logger().WithFields(logrus.Fields{
			"disc_information_sessions": count,
			"toc_derived_sessions":      len(sessions),
		}).Warn("optical: READ DISC INFORMATION session count disagrees with READ TOC")
	}

	tracks := make([]mediatypes.TrackValue, 0, len(starts))
	for i, control := range controls {
		var dataMode byte
		trackInfo := make([]byte, 32)
		if _, err := t.ReadTrackInformation(uint32(firstTrack)+uint32(i), trackInfo); err == nil && len(trackInfo) >= 7 {
			dataMode = trackInfo[6] & 0x0f
		}
		r, err := mediatypes.NewSectorRange(sessions[i].StartSector(), sessions[i].NumberOfSectors())
		if err != nil {
			return nil, err
		}
		tracks = append(tracks, mediatypes.TrackValue{
			Range: r,
			Type:  trackTypeFromControlAndMode(control, dataMode),
		})
	}

	leadOutRange, err := mediatypes.NewSectorRange(leadOut, 0)
	if err != nil {
		return nil, err
	}

	return &TOC{Sessions: sessions, LeadOut: leadOutRange, Tracks: tracks}, nil
}
