//go:build linux

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
	"unsafe"

	"golang.org/x/sys/unix"

	"github.com/openebs/smdev/devicefile"
	"github.com/openebs/smdev/internal/byteorder"
	"github.com/openebs/smdev/mediatypes"
	"github.com/openebs/smdev/smderrors"
)

const (
	cdromReadTOCHDR   = 0x5305
	cdromReadTOCEntry = 0x5306

	cdromLBA     = 0x01
	cdromMSF     = 0x02
	cdromLeadOut = 0xaa
)

type cdromTOCHeader struct {
	trk0 uint8
	trk1 uint8
}

// cdromTOCEntry mirrors struct cdrom_tocentry (linux/cdrom.h). The
// address union holds an int, so it is int-aligned: one pad byte follows
// the format field. Only the LBA form is requested.
type cdromTOCEntry struct {
	track    uint8
	adrCtrl  uint8
	format   uint8
	_        uint8
	addr     [4]byte
	dataMode uint8
	_        [3]uint8
}

func (e cdromTOCEntry) control() byte { return e.adrCtrl >> 4 }

func (e cdromTOCEntry) lba() uint64 {
	return uint64(byteorder.Native.Uint32(e.addr[:]))
}

// ReadTOCIoctl reads the table of contents via the native
// CDROMREADTOCHDR/CDROMREADTOCENTRY ioctls.
func ReadTOCIoctl(file devicefile.File) (*TOC, error) {
	fd, ok := devicefile.Fd(file)
	if !ok {
		return nil, smderrors.New(smderrors.DomainRuntime, smderrors.CodeUnsupportedValue,
			"device file does not expose a native descriptor")
	}

	var hdr cdromTOCHeader
	if _, _, errno := unix.Syscall(unix.SYS_IOCTL, uintptr(fd), uintptr(cdromReadTOCHDR), uintptr(unsafe.Pointer(&hdr))); errno != 0 {
		return nil, smderrors.Wrap(errno, smderrors.DomainIO, smderrors.CodeIoctlFailed, "CDROMREADTOCHDR failed")
	}

	starts := make([]uint64, 0, int(hdr.trk1)-int(hdr.trk0)+1)
	tracks := make([]mediatypes.TrackValue, 0, cap(starts))

	for track := hdr.trk0; track <= hdr.trk1; track++ {
		entry := cdromTOCEntry{track: track, format: cdromLBA}
		if _, _, errno := unix.Syscall(unix.SYS_IOCTL, uintptr(fd), uintptr(cdromReadTOCEntry), uintptr(unsafe.Pointer(&entry))); errno != 0 {
			return nil, smderrors.Wrap(errno, smderrors.DomainIO, smderrors.CodeIoctlFailed, "CDROMREADTOCENTRY failed")
		}
		lba := entry.lba()
		starts = append(starts, lba)

		trackType := trackTypeFromControlAndMode(entry.control(), entry.dataMode)
		tracks = append(tracks, mediatypes.TrackValue{Type: trackType})
		if track == 0xff {
			break
		}
	}

	leadOutEntry := cdromTOCEntry{track: cdromLeadOut, format: cdromLBA}
	if _, _, errno := unix.Syscall(unix.SYS_IOCTL, uintptr(fd), uintptr(cdromReadTOCEntry), uintptr(unsafe.Pointer(&leadOutEntry))); errno != 0 {
		return nil, smderrors.Wrap(errno, smderrors.DomainIO, smderrors.CodeIoctlFailed, "CDROMREADTOCENTRY(lead-out) failed")
	}
	leadOut := leadOutEntry.lba()

	sessions, err := buildSessions(starts, leadOut)
	if err != nil {
		return nil, err
	}
	for i := range tracks {
		r, err := mediatypes.NewSectorRange(sessions[i].StartSector(), sessions[i].NumberOfSectors())
		if err != nil {
			return nil, err
		}
		tracks[i].Range = r
	}

	leadOutRange, err := mediatypes.NewSectorRange(leadOut, 0)
	if err != nil {
		return nil, err
	}

	return &TOC{Sessions: sessions, LeadOut: leadOutRange, Tracks: tracks}, nil
}
