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

// Package mediainfo combines the SCSI INQUIRY, ATA IDENTIFY, media
// geometry and optical TOC probes into the canonical device identity
// record the smdev handle exposes. Every individual probe is best-effort:
// a device that answers none of them still opens, it just carries an
// empty identity.
package mediainfo

import (
	"io"

	"github.com/openebs/smdev/ata"
	"github.com/openebs/smdev/devicefile"
	"github.com/openebs/smdev/geometry"
	"github.com/openebs/smdev/internal/smlog"
	"github.com/openebs/smdev/mediatypes"
	"github.com/openebs/smdev/optical"
	"github.com/openebs/smdev/scsi"
	"github.com/openebs/smdev/smderrors"
)

// ataVendorID is the INQUIRY vendor identification string ATA-over-SCSI
// translation devices report.
var ataVendorID = [8]byte{'A', 'T', 'A', ' ', ' ', ' ', ' ', ' '}

// Info is the canonical device identity record.
type Info struct {
	Vendor         string
	Model          string
	SerialNumber   string
	BusType        mediatypes.BusType
	DeviceType     uint8
	Removable      bool
	MediaSize      uint64
	BytesPerSector uint32
	Sessions       []mediatypes.SectorRange
	LeadOuts       []mediatypes.SectorRange
	Tracks         []mediatypes.TrackValue
}

// Probe gathers the canonical identity record for file. Every sub-probe is
// best-effort: failures are logged and ignored, so probing a regular file
// (where every device ioctl fails) yields an empty record rather than an
// error and the file stays readable through the handle.
func Probe(file devicefile.File) (*Info, error) {
	info := &Info{}

	transport, transportErr := scsi.NewTransport(file)

	var inquiryRaw [scsi.InquiryResponseLength]byte
	var inquiry scsi.InquiryResponse
	haveInquiry := false

	if transportErr == nil {
		if _, err := transport.Inquiry(false, 0, inquiryRaw[:]); err == nil {
			if resp, err := scsi.ParseInquiry(inquiryRaw[:]); err == nil {
				inquiry = resp
				haveInquiry = true
			}
		} else {
			smlog.Logger().WithError(err).Debug("mediainfo: INQUIRY failed")
		}
	}

	if haveInquiry {
		info.Vendor = trimIdentity(inquiry.VendorID[:])
		info.Model = trimIdentity(inquiry.ProductID[:])
		info.DeviceType = inquiry.DeviceType()
		info.Removable = scsi.Removable(inquiryRaw[:])
		if inquiry.VendorID == ataVendorID {
			info.BusType = mediatypes.BusTypeATA
		}
	}

	if transportErr == nil && info.BusType == mediatypes.BusTypeUnknown {
		var vpd80 [64]byte
		if n, err := transport.Inquiry(true, 0x80, vpd80[:]); err == nil && n > 4 {
			info.SerialNumber = trimIdentity(vpd80[4:n])
		} else if err != nil {
			smlog.Logger().WithError(err).Debug("mediainfo: INQUIRY VPD page 0x80 failed")
		}
		if isSCSI, err := transport.GetBusType(); err == nil && isSCSI {
			info.BusType = mediatypes.BusTypeSCSI
		}
	}

	if info.BusType == mediatypes.BusTypeATA || !haveInquiry {
		if ident, err := ata.GetDeviceConfiguration(file); err == nil {
			info.Model = ident.ModelNumberString()
			info.SerialNumber = ident.SerialNumberString()
			info.Removable = ident.Removable()
			info.DeviceType = ident.DeviceType()
			info.BusType = mediatypes.BusTypeATA
		} else {
			smlog.Logger().WithError(err).Debug("mediainfo: ATA IDENTIFY failed")
		}
	}

	if size, err := geometry.MediaSize(file); err == nil {
		info.MediaSize = size
	} else {
		smlog.Logger().WithError(err).Debug("mediainfo: media size probe failed")
		// Regular files (disk images) have no block-device geometry; the
		// read engine still needs a media size to clamp reads at EOF.
		if end, serr := file.SeekNative(0, io.SeekEnd); serr == nil && end > 0 {
			info.MediaSize = uint64(end)
		}
		if _, serr := file.SeekNative(0, io.SeekStart); serr != nil {
			smlog.Logger().WithError(serr).Debug("mediainfo: unable to rewind after size probe")
		}
	}
	if sectorSize, err := geometry.BytesPerSector(file); err == nil {
		info.BytesPerSector = sectorSize
	} else {
		smlog.Logger().WithError(err).Debug("mediainfo: sector size probe failed")
	}

	if info.DeviceType == 0x05 {
		toc, err := probeOptical(file, transport)
		if err != nil {
			smlog.Logger().WithError(err).Debug("mediainfo: optical TOC probe failed")
		} else {
			info.Sessions = toc.Sessions
			info.LeadOuts = []mediatypes.SectorRange{toc.LeadOut}
			info.Tracks = toc.Tracks
		}
	}

	if !haveInquiry && info.BusType != mediatypes.BusTypeATA {
		smlog.Logger().Debug("mediainfo: neither SCSI INQUIRY nor ATA IDENTIFY succeeded; treating as a plain file")
	}
	return info, nil
}

func probeOptical(file devicefile.File, transport *scsi.Transport) (*optical.TOC, error) {
	if toc, err := optical.ReadTOCIoctl(file); err == nil {
		return toc, nil
	}
	if transport != nil {
		return optical.ReadTOCSCSI(transport)
	}
	return nil, smderrors.New(smderrors.DomainRuntime, smderrors.CodeUnsupportedValue,
		"no optical TOC path available")
}

func trimIdentity(b []byte) string {
	start, end := 0, len(b)
	for start < end && (b[start] == ' ' || b[start] == 0) {
		start++
	}
	for end > start && (b[end-1] == ' ' || b[end-1] == 0) {
		end--
	}
	return string(b[start:end])
}
