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

// Package ata decodes the ATA IDENTIFY DEVICE page: serial, model and
// firmware strings, the configuration word for device-type/removable-bit
// extraction, and the feature-set words (SMART, security, HPA, DCO,
// media serial number) as diagnostics.
package ata

import (
	"fmt"

	"github.com/openebs/smdev/internal/byteorder"
)

// Table 47 of T13/2161-D Revision 5.
var minorVersions = map[uint16]string{
	0x0001: "ATA-1 X3T9.2/781D prior to revision 4",
	0x0002: "ATA-1 published, ANSI X3.221-1994",
	0x0003: "ATA-1 X3T9.2/781D revision 4",
	0x0004: "ATA-2 published, ANSI X3.279-1996",
	0x0005: "ATA-2 X3T10/948D prior to revision 2k",
	0x0006: "ATA-3 X3T10/2008D revision 1",
	0x0007: "ATA-2 X3T10/948D revision 2k",
	0x0008: "ATA-3 X3T10/2008D revision 0",
	0x0009: "ATA-2 X3T10/948D revision 3",
	0x000a: "ATA-3 published, ANSI X3.298-1997",
	0x000b: "ATA-3 X3T10/2008D revision 6",
	0x000c: "ATA-3 X3T13/2008D revision 7 and 7a",
	0x000d: "ATA/ATAPI-4 X3T13/1153D revision 6",
	0x000e: "ATA/ATAPI-4 T13/1153D revision 13",
	0x000f: "ATA/ATAPI-4 X3T13/1153D revision 7",
	0x0010: "ATA/ATAPI-4 T13/1153D revision 18",
	0x0011: "ATA/ATAPI-4 T13/1153D revision 15",
	0x0012: "ATA/ATAPI-4 published, ANSI NCITS 317-1998",
	0x0013: "ATA/ATAPI-5 T13/1321D revision 3",
	0x0014: "ATA/ATAPI-4 T13/1153D revision 14",
	0x0015: "ATA/ATAPI-5 T13/1321D revision 1",
	0x0016: "ATA/ATAPI-5 published, ANSI NCITS 340-2000",
	0x0017: "ATA/ATAPI-4 T13/1153D revision 17",
	0x0018: "ATA/ATAPI-6 T13/1410D revision 0",
	0x0019: "ATA/ATAPI-6 T13/1410D revision 3a",
	0x001a: "ATA/ATAPI-7 T13/1532D revision 1",
	0x001b: "ATA/ATAPI-6 T13/1410D revision 2",
	0x001c: "ATA/ATAPI-6 T13/1410D revision 1",
	0x001d: "ATA/ATAPI-7 published, ANSI INCITS 397-2005",
	0x001e: "ATA/ATAPI-7 T13/1532D revision 0",
	0x001f: "ACS-3 T13/2161-D revision 3b",
	0x0021: "ATA/ATAPI-7 T13/1532D revision 4a",
	0x0022: "ATA/ATAPI-6 published, ANSI INCITS 361-2002",
	0x0027: "ATA8-ACS T13/1699-D revision 3c",
	0x0028: "ATA8-ACS T13/1699-D revision 6",
	0x0029: "ATA8-ACS T13/1699-D revision 4",
	0x0031: "ACS-2 T13/2015-D revision 2",
	0x0033: "ATA8-ACS T13/1699-D revision 3e",
	0x0039: "ATA8-ACS T13/1699-D revision 4c",
	0x0042: "ATA8-ACS T13/1699-D revision 3f",
	0x0052: "ATA8-ACS T13/1699-D revision 3b",
	0x005e: "ACS-4 T13/BSR INCITS 529 revision 5",
	0x006d: "ACS-3 T13/2161-D revision 5",
	0x0082: "ACS-2 published, ANSI INCITS 482-2012",
	0x0107: "ATA8-ACS T13/1699-D revision 2d",
	0x010a: "ACS-3 published, ANSI INCITS 522-2014",
	0x0110: "ACS-2 T13/2015-D revision 3",
	0x011b: "ACS-3 T13/2161-D revision 4",
}

// IdentifyData is the ATA IDENTIFY DEVICE page: a 512-byte page of
// 16-bit words (ATA8-ACS). Only the decoded fields are named; everything
// else is padding.
type IdentifyData struct {
	ConfigWord     uint16     // Word 0, general configuration.
	_              [9]uint16  // Word 1..9.
	SerialNumber   [20]byte   // Word 10..19, byte-swapped, space-padded.
	_              [3]uint16  // Word 20..22.
	FirmwareRev    [8]byte    // Word 23..26, byte-swapped, space-padded.
	ModelNumber    [40]byte   // Word 27..46, byte-swapped, space-padded.
	_              [33]uint16 // Word 47..79.
	MajorVer       uint16     // Word 80.
	MinorVer       uint16     // Word 81.
	Word82         uint16     // Word 82, command set supported 1 (SMART, HPA).
	Word83         uint16     // Word 83, command set supported 2 (DCO).
	Word84         uint16     // Word 84, command set/feature supported extension.
	Word85         uint16     // Word 85, command set/feature enabled 1 (SMART).
	_              uint16     // Word 86.
	Word87         uint16     // Word 87, command set/feature enabled extension.
	_              [18]uint16 // Word 88..105.
	SectorSize     uint16     // Word 106, logical/physical sector size.
	_              [1]uint16  // Word 107.
	WWN            [4]uint16  // Word 108..111, World Wide Name.
	_              [16]uint16 // Word 112..127.
	Word128        uint16     // Word 128, security status.
	_              [88]uint16 // Word 129..216.
	RotationRate   uint16     // Word 217, nominal media rotation rate.
	_              [4]uint16  // Word 218..221.
	TransportMajor uint16     // Word 222, transport major version.
	_              [33]uint16 // Word 223..255.
} // 512 bytes total.

// SerialNumberString returns the trimmed, byte-order-corrected serial
// number.
func (d *IdentifyData) SerialNumberString() string {
	return trimmedString(byteorder.SwapPairs(d.SerialNumber[:]))
}

// ModelNumberString returns the trimmed, byte-order-corrected model
// number.
func (d *IdentifyData) ModelNumberString() string {
	return trimmedString(byteorder.SwapPairs(d.ModelNumber[:]))
}

// FirmwareRevisionString returns the trimmed, byte-order-corrected
// firmware revision.
func (d *IdentifyData) FirmwareRevisionString() string {
	return trimmedString(byteorder.SwapPairs(d.FirmwareRev[:]))
}

func trimmedString(b []byte) string {
	start, end := 0, len(b)
	for start < end && (b[start] == ' ' || b[start] == 0) {
		start++
	}
	for end > start && (b[end-1] == ' ' || b[end-1] == 0) {
		end--
	}
	return string(b[start:end])
}

// WorldWideName formats the WWN fields as NAA/OUI/unique-id.
func (d *IdentifyData) WorldWideName() string {
	naa := d.WWN[0] >> 12
	oui := (uint32(d.WWN[0]&0x0fff) << 12) | (uint32(d.WWN[1]) >> 4)
	unique := ((uint64(d.WWN[1]) & 0xf) << 32) | (uint64(d.WWN[2]) << 16) | uint64(d.WWN[3])
	return fmt.Sprintf("%x %06x %09x", naa, oui, unique)
}

// SectorSizes returns the logical and physical sector sizes in bytes.
func (d *IdentifyData) SectorSizes() (logical, physical uint16) {
	logical, physical = 512, 512
	if d.SectorSize&0xc000 == 0x4000 && d.SectorSize&0x2000 != 0 {
		physical <<= d.SectorSize & 0x0f
	}
	return logical, physical
}

// Removable reports the removable-media bit of the configuration word.
func (d *IdentifyData) Removable() bool { return d.ConfigWord&0x0080 != 0 }

// DeviceType returns the ATAPI/SCSI peripheral device type encoded in the
// configuration word.
func (d *IdentifyData) DeviceType() uint8 { return uint8(d.ConfigWord>>8) & 0x1f }

// SMARTSupported reports whether the device claims SMART support.
func (d *IdentifyData) SMARTSupported() bool { return d.Word82&0x0001 != 0 }

// SMARTEnabled reports whether SMART is currently enabled.
func (d *IdentifyData) SMARTEnabled() bool { return d.Word85&0x0001 != 0 }

// SecuritySupported reports whether the ATA security feature set is
// supported.
func (d *IdentifyData) SecuritySupported() bool { return d.Word82&0x0002 != 0 }

// SecurityEnabled reports whether the security feature set is enabled.
func (d *IdentifyData) SecurityEnabled() bool { return d.Word128&0x0002 != 0 }

// HPASupported reports Host Protected Area support.
func (d *IdentifyData) HPASupported() bool { return d.Word82&0x0400 != 0 }

// DCOSupported reports Device Configuration Overlay support.
func (d *IdentifyData) DCOSupported() bool { return d.Word83&0x0080 != 0 }

// MediaSerialNumberSupported reports media-serial-number support.
func (d *IdentifyData) MediaSerialNumberSupported() bool { return d.Word84&0x0004 != 0 }

// MajorVersion decodes the ATA major version word.
func (d *IdentifyData) MajorVersion() string {
	if d.MajorVer == 0 || d.MajorVer == 0xffff {
		return "not reported"
	}
	switch byteorder.MostSignificantBit(uint(d.MajorVer)) {
	case 1:
		return "ATA-1"
	case 2:
		return "ATA-2"
	case 3:
		return "ATA-3"
	case 4:
		return "ATA/ATAPI-4"
	case 5:
		return "ATA/ATAPI-5"
	case 6:
		return "ATA/ATAPI-6"
	case 7:
		return "ATA/ATAPI-7"
	case 8:
		return "ATA8-ACS"
	case 9:
		return "ACS-2"
	case 10:
		return "ACS-3"
	default:
		return "unknown"
	}
}

// MinorVersion decodes the ATA minor version word via table lookup.
func (d *IdentifyData) MinorVersion() string {
	if d.MinorVer == 0 || d.MinorVer == 0xffff {
		return "not reported"
	}
	if s, ok := minorVersions[d.MinorVer]; ok {
		return s
	}
	return "unknown"
}

// Transport decodes the transport major version word.
func (d *IdentifyData) Transport() string {
	if d.TransportMajor == 0 || d.TransportMajor == 0xffff {
		return "not reported"
	}
	switch d.TransportMajor >> 12 {
	case 0x0:
		return "Parallel ATA"
	case 0x1:
		s := "Serial ATA"
		switch byteorder.MostSignificantBit(uint(d.TransportMajor & 0x0fff)) {
		case 0:
			return s + " ATA8-AST"
		case 1:
			return s + " SATA 1.0a"
		case 2:
			return s + " SATA II Ext"
		case 3:
			return s + " SATA 2.5"
		case 4:
			return s + " SATA 2.6"
		case 5:
			return s + " SATA 3.0"
		case 6:
			return s + " SATA 3.1"
		case 7:
			return s + " SATA 3.2"
		default:
			return fmt.Sprintf("%s (%#03x)", s, d.TransportMajor&0x0fff)
		}
	case 0xe:
		return fmt.Sprintf("PCIe (%#03x)", d.TransportMajor&0x0fff)
	default:
		return fmt.Sprintf("unknown (%#04x)", d.TransportMajor)
	}
}
