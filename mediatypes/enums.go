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

// BusType identifies the transport a device is attached through.
type BusType int

const (
	BusTypeUnknown BusType = iota
	BusTypeATA
	BusTypeSCSI
	BusTypeUSB
	BusTypeFireWire
)

func (b BusType) String() string {
	switch b {
	case BusTypeATA:
		return "ATA"
	case BusTypeSCSI:
		return "SCSI"
	case BusTypeUSB:
		return "USB"
	case BusTypeFireWire:
		return "FireWire"
	default:
		return "unknown"
	}
}

// MediaType is derived from the SCSI peripheral device type and the
// removable-media flag: optical when the peripheral type is 5 (CD/DVD),
// otherwise removable or fixed.
type MediaType int

const (
	MediaTypeFixed MediaType = iota
	MediaTypeRemovable
	MediaTypeOptical
)

func (m MediaType) String() string {
	switch m {
	case MediaTypeRemovable:
		return "removable"
	case MediaTypeOptical:
		return "optical"
	default:
		return "fixed"
	}
}

// scsiDeviceTypeOpticalDisc is the SCSI peripheral device type code for a
// CD/DVD drive (0x05).
const scsiDeviceTypeOpticalDisc = 0x05

// DeriveMediaType maps the SCSI peripheral device type and removable flag
// onto a media type.
func DeriveMediaType(deviceType uint8, removable bool) MediaType {
	if deviceType == scsiDeviceTypeOpticalDisc {
		return MediaTypeOptical
	}
	if removable {
		return MediaTypeRemovable
	}
	return MediaTypeFixed
}
