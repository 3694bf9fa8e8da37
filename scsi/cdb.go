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

// Package scsi frames and issues SCSI Command Descriptor Blocks through
// the Linux generic-SCSI pass-through (SG_IO): INQUIRY for device
// identity, and READ TOC, READ DISC INFORMATION and READ TRACK
// INFORMATION for the optical-disc probe.
package scsi

import (
	"encoding/binary"

	"github.com/openebs/smdev/smderrors"
)

// CDB6 and CDB10 are the two fixed-length SCSI command packets this
// package builds.
type CDB6 [6]byte
type CDB10 [10]byte

// Operation codes used by this package.
const (
	OpInquiry              = 0x12
	OpReadTOC              = 0x43
	OpReadDiscInformation  = 0x51
	OpReadTrackInformation = 0x52

	// InquiryResponseLength is the minimum length of a standard INQUIRY
	// response (bytes 0-35).
	InquiryResponseLength = 36
)

// InquiryResponse is the standard INQUIRY response layout (SPC).
type InquiryResponse struct {
	Peripheral byte
	_          byte
	Version    byte
	_          [5]byte
	VendorID   [8]byte
	ProductID  [16]byte
	ProductRev [4]byte
}

// DeviceType returns the SCSI peripheral device type (low 5 bits of the
// Peripheral byte); type 5 identifies a CD/DVD drive.
func (r InquiryResponse) DeviceType() uint8 { return r.Peripheral & 0x1f }

// Removable reports the removable-media bit of the INQUIRY response; it
// lives in the byte immediately following Peripheral, not modeled as a
// named field above since it is otherwise reserved/vendor bits.
func Removable(raw []byte) bool {
	if len(raw) < 2 {
		return false
	}
	return raw[1]&0x80 != 0
}

// ParseInquiry decodes a raw standard-INQUIRY response buffer.
func ParseInquiry(buf []byte) (InquiryResponse, error) {
	var resp InquiryResponse
	if len(buf) < InquiryResponseLength {
		return resp, smderrors.New(smderrors.DomainInput, smderrors.CodeInvalidData,
			"INQUIRY response shorter than expected")
	}
	resp.Peripheral = buf[0]
	resp.Version = buf[2]
	copy(resp.VendorID[:], buf[8:16])
	copy(resp.ProductID[:], buf[16:32])
	copy(resp.ProductRev[:], buf[32:36])
	return resp, nil
}

func buildInquiryCDB(evpd bool, pageCode uint8, allocLen uint16) CDB6 {
	var cdb CDB6
	cdb[0] = OpInquiry
	if evpd {
		cdb[1] = 0x01
	}
	cdb[2] = pageCode
	binary.BigEndian.PutUint16(cdb[3:5], allocLen)
	return cdb
}

func buildReadTOCCDB(format uint8, timeBit bool, track uint8, allocLen uint16) CDB10 {
	var cdb CDB10
	cdb[0] = OpReadTOC
	if timeBit {
		cdb[1] |= 0x02
	}
	cdb[2] = format & 0x0f
	cdb[6] = track
	binary.BigEndian.PutUint16(cdb[7:9], allocLen)
	return cdb
}

func buildReadDiscInformationCDB(allocLen uint16) CDB10 {
	var cdb CDB10
	cdb[0] = OpReadDiscInformation
	binary.BigEndian.PutUint16(cdb[7:9], allocLen)
	return cdb
}

func buildReadTrackInformationCDB(track uint32, allocLen uint16) CDB10 {
	var cdb CDB10
	cdb[0] = OpReadTrackInformation
	cdb[1] = 0x01 // address type: track number
	binary.BigEndian.PutUint32(cdb[2:6], track)
	binary.BigEndian.PutUint16(cdb[7:9], allocLen)
	return cdb
}
