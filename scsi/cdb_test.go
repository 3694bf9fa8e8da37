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

package scsi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildInquiryCDB(t *testing.T) {
	cdb := buildInquiryCDB(true, 0x80, 64)
	assert.Equal(t, byte(OpInquiry), cdb[0])
	assert.Equal(t, byte(0x01), cdb[1]) // EVPD bit
	assert.Equal(t, byte(0x80), cdb[2]) // page code
	assert.Equal(t, byte(0x00), cdb[3])
	assert.Equal(t, byte(0x40), cdb[4]) // alloc len = 64, big-endian
}

func TestBuildInquiryCDBNoEVPD(t *testing.T) {
	cdb := buildInquiryCDB(false, 0, 36)
	assert.Equal(t, byte(0x00), cdb[1])
	assert.Equal(t, byte(0x00), cdb[2])
}

func TestBuildReadTOCCDB(t *testing.T) {
	cdb := buildReadTOCCDB(0x02, true, 1, 804)
	assert.Equal(t, byte(OpReadTOC), cdb[0])
	assert.Equal(t, byte(0x02), cdb[1]) // MSF bit
	assert.Equal(t, byte(0x02), cdb[2]) // format, low nibble
	assert.Equal(t, byte(1), cdb[6])    // starting track
	assert.Equal(t, byte(0x03), cdb[7])
	assert.Equal(t, byte(0x24), cdb[8]) // 804 big-endian
}

func TestBuildReadDiscInformationCDB(t *testing.T) {
	cdb := buildReadDiscInformationCDB(34)
	assert.Equal(t, byte(OpReadDiscInformation), cdb[0])
	assert.Equal(t, byte(0x00), cdb[7])
	assert.Equal(t, byte(34), cdb[8])
}

func TestBuildReadTrackInformationCDB(t *testing.T) {
	cdb := buildReadTrackInformationCDB(5, 32)
	assert.Equal(t, byte(OpReadTrackInformation), cdb[0])
	assert.Equal(t, byte(0x01), cdb[1]) // address type: track
	assert.Equal(t, byte(0), cdb[2])
	assert.Equal(t, byte(0), cdb[3])
	assert.Equal(t, byte(0), cdb[4])
	assert.Equal(t, byte(5), cdb[5])
	assert.Equal(t, byte(32), cdb[8])
}

func TestParseInquiryRoundTrip(t *testing.T) {
	buf := make([]byte, InquiryResponseLength)
	buf[0] = 0x05 // peripheral device type 5 (CD/DVD)
	copy(buf[8:16], "ATA     ")
	copy(buf[16:32], "Virtual Optical ")
	copy(buf[32:36], "1.0 ")

	resp, err := ParseInquiry(buf)
	require.NoError(t, err)
	assert.Equal(t, uint8(0x05), resp.DeviceType())
	assert.Equal(t, "ATA     ", string(resp.VendorID[:]))
	assert.Equal(t, "Virtual Optical ", string(resp.ProductID[:]))
}

func TestParseInquiryTooShort(t *testing.T) {
	_, err := ParseInquiry(make([]byte, 10))
	assert.Error(t, err)
}

func TestRemovable(t *testing.T) {
	assert.True(t, Removable([]byte{0x00, 0x80}))
	assert.False(t, Removable([]byte{0x00, 0x00}))
	assert.False(t, Removable(nil))
}
