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

package ata

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/openebs/smdev/internal/byteorder"
)

// swappedASCII encodes s the way the ATA IDENTIFY page stores strings:
// byte-swapped 16-bit word pairs, space-padded to width.
func swappedASCII(s string, width int) [20]byte {
	var out [20]byte
	padded := make([]byte, width)
	copy(padded, []byte(s))
	for i := len(s); i < width; i++ {
		padded[i] = ' '
	}
	swapped := byteorder.SwapPairs(padded)
	copy(out[:], swapped)
	return out
}

func TestSerialNumberStringTrimsAndUnswaps(t *testing.T) {
	var d IdentifyData
	d.SerialNumber = swappedASCII("ABC123", 20)
	assert.Equal(t, "ABC123", d.SerialNumberString())
}

func TestRemovableBit(t *testing.T) {
	var d IdentifyData
	d.ConfigWord = 0x0080
	assert.True(t, d.Removable())

	d.ConfigWord = 0x0000
	assert.False(t, d.Removable())
}

func TestDeviceTypeFromConfigWord(t *testing.T) {
	var d IdentifyData
	d.ConfigWord = 0x0500 // device type 5 in bits 8-12
	assert.Equal(t, uint8(5), d.DeviceType())
}

func TestFeatureBits(t *testing.T) {
	var d IdentifyData
	d.Word82 = 0x0001 | 0x0002 | 0x0400
	d.Word83 = 0x0080
	d.Word84 = 0x0004
	d.Word85 = 0x0001
	d.Word128 = 0x0002

	assert.True(t, d.SMARTSupported())
	assert.True(t, d.SMARTEnabled())
	assert.True(t, d.SecuritySupported())
	assert.True(t, d.SecurityEnabled())
	assert.True(t, d.HPASupported())
	assert.True(t, d.DCOSupported())
	assert.True(t, d.MediaSerialNumberSupported())
}

func TestMajorVersionNotReported(t *testing.T) {
	var d IdentifyData
	d.MajorVer = 0
	assert.Equal(t, "not reported", d.MajorVersion())

	d.MajorVer = 0xffff
	assert.Equal(t, "not reported", d.MajorVersion())
}

func TestMajorVersionDecodesHighestBit(t *testing.T) {
	var d IdentifyData
	d.MajorVer = 0x00ff // bits 0-7 set -> highest bit position 7
	assert.Equal(t, "ATA/ATAPI-7", d.MajorVersion())
}

func TestMinorVersionLookup(t *testing.T) {
	var d IdentifyData
	d.MinorVer = 0x0018
	assert.Equal(t, "ATA/ATAPI-6 T13/1410D revision 0", d.MinorVersion())

	d.MinorVer = 0xbeef
	assert.Equal(t, "unknown", d.MinorVersion())
}

func TestSectorSizesDefault(t *testing.T) {
	var d IdentifyData
	logical, physical := d.SectorSizes()
	assert.Equal(t, uint16(512), logical)
	assert.Equal(t, uint16(512), physical)
}

func TestSectorSizesLargerPhysical(t *testing.T) {
	var d IdentifyData
	d.SectorSize = 0x4000 | 0x2000 | 0x03 // valid, physical-larger, 2^3 logical per physical
	_, physical := d.SectorSizes()
	assert.Equal(t, uint16(512<<3), physical)
}
