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

// Package byteorder provides the small set of endianness and bit helpers
// shared by the SCSI and ATA decoders.
package byteorder

import (
	"encoding/binary"
	"math/bits"
	"unsafe"
)

// Native is the byte order of the host CPU, used when decoding structures
// that the kernel fills in using the machine's native endianness (as
// opposed to the big-endian wire format of SCSI CDB responses).
var Native binary.ByteOrder

func init() {
	i := uint32(1)
	b := (*[4]byte)(unsafe.Pointer(&i))
	if b[0] == 1 {
		Native = binary.LittleEndian
	} else {
		Native = binary.BigEndian
	}
}

// MostSignificantBit returns the position of the highest set bit in x, or
// 0 if x is zero.
func MostSignificantBit(x uint) int {
	if x == 0 {
		return 0
	}
	return bits.Len(x) - 1
}

// SwapPairs returns a new slice holding b with every adjacent byte pair
// swapped; b itself is not modified. An unpaired trailing byte of an
// odd-length b is left zero in the result. ATA IDENTIFY strings (serial
// number, model number, firmware revision) are stored as byte-swapped
// word pairs.
func SwapPairs(b []byte) []byte {
	out := make([]byte, len(b))
	for i := 0; i+1 < len(b); i += 2 {
		out[i], out[i+1] = b[i+1], b[i]
	}
	return out
}
