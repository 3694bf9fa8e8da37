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

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeriveMediaType(t *testing.T) {
	assert.Equal(t, MediaTypeOptical, DeriveMediaType(0x05, false))
	assert.Equal(t, MediaTypeOptical, DeriveMediaType(0x05, true))
	assert.Equal(t, MediaTypeRemovable, DeriveMediaType(0x00, true))
	assert.Equal(t, MediaTypeFixed, DeriveMediaType(0x00, false))
}

func TestBusTypeString(t *testing.T) {
	assert.Equal(t, "ATA", BusTypeATA.String())
	assert.Equal(t, "SCSI", BusTypeSCSI.String())
	assert.Equal(t, "USB", BusTypeUSB.String())
	assert.Equal(t, "FireWire", BusTypeFireWire.String())
	assert.Equal(t, "unknown", BusTypeUnknown.String())
}

func TestMediaTypeString(t *testing.T) {
	assert.Equal(t, "fixed", MediaTypeFixed.String())
	assert.Equal(t, "removable", MediaTypeRemovable.String())
	assert.Equal(t, "optical", MediaTypeOptical.String())
}
