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

import "github.com/openebs/smdev/smderrors"

// TrackType is the closed set of optical track data modes smdev
// recognizes. The numeric suffix names the sector payload size in bytes.
type TrackType int

const (
	TrackTypeAudio TrackType = iota
	TrackTypeCDG
	TrackTypeMode1_2048
	TrackTypeMode1_2352
	TrackTypeMode2_2048
	TrackTypeMode2_2324
	TrackTypeMode2_2336
	TrackTypeMode2_2352
	TrackTypeCDI_2336
	TrackTypeCDI_2352
)

var bytesPerSector = map[TrackType]uint32{
	TrackTypeAudio:      2352,
	TrackTypeCDG:        2448,
	TrackTypeMode1_2048: 2048,
	TrackTypeMode1_2352: 2352,
	TrackTypeMode2_2048: 2048,
	TrackTypeMode2_2324: 2324,
	TrackTypeMode2_2336: 2336,
	TrackTypeMode2_2352: 2352,
	TrackTypeCDI_2336:   2336,
	TrackTypeCDI_2352:   2352,
}

// BytesPerSector is a total function over TrackType; an unrecognized value
// fails with an unsupported-value error rather than returning a guess.
func BytesPerSector(t TrackType) (uint32, error) {
	size, ok := bytesPerSector[t]
	if !ok {
		return 0, smderrors.New(smderrors.DomainRuntime, smderrors.CodeUnsupportedValue,
			"unsupported track type")
	}
	return size, nil
}

// TrackValue is a sector range tagged with its data mode. DataFileIndex
// is always 0: tracks never span multiple data files here.
type TrackValue struct {
	Range         SectorRange
	Type          TrackType
	DataFileIndex int
}

// BytesPerSector returns the payload size of this track's sectors.
func (t TrackValue) BytesPerSector() (uint32, error) {
	return BytesPerSector(t.Type)
}
