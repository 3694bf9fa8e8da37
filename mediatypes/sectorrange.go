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

// Package mediatypes holds the small value types shared by the optical TOC
// reader and the media-info aggregator: sector ranges and track values.
package mediatypes

import (
	"math"

	"github.com/openebs/smdev/smderrors"
)

// SectorRange is a half-open interval over sectors: [StartSector,
// StartSector+NumberOfSectors). It is immutable once Set succeeds.
type SectorRange struct {
	startSector     uint64
	numberOfSectors uint64
}

// Set validates and assigns start/count. StartSector+NumberOfSectors must
// fit in an int64, matching the signed 64-bit offset arithmetic used
// throughout the read engine.
func (r *SectorRange) Set(start, count uint64) error {
	if start > math.MaxInt64 {
		return smderrors.New(smderrors.DomainArguments, smderrors.CodeValueExceedsMaximum,
			"start sector exceeds maximum")
	}
	end := start + count
	if end < start || end > math.MaxInt64 {
		return smderrors.New(smderrors.DomainArguments, smderrors.CodeValueExceedsMaximum,
			"sector range end exceeds maximum")
	}
	r.startSector = start
	r.numberOfSectors = count
	return nil
}

// StartSector returns the first sector in the range.
func (r SectorRange) StartSector() uint64 { return r.startSector }

// NumberOfSectors returns the number of sectors covered by the range.
func (r SectorRange) NumberOfSectors() uint64 { return r.numberOfSectors }

// EndSector returns the first sector past the end of the range.
func (r SectorRange) EndSector() uint64 { return r.startSector + r.numberOfSectors }

// NewSectorRange is a convenience constructor around Set.
func NewSectorRange(start, count uint64) (SectorRange, error) {
	var r SectorRange
	err := r.Set(start, count)
	return r, err
}
