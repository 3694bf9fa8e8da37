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

package smdev

import (
	"github.com/openebs/smdev/mediatypes"
	"github.com/openebs/smdev/smderrors"
)

// MediaSize returns the probed size of the media in bytes, requiring Open.
func (h *Handle) MediaSize() (uint64, error) {
	if err := h.requireOpen(); err != nil {
		return 0, err
	}
	return h.info.MediaSize, nil
}

// BytesPerSector returns the probed logical sector size, requiring Open.
func (h *Handle) BytesPerSector() (uint32, error) {
	if err := h.requireOpen(); err != nil {
		return 0, err
	}
	return h.info.BytesPerSector, nil
}

// MediaType derives optical/removable/fixed from the probed device type
// and removable flag, requiring Open.
func (h *Handle) MediaType() (mediatypes.MediaType, error) {
	if err := h.requireOpen(); err != nil {
		return 0, err
	}
	return mediatypes.DeriveMediaType(h.info.DeviceType, h.info.Removable), nil
}

// BusType returns the probed transport, requiring Open.
func (h *Handle) BusType() (mediatypes.BusType, error) {
	if err := h.requireOpen(); err != nil {
		return 0, err
	}
	return h.info.BusType, nil
}

// InfoValue looks up a keyed identity string: "vendor", "model" or
// "serial_number". An unrecognized key fails with an invalid-argument
// error rather than silently returning an empty string.
func (h *Handle) InfoValue(key string) (string, error) {
	if err := h.requireOpen(); err != nil {
		return "", err
	}
	switch key {
	case "vendor":
		return h.info.Vendor, nil
	case "model":
		return h.info.Model, nil
	case "serial_number":
		return h.info.SerialNumber, nil
	default:
		return "", smderrors.New(smderrors.DomainArguments, smderrors.CodeConflictingValue,
			"unrecognized information value key "+key)
	}
}

// SessionCount returns the number of optical sessions found, requiring
// Open. It is 0 for non-optical media.
func (h *Handle) SessionCount() (int, error) {
	if err := h.requireOpen(); err != nil {
		return 0, err
	}
	return len(h.info.Sessions), nil
}

// Session returns the sector range of the session at index, requiring
// Open. Sessions are strictly ordered: for i < j, session i ends at or
// before session j starts.
func (h *Handle) Session(index int) (mediatypes.SectorRange, error) {
	if err := h.requireOpen(); err != nil {
		return mediatypes.SectorRange{}, err
	}
	if index < 0 || index >= len(h.info.Sessions) {
		return mediatypes.SectorRange{}, smderrors.New(smderrors.DomainArguments, smderrors.CodeValueOutOfBounds,
			"session index out of bounds")
	}
	return h.info.Sessions[index], nil
}

// LeadOutCount returns the number of lead-out regions found, requiring
// Open.
func (h *Handle) LeadOutCount() (int, error) {
	if err := h.requireOpen(); err != nil {
		return 0, err
	}
	return len(h.info.LeadOuts), nil
}

// LeadOut returns the sector range of the lead-out at index, requiring
// Open.
func (h *Handle) LeadOut(index int) (mediatypes.SectorRange, error) {
	if err := h.requireOpen(); err != nil {
		return mediatypes.SectorRange{}, err
	}
	if index < 0 || index >= len(h.info.LeadOuts) {
		return mediatypes.SectorRange{}, smderrors.New(smderrors.DomainArguments, smderrors.CodeValueOutOfBounds,
			"lead-out index out of bounds")
	}
	return h.info.LeadOuts[index], nil
}

// TrackCount returns the number of optical tracks found, requiring Open.
func (h *Handle) TrackCount() (int, error) {
	if err := h.requireOpen(); err != nil {
		return 0, err
	}
	return len(h.info.Tracks), nil
}

// Track returns the track value at index, requiring Open.
func (h *Handle) Track(index int) (mediatypes.TrackValue, error) {
	if err := h.requireOpen(); err != nil {
		return mediatypes.TrackValue{}, err
	}
	if index < 0 || index >= len(h.info.Tracks) {
		return mediatypes.TrackValue{}, smderrors.New(smderrors.DomainArguments, smderrors.CodeValueOutOfBounds,
			"track index out of bounds")
	}
	return h.info.Tracks[index], nil
}

// TrackType returns the data mode of the track at index, requiring Open.
func (h *Handle) TrackType(index int) (mediatypes.TrackType, error) {
	t, err := h.Track(index)
	if err != nil {
		return 0, err
	}
	return t.Type, nil
}
