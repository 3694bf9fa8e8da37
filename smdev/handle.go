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

// Package smdev presents the handle facade: the single public entry point
// that wires devicefile, mediainfo, badrange and readengine together
// behind the state machine
// Uninitialized -> Initialized -> Open -> Initialized -> Freed.
package smdev

import (
	"github.com/openebs/smdev/badrange"
	"github.com/openebs/smdev/devicefile"
	"github.com/openebs/smdev/mediainfo"
	"github.com/openebs/smdev/readengine"
	"github.com/openebs/smdev/smderrors"
)

// defaultErrorRetries is the retry count a freshly initialized handle
// starts with.
const defaultErrorRetries = 2

// State is the handle's lifecycle stage.
type State int

const (
	StateUninitialized State = iota
	StateInitialized
	StateOpen
	StateFreed
)

func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateInitialized:
		return "initialized"
	case StateOpen:
		return "open"
	case StateFreed:
		return "freed"
	default:
		return "unknown"
	}
}

// Handle is the single entry point onto a storage device or image file. A
// zero Handle is uninitialized; use New to obtain one ready for
// Initialize. The explicit Initialize/Free pair bounds the handle's
// lifetime independently of garbage collection.
type Handle struct {
	state State

	filename string
	codepage int

	file devicefile.File
	info *mediainfo.Info

	offset    int64
	badRanges badrange.List
	abort     int32

	errorRetries     int
	errorGranularity uint32
	zeroOnError      bool
	recorder         readengine.Recorder

	engine *readengine.Engine
}

// SetMetricsRecorder attaches an optional telemetry recorder (such as
// metrics.NewRecorder) that the read engine notifies of retries and
// recovered bad ranges. Pass nil to detach.
func (h *Handle) SetMetricsRecorder(recorder readengine.Recorder) {
	h.recorder = recorder
	if h.engine != nil {
		h.engine.Recorder = recorder
	}
}

// New returns a Handle in the Uninitialized state.
func New() *Handle {
	return &Handle{}
}

// Initialize transitions Uninitialized -> Initialized. It is the only
// entry point usable on a freshly constructed Handle; a freed Handle
// cannot be initialized again.
func (h *Handle) Initialize() error {
	if h.state != StateUninitialized {
		return smderrors.New(smderrors.DomainRuntime, smderrors.CodeAlreadySet,
			"handle is already initialized")
	}
	h.state = StateInitialized
	h.errorRetries = defaultErrorRetries
	h.errorGranularity = 0
	h.zeroOnError = false
	h.abort = 0
	return nil
}

// Free releases the handle. It closes an open device file first and is
// the only valid operation left once a Handle reaches Freed; calling it
// twice fails with "already set", matching double-close protection.
func (h *Handle) Free() error {
	if h.state == StateUninitialized {
		return smderrors.New(smderrors.DomainRuntime, smderrors.CodeValueMissing,
			"handle was never initialized")
	}
	if h.state == StateFreed {
		return smderrors.New(smderrors.DomainRuntime, smderrors.CodeAlreadySet,
			"handle is already freed")
	}
	var closeErr error
	if h.state == StateOpen {
		closeErr = h.file.Close()
	}
	h.state = StateFreed
	h.file = nil
	h.engine = nil
	if closeErr != nil {
		return smderrors.Wrap(closeErr, smderrors.DomainIO, smderrors.CodeCloseFailed,
			"unable to close device file during free")
	}
	return nil
}

// requireInitialized fails unless the handle is Initialized (not Open,
// not Uninitialized, not Freed) - the state setting filename or opening
// requires.
func (h *Handle) requireInitialized() error {
	switch h.state {
	case StateUninitialized, StateFreed:
		return smderrors.New(smderrors.DomainRuntime, smderrors.CodeValueMissing,
			"handle is not initialized")
	case StateOpen:
		return smderrors.New(smderrors.DomainRuntime, smderrors.CodeConflictingValue,
			"operation not permitted while the device file is open")
	default:
		return nil
	}
}

// requireOpen fails unless the handle is Open - the state reading,
// writing, seeking and telling require.
func (h *Handle) requireOpen() error {
	if h.state != StateOpen {
		return smderrors.New(smderrors.DomainRuntime, smderrors.CodeValueMissing,
			"missing value - device file is not open")
	}
	return nil
}
