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
	"github.com/openebs/smdev/devicefile"
	"github.com/openebs/smdev/mediainfo"
	"github.com/openebs/smdev/readengine"
	"github.com/openebs/smdev/smderrors"
)

// Open opens the filename previously set via SetFilename, probes device
// identity and geometry, and transitions Initialized -> Open. Opening an
// already-open handle fails with "already set"; opening without a
// filename fails with "missing value". Failure during the probe closes
// the device file Open itself created, so a failed Open never leaks a
// descriptor.
func (h *Handle) Open(flag devicefile.OpenFlag) error {
	if h.state == StateOpen {
		return smderrors.New(smderrors.DomainRuntime, smderrors.CodeAlreadySet,
			"device file is already open")
	}
	if err := h.requireInitialized(); err != nil {
		return err
	}
	if h.filename == "" {
		return smderrors.New(smderrors.DomainRuntime, smderrors.CodeValueMissing, "missing value - filename not set")
	}

	devicefile.CheckCapabilities()

	file, err := devicefile.Open(h.filename, flag)
	if err != nil {
		return err
	}

	info, err := mediainfo.Probe(file)
	if err != nil {
		_ = file.Close()
		return err
	}

	h.file = file
	h.info = info
	h.offset = 0
	h.badRanges.Clear()
	h.abort = 0
	h.engine = readengine.New(file, &h.offset, info.MediaSize, h.readConfig(), &h.badRanges, &h.abort)
	h.engine.Recorder = h.recorder
	h.state = StateOpen
	return nil
}

// Close closes the device file and transitions Open -> Initialized. The
// bad-range list and info record are not cleared here, but every accessor
// for them requires Open, so they cannot be read again until the next
// successful Open replaces them.
func (h *Handle) Close() error {
	if err := h.requireOpen(); err != nil {
		return err
	}
	err := h.file.Close()
	h.file = nil
	h.engine = nil
	h.state = StateInitialized
	if err != nil {
		return smderrors.Wrap(err, smderrors.DomainIO, smderrors.CodeCloseFailed, "unable to close device file")
	}
	return nil
}

// CheckDevice reports whether path resolves to a storage device rather
// than a regular file. It needs no handle and can be called before
// Initialize to decide whether device-specific probing is worthwhile.
func CheckDevice(path string) (bool, error) {
	return devicefile.CheckDevice(path)
}

func (h *Handle) readConfig() readengine.Config {
	return readengine.Config{
		ErrorRetries:     h.errorRetries,
		ErrorGranularity: h.errorGranularity,
		ZeroOnError:      h.zeroOnError,
	}
}
