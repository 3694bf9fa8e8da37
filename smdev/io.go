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
	"io"

	"github.com/openebs/smdev/smderrors"
)

// Read fills buf via the fault-tolerant read engine, requiring Open.
func (h *Handle) Read(buf []byte) (int, error) {
	if err := h.requireOpen(); err != nil {
		return 0, err
	}
	return h.engine.Read(buf)
}

// Write writes buf to the device file at the current offset and advances
// it by the number of bytes written, requiring Open. Unlike Read, writes
// are not retried: a failing write is always a hard error.
func (h *Handle) Write(buf []byte) (int, error) {
	if err := h.requireOpen(); err != nil {
		return 0, err
	}
	n, err := h.file.Write(buf)
	if err != nil {
		return n, err
	}
	h.offset += int64(n)
	return n, nil
}

// Seek repositions the device file and updates the handle's tracked
// offset to match, requiring Open.
func (h *Handle) Seek(offset int64, whence int) (int64, error) {
	if err := h.requireOpen(); err != nil {
		return 0, err
	}
	n, err := h.file.SeekNative(offset, whence)
	if err != nil {
		return 0, smderrors.Wrap(err, smderrors.DomainIO, smderrors.CodeSeekFailed, "unable to seek device file")
	}
	h.offset = n
	return n, nil
}

// Tell returns the handle's current offset, requiring Open.
func (h *Handle) Tell() (int64, error) {
	if err := h.requireOpen(); err != nil {
		return 0, err
	}
	return h.offset, nil
}

// SignalAbort sets the abort flag the read engine polls at the top of
// every iteration. It is valid in any state but has an effect only while
// a read is in progress or about to start; a subsequent Open resets it.
func (h *Handle) SignalAbort() error {
	h.abort = 1
	return nil
}

var _ io.ReadWriteSeeker = (*readWriteSeekerAdapter)(nil)

// readWriteSeekerAdapter adapts Handle onto io.ReadWriteSeeker for callers
// that want to hand a Handle to stdlib-shaped APIs (io.Copy and similar).
type readWriteSeekerAdapter struct {
	h *Handle
}

// AsReadWriteSeeker wraps h as an io.ReadWriteSeeker.
func AsReadWriteSeeker(h *Handle) io.ReadWriteSeeker {
	return &readWriteSeekerAdapter{h: h}
}

func (a *readWriteSeekerAdapter) Read(p []byte) (int, error) {
	n, err := a.h.Read(p)
	if err != nil {
		return n, err
	}
	if n == 0 && len(p) > 0 {
		return 0, io.EOF
	}
	return n, nil
}

func (a *readWriteSeekerAdapter) Write(p []byte) (int, error) { return a.h.Write(p) }

func (a *readWriteSeekerAdapter) Seek(offset int64, whence int) (int64, error) {
	return a.h.Seek(offset, whence)
}
