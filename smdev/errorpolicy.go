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
	"github.com/openebs/smdev/badrange"
	"github.com/openebs/smdev/smderrors"
)

// ErrorRetries returns the configured number of retries the read engine
// attempts before giving up on an unreadable region.
func (h *Handle) ErrorRetries() int { return h.errorRetries }

// SetErrorRetries sets the retry count. It takes effect immediately, even
// on a handle with a device file already open.
func (h *Handle) SetErrorRetries(retries int) error {
	if retries < 0 {
		return smderrors.New(smderrors.DomainArguments, smderrors.CodeValueOutOfBounds, "error retry count must not be negative")
	}
	h.errorRetries = retries
	h.syncEngineConfig()
	return nil
}

// ErrorGranularity returns the configured error-recovery window size in
// bytes; 0 means the whole request buffer is treated as one granule.
func (h *Handle) ErrorGranularity() uint32 { return h.errorGranularity }

// SetErrorGranularity sets the error-recovery window size.
func (h *Handle) SetErrorGranularity(granularity uint32) error {
	h.errorGranularity = granularity
	h.syncEngineConfig()
	return nil
}

// ErrorFlags is the bit set controlling read-error recovery behavior.
type ErrorFlags uint8

// ErrorFlagZeroOnError selects zeroing the full aligned error-granularity
// window instead of only the unread remainder.
const ErrorFlagZeroOnError ErrorFlags = 1 << 0

const knownErrorFlags = ErrorFlagZeroOnError

// GetErrorFlags returns the error-recovery flags as a bit set.
func (h *Handle) GetErrorFlags() ErrorFlags {
	var flags ErrorFlags
	if h.zeroOnError {
		flags |= ErrorFlagZeroOnError
	}
	return flags
}

// SetErrorFlags replaces the error-recovery flags. Unknown bits are
// rejected.
func (h *Handle) SetErrorFlags(flags ErrorFlags) error {
	if flags&^knownErrorFlags != 0 {
		return smderrors.New(smderrors.DomainArguments, smderrors.CodeValueOutOfBounds,
			"unsupported error flags")
	}
	h.zeroOnError = flags&ErrorFlagZeroOnError != 0
	h.syncEngineConfig()
	return nil
}

// ZeroOnError reports whether the zero-on-error flag is set.
func (h *Handle) ZeroOnError() bool { return h.zeroOnError }

// SetZeroOnError sets the zero-on-error flag: when set, the read engine
// zeros the full aligned error-granularity window on an unrecoverable
// failure instead of only the remainder from the failure point onward.
func (h *Handle) SetZeroOnError(zero bool) error {
	h.zeroOnError = zero
	h.syncEngineConfig()
	return nil
}

func (h *Handle) syncEngineConfig() {
	if h.engine != nil {
		h.engine.Config = h.readConfig()
	}
}

// BadErrorCount returns the number of recorded unreadable regions,
// requiring Open.
func (h *Handle) BadErrorCount() (int, error) {
	if err := h.requireOpen(); err != nil {
		return 0, err
	}
	return h.badRanges.Len(), nil
}

// BadError returns the unreadable region at index, requiring Open.
func (h *Handle) BadError(index int) (badrange.Entry, error) {
	if err := h.requireOpen(); err != nil {
		return badrange.Entry{}, err
	}
	offset, size, ok := h.badRanges.Get(index)
	if !ok {
		return badrange.Entry{}, smderrors.New(smderrors.DomainArguments, smderrors.CodeValueOutOfBounds,
			"bad-error index out of bounds")
	}
	return badrange.Entry{Offset: offset, Size: size}, nil
}
