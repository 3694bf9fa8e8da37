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

// Package readengine implements the fault-tolerant read loop at the core
// of this library. It retries transient read failures up to a configured
// limit, corrects for offset drift some platforms exhibit when a read
// fails partway through, and on exhausting its retries zeros and records
// the unreadable region in a bad-range list instead of failing the whole
// request.
package readengine

import (
	"io"

	"golang.org/x/sys/unix"

	"github.com/openebs/smdev/badrange"
	"github.com/openebs/smdev/devicefile"
	"github.com/openebs/smdev/smderrors"
)

// Config holds the error-tolerance policy applied to every Read call.
type Config struct {
	// ErrorRetries is the number of times a failing read is retried
	// before the engine gives up on that region and skips past it.
	ErrorRetries int

	// ErrorGranularity is the size, in bytes, of the region zeroed and
	// recorded as unreadable once retries are exhausted. Zero means the
	// entire requested buffer is treated as one granule.
	ErrorGranularity uint32

	// ZeroOnError, when set, zeros the whole aligned error-granularity
	// window on failure. When unset, only the remainder of the window
	// from the failure point onward is zeroed.
	ZeroOnError bool
}

// Recorder receives optional telemetry about retry attempts and recovered
// bad ranges; metrics.Recorder satisfies this interface. Nil is the
// default and means no metrics are recorded.
type Recorder interface {
	RecordRetry()
	RecordBadRange(size uint64)
}

// Engine drives reads against a single device, advancing *Offset and
// appending to BadRanges as it goes. Offset and Abort are pointers so the
// owning handle's fields are updated directly; BadRanges is shared with
// the handle's bad-range accessor.
type Engine struct {
	Device    devicefile.NativeDevice
	Offset    *int64
	MediaSize uint64 // 0 means unknown: no bounds clamp is applied
	Config    Config
	BadRanges *badrange.List
	Abort     *int32 // non-zero once SignalAbort has been called

	// Recorder, if set, is notified of retries and recovered bad ranges.
	Recorder Recorder
}

// New constructs an Engine. offset and abort are shared with the caller
// and mutated in place.
func New(device devicefile.NativeDevice, offset *int64, mediaSize uint64, cfg Config, badRanges *badrange.List, abort *int32) *Engine {
	return &Engine{
		Device:    device,
		Offset:    offset,
		MediaSize: mediaSize,
		Config:    cfg,
		BadRanges: badRanges,
		Abort:     abort,
	}
}

// Read fills buf from the current offset, retrying and skipping over
// unreadable regions per Config, and advances *Offset by the number of
// bytes delivered. It returns fewer bytes than len(buf) at end of media
// without error, matching io.Reader's short-read convention, with one
// exception: a read that returns zero bytes mid-request (a device
// reporting fewer bytes than its advertised media size) returns (0, nil)
// immediately, without advancing the offset, rather than returning the
// bytes already delivered into buf.
func (e *Engine) Read(buf []byte) (int, error) {
	if buf == nil {
		return 0, smderrors.New(smderrors.DomainArguments, smderrors.CodeInvalidNull, "invalid buffer")
	}
	readSize := len(buf)
	offset := *e.Offset

	if e.MediaSize != 0 {
		if uint64(offset) >= e.MediaSize {
			return 0, smderrors.New(smderrors.DomainRuntime, smderrors.CodeValueOutOfBounds, "offset exceeds media size")
		}
		if uint64(offset)+uint64(readSize) > e.MediaSize {
			readSize = int(e.MediaSize - uint64(offset))
		}
	}

	bufferOffset := 0
	numberOfReadErrors := 0
	var lastProbedOffset int64

readLoop:
	for numberOfReadErrors <= e.Config.ErrorRetries {
		if e.Abort != nil && loadAbort(e.Abort) {
			break
		}
		if readSize == 0 {
			break
		}

		n, err := e.Device.ReadNative(buf[bufferOffset : bufferOffset+readSize])

		// readCount of -1 is the sentinel for "failed, no progress, retry
		// without advancing", distinct from a genuine zero-byte read at
		// end of media.
		readCount := n
		if err != nil {
			if isFatalErrno(err) {
				return 0, smderrors.Wrap(err, smderrors.DomainIO, smderrors.CodeOpenFailed, "unable to read from device file")
			}

			current, seekErr := e.Device.SeekNative(0, io.SeekCurrent)
			if seekErr != nil {
				return 0, smderrors.Wrap(seekErr, smderrors.DomainIO, smderrors.CodeSeekFailed, "unable to seek current offset")
			}
			lastProbedOffset = current

			calculated := offset + int64(bufferOffset)
			if current != calculated {
				if current < calculated {
					return 0, smderrors.New(smderrors.DomainRuntime, smderrors.CodeValueOutOfBounds, "unable to correct negative offset drift")
				}
				readCount = int(current - calculated)
			} else {
				readCount = -1
			}
		}

		if readCount > readSize {
			return 0, smderrors.New(smderrors.DomainArguments, smderrors.CodeValueOutOfBounds, "invalid read count value exceeds read size")
		}
		if readCount == 0 {
			return 0, nil
		}
		if readCount > 0 {
			bufferOffset += readCount
			readSize -= readCount
			if readSize == 0 {
				break readLoop
			}
		}
		// readCount == -1 (a retried failure with no drift) and a
		// readCount > 0 short of read_size both fall through here: every
		// incomplete iteration counts against the retry budget.
		numberOfReadErrors++
		if e.Recorder != nil {
			e.Recorder.RecordRetry()
		}
		if numberOfReadErrors > e.Config.ErrorRetries {
			granularity := int(e.Config.ErrorGranularity)
			if granularity <= 0 {
				granularity = len(buf)
			}
			granularityBase := (bufferOffset / granularity) * granularity
			skip := (granularityBase + granularity) - bufferOffset
			if skip > readSize {
				skip = readSize
			}

			var errorSize int
			if e.Config.ZeroOnError {
				// The aligned window may extend past the end of the
				// buffer when len(buf) is not a granularity multiple.
				zeroEnd := granularityBase + granularity
				if zeroEnd > len(buf) {
					zeroEnd = len(buf)
				}
				zero(buf[granularityBase:zeroEnd])
				errorSize = zeroEnd - granularityBase
			} else {
				zero(buf[bufferOffset : bufferOffset+skip])
				errorSize = skip
			}
			e.BadRanges.Append(lastProbedOffset, uint64(errorSize))
			if e.Recorder != nil {
				e.Recorder.RecordBadRange(uint64(errorSize))
			}

			if _, err := e.Device.SeekNative(int64(skip), io.SeekCurrent); err != nil {
				return 0, smderrors.Wrap(err, smderrors.DomainIO, smderrors.CodeSeekFailed, "unable to skip bytes after read error")
			}
			bufferOffset += skip
			readSize -= skip
			numberOfReadErrors = 0
		}
	}

	*e.Offset = offset + int64(bufferOffset)
	return bufferOffset, nil
}

func zero(b []byte) {
	for i := range b {
		b[i] = 0
	}
}

func loadAbort(abort *int32) bool {
	return *abort != 0
}

// isFatalErrno reports whether err is one of the POSIX error conditions a
// retry can never recover from: a non-seekable device, a permissions
// failure, or the device having gone away.
func isFatalErrno(err error) bool {
	errno, ok := err.(unix.Errno)
	if !ok {
		return false
	}
	switch errno {
	case unix.ESPIPE, unix.EPERM, unix.ENXIO, unix.ENODEV:
		return true
	default:
		return false
	}
}
