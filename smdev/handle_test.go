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
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openebs/smdev/devicefile"
)

func TestNewHandleIsUninitialized(t *testing.T) {
	h := New()
	assert.Equal(t, StateUninitialized, h.state)
}

func TestInitializeSetsDefaultErrorRetries(t *testing.T) {
	h := New()
	require.NoError(t, h.Initialize())
	assert.Equal(t, defaultErrorRetries, h.ErrorRetries())
}

func TestInitializeTwiceFails(t *testing.T) {
	h := New()
	require.NoError(t, h.Initialize())
	assert.Error(t, h.Initialize())
}

func TestFreeWithoutInitializeFails(t *testing.T) {
	h := New()
	assert.Error(t, h.Free())
}

func TestFreeTwiceFails(t *testing.T) {
	h := New()
	require.NoError(t, h.Initialize())
	require.NoError(t, h.Free())
	assert.Error(t, h.Free())
	assert.Equal(t, StateFreed, h.state)
}

func TestSetFilenameRequiresInitialized(t *testing.T) {
	h := New()
	assert.Error(t, h.SetFilename("/dev/sda"))

	require.NoError(t, h.Initialize())
	assert.NoError(t, h.SetFilename("/dev/sda"))
}

func TestSetFilenameRejectsEmpty(t *testing.T) {
	h := New()
	require.NoError(t, h.Initialize())
	assert.Error(t, h.SetFilename(""))
}

func TestFilenameRoundTrip(t *testing.T) {
	h := New()
	require.NoError(t, h.Initialize())
	require.NoError(t, h.SetFilename("/dev/sdb1"))

	name, err := h.Filename()
	require.NoError(t, err)
	assert.Equal(t, "/dev/sdb1", name)

	size, err := h.FilenameSize()
	require.NoError(t, err)
	assert.Equal(t, len("/dev/sdb1"), size)
}

func TestFilenameBeforeSetFails(t *testing.T) {
	h := New()
	require.NoError(t, h.Initialize())
	_, err := h.Filename()
	assert.Error(t, err)
}

func TestOpenWithoutFilenameFails(t *testing.T) {
	h := New()
	require.NoError(t, h.Initialize())
	assert.Error(t, h.Open(devicefile.ReadOnly))
}

func TestOpenWithoutInitializeFails(t *testing.T) {
	h := New()
	assert.Error(t, h.Open(devicefile.ReadOnly))
}

func TestReadRequiresOpen(t *testing.T) {
	h := New()
	require.NoError(t, h.Initialize())
	_, err := h.Read(make([]byte, 10))
	assert.Error(t, err)
}

func TestSeekTellRequireOpen(t *testing.T) {
	h := New()
	require.NoError(t, h.Initialize())
	_, err := h.Seek(0, 0)
	assert.Error(t, err)
	_, err = h.Tell()
	assert.Error(t, err)
}

func TestInfoAccessorsRequireOpen(t *testing.T) {
	h := New()
	require.NoError(t, h.Initialize())

	_, err := h.MediaSize()
	assert.Error(t, err)
	_, err = h.BytesPerSector()
	assert.Error(t, err)
	_, err = h.MediaType()
	assert.Error(t, err)
	_, err = h.BusType()
	assert.Error(t, err)
	_, err = h.InfoValue("vendor")
	assert.Error(t, err)
	_, err = h.SessionCount()
	assert.Error(t, err)
	_, err = h.TrackCount()
	assert.Error(t, err)
	_, err = h.BadErrorCount()
	assert.Error(t, err)
}

func TestErrorRetriesRejectsNegative(t *testing.T) {
	h := New()
	require.NoError(t, h.Initialize())
	assert.Error(t, h.SetErrorRetries(-1))
	assert.NoError(t, h.SetErrorRetries(5))
	assert.Equal(t, 5, h.ErrorRetries())
}

func TestErrorGranularityAndZeroOnErrorRoundTrip(t *testing.T) {
	h := New()
	require.NoError(t, h.Initialize())

	require.NoError(t, h.SetErrorGranularity(512))
	assert.Equal(t, uint32(512), h.ErrorGranularity())

	require.NoError(t, h.SetZeroOnError(true))
	assert.True(t, h.ZeroOnError())
}

func TestErrorFlagsRoundTrip(t *testing.T) {
	h := New()
	require.NoError(t, h.Initialize())

	assert.Equal(t, ErrorFlags(0), h.GetErrorFlags())

	require.NoError(t, h.SetErrorFlags(ErrorFlagZeroOnError))
	assert.Equal(t, ErrorFlagZeroOnError, h.GetErrorFlags())
	assert.True(t, h.ZeroOnError())

	require.NoError(t, h.SetErrorFlags(0))
	assert.False(t, h.ZeroOnError())

	assert.Error(t, h.SetErrorFlags(ErrorFlags(0x80)))
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "uninitialized", StateUninitialized.String())
	assert.Equal(t, "initialized", StateInitialized.String())
	assert.Equal(t, "open", StateOpen.String())
	assert.Equal(t, "freed", StateFreed.String())
}

func TestSignalAbortValidInAnyState(t *testing.T) {
	h := New()
	assert.NoError(t, h.SignalAbort())
}

// End to end over a plain file: the handle must open a regular file (no
// device ioctls succeed against it), report its size as the media size,
// and read/seek/tell through the fault-tolerant engine.
func TestHandleReadsRegularFile(t *testing.T) {
	content := make([]byte, 1000)
	for i := range content {
		content[i] = byte(i % 251)
	}
	path := filepath.Join(t.TempDir(), "image.raw")
	require.NoError(t, os.WriteFile(path, content, 0o600))

	h := New()
	require.NoError(t, h.Initialize())
	require.NoError(t, h.SetFilename(path))
	require.NoError(t, h.Open(devicefile.ReadOnly))
	defer func() {
		require.NoError(t, h.Close())
		require.NoError(t, h.Free())
	}()

	size, err := h.MediaSize()
	require.NoError(t, err)
	assert.Equal(t, uint64(1000), size)

	buf := make([]byte, 4096)
	n, err := h.Read(buf)
	require.NoError(t, err)
	assert.Equal(t, 1000, n)
	assert.Equal(t, content, buf[:1000])

	pos, err := h.Tell()
	require.NoError(t, err)
	assert.Equal(t, int64(1000), pos)

	pos, err = h.Seek(100, io.SeekStart)
	require.NoError(t, err)
	assert.Equal(t, int64(100), pos)

	n, err = h.Read(make([]byte, 50))
	require.NoError(t, err)
	assert.Equal(t, 50, n)

	count, err := h.BadErrorCount()
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}
