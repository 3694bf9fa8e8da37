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

// Package devicefile is the platform-polymorphic wrapper around a single
// open device or regular file: a thin layer over the OS's native
// open/read/seek/write/close calls that surfaces native error codes
// unwrapped so the fault-tolerant read engine (readengine) can classify
// them.
package devicefile

import "io"

// OpenFlag selects the access mode requested of Open.
type OpenFlag int

const (
	// ReadOnly opens the device for reading only.
	ReadOnly OpenFlag = iota
	// ReadWrite opens the device for reading and writing.
	ReadWrite
)

// NativeDevice is the minimal surface the read engine needs: a read that
// reports native errors (so ESPIPE/EPERM/ENXIO/ENODEV and friends survive
// unwrapped for classification) and a seek to probe/correct position.
type NativeDevice interface {
	ReadNative(buf []byte) (int, error)
	SeekNative(offset int64, whence int) (int64, error)
}

// File is a handle to an open device or regular file.
type File interface {
	NativeDevice
	io.Closer
	Write(buf []byte) (int, error)
}
