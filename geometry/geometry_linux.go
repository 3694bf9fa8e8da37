//go:build linux

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

package geometry

import (
	"unsafe"

	"golang.org/x/sys/unix"

	"github.com/openebs/smdev/devicefile"
	"github.com/openebs/smdev/smderrors"
)

const (
	blkGetSize64 = 0x80081272
	blkSSZGet    = 0x1268
)

func fd(file devicefile.File) (int, error) {
	n, ok := devicefile.Fd(file)
	if !ok {
		return 0, smderrors.New(smderrors.DomainRuntime, smderrors.CodeUnsupportedValue,
			"device file does not expose a native descriptor")
	}
	return n, nil
}

// MediaSize resolves the total size of the media in bytes via
// BLKGETSIZE64.
func MediaSize(file devicefile.File) (uint64, error) {
	f, err := fd(file)
	if err != nil {
		return 0, err
	}
	var size uint64
	_, _, errno := unix.Syscall(unix.SYS_IOCTL, uintptr(f), uintptr(blkGetSize64), uintptr(unsafe.Pointer(&size)))
	if errno != 0 {
		return 0, smderrors.Wrap(errno, smderrors.DomainIO, smderrors.CodeIoctlFailed, "BLKGETSIZE64 failed")
	}
	return size, nil
}

// BytesPerSector resolves the logical sector size via BLKSSZGET.
func BytesPerSector(file devicefile.File) (uint32, error) {
	f, err := fd(file)
	if err != nil {
		return 0, err
	}
	var size uint32
	_, _, errno := unix.Syscall(unix.SYS_IOCTL, uintptr(f), uintptr(blkSSZGet), uintptr(unsafe.Pointer(&size)))
	if errno != 0 {
		return 0, smderrors.Wrap(errno, smderrors.DomainIO, smderrors.CodeIoctlFailed, "BLKSSZGET failed")
	}
	return size, nil
}
