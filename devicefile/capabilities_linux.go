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

package devicefile

import (
	"unsafe"

	"golang.org/x/sys/unix"

	smlog "github.com/openebs/smdev/internal/smlog"
)

const (
	linuxCapabilityVersion3 = 0x20080522
	capSysRawIO             = 1 << 17
	capSysAdmin             = 1 << 21
)

type userCapHeader struct {
	version uint32
	pid     int32
}

type userCapData struct {
	effective   uint32
	permitted   uint32
	inheritable uint32
}

// CheckCapabilities logs a warning if neither CAP_SYS_RAWIO nor
// CAP_SYS_ADMIN is in the calling process's effective set: without one of
// them, opening a raw block device for exclusive access will fail.
func CheckCapabilities() {
	var hdr userCapHeader
	var data [2]userCapData
	hdr.version = linuxCapabilityVersion3

	_, _, errno := unix.RawSyscall(unix.SYS_CAPGET, uintptr(unsafe.Pointer(&hdr)), uintptr(unsafe.Pointer(&data)), 0)
	if errno != 0 {
		smlog.Logger().WithError(errno).Debug("devicefile: capget failed")
		return
	}
	if data[0].effective&capSysRawIO == 0 && data[0].effective&capSysAdmin == 0 {
		smlog.Logger().Warn("devicefile: neither CAP_SYS_RAWIO nor CAP_SYS_ADMIN is in effect; opening a raw device will likely fail")
	}
}
