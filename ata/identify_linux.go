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

package ata

import (
	"bytes"
	"encoding/binary"
	"unsafe"

	"golang.org/x/sys/unix"

	"github.com/openebs/smdev/devicefile"
	"github.com/openebs/smdev/internal/byteorder"
	"github.com/openebs/smdev/smderrors"
)

// hdioGetIdentity is HDIO_GET_IDENTITY from linux/hdreg.h.
const hdioGetIdentity = 0x030d

// GetDeviceConfiguration issues HDIO_GET_IDENTITY against file and decodes
// the resulting 512-byte page.
func GetDeviceConfiguration(file devicefile.File) (*IdentifyData, error) {
	fd, ok := devicefile.Fd(file)
	if !ok {
		return nil, smderrors.New(smderrors.DomainRuntime, smderrors.CodeUnsupportedValue,
			"device file does not expose a native descriptor for HDIO_GET_IDENTITY")
	}

	var raw [512]byte
	_, _, errno := unix.Syscall(unix.SYS_IOCTL, uintptr(fd), uintptr(hdioGetIdentity), uintptr(unsafe.Pointer(&raw[0])))
	if errno != 0 {
		return nil, smderrors.Wrap(errno, smderrors.DomainIO, smderrors.CodeIoctlFailed, "HDIO_GET_IDENTITY failed")
	}

	var data IdentifyData
	if err := binary.Read(bytes.NewReader(raw[:]), byteorder.Native, &data); err != nil {
		return nil, smderrors.Wrap(err, smderrors.DomainConversion, smderrors.CodeConversionInputFailed,
			"unable to decode ATA IDENTIFY page")
	}
	return &data, nil
}
