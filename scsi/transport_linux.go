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

package scsi

import (
	"encoding/binary"
	"fmt"
	"time"
	"unsafe"

	"golang.org/x/sys/unix"

	"github.com/openebs/smdev/devicefile"
	"github.com/openebs/smdev/smderrors"
)

// SCSI generic (sg) transfer directions. See http://sg.danny.cz/sg/p/sg_v3_ho.html
const (
	sgDxferFromDev = -3

	sgInfoOkMask = 0x1
	sgInfoOk     = 0x0

	sgIOIoctl = 0x2285

	sgGetSCSIID        = 0x2276
	scsiIoctlProbeHost = 0x5003
	scsiIoctlGetPCI    = 0x5011
)

// DefaultTimeout is the SG_IO command timeout used when the caller does
// not supply one.
const DefaultTimeout = time.Second

// sgIOHeader mirrors struct sg_io_hdr_t; see http://sg.danny.cz/sg/p/sg_v3_ho.html
type sgIOHeader struct {
	interfaceID    int32
	dxferDirection int32
	cmdLen         uint8
	mxSBLen        uint8
	iovecCount     uint16
	dxferLen       uint32
	dxferp         uintptr
	cmdp           uintptr
	sbp            uintptr
	timeout        uint32
	flags          uint32
	packID         int32
	usrPtr         uintptr
	status         uint8
	maskedStatus   uint8
	msgStatus      uint8
	sbLenWr        uint8
	hostStatus     uint16
	driverStatus   uint16
	resid          int32
	duration       uint32
	info           uint32
}

// CommandError reports a non-zero SCSI/host/driver status that is not an
// "unsupported command" condition.
type CommandError struct {
	Sense        SenseData
	SCSIStatus   uint8
	HostStatus   uint16
	DriverStatus uint16
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("scsi command failed: scsi status %#02x, host status %#02x, driver status %#02x, sense key %#02x asc %#02x ascq %#02x",
		e.SCSIStatus, e.HostStatus, e.DriverStatus, e.Sense.Key, e.Sense.ASC, e.Sense.ASCQ)
}

// Transport issues SCSI CDBs against an open device file via SG_IO.
type Transport struct {
	fd      int
	Timeout time.Duration
}

// NewTransport wraps an already-open devicefile.File for SCSI pass-through.
// The file must have been opened against a device that exposes the Linux
// SG_IO ioctl (i.e. a SCSI/ATAPI/USB-attached block device).
func NewTransport(file devicefile.File) (*Transport, error) {
	fd, ok := devicefile.Fd(file)
	if !ok {
		return nil, smderrors.New(smderrors.DomainRuntime, smderrors.CodeUnsupportedValue,
			"device file does not expose a native descriptor for SCSI pass-through")
	}
	return &Transport{fd: fd, Timeout: DefaultTimeout}, nil
}

// sendCDB issues cdb and reads the response into buf. It returns the
// number of bytes the device actually returned, classifying an "invalid
// command operation code" sense condition as zero-length success (the
// command is unsupported by this device) rather than an error.
func (t *Transport) sendCDB(cdb []byte, buf []byte) (int, error) {
	senseBuf := make([]byte, senseBufferLength)

	hdr := sgIOHeader{
		interfaceID:    'S',
		dxferDirection: sgDxferFromDev,
		timeout:        uint32(t.Timeout.Milliseconds()),
		cmdLen:         uint8(len(cdb)),
		mxSBLen:        uint8(len(senseBuf)),
		dxferLen:       uint32(len(buf)),
		sbp:            uintptr(unsafe.Pointer(&senseBuf[0])),
		cmdp:           uintptr(unsafe.Pointer(&cdb[0])),
	}
	if len(buf) > 0 {
		hdr.dxferp = uintptr(unsafe.Pointer(&buf[0]))
	}

	if err := ioctl(t.fd, sgIOIoctl, uintptr(unsafe.Pointer(&hdr))); err != nil {
		return 0, smderrors.Wrap(err, smderrors.DomainIO, smderrors.CodeIoctlFailed, "SG_IO failed")
	}

	if hdr.info&sgInfoOkMask == sgInfoOk {
		return int(hdr.dxferLen) - int(hdr.resid), nil
	}

	sense := parseSense(senseBuf)
	if sense.unsupported() {
		return 0, nil
	}
	return 0, &CommandError{
		Sense:        sense,
		SCSIStatus:   hdr.status,
		HostStatus:   hdr.hostStatus,
		DriverStatus: hdr.driverStatus,
	}
}

func ioctl(fd int, request uint, arg uintptr) error {
	_, _, errno := unix.Syscall(unix.SYS_IOCTL, uintptr(fd), uintptr(request), arg)
	if errno != 0 {
		return errno
	}
	return nil
}

// Inquiry issues a SCSI INQUIRY command. evpd selects the LUN/EVPD bit;
// pageCode selects the vital product data page when evpd is set.
func (t *Transport) Inquiry(evpd bool, pageCode uint8, buf []byte) (int, error) {
	cdb := buildInquiryCDB(evpd, pageCode, uint16(len(buf)))
	return t.sendCDB(cdb[:], buf)
}

// ReadTOC issues a READ TOC/PMA/ATIP command with the given format,
// time-bit and starting track/session number.
func (t *Transport) ReadTOC(format uint8, timeBit bool, track uint8, buf []byte) (int, error) {
	cdb := buildReadTOCCDB(format, timeBit, track, uint16(len(buf)))
	return t.sendCDB(cdb[:], buf)
}

// ReadDiscInformation issues a READ DISC INFORMATION command.
func (t *Transport) ReadDiscInformation(buf []byte) (int, error) {
	cdb := buildReadDiscInformationCDB(uint16(len(buf)))
	return t.sendCDB(cdb[:], buf)
}

// ReadTrackInformation issues a READ TRACK INFORMATION command addressed
// by logical track number.
func (t *Transport) ReadTrackInformation(track uint32, buf []byte) (int, error) {
	cdb := buildReadTrackInformationCDB(track, uint16(len(buf)))
	return t.sendCDB(cdb[:], buf)
}

// GetIdentifier is a presence-only probe using SG_GET_SCSI_ID: it reports
// whether the ioctl succeeds at all, without decoding the host/channel/
// target/lun payload. Diagnostic only.
func (t *Transport) GetIdentifier() (bool, error) {
	var buf [20]byte
	if err := ioctl(t.fd, sgGetSCSIID, uintptr(unsafe.Pointer(&buf[0]))); err != nil {
		if err == unix.EINVAL || err == unix.ENOTTY {
			return false, nil
		}
		return false, smderrors.Wrap(err, smderrors.DomainIO, smderrors.CodeIoctlFailed, "SG_GET_SCSI_ID failed")
	}
	return true, nil
}

// GetBusType heuristically determines whether the fd refers to a SCSI
// host adapter, using SCSI_IOCTL_PROBE_HOST. A successful probe means
// "SCSI-attached"; a failure is not in itself conclusive.
func (t *Transport) GetBusType() (bool, error) {
	var probeBuf [256]byte
	binary.LittleEndian.PutUint32(probeBuf[0:4], uint32(len(probeBuf)-4))
	if err := ioctl(t.fd, scsiIoctlProbeHost, uintptr(unsafe.Pointer(&probeBuf[0]))); err != nil {
		return false, smderrors.Wrap(err, smderrors.DomainIO, smderrors.CodeIoctlFailed, "SCSI_IOCTL_PROBE_HOST failed")
	}
	return true, nil
}

// GetPCIBusAddress issues SCSI_IOCTL_GET_PCI and returns the PCI bus
// address string the host adapter driver reports.
func (t *Transport) GetPCIBusAddress() (string, error) {
	var buf [16]byte
	if err := ioctl(t.fd, scsiIoctlGetPCI, uintptr(unsafe.Pointer(&buf[0]))); err != nil {
		return "", smderrors.Wrap(err, smderrors.DomainIO, smderrors.CodeIoctlFailed, "SCSI_IOCTL_GET_PCI failed")
	}
	n := 0
	for n < len(buf) && buf[n] != 0 {
		n++
	}
	return string(buf[:n]), nil
}
