//go:build !linux

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
	"time"

	"github.com/openebs/smdev/devicefile"
	"github.com/openebs/smdev/smderrors"
)

// DefaultTimeout is the SG_IO command timeout used when the caller does
// not supply one.
const DefaultTimeout = time.Second

// Transport is unimplemented on non-Linux targets: the SG_IO pass-through
// this package frames CDBs for is a Linux ioctl. Equivalent pass-throughs
// exist on other platforms (e.g. IOCTL_SCSI_PASS_THROUGH on Windows) but
// are not implemented.
type Transport struct {
	Timeout time.Duration
}

func unsupported() error {
	return smderrors.New(smderrors.DomainRuntime, smderrors.CodeUnsupportedValue,
		"SCSI pass-through is only implemented for linux targets")
}

// NewTransport always fails on this platform.
func NewTransport(file devicefile.File) (*Transport, error) { return nil, unsupported() }

func (t *Transport) Inquiry(evpd bool, pageCode uint8, buf []byte) (int, error) {
	return 0, unsupported()
}

func (t *Transport) ReadTOC(format uint8, timeBit bool, track uint8, buf []byte) (int, error) {
	return 0, unsupported()
}

func (t *Transport) ReadDiscInformation(buf []byte) (int, error) { return 0, unsupported() }

func (t *Transport) ReadTrackInformation(track uint32, buf []byte) (int, error) {
	return 0, unsupported()
}

func (t *Transport) GetIdentifier() (bool, error) { return false, unsupported() }

func (t *Transport) GetBusType() (bool, error) { return false, unsupported() }

func (t *Transport) GetPCIBusAddress() (string, error) { return "", unsupported() }
