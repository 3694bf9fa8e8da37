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

package optical

import (
	"github.com/openebs/smdev/devicefile"
	"github.com/openebs/smdev/smderrors"
)

// ReadTOCIoctl is unsupported on this build target: the CDROMREADTOCHDR/
// CDROMREADTOCENTRY ioctls are Linux-specific. mediainfo falls back to
// ReadTOCSCSI only when a SCSI transport exists, and scsi.NewTransport
// also fails on these targets, so no TOC is read here.
func ReadTOCIoctl(file devicefile.File) (*TOC, error) {
	return nil, smderrors.New(smderrors.DomainRuntime, smderrors.CodeUnsupportedValue,
		"CD-ROM TOC ioctls are only implemented for linux targets")
}
