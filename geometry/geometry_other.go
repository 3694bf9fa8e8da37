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

package geometry

import (
	"github.com/openebs/smdev/devicefile"
	"github.com/openebs/smdev/smderrors"
)

func unsupported() error {
	return smderrors.New(smderrors.DomainRuntime, smderrors.CodeUnsupportedValue,
		"media geometry resolution is only implemented for linux targets")
}

// MediaSize is unsupported on this build target. The Windows
// (IOCTL_DISK_GET_LENGTH_INFO), BSD (DIOCGMEDIASIZE) and Darwin
// (DKIOCGETBLOCKSIZE/DKIOCGETBLOCKCOUNT) surfaces are not implemented.
func MediaSize(file devicefile.File) (uint64, error) { return 0, unsupported() }

// BytesPerSector is unsupported on this build target.
func BytesPerSector(file devicefile.File) (uint32, error) { return 0, unsupported() }
