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

package ata

import (
	"github.com/openebs/smdev/devicefile"
	"github.com/openebs/smdev/smderrors"
)

// GetDeviceConfiguration is unsupported on this build target:
// HDIO_GET_IDENTITY is a Linux ioctl, and equivalents on other platforms
// go through vendor-specific pass-through mechanisms not implemented
// here.
func GetDeviceConfiguration(file devicefile.File) (*IdentifyData, error) {
	return nil, smderrors.New(smderrors.DomainRuntime, smderrors.CodeUnsupportedValue,
		"ATA IDENTIFY is only implemented for linux targets")
}
