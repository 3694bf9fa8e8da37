//go:build !unix

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

import "github.com/openebs/smdev/smderrors"

// Open is unsupported on this build target. The Windows device namespace
// (\\.\PhysicalDrive0 and friends) needs its own CreateFile-based
// implementation, which this build does not carry.
func Open(path string, flag OpenFlag) (File, error) {
	return nil, smderrors.New(smderrors.DomainRuntime, smderrors.CodeUnsupportedValue,
		"device file access is only implemented for unix targets")
}

// CheckDevice is unsupported on this build target.
func CheckDevice(path string) (bool, error) {
	return false, smderrors.New(smderrors.DomainRuntime, smderrors.CodeUnsupportedValue,
		"device type detection is only implemented for unix targets")
}
