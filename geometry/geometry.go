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

// Package geometry resolves media size and bytes-per-sector for an open
// device. Each platform has its own IOCTL surface; this build carries the
// Linux path (BLKGETSIZE64/BLKSSZGET) and reports other platforms as
// unsupported.
package geometry
