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

package smdev

import "github.com/openebs/smdev/smderrors"

// SetCodepage records the narrow-string codepage used to interpret a
// filename supplied as a byte string; 0 selects UTF-8. It must be called,
// if at all, before SetFilename. Go paths are byte strings already, so no
// transcoding table is consulted here: non-zero codepages are accepted
// and recorded for callers porting from wide-character path APIs.
func (h *Handle) SetCodepage(codepage int) error {
	if err := h.requireInitialized(); err != nil {
		return err
	}
	h.codepage = codepage
	return nil
}

// SetFilename records the device or image path to open. It requires
// Initialized and forbids Open: the path cannot change under an open
// device file.
func (h *Handle) SetFilename(name string) error {
	if err := h.requireInitialized(); err != nil {
		return err
	}
	if name == "" {
		return smderrors.New(smderrors.DomainArguments, smderrors.CodeInvalidNull, "invalid filename")
	}
	h.filename = name
	return nil
}

// Filename returns the previously set path.
func (h *Handle) Filename() (string, error) {
	if h.filename == "" {
		return "", smderrors.New(smderrors.DomainRuntime, smderrors.CodeValueMissing, "filename not set")
	}
	return h.filename, nil
}

// FilenameSize returns the byte length of the previously set path.
func (h *Handle) FilenameSize() (int, error) {
	name, err := h.Filename()
	if err != nil {
		return 0, err
	}
	return len(name), nil
}
