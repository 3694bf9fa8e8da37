//go:build unix

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
	"golang.org/x/sys/unix"

	"github.com/openebs/smdev/smderrors"
)

// unixFile wraps a raw file descriptor opened with the unix package
// directly (rather than os.File) so that Read/Seek failures surface the
// kernel's unix.Errno value untouched, exactly as the read engine's error
// classification step requires.
type unixFile struct {
	fd   int
	name string
}

// Open opens path, accepting character/block devices as well as regular
// files (useful for testing against plain files or disk images).
func Open(path string, flag OpenFlag) (File, error) {
	mode := unix.O_RDONLY
	if flag == ReadWrite {
		mode = unix.O_RDWR
	}
	fd, err := unix.Open(path, mode, 0)
	if err != nil {
		return nil, smderrors.Wrap(err, smderrors.DomainIO, smderrors.CodeOpenFailed,
			"unable to open device file "+path)
	}
	return &unixFile{fd: fd, name: path}, nil
}

func (f *unixFile) ReadNative(buf []byte) (int, error) {
	n, err := unix.Read(f.fd, buf)
	return n, err
}

func (f *unixFile) SeekNative(offset int64, whence int) (int64, error) {
	return unix.Seek(f.fd, offset, whence)
}

func (f *unixFile) Write(buf []byte) (int, error) {
	n, err := unix.Write(f.fd, buf)
	if err != nil {
		return n, smderrors.Wrap(err, smderrors.DomainIO, smderrors.CodeWriteFailed,
			"unable to write to device file "+f.name)
	}
	return n, nil
}

func (f *unixFile) Close() error {
	if err := unix.Close(f.fd); err != nil {
		return smderrors.Wrap(err, smderrors.DomainIO, smderrors.CodeCloseFailed,
			"unable to close device file "+f.name)
	}
	return nil
}

// Fd returns the raw file descriptor, for components (scsi, ata, geometry,
// optical) that issue ioctls directly against it.
func (f *unixFile) Fd() int { return f.fd }

// Fd exposes the raw descriptor of a File for ioctl-issuing components.
// It returns false if file does not support exposing a native descriptor.
func Fd(file File) (int, bool) {
	if uf, ok := file.(*unixFile); ok {
		return uf.fd, true
	}
	return 0, false
}

// CheckDevice reports whether path resolves to a character or block
// device, per POSIX S_ISBLK/S_ISCHR.
func CheckDevice(path string) (bool, error) {
	var st unix.Stat_t
	if err := unix.Stat(path, &st); err != nil {
		if err == unix.ENOENT {
			return false, smderrors.Wrap(err, smderrors.DomainIO, smderrors.CodeInvalidResource,
				"no such path "+path)
		}
		if err == unix.EACCES {
			return false, smderrors.Wrap(err, smderrors.DomainIO, smderrors.CodeAccessDenied,
				"access denied to "+path)
		}
		return false, smderrors.Wrap(err, smderrors.DomainIO, smderrors.CodeOpenFailed,
			"unable to stat "+path)
	}
	mode := st.Mode & unix.S_IFMT
	return mode == unix.S_IFBLK || mode == unix.S_IFCHR, nil
}
