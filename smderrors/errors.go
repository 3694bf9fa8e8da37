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

// Package smderrors defines the small closed error taxonomy used across
// smdev: every operation either succeeds or fails with an error tagged by
// a domain and a code. Callers append context with Wrap as an error
// propagates up the call stack.
package smderrors

import "github.com/pkg/errors"

// Domain is a closed enumeration of error categories.
type Domain int

const (
	DomainArguments Domain = iota
	DomainRuntime
	DomainIO
	DomainMemory
	DomainConversion
	DomainInput
)

func (d Domain) String() string {
	switch d {
	case DomainArguments:
		return "arguments"
	case DomainRuntime:
		return "runtime"
	case DomainIO:
		return "io"
	case DomainMemory:
		return "memory"
	case DomainConversion:
		return "conversion"
	case DomainInput:
		return "input"
	default:
		return "unknown"
	}
}

// Code identifies the specific failure within a Domain.
type Code int

const (
	// Arguments domain.
	CodeInvalidNull Code = iota
	CodeValueExceedsMaximum
	CodeValueOutOfBounds
	CodeConflictingValue

	// Runtime domain.
	CodeAlreadySet
	CodeValueMissing
	CodeInitializeFailed
	CodeFinalizeFailed
	CodeResizeFailed
	CodeGetFailed
	CodeSetFailed
	CodeAppendFailed
	CodeRemoveFailed
	CodePrintFailed
	CodeUnsupportedValue
	CodeAbortRequested

	// I/O domain.
	CodeOpenFailed
	CodeCloseFailed
	CodeSeekFailed
	CodeReadFailed
	CodeWriteFailed
	CodeIoctlFailed
	CodeUnlinkFailed
	CodeAccessDenied
	CodeInvalidResource

	// Memory domain.
	CodeInsufficientMemory
	CodeCopyFailed
	CodeMemorySetFailed

	// Conversion domain.
	CodeConversionInputFailed
	CodeConversionOutputFailed

	// Input domain.
	CodeInvalidData
	CodeSignatureMismatch
	CodeChecksumMismatch
	CodeValueMismatch
)

// Error is the concrete error type returned by smdev operations.
type Error struct {
	Domain  Domain
	Code    Code
	Message string
	cause   error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return e.Domain.String() + ": " + e.Message + ": " + e.cause.Error()
	}
	return e.Domain.String() + ": " + e.Message
}

// Unwrap exposes the wrapped cause so errors.Is/errors.As keep working.
func (e *Error) Unwrap() error { return e.cause }

// New builds a new Error with no underlying cause.
func New(domain Domain, code Code, message string) error {
	return &Error{Domain: domain, Code: code, Message: message}
}

// Wrap attaches domain/code context to an existing error, preserving it as
// the cause. A nil err yields a nil result so callers can Wrap(err) freely
// in a return statement.
func Wrap(err error, domain Domain, code Code, message string) error {
	if err == nil {
		return nil
	}
	return &Error{Domain: domain, Code: code, Message: message, cause: errors.WithStack(err)}
}

// Is reports whether err is a smderrors.Error carrying the given domain and
// code, searching the wrap chain.
func Is(err error, domain Domain, code Code) bool {
	for err != nil {
		if e, ok := err.(*Error); ok {
			if e.Domain == domain && e.Code == code {
				return true
			}
			err = e.cause
			continue
		}
		err = errors.Unwrap(err)
	}
	return false
}
