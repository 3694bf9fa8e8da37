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

// Package smlog owns the single process-wide logger and verbose flag: a
// logrus.Logger whose debug level is gated by one explicit SetVerbose
// call.
package smlog

import "github.com/sirupsen/logrus"

var logger = func() *logrus.Logger {
	l := logrus.New()
	l.SetLevel(logrus.InfoLevel)
	return l
}()

// Logger returns the shared logger instance.
func Logger() *logrus.Logger { return logger }

// SetVerbose toggles debug-level logging, mirroring the verbose flag the
// -v command-line switch of the smdevinfo tool controls.
func SetVerbose(verbose bool) {
	if verbose {
		logger.SetLevel(logrus.DebugLevel)
	} else {
		logger.SetLevel(logrus.InfoLevel)
	}
}
