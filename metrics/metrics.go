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

// Package metrics exposes optional Prometheus counters for the read
// engine's bad-range recoveries. It is opt-in: callers who want metrics
// construct a Recorder and register it themselves, and every other
// package in this module works unmodified without one.
package metrics

import "github.com/prometheus/client_golang/prometheus"

// Recorder counts bad-range recoveries across one or more handles. The
// zero value is not usable; construct with NewRecorder.
type Recorder struct {
	badRanges  prometheus.Counter
	badBytes   prometheus.Counter
	retryLoops prometheus.Counter
}

// NewRecorder builds a Recorder with the given metric name prefix.
func NewRecorder(namespace string) *Recorder {
	return &Recorder{
		badRanges: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "read_engine",
			Name:      "bad_ranges_total",
			Help:      "Number of unreadable regions recorded by the read engine.",
		}),
		badBytes: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "read_engine",
			Name:      "bad_bytes_total",
			Help:      "Total bytes zero-filled or skipped due to unreadable regions.",
		}),
		retryLoops: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "read_engine",
			Name:      "retries_total",
			Help:      "Number of individual read retry attempts made.",
		}),
	}
}

// Describe implements prometheus.Collector.
func (r *Recorder) Describe(ch chan<- *prometheus.Desc) {
	r.badRanges.Describe(ch)
	r.badBytes.Describe(ch)
	r.retryLoops.Describe(ch)
}

// Collect implements prometheus.Collector.
func (r *Recorder) Collect(ch chan<- prometheus.Metric) {
	r.badRanges.Collect(ch)
	r.badBytes.Collect(ch)
	r.retryLoops.Collect(ch)
}

// RecordBadRange records one granularity-window recovery of size bytes.
func (r *Recorder) RecordBadRange(size uint64) {
	r.badRanges.Inc()
	r.badBytes.Add(float64(size))
}

// RecordRetry records a single failed-then-retried read attempt.
func (r *Recorder) RecordRetry() {
	r.retryLoops.Inc()
}
