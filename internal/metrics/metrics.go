// Copyright (c) 2022 The rcproxy Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package metrics exposes Prometheus instrumentation for the server,
// trimmed from the reference proxy's stats down to what a standalone
// store (no backend Redis to track) can report: connections, commands
// bucketed by family, and request latency.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Stats holds every registered metric. One instance lives for the
// process, created by New and wired into server/command call sites.
type Stats struct {
	TotalConnections *prometheus.CounterVec
	CurrConnections  *prometheus.GaugeVec

	TotalRequests *prometheus.CounterVec
	ReqCmd        *prometheus.CounterVec
	Request       *prometheus.HistogramVec

	ClientConnectionsClientEof *prometheus.CounterVec
	ClientConnectionsClientErr *prometheus.CounterVec
}

// New registers and returns a fresh Stats under namespace. Call it once
// per process; registering twice under the same namespace panics via
// prometheus.MustRegister, matching the reference proxy's init-time
// registration pattern.
func New(namespace string) *Stats {
	stats := &Stats{
		TotalConnections: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "total_connections",
			Help:      "total connections accepted",
		}, nil),
		CurrConnections: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "curr_connections",
			Help:      "current open connections",
		}, nil),
		TotalRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "total_requests",
			Help:      "total commands executed",
		}, nil),
		ReqCmd: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cmd",
			Help:      "commands executed, bucketed by family",
		}, []string{"family"}),
		Request: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "request_latency_seconds",
			Help:      "time to decode, execute, and encode one command",
			Buckets:   prometheus.DefBuckets,
		}, nil),
		ClientConnectionsClientEof: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "client_connections_client_eof",
			Help:      "client actively closed the connection",
		}, nil),
		ClientConnectionsClientErr: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "client_connections_client_err",
			Help:      "connection ended on a read/write error or malformed frame",
		}, nil),
	}
	prometheus.MustRegister(
		stats.TotalConnections, stats.CurrConnections, stats.TotalRequests,
		stats.ReqCmd, stats.Request,
		stats.ClientConnectionsClientEof, stats.ClientConnectionsClientErr,
	)
	return stats
}

// CommandExecuted records one finished command under its family bucket.
func (s *Stats) CommandExecuted(family string) {
	s.TotalRequests.WithLabelValues().Inc()
	s.ReqCmd.WithLabelValues(family).Inc()
}

// ConnOpened records a newly accepted connection.
func (s *Stats) ConnOpened() {
	s.TotalConnections.WithLabelValues().Inc()
	s.CurrConnections.WithLabelValues().Inc()
}

// ConnClosed records a connection ending, either because the client
// closed it (eof true) or because of a read/write/protocol error.
func (s *Stats) ConnClosed(eof bool) {
	s.CurrConnections.WithLabelValues().Dec()
	if eof {
		s.ClientConnectionsClientEof.WithLabelValues().Inc()
	} else {
		s.ClientConnectionsClientErr.WithLabelValues().Inc()
	}
}
