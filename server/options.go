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

package server

import "time"

// Option configures a Server at construction time.
type Option func(*Options)

// Options holds the tunables a Server reads at construction. Unlike the
// reference proxy's Options, there is no redis-server-side half: this
// server owns its own data and never dials out.
type Options struct {
	// ReadBufferSize is the chunk size used for each Read syscall. The
	// RESP decode loop keeps appending read chunks to a growing buffer
	// until a full frame is available, so this only bounds how much
	// memory one Read call can touch at a time, not message size.
	ReadBufferSize int

	// TCPKeepAlive, when positive, enables SO_KEEPALIVE with that period on
	// accepted connections. Zero leaves the listener's default keep-alive
	// setting unchanged.
	TCPKeepAlive time.Duration
}

func loadOptions(opts ...Option) *Options {
	o := &Options{
		ReadBufferSize: 64 * 1024,
		TCPKeepAlive:   0,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithReadBufferSize overrides the per-Read chunk size.
func WithReadBufferSize(n int) Option {
	return func(o *Options) {
		o.ReadBufferSize = n
	}
}

// WithTCPKeepAlive enables SO_KEEPALIVE with the given duration on every
// accepted connection.
func WithTCPKeepAlive(d time.Duration) Option {
	return func(o *Options) {
		o.TCPKeepAlive = d
	}
}
