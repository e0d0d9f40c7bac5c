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

// Package server implements the TCP accept loop and per-connection RESP
// request/response pump around the core codec, command, and store
// packages. None of that core logic does I/O; server is where bytes
// meet the network.
package server

import (
	"context"
	"net"

	"respd/internal/logging"
	"respd/internal/metrics"
	"respd/store"
)

// Server accepts TCP connections on a single listener and services each
// on its own goroutine. It holds no protocol state itself; every
// connection reads and writes through the shared store.Store.
type Server struct {
	ln    net.Listener
	store store.Store
	stats *metrics.Stats
	opts  *Options
}

// New binds addr and returns a Server ready to Serve. The listener is
// opened eagerly so callers can detect a bad address before starting
// the accept loop.
func New(addr string, st store.Store, stats *metrics.Stats, opt ...Option) (*Server, error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, err
	}
	return &Server{
		ln:    ln,
		store: st,
		stats: stats,
		opts:  loadOptions(opt...),
	}, nil
}

// Addr reports the listener's bound address, useful when addr was
// ":0" and the OS picked a port.
func (s *Server) Addr() net.Addr { return s.ln.Addr() }

// Serve accepts connections until ctx is canceled or the listener
// returns a permanent error. Each accepted connection is serviced in
// its own goroutine, so one slow or stuck client never blocks another.
func (s *Server) Serve(ctx context.Context) error {
	go func() {
		<-ctx.Done()
		s.ln.Close()
	}()

	for {
		conn, err := s.ln.Accept()
		if err != nil {
			select {
			case <-ctx.Done():
				return nil
			default:
				return err
			}
		}
		if tc, ok := conn.(*net.TCPConn); ok && s.opts.TCPKeepAlive > 0 {
			tc.SetKeepAlive(true)
			tc.SetKeepAlivePeriod(s.opts.TCPKeepAlive)
		}
		s.stats.ConnOpened()
		go s.serveConn(conn)
	}
}

func (s *Server) serveConn(conn net.Conn) {
	defer conn.Close()
	remote := conn.RemoteAddr()
	logging.Debugf("connection opened: %s", remote)

	err := handleConn(conn, s.store, s.stats, s.opts)
	s.stats.ConnClosed(err == nil)
	if err != nil {
		logging.Debugf("connection %s closed with error: %s", remote, err)
	} else {
		logging.Debugf("connection closed: %s", remote)
	}
}
