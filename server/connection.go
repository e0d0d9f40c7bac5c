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

import (
	"errors"
	"io"
	"net"
	"time"

	"github.com/valyala/bytebufferpool"

	"respd/command"
	"respd/internal/logging"
	"respd/internal/metrics"
	"respd/resp"
	"respd/store"
)

// handleConn owns one client connection end to end: it decodes RESP
// frames from conn as they arrive, executes each recognized command
// against st in the order received, and writes back encoded responses
// in that same order. It returns when the connection closes or a fatal
// protocol error occurs; the caller is responsible for conn.Close.
func handleConn(conn net.Conn, st store.Store, stats *metrics.Stats, opts *Options) error {
	buf := resp.NewBuffer(nil)
	chunk := make([]byte, opts.ReadBufferSize)
	out := bytebufferpool.Get()
	defer bytebufferpool.Put(out)

	for {
		n, err := conn.Read(chunk)
		if n > 0 {
			buf.Write(chunk[:n])
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}

		out.Reset()
		for {
			start := time.Now()
			f, consumed, derr := resp.Decode(buf.Bytes())
			if derr != nil {
				if errors.Is(derr, resp.ErrIncomplete) {
					break
				}
				logging.Errorf("protocol error from %s: %s", conn.RemoteAddr(), derr)
				return derr
			}
			buf.Advance(consumed)

			c, perr := command.Parse(f)
			if perr != nil {
				// Command errors close the connection: write the
				// diagnostic reply for whatever the client can still
				// read, then tear down, matching the codec error path.
				out.B = resp.AppendFrame(out.B, resp.SimpleError("ERR "+perr.Error()))
				if out.Len() > 0 {
					conn.Write(out.B)
				}
				return perr
			}
			out.B = resp.AppendFrame(out.B, c.Execute(st))
			stats.Request.WithLabelValues().Observe(time.Since(start).Seconds())
			stats.CommandExecuted(c.Name().Family())
		}

		if out.Len() > 0 {
			if _, werr := conn.Write(out.B); werr != nil {
				return werr
			}
		}
	}
}
