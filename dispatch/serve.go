// Copyright 2026 The Flashkit Authors
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

package dispatch

import (
	"fmt"
	"net/http"
	"time"

	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"
)

// serverTimeouts holds HTTP server timeout configuration.
type serverTimeouts struct {
	readHeader time.Duration
	read       time.Duration
	write      time.Duration
	idle       time.Duration
}

// defaultServerTimeouts returns default timeout configuration.
func defaultServerTimeouts() *serverTimeouts {
	return &serverTimeouts{
		readHeader: 5 * time.Second,
		read:       15 * time.Second,
		write:      30 * time.Second,
		idle:       60 * time.Second,
	}
}

// WithServerTimeouts configures HTTP server timeouts for Serve/ServeTLS.
// These prevent slowloris attacks and resource exhaustion. All four values
// must be positive.
//
// Defaults (if not set): ReadHeaderTimeout 5s, ReadTimeout 15s,
// WriteTimeout 30s, IdleTimeout 60s.
func WithServerTimeouts(readHeader, read, write, idle time.Duration) Option {
	return func(h *Handler) {
		h.serverTimeouts = &serverTimeouts{
			readHeader: readHeader,
			read:       read,
			write:      write,
			idle:       idle,
		}
	}
}

// WithH2C enables HTTP/2 Cleartext support in Serve.
//
// Only use in development or behind a trusted load balancer; do not enable
// on public-facing servers without TLS.
func WithH2C(enable bool) Option {
	return func(h *Handler) {
		h.enableH2C = enable
	}
}

// validate checks the dispatcher configuration. Called by New.
func (h *Handler) validate() error {
	if t := h.serverTimeouts; t != nil {
		for _, d := range []time.Duration{t.readHeader, t.read, t.write, t.idle} {
			if d <= 0 {
				return fmt.Errorf("%w: got %v", ErrServerTimeoutInvalid, d)
			}
		}
	}
	return nil
}

// Serve starts an HTTP server on addr with the configured timeouts,
// wrapping the dispatcher in an h2c handler when H2C is enabled.
func (h *Handler) Serve(addr string) error {
	handler := http.Handler(h)
	if h.enableH2C {
		handler = h2c.NewHandler(handler, &http2.Server{})
	}

	timeouts := h.serverTimeouts
	if timeouts == nil {
		timeouts = defaultServerTimeouts()
	}

	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: timeouts.readHeader,
		ReadTimeout:       timeouts.read,
		WriteTimeout:      timeouts.write,
		IdleTimeout:       timeouts.idle,
	}
	return srv.ListenAndServe()
}

// ServeTLS starts an HTTPS server on addr. HTTP/2 is enabled automatically
// via ALPN.
func (h *Handler) ServeTLS(addr, certFile, keyFile string) error {
	timeouts := h.serverTimeouts
	if timeouts == nil {
		timeouts = defaultServerTimeouts()
	}

	srv := &http.Server{
		Addr:              addr,
		Handler:           h,
		ReadHeaderTimeout: timeouts.readHeader,
		ReadTimeout:       timeouts.read,
		WriteTimeout:      timeouts.write,
		IdleTimeout:       timeouts.idle,
	}
	return srv.ListenAndServeTLS(certFile, keyFile)
}
