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
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/flashkit/routing"
	"github.com/flashkit/routing/route"
)

// tracerName identifies this instrumentation scope to OpenTelemetry.
const tracerName = "github.com/flashkit/routing/dispatch"

// noopLogger is a singleton no-op logger used when no logger is configured.
var noopLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// HandlerFunc is the handler capability carried by routes registered through
// this package. The match gives access to the entry and the captured path
// parameters.
type HandlerFunc func(w http.ResponseWriter, req *http.Request, m *routing.Match)

// Option defines functional options for dispatcher configuration.
type Option func(*Handler)

// WithLogger sets the structured logger for per-request debug logging.
// Defaults to a no-op logger.
func WithLogger(logger *slog.Logger) Option {
	return func(h *Handler) {
		if logger != nil {
			h.logger = logger
		}
	}
}

// WithTracing enables an OpenTelemetry span per request, carrying the HTTP
// method, the matched route pattern, and the resolution outcome. The span
// records the pattern rather than the raw path to keep cardinality bounded.
func WithTracing(enabled bool) Option {
	return func(h *Handler) {
		if enabled {
			h.tracer = otel.Tracer(tracerName)
		} else {
			h.tracer = nil
		}
	}
}

// WithMetrics enables Prometheus resolution metrics on the default registry:
// an outcome counter, a latency histogram, and per-bucket registered-route
// gauges refreshed on every registration through this dispatcher.
func WithMetrics(enabled bool) Option {
	return func(h *Handler) {
		if enabled {
			h.metrics = getDispatchMetrics()
		} else {
			h.metrics = nil
		}
	}
}

// WithNotFound replaces the default 404 response for paths no route matches.
func WithNotFound(handler http.Handler) Option {
	return func(h *Handler) {
		h.notFound = handler
	}
}

// WithMethodNotAllowed replaces the default 405 response. The callback
// receives the methods that do have a route for the path; the default writes
// them into the Allow header.
func WithMethodNotAllowed(fn func(w http.ResponseWriter, req *http.Request, allowed []route.Method)) Option {
	return func(h *Handler) {
		h.methodNotAllowed = fn
	}
}

// Handler dispatches HTTP requests through a routing.Registry. It implements
// http.Handler and is safe for concurrent use; route registration may happen
// at any time, including while requests are being served.
type Handler struct {
	registry *routing.Registry
	logger   *slog.Logger
	tracer   trace.Tracer
	metrics  *dispatchMetrics

	notFound         http.Handler
	methodNotAllowed func(w http.ResponseWriter, req *http.Request, allowed []route.Method)

	// HTTP server configuration, used by Serve/ServeTLS only.
	enableH2C      bool
	serverTimeouts *serverTimeouts
}

// New creates a dispatcher over the given registry.
//
// Example:
//
//	reg := routing.New()
//	d, err := dispatch.New(reg, dispatch.WithMetrics(true))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	d.GET("/users/:id", getUser)
//	http.ListenAndServe(":8080", d)
func New(registry *routing.Registry, opts ...Option) (*Handler, error) {
	if registry == nil {
		return nil, ErrNilRegistry
	}
	h := &Handler{
		registry: registry,
		logger:   noopLogger,
	}
	for _, opt := range opts {
		opt(h)
	}
	if err := h.validate(); err != nil {
		return nil, fmt.Errorf("dispatcher configuration validation failed: %w", err)
	}
	if h.metrics != nil {
		// The registry may already hold routes when metrics come up.
		h.metrics.setRouteCounts(h.registry)
	}
	return h, nil
}

// MustNew creates a dispatcher and panics if configuration is invalid.
func MustNew(registry *routing.Registry, opts ...Option) *Handler {
	h, err := New(registry, opts...)
	if err != nil {
		panic(fmt.Sprintf("dispatch.MustNew: %v", err))
	}
	return h
}

// Registry returns the underlying registry.
func (h *Handler) Registry() *routing.Registry { return h.registry }

// Handle registers a handler for the given method token and pattern. The
// method token is case-insensitive; the pattern uses ":name" captures and a
// trailing "*" (optionally "*name") wildcard. Duplicate (method, pattern)
// registration overwrites the previous handler.
func (h *Handler) Handle(method, pattern string, fn HandlerFunc) error {
	e, err := route.NewEntry(route.ParseMethod(method), pattern, fn)
	if err != nil {
		return err
	}
	if err := h.registry.Register(e); err != nil {
		return err
	}
	if h.metrics != nil {
		h.metrics.setRouteCounts(h.registry)
	}
	return nil
}

// GET registers a handler for GET requests to the pattern.
func (h *Handler) GET(pattern string, fn HandlerFunc) error {
	return h.Handle(http.MethodGet, pattern, fn)
}

// POST registers a handler for POST requests to the pattern.
func (h *Handler) POST(pattern string, fn HandlerFunc) error {
	return h.Handle(http.MethodPost, pattern, fn)
}

// PUT registers a handler for PUT requests to the pattern.
func (h *Handler) PUT(pattern string, fn HandlerFunc) error {
	return h.Handle(http.MethodPut, pattern, fn)
}

// PATCH registers a handler for PATCH requests to the pattern.
func (h *Handler) PATCH(pattern string, fn HandlerFunc) error {
	return h.Handle(http.MethodPatch, pattern, fn)
}

// DELETE registers a handler for DELETE requests to the pattern.
func (h *Handler) DELETE(pattern string, fn HandlerFunc) error {
	return h.Handle(http.MethodDelete, pattern, fn)
}

// HEAD registers a handler for HEAD requests to the pattern.
func (h *Handler) HEAD(pattern string, fn HandlerFunc) error {
	return h.Handle(http.MethodHead, pattern, fn)
}

// OPTIONS registers a handler for OPTIONS requests to the pattern.
func (h *Handler) OPTIONS(pattern string, fn HandlerFunc) error {
	return h.Handle(http.MethodOptions, pattern, fn)
}

// Before registers a filter that runs ahead of the principal handler for
// every request whose path matches the pattern. Filters resolve through the
// same engine under the BEFORE pseudo-method.
func (h *Handler) Before(pattern string, fn HandlerFunc) error {
	return h.Handle(route.Before.String(), pattern, fn)
}

// After registers a filter that runs behind the principal handler.
func (h *Handler) After(pattern string, fn HandlerFunc) error {
	return h.Handle(route.After.String(), pattern, fn)
}

// ServeHTTP resolves the request and invokes the matched handler chain:
// BEFORE filter (if any), principal handler, AFTER filter (if any). On a
// miss it applies the 404-vs-405 policy via a method-agnostic probe.
func (h *Handler) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	start := time.Now()
	path := req.URL.Path
	method := route.ParseMethod(req.Method)

	var span trace.Span
	if h.tracer != nil {
		var ctx = req.Context()
		ctx, span = h.tracer.Start(ctx, "routing.resolve",
			trace.WithAttributes(attribute.String("http.method", method.String())))
		req = req.WithContext(ctx)
		defer span.End()
	}

	match, miss := h.registry.Resolve(method, path)
	outcome := miss.String()

	if h.metrics != nil {
		h.metrics.observe(outcome, time.Since(start))
	}
	if span != nil {
		span.SetAttributes(attribute.String("routing.outcome", outcome))
		if match != nil {
			span.SetAttributes(attribute.String("http.route", match.Entry.Pattern()))
		}
	}

	if match == nil {
		h.serveMiss(w, req, miss)
		h.logger.Debug("request unresolved",
			"method", req.Method, "path", path, "outcome", outcome,
			"duration", time.Since(start))
		return
	}

	h.runFilter(route.Before, w, req, path)
	if fn, ok := match.Entry.Handler().(HandlerFunc); ok {
		fn(w, req, match)
	} else {
		// A handler registered outside this package is opaque to the
		// dispatcher; surface it as a server error rather than panicking.
		h.logger.Error("handler is not dispatchable",
			"method", req.Method, "pattern", match.Entry.Pattern())
		http.Error(w, "500 internal server error", http.StatusInternalServerError)
		return
	}
	h.runFilter(route.After, w, req, path)

	h.logger.Debug("request dispatched",
		"method", req.Method, "pattern", match.Entry.Pattern(),
		"duration", time.Since(start))
}

// runFilter resolves and runs the filter phase for the given pseudo-method.
// A filter miss is the normal case and costs one resolution.
func (h *Handler) runFilter(phase route.Method, w http.ResponseWriter, req *http.Request, path string) {
	match, _ := h.registry.Resolve(phase, path)
	if match == nil {
		return
	}
	if fn, ok := match.Entry.Handler().(HandlerFunc); ok {
		fn(w, req, match)
	}
}

// serveMiss applies the 404-vs-405 policy. The engine's miss reason is a
// hint; the authoritative answer comes from the method-agnostic probe, which
// also covers literal routes (invisible under another method in the exact
// -match index) and yields the Allow set.
func (h *Handler) serveMiss(w http.ResponseWriter, req *http.Request, _ routing.MissReason) {
	allowed := h.registry.AllowedMethods(req.URL.Path)
	if len(allowed) > 0 {
		if h.methodNotAllowed != nil {
			h.methodNotAllowed(w, req, allowed)
			return
		}
		tokens := make([]string, len(allowed))
		for i, m := range allowed {
			tokens[i] = m.String()
		}
		w.Header().Set("Allow", strings.Join(tokens, ", "))
		http.Error(w, "405 method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if h.notFound != nil {
		h.notFound.ServeHTTP(w, req)
		return
	}
	http.NotFound(w, req)
}
