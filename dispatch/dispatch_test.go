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
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flashkit/routing"
	"github.com/flashkit/routing/route"
)

func newTestHandler(t *testing.T, opts ...Option) *Handler {
	t.Helper()
	h, err := New(routing.New(), opts...)
	require.NoError(t, err)
	return h
}

func TestNewRequiresRegistry(t *testing.T) {
	h, err := New(nil)
	require.ErrorIs(t, err, ErrNilRegistry)
	assert.Nil(t, h)

	assert.Panics(t, func() { MustNew(nil) })
}

func TestDispatchMatchedRoute(t *testing.T) {
	h := newTestHandler(t)

	require.NoError(t, h.GET("/users/:id", func(w http.ResponseWriter, _ *http.Request, m *routing.Match) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(m.Param("id")))
	}))

	req := httptest.NewRequest(http.MethodGet, "/users/42", nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "42", w.Body.String())
}

func TestDispatchLiteralBeatsParameterized(t *testing.T) {
	h := newTestHandler(t)

	require.NoError(t, h.GET("/users/new", func(w http.ResponseWriter, _ *http.Request, _ *routing.Match) {
		_, _ = w.Write([]byte("literal"))
	}))
	require.NoError(t, h.GET("/users/:id", func(w http.ResponseWriter, _ *http.Request, _ *routing.Match) {
		_, _ = w.Write([]byte("param"))
	}))

	req := httptest.NewRequest(http.MethodGet, "/users/new", nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	assert.Equal(t, "literal", w.Body.String())
}

func TestDispatchNotFound(t *testing.T) {
	h := newTestHandler(t)
	require.NoError(t, h.GET("/users", func(http.ResponseWriter, *http.Request, *routing.Match) {}))

	req := httptest.NewRequest(http.MethodGet, "/nope", nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDispatchMethodNotAllowed(t *testing.T) {
	h := newTestHandler(t)
	require.NoError(t, h.GET("/users/:id", func(http.ResponseWriter, *http.Request, *routing.Match) {}))
	require.NoError(t, h.DELETE("/users/:id", func(http.ResponseWriter, *http.Request, *routing.Match) {}))

	req := httptest.NewRequest(http.MethodPost, "/users/42", nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
	assert.Equal(t, "GET, DELETE", w.Header().Get("Allow"))
}

func TestDispatchMethodNotAllowedForLiteralRoutes(t *testing.T) {
	// Literal routes are invisible under another method in the exact-match
	// index; the method-agnostic probe still finds them.
	h := newTestHandler(t)
	require.NoError(t, h.GET("/health", func(http.ResponseWriter, *http.Request, *routing.Match) {}))

	req := httptest.NewRequest(http.MethodPost, "/health", nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
	assert.Equal(t, "GET", w.Header().Get("Allow"))
}

func TestDispatchCustomMissHandlers(t *testing.T) {
	h := newTestHandler(t,
		WithNotFound(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusTeapot)
		})),
		WithMethodNotAllowed(func(w http.ResponseWriter, _ *http.Request, allowed []route.Method) {
			w.WriteHeader(http.StatusMethodNotAllowed)
			_, _ = w.Write([]byte(allowed[0].String()))
		}),
	)
	require.NoError(t, h.PUT("/thing", func(http.ResponseWriter, *http.Request, *routing.Match) {}))

	req := httptest.NewRequest(http.MethodGet, "/gone", nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	assert.Equal(t, http.StatusTeapot, w.Code)

	req = httptest.NewRequest(http.MethodGet, "/thing", nil)
	w = httptest.NewRecorder()
	h.ServeHTTP(w, req)
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
	assert.Equal(t, "PUT", w.Body.String())
}

func TestDispatchFilterPhases(t *testing.T) {
	h := newTestHandler(t)

	var order []string
	require.NoError(t, h.Before("/api/*", func(http.ResponseWriter, *http.Request, *routing.Match) {
		order = append(order, "before")
	}))
	require.NoError(t, h.After("/api/*", func(http.ResponseWriter, *http.Request, *routing.Match) {
		order = append(order, "after")
	}))
	require.NoError(t, h.GET("/api/users", func(http.ResponseWriter, *http.Request, *routing.Match) {
		order = append(order, "handler")
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
	h.ServeHTTP(httptest.NewRecorder(), req)
	assert.Equal(t, []string{"before", "handler", "after"}, order)

	// Filters scoped elsewhere do not run.
	order = nil
	require.NoError(t, h.GET("/plain", func(http.ResponseWriter, *http.Request, *routing.Match) {
		order = append(order, "handler")
	}))
	req = httptest.NewRequest(http.MethodGet, "/plain", nil)
	h.ServeHTTP(httptest.NewRecorder(), req)
	assert.Equal(t, []string{"handler"}, order)
}

func TestDispatchWildcardRoute(t *testing.T) {
	h := newTestHandler(t)

	require.NoError(t, h.GET("/static/*", func(w http.ResponseWriter, _ *http.Request, m *routing.Match) {
		_, _ = w.Write([]byte(m.Param("filepath")))
	}))

	req := httptest.NewRequest(http.MethodGet, "/static/css/app.css", nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	assert.Equal(t, "css/app.css", w.Body.String())
}

func TestDispatchOverwrite(t *testing.T) {
	h := newTestHandler(t)

	require.NoError(t, h.GET("/v", func(w http.ResponseWriter, _ *http.Request, _ *routing.Match) {
		_, _ = w.Write([]byte("one"))
	}))
	require.NoError(t, h.GET("/v", func(w http.ResponseWriter, _ *http.Request, _ *routing.Match) {
		_, _ = w.Write([]byte("two"))
	}))

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v", nil))
	assert.Equal(t, "two", w.Body.String())
}

func TestHandleRejectsMalformedPattern(t *testing.T) {
	h := newTestHandler(t)

	err := h.GET("/users/:", func(http.ResponseWriter, *http.Request, *routing.Match) {})
	require.ErrorIs(t, err, route.ErrEmptyParamName)
	assert.Zero(t, h.Registry().ParameterizedCount(), "failed registration must leave no partial state")
}

func TestDispatchUndispatchableHandler(t *testing.T) {
	h := newTestHandler(t)

	// Register through the registry directly with a foreign handler type.
	e, err := route.NewEntry(route.GET, "/foreign", "not a HandlerFunc")
	require.NoError(t, err)
	require.NoError(t, h.Registry().Register(e))

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/foreign", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestDispatchObservabilityOptions(t *testing.T) {
	// Tracing and metrics enabled: requests still dispatch normally with
	// the default (no-op) otel tracer provider and the process-wide
	// Prometheus registry.
	h := newTestHandler(t, WithTracing(true), WithMetrics(true))

	require.NoError(t, h.GET("/traced/:id", func(w http.ResponseWriter, _ *http.Request, m *routing.Match) {
		_, _ = w.Write([]byte(m.Param("id")))
	}))

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/traced/5", nil))
	assert.Equal(t, "5", w.Body.String())

	w = httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/absent", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRegisteredRouteGauges(t *testing.T) {
	h := newTestHandler(t, WithMetrics(true))

	noop := func(http.ResponseWriter, *http.Request, *routing.Match) {}
	require.NoError(t, h.GET("/health", noop))
	require.NoError(t, h.GET("/users/:id", noop))
	require.NoError(t, h.POST("/users/:id", noop))
	require.NoError(t, h.GET("/static/*", noop))

	m := getDispatchMetrics()
	assert.Equal(t, 1.0, testutil.ToFloat64(m.routes.WithLabelValues("literal")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.routes.WithLabelValues("parameterized")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.routes.WithLabelValues("dynamic")))

	// Routes registered before metrics come up are counted at construction.
	pre := routing.New()
	e, err := route.NewEntry(route.GET, "/pre/:id", noop)
	require.NoError(t, err)
	require.NoError(t, pre.Register(e))
	_, err = New(pre, WithMetrics(true))
	require.NoError(t, err)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.routes.WithLabelValues("parameterized")))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.routes.WithLabelValues("literal")))
}

func TestServerTimeoutValidation(t *testing.T) {
	_, err := New(routing.New(), WithServerTimeouts(0, time.Second, time.Second, time.Second))
	require.ErrorIs(t, err, ErrServerTimeoutInvalid)

	_, err = New(routing.New(), WithServerTimeouts(time.Second, time.Second, time.Second, time.Second))
	require.NoError(t, err)
}
