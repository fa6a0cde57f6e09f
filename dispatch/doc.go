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

// Package dispatch is the HTTP-method-aware consumer of the resolution
// engine: an http.Handler that owns a routing.Registry, resolves each
// request's (method, path) pair, and invokes the matched handler with its
// parameter bindings.
//
// The 404-vs-405 policy lives here, not in the engine: on a miss the
// dispatcher issues a second, method-agnostic query and answers 405 with an
// Allow header when the path exists under other methods, 404 otherwise. Both
// responses are replaceable via options.
//
// Routes registered under the BEFORE and AFTER pseudo-methods act as filter
// phases: a matching BEFORE route runs ahead of the principal handler and an
// AFTER route behind it, resolved through the same engine with the same
// precedence rules.
//
// Observability follows the resolution outcome: an optional OpenTelemetry
// span per request carrying the matched route pattern (never the raw path,
// to keep attribute cardinality bounded), optional Prometheus counters and
// latency histograms labeled by outcome, and slog-based debug logging.
package dispatch
