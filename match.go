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

package routing

import "github.com/flashkit/routing/route"

// Match is the result of a successful resolution: the matched entry plus the
// parameter bindings captured along the way. A Match is constructed fresh per
// lookup, never cached and never shared across requests; the caller reads it
// once and discards it.
type Match struct {
	// Entry is the matched route record.
	Entry *route.Entry

	// Params maps parameter names to the literal path text captured at their
	// position. Values are not decoded or transformed. Nil when the route has
	// no captures.
	Params map[string]string
}

// Param returns the captured value for name, or the empty string.
func (m *Match) Param(name string) string {
	if m.Params == nil {
		return ""
	}
	return m.Params[name]
}

// MissReason explains why a resolution produced no match. A lookup miss is a
// normal result, not an error; the reason lets the caller distinguish "no
// path registered" from "path registered under another method" without a
// second probe at this layer.
type MissReason int

const (
	// MissNone accompanies a successful match.
	MissNone MissReason = iota

	// MissNotFound means no registered route matched the path shape.
	MissNotFound

	// MissMethodNotAllowed means a node matched the full path but holds no
	// route for the requested method. The 404-vs-405 policy built on top of
	// this belongs to the caller, not the engine.
	MissMethodNotAllowed
)

// String returns a short name for the miss reason, used in logs and metrics.
func (r MissReason) String() string {
	switch r {
	case MissNone:
		return "matched"
	case MissNotFound:
		return "not_found"
	case MissMethodNotAllowed:
		return "method_not_allowed"
	default:
		return "unknown"
	}
}
