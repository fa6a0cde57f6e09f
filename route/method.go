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

package route

import "strings"

// Method identifies the HTTP method of a route, including the filter-phase
// pseudo-methods that are not real HTTP verbs but share the same resolution
// machinery.
type Method string

// Supported methods. BEFORE and AFTER are pseudo-methods used to register
// filter routes that run around the principal handler. Unsupported is the
// sentinel that unknown tokens map to; it is a valid map key, so resolving
// it simply never matches anything.
const (
	GET         Method = "GET"
	POST        Method = "POST"
	PUT         Method = "PUT"
	PATCH       Method = "PATCH"
	DELETE      Method = "DELETE"
	HEAD        Method = "HEAD"
	OPTIONS     Method = "OPTIONS"
	TRACE       Method = "TRACE"
	Before      Method = "BEFORE"
	After       Method = "AFTER"
	Unsupported Method = "UNSUPPORTED"
)

// Methods lists every method with standard HTTP semantics, in a stable order.
// The filter pseudo-methods and the Unsupported sentinel are deliberately
// excluded: callers iterate this slice to probe "does any verb match this
// path" when deciding between 404 and 405.
var Methods = []Method{GET, POST, PUT, PATCH, DELETE, HEAD, OPTIONS, TRACE}

// ParseMethod maps a method token to its Method value. Matching is
// case-insensitive. Unknown tokens map to Unsupported rather than failing:
// a request with a nonsense method is a routing miss, not an engine error.
func ParseMethod(token string) Method {
	switch strings.ToUpper(token) {
	case "GET":
		return GET
	case "POST":
		return POST
	case "PUT":
		return PUT
	case "PATCH":
		return PATCH
	case "DELETE":
		return DELETE
	case "HEAD":
		return HEAD
	case "OPTIONS":
		return OPTIONS
	case "TRACE":
		return TRACE
	case "BEFORE":
		return Before
	case "AFTER":
		return After
	default:
		return Unsupported
	}
}

// String returns the method token.
func (m Method) String() string { return string(m) }
