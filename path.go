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

import "strings"

// splitPath splits a request path into its segments. Empty segments from
// leading, doubled, or trailing slashes are discarded, never treated as real
// path components, so "/a//b/" and "/a/b" segment identically.
//
// Parsing is manual rather than strings.Split to avoid allocating for the
// common shallow paths: the returned slice is sized to the segment count.
func splitPath(path string) []string {
	n := 0
	for i := 0; i < len(path); {
		for i < len(path) && path[i] == '/' {
			i++
		}
		if i < len(path) {
			n++
		}
		for i < len(path) && path[i] != '/' {
			i++
		}
	}
	if n == 0 {
		return nil
	}

	segments := make([]string, 0, n)
	start := 0
	for start < len(path) {
		for start < len(path) && path[start] == '/' {
			start++
		}
		end := start
		for end < len(path) && path[end] != '/' {
			end++
		}
		if end > start {
			segments = append(segments, path[start:end])
		}
		start = end
	}
	return segments
}

// joinSegments rebuilds the canonical "/"-joined form of the given segments
// with a leading slash. The canonical form of zero segments is "/".
func joinSegments(segments []string) string {
	if len(segments) == 0 {
		return "/"
	}
	var b strings.Builder
	for _, seg := range segments {
		b.WriteByte('/')
		b.WriteString(seg)
	}
	return b.String()
}
