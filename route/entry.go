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

import (
	"fmt"
	"strings"
)

// Kind classifies an Entry into exactly one resolution bucket. The
// route-declaration layer uses the kind to pick the structure an entry is
// registered into; the registry never re-classifies or moves entries.
type Kind int

const (
	// KindLiteral is a route with no parameter or wildcard segments,
	// matched by exact path equality.
	KindLiteral Kind = iota

	// KindParameterized is a route with one or more ":name" segments,
	// matched segment by segment with named captures.
	KindParameterized

	// KindDynamic is a route ending in a wildcard segment, matched by
	// longest registered prefix.
	KindDynamic
)

// String returns a short name for the kind, used in logs and errors.
func (k Kind) String() string {
	switch k {
	case KindLiteral:
		return "literal"
	case KindParameterized:
		return "parameterized"
	case KindDynamic:
		return "dynamic"
	default:
		return "unknown"
	}
}

// defaultWildcardParam is the capture name used when a wildcard segment
// carries no explicit name ("/static/*" vs "/static/*asset").
const defaultWildcardParam = "filepath"

// Segment is one "/"-delimited component of a route pattern. For parameter
// segments, Text holds the parameter name with the ":" marker stripped.
type Segment struct {
	Text  string
	Param bool
}

// Entry is an immutable record describing one registered route. Segments are
// derived from the pattern exactly once, at construction; pattern and
// segments always agree in count and order. The handler is an opaque
// reference borrowed from the registering caller.
type Entry struct {
	method       Method
	pattern      string
	segments     []Segment
	kind         Kind
	wildcardName string // capture name for the trailing wildcard, dynamic routes only
	handler      any
}

// NewEntry builds an Entry from a method, a raw pattern, and an opaque
// handler. Validation is synchronous: a malformed pattern fails here and no
// partial state escapes. Empty segments produced by leading, doubled, or
// trailing slashes are discarded during the split, never kept as components.
func NewEntry(method Method, pattern string, handler any) (*Entry, error) {
	if pattern == "" {
		return nil, ErrEmptyPattern
	}
	if handler == nil {
		return nil, fmt.Errorf("%w: %s %s", ErrNilHandler, method, pattern)
	}

	e := &Entry{
		method:  method,
		pattern: pattern,
		kind:    KindLiteral,
		handler: handler,
	}

	raw := strings.Split(pattern, "/")
	e.segments = make([]Segment, 0, len(raw))

	for _, seg := range raw {
		if seg == "" {
			continue
		}
		if e.kind == KindDynamic {
			// A wildcard was already consumed, so this segment sits after it.
			return nil, fmt.Errorf("%w: %q", ErrMisplacedWildcard, pattern)
		}

		switch {
		case strings.HasPrefix(seg, ":"):
			name := seg[1:]
			if name == "" {
				return nil, fmt.Errorf("%w: %q", ErrEmptyParamName, pattern)
			}
			if !isIdentifier(name) {
				return nil, fmt.Errorf("%w: %q in %q", ErrInvalidParamName, name, pattern)
			}
			e.segments = append(e.segments, Segment{Text: name, Param: true})
			if e.kind == KindLiteral {
				e.kind = KindParameterized
			}

		case strings.HasPrefix(seg, "*"):
			name := seg[1:]
			if name == "" {
				name = defaultWildcardParam
			} else if !isIdentifier(name) {
				return nil, fmt.Errorf("%w: %q in %q", ErrInvalidParamName, name, pattern)
			}
			e.wildcardName = name
			e.kind = KindDynamic

		default:
			e.segments = append(e.segments, Segment{Text: seg})
		}
	}

	return e, nil
}

// Method returns the route's method.
func (e *Entry) Method() Method { return e.method }

// Pattern returns the raw pattern the route was registered with.
func (e *Entry) Pattern() string { return e.pattern }

// Kind returns the route's resolution bucket.
func (e *Entry) Kind() Kind { return e.kind }

// Handler returns the opaque handler reference.
func (e *Entry) Handler() any { return e.handler }

// WildcardName returns the capture name of the trailing wildcard for dynamic
// routes, or the empty string for other kinds.
func (e *Entry) WildcardName() string { return e.wildcardName }

// Segments returns the pre-split pattern segments. The wildcard segment of a
// dynamic route is not included; it is represented by WildcardName instead.
// Callers must not mutate the returned slice.
func (e *Entry) Segments() []Segment { return e.segments }

// CanonicalPath returns the normalized path form of the pattern: segments
// rejoined with single slashes and a leading slash, parameter markers intact.
// For dynamic routes this is the prefix path, without the wildcard segment.
// Literal index keys are built from this form so that "/a//b/" and "/a/b"
// register identically.
func (e *Entry) CanonicalPath() string {
	if len(e.segments) == 0 {
		return "/"
	}
	var b strings.Builder
	for _, seg := range e.segments {
		b.WriteByte('/')
		if seg.Param {
			b.WriteByte(':')
		}
		b.WriteString(seg.Text)
	}
	return b.String()
}

// isIdentifier reports whether name is a valid parameter identifier:
// letters, digits, and underscores, not starting with a digit.
func isIdentifier(name string) bool {
	for i, r := range name {
		switch {
		case r == '_' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z'):
		case r >= '0' && r <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return len(name) > 0
}
