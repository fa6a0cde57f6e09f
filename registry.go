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

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/flashkit/routing/route"
)

// noopLogger is a singleton no-op logger used when no logger is configured.
var noopLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// Option defines functional options for registry configuration.
type Option func(*Registry)

// WithLogger sets the structured logger used for registration-time debug
// logging. The hot resolution path never logs. Defaults to a no-op logger.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Registry) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// Registry orchestrates the three resolution structures and defines their
// precedence: literal index first, then the segment trie, then the prefix
// trie. It exclusively owns all trie roots and node graphs; handler
// references inside entries are borrowed, never owned.
//
// The caller classifies each entry into exactly one bucket via Entry.Kind
// and registers it with the matching method below. The registry rejects a
// mismatched bucket instead of re-classifying.
//
// Writers to the same structure are serialized by that structure; writers to
// different structures are fully independent. Lookups never block.
type Registry struct {
	literal *literalIndex
	params  *segmentTrie
	dynamic *prefixTrie
	logger  *slog.Logger
}

// New creates an empty registry. Construction cannot fail: the registry is a
// plain in-memory structure with no external dependencies, so New returns
// *Registry directly rather than an error.
func New(opts ...Option) *Registry {
	r := &Registry{
		literal: newLiteralIndex(),
		params:  newSegmentTrie(),
		dynamic: newPrefixTrie(),
		logger:  noopLogger,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// RegisterLiteral registers an exact-match route. A duplicate
// (method, pattern) registration overwrites the previous entry.
func (r *Registry) RegisterLiteral(e *route.Entry) error {
	if err := checkKind(e, route.KindLiteral); err != nil {
		return err
	}
	r.literal.insert(e)
	r.logRegistered("literal", e)
	return nil
}

// RegisterParameterized registers a route with ":name" captures into the
// segment trie. A duplicate (method, pattern) registration overwrites the
// previous entry deterministically, even under concurrent writers. Pattern
// identity is structural: two patterns that differ only in parameter names
// occupy the same slot, so the later one overwrites the earlier exactly as a
// textual duplicate would.
func (r *Registry) RegisterParameterized(e *route.Entry) error {
	if err := checkKind(e, route.KindParameterized); err != nil {
		return err
	}
	r.params.insert(e)
	r.logRegistered("parameterized", e)
	return nil
}

// RegisterDynamic registers a wildcard/catch-all route into the prefix trie.
func (r *Registry) RegisterDynamic(e *route.Entry) error {
	if err := checkKind(e, route.KindDynamic); err != nil {
		return err
	}
	r.dynamic.insert(e)
	r.logRegistered("dynamic", e)
	return nil
}

// Register classifies the entry by its kind and forwards to the matching
// bucket. It is a convenience for route-declaration layers that build
// entries with route.NewEntry and have no classification of their own.
func (r *Registry) Register(e *route.Entry) error {
	if e == nil {
		return ErrNilEntry
	}
	switch e.Kind() {
	case route.KindLiteral:
		return r.RegisterLiteral(e)
	case route.KindParameterized:
		return r.RegisterParameterized(e)
	default:
		return r.RegisterDynamic(e)
	}
}

// Resolve maps a (method, path) pair to a registered handler and its
// extracted parameters. The path is normalized first (empty segments from
// leading, doubled, or trailing slashes are discarded), then the structures
// are queried literal → parameterized → dynamic, returning the first hit.
//
// On a miss the reason distinguishes MissNotFound from
// MissMethodNotAllowed; the 404-vs-405 policy built on top of that belongs
// to the caller (see AllowedMethods). The reason is a hint, not the final
// word: the literal index is keyed by method, so a path registered only as
// a literal under another method reports MissNotFound here. Callers that
// need the authoritative answer issue the method-agnostic AllowedMethods
// probe, which sees those routes too.
func (r *Registry) Resolve(method route.Method, path string) (*Match, MissReason) {
	segments := splitPath(path)

	if e := r.literal.search(method, joinSegments(segments)); e != nil {
		return &Match{Entry: e}, MissNone
	}

	miss := MissNotFound
	if e, params, m := r.params.search(method, segments); e != nil {
		return &Match{Entry: e, Params: params}, MissNone
	} else if m == MissMethodNotAllowed {
		miss = m
	}

	if e, params, m := r.dynamic.search(method, segments); e != nil {
		return &Match{Entry: e, Params: params}, MissNone
	} else if m == MissMethodNotAllowed {
		miss = m
	}

	return nil, miss
}

// AllowedMethods reports which standard HTTP methods have a route matching
// the given path, in the stable order of route.Methods. This is the
// method-agnostic second query a caller issues when it needs the 405-vs-404
// distinction; filter pseudo-methods are not probed.
func (r *Registry) AllowedMethods(path string) []route.Method {
	var allowed []route.Method
	for _, m := range route.Methods {
		if match, _ := r.Resolve(m, path); match != nil {
			allowed = append(allowed, m)
		}
	}
	return allowed
}

// LiteralCount returns the number of registered literal routes.
func (r *Registry) LiteralCount() int { return r.literal.size() }

// ParameterizedCount returns the number of registered parameterized routes.
func (r *Registry) ParameterizedCount() int { return r.params.count() }

// DynamicCount returns the number of registered dynamic routes.
func (r *Registry) DynamicCount() int { return r.dynamic.count() }

// Routes returns a point-in-time snapshot of every registered entry, in no
// particular order. Intended for diagnostics and introspection, not the hot
// path.
func (r *Registry) Routes() []*route.Entry {
	dst := make([]*route.Entry, 0, r.LiteralCount()+r.ParameterizedCount()+r.DynamicCount())
	dst = r.literal.snapshot(dst)
	dst = r.params.snapshot(dst)
	dst = r.dynamic.snapshot(dst)
	return dst
}

func (r *Registry) logRegistered(bucket string, e *route.Entry) {
	r.logger.Debug("route registered",
		"bucket", bucket,
		"method", e.Method().String(),
		"pattern", e.Pattern(),
	)
}

func checkKind(e *route.Entry, want route.Kind) error {
	if e == nil {
		return ErrNilEntry
	}
	if e.Kind() != want {
		return fmt.Errorf("%w: %s route %q registered as %s",
			ErrKindMismatch, e.Kind(), e.Pattern(), want)
	}
	return nil
}
