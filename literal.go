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
	"sync"

	"github.com/flashkit/routing/route"
)

// literalIndex is the exact-match table for routes with no parameter or
// wildcard segments. Keys have the form "METHOD:path" with the path in
// canonical (normalized) form, so a route registered as "/a//b/" and a
// request for "/a/b" meet on the same key.
//
// A plain RWMutex is enough here: lookups take the read lock and never block
// each other, and writes are rare (typically startup only). Insert
// overwrites on an identical key, last registration wins, mirroring the
// segment trie's overwrite policy.
type literalIndex struct {
	mu      sync.RWMutex
	entries map[string]*route.Entry
}

func newLiteralIndex() *literalIndex {
	return &literalIndex{entries: make(map[string]*route.Entry, 16)}
}

// literalKey builds the index key for a method and a canonical path.
func literalKey(method route.Method, canonicalPath string) string {
	return string(method) + ":" + canonicalPath
}

// insert adds or overwrites the entry for its (method, pattern) key.
func (idx *literalIndex) insert(e *route.Entry) {
	key := literalKey(e.Method(), e.CanonicalPath())
	idx.mu.Lock()
	idx.entries[key] = e
	idx.mu.Unlock()
}

// search returns the entry registered under (method, canonicalPath), or nil.
func (idx *literalIndex) search(method route.Method, canonicalPath string) *route.Entry {
	idx.mu.RLock()
	e := idx.entries[literalKey(method, canonicalPath)]
	idx.mu.RUnlock()
	return e
}

// size returns the number of registered literal routes.
func (idx *literalIndex) size() int {
	idx.mu.RLock()
	n := len(idx.entries)
	idx.mu.RUnlock()
	return n
}

// snapshot appends every registered entry to dst and returns it.
func (idx *literalIndex) snapshot(dst []*route.Entry) []*route.Entry {
	idx.mu.RLock()
	for _, e := range idx.entries {
		dst = append(dst, e)
	}
	idx.mu.RUnlock()
	return dst
}
