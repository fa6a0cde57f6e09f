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
	"maps"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/flashkit/routing/route"
)

// prefixTrie stores wildcard/catch-all routes. It shares the node shape and
// copy-on-write publication of the segment trie, but a match is anchored at
// the longest registered prefix rather than requiring full-path consumption.
// A dynamic route "/static/*" terminates at the "static" node; any path under
// that prefix matches, with the unconsumed remainder captured under the
// route's wildcard name.
//
// Edge preference and the no-backtracking rule are identical to the segment
// trie's.
type prefixTrie struct {
	root atomic.Pointer[trieNode]
	mu   sync.Mutex
	size atomic.Int64
}

func newPrefixTrie() *prefixTrie {
	t := &prefixTrie{}
	t.root.Store(&trieNode{})
	return t
}

// insert registers a dynamic route at the node terminating its prefix
// segments (the wildcard segment itself is carried by the entry, not the
// tree). Copy-on-write and overwrite semantics match segmentTrie.insert.
func (t *prefixTrie) insert(e *route.Entry) {
	t.mu.Lock()
	defer t.mu.Unlock()

	newRoot := t.root.Load().clone()
	cur := newRoot

	for _, seg := range e.Segments() {
		if seg.Param {
			if cur.param != nil {
				child := cur.param.node.clone()
				cur.param = &paramEdge{name: cur.param.name, node: child}
				cur = child
			} else {
				child := &trieNode{}
				cur.param = &paramEdge{name: seg.Text, node: child}
				cur = child
			}
			continue
		}

		if existing := cur.children[seg.Text]; existing != nil {
			child := existing.clone()
			cur.setChild(seg.Text, child)
			cur = child
		} else {
			child := &trieNode{}
			cur.setChild(seg.Text, child)
			cur = child
		}
	}

	if cur.setRoute(e) {
		t.size.Add(1)
	}
	t.root.Store(newRoot)
}

// search walks as deep as the tree allows, remembering the deepest node that
// terminates a route for the requested method. The walk stops at the first
// segment matching neither edge; the best candidate seen so far still wins,
// which is exactly longest-registered-prefix semantics. The path remainder
// below the winning prefix is captured under the entry's wildcard name.
func (t *prefixTrie) search(method route.Method, segments []string) (*route.Entry, map[string]string, MissReason) {
	n := t.root.Load()
	var params map[string]string

	var best *route.Entry
	var bestParams map[string]string
	bestDepth := 0
	methodSeen := false

	// Candidate captured params must be snapshotted: the walk keeps mutating
	// params below the candidate's depth.
	note := func(node *trieNode, depth int) {
		if e := node.routes[method]; e != nil {
			best = e
			bestParams = maps.Clone(params)
			bestDepth = depth
		} else if len(node.routes) > 0 {
			methodSeen = true
		}
	}

	note(n, 0)
	for i, seg := range segments {
		if child := n.children[seg]; child != nil {
			n = child
		} else if n.param != nil {
			if params == nil {
				params = make(map[string]string, 4)
			}
			params[n.param.name] = seg
			n = n.param.node
		} else {
			break
		}
		note(n, i+1)
	}

	if best == nil {
		if methodSeen {
			return nil, nil, MissMethodNotAllowed
		}
		return nil, nil, MissNotFound
	}

	if bestParams == nil {
		bestParams = make(map[string]string, 1)
	}
	bestParams[best.WildcardName()] = strings.Join(segments[bestDepth:], "/")
	return best, bestParams, MissNone
}

// count returns the number of registered (method, pattern) routes.
func (t *prefixTrie) count() int {
	return int(t.size.Load())
}

// snapshot appends every registered entry to dst and returns it.
func (t *prefixTrie) snapshot(dst []*route.Entry) []*route.Entry {
	return t.root.Load().collect(dst)
}
