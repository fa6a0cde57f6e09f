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
	"sync"
	"sync/atomic"

	"github.com/flashkit/routing/route"
)

// trieNode is one path-segment position in a trie. It owns literal children
// keyed by exact segment text, at most one parameter edge (the parameter
// name lives on the edge, not in the key space), and terminal route slots,
// one per method.
//
// Nodes reachable from a published root are immutable. Mutation happens on
// clones only; see segmentTrie.insert.
type trieNode struct {
	children map[string]*trieNode
	param    *paramEdge
	routes   map[route.Method]*route.Entry
}

// paramEdge is the single parameter child of a node. The first registration
// through a node fixes the parameter name; later registrations reuse the
// edge under that name.
type paramEdge struct {
	name string
	node *trieNode
}

// clone returns a shallow copy of n: the child map and route slots are
// copied, the nodes they point to are shared. This is the unit step of
// copy-on-write insertion.
func (n *trieNode) clone() *trieNode {
	c := &trieNode{param: n.param}
	if n.children != nil {
		c.children = maps.Clone(n.children)
	}
	if n.routes != nil {
		c.routes = maps.Clone(n.routes)
	}
	return c
}

// setChild records child under the literal segment text, allocating the map
// on first use.
func (n *trieNode) setChild(segment string, child *trieNode) {
	if n.children == nil {
		n.children = make(map[string]*trieNode, 4)
	}
	n.children[segment] = child
}

// setRoute stores e in the terminal slot for its method and reports whether
// the slot was previously empty (i.e. this is a new route, not an overwrite).
func (n *trieNode) setRoute(e *route.Entry) bool {
	if n.routes == nil {
		n.routes = make(map[route.Method]*route.Entry, 1)
	}
	_, existed := n.routes[e.Method()]
	n.routes[e.Method()] = e
	return !existed
}

// collect appends every entry terminating at or below n to dst.
func (n *trieNode) collect(dst []*route.Entry) []*route.Entry {
	for _, e := range n.routes {
		dst = append(dst, e)
	}
	for _, child := range n.children {
		dst = child.collect(dst)
	}
	if n.param != nil {
		dst = n.param.node.collect(dst)
	}
	return dst
}

// segmentTrie stores parameterized routes as a copy-on-write tree keyed by
// path segment.
//
// Consistency guarantee: every reader sees a frozen consistent snapshot. An
// insert clones each node along the insertion path, shares all untouched
// subtrees, and publishes the new root with a single atomic store, so a
// traversal that began before the publish completes on the old tree and one
// that begins after sees the new tree in full. No reader ever observes a
// partially constructed node, and lookups never block.
//
// The writer mutex serializes inserts, which keeps last-write-wins
// deterministic when the same (method, pattern) is registered concurrently.
type segmentTrie struct {
	root atomic.Pointer[trieNode]
	mu   sync.Mutex
	size atomic.Int64
}

func newSegmentTrie() *segmentTrie {
	t := &segmentTrie{}
	t.root.Store(&trieNode{})
	return t
}

// insert walks and extends the tree one segment at a time, cloning along the
// path, then sets the terminal slot for the entry's method. Re-registering
// an identical (method, pattern) overwrites the previous entry. Patterns
// that differ only in parameter names ("/users/:id" vs "/users/:uid") walk
// to the same terminal node and collapse the same way: the last entry wins,
// while captures keep the name the first registration established.
func (t *segmentTrie) insert(e *route.Entry) {
	t.mu.Lock()
	defer t.mu.Unlock()

	newRoot := t.root.Load().clone()
	cur := newRoot

	for _, seg := range e.Segments() {
		if seg.Param {
			if cur.param != nil {
				// Reuse the single parameter edge; the established name wins.
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

// search walks the current tree snapshot over the given segments. At each
// node a literal edge for the exact segment text strictly outranks the
// parameter edge; taking the parameter edge records the segment under the
// edge's name. There is no backtracking: a segment matching neither edge
// fails the lookup immediately, bounding the walk to O(len(segments)).
//
// A terminal node that holds routes only for other methods is reported as
// MissMethodNotAllowed; whether that becomes a 405 is the caller's policy.
func (t *segmentTrie) search(method route.Method, segments []string) (*route.Entry, map[string]string, MissReason) {
	n := t.root.Load()
	var params map[string]string

	for _, seg := range segments {
		if child := n.children[seg]; child != nil {
			n = child
			continue
		}
		if n.param != nil {
			if params == nil {
				params = make(map[string]string, 4)
			}
			params[n.param.name] = seg
			n = n.param.node
			continue
		}
		return nil, nil, MissNotFound
	}

	if e := n.routes[method]; e != nil {
		return e, params, MissNone
	}
	if len(n.routes) > 0 {
		return nil, nil, MissMethodNotAllowed
	}
	return nil, nil, MissNotFound
}

// count returns the number of registered (method, pattern) routes.
func (t *segmentTrie) count() int {
	return int(t.size.Load())
}

// snapshot appends every registered entry to dst and returns it.
func (t *segmentTrie) snapshot(dst []*route.Entry) []*route.Entry {
	return t.root.Load().collect(dst)
}
