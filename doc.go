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

// Package routing implements the route resolution engine: the data structures
// and algorithm that map an incoming (method, path) pair to a registered
// handler and its extracted path parameters.
//
// # Structures
//
// A Registry orchestrates three structures, each holding one class of route:
//
//   - Literal index: exact-match table keyed "METHOD:path" for routes with no
//     parameter or wildcard segments. O(1) average lookup.
//   - Segment trie: parameterized routes (":name" captures) stored as a tree
//     keyed by path segment, with at most one parameter edge per node.
//   - Prefix trie: wildcard/catch-all routes, matched by the longest
//     registered prefix. Consulted only when the first two miss.
//
// Resolve queries them in that fixed order and returns the first hit. A
// literal route therefore always beats a parameterized route that could match
// the same path, and both beat a wildcard.
//
// # Matching rules
//
// Within the tries, a literal edge strictly outranks the parameter edge at
// the same depth, and traversal never backtracks across already-consumed
// segments: lookup is O(segment count), at the documented cost that sibling
// patterns which only disambiguate on a later segment fail to match in some
// orderings. This limitation is deliberate and pinned by tests.
//
// Empty segments produced by leading, doubled, or trailing slashes are
// discarded during normalization, never treated as path components: "/a//b/"
// and "/a/b" resolve identically.
//
// # Concurrency
//
// Both tries are copy-on-write. An insert clones every node along the
// modified path, shares untouched subtrees, and publishes the new root with
// an atomic pointer swap; a single writer mutex per trie keeps the
// overwrite-on-duplicate policy deterministic. The consistency guarantee is
// therefore snapshot isolation: a reader that began before a publish
// traverses the old, fully consistent tree, a reader starting after sees the
// new one, and no reader ever observes a partially built node. Lookups never
// block, not on writers and not on other lookups.
//
// Nothing in this package suspends or performs I/O; all work is in-memory
// and CPU-bound, so there is no cancellation or timeout semantics at this
// layer. Those belong to the surrounding request-handling layer, such as the
// dispatch subpackage.
//
// # Quick start
//
//	reg := routing.New()
//
//	e, _ := route.NewEntry(route.GET, "/users/:id", myHandler)
//	_ = reg.RegisterParameterized(e)
//
//	m, miss := reg.Resolve(route.GET, "/users/42")
//	if m != nil {
//	    _ = m.Params["id"] // "42"
//	} else if miss == routing.MissMethodNotAllowed {
//	    // path exists under another method
//	}
package routing
