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

// Package route defines the immutable route record shared by the resolution
// engine and its callers.
//
// An Entry is built once, at registration time, from an HTTP method and a
// path pattern. The pattern is split into segments exactly once; parameter
// segments (":name") and the trailing wildcard ("*" or "*name") are flagged
// during the split and never re-derived. The handler carried by an Entry is
// an opaque capability owned by the registering caller: the engine stores it,
// returns it on a match, and never invokes, mutates, or destroys it.
//
// Methods are modeled as an enumerated string type. Beyond the standard HTTP
// verbs, the enum carries the BEFORE and AFTER pseudo-methods used to
// register filter-phase routes, and an UNSUPPORTED sentinel that unknown
// method tokens map to instead of producing an error.
package route
