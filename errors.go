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

import "errors"

var (
	// ErrNilEntry indicates that a nil route entry was passed to a register call.
	ErrNilEntry = errors.New("route entry is nil")

	// ErrKindMismatch indicates that an entry was registered into the wrong
	// bucket (e.g. a parameterized entry passed to RegisterLiteral). The
	// registry never re-classifies entries; the caller picks the bucket.
	ErrKindMismatch = errors.New("route kind does not match registration bucket")
)
