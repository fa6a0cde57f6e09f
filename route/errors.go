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

import "errors"

var (
	// ErrEmptyPattern indicates that a route pattern is empty.
	ErrEmptyPattern = errors.New("route pattern is empty")

	// ErrEmptyParamName indicates a parameter segment with no name (a bare ":").
	ErrEmptyParamName = errors.New("parameter segment has empty name")

	// ErrInvalidParamName indicates a parameter name that is not a valid identifier.
	ErrInvalidParamName = errors.New("parameter name is not a valid identifier")

	// ErrMisplacedWildcard indicates a wildcard segment anywhere but the final position.
	ErrMisplacedWildcard = errors.New("wildcard segment must be the final segment")

	// ErrNilHandler indicates that a route was constructed without a handler.
	ErrNilHandler = errors.New("route handler is nil")
)
