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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMethod(t *testing.T) {
	tests := []struct {
		token    string
		expected Method
	}{
		{"GET", GET},
		{"get", GET},
		{"Get", GET},
		{"POST", POST},
		{"put", PUT},
		{"PATCH", PATCH},
		{"delete", DELETE},
		{"HEAD", HEAD},
		{"options", OPTIONS},
		{"TRACE", TRACE},
		{"before", Before},
		{"AFTER", After},
		{"BREW", Unsupported},
		{"", Unsupported},
		{"G E T", Unsupported},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseMethod(tt.token))
		})
	}
}

func TestNewEntryClassification(t *testing.T) {
	handler := func() {}

	tests := []struct {
		name     string
		pattern  string
		kind     Kind
		segments int
		wildcard string
	}{
		{"root", "/", KindLiteral, 0, ""},
		{"flat literal", "/users", KindLiteral, 1, ""},
		{"nested literal", "/api/v1/users", KindLiteral, 3, ""},
		{"single param", "/users/:id", KindParameterized, 2, ""},
		{"multi param", "/users/:id/posts/:post_id", KindParameterized, 4, ""},
		{"bare wildcard", "/static/*", KindDynamic, 1, "filepath"},
		{"named wildcard", "/assets/*asset", KindDynamic, 1, "asset"},
		{"root wildcard", "/*", KindDynamic, 0, "filepath"},
		{"param then wildcard", "/files/:owner/*", KindDynamic, 2, "filepath"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, err := NewEntry(GET, tt.pattern, handler)
			require.NoError(t, err)
			assert.Equal(t, tt.kind, e.Kind())
			assert.Len(t, e.Segments(), tt.segments)
			assert.Equal(t, tt.wildcard, e.WildcardName())
			assert.Equal(t, tt.pattern, e.Pattern())
			assert.Equal(t, GET, e.Method())
		})
	}
}

func TestNewEntryValidation(t *testing.T) {
	handler := func() {}

	tests := []struct {
		name    string
		pattern string
		wantErr error
	}{
		{"empty pattern", "", ErrEmptyPattern},
		{"empty param name", "/users/:", ErrEmptyParamName},
		{"param name with dash", "/users/:user-id", ErrInvalidParamName},
		{"param name starting with digit", "/users/:1id", ErrInvalidParamName},
		{"wildcard not last", "/static/*/deep", ErrMisplacedWildcard},
		{"two wildcards", "/a/*/*", ErrMisplacedWildcard},
		{"invalid wildcard name", "/a/*my-files", ErrInvalidParamName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, err := NewEntry(GET, tt.pattern, handler)
			require.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, e)
		})
	}

	t.Run("nil handler", func(t *testing.T) {
		e, err := NewEntry(GET, "/users", nil)
		require.ErrorIs(t, err, ErrNilHandler)
		assert.Nil(t, e)
	})
}

func TestEntrySegmentsAgreeWithPattern(t *testing.T) {
	e, err := NewEntry(POST, "/users/:id/posts", func() {})
	require.NoError(t, err)

	segs := e.Segments()
	require.Len(t, segs, 3)
	assert.Equal(t, Segment{Text: "users"}, segs[0])
	assert.Equal(t, Segment{Text: "id", Param: true}, segs[1])
	assert.Equal(t, Segment{Text: "posts"}, segs[2])
}

func TestEntryCanonicalPath(t *testing.T) {
	tests := []struct {
		pattern  string
		expected string
	}{
		{"/", "/"},
		{"/users", "/users"},
		{"//users//", "/users"},
		{"users", "/users"},
		{"/users/:id/", "/users/:id"},
		{"/static/*", "/static"},
	}

	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			e, err := NewEntry(GET, tt.pattern, func() {})
			require.NoError(t, err)
			assert.Equal(t, tt.expected, e.CanonicalPath())
		})
	}
}

func TestIsIdentifier(t *testing.T) {
	assert.True(t, isIdentifier("id"))
	assert.True(t, isIdentifier("post_id"))
	assert.True(t, isIdentifier("v2"))
	assert.True(t, isIdentifier("_hidden"))
	assert.False(t, isIdentifier(""))
	assert.False(t, isIdentifier("2fast"))
	assert.False(t, isIdentifier("user-id"))
	assert.False(t, isIdentifier("naïve"))
}
