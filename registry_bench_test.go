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
	"testing"

	"github.com/flashkit/routing/route"
)

func benchRegistry(b *testing.B) *Registry {
	b.Helper()
	reg := New()
	for i := range 100 {
		e, err := route.NewEntry(route.GET, fmt.Sprintf("/api/resource%d", i), i)
		if err != nil {
			b.Fatal(err)
		}
		if err := reg.RegisterLiteral(e); err != nil {
			b.Fatal(err)
		}
	}
	for i := range 50 {
		e, err := route.NewEntry(route.GET, fmt.Sprintf("/api/resource%d/:id/detail", i), i)
		if err != nil {
			b.Fatal(err)
		}
		if err := reg.RegisterParameterized(e); err != nil {
			b.Fatal(err)
		}
	}
	e, err := route.NewEntry(route.GET, "/static/*", "static")
	if err != nil {
		b.Fatal(err)
	}
	if err := reg.RegisterDynamic(e); err != nil {
		b.Fatal(err)
	}
	return reg
}

func BenchmarkResolveLiteral(b *testing.B) {
	reg := benchRegistry(b)
	b.ResetTimer()
	for range b.N {
		if m, _ := reg.Resolve(route.GET, "/api/resource42"); m == nil {
			b.Fatal("expected match")
		}
	}
}

func BenchmarkResolveParameterized(b *testing.B) {
	reg := benchRegistry(b)
	b.ResetTimer()
	for range b.N {
		if m, _ := reg.Resolve(route.GET, "/api/resource42/12345/detail"); m == nil {
			b.Fatal("expected match")
		}
	}
}

func BenchmarkResolveDynamic(b *testing.B) {
	reg := benchRegistry(b)
	b.ResetTimer()
	for range b.N {
		if m, _ := reg.Resolve(route.GET, "/static/css/app.css"); m == nil {
			b.Fatal("expected match")
		}
	}
}

func BenchmarkResolveMiss(b *testing.B) {
	reg := benchRegistry(b)
	b.ResetTimer()
	for range b.N {
		if m, _ := reg.Resolve(route.GET, "/no/such/route"); m != nil {
			b.Fatal("unexpected match")
		}
	}
}

func BenchmarkResolveParallel(b *testing.B) {
	reg := benchRegistry(b)
	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			if m, _ := reg.Resolve(route.GET, "/api/resource7/99/detail"); m == nil {
				b.Fatal("expected match")
			}
		}
	})
}
