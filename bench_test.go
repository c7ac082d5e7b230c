// Copyright 2025 The Cockroach Authors
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

package hashtab

import (
	"strconv"
	"testing"

	"github.com/aclements/go-perfevent/perfbench"
)

func benchSizes(f func(b *testing.B, n int)) func(*testing.B) {
	cases := []int{16, 256, 4096, 65536, 1 << 20}
	return func(b *testing.B) {
		for _, n := range cases {
			b.Run("len="+strconv.Itoa(n), func(b *testing.B) { f(b, n) })
		}
	}
}

func genEntries(n int) []*entry {
	entries := make([]*entry, n)
	for i := range entries {
		entries[i] = &entry{key: strconv.Itoa(i), val: i}
	}
	return entries
}

func buildTable(b *testing.B, entries []*entry) *Table[string, *entry] {
	ht := New(stringTableType(nil))
	for _, e := range entries {
		if !ht.Add(e) {
			b.Fatal("duplicate key")
		}
	}
	for ht.IsRehashing() {
		ht.Find("")
	}
	return ht
}

func BenchmarkFindHit(b *testing.B) {
	b.Run("impl=hashtab", benchSizes(func(b *testing.B, n int) {
		entries := genEntries(n)
		ht := buildTable(b, entries)
		defer ht.Release()
		counters := perfbench.Open(b)
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			if _, found := ht.Find(entries[i%n].key); !found {
				b.Fatal("missing key")
			}
		}
		counters.Stop()
	}))
	b.Run("impl=runtimeMap", benchSizes(func(b *testing.B, n int) {
		entries := genEntries(n)
		m := make(map[string]*entry, n)
		for _, e := range entries {
			m[e.key] = e
		}
		counters := perfbench.Open(b)
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			if _, found := m[entries[i%n].key]; !found {
				b.Fatal("missing key")
			}
		}
		counters.Stop()
	}))
}

func BenchmarkFindMiss(b *testing.B) {
	b.Run("impl=hashtab", benchSizes(func(b *testing.B, n int) {
		ht := buildTable(b, genEntries(n))
		defer ht.Release()
		counters := perfbench.Open(b)
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			if _, found := ht.Find("miss" + strconv.Itoa(i%n)); found {
				b.Fatal("unexpected key")
			}
		}
		counters.Stop()
	}))
}

func BenchmarkAddGrow(b *testing.B) {
	b.Run("impl=hashtab", benchSizes(func(b *testing.B, n int) {
		entries := genEntries(n)
		counters := perfbench.Open(b)
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			ht := New(stringTableType(nil))
			for _, e := range entries {
				ht.Add(e)
			}
			b.StopTimer()
			ht.Release()
			b.StartTimer()
		}
		counters.Stop()
	}))
}

func BenchmarkAddDelete(b *testing.B) {
	b.Run("impl=hashtab", benchSizes(func(b *testing.B, n int) {
		entries := genEntries(n)
		ht := buildTable(b, entries)
		defer ht.Release()
		counters := perfbench.Open(b)
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			e := entries[i%n]
			ht.Delete(e.key)
			ht.Add(e)
		}
		counters.Stop()
	}))
}

func BenchmarkScan(b *testing.B) {
	b.Run("impl=hashtab", benchSizes(func(b *testing.B, n int) {
		ht := buildTable(b, genEntries(n))
		defer ht.Release()
		counters := perfbench.Open(b)
		b.ResetTimer()
		seen := 0
		for i := 0; i < b.N; i++ {
			cursor := uint64(0)
			for {
				cursor = ht.Scan(cursor, func(e *entry) {
					seen++
				})
				if cursor == 0 {
					break
				}
			}
		}
		counters.Stop()
		if seen < n*b.N {
			b.Fatal("scan missed elements")
		}
	}))
}
