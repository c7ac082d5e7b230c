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

// option provides an interface to do work on a Table while it is being
// created.
type option[K comparable, E any] interface {
	apply(t *Table[K, E])
}

// Allocator specifies an interface for allocating and releasing the bucket
// arrays used by a Table. The default allocator utilizes Go's builtin make()
// and allows the GC to reclaim memory.
//
// Alloc may return nil to signal allocation failure. A nil return makes
// TryExpand report failure and leaves the table untouched; every other
// resizing path treats it as fatal and panics, since the table cannot
// continue without the new bucket array.
//
// If the allocator is manually managing memory then Table.Release must be
// called in order to ensure Free is called for both bucket arrays.
type Allocator[E any] interface {
	// Alloc should return a slice equivalent to make([]Bucket[E], n), with
	// every bucket zeroed.
	Alloc(n int) []Bucket[E]

	// Free can optionally release the memory associated with the supplied
	// slice that is guaranteed to have been allocated by Alloc.
	Free(buckets []Bucket[E])
}

type defaultAllocator[E any] struct{}

func (defaultAllocator[E]) Alloc(n int) []Bucket[E] {
	return make([]Bucket[E], n)
}

func (defaultAllocator[E]) Free(buckets []Bucket[E]) {
}

type allocatorOption[K comparable, E any] struct {
	allocator Allocator[E]
}

func (op allocatorOption[K, E]) apply(t *Table[K, E]) {
	t.allocator = op.allocator
}

// WithAllocator is an option to specify the Allocator to use for a
// Table[K, E].
func WithAllocator[K comparable, E any](allocator Allocator[E]) option[K, E] {
	return allocatorOption[K, E]{allocator}
}
