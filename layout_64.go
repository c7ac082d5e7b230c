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

//go:build amd64 || arm64 || ppc64 || ppc64le || mips64 || mips64le || riscv64 || s390x || wasm || loong64

package hashtab

// 64-bit bucket geometry: 7 element slots per bucket. With pointer-sized
// elements the bucket is exactly 64 bytes (one cache line):
//
//	1 bit     7 bits    [1 byte] x 7  [8 bytes] x 7
//	everfull  presence  hashes        elements
//
// The meta byte holds the presence bitmap in its low bits and the everfull
// flag above them.
const (
	elementsPerBucket = 7

	// When resizing we want the number of buckets without an expensive
	// division: numBuckets = ceil(numElements * bucketFactor / bucketDivisor),
	// where bucketDivisor is a power of two. The quotient
	// bucketDivisor/bucketFactor/elementsPerBucket bounds the post-resize
	// fill; with these constants a resize lands at 16/3/7 = 76.19% at most.
	bucketFactor  = 3
	bucketDivisor = 16
)

// bucketMeta holds the everfull flag and the presence bitmap.
type bucketMeta = uint8
