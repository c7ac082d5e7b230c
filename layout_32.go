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

//go:build !(amd64 || arm64 || ppc64 || ppc64le || mips64 || mips64le || riscv64 || s390x || wasm || loong64)

package hashtab

// 32-bit bucket geometry: 12 element slots per bucket. With pointer-sized
// elements the bucket matches a cache line with a few padding bits:
//
//	1 bit     12 bits   3 bits  [1 byte] x 12  2 bytes  [4 bytes] x 12
//	everfull  presence  unused  hashes         unused   elements
//
// The unused regions are the uint16 meta's three spare bits and the struct
// padding the compiler inserts before the element array.
const (
	elementsPerBucket = 12

	// A resize lands at 64/7/12 = 76.19% fill at most, same bound as the
	// 64-bit geometry.
	bucketFactor  = 7
	bucketDivisor = 64
)

// bucketMeta holds the everfull flag and the presence bitmap.
type bucketMeta = uint16
