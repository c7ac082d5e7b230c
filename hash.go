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
	"encoding/binary"
	"unsafe"

	"github.com/dchest/siphash"
)

// The default hash function is SipHash-2-4 keyed by a process-wide 16-byte
// seed. The seed is shared by every table in the process and is intended to
// be set once at startup, before any table is created; mutating it while
// tables are live changes where keys hash and is undefined.
var hashSeed [16]byte

// SetHashFunctionSeed sets the process-wide seed for the default hash
// function and for Hash/HashNoCase.
func SetHashFunctionSeed(seed [16]byte) {
	hashSeed = seed
}

// HashFunctionSeed returns the current process-wide hash seed.
func HashFunctionSeed() [16]byte {
	return hashSeed
}

func seedKeys() (k0, k1 uint64) {
	return binary.LittleEndian.Uint64(hashSeed[0:8]),
		binary.LittleEndian.Uint64(hashSeed[8:16])
}

// Hash returns the seeded SipHash-2-4 of data. Type descriptors whose keys
// are byte strings typically build their Hash callback on this.
func Hash(data []byte) uint64 {
	k0, k1 := seedKeys()
	return siphash.Hash(k0, k1, data)
}

// HashNoCase is like Hash but folds ASCII upper case to lower case, for
// case-insensitive keys.
func HashNoCase(data []byte) uint64 {
	h := siphash.New(hashSeed[:])
	var buf [64]byte
	for len(data) > 0 {
		n := copy(buf[:], data)
		for i := 0; i < n; i++ {
			c := buf[i]
			if c >= 'A' && c <= 'Z' {
				buf[i] = c + ('a' - 'A')
			}
		}
		h.Write(buf[:n])
		data = data[n:]
	}
	return h.Sum64()
}

// hashOf hashes the in-memory representation of key with the seeded default
// function. For pointer-shaped keys this hashes the pointer bits, matching
// the identity semantics of the default KeyCompare. Keys whose equality is
// wider than representation identity (strings, for instance) need an
// explicit Hash callback in the Type.
func hashOf[K comparable](key K) uint64 {
	p := noescape(unsafe.Pointer(&key))
	b := unsafe.Slice((*byte)(p), unsafe.Sizeof(key))
	return Hash(b)
}

// noescape hides a pointer from escape analysis. noescape is the identity
// function but escape analysis doesn't think the output depends on the
// input. noescape is inlined and currently compiles down to zero
// instructions.
// USE CAREFULLY!
//
//go:nosplit
//go:nocheckptr
func noescape(p unsafe.Pointer) unsafe.Pointer {
	x := uintptr(p)
	return unsafe.Pointer(x ^ 0)
}
