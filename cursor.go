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

import "math/bits"

// Bucket walk order
//
// Rehashing and scanning walk bucket indices in reverse-bit-increment order
// rather than 0, 1, 2, ...: the successor of a cursor is computed by setting
// all bits above the mask, reversing the bits, adding one, and reversing
// back. Under a fixed mask the walk visits every bucket exactly once and
// returns to zero after numBuckets steps.
//
// The point of this ordering is stability across table sizes. Masking a
// cursor with a smaller power-of-two mask projects it onto the bucket of the
// smaller table that the larger table's bucket was split from (or will be
// merged into), so a scan cursor handed out under one table size remains
// meaningful after the table grows or shrinks. This cursor-increment
// algorithm was invented by Pieter Noordhuis.

// nextCursor advances v to the next bucket index in reverse-bit-increment
// order under the given mask. Returns 0 when the walk has covered every
// bucket.
func nextCursor(v, mask uint64) uint64 {
	v |= ^mask // Set the unmasked (high) bits.
	v = bits.Reverse64(v)
	v++ // Flips the (now low) unmasked bits to 0 and increments the rest.
	v = bits.Reverse64(v)
	return v
}

// prevCursor is the inverse of nextCursor.
func prevCursor(v, mask uint64) uint64 {
	v = bits.Reverse64(v)
	v--
	v = bits.Reverse64(v)
	return v & mask
}
