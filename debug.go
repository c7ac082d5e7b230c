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
	"fmt"
	"math/bits"
	"strings"
)

// Dump renders every bucket of both tables, for debugging.
func (t *Table[K, E]) Dump() string {
	var buf strings.Builder
	for ti := 0; ti < 2; ti++ {
		fmt.Fprintf(&buf, "Table %d, used %d, exp %d\n", ti, t.used[ti], t.bucketExp[ti])
		for idx := 0; idx < numBuckets(t.bucketExp[ti]); idx++ {
			b := &t.tables[ti][idx]
			fmt.Fprintf(&buf, "Bucket %d:%d everfull:%t\n", ti, idx, b.everfull())
			for pos := 0; pos < elementsPerBucket; pos++ {
				if b.present(pos) {
					fmt.Fprintf(&buf, "  %d h2 %02x, key %v\n",
						pos, b.hashes[pos], t.elementKey(b.elements[pos]))
				} else {
					fmt.Fprintf(&buf, "  %d (empty)\n", pos)
				}
			}
		}
	}
	return buf.String()
}

// Histogram renders one character per bucket: the number of occupied slots,
// or 'X' for a drained bucket that has ever been full. A space separates the
// two tables.
func (t *Table[K, E]) Histogram() string {
	var buf strings.Builder
	for ti := 0; ti < 2; ti++ {
		for idx := 0; idx < numBuckets(t.bucketExp[ti]); idx++ {
			b := &t.tables[ti][idx]
			if b.presence() == 0 && b.everfull() {
				buf.WriteByte('X')
			} else {
				buf.WriteByte(byte('0' + bits.OnesCount64(uint64(b.presence()))))
			}
		}
		if ti == 0 {
			buf.WriteByte(' ')
		}
	}
	return buf.String()
}

// LongestProbingChain returns the longest run of consecutive ever-full
// buckets in either table, following the reverse-bit walk order.
func (t *Table[K, E]) LongestProbingChain() int {
	maxLen := 0
	for ti := 0; ti < 2; ti++ {
		if t.bucketExp[ti] < 0 {
			continue // table not used
		}
		mask := expToMask(t.bucketExp[ti])
		chainLen := 0
		cursor := uint64(0)
		for {
			b := &t.tables[ti][cursor]
			if b.everfull() {
				chainLen++
				if chainLen > maxLen {
					maxLen = chainLen
				}
			} else {
				chainLen = 0
			}
			cursor = nextCursor(cursor, mask)
			if cursor == 0 {
				break
			}
		}
	}
	return maxLen
}
