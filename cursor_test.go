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
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCursorFullCycle(t *testing.T) {
	for _, exp := range []int8{0, 1, 2, 4, 8} {
		mask := expToMask(exp)
		seen := make(map[uint64]bool)
		cursor := uint64(0)
		steps := 0
		for {
			require.False(t, seen[cursor], "cursor %d visited twice", cursor)
			require.LessOrEqual(t, cursor, mask)
			seen[cursor] = true
			cursor = nextCursor(cursor, mask)
			steps++
			if cursor == 0 {
				break
			}
		}
		// The walk returns to zero after exactly numBuckets iterations,
		// having visited every bucket once.
		require.Equal(t, numBuckets(exp), steps)
		require.Equal(t, numBuckets(exp), len(seen))
	}
}

func TestCursorRoundTrip(t *testing.T) {
	for _, exp := range []int8{0, 1, 3, 6} {
		mask := expToMask(exp)
		for c := uint64(0); c <= mask; c++ {
			require.Equal(t, c, prevCursor(nextCursor(c, mask), mask))
			require.Equal(t, c, nextCursor(prevCursor(c, mask), mask))
		}
	}
}

func TestCursorStableProjection(t *testing.T) {
	// Walking a larger table in cursor order visits the expansion block of
	// each smaller-table bucket contiguously: the masked projection of the
	// cursor onto the smaller mask only changes when the block is done.
	smallMask := expToMask(3)
	largeMask := expToMask(5)
	cursor := uint64(0)
	for {
		base := cursor & smallMask
		blockLen := 0
		for {
			require.Equal(t, base, cursor&smallMask)
			cursor = nextCursor(cursor, largeMask)
			blockLen++
			if cursor&(smallMask^largeMask) == 0 {
				break
			}
		}
		require.Equal(t, int(largeMask+1)/int(smallMask+1), blockLen)
		if cursor == 0 {
			break
		}
	}
}
