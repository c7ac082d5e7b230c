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

// Scan
//
// A full scan is performed like this: start with a cursor of 0, call Scan,
// which invokes the callback for each element it covers and returns the next
// cursor. Call Scan again with that cursor, until it returns 0.
//
// The scan is stateless between calls: no iterator object, just the cursor.
// Every element present in the table from the start of the scan to its end
// is emitted at least once; elements added or removed mid-scan may or may
// not be; an element can be emitted more than once only if a rehash splits
// buckets mid-scan.
//
// Two properties make this work. First, cursors advance in
// reverse-bit-increment order, so a cursor keeps addressing the right region
// of the keyspace even if the table changes size between calls (the masked
// projection of the cursor is stable). Second, each call covers complete
// probe sequences: after emitting a bucket whose ever-full flag is set, the
// call continues with the following bucket, because elements that hash to an
// ever-full bucket may live further along the chain and could be relocated
// backwards by a rehash between calls. While rehashing is in progress a call
// covers the corresponding bucket of the smaller table plus the whole block
// of larger-table buckets that are its expansion, so the two tables stay in
// lockstep no matter which of them the next call observes.

// Scan visits the elements at cursor and returns the cursor to use for the
// next call, 0 when the table has been covered. Start with cursor 0.
//
// The callback may mutate an element's interior state but must not add or
// delete elements, nor call any other mutating operation on the table.
// Rehashing is paused for the duration of the call.
func (t *Table[K, E]) Scan(cursor uint64, fn func(elem E)) uint64 {
	return t.scan(cursor, func(b *Bucket[E], pos int) {
		fn(b.elements[pos])
	})
}

// ScanRef is Scan, but the callback receives a pointer to the element's slot
// so it can rewrite the element in place. Slot pointers are only valid for
// the duration of the callback; a later rehash step relocates them.
func (t *Table[K, E]) ScanRef(cursor uint64, fn func(elem *E)) uint64 {
	return t.scan(cursor, func(b *Bucket[E], pos int) {
		fn(&b.elements[pos])
	})
}

func (t *Table[K, E]) scan(cursor uint64, emit func(b *Bucket[E], pos int)) uint64 {
	if t.Len() == 0 {
		return 0
	}

	// Prevent elements from being moved around as a side effect of running
	// the callback.
	t.PauseRehashing()

	// Each iteration covers one bucket (or, while rehashing, one
	// small-table bucket plus its expansion block). If any covered bucket
	// has ever been full, elements hashing to it may sit further along the
	// probe chain, so continue with the next iteration within the same
	// call; otherwise they could be missed if a rehash moves them before
	// the next call.
	for {
		inProbeSequence := false
		if !t.IsRehashing() {
			mask := expToMask(t.bucketExp[0])
			b := &t.tables[0][cursor&mask]
			emitBucket(b, emit)
			inProbeSequence = b.everfull()
			cursor = nextCursor(cursor, mask)
		} else {
			// Scan the smaller table's bucket first, then the block of
			// larger-table buckets that are its expansion.
			small, large := 0, 1
			if t.bucketExp[0] > t.bucketExp[1] {
				small, large = 1, 0
			}
			maskSmall := expToMask(t.bucketExp[small])
			maskLarge := expToMask(t.bucketExp[large])

			b := &t.tables[small][cursor&maskSmall]
			emitBucket(b, emit)
			inProbeSequence = b.everfull()

			for {
				b := &t.tables[large][cursor&maskLarge]
				emitBucket(b, emit)
				inProbeSequence = inProbeSequence || b.everfull()

				// Increment the part of the cursor not covered by the
				// smaller mask; the block ends when it wraps to zero.
				cursor = nextCursor(cursor, maskLarge)
				if cursor&(maskSmall^maskLarge) == 0 {
					break
				}
			}
		}
		if !inProbeSequence {
			break
		}
	}

	t.ResumeRehashing()

	return cursor
}

func emitBucket[E any](b *Bucket[E], emit func(b *Bucket[E], pos int)) {
	for pos := 0; pos < elementsPerBucket; pos++ {
		if b.present(pos) {
			emit(b, pos)
		}
	}
}
