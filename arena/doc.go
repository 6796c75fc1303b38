// SPDX-License-Identifier: MIT

// Package arena provides a generational slot arena: a dense slice of slots
// addressed by Key values that carry both the slot position and the slot's
// generation at the time the key was issued.
//
// What
//
//   - Insert stores a value and returns a fresh Key.
//   - Get/GetPtr/Contains answer only for keys whose generation still
//     matches the slot; a key whose slot was freed (and maybe reused) is stale.
//   - Remove frees the slot, bumps its generation and recycles the position.
//   - Clear retires every live slot the same way, so keys issued after Clear
//     never equal keys issued before it.
//
// Key layout
//
//	bits 63..32  generation (starts at 1; 0 marks a retired slot)
//	bits 31..0   slot position
//
// The zero Key is therefore never issued and serves as the Null sentinel.
//
// Iteration
//
//	All walks live slots in slot order. The order is stable for an unmutated
//	arena; inserting or removing between steps is memory-safe but the
//	sequence observed after such a mutation is unspecified.
//
// Complexity
//
//   - Insert: O(1) amortized.
//   - Get/GetPtr/Contains/Remove: O(1).
//   - Clear: O(slots).
//   - All/Keys: O(slots).
//
// Concurrency
//
//	An Arena is not safe for concurrent use. Callers serialize access.
package arena
