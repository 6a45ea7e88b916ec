// Package stream provides lazy, pull-based sample streams.
//
// A Stream is read one element at a time until it returns io.EOF. Restartable
// streams rewind with Reset; single-pass sources return ErrResetUnsupported.
// Decorators wrap a Stream without changing its elements:
//
//   - Shuffle: drains the source once and replays a fixed-seed permutation
//   - Skip: discards the first K elements after construction and every Reset
//   - Filter: passes only elements accepted by a predicate
//   - Limit: stops after N elements
//
// Streams are not safe for concurrent use; a single consumer drives each one.
package stream
