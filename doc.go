// Package redis implement the indexed in-memory storage engine
// under a key-value / sorted-set server.
//
// avl:
//
// Intrusive order-statistics AVL tree. Tracks subtree sizes to
// answer k-th-node and rank queries in O(log n).
//
// hashmap:
//
// Intrusive chained hash table resizing through two generations,
// migrating a bounded batch of entries per call so that no single
// operation stalls on a full rehash.
//
// zset:
//
// Sorted set composing the tree, keyed by (score, name), with the
// hash table, keyed by name. Both index the same entry records.
//
// heap:
//
// Array-backed indexed binary min-heap keeping a back-reference to
// each item's current slot, for O(log n) updates and removals of
// arbitrary items.
//
// worker:
//
// Bounded pool of workers draining one FIFO task queue, moving
// blocking work off the caller's path.
//
// lib:
//
// Statistics accumulators and byte utilities shared by the other
// packages.
package redis
