// Package zset implement a sorted set, a collection of entries
// carrying a name and a floating point score. An order-statistics
// tree keyed by (score, name) gives ordered traversal, rank and
// seek queries, while a progressively-rehashing hash table keyed by
// name gives O(1) lookups. Both structures index the same entry
// records through intrusive headers, payloads are never duplicated.
package zset
