// Package hashmap implement an intrusive, progressively-rehashing
// hash table. The table resizes by keeping two generations, active
// and retiring, and migrating a bounded number of entries on every
// call, so no single operation ever stalls on a full rehash. Keys
// are opaque: callers precompute hash codes and supply equality
// predicates, the map never looks at payloads.
package hashmap
