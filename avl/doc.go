// Package avl implement an intrusive order-statistics AVL tree.
// The Node header is embedded inside an owner record and tracks
// subtree height and size, answering k-th-node and rank-of-node
// queries in O(log n). Ordering is the caller's business: callers
// descend the tree themselves comparing owner records, while this
// package keeps the tree balanced through Fix and Delete.
package avl
