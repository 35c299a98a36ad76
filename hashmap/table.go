package hashmap

import "fmt"

// table is one hash table generation, a power-of-2 array of chain
// heads. Chains keep most recently inserted entries first.
type table struct {
	slots []*Node
	mask  uint64
	size  int64
}

func newtable(n int64) *table {
	if n <= 0 || (n&(n-1)) != 0 {
		panic(fmt.Errorf("newtable(%v): not a power of 2", n))
	}
	return &table{slots: make([]*Node, n), mask: uint64(n - 1)}
}

func (t *table) insert(nd *Node) {
	pos := nd.hcode & t.mask
	nd.next = t.slots[pos]
	t.slots[pos] = nd
	t.size++
}

// lookup return the slot, chain head or a next link, through which
// the matching node hangs, nil when missing. Returning the slot
// rather than the node keeps detach O(1).
func (t *table) lookup(hcode uint64, eq func(*Node) bool) **Node {
	if t == nil {
		return nil
	}
	from := &t.slots[hcode&t.mask]
	for *from != nil {
		if (*from).hcode == hcode && eq(*from) {
			return from
		}
		from = &(*from).next
	}
	return nil
}

// detach unlink the node hanging off the slot and return it.
func (t *table) detach(from **Node) *Node {
	nd := *from
	*from = nd.next
	nd.next = nil
	t.size--
	return nd
}

func (t *table) foreach(fn func(*Node) bool) bool {
	if t == nil {
		return true
	}
	for _, nd := range t.slots {
		for ; nd != nil; nd = nd.next {
			if fn(nd) == false {
				return false
			}
		}
	}
	return true
}
