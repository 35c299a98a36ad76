package heap

import "fmt"

// Item is one slot in the heap array. Ref points to the external
// variable tracking this item's current slot, written after every
// displacement.
type Item struct {
	Value uint64
	Ref   *int
}

func parent(i int) int {
	return (i+1)/2 - 1
}

func left(i int) int {
	return i*2 + 1
}

func right(i int) int {
	return i*2 + 2
}

// siftup walk the item at pos towards the root while it is smaller
// than its parent, shifting parents down one slot each.
func siftup(items []Item, pos int) {
	t := items[pos]
	for pos > 0 && items[parent(pos)].Value > t.Value {
		items[pos] = items[parent(pos)]
		*items[pos].Ref = pos
		pos = parent(pos)
	}
	items[pos] = t
	*items[pos].Ref = pos
}

// siftdown walk the item at pos towards the leaves, pulling the
// smaller child up one slot each.
func siftdown(items []Item, pos int) {
	t := items[pos]
	for {
		l, r, smallest := left(pos), right(pos), pos
		value := t.Value
		if l < len(items) && items[l].Value < value {
			smallest, value = l, items[l].Value
		}
		if r < len(items) && items[r].Value < value {
			smallest = r
		}
		if smallest == pos {
			break
		}
		items[pos] = items[smallest]
		*items[pos].Ref = pos
		pos = smallest
	}
	items[pos] = t
	*items[pos].Ref = pos
}

// Update restore heap order after the item at pos changed, or was
// newly appended at len(items)-1. Sift up when smaller than the
// parent, down otherwise.
func Update(items []Item, pos int) {
	if pos > 0 && items[parent(pos)].Value > items[pos].Value {
		siftup(items, pos)
	} else {
		siftdown(items, pos)
	}
}

// Push append the item and return the grown heap.
func Push(items []Item, it Item) []Item {
	items = append(items, it)
	Update(items, len(items)-1)
	return items
}

// Pop remove the minimum item by swapping the last into its slot,
// and return the shrunk heap.
func Pop(items []Item) []Item {
	n := len(items) - 1
	items[0] = items[n]
	items = items[:n]
	if n > 0 {
		Update(items, 0)
	}
	return items
}

// Validate panic when the min-heap property or a back-reference is
// broken.
func Validate(items []Item) {
	for i := range items {
		if l := left(i); l < len(items) && items[l].Value < items[i].Value {
			fmsg := "validate(): item %v {%v} above child {%v}"
			panic(fmt.Errorf(fmsg, i, items[i].Value, items[l].Value))
		}
		if r := right(i); r < len(items) && items[r].Value < items[i].Value {
			fmsg := "validate(): item %v {%v} above child {%v}"
			panic(fmt.Errorf(fmsg, i, items[i].Value, items[r].Value))
		}
		if *items[i].Ref != i {
			fmsg := "validate(): item %v back-reference says %v"
			panic(fmt.Errorf(fmsg, i, *items[i].Ref))
		}
	}
}
