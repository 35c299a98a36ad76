package zset

import "bytes"

import "github.com/arpitKSi/REDIS/avl"
import "github.com/arpitKSi/REDIS/hashmap"

// Entry is one member of a sorted set, indexed twice through its
// embedded headers: by (score, name) in the tree and by name in the
// hash table.
type Entry struct {
	node  avl.Node
	hnode hashmap.Node
	score float64
	name  []byte
}

func newentry(name []byte, score float64) *Entry {
	e := &Entry{score: score}
	e.name = append(e.name, name...)
	e.node.Init(e)
	e.hnode.Init(strhash(e.name), e)
	return e
}

// Name of this entry. The returned slice shall not be mutated.
func (e *Entry) Name() []byte {
	return e.name
}

// Score of this entry.
func (e *Entry) Score() float64 {
	return e.score
}

// less order entries by score, name bytes breaking the tie.
func (e *Entry) less(score float64, name []byte) bool {
	if e.score != score {
		return e.score < score
	}
	return bytes.Compare(e.name, name) < 0
}

func entryof(nd *avl.Node) *Entry {
	if nd == nil {
		return nil
	}
	return nd.Item().(*Entry)
}

// strhash is an FNV-style accumulator over the name bytes, 32-bit
// arithmetic widened to the table's 64-bit hash codes.
func strhash(data []byte) uint64 {
	h := uint32(0x811C9DC5)
	for _, b := range data {
		h = (h + uint32(b)) * 0x01000193
	}
	return uint64(h)
}
