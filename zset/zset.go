package zset

import "bytes"
import "fmt"

import "github.com/bnclabs/golog"
import s "github.com/bnclabs/gosettings"

import "github.com/arpitKSi/REDIS/avl"
import "github.com/arpitKSi/REDIS/hashmap"
import "github.com/arpitKSi/REDIS/lib"

// ZSet manage a single instance of in-memory sorted set. Entries
// reachable from the tree root and entries stored in the hash table
// are always the same set. ZSet is not safe for concurrent use,
// callers serialize all access to an instance.
type ZSet struct {
	name string
	root *avl.Node
	hmap *hashmap.Map

	// settings
	setts     s.Settings
	logprefix string

	// statistics
	n_inserts     int64
	n_updates     int64
	n_deletes     int64
	h_upsertdepth *lib.HistogramInt64
}

// NewZSet create an empty sorted set.
func NewZSet(name string, setts s.Settings) *ZSet {
	z := &ZSet{name: name}
	z.logprefix = fmt.Sprintf("ZSET [%s]", name)
	setts = make(s.Settings).Mixin(Defaultsettings(), setts)
	hsetts := setts.Section("hashmap.").Trim("hashmap.")
	z.hmap = hashmap.NewMap(name, hsetts)
	z.h_upsertdepth = lib.NewhistogramInt64(1, 64, 4)
	z.setts = setts
	log.Infof("%v started ...\n", z.logprefix)
	return z
}

// ID return the name of this sorted set.
func (z *ZSet) ID() string {
	return z.name
}

// Count return the number of entries in the set.
func (z *ZSet) Count() int64 {
	return int64(z.root.Count())
}

// Insert a new entry, or update the score of an existing one. A
// score change detaches the entry from the tree and reinserts it at
// its new position, the score being part of the ordering key.
// Return true when a new entry was created.
func (z *ZSet) Insert(name []byte, score float64) bool {
	if e := z.Lookup(name); e != nil {
		z.updatescore(e, score)
		z.n_updates++
		return false
	}
	e := newentry(name, score)
	z.hmap.Insert(&e.hnode)
	z.treeinsert(e)
	z.n_inserts++
	return true
}

// Lookup the entry stored under name, nil when missing.
func (z *ZSet) Lookup(name []byte) *Entry {
	nd := z.hmap.Lookup(strhash(name), func(h *hashmap.Node) bool {
		return bytes.Equal(h.Item().(*Entry).name, name)
	})
	if nd == nil {
		return nil
	}
	return nd.Item().(*Entry)
}

// Delete the entry from both indexes. The entry belongs to the set
// and is garbage once callers drop their references.
func (z *ZSet) Delete(e *Entry) {
	nd := z.hmap.Delete(e.hnode.Hashcode(), func(h *hashmap.Node) bool {
		return h.Item().(*Entry) == e
	})
	if nd == nil {
		panic(fmt.Errorf("%v Delete(%q): not a member", z.logprefix, e.name))
	}
	z.root = avl.Delete(&e.node)
	z.n_deletes++
}

// SeekGE return the first entry ordered at or after (score, name),
// nil when every entry orders before it.
func (z *ZSet) SeekGE(score float64, name []byte) *Entry {
	var found *avl.Node
	for nd := z.root; nd != nil; {
		if entryof(nd).less(score, name) {
			nd = nd.Right
		} else {
			found = nd // candidate, smaller ones may sit to the left
			nd = nd.Left
		}
	}
	return entryof(found)
}

// Offset return the entry k positions away from e in score order,
// negative k walking towards lower scores, nil when out of range.
func (z *ZSet) Offset(e *Entry, k int64) *Entry {
	return entryof(avl.Offset(&e.node, k))
}

// Rank return e's 0-based position in score order.
func (z *ZSet) Rank(e *Entry) int64 {
	return avl.Rank(&e.node)
}

// Min return the entry with the least (score, name), nil when the
// set is empty.
func (z *ZSet) Min() *Entry {
	nd := z.root
	if nd == nil {
		return nil
	}
	for nd.Left != nil {
		nd = nd.Left
	}
	return entryof(nd)
}

// Clear release the hash table storage and drop the tree root.
// Entries become garbage with the last outside reference.
func (z *ZSet) Clear() {
	z.hmap.Clear()
	z.root = nil
	log.Debugf("%v cleared\n", z.logprefix)
}

func (z *ZSet) treeinsert(e *Entry) {
	depth := int64(1)
	var parent *avl.Node
	from := &z.root
	for *from != nil {
		parent = *from
		curr := entryof(parent)
		if e.less(curr.score, curr.name) {
			from = &parent.Left
		} else {
			from = &parent.Right
		}
		depth++
	}
	*from = &e.node
	e.node.Parent = parent
	z.root = avl.Fix(&e.node)
	z.h_upsertdepth.Add(depth)
}

func (z *ZSet) updatescore(e *Entry, score float64) {
	if e.score == score {
		return
	}
	z.root = avl.Delete(&e.node)
	e.node.Init(e)
	e.score = score
	z.treeinsert(e)
}
