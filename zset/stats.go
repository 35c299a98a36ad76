package zset

import "fmt"

import "github.com/bnclabs/golog"
import humanize "github.com/dustin/go-humanize"

import "github.com/arpitKSi/REDIS/avl"

// Stats return a snapshot of set counters, with the name index's
// counters nested under "hashmap".
func (z *ZSet) Stats() map[string]interface{} {
	return map[string]interface{}{
		"n_count":       z.Count(),
		"n_inserts":     z.n_inserts,
		"n_updates":     z.n_updates,
		"n_deletes":     z.n_deletes,
		"height":        z.root.Height(),
		"h_upsertdepth": z.h_upsertdepth.Fullstats(),
		"hashmap":       z.hmap.Stats(),
	}
}

// Log a human readable rendering of Stats.
func (z *ZSet) Log() {
	stats := z.Stats()
	fmsg := "%v entries %v at tree height %v\n"
	log.Infof(
		fmsg, z.logprefix,
		humanize.Comma(stats["n_count"].(int64)), stats["height"],
	)
	fmsg = "%v inserts %v, updates %v, deletes %v\n"
	log.Infof(
		fmsg, z.logprefix,
		humanize.Comma(stats["n_inserts"].(int64)),
		humanize.Comma(stats["n_updates"].(int64)),
		humanize.Comma(stats["n_deletes"].(int64)),
	)
	z.hmap.Log()
}

// Validate both indexes and their agreement: tree balance and
// counts, hash table bookkeeping, (score, name) sort order, and
// that every tree entry resolves through the name index to itself.
// Panic on the first violation.
func (z *ZSet) Validate() {
	avl.Validate(z.root)
	z.hmap.Validate()

	count := z.Count()
	if size := z.hmap.Size(); count != size {
		fmsg := "validate(): tree count %v != hashmap size %v"
		panic(fmt.Errorf(fmsg, count, size))
	}

	n, prev := int64(0), (*Entry)(nil)
	z.inorder(z.root, func(e *Entry) {
		if prev != nil && e.less(prev.score, prev.name) {
			fmsg := "validate(): %q {%v} sorted after %q {%v}"
			panic(fmt.Errorf(fmsg, e.name, e.score, prev.name, prev.score))
		}
		if z.Lookup(e.name) != e {
			panic(fmt.Errorf("validate(): %q not in the name index", e.name))
		}
		prev, n = e, n+1
	})
	if n != count {
		panic(fmt.Errorf("validate(): walked %v entries, count %v", n, count))
	}
}

func (z *ZSet) inorder(nd *avl.Node, fn func(*Entry)) {
	if nd == nil {
		return
	}
	z.inorder(nd.Left, fn)
	fn(entryof(nd))
	z.inorder(nd.Right, fn)
}
