package hashmap

import "fmt"

import "github.com/bnclabs/golog"
import humanize "github.com/dustin/go-humanize"

// Stats return a snapshot of map counters.
//
// "n_count"    number of live entries across both generations.
// "n_inserts"  cumulative number of inserts.
// "n_deletes"  cumulative number of successful deletes.
// "n_resizes"  number of resizes begun so far.
// "n_migrated" entries relocated out of retiring generations.
// "n_buckets"  bucket count of the active generation.
// "migrating"  whether a resize is draining right now.
// "h_migrate"  histogram of per-call migration batch sizes.
func (m *Map) Stats() map[string]interface{} {
	nbuckets := int64(0)
	if m.active != nil {
		nbuckets = int64(m.active.mask + 1)
	}
	return map[string]interface{}{
		"n_count":    m.Size(),
		"n_inserts":  m.n_inserts,
		"n_deletes":  m.n_deletes,
		"n_resizes":  m.n_resizes,
		"n_migrated": m.n_migrated,
		"n_buckets":  nbuckets,
		"migrating":  m.retiring != nil,
		"h_migrate":  m.h_migrate.Fullstats(),
	}
}

// Log a human readable rendering of Stats.
func (m *Map) Log() {
	stats := m.Stats()
	fmsg := "%v entries %v in %v buckets, %v resizes\n"
	log.Infof(
		fmsg, m.logprefix,
		humanize.Comma(stats["n_count"].(int64)),
		humanize.Comma(stats["n_buckets"].(int64)),
		humanize.Comma(stats["n_resizes"].(int64)),
	)
	fmsg = "%v inserts %v, deletes %v, migrated %v\n"
	log.Infof(
		fmsg, m.logprefix,
		humanize.Comma(stats["n_inserts"].(int64)),
		humanize.Comma(stats["n_deletes"].(int64)),
		humanize.Comma(stats["n_migrated"].(int64)),
	)
}

// Validate walk both generations and panic on the first broken
// invariant: size bookkeeping, bucket placement and counter
// arithmetic.
func (m *Map) Validate() {
	m.validatetable(m.active, "active")
	m.validatetable(m.retiring, "retiring")
	if n := m.n_inserts - m.n_deletes; n != m.Size() {
		fmsg := "validate(): inserts %v - deletes %v != size %v"
		panic(fmt.Errorf(fmsg, m.n_inserts, m.n_deletes, m.Size()))
	}
}

func (m *Map) validatetable(t *table, which string) {
	if t == nil {
		return
	}
	count := int64(0)
	for i, nd := range t.slots {
		for ; nd != nil; nd = nd.next {
			if pos := nd.hcode & t.mask; pos != uint64(i) {
				fmsg := "validate(): %v entry in bucket %v, expected %v"
				panic(fmt.Errorf(fmsg, which, i, pos))
			}
			count++
		}
	}
	if count != t.size {
		fmsg := "validate(): %v size %v, counted %v"
		panic(fmt.Errorf(fmsg, which, t.size, count))
	}
}
