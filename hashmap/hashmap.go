package hashmap

import "fmt"

import "github.com/bnclabs/golog"
import s "github.com/bnclabs/gosettings"

import "github.com/arpitKSi/REDIS/lib"

// Map is a chained hash table resizing through two generations. The
// active generation receives all inserts; while a resize is in
// flight the retiring generation drains into it, a bounded batch per
// call. Map is not safe for concurrent use, callers serialize all
// access to an instance.
type Map struct {
	name string

	active     *table
	retiring   *table
	migratepos uint64

	// settings
	minsize    int64
	loadfactor int64
	migrate    int64
	setts      s.Settings
	logprefix  string

	// statistics
	n_inserts  int64
	n_deletes  int64
	n_resizes  int64
	n_migrated int64
	h_migrate  *lib.HistogramInt64
}

// NewMap create an empty map. Bucket storage comes up lazily with
// the first insert.
func NewMap(name string, setts s.Settings) *Map {
	m := &Map{name: name}
	m.logprefix = fmt.Sprintf("HMAP [%s]", name)
	setts = make(s.Settings).Mixin(Defaultsettings(), setts)
	m.readsettings(setts)
	m.h_migrate = lib.NewhistogramInt64(0, m.migrate, 8)
	log.Infof("%v started ...\n", m.logprefix)
	return m
}

func (m *Map) readsettings(setts s.Settings) {
	m.minsize = setts.Int64("minsize")
	m.loadfactor = setts.Int64("loadfactor")
	m.migrate = setts.Int64("migrate")
	if m.minsize <= 0 || (m.minsize&(m.minsize-1)) != 0 {
		panic(fmt.Errorf("%v minsize %v not a power of 2", m.logprefix, m.minsize))
	}
	m.setts = setts
}

// Lookup the entry stored under hcode for which eq is true. Entries
// still waiting in the retiring generation remain reachable.
func (m *Map) Lookup(hcode uint64, eq func(*Node) bool) *Node {
	m.helpmigrate()
	from := m.active.lookup(hcode, eq)
	if from == nil {
		from = m.retiring.lookup(hcode, eq)
	}
	if from == nil {
		return nil
	}
	return *from
}

// Insert the node into the active generation. A resize begins when
// the active load factor crosses the threshold while no resize is
// already in flight.
func (m *Map) Insert(nd *Node) {
	if m.active == nil {
		m.active = newtable(m.minsize)
	}
	m.active.insert(nd)
	m.n_inserts++

	if m.retiring == nil {
		if m.active.size >= int64(m.active.mask+1)*m.loadfactor {
			m.startresize()
		}
	}
	m.helpmigrate()
}

// Delete the entry stored under hcode for which eq is true and
// return it, nil when missing. The entry's storage belongs to the
// caller.
func (m *Map) Delete(hcode uint64, eq func(*Node) bool) *Node {
	m.helpmigrate()
	if from := m.active.lookup(hcode, eq); from != nil {
		m.n_deletes++
		return m.active.detach(from)
	}
	if from := m.retiring.lookup(hcode, eq); from != nil {
		m.n_deletes++
		return m.retiring.detach(from)
	}
	return nil
}

// ID return the name of this map.
func (m *Map) ID() string {
	return m.name
}

// Clear release both generations. Entries are owned by callers and
// become garbage with the last outside reference. Size bookkeeping
// restarts with the next generation.
func (m *Map) Clear() {
	m.active, m.retiring, m.migratepos = nil, nil, 0
	m.n_inserts, m.n_deletes = 0, 0
	log.Debugf("%v cleared\n", m.logprefix)
}

// Size return the number of live entries across both generations.
func (m *Map) Size() int64 {
	size := int64(0)
	if m.active != nil {
		size += m.active.size
	}
	if m.retiring != nil {
		size += m.retiring.size
	}
	return size
}

// Foreach visit every entry until fn returns false. Visiting order
// is unspecified and shall not mutate the map.
func (m *Map) Foreach(fn func(*Node) bool) {
	if m.active.foreach(fn) {
		m.retiring.foreach(fn)
	}
}

// startresize move the active generation into retiring and bring up
// a double sized active generation. Never called while another
// resize is draining.
func (m *Map) startresize() {
	if m.retiring != nil {
		panic(fmt.Errorf("%v resize while another in flight", m.logprefix))
	}
	m.retiring, m.migratepos = m.active, 0
	m.active = newtable(int64(m.retiring.mask+1) * 2)
	m.n_resizes++
	fmsg := "%v resizing from %v to %v buckets\n"
	log.Debugf(fmsg, m.logprefix, m.retiring.mask+1, m.active.mask+1)
}

// helpmigrate drain up to the migration quota of entries from the
// retiring generation, sweeping its buckets from the cursor. This
// bounds per-call latency no matter how big the table has grown.
func (m *Map) helpmigrate() {
	if m.retiring == nil {
		return
	}
	nwork := int64(0)
	for nwork < m.migrate && m.retiring.size > 0 {
		from := &m.retiring.slots[m.migratepos]
		if *from == nil {
			m.migratepos++ // skip drained bucket
			continue
		}
		m.active.insert(m.retiring.detach(from))
		nwork++
	}
	m.n_migrated += nwork
	m.h_migrate.Add(nwork)

	if m.retiring.size == 0 {
		log.Debugf("%v retiring table drained\n", m.logprefix)
		m.retiring, m.migratepos = nil, 0
	}
}
