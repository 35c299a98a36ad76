package main

import "flag"
import "fmt"
import "math/rand"
import "os"
import "sync"

import "github.com/bnclabs/golog"
import s "github.com/bnclabs/gosettings"
import "github.com/cloudfoundry/gosigar"
import hm "github.com/dustin/go-humanize"

import "github.com/arpitKSi/REDIS/worker"
import "github.com/arpitKSi/REDIS/zset"

var options struct {
	n       int
	threads int
	log     string
}

func argParse() {
	flag.IntVar(&options.n, "n", 10000,
		"number of random members to churn after the scripted demo")
	flag.IntVar(&options.threads, "threads", 4,
		"number of workers for offloaded reporting")
	flag.StringVar(&options.log, "log", "info", "log level")
	flag.Parse()
}

func main() {
	argParse()
	log.SetLogger(nil, map[string]interface{}{
		"log.level": options.log,
		"log.file":  "",
	})

	store := NewStore("demo", s.Settings{
		"worker.threads": int64(options.threads),
	})

	fmt.Println("== leaderboard ==")
	for _, member := range []struct {
		name  string
		score float64
	}{
		{"alice", 100.5}, {"bob", 85.0}, {"charlie", 92.3}, {"diana", 110.2},
	} {
		store.Zadd("leaderboard", member.name, member.score)
	}
	fmt.Printf("zcard leaderboard: %v\n", store.Zcard("leaderboard"))

	if score, ok := store.Zscore("leaderboard", "alice"); ok {
		fmt.Printf("zscore alice: %v\n", score)
	}

	// rescoring repositions the member, no second entry
	store.Zadd("leaderboard", "alice", 95.0)
	if score, ok := store.Zscore("leaderboard", "alice"); ok {
		fmt.Printf("zscore alice after update: %v\n", score)
	}

	fmt.Println("members at or above 90.0, ascending:")
	for _, member := range store.Zquery("leaderboard", 90.0, "", 10) {
		fmt.Printf("  %s: %v\n", member.Name, member.Score)
	}

	store.Zrem("leaderboard", "bob")
	fmt.Printf("zcard after zrem bob: %v\n", store.Zcard("leaderboard"))

	fmt.Println("== churn ==")
	rnd := rand.New(rand.NewSource(42))
	for i := 0; i < options.n; i++ {
		name := fmt.Sprintf("player-%d", rnd.Intn(options.n/2+1))
		store.Zadd("arena", name, float64(rnd.Intn(100000))/100)
	}
	fmt.Printf("zcard arena: %v\n", hm.Comma(store.Zcard("arena")))

	store.Report() // validation and stats, off the command path

	mem := sigar.ProcMem{}
	if err := mem.Get(os.Getpid()); err == nil {
		fmt.Printf("resident memory: %v\n", hm.Bytes(mem.Resident))
	}
}

// Store own a collection of named sorted sets, handed to command
// handlers instead of living as process-wide state. Commands on a
// store are serialized by its mutex, the sets themselves are
// single-threaded structures.
type Store struct {
	mu   sync.Mutex
	name string
	sets map[string]*zset.ZSet
	pool *worker.Pool
}

// NewStore create an empty store and its reporting pool.
func NewStore(name string, setts s.Settings) *Store {
	setts = make(s.Settings).Mixin(Defaultsettings(), setts)
	psetts := setts.Section("worker.").Trim("worker.")
	return &Store{
		name: name,
		sets: make(map[string]*zset.ZSet),
		pool: worker.NewPool(name, psetts),
	}
}

// Defaultsettings for store, worker pool settings are inherited
// under the "worker." prefix.
func Defaultsettings() s.Settings {
	setts := s.Settings{}
	return setts.Mixin(worker.Defaultsettings().AddPrefix("worker."))
}

// Zadd add member to the named set, creating the set on first use.
func (st *Store) Zadd(key, member string, score float64) bool {
	st.mu.Lock()
	defer st.mu.Unlock()

	z, ok := st.sets[key]
	if !ok {
		z = zset.NewZSet(key, nil)
		st.sets[key] = z
	}
	return z.Insert([]byte(member), score)
}

// Zscore return member's score in the named set.
func (st *Store) Zscore(key, member string) (float64, bool) {
	st.mu.Lock()
	defer st.mu.Unlock()

	z, ok := st.sets[key]
	if !ok {
		return 0, false
	}
	e := z.Lookup([]byte(member))
	if e == nil {
		return 0, false
	}
	return e.Score(), true
}

// Member is one row of a Zquery response.
type Member struct {
	Name  string
	Score float64
}

// Zquery return up to limit members ordered at or after (score,
// name), ascending.
func (st *Store) Zquery(key string, score float64, name string, limit int) []Member {
	st.mu.Lock()
	defer st.mu.Unlock()

	z, ok := st.sets[key]
	if !ok {
		return nil
	}
	members := make([]Member, 0, limit)
	for e := z.SeekGE(score, []byte(name)); e != nil && len(members) < limit; {
		members = append(members, Member{Name: string(e.Name()), Score: e.Score()})
		e = z.Offset(e, 1)
	}
	return members
}

// Zrem remove member from the named set.
func (st *Store) Zrem(key, member string) bool {
	st.mu.Lock()
	defer st.mu.Unlock()

	z, ok := st.sets[key]
	if !ok {
		return false
	}
	e := z.Lookup([]byte(member))
	if e == nil {
		return false
	}
	z.Delete(e)
	return true
}

// Zcard return the number of members in the named set.
func (st *Store) Zcard(key string) int64 {
	st.mu.Lock()
	defer st.mu.Unlock()

	if z, ok := st.sets[key]; ok {
		return z.Count()
	}
	return 0
}

// Report validate every set and log its stats on the worker pool,
// keeping the walk off the command path.
func (st *Store) Report() {
	st.mu.Lock()
	sets := make([]*zset.ZSet, 0, len(st.sets))
	for _, z := range st.sets {
		sets = append(sets, z)
	}
	st.mu.Unlock()

	var wg sync.WaitGroup
	for _, z := range sets {
		z := z
		wg.Add(1)
		st.pool.Submit(func() {
			st.mu.Lock() // sets are single-threaded structures
			z.Validate()
			z.Log()
			st.mu.Unlock()
			wg.Done()
		})
	}
	wg.Wait()
}
