package zset

import "fmt"
import "math/rand"
import "sort"
import "testing"

import "github.com/stretchr/testify/require"

func TestLeaderboard(t *testing.T) {
	z := NewZSet("leaderboard", nil)

	require.True(t, z.Insert([]byte("alice"), 100.5))
	require.True(t, z.Insert([]byte("bob"), 85.0))
	require.True(t, z.Insert([]byte("charlie"), 92.3))
	require.True(t, z.Insert([]byte("diana"), 110.2))
	require.Equal(t, int64(4), z.Count())
	z.Validate()

	e := z.Lookup([]byte("alice"))
	require.NotNil(t, e)
	require.Equal(t, 100.5, e.Score())

	// updating an existing name repositions it, no second entry
	require.False(t, z.Insert([]byte("alice"), 95.0))
	require.Equal(t, int64(4), z.Count())
	e = z.Lookup([]byte("alice"))
	require.NotNil(t, e)
	require.Equal(t, 95.0, e.Score())
	z.Validate()

	// entries at or after score 90, ascending, skipping bob
	names, scores := []string{}, []float64{}
	for e := z.SeekGE(90.0, nil); e != nil; e = z.Offset(e, 1) {
		names = append(names, string(e.Name()))
		scores = append(scores, e.Score())
	}
	require.Equal(t, []string{"charlie", "alice", "diana"}, names)
	require.Equal(t, []float64{92.3, 95.0, 110.2}, scores)

	require.Equal(t, int64(0), z.Rank(z.Lookup([]byte("bob"))))
	require.Equal(t, int64(3), z.Rank(z.Lookup([]byte("diana"))))

	z.Clear()
	require.Equal(t, int64(0), z.Count())
	require.Nil(t, z.Lookup([]byte("alice")))
}

func TestScoreTies(t *testing.T) {
	z := NewZSet("ties", nil)
	for _, name := range []string{"carol", "alice", "bob"} {
		z.Insert([]byte(name), 10.0)
	}
	z.Validate()

	// equal scores order by name
	e := z.Min()
	for _, expected := range []string{"alice", "bob", "carol"} {
		if e == nil {
			t.Fatalf("ran out of entries at %q", expected)
		}
		if string(e.Name()) != expected {
			t.Fatalf("expected %q, got %q", expected, e.Name())
		}
		e = z.Offset(e, 1)
	}

	// seek lands on the name tiebreak
	if e := z.SeekGE(10.0, []byte("b")); string(e.Name()) != "bob" {
		t.Errorf("expected %q, got %q", "bob", e.Name())
	}
	if e := z.SeekGE(10.0, []byte("carolz")); e != nil {
		t.Errorf("expected nil, got %q", e.Name())
	}

	// same name, same score, is a no-op update
	if z.Insert([]byte("bob"), 10.0) {
		t.Errorf("expected an update, got an insert")
	}
	if x := z.Count(); x != 3 {
		t.Errorf("expected %v entries, got %v", 3, x)
	}
}

func TestDelete(t *testing.T) {
	z := NewZSet("delete", nil)
	for i := 0; i < 100; i++ {
		z.Insert([]byte(fmt.Sprintf("member-%d", i)), float64(i))
	}
	for i := 0; i < 100; i += 2 {
		name := []byte(fmt.Sprintf("member-%d", i))
		e := z.Lookup(name)
		if e == nil {
			t.Fatalf("missing %q", name)
		}
		z.Delete(e)
		if z.Lookup(name) != nil {
			t.Fatalf("%q reachable after delete", name)
		}
	}
	if x := z.Count(); x != 50 {
		t.Fatalf("expected %v entries, got %v", 50, x)
	}
	z.Validate()

	// survivors walk in score order
	i, e := 1, z.Min()
	for ; e != nil; e = z.Offset(e, 1) {
		if e.Score() != float64(i) {
			t.Fatalf("expected score %v, got %v", i, e.Score())
		}
		i += 2
	}
}

func TestChurn(t *testing.T) {
	z := NewZSet("churn", nil)

	rnd := rand.New(rand.NewSource(42))
	reference := map[string]float64{}
	for i := 0; i < 20000; i++ {
		name := fmt.Sprintf("member-%d", rnd.Intn(2000))
		switch rnd.Intn(4) {
		case 0, 1: // insert or rescore
			score := float64(rnd.Intn(1000)) / 10
			created := z.Insert([]byte(name), score)
			_, ok := reference[name]
			if created == ok {
				t.Fatalf("insert %q: created %v, reference %v", name, created, ok)
			}
			reference[name] = score
		case 2: // delete
			if _, ok := reference[name]; ok {
				z.Delete(z.Lookup([]byte(name)))
				delete(reference, name)
			}
		case 3: // lookup
			e := z.Lookup([]byte(name))
			if score, ok := reference[name]; ok {
				if e == nil {
					t.Fatalf("missing %q", name)
				} else if e.Score() != score {
					t.Fatalf("%q: expected score %v, got %v", name, score, e.Score())
				}
			} else if e != nil {
				t.Fatalf("%q: expected nil, got score %v", name, e.Score())
			}
		}
		if i%1024 == 0 {
			z.Validate()
		}
	}
	z.Validate()

	if x := z.Count(); x != int64(len(reference)) {
		t.Fatalf("expected %v entries, got %v", len(reference), x)
	}

	// full ordered walk against the reference
	type member struct {
		name  string
		score float64
	}
	members := make([]member, 0, len(reference))
	for name, score := range reference {
		members = append(members, member{name, score})
	}
	sort.Slice(members, func(i, j int) bool {
		if members[i].score != members[j].score {
			return members[i].score < members[j].score
		}
		return members[i].name < members[j].name
	})
	e := z.Min()
	for i, mem := range members {
		if e == nil {
			t.Fatalf("ran out of entries at %v", i)
		}
		if string(e.Name()) != mem.name || e.Score() != mem.score {
			t.Fatalf("at %v expected %q {%v}, got %q {%v}",
				i, mem.name, mem.score, e.Name(), e.Score())
		}
		if r := z.Rank(e); r != int64(i) {
			t.Fatalf("%q: expected rank %v, got %v", mem.name, i, r)
		}
		e = z.Offset(e, 1)
	}
}

func TestStats(t *testing.T) {
	z := NewZSet("stats", nil)
	for i := 0; i < 1000; i++ {
		z.Insert([]byte(fmt.Sprintf("member-%d", i)), float64(i%97))
	}
	stats := z.Stats()
	if x := stats["n_count"].(int64); x != 1000 {
		t.Errorf("expected %v, got %v", 1000, x)
	}
	if x := stats["n_inserts"].(int64); x != 1000 {
		t.Errorf("expected %v, got %v", 1000, x)
	}
	if _, ok := stats["hashmap"].(map[string]interface{}); !ok {
		t.Errorf("missing hashmap stats")
	}
	z.Log()
}
