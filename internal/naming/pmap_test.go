package naming

import (
	"strconv"
	"testing"
)

func TestPmapNilIsEmpty(t *testing.T) {
	var m *pmap[string, int]
	if m.Len() != 0 {
		t.Fatalf("Len = %d, want 0", m.Len())
	}
	if _, ok := m.Get("x"); ok {
		t.Fatalf("Get on nil map found a value")
	}
	m.Range(func(string, int) bool {
		t.Fatalf("Range on nil map called fn")
		return true
	})
	m2 := m.Set("x", 1)
	if v, ok := m2.Get("x"); !ok || v != 1 {
		t.Fatalf("Get(x) = %d, %v", v, ok)
	}
}

func TestPmapPersistence(t *testing.T) {
	v1 := newPmap[string, int]().Set("a", 1)
	v2 := v1.Set("b", 2)
	v3 := v2.Set("a", 10)

	if _, ok := v1.Get("b"); ok {
		t.Fatalf("v1 sees a later insertion")
	}
	if got, _ := v2.Get("a"); got != 1 {
		t.Fatalf("v2 a = %d, want 1", got)
	}
	if got, _ := v3.Get("a"); got != 10 {
		t.Fatalf("v3 a = %d, want 10", got)
	}
	if v3.Len() != 2 || v2.Len() != 2 || v1.Len() != 1 {
		t.Fatalf("lens = %d %d %d", v1.Len(), v2.Len(), v3.Len())
	}
}

func TestPmapManyKeys(t *testing.T) {
	const n = 5000
	m := newPmap[int, string]()
	versions := make([]*pmap[int, string], 0, n)
	for i := range n {
		m = m.Set(i, strconv.Itoa(i))
		versions = append(versions, m)
	}
	if m.Len() != n {
		t.Fatalf("Len = %d, want %d", m.Len(), n)
	}
	for i := range n {
		v, ok := m.Get(i)
		if !ok || v != strconv.Itoa(i) {
			t.Fatalf("Get(%d) = %q, %v", i, v, ok)
		}
	}
	if _, ok := versions[99].Get(100); ok {
		t.Fatalf("version 99 sees key 100")
	}
	if _, ok := versions[99].Get(99); !ok {
		t.Fatalf("version 99 lost key 99")
	}

	seen := make(map[int]bool, n)
	m.Range(func(k int, _ string) bool {
		if seen[k] {
			t.Fatalf("Range visited %d twice", k)
		}
		seen[k] = true
		return true
	})
	if len(seen) != n {
		t.Fatalf("Range visited %d keys, want %d", len(seen), n)
	}
}

func TestPmapRangeStops(t *testing.T) {
	m := newPmap[int, int]()
	for i := range 100 {
		m = m.Set(i, i)
	}
	calls := 0
	m.Range(func(int, int) bool {
		calls++
		return calls < 3
	})
	if calls != 3 {
		t.Fatalf("calls = %d, want 3", calls)
	}
}

func TestHamtCollisionBucket(t *testing.T) {
	// Force two keys into the same collision bucket by inserting below the
	// last trie level directly.
	var n *hamtNode[string, int]
	n, _ = hamtInsert(n, &hamtLeaf[string, int]{hash: 7, key: "a", val: 1}, hamtMaxShift+hamtBits)
	n, _ = hamtInsert(n, &hamtLeaf[string, int]{hash: 7, key: "b", val: 2}, hamtMaxShift+hamtBits)
	n2, added := hamtInsert(n, &hamtLeaf[string, int]{hash: 7, key: "a", val: 3}, hamtMaxShift+hamtBits)
	if added {
		t.Fatalf("overwrite reported as insertion")
	}
	if len(n.collisions) != 2 || n.collisions[0].val != 1 {
		t.Fatalf("old bucket mutated: %+v", n.collisions)
	}
	if n2.collisions[0].val != 3 || n2.collisions[1].val != 2 {
		t.Fatalf("new bucket = %+v", n2.collisions)
	}
}
