package zview

import (
	"sync"

	"zview/lru"
	"zview/strview"
)

// A Table interns terminated copies of plain views. It hands out the same
// terminated buffer for equal units, so code that must pass terminated
// strings across an interop boundary pays for the copy once per distinct
// string. It is safe for concurrent use.
//
// Views returned by a Table stay valid after their entry is evicted; the
// table only forgets them.
type Table[T Char] struct {
	mu         sync.Mutex
	usedUnits  int64 // units held by live entries, terminators excluded
	lru        *lru.Cache[T, View[T]]
	maxEntries int
	hitNum     int64
	getNum     int64
	evictNum   int64 // number of evictions
}

// TableStats are returned by Table.Stats.
type TableStats struct {
	Units     int64
	Items     int64
	Gets      int64
	Hits      int64
	Evictions int64
}

// NewTable returns a table that keeps at most maxEntries strings. Zero
// means no limit.
func NewTable[T Char](maxEntries int) *Table[T] {
	return &Table[T]{maxEntries: maxEntries}
}

func (t *Table[T]) initLocked() {
	if t.lru == nil {
		t.lru = lru.New(t.maxEntries, func(key strview.View[T], value View[T]) {
			t.usedUnits -= int64(value.Len())
			t.evictNum++
		})
	}
}

// Intern returns a terminated view holding the units of s. It allocates
// only the first time a given unit sequence is seen.
func (t *Table[T]) Intern(s strview.View[T]) View[T] {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.getNum++
	t.initLocked()

	if z, ok := t.lru.Get(s); ok {
		t.hitNum++
		return z
	}

	buf := make([]T, s.Len()+1)
	s.Copy(buf, 0)
	z := FromTerminated(buf)
	t.lru.Add(z.StrView(), z)
	t.usedUnits += int64(z.Len())
	return z
}

// Lookup returns the interned view for s, if there is one.
func (t *Table[T]) Lookup(s strview.View[T]) (View[T], bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.getNum++
	if t.lru == nil {
		return View[T]{}, false
	}

	z, ok := t.lru.Get(s)
	if ok {
		t.hitNum++
	}
	return z, ok
}

// Stats returns a snapshot of the table's counters.
func (t *Table[T]) Stats() TableStats {
	t.mu.Lock()
	defer t.mu.Unlock()
	return TableStats{
		Units:     t.usedUnits,
		Items:     t.itemsLocked(),
		Gets:      t.getNum,
		Hits:      t.hitNum,
		Evictions: t.evictNum,
	}
}

func (t *Table[T]) itemsLocked() int64 {
	if t.lru == nil {
		return 0
	}
	return int64(t.lru.Len())
}
