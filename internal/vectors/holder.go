// ABOUTME: Load-state holder that publishes the vector table once it is built.
// ABOUTME: Readers see either no table (loading) or the complete table, never a partial one.
package vectors

import (
	"sync/atomic"
	"time"
)

// Holder tracks whether the table has been built. The zero value is a
// holder in the loading state.
type Holder struct {
	table    atomic.Pointer[Table]
	loadedAt atomic.Int64
}

// NewHolder returns a holder in the loading state.
func NewHolder() *Holder {
	return &Holder{}
}

// Set publishes t. Later calls replace the table. The load time is stored
// first so a reader that sees the table also sees when it was loaded.
func (h *Holder) Set(t *Table) {
	h.loadedAt.Store(time.Now().UnixNano())
	h.table.Store(t)
}

// Load runs build and publishes its result. It returns how long build took.
func (h *Holder) Load(build func() *Table) time.Duration {
	start := time.Now()
	t := build()
	elapsed := time.Since(start)
	h.Set(t)
	return elapsed
}

// Table returns the published table, or false while loading.
func (h *Holder) Table() (*Table, bool) {
	t := h.table.Load()
	return t, t != nil
}

// Loaded reports whether a table has been published.
func (h *Holder) Loaded() bool {
	return h.table.Load() != nil
}

// Size returns the table size, or 0 while loading.
func (h *Holder) Size() int {
	if t := h.table.Load(); t != nil {
		return t.Size()
	}
	return 0
}

// LoadedAt returns when the table was published.
func (h *Holder) LoadedAt() (time.Time, bool) {
	ns := h.loadedAt.Load()
	if ns == 0 {
		return time.Time{}, false
	}
	return time.Unix(0, ns), true
}
