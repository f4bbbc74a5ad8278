package layout

import (
	"sync"
	"sync/atomic"
)

// Ensure returns tbl when Validate accepts it for (spec, w, h) — collision
// warnings do not invalidate — and otherwise regenerates from spec.
// Regeneration is idempotent and always safe for a valid spec; an invalid
// spec surfaces its ErrConfig-class error instead, since no amount of
// regeneration can repair bad input.
//
// Complexity: O(N) validation, plus O(N) generation when stale.
func Ensure(tbl *Table, spec Spec, w, h int) (*Table, error) {
	if tbl != nil {
		if _, err := Validate(tbl, spec, w, h); err == nil {
			return tbl, nil
		}
	}

	return Generate(spec, w, h)
}

// published pairs a table with the spec generation it was built from.
type published struct {
	table *Table
	gen   uint64
}

// Handle owns the current layout spec of a pattern and its cached mapping
// table. Spec edits bump a generation counter instead of clearing fields;
// Ensure lazily rebuilds when the generation or grid size moved on.
//
// Tables publish through an atomic pointer swap, so a render goroutine and
// an export goroutine always observe either the old or the new complete
// table, never a partially built one. The zero Handle is not usable; start
// from NewHandle.
type Handle struct {
	mu   sync.Mutex // serializes spec edits and regeneration
	spec Spec
	gen  atomic.Uint64
	cur  atomic.Pointer[published]
}

// NewHandle returns a Handle managing tables for spec. The spec may still be
// invalid at this point; errors surface from Ensure.
func NewHandle(spec Spec) *Handle {
	h := &Handle{spec: spec}

	return h
}

// Spec returns the current layout spec.
func (h *Handle) Spec() Spec {
	h.mu.Lock()
	defer h.mu.Unlock()

	return h.spec
}

// SetSpec replaces the layout spec and invalidates the cached table by
// bumping the generation counter. The stale table stays readable until the
// next Ensure republishes.
func (h *Handle) SetSpec(spec Spec) {
	h.mu.Lock()
	h.spec = spec
	h.gen.Add(1)
	h.mu.Unlock()
}

// Generation reports the current spec generation. Mostly useful in tests
// and debugging overlays.
func (h *Handle) Generation() uint64 {
	return h.gen.Load()
}

// Table returns the most recently published table, or nil before the first
// successful Ensure. The result may be stale; Ensure is the freshness check.
func (h *Handle) Table() *Table {
	if p := h.cur.Load(); p != nil {
		return p.table
	}

	return nil
}

// Ensure returns the cached table when its generation and grid size match,
// regenerating and atomically republishing otherwise. Concurrent callers are
// safe; at most one regenerates at a time.
//
// Complexity: O(1) on the fast path, O(N) when regenerating.
func (h *Handle) Ensure(w, hgt int) (*Table, error) {
	gen := h.gen.Load()
	if p := h.cur.Load(); p != nil && p.gen == gen {
		if tw, th := p.table.Size(); tw == w && th == hgt {
			return p.table, nil
		}
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	// Re-check under the lock: a concurrent Ensure may have republished.
	gen = h.gen.Load()
	if p := h.cur.Load(); p != nil && p.gen == gen {
		if tw, th := p.table.Size(); tw == w && th == hgt {
			return p.table, nil
		}
	}

	tbl, err := Generate(h.spec, w, hgt)
	if err != nil {
		return nil, err
	}
	h.cur.Store(&published{table: tbl, gen: gen})

	return tbl, nil
}

// Adopt installs a pre-built table (typically loaded from a pattern file)
// after running it through Ensure, so stale stored data is regenerated
// rather than trusted. It returns the table actually published.
func (h *Handle) Adopt(tbl *Table, w, hgt int) (*Table, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	out, err := Ensure(tbl, h.spec, w, hgt)
	if err != nil {
		return nil, err
	}
	h.cur.Store(&published{table: out, gen: h.gen.Load()})

	return out, nil
}
