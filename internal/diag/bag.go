package diag

import (
	"cmp"
	"slices"

	"loom/internal/source"
)

// Bag is an append-only diagnostic log kept in detection order until Sort
// or Dedup. Not safe for concurrent use: parallel producers fill one Bag
// each and Merge them afterwards.
type Bag struct {
	items   []Diagnostic
	limit   int
	dropped int
}

// NewBag returns a bag holding at most limit diagnostics; limit <= 0 means
// unbounded.
func NewBag(limit int) *Bag {
	return &Bag{limit: limit}
}

// Add stores d unless the bag is full; a full bag counts d as dropped.
func (b *Bag) Add(d Diagnostic) bool {
	if b.limit > 0 && len(b.items) >= b.limit {
		b.dropped++
		return false
	}
	b.items = append(b.items, d)
	return true
}

// Dropped is the number of diagnostics rejected by the limit.
func (b *Bag) Dropped() int { return b.dropped }

func (b *Bag) Len() int { return len(b.items) }

// Worst returns the highest severity in the bag and false for an empty bag.
func (b *Bag) Worst() (Severity, bool) {
	if len(b.items) == 0 {
		return SevInfo, false
	}
	return slices.MaxFunc(b.items, func(x, y Diagnostic) int {
		return cmp.Compare(x.Severity, y.Severity)
	}).Severity, true
}

func (b *Bag) HasErrors() bool {
	sev, ok := b.Worst()
	return ok && sev >= SevError
}

func (b *Bag) HasWarnings() bool {
	sev, ok := b.Worst()
	return ok && sev >= SevWarning
}

// Items returns a copy of the diagnostics.
func (b *Bag) Items() []Diagnostic {
	return slices.Clone(b.items)
}

// Merge appends other's diagnostics. The limit grows when needed: merged
// per-file bags were already limited on their own.
func (b *Bag) Merge(other *Bag) {
	if other == nil {
		return
	}
	b.items = append(b.items, other.items...)
	if b.limit > 0 {
		b.limit = max(b.limit, len(b.items))
	}
	b.dropped += other.dropped
}

// Sort orders by file, start, end, then errors before warnings, then code.
func (b *Bag) Sort() {
	slices.SortStableFunc(b.items, func(x, y Diagnostic) int {
		return cmp.Or(
			cmp.Compare(x.Primary.File, y.Primary.File),
			cmp.Compare(x.Primary.Start, y.Primary.Start),
			cmp.Compare(x.Primary.End, y.Primary.End),
			cmp.Compare(y.Severity, x.Severity),
			cmp.Compare(x.Code, y.Code),
		)
	})
}

// Dedup drops repeats of the same code on the same span, keeping the first.
func (b *Bag) Dedup() {
	type key struct {
		code Code
		span source.Span
	}
	seen := make(map[key]struct{}, len(b.items))
	b.items = slices.DeleteFunc(b.items, func(d Diagnostic) bool {
		k := key{d.Code, d.Primary}
		if _, dup := seen[k]; dup {
			return true
		}
		seen[k] = struct{}{}
		return false
	})
}
