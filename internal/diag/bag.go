package diag

import "fortio.org/safecast"

// Bag accumulates the findings of one diagnostic run.
//
// The Bag is append-only and preserves insertion order per severity, which
// the report relies on for readability. It is owned by a single run and is
// not safe for concurrent use; independent runs use independent Bags.
type Bag struct {
	items []Diagnostic
	max   uint16
}

func NewBag(max int) *Bag {
	if max <= 0 {
		max = 1
	}
	capped, err := safecast.Conv[uint16](max)
	if err != nil {
		capped = ^uint16(0)
	}
	return &Bag{
		items: make([]Diagnostic, 0, capped),
		max:   capped,
	}
}

// Add добавляет диагностику, учитывая лимит.
// Возвращает false, если лимит достигнут и диагностика не добавлена.
func (b *Bag) Add(d Diagnostic) bool {
	if len(b.items) >= int(b.max) {
		return false
	}
	b.items = append(b.items, d)
	return true
}

func (b *Bag) Cap() uint16 {
	return b.max
}

func (b *Bag) Len() int {
	return len(b.items)
}

// HasErrors reports whether at least one SevError finding was recorded.
func (b *Bag) HasErrors() bool {
	for i := range b.items {
		if b.items[i].Severity >= SevError {
			return true
		}
	}
	return false
}

// HasWarnings reports whether at least one finding of SevWarning or above
// was recorded.
func (b *Bag) HasWarnings() bool {
	for i := range b.items {
		if b.items[i].Severity >= SevWarning {
			return true
		}
	}
	return false
}

// Items returns a read-only view of all findings in insertion order.
// Не модифицируйте возвращаемый срез: он указывает на внутренний массив.
func (b *Bag) Items() []Diagnostic {
	return b.items
}

// bySeverity returns the findings of one severity, insertion order kept.
func (b *Bag) bySeverity(sev Severity) []Diagnostic {
	out := make([]Diagnostic, 0, len(b.items))
	for _, d := range b.items {
		if d.Severity == sev {
			out = append(out, d)
		}
	}
	return out
}

// Errors returns the SevError findings in insertion order.
func (b *Bag) Errors() []Diagnostic { return b.bySeverity(SevError) }

// Warnings returns the SevWarning findings in insertion order.
func (b *Bag) Warnings() []Diagnostic { return b.bySeverity(SevWarning) }

// Infos returns the SevInfo findings in insertion order.
func (b *Bag) Infos() []Diagnostic { return b.bySeverity(SevInfo) }
