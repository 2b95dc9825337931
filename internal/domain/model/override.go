package model

// Override is one hand-maintained entry of an override table. Zero values
// mean "not set": empty strings and nil slices fall through to the next
// source, and Featured/Order are pointers so false and 0 remain expressible.
type Override struct {
	ID           string
	Title        string
	Description  string
	Category     Category
	Image        string
	LiveURL      string
	SourceURL    string
	Technologies []string
	Featured     *bool
	Order        *int
}

// OverrideTable is an immutable, ordered set of overrides keyed by project ID.
type OverrideTable struct {
	ids     []string
	entries map[string]Override
}

// NewOverrideTable builds a table from entries in declaration order. When an
// ID repeats, the first entry is kept.
func NewOverrideTable(entries []Override) OverrideTable {
	t := OverrideTable{
		ids:     make([]string, 0, len(entries)),
		entries: make(map[string]Override, len(entries)),
	}
	for _, e := range entries {
		if _, dup := t.entries[e.ID]; dup {
			continue
		}
		t.ids = append(t.ids, e.ID)
		t.entries[e.ID] = e
	}
	return t
}

// Lookup returns the override for id, if any.
func (t OverrideTable) Lookup(id string) (Override, bool) {
	o, ok := t.entries[id]
	return o, ok
}

// IDs returns the table's identifiers in declaration order.
func (t OverrideTable) IDs() []string {
	out := make([]string, len(t.ids))
	copy(out, t.ids)
	return out
}

// Len returns the number of entries.
func (t OverrideTable) Len() int {
	return len(t.ids)
}
