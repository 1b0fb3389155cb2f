package bingo

// MarkSet is the set of item ids a player has marked. The zero value is an
// empty set. MarkSet values are treated as immutable; Toggle returns a new one.
type MarkSet struct {
	ids map[string]struct{}
}

// NewMarkSet returns a set holding ids.
func NewMarkSet(ids ...string) MarkSet {
	m := MarkSet{ids: make(map[string]struct{}, len(ids))}
	for _, id := range ids {
		m.ids[id] = struct{}{}
	}
	return m
}

// Has reports whether id is marked.
func (m MarkSet) Has(id string) bool {
	_, ok := m.ids[id]
	return ok
}

// Len returns the number of marked ids.
func (m MarkSet) Len() int {
	return len(m.ids)
}

// IDs returns the marked ids in card order.
func (m MarkSet) IDs(card *Card) []string {
	out := make([]string, 0, len(m.ids))
	for _, it := range card {
		if m.Has(it.ID) {
			out = append(out, it.ID)
		}
	}
	return out
}

// Equal reports whether both sets hold the same ids.
func (m MarkSet) Equal(other MarkSet) bool {
	if len(m.ids) != len(other.ids) {
		return false
	}
	for id := range m.ids {
		if !other.Has(id) {
			return false
		}
	}
	return true
}

// Toggle marks id when it is unmarked and unmarks it otherwise. id must be a
// cell of card. The returned bool is true when the toggle added a mark.
func Toggle(m MarkSet, card *Card, id string) (MarkSet, bool, error) {
	if !card.Contains(id) {
		return m, false, &UnknownCellError{ID: id}
	}

	next := MarkSet{ids: make(map[string]struct{}, len(m.ids)+1)}
	for k := range m.ids {
		next.ids[k] = struct{}{}
	}
	if _, ok := next.ids[id]; ok {
		delete(next.ids, id)
		return next, false, nil
	}
	next.ids[id] = struct{}{}
	return next, true, nil
}
