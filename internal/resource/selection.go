package resource

import "sort"

// Selection tracks the identifiers marked for a pending bulk action.
// Callers must keep it a subset of the visible identifiers by calling
// Prune whenever the visible set changes; Controller does this
// automatically.
type Selection struct {
	ids map[ID]struct{}
}

// NewSelection returns an empty selection.
func NewSelection() *Selection {
	return &Selection{ids: make(map[ID]struct{})}
}

// Toggle flips membership of id.
func (s *Selection) Toggle(id ID) {
	if _, ok := s.ids[id]; ok {
		delete(s.ids, id)
		return
	}
	s.ids[id] = struct{}{}
}

// Has reports whether id is selected.
func (s *Selection) Has(id ID) bool {
	_, ok := s.ids[id]
	return ok
}

// Count returns the number of selected identifiers.
func (s *Selection) Count() int { return len(s.ids) }

// IDs returns the selected identifiers in ascending order, so batched
// requests are deterministic.
func (s *Selection) IDs() []ID {
	out := make([]ID, 0, len(s.ids))
	for id := range s.ids {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Clear empties the selection.
func (s *Selection) Clear() {
	s.ids = make(map[ID]struct{})
}

// ToggleAll selects exactly the visible set, or clears the selection when
// the visible set is already fully selected. It never touches records
// hidden by the current filter.
func (s *Selection) ToggleAll(visible []ID) {
	if len(visible) > 0 && s.covers(visible) {
		s.Clear()
		return
	}
	s.Clear()
	for _, id := range visible {
		s.ids[id] = struct{}{}
	}
}

// Remove drops the given identifiers from the selection.
func (s *Selection) Remove(ids ...ID) {
	for _, id := range ids {
		delete(s.ids, id)
	}
}

// Prune drops every selected identifier not present in visible.
func (s *Selection) Prune(visible []ID) {
	keep := make(map[ID]struct{}, len(visible))
	for _, id := range visible {
		keep[id] = struct{}{}
	}
	for id := range s.ids {
		if _, ok := keep[id]; !ok {
			delete(s.ids, id)
		}
	}
}

func (s *Selection) covers(visible []ID) bool {
	for _, id := range visible {
		if _, ok := s.ids[id]; !ok {
			return false
		}
	}
	return true
}
