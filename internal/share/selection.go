// Package share models the sharing flow of the simulation detail view:
// friend selection, dialog open/close lifecycle, and the guarded share and
// invite submissions.
package share

// SelectionSet is a toggle-based set of friend ids. Iteration follows
// insertion order so selections render deterministically.
type SelectionSet struct {
	members map[string]struct{}
	order   []string
}

// NewSelectionSet creates an empty selection set.
func NewSelectionSet() *SelectionSet {
	return &SelectionSet{members: make(map[string]struct{})}
}

// Toggle removes id when present and adds it otherwise.
func (s *SelectionSet) Toggle(id string) {
	if s.members == nil {
		s.members = make(map[string]struct{})
	}
	if _, ok := s.members[id]; ok {
		delete(s.members, id)
		for i, v := range s.order {
			if v == id {
				s.order = append(s.order[:i], s.order[i+1:]...)
				break
			}
		}
		return
	}
	s.members[id] = struct{}{}
	s.order = append(s.order, id)
}

// IsSelected reports whether id is a member.
func (s *SelectionSet) IsSelected(id string) bool {
	_, ok := s.members[id]
	return ok
}

// Clear empties the set.
func (s *SelectionSet) Clear() {
	s.members = make(map[string]struct{})
	s.order = nil
}

// Len returns the number of members.
func (s *SelectionSet) Len() int {
	return len(s.order)
}

// IDs returns the members in the order they were selected.
func (s *SelectionSet) IDs() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}
