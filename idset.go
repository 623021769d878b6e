package shorts

// IDSet is an insertion-ordered set of item identifiers.
// The zero value is ready to use. IDSet is not safe for concurrent use.
type IDSet struct {
	ids  []string
	seen map[string]struct{}
}

// Add inserts id if it has not been seen before.
// Returns false for duplicates; the first occurrence keeps its position.
func (s *IDSet) Add(id string) bool {
	if s.seen == nil {
		s.seen = make(map[string]struct{})
	}
	if _, ok := s.seen[id]; ok {
		return false
	}
	s.seen[id] = struct{}{}
	s.ids = append(s.ids, id)
	return true
}

// Contains reports whether id has been added.
func (s *IDSet) Contains(id string) bool {
	_, ok := s.seen[id]
	return ok
}

// Len returns the number of distinct identifiers.
func (s *IDSet) Len() int {
	return len(s.ids)
}

// IDs returns the identifiers in first-seen order. Never nil.
func (s *IDSet) IDs() []string {
	out := make([]string, len(s.ids))
	copy(out, s.ids)
	return out
}
