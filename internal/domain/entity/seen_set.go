package entity

// SeenSet is the set of listing IDs that have already been notified.
// IDs keep insertion order so a capped set can evict the oldest first.
type SeenSet struct {
	order []string
	index map[string]struct{}
}

func NewSeenSet(ids ...string) *SeenSet {
	s := &SeenSet{index: make(map[string]struct{}, len(ids))}
	for _, id := range ids {
		s.Add(id)
	}
	return s
}

func (s *SeenSet) Has(id string) bool {
	_, ok := s.index[id]
	return ok
}

// Add reports whether id was not already present.
func (s *SeenSet) Add(id string) bool {
	if id == "" || s.Has(id) {
		return false
	}
	s.index[id] = struct{}{}
	s.order = append(s.order, id)
	return true
}

func (s *SeenSet) Len() int {
	return len(s.order)
}

func (s *SeenSet) IDs() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

// Trim evicts the oldest IDs until at most max remain. max <= 0 means unbounded.
func (s *SeenSet) Trim(max int) int {
	if max <= 0 || len(s.order) <= max {
		return 0
	}
	n := len(s.order) - max
	for _, id := range s.order[:n] {
		delete(s.index, id)
	}
	s.order = append([]string(nil), s.order[n:]...)
	return n
}
