package application

import (
	"sort"

	"listingWatcherBot/internal/domain/entity"
)

// MergedListings holds one listing per ID in first-seen order.
type MergedListings struct {
	order []string
	byID  map[string]entity.Listing
}

// Merge combines source results in priority order. The first listing seen for
// an ID wins, so passing HTML results before RSS keeps the priced copy.
func Merge(sources ...[]entity.Listing) *MergedListings {
	m := &MergedListings{byID: make(map[string]entity.Listing)}
	for _, listings := range sources {
		for _, l := range listings {
			if l.ID == "" {
				continue
			}
			if _, ok := m.byID[l.ID]; ok {
				continue
			}
			m.byID[l.ID] = l
			m.order = append(m.order, l.ID)
		}
	}
	return m
}

func (m *MergedListings) Len() int {
	return len(m.order)
}

func (m *MergedListings) Get(id string) (entity.Listing, bool) {
	l, ok := m.byID[id]
	return l, ok
}

func (m *MergedListings) Listings() []entity.Listing {
	out := make([]entity.Listing, 0, len(m.order))
	for _, id := range m.order {
		out = append(out, m.byID[id])
	}
	return out
}

// SelectNew returns merged listings whose ID is not in seen, HTML results first.
func SelectNew(merged *MergedListings, seen *entity.SeenSet) []entity.Listing {
	var fresh []entity.Listing
	for _, l := range merged.Listings() {
		if !seen.Has(l.ID) {
			fresh = append(fresh, l)
		}
	}
	sort.SliceStable(fresh, func(i, j int) bool {
		return fresh[i].Source < fresh[j].Source
	})
	return fresh
}
