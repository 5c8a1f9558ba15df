package schedule

import (
	"sort"
	"sync"

	"github.com/Lumen-Tech-LLC/lumen/internal/model"
)

// Store is the in-memory index of placements the conflict engine evaluates
// against. The owning application loads the initial snapshot and mirrors
// every accepted mutation into it; the store itself persists nothing.
//
// List methods return copies, so a caller iterating a result is unaffected
// by concurrent Upsert/Remove calls.
type Store struct {
	mu         sync.RWMutex
	placements map[int]model.Placement
}

func NewStore() *Store {
	return &Store{placements: make(map[int]model.Placement)}
}

// Upsert inserts or replaces a placement by id. Mutation is whole-record
// replacement; there is no partial update.
func (s *Store) Upsert(p model.Placement) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.placements[p.ID] = p
}

func (s *Store) Remove(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.placements, id)
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.placements)
}

// All returns a snapshot of every placement, ordered by id.
func (s *Store) All() []model.Placement {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Placement, 0, len(s.placements))
	for _, p := range s.placements {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// ListActiveByChannelAndCategory returns a snapshot of active placements in
// the given normalized category that occupy at least one of the channels.
// The scan is linear; at hundreds to low thousands of placements per scope
// that is fine, and the signature leaves room for an index later.
func (s *Store) ListActiveByChannelAndCategory(channelIDs []int, category string) []model.Placement {
	wanted := make(map[int]struct{}, len(channelIDs))
	for _, id := range channelIDs {
		wanted[id] = struct{}{}
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []model.Placement
	for _, p := range s.placements {
		if !p.Active {
			continue
		}
		if NormalizeCategory(p.Category) != category {
			continue
		}
		if !channelsIntersect(wanted, p.ChannelIDs) {
			continue
		}
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func channelsIntersect(wanted map[int]struct{}, ids []int) bool {
	for _, id := range ids {
		if _, ok := wanted[id]; ok {
			return true
		}
	}
	return false
}
