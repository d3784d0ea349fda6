package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/suappstudio/matchday/internal/domain/match"
)

type MatchRepository struct {
	mu     sync.RWMutex
	items  map[int64]match.Match
	nextID int64
}

func NewMatchRepository() *MatchRepository {
	return &MatchRepository{
		items:  make(map[int64]match.Match),
		nextID: 1,
	}
}

func (r *MatchRepository) Create(_ context.Context, m match.Match) (match.Match, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	m.ID = r.nextID
	r.nextID++
	r.items[m.ID] = m

	return m, nil
}

func (r *MatchRepository) GetByID(_ context.Context, id int64) (match.Match, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	m, ok := r.items[id]
	if !ok {
		return match.Match{}, false, nil
	}

	return m, true, nil
}

func (r *MatchRepository) List(_ context.Context, offset, limit int) ([]match.Match, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := make([]match.Match, 0, len(r.items))
	for _, m := range r.items {
		all = append(all, m)
	}
	sort.Slice(all, func(i, j int) bool {
		if !all[i].Date.Equal(all[j].Date) {
			return all[i].Date.After(all[j].Date)
		}
		return all[i].ID > all[j].ID
	})

	if offset >= len(all) {
		return []match.Match{}, nil
	}
	all = all[offset:]
	if limit > 0 && limit < len(all) {
		all = all[:limit]
	}

	return all, nil
}

func (r *MatchRepository) Update(_ context.Context, m match.Match) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[m.ID]; ok {
		r.items[m.ID] = m
	}

	return nil
}

func (r *MatchRepository) Delete(_ context.Context, id int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[id]; !ok {
		return false, nil
	}
	delete(r.items, id)

	return true, nil
}

func (r *MatchRepository) Exists(_ context.Context, id int64) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.items[id]
	return ok, nil
}
