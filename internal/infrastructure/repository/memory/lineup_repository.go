package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/suappstudio/matchday/internal/domain/lineup"
)

type LineupRepository struct {
	mu     sync.RWMutex
	items  map[int64]lineup.Entry
	nextID int64
}

func NewLineupRepository() *LineupRepository {
	return &LineupRepository{
		items:  make(map[int64]lineup.Entry),
		nextID: 1,
	}
}

func (r *LineupRepository) Create(_ context.Context, e lineup.Entry) (lineup.Entry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.items {
		if existing.MatchID == e.MatchID && existing.PlayerID == e.PlayerID {
			return lineup.Entry{}, lineup.ErrDuplicatePlayer
		}
	}

	e.ID = r.nextID
	r.nextID++
	r.items[e.ID] = e

	return e, nil
}

func (r *LineupRepository) GetByID(_ context.Context, id int64) (lineup.Entry, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.items[id]
	if !ok {
		return lineup.Entry{}, false, nil
	}

	return e, true, nil
}

func (r *LineupRepository) List(_ context.Context, offset, limit int) ([]lineup.Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := make([]lineup.Entry, 0, len(r.items))
	for _, e := range r.items {
		all = append(all, e)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })

	if offset >= len(all) {
		return []lineup.Entry{}, nil
	}
	all = all[offset:]
	if limit > 0 && limit < len(all) {
		all = all[:limit]
	}

	return all, nil
}

func (r *LineupRepository) ListByMatch(_ context.Context, matchID int64) ([]lineup.Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]lineup.Entry, 0)
	for _, e := range r.items {
		if e.MatchID == matchID {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Side != out[j].Side {
			return out[i].Side < out[j].Side
		}
		return out[i].ID < out[j].ID
	})

	return out, nil
}

func (r *LineupRepository) Delete(_ context.Context, id int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[id]; !ok {
		return false, nil
	}
	delete(r.items, id)

	return true, nil
}

func (r *LineupRepository) ReplaceForMatch(_ context.Context, matchID int64, entries []lineup.Entry) ([]lineup.Entry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	seen := make(map[string]struct{}, len(entries))
	for _, e := range entries {
		if _, dup := seen[e.PlayerID]; dup {
			return nil, lineup.ErrDuplicatePlayer
		}
		seen[e.PlayerID] = struct{}{}
	}

	for id, e := range r.items {
		if e.MatchID == matchID {
			delete(r.items, id)
		}
	}

	out := make([]lineup.Entry, 0, len(entries))
	for _, e := range entries {
		e.ID = r.nextID
		r.nextID++
		r.items[e.ID] = e
		out = append(out, e)
	}

	return out, nil
}
