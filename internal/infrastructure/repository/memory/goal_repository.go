package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/suappstudio/matchday/internal/domain/goal"
)

type GoalRepository struct {
	mu     sync.RWMutex
	items  map[int64]goal.Goal
	nextID int64
}

func NewGoalRepository() *GoalRepository {
	return &GoalRepository{
		items:  make(map[int64]goal.Goal),
		nextID: 1,
	}
}

func (r *GoalRepository) Create(_ context.Context, g goal.Goal) (goal.Goal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	g.ID = r.nextID
	r.nextID++
	r.items[g.ID] = g

	return g, nil
}

func (r *GoalRepository) GetByID(_ context.Context, id int64) (goal.Goal, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	g, ok := r.items[id]
	if !ok {
		return goal.Goal{}, false, nil
	}

	return g, true, nil
}

func (r *GoalRepository) List(_ context.Context, offset, limit int) ([]goal.Goal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := make([]goal.Goal, 0, len(r.items))
	for _, g := range r.items {
		all = append(all, g)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })

	if offset >= len(all) {
		return []goal.Goal{}, nil
	}
	all = all[offset:]
	if limit > 0 && limit < len(all) {
		all = all[:limit]
	}

	return all, nil
}

func (r *GoalRepository) ListByMatch(_ context.Context, matchID int64) ([]goal.Goal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]goal.Goal, 0)
	for _, g := range r.items {
		if g.MatchID == matchID {
			out = append(out, g)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Minute != out[j].Minute {
			return out[i].Minute < out[j].Minute
		}
		return out[i].ID < out[j].ID
	})

	return out, nil
}

func (r *GoalRepository) Delete(_ context.Context, id int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[id]; !ok {
		return false, nil
	}
	delete(r.items, id)

	return true, nil
}
