package memory

import (
	"context"
	"sync"

	"github.com/suappstudio/matchday/internal/domain/player"
)

type PlayerRepository struct {
	mu     sync.RWMutex
	items  map[string]player.Player
	orders []string
}

func NewPlayerRepository() *PlayerRepository {
	return &PlayerRepository{
		items: make(map[string]player.Player),
	}
}

func (r *PlayerRepository) Create(_ context.Context, p player.Player) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[p.ID]; !ok {
		r.orders = append(r.orders, p.ID)
	}
	r.items[p.ID] = p

	return nil
}

func (r *PlayerRepository) GetByID(_ context.Context, id string) (player.Player, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.items[id]
	if !ok {
		return player.Player{}, false, nil
	}

	return p, true, nil
}

func (r *PlayerRepository) List(_ context.Context, filter player.ListFilter) ([]player.Player, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := make([]player.Player, 0, len(r.orders))
	for _, id := range r.orders {
		p := r.items[id]
		if filter.Role != "" && p.Role != filter.Role {
			continue
		}
		matched = append(matched, p)
	}

	if filter.Offset >= len(matched) {
		return []player.Player{}, nil
	}
	matched = matched[filter.Offset:]
	if filter.Limit > 0 && filter.Limit < len(matched) {
		matched = matched[:filter.Limit]
	}

	return matched, nil
}

func (r *PlayerRepository) Update(_ context.Context, p player.Player) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[p.ID]; ok {
		r.items[p.ID] = p
	}

	return nil
}

func (r *PlayerRepository) Delete(_ context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[id]; !ok {
		return false, nil
	}
	delete(r.items, id)
	for i, existing := range r.orders {
		if existing == id {
			r.orders = append(r.orders[:i], r.orders[i+1:]...)
			break
		}
	}

	return true, nil
}

func (r *PlayerRepository) Count(_ context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.items), nil
}

func (r *PlayerRepository) CountByRole(_ context.Context) (map[player.Role]int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(map[player.Role]int)
	for _, p := range r.items {
		out[p.Role]++
	}

	return out, nil
}

func (r *PlayerRepository) AverageSkills(_ context.Context) (player.SkillAverages, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if len(r.items) == 0 {
		return player.SkillAverages{}, false, nil
	}

	var sums player.SkillAverages
	for _, p := range r.items {
		sums.Speed += float64(p.Skills.Speed)
		sums.Passing += float64(p.Skills.Passing)
		sums.Attack += float64(p.Skills.Attack)
		sums.Defense += float64(p.Skills.Defense)
		sums.Technique += float64(p.Skills.Technique)
		sums.Goalkeeping += float64(p.Skills.Goalkeeping)
		sums.Heading += float64(p.Skills.Heading)
		sums.Stamina += float64(p.Skills.Stamina)
		sums.Leadership += float64(p.Skills.Leadership)
	}

	n := float64(len(r.items))
	return player.SkillAverages{
		Speed:       sums.Speed / n,
		Passing:     sums.Passing / n,
		Attack:      sums.Attack / n,
		Defense:     sums.Defense / n,
		Technique:   sums.Technique / n,
		Goalkeeping: sums.Goalkeeping / n,
		Heading:     sums.Heading / n,
		Stamina:     sums.Stamina / n,
		Leadership:  sums.Leadership / n,
	}, true, nil
}
