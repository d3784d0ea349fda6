package usecase

import (
	"context"
	"fmt"

	"github.com/suappstudio/matchday/internal/domain/match"
	"github.com/suappstudio/matchday/internal/platform/logging"
)

type MatchService struct {
	matchRepo match.Repository
	logger    *logging.Logger
}

func NewMatchService(matchRepo match.Repository, logger *logging.Logger) *MatchService {
	if logger == nil {
		logger = logging.Default()
	}

	return &MatchService{matchRepo: matchRepo, logger: logger}
}

func (s *MatchService) Create(ctx context.Context, m match.Match) (match.Match, error) {
	if err := m.Validate(); err != nil {
		return match.Match{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	created, err := s.matchRepo.Create(ctx, m)
	if err != nil {
		return match.Match{}, fmt.Errorf("create match: %w", err)
	}

	return created, nil
}

func (s *MatchService) Get(ctx context.Context, matchID int64) (match.Match, error) {
	m, exists, err := s.matchRepo.GetByID(ctx, matchID)
	if err != nil {
		return match.Match{}, fmt.Errorf("get match by id: %w", err)
	}
	if !exists {
		return match.Match{}, fmt.Errorf("%w: match=%d", ErrNotFound, matchID)
	}

	return m, nil
}

func (s *MatchService) List(ctx context.Context, skip, limit int) ([]match.Match, error) {
	if skip < 0 {
		return nil, fmt.Errorf("%w: skip cannot be negative", ErrInvalidInput)
	}
	if limit < 0 {
		return nil, fmt.Errorf("%w: limit cannot be negative", ErrInvalidInput)
	}
	if limit == 0 {
		limit = defaultListLimit
	}

	matches, err := s.matchRepo.List(ctx, skip, limit)
	if err != nil {
		return nil, fmt.Errorf("list matches: %w", err)
	}

	return matches, nil
}

func (s *MatchService) Update(ctx context.Context, matchID int64, input match.Update) (match.Match, error) {
	m, err := s.Get(ctx, matchID)
	if err != nil {
		return match.Match{}, err
	}

	updated := input.Apply(m)
	if err := updated.Validate(); err != nil {
		return match.Match{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if err := s.matchRepo.Update(ctx, updated); err != nil {
		return match.Match{}, fmt.Errorf("update match: %w", err)
	}

	return updated, nil
}

func (s *MatchService) Delete(ctx context.Context, matchID int64) error {
	deleted, err := s.matchRepo.Delete(ctx, matchID)
	if err != nil {
		return fmt.Errorf("delete match: %w", err)
	}
	if !deleted {
		return fmt.Errorf("%w: match=%d", ErrNotFound, matchID)
	}

	return nil
}
