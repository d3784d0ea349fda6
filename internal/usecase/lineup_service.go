package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/suappstudio/matchday/internal/domain/lineup"
	"github.com/suappstudio/matchday/internal/domain/match"
	"github.com/suappstudio/matchday/internal/domain/player"
	"github.com/suappstudio/matchday/internal/platform/logging"
)

type LineupService struct {
	lineupRepo lineup.Repository
	matchRepo  match.Repository
	playerRepo player.Repository
	logger     *logging.Logger
}

func NewLineupService(lineupRepo lineup.Repository, matchRepo match.Repository, playerRepo player.Repository, logger *logging.Logger) *LineupService {
	if logger == nil {
		logger = logging.Default()
	}

	return &LineupService{
		lineupRepo: lineupRepo,
		matchRepo:  matchRepo,
		playerRepo: playerRepo,
		logger:     logger,
	}
}

// CreateBatch inserts the entries one by one, validating each against
// the referenced match and player. Entries inserted before a failing
// one are kept.
func (s *LineupService) CreateBatch(ctx context.Context, entries []lineup.Entry) ([]lineup.Entry, error) {
	created := make([]lineup.Entry, 0, len(entries))
	for _, e := range entries {
		if err := e.Validate(); err != nil {
			return created, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		if err := s.checkReferences(ctx, e); err != nil {
			return created, err
		}

		inserted, err := s.lineupRepo.Create(ctx, e)
		if err != nil {
			if errors.Is(err, lineup.ErrDuplicatePlayer) {
				return created, fmt.Errorf("%w: player %s already in lineup of match %d", ErrConflict, e.PlayerID, e.MatchID)
			}
			return created, fmt.Errorf("create lineup entry: %w", err)
		}
		created = append(created, inserted)
	}

	return created, nil
}

func (s *LineupService) Get(ctx context.Context, entryID int64) (lineup.Entry, error) {
	e, exists, err := s.lineupRepo.GetByID(ctx, entryID)
	if err != nil {
		return lineup.Entry{}, fmt.Errorf("get lineup entry by id: %w", err)
	}
	if !exists {
		return lineup.Entry{}, fmt.Errorf("%w: lineup entry=%d", ErrNotFound, entryID)
	}

	return e, nil
}

func (s *LineupService) List(ctx context.Context, skip, limit int) ([]lineup.Entry, error) {
	if skip < 0 {
		return nil, fmt.Errorf("%w: skip cannot be negative", ErrInvalidInput)
	}
	if limit < 0 {
		return nil, fmt.Errorf("%w: limit cannot be negative", ErrInvalidInput)
	}
	if limit == 0 {
		limit = defaultListLimit
	}

	entries, err := s.lineupRepo.List(ctx, skip, limit)
	if err != nil {
		return nil, fmt.Errorf("list lineup entries: %w", err)
	}

	return entries, nil
}

// ListByMatchDetailed returns the lineup of a match with each entry's
// player attached. A match without any entries reads as not found.
func (s *LineupService) ListByMatchDetailed(ctx context.Context, matchID int64) ([]lineup.DetailedEntry, error) {
	entries, err := s.lineupRepo.ListByMatch(ctx, matchID)
	if err != nil {
		return nil, fmt.Errorf("list lineup by match: %w", err)
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("%w: no lineup for match=%d", ErrNotFound, matchID)
	}

	detailed := make([]lineup.DetailedEntry, 0, len(entries))
	for _, e := range entries {
		p, exists, err := s.playerRepo.GetByID(ctx, e.PlayerID)
		if err != nil {
			return nil, fmt.Errorf("get lineup player: %w", err)
		}
		if !exists {
			return nil, fmt.Errorf("%w: player=%s", ErrNotFound, e.PlayerID)
		}
		detailed = append(detailed, lineup.DetailedEntry{Entry: e, Player: p})
	}

	return detailed, nil
}

// ReplaceForMatch swaps the whole lineup of a match in one shot. Every
// entry must reference the match in the URL; the swap is atomic.
func (s *LineupService) ReplaceForMatch(ctx context.Context, matchID int64, entries []lineup.Entry) ([]lineup.Entry, error) {
	exists, err := s.matchRepo.Exists(ctx, matchID)
	if err != nil {
		return nil, fmt.Errorf("check match exists: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: match=%d", ErrNotFound, matchID)
	}

	for _, e := range entries {
		if e.MatchID != matchID {
			return nil, fmt.Errorf("%w: entry references match %d instead of %d", ErrInvalidInput, e.MatchID, matchID)
		}
		if err := e.Validate(); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		if err := s.checkPlayer(ctx, e.PlayerID); err != nil {
			return nil, err
		}
	}

	replaced, err := s.lineupRepo.ReplaceForMatch(ctx, matchID, entries)
	if err != nil {
		if errors.Is(err, lineup.ErrDuplicatePlayer) {
			return nil, fmt.Errorf("%w: duplicate player in lineup of match %d", ErrConflict, matchID)
		}
		return nil, fmt.Errorf("replace lineup for match: %w", err)
	}

	return replaced, nil
}

func (s *LineupService) Delete(ctx context.Context, entryID int64) error {
	deleted, err := s.lineupRepo.Delete(ctx, entryID)
	if err != nil {
		return fmt.Errorf("delete lineup entry: %w", err)
	}
	if !deleted {
		return fmt.Errorf("%w: lineup entry=%d", ErrNotFound, entryID)
	}

	return nil
}

func (s *LineupService) checkReferences(ctx context.Context, e lineup.Entry) error {
	exists, err := s.matchRepo.Exists(ctx, e.MatchID)
	if err != nil {
		return fmt.Errorf("check match exists: %w", err)
	}
	if !exists {
		return fmt.Errorf("%w: match=%d", ErrNotFound, e.MatchID)
	}

	return s.checkPlayer(ctx, e.PlayerID)
}

func (s *LineupService) checkPlayer(ctx context.Context, playerID string) error {
	_, exists, err := s.playerRepo.GetByID(ctx, playerID)
	if err != nil {
		return fmt.Errorf("check player exists: %w", err)
	}
	if !exists {
		return fmt.Errorf("%w: player=%s", ErrNotFound, playerID)
	}

	return nil
}
