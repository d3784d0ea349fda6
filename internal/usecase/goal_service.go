package usecase

import (
	"context"
	"fmt"

	"github.com/suappstudio/matchday/internal/domain/goal"
	"github.com/suappstudio/matchday/internal/domain/match"
	"github.com/suappstudio/matchday/internal/domain/player"
	"github.com/suappstudio/matchday/internal/platform/logging"
)

type GoalService struct {
	goalRepo   goal.Repository
	matchRepo  match.Repository
	playerRepo player.Repository
	logger     *logging.Logger
}

func NewGoalService(goalRepo goal.Repository, matchRepo match.Repository, playerRepo player.Repository, logger *logging.Logger) *GoalService {
	if logger == nil {
		logger = logging.Default()
	}

	return &GoalService{
		goalRepo:   goalRepo,
		matchRepo:  matchRepo,
		playerRepo: playerRepo,
		logger:     logger,
	}
}

func (s *GoalService) Create(ctx context.Context, g goal.Goal) (goal.Goal, error) {
	if err := g.Validate(); err != nil {
		return goal.Goal{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	exists, err := s.matchRepo.Exists(ctx, g.MatchID)
	if err != nil {
		return goal.Goal{}, fmt.Errorf("check match exists: %w", err)
	}
	if !exists {
		return goal.Goal{}, fmt.Errorf("%w: match=%d", ErrNotFound, g.MatchID)
	}

	if err := s.checkPlayer(ctx, g.PlayerID); err != nil {
		return goal.Goal{}, err
	}
	if g.AssistPlayerID != nil {
		if err := s.checkPlayer(ctx, *g.AssistPlayerID); err != nil {
			return goal.Goal{}, err
		}
	}

	created, err := s.goalRepo.Create(ctx, g)
	if err != nil {
		return goal.Goal{}, fmt.Errorf("create goal: %w", err)
	}

	return created, nil
}

func (s *GoalService) Get(ctx context.Context, goalID int64) (goal.Goal, error) {
	g, exists, err := s.goalRepo.GetByID(ctx, goalID)
	if err != nil {
		return goal.Goal{}, fmt.Errorf("get goal by id: %w", err)
	}
	if !exists {
		return goal.Goal{}, fmt.Errorf("%w: goal=%d", ErrNotFound, goalID)
	}

	return g, nil
}

func (s *GoalService) List(ctx context.Context, skip, limit int) ([]goal.Goal, error) {
	if skip < 0 {
		return nil, fmt.Errorf("%w: skip cannot be negative", ErrInvalidInput)
	}
	if limit < 0 {
		return nil, fmt.Errorf("%w: limit cannot be negative", ErrInvalidInput)
	}
	if limit == 0 {
		limit = defaultListLimit
	}

	goals, err := s.goalRepo.List(ctx, skip, limit)
	if err != nil {
		return nil, fmt.Errorf("list goals: %w", err)
	}

	return goals, nil
}

// ListByMatch requires the match to exist; an existing match with no
// goals yields an empty list.
func (s *GoalService) ListByMatch(ctx context.Context, matchID int64) ([]goal.Goal, error) {
	exists, err := s.matchRepo.Exists(ctx, matchID)
	if err != nil {
		return nil, fmt.Errorf("check match exists: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: match=%d", ErrNotFound, matchID)
	}

	goals, err := s.goalRepo.ListByMatch(ctx, matchID)
	if err != nil {
		return nil, fmt.Errorf("list goals by match: %w", err)
	}

	return goals, nil
}

func (s *GoalService) Delete(ctx context.Context, goalID int64) error {
	deleted, err := s.goalRepo.Delete(ctx, goalID)
	if err != nil {
		return fmt.Errorf("delete goal: %w", err)
	}
	if !deleted {
		return fmt.Errorf("%w: goal=%d", ErrNotFound, goalID)
	}

	return nil
}

func (s *GoalService) checkPlayer(ctx context.Context, playerID string) error {
	_, exists, err := s.playerRepo.GetByID(ctx, playerID)
	if err != nil {
		return fmt.Errorf("check player exists: %w", err)
	}
	if !exists {
		return fmt.Errorf("%w: player=%s", ErrNotFound, playerID)
	}

	return nil
}
