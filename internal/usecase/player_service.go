package usecase

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/suappstudio/matchday/internal/domain/player"
	"github.com/suappstudio/matchday/internal/platform/id"
	"github.com/suappstudio/matchday/internal/platform/logging"
)

const defaultListLimit = 100

type CreatePlayerInput struct {
	Name         string
	Role         player.Role
	Skills       player.Skills
	GoalsScored  int
	Assists      int
	GoldMedals   int
	SilverMedals int
	BronzeMedals int
}

// UpdatePlayerInput is a partial mutation; nil fields keep their prior
// value. Skills is all-or-nothing: when present it overwrites all nine.
type UpdatePlayerInput struct {
	Name         *string
	Role         *player.Role
	Skills       *player.Skills
	GoalsScored  *int
	Assists      *int
	GoldMedals   *int
	SilverMedals *int
	BronzeMedals *int
}

type ListPlayersInput struct {
	Skip  int
	Limit int
	Role  player.Role
}

type PlayerService struct {
	playerRepo player.Repository
	photos     PhotoStore
	ids        id.Generator
	logger     *logging.Logger
	now        func() time.Time
}

func NewPlayerService(playerRepo player.Repository, photos PhotoStore, ids id.Generator, logger *logging.Logger) *PlayerService {
	if logger == nil {
		logger = logging.Default()
	}

	return &PlayerService{
		playerRepo: playerRepo,
		photos:     photos,
		ids:        ids,
		logger:     logger,
		now:        time.Now,
	}
}

func (s *PlayerService) Create(ctx context.Context, input CreatePlayerInput) (player.Player, error) {
	input.Name = strings.TrimSpace(input.Name)

	skills := input.Skills
	if input.Role == player.RoleGoalkeeper {
		skills.Goalkeeping = player.GoalkeepingCreateDefault
	}

	now := s.now().UTC()
	p := player.Player{
		ID:           s.ids.NewID(),
		Name:         input.Name,
		Role:         input.Role,
		Skills:       skills,
		GoalsScored:  input.GoalsScored,
		Assists:      input.Assists,
		GoldMedals:   input.GoldMedals,
		SilverMedals: input.SilverMedals,
		BronzeMedals: input.BronzeMedals,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := p.Validate(); err != nil {
		return player.Player{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.playerRepo.Create(ctx, p); err != nil {
		return player.Player{}, fmt.Errorf("create player: %w", err)
	}

	return p, nil
}

func (s *PlayerService) Get(ctx context.Context, playerID string) (player.Player, error) {
	playerID = strings.TrimSpace(playerID)
	if playerID == "" {
		return player.Player{}, fmt.Errorf("%w: player id is required", ErrInvalidInput)
	}

	p, exists, err := s.playerRepo.GetByID(ctx, playerID)
	if err != nil {
		return player.Player{}, fmt.Errorf("get player by id: %w", err)
	}
	if !exists {
		return player.Player{}, fmt.Errorf("%w: player=%s", ErrNotFound, playerID)
	}

	return p, nil
}

func (s *PlayerService) List(ctx context.Context, input ListPlayersInput) ([]player.Player, error) {
	if input.Skip < 0 {
		return nil, fmt.Errorf("%w: skip cannot be negative", ErrInvalidInput)
	}
	if input.Limit < 0 {
		return nil, fmt.Errorf("%w: limit cannot be negative", ErrInvalidInput)
	}
	if input.Limit == 0 {
		input.Limit = defaultListLimit
	}
	if input.Role != "" && !input.Role.Valid() {
		return nil, fmt.Errorf("%w: invalid role %q", ErrInvalidInput, input.Role)
	}

	players, err := s.playerRepo.List(ctx, player.ListFilter{
		Offset: input.Skip,
		Limit:  input.Limit,
		Role:   input.Role,
	})
	if err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}

	return players, nil
}

func (s *PlayerService) Update(ctx context.Context, playerID string, input UpdatePlayerInput) (player.Player, error) {
	p, err := s.Get(ctx, playerID)
	if err != nil {
		return player.Player{}, err
	}

	if input.Name != nil {
		p.Name = strings.TrimSpace(*input.Name)
	}
	if input.Role != nil {
		p.Role = *input.Role
	}
	if input.Skills != nil {
		p.Skills = *input.Skills
	}
	if input.GoalsScored != nil {
		p.GoalsScored = *input.GoalsScored
	}
	if input.Assists != nil {
		p.Assists = *input.Assists
	}
	if input.GoldMedals != nil {
		p.GoldMedals = *input.GoldMedals
	}
	if input.SilverMedals != nil {
		p.SilverMedals = *input.SilverMedals
	}
	if input.BronzeMedals != nil {
		p.BronzeMedals = *input.BronzeMedals
	}
	p.UpdatedAt = s.now().UTC()

	if err := p.Validate(); err != nil {
		return player.Player{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if err := s.playerRepo.Update(ctx, p); err != nil {
		return player.Player{}, fmt.Errorf("update player: %w", err)
	}

	return p, nil
}

func (s *PlayerService) Delete(ctx context.Context, playerID string) error {
	p, err := s.Get(ctx, playerID)
	if err != nil {
		return err
	}

	if p.PhotoURL != "" {
		s.photos.Delete(ctx, p.PhotoURL)
	}

	deleted, err := s.playerRepo.Delete(ctx, p.ID)
	if err != nil {
		return fmt.Errorf("delete player: %w", err)
	}
	if !deleted {
		return fmt.Errorf("%w: player=%s", ErrNotFound, playerID)
	}

	return nil
}

// UploadPhoto stores a new profile photo for the player and returns its
// URL. A previously stored photo is released best-effort first.
func (s *PlayerService) UploadPhoto(ctx context.Context, playerID, filename string, content io.Reader) (string, error) {
	p, err := s.Get(ctx, playerID)
	if err != nil {
		return "", err
	}
	if err := ValidatePhotoFilename(filename); err != nil {
		return "", err
	}

	if p.PhotoURL != "" {
		s.photos.Delete(ctx, p.PhotoURL)
	}

	photoURL, err := s.photos.Save(ctx, p.ID, filename, content)
	if err != nil {
		return "", fmt.Errorf("save player photo: %w", err)
	}

	p.PhotoURL = photoURL
	p.UpdatedAt = s.now().UTC()
	if err := s.playerRepo.Update(ctx, p); err != nil {
		return "", fmt.Errorf("update player photo url: %w", err)
	}

	s.logger.InfoContext(ctx, "player photo stored", "player_id", p.ID, "photo_url", photoURL)

	return photoURL, nil
}
