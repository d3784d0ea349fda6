package usecase

import (
	"context"
	"fmt"

	"github.com/sourcegraph/conc/pool"

	"github.com/suappstudio/matchday/internal/domain/player"
)

type SkillStatistics struct {
	Goalkeeping float64
	Defense     float64
	Speed       float64
	Stamina     float64
	Attack      float64
	Technique   float64
	Passing     float64
	Heading     float64
	Leadership  float64
}

type Statistics struct {
	TotalPlayers  int
	PlayersByRole map[player.Role]int
	SkillAverages SkillStatistics
}

// Statistics aggregates squad-wide numbers. The three underlying queries
// are independent, so they run concurrently.
func (s *PlayerService) Statistics(ctx context.Context) (Statistics, error) {
	var (
		total    int
		byRole   map[player.Role]int
		averages player.SkillAverages
		anyData  bool
	)

	p := pool.New().WithContext(ctx).WithCancelOnError()
	p.Go(func(ctx context.Context) error {
		var err error
		total, err = s.playerRepo.Count(ctx)
		if err != nil {
			return fmt.Errorf("count players: %w", err)
		}
		return nil
	})
	p.Go(func(ctx context.Context) error {
		var err error
		byRole, err = s.playerRepo.CountByRole(ctx)
		if err != nil {
			return fmt.Errorf("count players by role: %w", err)
		}
		return nil
	})
	p.Go(func(ctx context.Context) error {
		var err error
		averages, anyData, err = s.playerRepo.AverageSkills(ctx)
		if err != nil {
			return fmt.Errorf("average player skills: %w", err)
		}
		return nil
	})
	if err := p.Wait(); err != nil {
		return Statistics{}, err
	}

	stats := Statistics{
		TotalPlayers:  total,
		PlayersByRole: byRole,
	}
	if anyData {
		stats.SkillAverages = SkillStatistics{
			Goalkeeping: averages.Goalkeeping,
			Defense:     averages.Defense,
			Speed:       averages.Speed,
			Stamina:     averages.Stamina,
			Attack:      averages.Attack,
			Technique:   averages.Technique,
			Passing:     averages.Passing,
			Heading:     averages.Heading,
			Leadership:  averages.Leadership,
		}
	}

	return stats, nil
}
