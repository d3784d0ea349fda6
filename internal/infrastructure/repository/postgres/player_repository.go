package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/suappstudio/matchday/internal/domain/player"
	qb "github.com/suappstudio/matchday/internal/platform/querybuilder"
)

type PlayerRepository struct {
	db *sqlx.DB
}

var playerSelectColumns = []string{
	"id",
	"name",
	"role",
	"photo_url",
	"speed",
	"passing",
	"attack",
	"defense",
	"technique",
	"goalkeeping",
	"heading",
	"stamina",
	"leadership",
	"goals_scored",
	"assists",
	"gold_medals",
	"silver_medals",
	"bronze_medals",
	"created_at",
	"updated_at",
}

var playerInsertColumns = []string{
	"id",
	"name",
	"role",
	"photo_url",
	"speed",
	"passing",
	"attack",
	"defense",
	"technique",
	"goalkeeping",
	"heading",
	"stamina",
	"leadership",
	"goals_scored",
	"assists",
	"gold_medals",
	"silver_medals",
	"bronze_medals",
	"created_at",
	"updated_at",
}

func NewPlayerRepository(db *sqlx.DB) *PlayerRepository {
	return &PlayerRepository{db: db}
}

func (r *PlayerRepository) Create(ctx context.Context, p player.Player) error {
	query, args, err := qb.InsertInto("players").
		Columns(playerInsertColumns...).
		Values(
			p.ID,
			p.Name,
			string(p.Role),
			nullString(p.PhotoURL),
			p.Skills.Speed,
			p.Skills.Passing,
			p.Skills.Attack,
			p.Skills.Defense,
			p.Skills.Technique,
			p.Skills.Goalkeeping,
			p.Skills.Heading,
			p.Skills.Stamina,
			p.Skills.Leadership,
			p.GoalsScored,
			p.Assists,
			p.GoldMedals,
			p.SilverMedals,
			p.BronzeMedals,
			p.CreatedAt,
			p.UpdatedAt,
		).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build insert player query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert player: %w", err)
	}

	return nil
}

func (r *PlayerRepository) GetByID(ctx context.Context, id string) (player.Player, bool, error) {
	query, args, err := qb.Select(playerSelectColumns...).From("players").
		Where(qb.Eq("id", id)).
		ToSQL()
	if err != nil {
		return player.Player{}, false, fmt.Errorf("build get player query: %w", err)
	}

	var row playerTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return player.Player{}, false, nil
		}
		return player.Player{}, false, fmt.Errorf("get player: %w", err)
	}

	return playerFromRow(row), true, nil
}

func (r *PlayerRepository) List(ctx context.Context, filter player.ListFilter) ([]player.Player, error) {
	builder := qb.Select(playerSelectColumns...).From("players")
	if filter.Role != "" {
		builder = builder.Where(qb.Eq("role", string(filter.Role)))
	}
	query, args, err := builder.
		OrderBy("created_at", "id").
		Limit(filter.Limit).
		Offset(filter.Offset).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list players query: %w", err)
	}

	var rows []playerTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}

	out := make([]player.Player, 0, len(rows))
	for _, row := range rows {
		out = append(out, playerFromRow(row))
	}

	return out, nil
}

func (r *PlayerRepository) Update(ctx context.Context, p player.Player) error {
	query, args, err := qb.Update("players").
		Set("name", p.Name).
		Set("role", string(p.Role)).
		Set("photo_url", nullString(p.PhotoURL)).
		Set("speed", p.Skills.Speed).
		Set("passing", p.Skills.Passing).
		Set("attack", p.Skills.Attack).
		Set("defense", p.Skills.Defense).
		Set("technique", p.Skills.Technique).
		Set("goalkeeping", p.Skills.Goalkeeping).
		Set("heading", p.Skills.Heading).
		Set("stamina", p.Skills.Stamina).
		Set("leadership", p.Skills.Leadership).
		Set("goals_scored", p.GoalsScored).
		Set("assists", p.Assists).
		Set("gold_medals", p.GoldMedals).
		Set("silver_medals", p.SilverMedals).
		Set("bronze_medals", p.BronzeMedals).
		Set("updated_at", p.UpdatedAt).
		Where(qb.Eq("id", p.ID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build update player query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("update player: %w", err)
	}

	return nil
}

func (r *PlayerRepository) Delete(ctx context.Context, id string) (bool, error) {
	query, args, err := qb.DeleteFrom("players").
		Where(qb.Eq("id", id)).
		ToSQL()
	if err != nil {
		return false, fmt.Errorf("build delete player query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("delete player: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete player rows affected: %w", err)
	}

	return affected > 0, nil
}

func (r *PlayerRepository) Count(ctx context.Context) (int, error) {
	query, args, err := qb.Select("COUNT(*)").From("players").ToSQL()
	if err != nil {
		return 0, fmt.Errorf("build count players query: %w", err)
	}

	var count int
	if err := r.db.GetContext(ctx, &count, query, args...); err != nil {
		return 0, fmt.Errorf("count players: %w", err)
	}

	return count, nil
}

func (r *PlayerRepository) CountByRole(ctx context.Context) (map[player.Role]int, error) {
	query, args, err := qb.Select("role", "COUNT(*) AS total").From("players").
		GroupBy("role").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build count players by role query: %w", err)
	}

	var rows []struct {
		Role  string `db:"role"`
		Total int    `db:"total"`
	}
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("count players by role: %w", err)
	}

	out := make(map[player.Role]int, len(rows))
	for _, row := range rows {
		out[player.Role(row.Role)] = row.Total
	}

	return out, nil
}

func (r *PlayerRepository) AverageSkills(ctx context.Context) (player.SkillAverages, bool, error) {
	query, args, err := qb.Select(
		"AVG(speed) AS speed",
		"AVG(passing) AS passing",
		"AVG(attack) AS attack",
		"AVG(defense) AS defense",
		"AVG(technique) AS technique",
		"AVG(goalkeeping) AS goalkeeping",
		"AVG(heading) AS heading",
		"AVG(stamina) AS stamina",
		"AVG(leadership) AS leadership",
	).From("players").ToSQL()
	if err != nil {
		return player.SkillAverages{}, false, fmt.Errorf("build average skills query: %w", err)
	}

	var row struct {
		Speed       *float64 `db:"speed"`
		Passing     *float64 `db:"passing"`
		Attack      *float64 `db:"attack"`
		Defense     *float64 `db:"defense"`
		Technique   *float64 `db:"technique"`
		Goalkeeping *float64 `db:"goalkeeping"`
		Heading     *float64 `db:"heading"`
		Stamina     *float64 `db:"stamina"`
		Leadership  *float64 `db:"leadership"`
	}
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		return player.SkillAverages{}, false, fmt.Errorf("average player skills: %w", err)
	}
	// AVG over an empty table yields NULLs.
	if row.Speed == nil {
		return player.SkillAverages{}, false, nil
	}

	return player.SkillAverages{
		Speed:       *row.Speed,
		Passing:     *row.Passing,
		Attack:      *row.Attack,
		Defense:     *row.Defense,
		Technique:   *row.Technique,
		Goalkeeping: *row.Goalkeeping,
		Heading:     *row.Heading,
		Stamina:     *row.Stamina,
		Leadership:  *row.Leadership,
	}, true, nil
}
