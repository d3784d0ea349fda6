package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/suappstudio/matchday/internal/domain/match"
	qb "github.com/suappstudio/matchday/internal/platform/querybuilder"
)

type MatchRepository struct {
	db *sqlx.DB
}

var matchSelectColumns = []string{
	"id",
	"data_partita",
	"ora_inizio",
	"nome_squadra_a",
	"nome_squadra_b",
	"gol_squadra_a",
	"gol_squadra_b",
	"stadio",
	"arbitro",
	"note",
	"numero_giocatori_squadra",
}

func NewMatchRepository(db *sqlx.DB) *MatchRepository {
	return &MatchRepository{db: db}
}

func (r *MatchRepository) Create(ctx context.Context, m match.Match) (match.Match, error) {
	query, args, err := qb.InsertInto("partite").
		Columns(
			"data_partita",
			"ora_inizio",
			"nome_squadra_a",
			"nome_squadra_b",
			"gol_squadra_a",
			"gol_squadra_b",
			"stadio",
			"arbitro",
			"note",
			"numero_giocatori_squadra",
		).
		Values(
			m.Date,
			nullString(m.KickoffTime),
			m.TeamAName,
			m.TeamBName,
			m.TeamAGoals,
			m.TeamBGoals,
			nullString(m.Venue),
			nullString(m.Referee),
			nullString(m.Notes),
			nullInt(m.SquadSize),
		).
		Suffix("RETURNING id").
		ToSQL()
	if err != nil {
		return match.Match{}, fmt.Errorf("build insert match query: %w", err)
	}

	if err := r.db.GetContext(ctx, &m.ID, query, args...); err != nil {
		return match.Match{}, fmt.Errorf("insert match: %w", err)
	}

	return m, nil
}

func (r *MatchRepository) GetByID(ctx context.Context, id int64) (match.Match, bool, error) {
	query, args, err := qb.Select(matchSelectColumns...).From("partite").
		Where(qb.Eq("id", id)).
		ToSQL()
	if err != nil {
		return match.Match{}, false, fmt.Errorf("build get match query: %w", err)
	}

	var row matchTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return match.Match{}, false, nil
		}
		return match.Match{}, false, fmt.Errorf("get match: %w", err)
	}

	return matchFromRow(row), true, nil
}

func (r *MatchRepository) List(ctx context.Context, offset, limit int) ([]match.Match, error) {
	query, args, err := qb.Select(matchSelectColumns...).From("partite").
		OrderBy("data_partita DESC", "id DESC").
		Limit(limit).
		Offset(offset).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list matches query: %w", err)
	}

	var rows []matchTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list matches: %w", err)
	}

	out := make([]match.Match, 0, len(rows))
	for _, row := range rows {
		out = append(out, matchFromRow(row))
	}

	return out, nil
}

func (r *MatchRepository) Update(ctx context.Context, m match.Match) error {
	query, args, err := qb.Update("partite").
		Set("data_partita", m.Date).
		Set("ora_inizio", nullString(m.KickoffTime)).
		Set("nome_squadra_a", m.TeamAName).
		Set("nome_squadra_b", m.TeamBName).
		Set("gol_squadra_a", m.TeamAGoals).
		Set("gol_squadra_b", m.TeamBGoals).
		Set("stadio", nullString(m.Venue)).
		Set("arbitro", nullString(m.Referee)).
		Set("note", nullString(m.Notes)).
		Set("numero_giocatori_squadra", nullInt(m.SquadSize)).
		Where(qb.Eq("id", m.ID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build update match query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("update match: %w", err)
	}

	return nil
}

func (r *MatchRepository) Delete(ctx context.Context, id int64) (bool, error) {
	query, args, err := qb.DeleteFrom("partite").
		Where(qb.Eq("id", id)).
		ToSQL()
	if err != nil {
		return false, fmt.Errorf("build delete match query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("delete match: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete match rows affected: %w", err)
	}

	return affected > 0, nil
}

func (r *MatchRepository) Exists(ctx context.Context, id int64) (bool, error) {
	query, args, err := qb.Select("COUNT(*)").From("partite").
		Where(qb.Eq("id", id)).
		ToSQL()
	if err != nil {
		return false, fmt.Errorf("build match exists query: %w", err)
	}

	var count int
	if err := r.db.GetContext(ctx, &count, query, args...); err != nil {
		return false, fmt.Errorf("check match exists: %w", err)
	}

	return count > 0, nil
}
