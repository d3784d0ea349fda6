package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/suappstudio/matchday/internal/domain/lineup"
	qb "github.com/suappstudio/matchday/internal/platform/querybuilder"
)

type LineupRepository struct {
	db *sqlx.DB
}

var lineupSelectColumns = []string{
	"id",
	"partita_id",
	"giocatore_id",
	"squadra",
	"numero_maglia",
	"capitano",
}

func NewLineupRepository(db *sqlx.DB) *LineupRepository {
	return &LineupRepository{db: db}
}

func (r *LineupRepository) Create(ctx context.Context, e lineup.Entry) (lineup.Entry, error) {
	query, args, err := qb.InsertInto("formazioni").
		Columns("partita_id", "giocatore_id", "squadra", "numero_maglia", "capitano").
		Values(e.MatchID, e.PlayerID, string(e.Side), nullInt(e.ShirtNumber), e.Captain).
		Suffix("RETURNING id").
		ToSQL()
	if err != nil {
		return lineup.Entry{}, fmt.Errorf("build insert lineup entry query: %w", err)
	}

	if err := r.db.GetContext(ctx, &e.ID, query, args...); err != nil {
		if isUniqueViolation(err) {
			return lineup.Entry{}, lineup.ErrDuplicatePlayer
		}
		return lineup.Entry{}, fmt.Errorf("insert lineup entry: %w", err)
	}

	return e, nil
}

func (r *LineupRepository) GetByID(ctx context.Context, id int64) (lineup.Entry, bool, error) {
	query, args, err := qb.Select(lineupSelectColumns...).From("formazioni").
		Where(qb.Eq("id", id)).
		ToSQL()
	if err != nil {
		return lineup.Entry{}, false, fmt.Errorf("build get lineup entry query: %w", err)
	}

	var row lineupTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return lineup.Entry{}, false, nil
		}
		return lineup.Entry{}, false, fmt.Errorf("get lineup entry: %w", err)
	}

	return lineupFromRow(row), true, nil
}

func (r *LineupRepository) List(ctx context.Context, offset, limit int) ([]lineup.Entry, error) {
	query, args, err := qb.Select(lineupSelectColumns...).From("formazioni").
		OrderBy("id").
		Limit(limit).
		Offset(offset).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list lineup entries query: %w", err)
	}

	var rows []lineupTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list lineup entries: %w", err)
	}

	out := make([]lineup.Entry, 0, len(rows))
	for _, row := range rows {
		out = append(out, lineupFromRow(row))
	}

	return out, nil
}

func (r *LineupRepository) ListByMatch(ctx context.Context, matchID int64) ([]lineup.Entry, error) {
	query, args, err := qb.Select(lineupSelectColumns...).From("formazioni").
		Where(qb.Eq("partita_id", matchID)).
		OrderBy("squadra", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list lineup by match query: %w", err)
	}

	var rows []lineupTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list lineup by match: %w", err)
	}

	out := make([]lineup.Entry, 0, len(rows))
	for _, row := range rows {
		out = append(out, lineupFromRow(row))
	}

	return out, nil
}

func (r *LineupRepository) Delete(ctx context.Context, id int64) (bool, error) {
	query, args, err := qb.DeleteFrom("formazioni").
		Where(qb.Eq("id", id)).
		ToSQL()
	if err != nil {
		return false, fmt.Errorf("build delete lineup entry query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("delete lineup entry: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete lineup entry rows affected: %w", err)
	}

	return affected > 0, nil
}

func (r *LineupRepository) ReplaceForMatch(ctx context.Context, matchID int64, entries []lineup.Entry) ([]lineup.Entry, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx for lineup replace: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	deleteQuery, deleteArgs, err := qb.DeleteFrom("formazioni").
		Where(qb.Eq("partita_id", matchID)).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build clear lineup query: %w", err)
	}
	if _, err := tx.ExecContext(ctx, deleteQuery, deleteArgs...); err != nil {
		return nil, fmt.Errorf("clear existing lineup: %w", err)
	}

	out := make([]lineup.Entry, 0, len(entries))
	for _, e := range entries {
		insertQuery, insertArgs, err := qb.InsertInto("formazioni").
			Columns("partita_id", "giocatore_id", "squadra", "numero_maglia", "capitano").
			Values(e.MatchID, e.PlayerID, string(e.Side), nullInt(e.ShirtNumber), e.Captain).
			Suffix("RETURNING id").
			ToSQL()
		if err != nil {
			return nil, fmt.Errorf("build insert lineup entry player=%s query: %w", e.PlayerID, err)
		}
		if err := tx.GetContext(ctx, &e.ID, insertQuery, insertArgs...); err != nil {
			if isUniqueViolation(err) {
				return nil, lineup.ErrDuplicatePlayer
			}
			return nil, fmt.Errorf("insert lineup entry player=%s: %w", e.PlayerID, err)
		}
		out = append(out, e)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit lineup replace tx: %w", err)
	}

	return out, nil
}
