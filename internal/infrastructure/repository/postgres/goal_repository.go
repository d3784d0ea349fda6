package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/suappstudio/matchday/internal/domain/goal"
	"github.com/suappstudio/matchday/internal/domain/lineup"
	qb "github.com/suappstudio/matchday/internal/platform/querybuilder"
)

type GoalRepository struct {
	db *sqlx.DB
}

var goalSelectColumns = []string{
	"id",
	"partita_id",
	"giocatore_id",
	"minuto",
	"squadra",
	"tipo_gol",
	"assist_giocatore_id",
}

type goalTableModel struct {
	ID             int64          `db:"id"`
	MatchID        int64          `db:"partita_id"`
	PlayerID       string         `db:"giocatore_id"`
	Minute         int            `db:"minuto"`
	Side           string         `db:"squadra"`
	Type           string         `db:"tipo_gol"`
	AssistPlayerID sql.NullString `db:"assist_giocatore_id"`
}

func goalFromRow(row goalTableModel) goal.Goal {
	g := goal.Goal{
		ID:       row.ID,
		MatchID:  row.MatchID,
		PlayerID: row.PlayerID,
		Minute:   row.Minute,
		Side:     lineup.Side(row.Side),
		Type:     goal.Type(row.Type),
	}
	if row.AssistPlayerID.Valid {
		assist := row.AssistPlayerID.String
		g.AssistPlayerID = &assist
	}
	return g
}

func NewGoalRepository(db *sqlx.DB) *GoalRepository {
	return &GoalRepository{db: db}
}

func (r *GoalRepository) Create(ctx context.Context, g goal.Goal) (goal.Goal, error) {
	var assist sql.NullString
	if g.AssistPlayerID != nil {
		assist = sql.NullString{String: *g.AssistPlayerID, Valid: true}
	}

	query, args, err := qb.InsertInto("gol").
		Columns("partita_id", "giocatore_id", "minuto", "squadra", "tipo_gol", "assist_giocatore_id").
		Values(g.MatchID, g.PlayerID, g.Minute, string(g.Side), string(g.Type), assist).
		Suffix("RETURNING id").
		ToSQL()
	if err != nil {
		return goal.Goal{}, fmt.Errorf("build insert goal query: %w", err)
	}

	if err := r.db.GetContext(ctx, &g.ID, query, args...); err != nil {
		return goal.Goal{}, fmt.Errorf("insert goal: %w", err)
	}

	return g, nil
}

func (r *GoalRepository) GetByID(ctx context.Context, id int64) (goal.Goal, bool, error) {
	query, args, err := qb.Select(goalSelectColumns...).From("gol").
		Where(qb.Eq("id", id)).
		ToSQL()
	if err != nil {
		return goal.Goal{}, false, fmt.Errorf("build get goal query: %w", err)
	}

	var row goalTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return goal.Goal{}, false, nil
		}
		return goal.Goal{}, false, fmt.Errorf("get goal: %w", err)
	}

	return goalFromRow(row), true, nil
}

func (r *GoalRepository) List(ctx context.Context, offset, limit int) ([]goal.Goal, error) {
	query, args, err := qb.Select(goalSelectColumns...).From("gol").
		OrderBy("id").
		Limit(limit).
		Offset(offset).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list goals query: %w", err)
	}

	var rows []goalTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list goals: %w", err)
	}

	out := make([]goal.Goal, 0, len(rows))
	for _, row := range rows {
		out = append(out, goalFromRow(row))
	}

	return out, nil
}

func (r *GoalRepository) ListByMatch(ctx context.Context, matchID int64) ([]goal.Goal, error) {
	query, args, err := qb.Select(goalSelectColumns...).From("gol").
		Where(qb.Eq("partita_id", matchID)).
		OrderBy("minuto", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list goals by match query: %w", err)
	}

	var rows []goalTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list goals by match: %w", err)
	}

	out := make([]goal.Goal, 0, len(rows))
	for _, row := range rows {
		out = append(out, goalFromRow(row))
	}

	return out, nil
}

func (r *GoalRepository) Delete(ctx context.Context, id int64) (bool, error) {
	query, args, err := qb.DeleteFrom("gol").
		Where(qb.Eq("id", id)).
		ToSQL()
	if err != nil {
		return false, fmt.Errorf("build delete goal query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("delete goal: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete goal rows affected: %w", err)
	}

	return affected > 0, nil
}
