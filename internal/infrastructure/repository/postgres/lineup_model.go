package postgres

import (
	"database/sql"

	"github.com/suappstudio/matchday/internal/domain/lineup"
)

type lineupTableModel struct {
	ID          int64         `db:"id"`
	MatchID     int64         `db:"partita_id"`
	PlayerID    string        `db:"giocatore_id"`
	Side        string        `db:"squadra"`
	ShirtNumber sql.NullInt64 `db:"numero_maglia"`
	Captain     bool          `db:"capitano"`
}

func lineupFromRow(row lineupTableModel) lineup.Entry {
	return lineup.Entry{
		ID:          row.ID,
		MatchID:     row.MatchID,
		PlayerID:    row.PlayerID,
		Side:        lineup.Side(row.Side),
		ShirtNumber: nullInt64ToIntPtr(row.ShirtNumber),
		Captain:     row.Captain,
	}
}
