package postgres

import (
	"database/sql"
	"time"

	"github.com/suappstudio/matchday/internal/domain/match"
)

type matchTableModel struct {
	ID          int64          `db:"id"`
	Date        time.Time      `db:"data_partita"`
	KickoffTime sql.NullString `db:"ora_inizio"`
	TeamAName   string         `db:"nome_squadra_a"`
	TeamBName   string         `db:"nome_squadra_b"`
	TeamAGoals  int            `db:"gol_squadra_a"`
	TeamBGoals  int            `db:"gol_squadra_b"`
	Venue       sql.NullString `db:"stadio"`
	Referee     sql.NullString `db:"arbitro"`
	Notes       sql.NullString `db:"note"`
	SquadSize   sql.NullInt64  `db:"numero_giocatori_squadra"`
}

func matchFromRow(row matchTableModel) match.Match {
	return match.Match{
		ID:          row.ID,
		Date:        row.Date,
		KickoffTime: row.KickoffTime.String,
		TeamAName:   row.TeamAName,
		TeamBName:   row.TeamBName,
		TeamAGoals:  row.TeamAGoals,
		TeamBGoals:  row.TeamBGoals,
		Venue:       row.Venue.String,
		Referee:     row.Referee.String,
		Notes:       row.Notes.String,
		SquadSize:   nullInt64ToIntPtr(row.SquadSize),
	}
}
