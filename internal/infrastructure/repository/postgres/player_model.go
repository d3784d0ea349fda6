package postgres

import (
	"database/sql"
	"time"

	"github.com/suappstudio/matchday/internal/domain/player"
)

type playerTableModel struct {
	ID           string         `db:"id"`
	Name         string         `db:"name"`
	Role         string         `db:"role"`
	PhotoURL     sql.NullString `db:"photo_url"`
	Speed        int            `db:"speed"`
	Passing      int            `db:"passing"`
	Attack       int            `db:"attack"`
	Defense      int            `db:"defense"`
	Technique    int            `db:"technique"`
	Goalkeeping  int            `db:"goalkeeping"`
	Heading      int            `db:"heading"`
	Stamina      int            `db:"stamina"`
	Leadership   int            `db:"leadership"`
	GoalsScored  int            `db:"goals_scored"`
	Assists      int            `db:"assists"`
	GoldMedals   int            `db:"gold_medals"`
	SilverMedals int            `db:"silver_medals"`
	BronzeMedals int            `db:"bronze_medals"`
	CreatedAt    time.Time      `db:"created_at"`
	UpdatedAt    time.Time      `db:"updated_at"`
}

func playerFromRow(row playerTableModel) player.Player {
	return player.Player{
		ID:       row.ID,
		Name:     row.Name,
		Role:     player.Role(row.Role),
		PhotoURL: row.PhotoURL.String,
		Skills: player.Skills{
			Speed:       row.Speed,
			Passing:     row.Passing,
			Attack:      row.Attack,
			Defense:     row.Defense,
			Technique:   row.Technique,
			Goalkeeping: row.Goalkeeping,
			Heading:     row.Heading,
			Stamina:     row.Stamina,
			Leadership:  row.Leadership,
		},
		GoalsScored:  row.GoalsScored,
		Assists:      row.Assists,
		GoldMedals:   row.GoldMedals,
		SilverMedals: row.SilverMedals,
		BronzeMedals: row.BronzeMedals,
		CreatedAt:    row.CreatedAt,
		UpdatedAt:    row.UpdatedAt,
	}
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func nullInt(v *int) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*v), Valid: true}
}

func nullInt64ToIntPtr(v sql.NullInt64) *int {
	if !v.Valid {
		return nil
	}
	out := int(v.Int64)
	return &out
}
