package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/require"

	"github.com/suappstudio/matchday/internal/domain/match"
)

const matchSelectSQL = "SELECT id, data_partita, ora_inizio, nome_squadra_a, nome_squadra_b, " +
	"gol_squadra_a, gol_squadra_b, stadio, arbitro, note, numero_giocatori_squadra FROM partite"

func TestMatchRepository_Create_ReturnsGeneratedID(t *testing.T) {
	t.Parallel()

	db, mock := newMockDB(t)
	repo := NewMatchRepository(db)
	date := time.Date(2026, time.June, 7, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery("INSERT INTO partite (data_partita, ora_inizio, nome_squadra_a, nome_squadra_b, "+
		"gol_squadra_a, gol_squadra_b, stadio, arbitro, note, numero_giocatori_squadra) "+
		"VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10) RETURNING id").
		WithArgs(date, "20:30:00", "Gialli", "Verdi", 0, 0, nil, nil, nil, nil).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(12))

	created, err := repo.Create(context.Background(), match.Match{
		Date:        date,
		KickoffTime: "20:30:00",
		TeamAName:   "Gialli",
		TeamBName:   "Verdi",
	})
	require.NoError(t, err)
	require.Equal(t, int64(12), created.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestMatchRepository_GetByID(t *testing.T) {
	t.Parallel()

	matchColumns := []string{
		"id", "data_partita", "ora_inizio", "nome_squadra_a", "nome_squadra_b",
		"gol_squadra_a", "gol_squadra_b", "stadio", "arbitro", "note", "numero_giocatori_squadra",
	}
	date := time.Date(2026, time.June, 7, 0, 0, 0, 0, time.UTC)

	t.Run("found with nullable fields", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewMatchRepository(db)

		mock.ExpectQuery(matchSelectSQL + " WHERE id = $1").
			WithArgs(int64(12)).
			WillReturnRows(sqlmock.NewRows(matchColumns).AddRow(
				12, date, nil, "Gialli", "Verdi", 3, 1, "Campo Sportivo", nil, nil, 7,
			))

		got, exists, err := repo.GetByID(context.Background(), 12)
		require.NoError(t, err)
		require.True(t, exists)
		require.Equal(t, "", got.KickoffTime)
		require.Equal(t, "Campo Sportivo", got.Venue)
		require.NotNil(t, got.SquadSize)
		require.Equal(t, 7, *got.SquadSize)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewMatchRepository(db)

		mock.ExpectQuery(matchSelectSQL + " WHERE id = $1").
			WithArgs(int64(404)).
			WillReturnRows(sqlmock.NewRows(matchColumns))

		_, exists, err := repo.GetByID(context.Background(), 404)
		require.NoError(t, err)
		require.False(t, exists)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

// The schema declares actionless foreign keys, so deleting a match that
// still has formazioni or gol rows is rejected by the database. That
// violation must reach the caller instead of being mapped to a clean miss.
func TestMatchRepository_Delete_SurfacesReferencedRows(t *testing.T) {
	t.Parallel()

	db, mock := newMockDB(t)
	repo := NewMatchRepository(db)

	mock.ExpectExec("DELETE FROM partite WHERE id = $1").
		WithArgs(int64(12)).
		WillReturnError(&pq.Error{Code: "23503", Constraint: "formazioni_partita_id_fkey"})

	_, err := repo.Delete(context.Background(), 12)
	require.Error(t, err)

	var pqErr *pq.Error
	require.ErrorAs(t, err, &pqErr)
	require.Equal(t, pq.ErrorCode("23503"), pqErr.Code)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestMatchRepository_Exists(t *testing.T) {
	t.Parallel()

	db, mock := newMockDB(t)
	repo := NewMatchRepository(db)

	mock.ExpectQuery("SELECT COUNT(*) FROM partite WHERE id = $1").
		WithArgs(int64(12)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	exists, err := repo.Exists(context.Background(), 12)
	require.NoError(t, err)
	require.True(t, exists)
	require.NoError(t, mock.ExpectationsWereMet())
}
