package postgres

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/require"

	"github.com/suappstudio/matchday/internal/domain/lineup"
)

const lineupInsertSQL = "INSERT INTO formazioni (partita_id, giocatore_id, squadra, numero_maglia, capitano) " +
	"VALUES ($1, $2, $3, $4, $5) RETURNING id"

func TestLineupRepository_Create(t *testing.T) {
	t.Parallel()

	t.Run("assigns the generated id", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewLineupRepository(db)

		mock.ExpectQuery(lineupInsertSQL).
			WithArgs(int64(7), "p-1", "A", nil, true).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(31))

		created, err := repo.Create(context.Background(), lineup.Entry{
			MatchID:  7,
			PlayerID: "p-1",
			Side:     lineup.SideA,
			Captain:  true,
		})
		require.NoError(t, err)
		require.Equal(t, int64(31), created.ID)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unique violation maps to duplicate player", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewLineupRepository(db)

		mock.ExpectQuery(lineupInsertSQL).
			WithArgs(int64(7), "p-1", "B", nil, false).
			WillReturnError(&pq.Error{Code: "23505"})

		_, err := repo.Create(context.Background(), lineup.Entry{
			MatchID:  7,
			PlayerID: "p-1",
			Side:     lineup.SideB,
		})
		require.ErrorIs(t, err, lineup.ErrDuplicatePlayer)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestLineupRepository_GetByID_Missing(t *testing.T) {
	t.Parallel()

	db, mock := newMockDB(t)
	repo := NewLineupRepository(db)

	mock.ExpectQuery("SELECT id, partita_id, giocatore_id, squadra, numero_maglia, capitano FROM formazioni WHERE id = $1").
		WithArgs(int64(99)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "partita_id", "giocatore_id", "squadra", "numero_maglia", "capitano"}))

	_, exists, err := repo.GetByID(context.Background(), 99)
	require.NoError(t, err)
	require.False(t, exists)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestLineupRepository_ReplaceForMatch(t *testing.T) {
	t.Parallel()

	t.Run("clears then inserts inside one transaction", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewLineupRepository(db)

		mock.ExpectBegin()
		mock.ExpectExec("DELETE FROM formazioni WHERE partita_id = $1").
			WithArgs(int64(7)).
			WillReturnResult(sqlmock.NewResult(0, 2))
		mock.ExpectQuery(lineupInsertSQL).
			WithArgs(int64(7), "p-1", "A", nil, false).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(41))
		mock.ExpectQuery(lineupInsertSQL).
			WithArgs(int64(7), "p-2", "B", nil, false).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(42))
		mock.ExpectCommit()

		replaced, err := repo.ReplaceForMatch(context.Background(), 7, []lineup.Entry{
			{MatchID: 7, PlayerID: "p-1", Side: lineup.SideA},
			{MatchID: 7, PlayerID: "p-2", Side: lineup.SideB},
		})
		require.NoError(t, err)
		require.Len(t, replaced, 2)
		require.Equal(t, int64(41), replaced[0].ID)
		require.Equal(t, int64(42), replaced[1].ID)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("duplicate insert rolls the transaction back", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewLineupRepository(db)

		mock.ExpectBegin()
		mock.ExpectExec("DELETE FROM formazioni WHERE partita_id = $1").
			WithArgs(int64(7)).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectQuery(lineupInsertSQL).
			WithArgs(int64(7), "p-1", "A", nil, false).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(41))
		mock.ExpectQuery(lineupInsertSQL).
			WithArgs(int64(7), "p-1", "B", nil, false).
			WillReturnError(&pq.Error{Code: "23505"})
		mock.ExpectRollback()

		_, err := repo.ReplaceForMatch(context.Background(), 7, []lineup.Entry{
			{MatchID: 7, PlayerID: "p-1", Side: lineup.SideA},
			{MatchID: 7, PlayerID: "p-1", Side: lineup.SideB},
		})
		require.ErrorIs(t, err, lineup.ErrDuplicatePlayer)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}
