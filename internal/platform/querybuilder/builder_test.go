package querybuilder

import (
	"reflect"
	"testing"
)

func TestSelectBuilder_ToSQL(t *testing.T) {
	t.Parallel()

	t.Run("full clause order", func(t *testing.T) {
		query, args, err := Select("id", "name").From("players").
			Where(Eq("role", "FORWARD")).
			OrderBy("created_at", "id").
			Limit(10).
			Offset(5).
			ToSQL()
		if err != nil {
			t.Fatalf("build select: %v", err)
		}

		want := "SELECT id, name FROM players WHERE role = $1 ORDER BY created_at, id LIMIT 10 OFFSET 5"
		if query != want {
			t.Fatalf("unexpected query:\n got=%s\nwant=%s", query, want)
		}
		if !reflect.DeepEqual(args, []any{"FORWARD"}) {
			t.Fatalf("unexpected args: %v", args)
		}
	})

	t.Run("multiple conditions joined with AND", func(t *testing.T) {
		query, args, err := Select("id").From("formazioni").
			Where(Eq("partita_id", 7), Eq("giocatore_id", "p-1")).
			ToSQL()
		if err != nil {
			t.Fatalf("build select: %v", err)
		}

		want := "SELECT id FROM formazioni WHERE partita_id = $1 AND giocatore_id = $2"
		if query != want {
			t.Fatalf("unexpected query:\n got=%s\nwant=%s", query, want)
		}
		if len(args) != 2 {
			t.Fatalf("unexpected arg count: got=%d want=2", len(args))
		}
	})

	t.Run("group by", func(t *testing.T) {
		query, _, err := Select("role", "COUNT(*) AS total").From("players").
			GroupBy("role").
			ToSQL()
		if err != nil {
			t.Fatalf("build select: %v", err)
		}

		want := "SELECT role, COUNT(*) AS total FROM players GROUP BY role"
		if query != want {
			t.Fatalf("unexpected query:\n got=%s\nwant=%s", query, want)
		}
	})

	t.Run("missing table", func(t *testing.T) {
		if _, _, err := Select("id").ToSQL(); err == nil {
			t.Fatalf("expected error for missing table")
		}
	})

	t.Run("missing columns", func(t *testing.T) {
		if _, _, err := Select().From("players").ToSQL(); err == nil {
			t.Fatalf("expected error for missing columns")
		}
	})
}

func TestInsertBuilder_ToSQL(t *testing.T) {
	t.Parallel()

	t.Run("single row with suffix", func(t *testing.T) {
		query, args, err := InsertInto("partite").
			Columns("data_partita", "nome_squadra_a").
			Values("2026-06-07", "Gialli").
			Suffix("RETURNING id").
			ToSQL()
		if err != nil {
			t.Fatalf("build insert: %v", err)
		}

		want := "INSERT INTO partite (data_partita, nome_squadra_a) VALUES ($1, $2) RETURNING id"
		if query != want {
			t.Fatalf("unexpected query:\n got=%s\nwant=%s", query, want)
		}
		if len(args) != 2 {
			t.Fatalf("unexpected arg count: got=%d want=2", len(args))
		}
	})

	t.Run("multiple rows continue the placeholders", func(t *testing.T) {
		query, args, err := InsertInto("gol").
			Columns("partita_id", "minuto").
			Values(1, 10).
			Values(1, 20).
			ToSQL()
		if err != nil {
			t.Fatalf("build insert: %v", err)
		}

		want := "INSERT INTO gol (partita_id, minuto) VALUES ($1, $2), ($3, $4)"
		if query != want {
			t.Fatalf("unexpected query:\n got=%s\nwant=%s", query, want)
		}
		if len(args) != 4 {
			t.Fatalf("unexpected arg count: got=%d want=4", len(args))
		}
	})

	t.Run("row arity mismatch", func(t *testing.T) {
		_, _, err := InsertInto("gol").Columns("partita_id", "minuto").Values(1).ToSQL()
		if err == nil {
			t.Fatalf("expected error for arity mismatch")
		}
	})
}

func TestUpdateBuilder_ToSQL(t *testing.T) {
	t.Parallel()

	query, args, err := Update("players").
		Set("name", "Mario").
		Set("role", "FORWARD").
		Where(Eq("id", "p-1")).
		ToSQL()
	if err != nil {
		t.Fatalf("build update: %v", err)
	}

	want := "UPDATE players SET name = $1, role = $2 WHERE id = $3"
	if query != want {
		t.Fatalf("unexpected query:\n got=%s\nwant=%s", query, want)
	}
	if !reflect.DeepEqual(args, []any{"Mario", "FORWARD", "p-1"}) {
		t.Fatalf("unexpected args: %v", args)
	}

	t.Run("no sets", func(t *testing.T) {
		if _, _, err := Update("players").Where(Eq("id", "p-1")).ToSQL(); err == nil {
			t.Fatalf("expected error for update without sets")
		}
	})
}

func TestDeleteBuilder_ToSQL(t *testing.T) {
	t.Parallel()

	query, args, err := DeleteFrom("formazioni").Where(Eq("partita_id", 7)).ToSQL()
	if err != nil {
		t.Fatalf("build delete: %v", err)
	}

	want := "DELETE FROM formazioni WHERE partita_id = $1"
	if query != want {
		t.Fatalf("unexpected query:\n got=%s\nwant=%s", query, want)
	}
	if len(args) != 1 {
		t.Fatalf("unexpected arg count: got=%d want=1", len(args))
	}

	t.Run("where is mandatory", func(t *testing.T) {
		if _, _, err := DeleteFrom("formazioni").ToSQL(); err == nil {
			t.Fatalf("expected error for delete without where")
		}
	})
}
