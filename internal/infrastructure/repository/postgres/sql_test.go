package postgres

import (
	"database/sql"
	"fmt"
	"testing"

	"github.com/lib/pq"
)

func TestIsNotFound(t *testing.T) {
	t.Parallel()

	if !isNotFound(sql.ErrNoRows) {
		t.Fatalf("expected true for sql.ErrNoRows")
	}
	if !isNotFound(fmt.Errorf("get row: %w", sql.ErrNoRows)) {
		t.Fatalf("expected true for wrapped sql.ErrNoRows")
	}
	if isNotFound(fmt.Errorf("connection reset")) {
		t.Fatalf("expected false for unrelated error")
	}
}

func TestIsUniqueViolation(t *testing.T) {
	t.Parallel()

	if !isUniqueViolation(&pq.Error{Code: "23505"}) {
		t.Fatalf("expected true for 23505")
	}
	if !isUniqueViolation(fmt.Errorf("insert: %w", &pq.Error{Code: "23505"})) {
		t.Fatalf("expected true for wrapped 23505")
	}
	if isUniqueViolation(&pq.Error{Code: "23503"}) {
		t.Fatalf("expected false for foreign key violation")
	}
	if isUniqueViolation(fmt.Errorf("plain error")) {
		t.Fatalf("expected false for non-pq error")
	}
}
