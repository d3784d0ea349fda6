package lineup

import (
	"context"
	"errors"
)

// ErrDuplicatePlayer is returned when a player is inserted twice into
// the same match lineup.
var ErrDuplicatePlayer = errors.New("player already in match lineup")

// Repository exposes lineup persistence operations.
type Repository interface {
	Create(ctx context.Context, e Entry) (Entry, error)
	GetByID(ctx context.Context, id int64) (Entry, bool, error)
	List(ctx context.Context, offset, limit int) ([]Entry, error)
	ListByMatch(ctx context.Context, matchID int64) ([]Entry, error)
	Delete(ctx context.Context, id int64) (bool, error)
	// ReplaceForMatch atomically deletes every entry of the match and
	// inserts the given set. Either the whole replacement becomes
	// visible or none of it does.
	ReplaceForMatch(ctx context.Context, matchID int64, entries []Entry) ([]Entry, error)
}
