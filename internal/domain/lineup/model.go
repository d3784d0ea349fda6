package lineup

import (
	"fmt"

	"github.com/suappstudio/matchday/internal/domain/player"
)

// Side names one of the two squads in a match.
type Side string

const (
	SideA Side = "A"
	SideB Side = "B"
)

func (s Side) Valid() bool {
	return s == SideA || s == SideB
}

// Entry assigns one player to one side of one match. A player appears at
// most once per match; the backing store enforces the uniqueness.
type Entry struct {
	ID          int64
	MatchID     int64
	PlayerID    string
	Side        Side
	ShirtNumber *int
	Captain     bool
}

func (e Entry) Validate() error {
	if e.MatchID <= 0 {
		return fmt.Errorf("lineup entry match id is required")
	}
	if e.PlayerID == "" {
		return fmt.Errorf("lineup entry player id is required")
	}
	if !e.Side.Valid() {
		return fmt.Errorf("invalid lineup side: %s", e.Side)
	}

	return nil
}

// DetailedEntry is an Entry joined with its player snapshot.
type DetailedEntry struct {
	Entry
	Player player.Player
}
