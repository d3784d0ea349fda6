package goal

import (
	"fmt"

	"github.com/suappstudio/matchday/internal/domain/lineup"
)

// Type classifies how a goal was scored. The values are the wire values.
type Type string

const (
	TypeNormale   Type = "normale"
	TypeRigore    Type = "rigore"
	TypeAutorete  Type = "autorete"
	TypePunizione Type = "punizione"
)

func (t Type) Valid() bool {
	switch t {
	case TypeNormale, TypeRigore, TypeAutorete, TypePunizione:
		return true
	default:
		return false
	}
}

// Goal is one scoring event. Duplicates are allowed: a match may carry
// arbitrarily many goal records.
type Goal struct {
	ID             int64
	MatchID        int64
	PlayerID       string
	Minute         int
	Side           lineup.Side
	Type           Type
	AssistPlayerID *string
}

func (g Goal) Validate() error {
	if g.MatchID <= 0 {
		return fmt.Errorf("goal match id is required")
	}
	if g.PlayerID == "" {
		return fmt.Errorf("goal player id is required")
	}
	if !g.Side.Valid() {
		return fmt.Errorf("invalid goal side: %s", g.Side)
	}
	if !g.Type.Valid() {
		return fmt.Errorf("invalid goal type: %s", g.Type)
	}
	if g.AssistPlayerID != nil && *g.AssistPlayerID == "" {
		return fmt.Errorf("assist player id cannot be empty when set")
	}

	return nil
}
