package player

import (
	"fmt"
	"time"
)

// Role is the position a player covers on the pitch.
type Role string

const (
	RoleGoalkeeper Role = "GOALKEEPER"
	RoleDefender   Role = "DEFENDER"
	RoleMidfielder Role = "MIDFIELDER"
	RoleForward    Role = "FORWARD"
)

var AllRoles = []Role{RoleGoalkeeper, RoleDefender, RoleMidfielder, RoleForward}

func (r Role) Valid() bool {
	switch r {
	case RoleGoalkeeper, RoleDefender, RoleMidfielder, RoleForward:
		return true
	default:
		return false
	}
}

const (
	SkillMin     = 1
	SkillMax     = 10
	SkillDefault = 5

	// A goalkeeper created without a tuned goalkeeping skill stores this
	// value instead of the generic default. Applied at creation only,
	// never on later role changes.
	GoalkeepingCreateDefault = 8
)

// Skills holds the nine rated attributes, each in [SkillMin, SkillMax].
type Skills struct {
	Speed       int
	Passing     int
	Attack      int
	Defense     int
	Technique   int
	Goalkeeping int
	Heading     int
	Stamina     int
	Leadership  int
}

// DefaultSkills returns a skill set with every attribute at SkillDefault.
func DefaultSkills() Skills {
	return Skills{
		Speed:       SkillDefault,
		Passing:     SkillDefault,
		Attack:      SkillDefault,
		Defense:     SkillDefault,
		Technique:   SkillDefault,
		Goalkeeping: SkillDefault,
		Heading:     SkillDefault,
		Stamina:     SkillDefault,
		Leadership:  SkillDefault,
	}
}

func (s Skills) Validate() error {
	for _, attr := range []struct {
		name  string
		value int
	}{
		{"speed", s.Speed},
		{"passing", s.Passing},
		{"attack", s.Attack},
		{"defense", s.Defense},
		{"technique", s.Technique},
		{"goalkeeping", s.Goalkeeping},
		{"heading", s.Heading},
		{"stamina", s.Stamina},
		{"leadership", s.Leadership},
	} {
		if attr.value < SkillMin || attr.value > SkillMax {
			return fmt.Errorf("skill %s must be between %d and %d, got %d", attr.name, SkillMin, SkillMax, attr.value)
		}
	}

	return nil
}

// Player is one roster entry.
type Player struct {
	ID           string
	Name         string
	Role         Role
	PhotoURL     string
	Skills       Skills
	GoalsScored  int
	Assists      int
	GoldMedals   int
	SilverMedals int
	BronzeMedals int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (p Player) Validate() error {
	if p.ID == "" {
		return fmt.Errorf("player id is required")
	}
	if p.Name == "" {
		return fmt.Errorf("player name is required")
	}
	if !p.Role.Valid() {
		return fmt.Errorf("invalid player role: %s", p.Role)
	}
	if err := p.Skills.Validate(); err != nil {
		return err
	}
	for _, counter := range []struct {
		name  string
		value int
	}{
		{"goals_scored", p.GoalsScored},
		{"assists", p.Assists},
		{"gold_medals", p.GoldMedals},
		{"silver_medals", p.SilverMedals},
		{"bronze_medals", p.BronzeMedals},
	} {
		if counter.value < 0 {
			return fmt.Errorf("%s cannot be negative", counter.name)
		}
	}

	return nil
}

// OverallRating is the role-weighted composite skill score, truncated
// toward zero by integer division. Roles outside the known set score as
// forwards; that branch mirrors how existing data always behaved and
// would need revisiting if a fifth role is ever added.
func (p Player) OverallRating() int {
	s := p.Skills
	switch p.Role {
	case RoleGoalkeeper:
		return (s.Goalkeeping*3 + s.Defense*2 + s.Technique + s.Leadership) / 7
	case RoleDefender:
		return (s.Defense*3 + s.Heading*2 + s.Passing + s.Stamina + s.Leadership) / 8
	case RoleMidfielder:
		return (s.Passing*2 + s.Technique*2 + s.Stamina + s.Attack + s.Defense + s.Leadership) / 8
	case RoleForward:
		return forwardRating(s)
	default:
		return forwardRating(s)
	}
}

func forwardRating(s Skills) int {
	return (s.Attack*3 + s.Speed*2 + s.Technique + s.Heading + s.Stamina) / 8
}
