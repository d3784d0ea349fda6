package player

import (
	"testing"
	"time"
)

func TestRole_Valid(t *testing.T) {
	t.Parallel()

	for _, role := range AllRoles {
		if !role.Valid() {
			t.Fatalf("expected role %s to be valid", role)
		}
	}
	if Role("STRIKER").Valid() {
		t.Fatalf("expected unknown role to be invalid")
	}
}

func TestSkills_Validate(t *testing.T) {
	t.Parallel()

	if err := DefaultSkills().Validate(); err != nil {
		t.Fatalf("default skills must validate: %v", err)
	}

	bad := DefaultSkills()
	bad.Heading = 11
	if err := bad.Validate(); err == nil {
		t.Fatalf("expected error for heading out of range")
	}

	bad = DefaultSkills()
	bad.Speed = 0
	if err := bad.Validate(); err == nil {
		t.Fatalf("expected error for speed below minimum")
	}
}

func TestPlayer_Validate(t *testing.T) {
	t.Parallel()

	base := Player{
		ID:        "p-1",
		Name:      "Mario Rossi",
		Role:      RoleMidfielder,
		Skills:    DefaultSkills(),
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if err := base.Validate(); err != nil {
		t.Fatalf("valid player rejected: %v", err)
	}

	t.Run("missing name", func(t *testing.T) {
		p := base
		p.Name = ""
		if err := p.Validate(); err == nil {
			t.Fatalf("expected error for empty name")
		}
	})

	t.Run("invalid role", func(t *testing.T) {
		p := base
		p.Role = "LIBERO"
		if err := p.Validate(); err == nil {
			t.Fatalf("expected error for unknown role")
		}
	})

	t.Run("negative counter", func(t *testing.T) {
		p := base
		p.GoalsScored = -1
		if err := p.Validate(); err == nil {
			t.Fatalf("expected error for negative goals_scored")
		}
	})
}

func TestPlayer_OverallRating(t *testing.T) {
	t.Parallel()

	t.Run("goalkeeper weights goalkeeping triple", func(t *testing.T) {
		p := Player{
			Role: RoleGoalkeeper,
			Skills: Skills{
				Goalkeeping: 10,
				Defense:     10,
				Technique:   10,
				Leadership:  10,
			},
		}
		if got := p.OverallRating(); got != 10 {
			t.Fatalf("unexpected goalkeeper rating: got=%d want=%d", got, 10)
		}
	})

	t.Run("uniform skills score the skill value", func(t *testing.T) {
		for _, role := range AllRoles {
			p := Player{Role: role, Skills: DefaultSkills()}
			if got := p.OverallRating(); got != SkillDefault {
				t.Fatalf("role %s: unexpected rating for uniform skills: got=%d want=%d", role, got, SkillDefault)
			}
		}
	})

	t.Run("integer division truncates", func(t *testing.T) {
		p := Player{
			Role: RoleDefender,
			Skills: Skills{
				Defense:    9,
				Heading:    8,
				Passing:    7,
				Stamina:    6,
				Leadership: 5,
			},
		}
		// (9*3 + 8*2 + 7 + 6 + 5) / 8 = 61/8 = 7
		if got := p.OverallRating(); got != 7 {
			t.Fatalf("unexpected defender rating: got=%d want=%d", got, 7)
		}
	})

	t.Run("unknown role falls back to forward weights", func(t *testing.T) {
		skills := Skills{Attack: 9, Speed: 8, Technique: 7, Heading: 6, Stamina: 5}
		known := Player{Role: RoleForward, Skills: skills}
		unknown := Player{Role: "SWEEPER", Skills: skills}
		if known.OverallRating() != unknown.OverallRating() {
			t.Fatalf("unknown role must score as forward: got=%d want=%d", unknown.OverallRating(), known.OverallRating())
		}
	})
}
