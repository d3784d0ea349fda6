package player

import "context"

// ListFilter narrows and windows a roster listing.
type ListFilter struct {
	Offset int
	Limit  int
	Role   Role // zero value means no role filter
}

// SkillAverages carries the roster-wide mean of each skill.
type SkillAverages struct {
	Speed       float64
	Passing     float64
	Attack      float64
	Defense     float64
	Technique   float64
	Goalkeeping float64
	Heading     float64
	Stamina     float64
	Leadership  float64
}

// Repository describes player persistence needs from use cases.
type Repository interface {
	Create(ctx context.Context, p Player) error
	GetByID(ctx context.Context, id string) (Player, bool, error)
	List(ctx context.Context, filter ListFilter) ([]Player, error)
	Update(ctx context.Context, p Player) error
	Delete(ctx context.Context, id string) (bool, error)
	Count(ctx context.Context) (int, error)
	CountByRole(ctx context.Context) (map[Role]int, error)
	AverageSkills(ctx context.Context) (SkillAverages, bool, error)
}
