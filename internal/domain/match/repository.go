package match

import "context"

// Repository describes match persistence needs from use cases.
type Repository interface {
	Create(ctx context.Context, m Match) (Match, error)
	GetByID(ctx context.Context, id int64) (Match, bool, error)
	List(ctx context.Context, offset, limit int) ([]Match, error)
	Update(ctx context.Context, m Match) error
	Delete(ctx context.Context, id int64) (bool, error)
	Exists(ctx context.Context, id int64) (bool, error)
}
