package budget

import (
	"context"

	"github.com/oklog/ulid/v2"
)

type Repository interface {
	Save(ctx context.Context, budget *Budget) error
	GetByID(ctx context.Context, id ulid.ULID, userID ulid.ULID) (*Budget, error)
	GetByCategory(ctx context.Context, userID, categoryID ulid.ULID) (*Budget, error)
	GetByUser(ctx context.Context, userID ulid.ULID) ([]*Budget, error)
	Delete(ctx context.Context, id ulid.ULID, userID ulid.ULID) error
}
