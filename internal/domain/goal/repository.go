package goal

import (
	"context"

	"github.com/oklog/ulid/v2"
)

type Repository interface {
	Save(ctx context.Context, goal *Goal) error
	GetByID(ctx context.Context, id ulid.ULID, userID ulid.ULID) (*Goal, error)
	GetByUser(ctx context.Context, userID ulid.ULID) ([]*Goal, error)
	Delete(ctx context.Context, id ulid.ULID, userID ulid.ULID) error
}
