package user

import (
	"context"
	"time"

	"github.com/oklog/ulid/v2"
)

type Repository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id ulid.ULID) (*User, error)
	GetByDeviceID(ctx context.Context, deviceID string) (*User, error)
	UpdateLastSync(ctx context.Context, id ulid.ULID, at time.Time) error
	UpdateSettings(ctx context.Context, user *User) error
}
