package infrastructure

import (
	"context"
	"errors"
	"time"

	"Spendly/internal/domain/shared"
	"Spendly/internal/domain/user"
	appErrors "Spendly/internal/errors"
	"Spendly/internal/pkg"

	"github.com/oklog/ulid/v2"
	"gorm.io/gorm"
)

type UserRepository struct {
	DB *gorm.DB
}

type userDB struct {
	Id                string         `gorm:"type:varchar(26);primaryKey"`
	DeviceId          string         `gorm:"type:varchar(255);not null;uniqueIndex:idx_users_device_id"`
	DeviceFingerprint string         `gorm:"type:varchar(255)"`
	Settings          shared.JSONMap `gorm:"type:jsonb"`
	LastSyncAt        *time.Time     `gorm:"type:timestamp"`
	CreatedAt         time.Time      `gorm:"autoCreateTime;not null"`
	UpdatedAt         time.Time      `gorm:"autoUpdateTime;not null"`
}

func (userDB) TableName() string {
	return "users"
}

func toDomainUser(udb *userDB) (*user.User, error) {
	id, err := pkg.ParseULID(udb.Id)
	if err != nil {
		return nil, appErrors.ErrInternalServer.WithError(err)
	}

	return &user.User{
		Id:                id,
		DeviceId:          udb.DeviceId,
		DeviceFingerprint: udb.DeviceFingerprint,
		Settings:          udb.Settings,
		LastSyncAt:        udb.LastSyncAt,
		CreatedAt:         udb.CreatedAt,
		UpdatedAt:         udb.UpdatedAt,
	}, nil
}

func toDBUser(u *user.User) *userDB {
	return &userDB{
		Id:                u.Id.String(),
		DeviceId:          u.DeviceId,
		DeviceFingerprint: u.DeviceFingerprint,
		Settings:          u.Settings,
		LastSyncAt:        u.LastSyncAt,
		CreatedAt:         u.CreatedAt,
		UpdatedAt:         u.UpdatedAt,
	}
}

func (r *UserRepository) Create(ctx context.Context, u *user.User) error {
	udb := toDBUser(u)
	if err := r.DB.WithContext(ctx).Table("users").Create(udb).Error; err != nil {
		if shared.IsUniqueConstraintError(err) {
			return err
		}
		return appErrors.NewDatabaseError(err)
	}
	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, id ulid.ULID) (*user.User, error) {
	var udb userDB
	if err := r.DB.WithContext(ctx).Table("users").Where("id = ?", id.String()).First(&udb).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, appErrors.ErrUserNotFound.WithError(err)
		}
		return nil, appErrors.NewDatabaseError(err)
	}
	return toDomainUser(&udb)
}

func (r *UserRepository) GetByDeviceID(ctx context.Context, deviceID string) (*user.User, error) {
	var udb userDB
	if err := r.DB.WithContext(ctx).Table("users").Where("device_id = ?", deviceID).First(&udb).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, appErrors.ErrUserNotFound.WithError(err)
		}
		return nil, appErrors.NewDatabaseError(err)
	}
	return toDomainUser(&udb)
}

func (r *UserRepository) UpdateLastSync(ctx context.Context, id ulid.ULID, at time.Time) error {
	result := r.DB.WithContext(ctx).Table("users").
		Where("id = ?", id.String()).
		Updates(map[string]interface{}{"last_sync_at": at, "updated_at": time.Now()})
	if result.Error != nil {
		return appErrors.NewDatabaseError(result.Error)
	}
	if result.RowsAffected == 0 {
		return appErrors.ErrUserNotFound
	}
	return nil
}

func (r *UserRepository) UpdateSettings(ctx context.Context, u *user.User) error {
	result := r.DB.WithContext(ctx).Table("users").
		Where("id = ?", u.Id.String()).
		Updates(map[string]interface{}{"settings": u.Settings, "updated_at": time.Now()})
	if result.Error != nil {
		return appErrors.NewDatabaseError(result.Error)
	}
	if result.RowsAffected == 0 {
		return appErrors.ErrUserNotFound
	}
	return nil
}
