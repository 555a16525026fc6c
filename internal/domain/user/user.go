package user

import (
	"strings"
	"time"

	"Spendly/internal/domain/shared"
	appErrors "Spendly/internal/errors"
	"Spendly/internal/pkg"

	"github.com/oklog/ulid/v2"
)

// User is an anonymous device identity. There are no credentials: the device
// id presented in the sync request is the whole identity.
type User struct {
	Id                ulid.ULID      `gorm:"type:varchar(26);primaryKey" json:"id"`
	DeviceId          string         `gorm:"type:varchar(255);not null;uniqueIndex:idx_users_device_id" json:"deviceId"`
	DeviceFingerprint string         `gorm:"type:varchar(255)" json:"deviceFingerprint"`
	Settings          shared.JSONMap `gorm:"type:jsonb" json:"settings"`
	LastSyncAt        *time.Time     `gorm:"type:timestamp" json:"lastSyncAt"`
	CreatedAt         time.Time      `gorm:"autoCreateTime;not null" json:"createdAt"`
	UpdatedAt         time.Time      `gorm:"autoUpdateTime;not null" json:"updatedAt"`
}

func (User) TableName() string {
	return "users"
}

func New(deviceID, deviceFingerprint string) (*User, error) {
	deviceID = strings.TrimSpace(deviceID)
	if deviceID == "" {
		return nil, appErrors.ErrMissingDeviceID
	}

	now := pkg.SetTimestamps()
	return &User{
		Id:                pkg.GenerateULIDObject(),
		DeviceId:          deviceID,
		DeviceFingerprint: strings.TrimSpace(deviceFingerprint),
		Settings:          shared.JSONMap{},
		CreatedAt:         now,
		UpdatedAt:         now,
	}, nil
}
