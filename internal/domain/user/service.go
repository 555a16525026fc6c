package user

import (
	"context"
	"errors"
	"time"

	"Spendly/internal/domain/shared"
	appErrors "Spendly/internal/errors"
	"Spendly/internal/logger"

	"github.com/oklog/ulid/v2"
)

type Service struct {
	repository Repository
}

func NewService(repository Repository) *Service {
	return &Service{repository: repository}
}

// GetOrCreateByDevice resolves the user for a device id, creating one on
// first contact. Two devices racing on the same id both end up with the
// single row the unique index let through.
func (s *Service) GetOrCreateByDevice(ctx context.Context, deviceID, deviceFingerprint string) (*User, error) {
	existing, err := s.repository.GetByDeviceID(ctx, deviceID)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, appErrors.ErrUserNotFound) {
		return nil, err
	}

	created, err := New(deviceID, deviceFingerprint)
	if err != nil {
		return nil, err
	}
	if err := s.repository.Create(ctx, created); err != nil {
		if shared.IsUniqueConstraintError(err) {
			return s.repository.GetByDeviceID(ctx, deviceID)
		}
		return nil, err
	}

	logger.Info().Str("deviceId", deviceID).Msg("registered new device")
	return created, nil
}

func (s *Service) Get(ctx context.Context, id ulid.ULID) (*User, error) {
	return s.repository.GetByID(ctx, id)
}

func (s *Service) MarkSynced(ctx context.Context, id ulid.ULID, at time.Time) error {
	return s.repository.UpdateLastSync(ctx, id, at)
}

// UpdateSettings replaces the device's settings document wholesale. Settings
// are an opaque client-owned blob; the server never merges keys.
func (s *Service) UpdateSettings(ctx context.Context, id ulid.ULID, settings shared.JSONMap) (*User, error) {
	account, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if settings == nil {
		settings = shared.JSONMap{}
	}
	account.Settings = settings
	if err := s.repository.UpdateSettings(ctx, account); err != nil {
		return nil, err
	}
	return account, nil
}
