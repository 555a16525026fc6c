package contracts

import (
	"Spendly/internal/domain/shared"
	"Spendly/internal/domain/user"
)

type UserSettingsUpdateRequest struct {
	Settings shared.JSONMap `json:"settings" binding:"required"`
}

type UserResponse struct {
	User *user.User `json:"user"`
}
