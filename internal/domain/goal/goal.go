package goal

import (
	"strings"
	"time"

	appErrors "Spendly/internal/errors"
	"Spendly/internal/pkg"

	"github.com/oklog/ulid/v2"
	"github.com/shopspring/decimal"
)

// Goal is a savings target. Completion is derived: a goal completes the
// moment contributions reach the target.
type Goal struct {
	Id            ulid.ULID       `gorm:"type:varchar(26);primaryKey" json:"id"`
	UserId        ulid.ULID       `gorm:"type:varchar(26);not null;index:idx_goals_user_id" json:"userId"`
	Name          string          `gorm:"type:varchar(100);not null" json:"name"`
	TargetAmount  decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"targetAmount"`
	CurrentAmount decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0" json:"currentAmount"`
	Deadline      *time.Time      `gorm:"type:timestamp" json:"deadline"`
	Icon          string          `gorm:"type:varchar(50)" json:"icon"`
	IsCompleted   bool            `gorm:"not null;default:false" json:"isCompleted"`
	CreatedAt     time.Time       `gorm:"autoCreateTime;not null" json:"createdAt"`
	UpdatedAt     time.Time       `gorm:"autoUpdateTime;not null" json:"updatedAt"`
}

func (Goal) TableName() string {
	return "goals"
}

func New(userID ulid.ULID, name string, targetAmount decimal.Decimal, deadline *time.Time, icon string) (*Goal, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, appErrors.NewValidationError("name", "name cannot be empty")
	}
	if !targetAmount.IsPositive() {
		return nil, appErrors.NewValidationError("targetAmount", "targetAmount must be greater than zero")
	}

	now := pkg.SetTimestamps()
	return &Goal{
		Id:            pkg.GenerateULIDObject(),
		UserId:        userID,
		Name:          name,
		TargetAmount:  targetAmount,
		CurrentAmount: decimal.Zero,
		Deadline:      deadline,
		Icon:          icon,
		CreatedAt:     now,
		UpdatedAt:     now,
	}, nil
}

// WithContribution returns a copy with the amount added. Crossing the target
// marks the goal completed.
func (g Goal) WithContribution(amount decimal.Decimal) *Goal {
	g.CurrentAmount = g.CurrentAmount.Add(amount)
	g.IsCompleted = g.CurrentAmount.GreaterThanOrEqual(g.TargetAmount)
	g.UpdatedAt = pkg.SetTimestamps()
	return &g
}

// Progress is the fraction of the target reached, capped at 1.
func (g *Goal) Progress() decimal.Decimal {
	if !g.TargetAmount.IsPositive() {
		return decimal.Zero
	}
	progress := g.CurrentAmount.Div(g.TargetAmount)
	if progress.GreaterThan(decimal.NewFromInt(1)) {
		return decimal.NewFromInt(1)
	}
	return progress
}
