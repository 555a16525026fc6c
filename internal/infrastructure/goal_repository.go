package infrastructure

import (
	"context"
	"errors"
	"time"

	"Spendly/internal/domain/goal"
	appErrors "Spendly/internal/errors"
	"Spendly/internal/pkg"

	"github.com/oklog/ulid/v2"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type GoalRepository struct {
	DB *gorm.DB
}

type goalDB struct {
	Id            string          `gorm:"type:varchar(26);primaryKey"`
	UserId        string          `gorm:"type:varchar(26);not null;index:idx_goals_user_id"`
	Name          string          `gorm:"type:varchar(100);not null"`
	TargetAmount  decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	CurrentAmount decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0"`
	Deadline      *time.Time      `gorm:"type:timestamp"`
	Icon          string          `gorm:"type:varchar(50)"`
	IsCompleted   bool            `gorm:"not null;default:false"`
	CreatedAt     time.Time       `gorm:"autoCreateTime;not null"`
	UpdatedAt     time.Time       `gorm:"autoUpdateTime;not null"`
}

func (goalDB) TableName() string {
	return "goals"
}

func toDomainGoal(gdb *goalDB) (*goal.Goal, error) {
	id, err := pkg.ParseULID(gdb.Id)
	if err != nil {
		return nil, appErrors.ErrInternalServer.WithError(err)
	}
	userID, err := pkg.ParseULID(gdb.UserId)
	if err != nil {
		return nil, appErrors.ErrInternalServer.WithError(err)
	}

	return &goal.Goal{
		Id:            id,
		UserId:        userID,
		Name:          gdb.Name,
		TargetAmount:  gdb.TargetAmount,
		CurrentAmount: gdb.CurrentAmount,
		Deadline:      gdb.Deadline,
		Icon:          gdb.Icon,
		IsCompleted:   gdb.IsCompleted,
		CreatedAt:     gdb.CreatedAt,
		UpdatedAt:     gdb.UpdatedAt,
	}, nil
}

func toDBGoal(g *goal.Goal) *goalDB {
	return &goalDB{
		Id:            g.Id.String(),
		UserId:        g.UserId.String(),
		Name:          g.Name,
		TargetAmount:  g.TargetAmount,
		CurrentAmount: g.CurrentAmount,
		Deadline:      g.Deadline,
		Icon:          g.Icon,
		IsCompleted:   g.IsCompleted,
		CreatedAt:     g.CreatedAt,
		UpdatedAt:     g.UpdatedAt,
	}
}

func (r *GoalRepository) Save(ctx context.Context, g *goal.Goal) error {
	if err := r.DB.WithContext(ctx).Table("goals").Save(toDBGoal(g)).Error; err != nil {
		return appErrors.NewDatabaseError(err)
	}
	return nil
}

func (r *GoalRepository) GetByID(ctx context.Context, id ulid.ULID, userID ulid.ULID) (*goal.Goal, error) {
	var gdb goalDB
	err := r.DB.WithContext(ctx).Table("goals").
		Where("id = ? AND user_id = ?", id.String(), userID.String()).
		First(&gdb).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, appErrors.ErrGoalNotFound.WithError(err)
		}
		return nil, appErrors.NewDatabaseError(err)
	}
	return toDomainGoal(&gdb)
}

func (r *GoalRepository) GetByUser(ctx context.Context, userID ulid.ULID) ([]*goal.Goal, error) {
	var rows []goalDB
	err := r.DB.WithContext(ctx).Table("goals").
		Where("user_id = ?", userID.String()).
		Order("created_at ASC").
		Find(&rows).Error
	if err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}

	goals := make([]*goal.Goal, 0, len(rows))
	for i := range rows {
		g, err := toDomainGoal(&rows[i])
		if err != nil {
			return nil, err
		}
		goals = append(goals, g)
	}
	return goals, nil
}

func (r *GoalRepository) Delete(ctx context.Context, id ulid.ULID, userID ulid.ULID) error {
	result := r.DB.WithContext(ctx).Table("goals").
		Where("id = ? AND user_id = ?", id.String(), userID.String()).
		Delete(&goalDB{})
	if result.Error != nil {
		return appErrors.NewDatabaseError(result.Error)
	}
	if result.RowsAffected == 0 {
		return appErrors.ErrGoalNotFound
	}
	return nil
}
