package fx

import (
	"context"

	"Spendly/config"
	"Spendly/internal/domain/categorization"
	"Spendly/internal/infrastructure"
	"Spendly/internal/logger"

	"go.uber.org/fx"
	"gorm.io/gorm"
)

var InfrastructureModule = fx.Module("infrastructure",
	fx.Provide(
		newDatabase,
		newUserRepository,
		newTransactionRepository,
		newCategoryRepository,
		newMerchantMappingRepository,
		newBudgetRepository,
		newGoalRepository,
		newPredictor,
	),
	fx.Invoke(
		seedDatabase,
	),
)

func newDatabase(cfg *config.Config) (*gorm.DB, error) {
	return infrastructure.NewDb(cfg)
}

func newUserRepository(db *gorm.DB) *infrastructure.UserRepository {
	return &infrastructure.UserRepository{DB: db}
}

func newTransactionRepository(db *gorm.DB) *infrastructure.TransactionRepository {
	return &infrastructure.TransactionRepository{DB: db}
}

func newCategoryRepository(db *gorm.DB) *infrastructure.CategoryRepository {
	return &infrastructure.CategoryRepository{DB: db}
}

func newMerchantMappingRepository(db *gorm.DB) *infrastructure.MerchantMappingRepository {
	return &infrastructure.MerchantMappingRepository{DB: db}
}

func newBudgetRepository(db *gorm.DB) *infrastructure.BudgetRepository {
	return &infrastructure.BudgetRepository{DB: db}
}

func newGoalRepository(db *gorm.DB) *infrastructure.GoalRepository {
	return &infrastructure.GoalRepository{DB: db}
}

func newPredictor(cfg *config.Config) (categorization.Predictor, error) {
	if !cfg.Gemini.Enabled {
		logger.Info().Msg("AI categorization disabled; rule matching and fallback only")
		return nil, nil
	}
	return infrastructure.NewGeminiPredictor(context.Background(), cfg)
}

func seedDatabase(db *gorm.DB) error {
	return infrastructure.SeedDatabase(context.Background(), db)
}
