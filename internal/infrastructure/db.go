package infrastructure

import (
	"Spendly/config"
	"Spendly/internal/domain/budget"
	"Spendly/internal/domain/categorization"
	"Spendly/internal/domain/category"
	"Spendly/internal/domain/goal"
	"Spendly/internal/domain/transaction"
	"Spendly/internal/domain/user"
	"Spendly/internal/logger"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func NewDb(cfg *config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{})
	if err != nil {
		logger.Error().
			Err(err).
			Str("host", cfg.Database.Host).
			Int("port", cfg.Database.Port).
			Str("database", cfg.Database.DBName).
			Msg("failed to connect to database")
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		logger.Error().Err(err).Msg("failed to obtain database handle")
		return nil, err
	}

	sqlDB.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	logger.Info().
		Str("host", cfg.Database.Host).
		Int("port", cfg.Database.Port).
		Str("database", cfg.Database.DBName).
		Msg("database connection established")

	if err := runMigrations(db); err != nil {
		return nil, err
	}

	return db, nil
}

func runMigrations(db *gorm.DB) error {
	logger.Info().Msg("running migrations...")

	entities := []interface{}{
		&user.User{},
		&category.Category{},
		&transaction.Transaction{},
		&categorization.MerchantMapping{},
		&budget.Budget{},
		&goal.Goal{},
	}

	for _, entity := range entities {
		if err := db.AutoMigrate(entity); err != nil {
			logger.Error().
				Err(err).
				Str("entity", getEntityName(entity)).
				Msg("failed to migrate entity")
			return err
		}
	}

	logger.Info().Msg("migrations completed")
	return nil
}

func getEntityName(entity interface{}) string {
	switch entity.(type) {
	case *user.User:
		return "User"
	case *category.Category:
		return "Category"
	case *transaction.Transaction:
		return "Transaction"
	case *categorization.MerchantMapping:
		return "MerchantMapping"
	case *budget.Budget:
		return "Budget"
	case *goal.Goal:
		return "Goal"
	default:
		return "Unknown"
	}
}
