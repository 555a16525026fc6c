package fx

import (
	"context"

	"Spendly/internal/domain/budget"
	"Spendly/internal/domain/categorization"
	"Spendly/internal/domain/category"
	"Spendly/internal/domain/goal"
	"Spendly/internal/domain/insights"
	"Spendly/internal/domain/suggestions"
	syncdomain "Spendly/internal/domain/sync"
	"Spendly/internal/domain/transaction"
	"Spendly/internal/domain/user"
	"Spendly/internal/infrastructure"

	"go.uber.org/fx"
)

// DomainModule provides every domain service and warms up the
// categorization engine before the server takes traffic.
var DomainModule = fx.Module("domain",
	fx.Provide(
		newUserService,
		newCategoryService,
		newCategorizationEngine,
		newTransactionService,
		newSyncService,
		newBudgetService,
		newGoalService,
		newInsightsService,
		newSuggestionsService,
	),
	fx.Invoke(
		initializeEngine,
	),
)

func newUserService(repo *infrastructure.UserRepository) *user.Service {
	return user.NewService(repo)
}

func newCategoryService(repo *infrastructure.CategoryRepository) *category.Service {
	return category.NewService(repo)
}

func newCategorizationEngine(
	mappingRepo *infrastructure.MerchantMappingRepository,
	categoryRepo *infrastructure.CategoryRepository,
	predictor categorization.Predictor,
) *categorization.Engine {
	return categorization.NewEngine(mappingRepo, categoryRepo, predictor)
}

func newTransactionService(
	repo *infrastructure.TransactionRepository,
	categorySvc *category.Service,
	engine *categorization.Engine,
) *transaction.Service {
	return transaction.NewService(repo, categorySvc, engine)
}

func newSyncService(
	userSvc *user.Service,
	engine *categorization.Engine,
	repo *infrastructure.TransactionRepository,
) *syncdomain.Service {
	return syncdomain.NewService(userSvc, engine, repo)
}

func newBudgetService(
	repo *infrastructure.BudgetRepository,
	categorySvc *category.Service,
) *budget.Service {
	return budget.NewService(repo, categorySvc)
}

func newGoalService(repo *infrastructure.GoalRepository) *goal.Service {
	return goal.NewService(repo)
}

func newInsightsService(
	transactionRepo *infrastructure.TransactionRepository,
	budgetRepo *infrastructure.BudgetRepository,
	goalRepo *infrastructure.GoalRepository,
) *insights.Service {
	return insights.NewService(transactionRepo, budgetRepo, goalRepo)
}

func newSuggestionsService(
	transactionRepo *infrastructure.TransactionRepository,
	budgetRepo *infrastructure.BudgetRepository,
	goalRepo *infrastructure.GoalRepository,
) *suggestions.Service {
	return suggestions.NewService(transactionRepo, budgetRepo, goalRepo)
}

// initializeEngine loads rules and categories into memory. Failure here is
// fatal on purpose: a process without a fallback category cannot honor its
// ingestion contract.
func initializeEngine(engine *categorization.Engine) error {
	return engine.Initialize(context.Background())
}
