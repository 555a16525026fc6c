package fx

import (
	"time"

	"Spendly/internal/domain/budget"
	"Spendly/internal/domain/category"
	"Spendly/internal/domain/goal"
	"Spendly/internal/domain/insights"
	"Spendly/internal/domain/suggestions"
	syncdomain "Spendly/internal/domain/sync"
	"Spendly/internal/domain/transaction"
	"Spendly/internal/domain/user"
	"Spendly/internal/middleware"
	"Spendly/internal/routes"

	"go.uber.org/fx"
)

var RoutesModule = fx.Module("routes",
	fx.Provide(
		newHandler,
		newRateLimiter,
	),
)

func newHandler(
	userSvc *user.Service,
	syncSvc *syncdomain.Service,
	transactionSvc *transaction.Service,
	categorySvc *category.Service,
	budgetSvc *budget.Service,
	goalSvc *goal.Service,
	insightsSvc *insights.Service,
	suggestionsSvc *suggestions.Service,
) *routes.Handler {
	return &routes.Handler{
		UserService:        userSvc,
		SyncService:        syncSvc,
		TransactionService: transactionSvc,
		CategoryService:    categorySvc,
		BudgetService:      budgetSvc,
		GoalService:        goalSvc,
		InsightsService:    insightsSvc,
		SuggestionsService: suggestionsSvc,
	}
}

func newRateLimiter() *middleware.RateLimiter {
	return middleware.NewRateLimiter(100, time.Minute)
}
