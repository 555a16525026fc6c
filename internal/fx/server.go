package fx

import (
	"context"

	"Spendly/config"
	"Spendly/internal/logger"
	"Spendly/internal/middleware"
	"Spendly/internal/routes"

	"github.com/gin-gonic/gin"

	"go.uber.org/fx"
)

var ServerModule = fx.Module("server",
	fx.Provide(
		newRouter,
	),
	fx.Invoke(
		setupRoutes,
	),
)

func newRouter() *gin.Engine {
	return gin.Default()
}

func setupRoutes(
	lc fx.Lifecycle,
	cfg *config.Config,
	router *gin.Engine,
	handler *routes.Handler,
	limiter *middleware.RateLimiter,
) {
	router.Use(middleware.CORSMiddleware())

	// Sync carries the device id in its body, and the category catalog is
	// public, so these skip the device header check.
	public := router.Group("/api")
	public.Use(middleware.RateLimitByDevice(limiter))
	{
		public.POST("/transactions/sync", handler.SyncTransactions)
		public.GET("/categories", handler.ListCategories)
		public.GET("/categories/tree", handler.GetCategoryTree)
	}

	device := router.Group("/api")
	device.Use(middleware.DeviceAuth())
	device.Use(middleware.RateLimitByDevice(limiter))
	{
		device.PATCH("/user/settings", handler.UpdateUserSettings)
		device.POST("/categories", handler.CreateCategory)

		transactions := device.Group("/transactions")
		{
			transactions.GET("", handler.GetTransactions)
			transactions.GET("/:id", handler.GetTransaction)
			transactions.PATCH("/:id/category", handler.UpdateTransactionCategory)
		}

		budgets := device.Group("/budgets")
		{
			budgets.POST("", handler.SetBudget)
			budgets.GET("", handler.ListBudgets)
			budgets.DELETE("/:id", handler.DeleteBudget)
		}

		goals := device.Group("/goals")
		{
			goals.POST("", handler.CreateGoal)
			goals.GET("", handler.ListGoals)
			goals.POST("/:id/contribution", handler.ContributeToGoal)
			goals.DELETE("/:id", handler.DeleteGoal)
		}

		insights := device.Group("/insights")
		{
			insights.GET("/spending-summary", handler.GetSpendingSummary)
			insights.GET("/daily-summary", handler.GetDailySummary)
		}

		device.GET("/suggestions", handler.GetSuggestions)
	}

	serverAddr := ":" + cfg.Server.Port
	logger.Info().
		Str("address", serverAddr).
		Str("environment", cfg.App.Environment).
		Msg("server starting")

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := router.Run(serverAddr); err != nil {
					logger.Fatal().Err(err).Msg("server failed to start")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info().Msg("server stopping")
			return nil
		},
	})
}
