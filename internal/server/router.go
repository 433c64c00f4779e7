// Package server assembles the HTTP adapter the local UI talks to.
package server

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"quickbudg/internal/config"
	_ "quickbudg/internal/docs" // Register swagger docs
	"quickbudg/internal/handlers"
	"quickbudg/internal/middleware"
	"quickbudg/internal/services"
)

// NewRouter wires the handlers for every service in c onto a Gin engine.
func NewRouter(cfg *config.Config, c *services.Container, live *handlers.LiveHandler) *gin.Engine {
	budgetTypeHandler := handlers.NewBudgetTypeHandler(c.BudgetTypes)
	budgetTotalHandler := handlers.NewBudgetTotalHandler(c.BudgetTotals)
	expenseHandler := handlers.NewExpenseHandler(c.Expenses)

	router := gin.New()
	router.Use(middleware.RequestLogging())
	router.Use(middleware.Recovery())
	router.Use(middleware.ErrorHandler())
	corsConfig := cors.Config{
		AllowOrigins:     cfg.CORSAllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "X-Request-ID"},
		ExposeHeaders:    []string{"X-Request-ID"},
		AllowWebSockets:  true,
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}
	// cors rejects an empty origin list
	if len(corsConfig.AllowOrigins) == 0 {
		corsConfig.AllowAllOrigins = true
	}
	router.Use(cors.New(corsConfig))

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")

	budgetTypes := v1.Group("/budget-types")
	budgetTypes.POST("", budgetTypeHandler.CreateBudgetType)
	budgetTypes.GET("", budgetTypeHandler.GetBudgetTypes)
	budgetTypes.GET("/:id", budgetTypeHandler.GetBudgetType)

	budgetTotals := v1.Group("/budget-totals")
	budgetTotals.POST("", budgetTotalHandler.CreateBudgetTotal)
	budgetTotals.GET("", budgetTotalHandler.GetBudgetTotals)
	budgetTotals.GET("/:id", budgetTotalHandler.GetBudgetTotal)
	budgetTotals.PUT("/:id", budgetTotalHandler.UpdateBudgetTotal)
	budgetTotals.DELETE("/:id", budgetTotalHandler.DeleteBudgetTotal)
	budgetTotals.POST("/:id/expenses", expenseHandler.AddExpense)

	v1.GET("/expenses/:id", expenseHandler.GetExpense)
	v1.GET("/live", live.HandleLive)

	return router
}
