package router

import (
	"net/http"

	"github.com/DeniseL168/FinanceApp/internal/ai"
	"github.com/DeniseL168/FinanceApp/internal/config"
	"github.com/DeniseL168/FinanceApp/internal/handler"
	"github.com/DeniseL168/FinanceApp/internal/middleware"
	"github.com/DeniseL168/FinanceApp/internal/store"
	"github.com/DeniseL168/FinanceApp/internal/token"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
)

// SetupRouter wires stores, handlers and middleware onto a gin engine.
func SetupRouter(cfg *config.Config, db *mongo.Database, tokens *token.Service) *gin.Engine {
	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	users := store.NewUsers(db)
	todos := store.NewTodos(db)
	txs := store.NewTransactions(db)

	authHandler := handler.NewAuthHandler(users, tokens)
	todoHandler := handler.NewTodoHandler(todos)
	txHandler := handler.NewTransactionHandler(txs)
	exportHandler := handler.NewExportHandler(txs)
	aiClient := ai.NewClient(cfg.AI.APIKey, cfg.AI.BaseURL, cfg.AI.Model)
	aiHandler := handler.NewAIHandler(txs, aiClient)

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Database online"})
	})

	r.POST("/register", authHandler.Register)
	r.POST("/login", authHandler.Login)

	protected := r.Group("")
	protected.Use(middleware.Auth(tokens))

	protected.POST("/logout", authHandler.Logout)
	protected.GET("/profile", authHandler.Profile)

	protected.GET("/todos", todoHandler.List)
	protected.GET("/todo", todoHandler.Get)
	protected.POST("/todo", todoHandler.Create)
	protected.PUT("/todo", todoHandler.Update)
	protected.DELETE("/todo", todoHandler.Delete)

	protected.GET("/transactions", txHandler.List)
	protected.POST("/transaction", txHandler.Create)
	protected.PUT("/transaction", txHandler.Update)
	protected.DELETE("/transaction", txHandler.Delete)

	protected.GET("/export/csv", exportHandler.CSV)
	protected.GET("/export/xlsx", exportHandler.XLSX)

	protected.POST("/ai_chat", aiHandler.Chat)

	return r
}
