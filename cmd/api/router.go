package api

import (
	"net/http"

	assistDelivery "todo-backend/internal/assist/delivery"
	assistUsecasePkg "todo-backend/internal/assist/usecase"
	"todo-backend/internal/auth/delivery"
	authUsecasePkg "todo-backend/internal/auth/usecase"
	todoDelivery "todo-backend/internal/todo/delivery"
	todoUsecasePkg "todo-backend/internal/todo/usecase"
	"todo-backend/pkg/config"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine, authUsecase authUsecasePkg.AuthUsecase, todoUsecase todoUsecasePkg.TodoUsecase, assistUsecase assistUsecasePkg.AssistUsecase, cfg *config.Config) {
	authHandler := delivery.NewAuthHandler(authUsecase)
	todoHandler := todoDelivery.NewTodoHandler(todoUsecase)
	assistHandler := assistDelivery.NewAssistHandler(assistUsecase, cfg.IsDevelopment())

	api := r.Group("/api")
	{
		// Health check (no auth required)
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		// Auth routes
		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.POST("/google", authHandler.GoogleSignIn)
			auth.POST("/refresh", authHandler.RefreshToken)
			auth.POST("/logout", authHandler.Logout)
			auth.GET("/me", delivery.AuthMiddleware(authUsecase), authHandler.Me)
			auth.POST("/set-password", delivery.AuthMiddleware(authUsecase), authHandler.SetPassword)
		}

		// Todo routes (protected)
		todos := api.Group("/todos")
		todos.Use(delivery.AuthMiddleware(authUsecase))
		{
			todos.GET("", todoHandler.GetTodos)
			todos.POST("", todoHandler.CreateTodo)
			todos.GET("/:id", todoHandler.GetTodoByID)
			todos.PUT("/:id", todoHandler.UpdateTodo)
			todos.DELETE("/:id", todoHandler.DeleteTodo)
			todos.PATCH("/:id/complete", todoHandler.SetCompleted)
		}

		// AI routes (protected)
		aiRoutes := api.Group("/ai")
		aiRoutes.Use(delivery.AuthMiddleware(authUsecase))
		{
			aiRoutes.POST("/parse-todo", assistHandler.ParseTodo)
			aiRoutes.POST("/summarize-todos", assistHandler.SummarizeTodos)
		}
	}
}
