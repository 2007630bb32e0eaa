package main

import (
	"log"
	"os"

	api "todo-backend/cmd/api"
	assistUsecase "todo-backend/internal/assist/usecase"
	authdomain "todo-backend/internal/auth/domain"
	authRepo "todo-backend/internal/auth/repository"
	authUsecase "todo-backend/internal/auth/usecase"
	tododomain "todo-backend/internal/todo/domain"
	todoRepo "todo-backend/internal/todo/repository"
	todoUsecase "todo-backend/internal/todo/usecase"
	"todo-backend/pkg/config"
	"todo-backend/pkg/database"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.NewPostgresConnection(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Auto-migrate database schemas
	if err := db.AutoMigrate(&authdomain.User{}, &authdomain.RefreshToken{}, &tododomain.Todo{}); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Initialize repositories (dependency injection)
	userRepo := authRepo.NewUserRepository(db)
	todoRepository := todoRepo.NewTodoRepository(db)

	// Initialize use cases
	authUsecaseInstance := authUsecase.NewAuthUsecase(userRepo, cfg)
	todoUsecaseInstance := todoUsecase.NewTodoUsecase(todoRepository)
	assistUsecaseInstance := assistUsecase.NewAssistUsecase()

	// Initialize HTTP handler
	handler := api.NewHandler(authUsecaseInstance, todoUsecaseInstance, assistUsecaseInstance, cfg)

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.Port
	}

	log.Printf("Server starting on port %s", port)
	if err := handler.Start(":" + port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
