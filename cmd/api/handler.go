package api

import (
	"log"

	assistUsecasePkg "todo-backend/internal/assist/usecase"
	authUsecasePkg "todo-backend/internal/auth/usecase"
	todoUsecasePkg "todo-backend/internal/todo/usecase"
	"todo-backend/pkg/ai"
	"todo-backend/pkg/config"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	authUsecase   authUsecasePkg.AuthUsecase
	todoUsecase   todoUsecasePkg.TodoUsecase
	assistUsecase assistUsecasePkg.AssistUsecase
	config        *config.Config
}

func NewHandler(authUc authUsecasePkg.AuthUsecase, todoUc todoUsecasePkg.TodoUsecase, assistUc assistUsecasePkg.AssistUsecase, cfg *config.Config) *Handler {
	// Initialize AI service; the assist endpoints report the missing
	// configuration per-request when this fails
	aiService, err := ai.NewAssistantService(ai.Config{
		Provider:      ai.ProviderType(cfg.AIProvider),
		GeminiAPIKey:  cfg.GeminiAPIKey,
		GeminiModel:   cfg.GeminiModel,
		OllamaBaseURL: cfg.OllamaBaseURL,
		OllamaModel:   cfg.OllamaModel,
	})
	if err != nil {
		log.Printf("Warning: Failed to initialize AI service: %v", err)
	} else {
		log.Printf("AI service initialized with provider: %s", cfg.AIProvider)
		assistUc.SetAssistantService(aiService)
	}

	return &Handler{
		authUsecase:   authUc,
		todoUsecase:   todoUc,
		assistUsecase: assistUc,
		config:        cfg,
	}
}

func (h *Handler) Start(addr string) error {
	r := gin.Default()
	gin.SetMode(gin.ReleaseMode)

	// CORS middleware
	r.Use(func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		if origin != "" {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		} else {
			c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		}

		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	SetupRoutes(r, h.authUsecase, h.todoUsecase, h.assistUsecase, h.config)

	return r.Run(addr)
}
