package delivery

import (
	"net/http"

	"todo-backend/internal/assist/usecase"
	tododomain "todo-backend/internal/todo/domain"
	"todo-backend/pkg/ai"

	"github.com/gin-gonic/gin"
)

// AssistHandler handles the AI pipeline HTTP requests
type AssistHandler struct {
	assistUsecase usecase.AssistUsecase
	devMode       bool
}

// NewAssistHandler creates a new AssistHandler
func NewAssistHandler(assistUsecase usecase.AssistUsecase, devMode bool) *AssistHandler {
	return &AssistHandler{
		assistUsecase: assistUsecase,
		devMode:       devMode,
	}
}

// ParseTodoRequest represents the request body for natural-language ingestion
type ParseTodoRequest struct {
	Text string `json:"text"`
}

// SummarizeTodosRequest represents the request body for summarization
type SummarizeTodosRequest struct {
	Todos  []*tododomain.Todo `json:"todos"`
	Period string             `json:"period"`
}

// ParseTodo converts a free-text sentence into a structured todo draft
// POST /api/ai/parse-todo
func (h *AssistHandler) ParseTodo(c *gin.Context) {
	var req ParseTodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "input text is required"})
		return
	}

	draft, err := h.assistUsecase.ParseTodo(c.Request.Context(), req.Text)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, draft)
}

// SummarizeTodos turns a todo collection into a narrative progress summary
// POST /api/ai/summarize-todos
func (h *AssistHandler) SummarizeTodos(c *gin.Context) {
	var req SummarizeTodosRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "todo list is required"})
		return
	}
	if req.Todos == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "todo list is required"})
		return
	}

	result, err := h.assistUsecase.SummarizeTodos(c.Request.Context(), req.Todos, req.Period)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// respondError maps a classified failure onto the HTTP response. Model and
// request-validity errors carry the raw provider detail since that is the
// actionable part; unclassified detail is attached only in development.
func (h *AssistHandler) respondError(c *gin.Context, err error) {
	classified := ai.Classify(err)

	message := classified.Message
	switch classified.Kind {
	case ai.KindModelNotFound, ai.KindBadRequest:
		if classified.Detail != "" {
			message = classified.Message + " (" + classified.Detail + ")"
		}
	}

	body := gin.H{"error": message}
	if h.devMode && classified.Kind == ai.KindUnclassified && classified.Detail != "" {
		body["details"] = classified.Detail
	}

	c.JSON(classified.HTTPStatus(), body)
}
