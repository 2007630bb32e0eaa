package ai

// Config holds AI provider configuration
type Config struct {
	Provider ProviderType // "gemini", "ollama" or "auto"

	// Gemini config
	GeminiAPIKey string
	GeminiModel  string

	// Ollama config
	OllamaBaseURL string // e.g., "http://localhost:11434"
	OllamaModel   string // e.g., "llama3", "mistral"
}

// NewAssistantService creates an AssistantService based on the config.
// This is the factory function - switch AI provider by changing config.Provider
func NewAssistantService(cfg Config) (AssistantService, error) {
	switch cfg.Provider {
	case ProviderGemini:
		if cfg.GeminiAPIKey == "" {
			return nil, ErrNotConfigured()
		}
		return NewGeminiService(cfg.GeminiAPIKey, cfg.GeminiModel), nil

	case ProviderOllama:
		return NewOllamaService(cfg.OllamaBaseURL, cfg.OllamaModel), nil

	default:
		// Gemini first when a key is available, with Ollama as the
		// fallback for transient failures; Ollama alone otherwise
		ollama := NewOllamaService(cfg.OllamaBaseURL, cfg.OllamaModel)
		if cfg.GeminiAPIKey != "" {
			gemini := NewGeminiService(cfg.GeminiAPIKey, cfg.GeminiModel)
			return NewFallbackService(gemini, ollama), nil
		}
		return ollama, nil
	}
}
