package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAssistantService(t *testing.T) {
	t.Run("gemini requires an api key", func(t *testing.T) {
		_, err := NewAssistantService(Config{Provider: ProviderGemini})
		require.Error(t, err)

		classified := Classify(err)
		assert.Equal(t, KindConfigMissing, classified.Kind)
	})

	t.Run("gemini with key", func(t *testing.T) {
		svc, err := NewAssistantService(Config{Provider: ProviderGemini, GeminiAPIKey: "k"})
		require.NoError(t, err)
		assert.IsType(t, &GeminiService{}, svc)
	})

	t.Run("ollama never requires credentials", func(t *testing.T) {
		svc, err := NewAssistantService(Config{Provider: ProviderOllama})
		require.NoError(t, err)
		assert.IsType(t, &OllamaService{}, svc)
	})

	t.Run("auto wraps gemini and ollama when key is set", func(t *testing.T) {
		svc, err := NewAssistantService(Config{Provider: ProviderAuto, GeminiAPIKey: "k"})
		require.NoError(t, err)
		assert.IsType(t, &FallbackService{}, svc)
	})

	t.Run("auto falls back to ollama without a key", func(t *testing.T) {
		svc, err := NewAssistantService(Config{Provider: ProviderAuto})
		require.NoError(t, err)
		assert.IsType(t, &OllamaService{}, svc)
	})
}
