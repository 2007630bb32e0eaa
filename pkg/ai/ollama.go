package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// OllamaService implements AssistantService using a local Ollama model.
// Ollama has no response-schema support, so the JSON object is carved out of
// the generated text before unmarshaling.
type OllamaService struct {
	baseURL string
	model   string
	client  *http.Client
}

// NewOllamaService creates a new Ollama service
func NewOllamaService(baseURL, model string) *OllamaService {
	if baseURL == "" {
		baseURL = "http://localhost:11434"
	}
	if model == "" {
		model = "llama3"
	}
	return &OllamaService{
		baseURL: baseURL,
		model:   model,
		client:  &http.Client{Timeout: 120 * time.Second},
	}
}

// ParseTodo implements AssistantService
func (o *OllamaService) ParseTodo(ctx context.Context, text string, now time.Time) (*TodoExtraction, error) {
	currentDate := now.Format("2006-01-02")

	prompt := fmt.Sprintf(`You convert a natural-language sentence into one structured todo item.

TODAY: %s (%s)

INSTRUCTIONS:
1. Extract: title (required), description, due_date (YYYY-MM-DD), due_time (HH:mm, 24-hour), priority (high/medium/low), category.
2. Resolve relative dates ("today", "tomorrow", "next friday") against TODAY.
3. Map vague times: morning 09:00, noon 12:00, afternoon 14:00, evening 18:00, night 21:00.
4. Priority high for urgent/important/asap wording, low for someday/later wording, medium otherwise.
5. Omit fields that are not mentioned.

Return ONLY a JSON object, no other text.

SENTENCE:
%s

JSON OUTPUT:`, currentDate, now.Weekday().String(), text)

	raw, err := o.generate(ctx, prompt, 300)
	if err != nil {
		return nil, err
	}

	var extraction TodoExtraction
	if err := json.Unmarshal([]byte(extractJSON(raw, "{", "}")), &extraction); err != nil {
		return nil, &Error{Kind: KindUnclassified, Message: "AI returned malformed output", Detail: err.Error()}
	}
	return &extraction, nil
}

// SummarizeTodos implements AssistantService
func (o *OllamaService) SummarizeTodos(ctx context.Context, sum SummaryContext) (*SummaryResult, error) {
	periodText := "today's"
	if sum.Period == "week" {
		periodText = "this week's"
	}

	prompt := fmt.Sprintf(`Analyze %s todo list and produce a summary for the user.

%s

TODO DETAILS:
%s

Current date: %s

Return ONLY a JSON object with these fields:
- "summary": string, period status with completion rate
- "urgentTasks": array of strings, titles of incomplete high-priority todos (max 5)
- "insights": array of strings, data-grounded observations about completion and time patterns
- "recommendations": array of strings, 2-4 actionable suggestions

Ground every statement in the statistics above; do not invent numbers.

JSON OUTPUT:`, periodText, sum.AnalysisData, sum.TodoList, sum.CurrentDate)

	raw, err := o.generate(ctx, prompt, 800)
	if err != nil {
		return nil, err
	}

	var result SummaryResult
	if err := json.Unmarshal([]byte(extractJSON(raw, "{", "}")), &result); err != nil {
		return nil, &Error{Kind: KindUnclassified, Message: "AI returned malformed output", Detail: err.Error()}
	}
	return &result, nil
}

func (o *OllamaService) generate(ctx context.Context, prompt string, numPredict int) (string, error) {
	url := o.baseURL + "/api/generate"

	payload := map[string]interface{}{
		"model":  o.model,
		"prompt": prompt,
		"stream": false,
		"options": map[string]interface{}{
			"temperature": 0.2,
			"num_predict": numPredict,
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	var respBody []byte
	err = callWithRetry(ctx, func() error {
		req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewReader(body))
		if err != nil {
			return err
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := o.client.Do(req)
		if err != nil {
			return fmt.Errorf("ollama request failed: %w", err)
		}
		defer resp.Body.Close()

		respBody, err = io.ReadAll(resp.Body)
		if err != nil {
			return fmt.Errorf("failed to read response: %w", err)
		}

		if resp.StatusCode != http.StatusOK {
			return &ProviderError{StatusCode: resp.StatusCode, Body: string(respBody)}
		}
		return nil
	})
	if err != nil {
		return "", err
	}

	var result struct {
		Response string `json:"response"`
	}
	if err := json.Unmarshal(respBody, &result); err != nil {
		return "", fmt.Errorf("failed to parse response: %w", err)
	}

	return result.Response, nil
}

// extractJSON strips markdown fences and surrounding prose from a model reply.
func extractJSON(text, openTok, closeTok string) string {
	text = strings.TrimSpace(text)
	if strings.HasPrefix(text, "```json") {
		text = strings.TrimPrefix(text, "```json")
		text = strings.TrimSuffix(text, "```")
	} else if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```")
		text = strings.TrimSuffix(text, "```")
	}
	text = strings.TrimSpace(text)

	start := strings.Index(text, openTok)
	end := strings.LastIndex(text, closeTok)
	if start != -1 && end != -1 && end > start {
		return text[start : end+1]
	}
	return text
}
