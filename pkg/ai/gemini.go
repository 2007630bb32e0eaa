package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// GeminiService implements AssistantService against the Gemini REST API.
// Structured output is enforced with a JSON response schema so the model
// answer can be unmarshaled directly into the contract types.
type GeminiService struct {
	apiKey string
	model  string
	client *http.Client
}

// NewGeminiService creates a new Gemini service
func NewGeminiService(apiKey, model string) *GeminiService {
	if model == "" {
		model = "gemini-2.5-flash"
	}
	return &GeminiService{
		apiKey: apiKey,
		model:  model,
		client: &http.Client{Timeout: 60 * time.Second},
	}
}

var parseTodoSchema = map[string]interface{}{
	"type": "OBJECT",
	"properties": map[string]interface{}{
		"title":       map[string]interface{}{"type": "STRING", "description": "short title of the todo"},
		"description": map[string]interface{}{"type": "STRING", "description": "optional detailed description"},
		"due_date":    map[string]interface{}{"type": "STRING", "description": "due date in YYYY-MM-DD format"},
		"due_time":    map[string]interface{}{"type": "STRING", "description": "due time in HH:mm 24-hour format"},
		"priority":    map[string]interface{}{"type": "STRING", "enum": []string{"high", "medium", "low"}},
		"category":    map[string]interface{}{"type": "STRING", "description": "category such as work, personal, health, study"},
	},
	"required": []string{"title", "priority"},
}

var summarizeSchema = map[string]interface{}{
	"type": "OBJECT",
	"properties": map[string]interface{}{
		"summary":         map[string]interface{}{"type": "STRING", "description": "todo summary including the completion rate"},
		"urgentTasks":     map[string]interface{}{"type": "ARRAY", "items": map[string]interface{}{"type": "STRING"}},
		"insights":        map[string]interface{}{"type": "ARRAY", "items": map[string]interface{}{"type": "STRING"}},
		"recommendations": map[string]interface{}{"type": "ARRAY", "items": map[string]interface{}{"type": "STRING"}},
	},
	"required": []string{"summary", "urgentTasks", "insights", "recommendations"},
}

// ParseTodo implements AssistantService
func (g *GeminiService) ParseTodo(ctx context.Context, text string, now time.Time) (*TodoExtraction, error) {
	currentDate := now.Format("2006-01-02")
	weekday := now.Weekday().String()

	prompt := fmt.Sprintf(`Analyze the following natural-language sentence and convert it into a structured todo item.

Input sentence: "%s"

=== Rules ===

1. title: extract only the core action, kept short.

2. description: optional detail based on the original text.

3. due_date conversion, always YYYY-MM-DD:
   - "today" -> %s
   - "tomorrow" -> current date + 1 day
   - "day after tomorrow" -> current date + 2 days
   - "this <weekday>" -> the nearest upcoming occurrence of that weekday
   - "next <weekday>" -> that weekday of next week
   - no date mentioned -> omit the field
   - current date: %s (%s)

4. due_time conversion, always 24-hour HH:mm:
   - "morning" -> 09:00, "noon"/"lunch" -> 12:00, "afternoon" -> 14:00 (only when no explicit time)
   - "evening" -> 18:00, "night" -> 21:00
   - "N am" -> 0N:00, "N pm" -> (N+12):00, bare "N o'clock" -> 0N:00
   - no time mentioned -> omit the field
   - if only an hour is given, append ":00"

5. priority, exactly one of:
   - "high": urgent, important, asap, must, immediately, critical
   - "medium": normal wording or no priority keywords
   - "low": leisurely, someday, later, eventually, whenever

6. category: work, personal, health, study when keywords match; otherwise omit.

Respond with JSON only, matching the schema exactly.`, text, currentDate, currentDate, weekday)

	var extraction TodoExtraction
	if err := g.generateJSON(ctx, prompt, parseTodoSchema, &extraction); err != nil {
		return nil, err
	}
	return &extraction, nil
}

// SummarizeTodos implements AssistantService
func (g *GeminiService) SummarizeTodos(ctx context.Context, sum SummaryContext) (*SummaryResult, error) {
	periodText := "today's"
	if sum.Period == "week" {
		periodText = "this week's"
	}

	prompt := fmt.Sprintf(`Analyze %s todo list in depth and produce a helpful summary, insights, and actionable recommendations for the user.

%s

=== Todo details ===
%s

Current date: %s

=== Writing guidance ===

1. summary: concise status of the period (total count, completed count, completion rate), remaining and urgent work highlighted.
2. urgentTasks: titles of incomplete high-priority todos only, at most 5, nearest deadline first.
3. insights: completion-rate patterns by priority and category, deadline compliance and postponement patterns, time-of-day concentration, and at least one piece of positive feedback on what the user is doing well.
4. recommendations: 2-4 concrete, immediately actionable suggestions for prioritization and scheduling.

Ground every statement in the statistics above; do not invent numbers. Keep the tone encouraging and specific.`, periodText, sum.AnalysisData, sum.TodoList, sum.CurrentDate)

	var result SummaryResult
	if err := g.generateJSON(ctx, prompt, summarizeSchema, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// generateJSON performs one generateContent round-trip with a JSON response
// schema and unmarshals the model text into out.
func (g *GeminiService) generateJSON(ctx context.Context, prompt string, schema map[string]interface{}, out interface{}) error {
	url := fmt.Sprintf("https://generativelanguage.googleapis.com/v1beta/models/%s:generateContent?key=%s", g.model, g.apiKey)

	payload := map[string]interface{}{
		"contents": []map[string]interface{}{
			{"parts": []map[string]string{{"text": prompt}}},
		},
		"generationConfig": map[string]interface{}{
			"responseMimeType": "application/json",
			"responseSchema":   schema,
			"temperature":      0.2,
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	var respBody []byte
	err = callWithRetry(ctx, func() error {
		req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewReader(body))
		if err != nil {
			return err
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := g.client.Do(req)
		if err != nil {
			return fmt.Errorf("gemini request failed: %w", err)
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
		return err
	}

	var result struct {
		Candidates []struct {
			Content struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"content"`
		} `json:"candidates"`
	}
	if err := json.Unmarshal(respBody, &result); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}

	if len(result.Candidates) == 0 || len(result.Candidates[0].Content.Parts) == 0 {
		return &Error{Kind: KindUnclassified, Message: "AI processing failed", Detail: "empty model response"}
	}

	text := result.Candidates[0].Content.Parts[0].Text
	if err := json.Unmarshal([]byte(text), out); err != nil {
		// Schema mismatch is reported, not crashed on.
		return &Error{Kind: KindUnclassified, Message: "AI returned malformed output", Detail: err.Error()}
	}
	return nil
}
