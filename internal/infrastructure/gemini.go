package infrastructure

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"Spendly/config"
	"Spendly/internal/domain/categorization"
	"Spendly/internal/logger"

	"google.golang.org/genai"
)

// uncategorizedName is the sentinel every degraded prediction carries.
const uncategorizedName = "Uncategorized"

// GeminiPredictor asks Gemini to pick one of the caller-supplied category
// names for a merchant. Built to degrade: any failure, from transport to
// malformed output, comes back as a zero-confidence prediction so the engine
// falls through to its fallback.
type GeminiPredictor struct {
	client  *genai.Client
	model   string
	timeout time.Duration
}

func NewGeminiPredictor(ctx context.Context, cfg *config.Config) (*GeminiPredictor, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:      cfg.Gemini.APIKey,
		HTTPOptions: genai.HTTPOptions{APIVersion: "v1"},
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	return &GeminiPredictor{
		client:  client,
		model:   cfg.Gemini.Model,
		timeout: cfg.Gemini.Timeout,
	}, nil
}

func (p *GeminiPredictor) Predict(ctx context.Context, merchant string, categories []string) (*categorization.Prediction, error) {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	prompt := buildCategorizationPrompt(merchant, categories)

	contents := []*genai.Content{
		{
			Role:  "user",
			Parts: []*genai.Part{{Text: prompt}},
		},
	}

	resp, err := p.client.Models.GenerateContent(ctx, p.model, contents, nil)
	if err != nil {
		logger.Warn().Err(err).Str("merchant", merchant).Msg("gemini request failed")
		return degraded(), nil
	}

	rawText := resp.Text()
	if rawText == "" {
		return degraded(), nil
	}

	var prediction categorization.Prediction
	if err := json.Unmarshal([]byte(cleanModelJSON(rawText)), &prediction); err != nil {
		logger.Warn().Str("merchant", merchant).Str("response", rawText).Msg("gemini response was not JSON")
		return degraded(), nil
	}
	if prediction.Confidence < 0 || prediction.Confidence > 1 {
		return degraded(), nil
	}

	return &prediction, nil
}

func degraded() *categorization.Prediction {
	return &categorization.Prediction{CategoryName: uncategorizedName, Confidence: 0}
}

func buildCategorizationPrompt(merchant string, categories []string) string {
	var b strings.Builder
	b.WriteString("You are a financial categorization expert.\n")
	fmt.Fprintf(&b, "Task: Categorize the transaction merchant %q into one of the following categories:\n", merchant)
	b.WriteString(strings.Join(categories, ", "))
	b.WriteString("\n\nRules:\n")
	b.WriteString("1. Return ONLY the exact category name from the list.\n")
	b.WriteString("2. If you are unsure, choose \"Uncategorized\" or the most generic option.\n")
	b.WriteString("3. Provide a confidence score between 0.0 and 1.0.\n")
	b.WriteString("4. Output format: JSON { \"category\": \"Category Name\", \"confidence\": 0.95 }\n")
	b.WriteString("Return ONLY valid raw JSON. Do NOT wrap the response in code fences.\n")
	return b.String()
}

// cleanModelJSON strips Markdown fences when the model ignores the
// plain-JSON instruction.
func cleanModelJSON(raw string) string {
	s := strings.TrimSpace(raw)

	if strings.HasPrefix(s, "```") {
		if idx := strings.Index(s, "\n"); idx != -1 {
			s = s[idx+1:]
		} else {
			return s
		}
		s = strings.TrimSpace(s)
	}

	if idx := strings.LastIndex(s, "```"); idx != -1 {
		s = s[:idx]
	}

	return strings.TrimSpace(s)
}
