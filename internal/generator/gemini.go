package generator

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/vytor/lecturedeck/internal/logger"
)

type GeminiConfig struct {
	APIKey  string
	Model   string
	Timeout time.Duration
}

// GeminiClient calls Gemini with a JSON response MIME type.
type GeminiClient struct {
	client  *genai.Client
	model   string
	timeout time.Duration
}

var _ Generator = (*GeminiClient)(nil)

// NewGeminiClient creates a client. Without an API key no connection is made
// and every Generate call reports MissingCredentials.
func NewGeminiClient(ctx context.Context, cfg GeminiConfig) (*GeminiClient, error) {
	c := &GeminiClient{
		model:   cfg.Model,
		timeout: cfg.Timeout,
	}
	if cfg.APIKey == "" {
		return c, nil
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.APIKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	c.client = client
	return c, nil
}

func (c *GeminiClient) Close() error {
	if c.client == nil {
		return nil
	}
	return c.client.Close()
}

func (c *GeminiClient) Generate(ctx context.Context, req Request) (*Batch, error) {
	log := logger.FromContext(ctx).WithPrefix("gemini").WithFields(map[string]any{
		"kind":  req.Kind,
		"count": req.Count,
	})

	if c.client == nil {
		log.Error("GEMINI_API_KEY is not configured")
		return nil, newError(MissingCredentials, fmt.Errorf("GEMINI_API_KEY is not configured"))
	}

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	model := c.client.GenerativeModel(c.model)
	model.SetTemperature(0.3)
	model.ResponseMIMEType = "application/json"
	model.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(SystemPrompt)}}

	start := time.Now()
	resp, err := model.GenerateContent(ctx, genai.Text(UserPrompt(req)))
	if err != nil {
		log.Error("Gemini request failed: %v", err)
		return nil, newError(ProviderRejected, err)
	}

	for i, cand := range resp.Candidates {
		if cand.FinishReason != genai.FinishReasonStop {
			log.Warn("candidate %d stopped due to %s", i, cand.FinishReason)
		}
	}

	text := extractText(resp)
	if text == "" {
		log.Warn("Gemini returned empty text")
		return nil, newError(MalformedResponse, fmt.Errorf("empty response"))
	}

	batch, err := ParseBatch(req.Kind, text)
	if err != nil {
		log.Warn("failed to parse Gemini content: %v", err)
		return nil, err
	}

	log.Info("received %d candidates (%d undecodable) in %v", batch.Len(), batch.Discarded, time.Since(start))
	return batch, nil
}

func extractText(resp *genai.GenerateContentResponse) string {
	var text strings.Builder
	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if t, ok := part.(genai.Text); ok {
				text.WriteString(string(t))
			}
		}
		// Only the first candidate carries the answer.
		break
	}
	return text.String()
}
