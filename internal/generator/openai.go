package generator

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/vytor/lecturedeck/internal/logger"
)

const defaultOpenAIBaseURL = "https://api.openai.com"

type OpenAIConfig struct {
	APIKey  string
	Model   string
	BaseURL string
	Timeout time.Duration
}

// OpenAIClient calls the chat completions endpoint in JSON mode.
type OpenAIClient struct {
	httpClient *http.Client
	apiKey     string
	model      string
	baseURL    string
}

var _ Generator = (*OpenAIClient)(nil)

func NewOpenAIClient(cfg OpenAIConfig) *OpenAIClient {
	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = defaultOpenAIBaseURL
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &OpenAIClient{
		httpClient: &http.Client{Timeout: timeout},
		apiKey:     cfg.APIKey,
		model:      cfg.Model,
		baseURL:    baseURL,
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model          string            `json:"model"`
	ResponseFormat map[string]string `json:"response_format"`
	Messages       []chatMessage     `json:"messages"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

type apiErrorResponse struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

func (c *OpenAIClient) Generate(ctx context.Context, req Request) (*Batch, error) {
	log := logger.FromContext(ctx).WithPrefix("openai").WithFields(map[string]any{
		"kind":  req.Kind,
		"count": req.Count,
	})

	if c.apiKey == "" {
		log.Error("OPENAI_API_KEY is not configured")
		return nil, newError(MissingCredentials, fmt.Errorf("OPENAI_API_KEY is not configured"))
	}

	body, err := json.Marshal(chatRequest{
		Model:          c.model,
		ResponseFormat: map[string]string{"type": "json_object"},
		Messages: []chatMessage{
			{Role: "system", Content: SystemPrompt},
			{Role: "user", Content: UserPrompt(req)},
		},
	})
	if err != nil {
		return nil, err
	}

	url := c.baseURL + "/v1/chat/completions"
	log.Debug("requesting completion from: %s", url)
	start := time.Now()

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		log.Error("failed to create request: %v", err)
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		log.Error("completion request failed: %v", err)
		return nil, newError(ProviderRejected, err)
	}
	defer resp.Body.Close()

	log.Debug("completion response received in %v, status=%d", time.Since(start), resp.StatusCode)

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		msg := strings.TrimSpace(string(raw))
		var apiErr apiErrorResponse
		if json.Unmarshal(raw, &apiErr) == nil && apiErr.Error.Message != "" {
			msg = apiErr.Error.Message
		}
		log.Error("completion request rejected: status=%d, message=%s", resp.StatusCode, msg)
		return nil, newError(ProviderRejected, fmt.Errorf("status %d: %s", resp.StatusCode, msg))
	}

	var payload chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		log.Error("failed to decode completion response: %v", err)
		return nil, newError(MalformedResponse, err)
	}
	if len(payload.Choices) == 0 {
		log.Warn("completion response has no choices")
		return nil, newError(MalformedResponse, fmt.Errorf("no choices in response"))
	}

	batch, err := ParseBatch(req.Kind, payload.Choices[0].Message.Content)
	if err != nil {
		log.Warn("failed to parse completion content: %v", err)
		return nil, err
	}

	log.Info("received %d candidates (%d undecodable) in %v", batch.Len(), batch.Discarded, time.Since(start))
	return batch, nil
}
