package generator_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vytor/lecturedeck/internal/generator"
	"github.com/vytor/lecturedeck/internal/models"
)

func completion(content string) map[string]any {
	return map[string]any{
		"choices": []map[string]any{
			{"message": map[string]any{"role": "assistant", "content": content}},
		},
	}
}

func flashcardRequest() generator.Request {
	return generator.Request{
		TranscriptText: "Transcript 1: Mitosis produces identical daughter cells.",
		Count:          2,
		Difficulty:     models.DifficultyMedium,
		Kind:           models.KindFlashcard,
	}
}

func TestOpenAIClient_Generate(t *testing.T) {
	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		_ = json.NewEncoder(w).Encode(completion(`{"flashcards":[{"front":"Mitosis","back":"Identical daughter cells","source_ref":"Transcript 1"}]}`))
	}))
	defer srv.Close()

	client := generator.NewOpenAIClient(generator.OpenAIConfig{
		APIKey:  "test-key",
		Model:   "gpt-4o-mini",
		BaseURL: srv.URL,
	})

	batch, err := client.Generate(context.Background(), flashcardRequest())
	require.NoError(t, err)
	require.Len(t, batch.Flashcards, 1)
	assert.Equal(t, "Mitosis", batch.Flashcards[0].Front)

	assert.Equal(t, "gpt-4o-mini", got["model"])
	assert.Equal(t, map[string]any{"type": "json_object"}, got["response_format"])
	messages, ok := got["messages"].([]any)
	require.True(t, ok)
	assert.Len(t, messages, 2)
}

func TestOpenAIClient_MissingCredentials(t *testing.T) {
	client := generator.NewOpenAIClient(generator.OpenAIConfig{Model: "gpt-4o-mini"})

	_, err := client.Generate(context.Background(), flashcardRequest())
	class, ok := generator.ClassOf(err)
	require.True(t, ok)
	assert.Equal(t, generator.MissingCredentials, class)
}

func TestOpenAIClient_Rejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error":{"message":"Rate limit reached"}}`))
	}))
	defer srv.Close()

	client := generator.NewOpenAIClient(generator.OpenAIConfig{APIKey: "k", BaseURL: srv.URL})

	_, err := client.Generate(context.Background(), flashcardRequest())
	class, ok := generator.ClassOf(err)
	require.True(t, ok)
	assert.Equal(t, generator.ProviderRejected, class)
	assert.Contains(t, err.Error(), "Rate limit reached")
}

func TestOpenAIClient_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-time.After(time.Second):
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()

	client := generator.NewOpenAIClient(generator.OpenAIConfig{APIKey: "k", BaseURL: srv.URL, Timeout: 50 * time.Millisecond})

	_, err := client.Generate(context.Background(), flashcardRequest())
	class, ok := generator.ClassOf(err)
	require.True(t, ok)
	assert.Equal(t, generator.ProviderRejected, class)
}

func TestOpenAIClient_MalformedContent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(completion("Sure! Here are your flashcards:"))
	}))
	defer srv.Close()

	client := generator.NewOpenAIClient(generator.OpenAIConfig{APIKey: "k", BaseURL: srv.URL})

	_, err := client.Generate(context.Background(), flashcardRequest())
	class, ok := generator.ClassOf(err)
	require.True(t, ok)
	assert.Equal(t, generator.MalformedResponse, class)
}

func TestOpenAIClient_NoChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"choices":[]}`))
	}))
	defer srv.Close()

	client := generator.NewOpenAIClient(generator.OpenAIConfig{APIKey: "k", BaseURL: srv.URL})

	_, err := client.Generate(context.Background(), flashcardRequest())
	class, _ := generator.ClassOf(err)
	assert.Equal(t, generator.MalformedResponse, class)
}
