package infrastructure

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	openai "github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCompletionServer(t *testing.T, content string, status int) (*httptest.Server, *openai.ChatCompletionRequest) {
	t.Helper()
	var got openai.ChatCompletionRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		if status != http.StatusOK {
			w.Write([]byte(`{"error":{"message":"quota exceeded","type":"insufficient_quota"}}`))
			return
		}
		json.NewEncoder(w).Encode(openai.ChatCompletionResponse{
			Choices: []openai.ChatCompletionChoice{
				{Message: openai.ChatCompletionMessage{Role: openai.ChatMessageRoleAssistant, Content: content}},
			},
		})
	}))
	t.Cleanup(srv.Close)
	return srv, &got
}

func TestOpenAIClient_Refine(t *testing.T) {
	srv, got := newCompletionServer(t, "\"A todo list app\n with login.\"", http.StatusOK)
	client, err := NewOpenAIClient(AIConfig{APIKey: "test-key", BaseURL: srv.URL + "/v1"})
	require.NoError(t, err)

	refined, err := client.Refine(context.Background(), "todos + login")
	require.NoError(t, err)

	assert.Equal(t, "A todo list app with login.", refined)
	assert.Equal(t, openai.GPT4oMini, got.Model)
	require.Len(t, got.Messages, 2)
	assert.Equal(t, openai.ChatMessageRoleSystem, got.Messages[0].Role)
	assert.Equal(t, "todos + login", got.Messages[1].Content)
}

func TestOpenAIClient_TruncatesLongCompletion(t *testing.T) {
	srv, _ := newCompletionServer(t, strings.Repeat("word ", 400), http.StatusOK)
	client, err := NewOpenAIClient(AIConfig{APIKey: "test-key", Model: "gpt-4o", BaseURL: srv.URL + "/v1"})
	require.NoError(t, err)

	refined, err := client.Refine(context.Background(), "something long")
	require.NoError(t, err)
	assert.Len(t, []rune(refined), maxRefinedLength)
}

func TestOpenAIClient_Errors(t *testing.T) {
	_, err := NewOpenAIClient(AIConfig{})
	assert.Error(t, err)

	srv, _ := newCompletionServer(t, "", http.StatusTooManyRequests)
	client, err := NewOpenAIClient(AIConfig{APIKey: "test-key", BaseURL: srv.URL + "/v1"})
	require.NoError(t, err)
	_, err = client.Refine(context.Background(), "a blog app")
	assert.Error(t, err)

	blank, _ := newCompletionServer(t, "  ``` ```  ", http.StatusOK)
	client, err = NewOpenAIClient(AIConfig{APIKey: "test-key", BaseURL: blank.URL + "/v1"})
	require.NoError(t, err)
	_, err = client.Refine(context.Background(), "a blog app")
	assert.Error(t, err)
}

func TestCleanCompletion(t *testing.T) {
	assert.Equal(t, "A notes app", cleanCompletion("```\nA notes app\n```"))
	assert.Equal(t, "A notes app", cleanCompletion("  'A notes app'  "))
}
