package ai

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResponseFirst(t *testing.T) {
	got, err := Response{Completions: []string{"a", "b"}}.First()
	require.NoError(t, err)
	assert.Equal(t, "a", got)

	_, err = Response{}.First()
	assert.ErrorIs(t, err, ErrNoCompletions)
}

func TestParts(t *testing.T) {
	assert.Equal(t, Part{Kind: PartText, Text: "hi"}, Text("hi"))
	assert.Equal(t, Part{Kind: PartImageURL, URL: "https://x/y.jpg"}, ImageURL("https://x/y.jpg"))
}

func newChatServer(t *testing.T, status int, reply string, body *string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, err := io.ReadAll(r.Body)
		assert.NoError(t, err)
		if body != nil {
			*body = string(raw)
		}
		assert.True(t, strings.HasSuffix(r.URL.Path, "/chat/completions"), r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, reply)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestOpenAIClient_Complete(t *testing.T) {
	var body string
	srv := newChatServer(t, http.StatusOK, `{
		"id": "chatcmpl-1",
		"object": "chat.completion",
		"created": 1700000000,
		"model": "gpt-test",
		"choices": [
			{"index": 0, "message": {"role": "assistant", "content": "Type: Sloop, Length: 12m, Year: 1998"}, "finish_reason": "stop"}
		],
		"usage": {"prompt_tokens": 10, "completion_tokens": 12, "total_tokens": 22}
	}`, &body)

	client, err := NewOpenAIClient("sk-test", srv.URL, "gpt-test")
	require.NoError(t, err)

	resp, err := client.Complete(context.Background(), Request{
		Model:     "gpt-test",
		Parts:     []Part{Text("Which boat is this?"), ImageURL("https://files.example/photo.jpg")},
		MaxTokens: MaxTokens,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"Type: Sloop, Length: 12m, Year: 1998"}, resp.Completions)

	var sent map[string]any
	require.NoError(t, json.Unmarshal([]byte(body), &sent))
	assert.Equal(t, "gpt-test", sent["model"])
	assert.Equal(t, float64(300), sent["max_tokens"])
	assert.NotContains(t, sent, "max_completion_tokens")
	assert.Equal(t, float64(1), sent["temperature"])
	assert.Contains(t, body, "Which boat is this?")
	assert.Contains(t, body, "https://files.example/photo.jpg")
	assert.Contains(t, body, "image_url")
}

func TestOpenAIClient_CompleteAPIError(t *testing.T) {
	srv := newChatServer(t, http.StatusUnauthorized,
		`{"error": {"message": "invalid api key", "type": "invalid_request_error"}}`, nil)

	client, err := NewOpenAIClient("sk-bad", srv.URL, "gpt-test")
	require.NoError(t, err)

	_, err = client.Complete(context.Background(), Request{
		Parts: []Part{Text("hello")},
	})
	assert.Error(t, err)
}
