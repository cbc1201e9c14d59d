package gemini

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gitartist/internal/domain"
)

var knownShapes = []string{"heart", "star"}

// answerWith returns a handler replying with text as the first candidate
func answerWith(t *testing.T, text string, captured *generateRequest) http.HandlerFunc {
	t.Helper()
	return func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1beta/models/test-model:generateContent", r.URL.Path)
		assert.Equal(t, "secret", r.Header.Get("x-goog-api-key"))
		if captured != nil {
			assert.NoError(t, json.NewDecoder(r.Body).Decode(captured))
		}
		resp := map[string]any{
			"candidates": []any{
				map[string]any{"content": map[string]any{"parts": []any{map[string]any{"text": text}}}},
			},
		}
		_ = json.NewEncoder(w).Encode(resp)
	}
}

func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := NewClient(Config{
		APIKey:     "secret",
		BaseURL:    server.URL,
		MaxRetries: 2,
		Model:      "test-model",
		RetryWait:  time.Millisecond,
	})
	require.NoError(t, err)
	return client
}

func TestNewClient_RequiresAPIKey(t *testing.T) {
	_, err := NewClient(Config{Model: "m"})

	assert.ErrorIs(t, err, domain.ErrMissingCredentials)
}

func TestClassify_Text(t *testing.T) {
	var captured generateRequest
	client := newTestClient(t, answerWith(t,
		"```json\n{\"intent\":\"text\",\"plan\":\"Rendering the text 'EVIN'.\",\"parameters\":{\"text\":\"evin\"}}\n```",
		&captured))

	intent, err := client.Classify(context.Background(), "evin", knownShapes)

	require.NoError(t, err)
	assert.Equal(t, domain.IntentText, intent.Kind)
	assert.Equal(t, "evin", intent.Text)
	assert.Equal(t, "Rendering the text 'EVIN'.", intent.Plan)
	assert.Contains(t, captured.SystemInstruction.Parts[0].Text, "heart, star")
	assert.Equal(t, `User Request: "evin"`, captured.Contents[0].Parts[0].Text)
}

func TestClassify_KnownShape(t *testing.T) {
	client := newTestClient(t, answerWith(t,
		`{"intent":"known_shape","plan":"Using the pre-made 'star' pattern.","parameters":{"name":"Star"}}`, nil))

	intent, err := client.Classify(context.Background(), "draw a star", knownShapes)

	require.NoError(t, err)
	assert.Equal(t, domain.IntentKnownShape, intent.Kind)
	assert.Equal(t, "star", intent.ShapeName)
}

func TestClassify_FallsBackToCustomShape(t *testing.T) {
	tests := []struct {
		name   string
		answer string
	}{
		{"no json", "I cannot help with that"},
		{"broken json", `{"intent": "text", `},
		{"unknown shape", `{"intent":"known_shape","parameters":{"name":"dragon"}}`},
		{"unknown intent", `{"intent":"poem"}`},
		{"empty text", `{"intent":"text","parameters":{"text":"  "}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, answerWith(t, tt.answer, nil))

			intent, err := client.Classify(context.Background(), "a dragon", knownShapes)

			require.NoError(t, err)
			assert.Equal(t, domain.IntentCustomShape, intent.Kind)
			assert.Equal(t, "a dragon", intent.Description)
		})
	}
}

func TestDraw_DecodesPixels(t *testing.T) {
	client := newTestClient(t, answerWith(t,
		`Here you go: {"pixels": [[0, 1, 4], [2, 6, 1], [1, 9, 2], [3, 3, 7], "junk"]}`, nil))

	pixels, err := client.Draw(context.Background(), "a boat")

	require.NoError(t, err)
	assert.Equal(t, []domain.Pixel{
		{Week: 0, Day: 1, Density: 4},
		{Week: 2, Day: 6, Density: 1},
	}, pixels)
}

func TestDraw_MalformedAnswerYieldsNoPixels(t *testing.T) {
	for _, answer := range []string{"no json here", `{"pixels": [[0,1,`, `{"shapes": []}`} {
		t.Run(answer, func(t *testing.T) {
			client := newTestClient(t, answerWith(t, answer, nil))

			pixels, err := client.Draw(context.Background(), "a boat")

			require.NoError(t, err)
			assert.Empty(t, pixels)
		})
	}
}

func TestDraw_RetriesServerErrors(t *testing.T) {
	var calls atomic.Int32
	ok := answerWith(t, `{"pixels": [[0, 0, 1]]}`, nil)
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		ok(w, r)
	}))

	pixels, err := client.Draw(context.Background(), "a dot")

	require.NoError(t, err)
	assert.Len(t, pixels, 1)
	assert.Equal(t, int32(2), calls.Load())
}

func TestDraw_APIErrorIsReturned(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":{"message":"API key not valid","status":"INVALID_ARGUMENT"}}`))
	}))

	_, err := client.Draw(context.Background(), "a dot")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "API key not valid")
}

func TestExtractJSON(t *testing.T) {
	raw, ok := extractJSON("prefix {\"a\": {\"b\": 1}} suffix")
	assert.True(t, ok)
	assert.Equal(t, `{"a": {"b": 1}}`, raw)

	_, ok = extractJSON("} nothing {")
	assert.False(t, ok)
}
