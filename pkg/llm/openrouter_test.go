package llm_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"tienda/pkg/llm"
)

func TestOpenRouter_CompleteSuccess(t *testing.T) {
	var gotBody map[string]interface{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"{\"title\":\"ok\"}"}}]}`))
	}))
	defer server.Close()

	client := llm.NewOpenRouter(server.URL, "test-key", "test-model")
	reply, err := client.Complete(context.Background(), "system text", "user text")

	assert.NoError(t, err)
	assert.Equal(t, `{"title":"ok"}`, reply)

	// The request carries both messages and asks for JSON-mode output.
	assert.Equal(t, "test-model", gotBody["model"])
	messages := gotBody["messages"].([]interface{})
	assert.Len(t, messages, 2)
	assert.Equal(t, "system", messages[0].(map[string]interface{})["role"])
	assert.Equal(t, "user", messages[1].(map[string]interface{})["role"])
	format := gotBody["response_format"].(map[string]interface{})
	assert.Equal(t, "json_object", format["type"])
}

func TestOpenRouter_NonOKStatusesBecomeAPIErrors(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
	}{
		{"payment required", http.StatusPaymentRequired},
		{"rate limited", http.StatusTooManyRequests},
		{"server error", http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.statusCode)
				w.Write([]byte(`{"error":"upstream says no"}`))
			}))
			defer server.Close()

			client := llm.NewOpenRouter(server.URL, "test-key", "test-model")
			_, err := client.Complete(context.Background(), "s", "u")

			var apiErr *llm.APIError
			assert.ErrorAs(t, err, &apiErr)
			assert.Equal(t, tt.statusCode, apiErr.StatusCode)
			assert.Equal(t, "openrouter", apiErr.Provider)
			assert.Contains(t, apiErr.Body, "upstream says no")
		})
	}
}

func TestOpenRouter_EmptyChoicesIsAnError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices":[]}`))
	}))
	defer server.Close()

	client := llm.NewOpenRouter(server.URL, "test-key", "test-model")
	_, err := client.Complete(context.Background(), "s", "u")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "no choices")
}

func TestOpenRouter_MissingAPIKey(t *testing.T) {
	client := llm.NewOpenRouter("", "", "test-model")
	_, err := client.Complete(context.Background(), "s", "u")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "API key")
}
