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

func TestOllama_CompleteSuccess(t *testing.T) {
	var gotBody map[string]interface{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/chat", r.URL.Path)
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"message":{"role":"assistant","content":"{\"pitch\":\"great\"}"},"done":true}`))
	}))
	defer server.Close()

	client := llm.NewOllama(server.URL, "llama3.1:8b")
	reply, err := client.Complete(context.Background(), "system text", "user text")

	assert.NoError(t, err)
	assert.Equal(t, `{"pitch":"great"}`, reply)

	// Non-streaming JSON-mode chat request.
	assert.Equal(t, "llama3.1:8b", gotBody["model"])
	assert.Equal(t, false, gotBody["stream"])
	assert.Equal(t, "json", gotBody["format"])
	assert.Len(t, gotBody["messages"].([]interface{}), 2)
}

func TestOllama_NonOKStatusBecomesAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`model not found`))
	}))
	defer server.Close()

	client := llm.NewOllama(server.URL, "")
	_, err := client.Complete(context.Background(), "s", "u")

	var apiErr *llm.APIError
	assert.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.Equal(t, "ollama", apiErr.Provider)
}

func TestOllama_Defaults(t *testing.T) {
	client := llm.NewOllama("", "")
	assert.Equal(t, "ollama", client.Name())
}
