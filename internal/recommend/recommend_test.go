package recommend

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"melmagia/internal/catalog"
)

func TestClient_Recommend_NoKeyFallsBack(t *testing.T) {
	c := NewClient("", "test-model", "", zap.NewNop())

	got := c.Recommend(context.Background(), "quero algo vegano", catalog.SeedProducts())

	assert.Equal(t, fallbackNoKey, got)
	assert.False(t, c.Configured())
}

func TestClient_Recommend_Success(t *testing.T) {
	var capturedPath string
	var capturedKey string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		capturedPath = r.URL.Path
		capturedKey = r.Header.Get("x-goog-api-key")

		var req generateRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Len(t, req.Contents, 1)
		assert.Contains(t, req.Contents[0].Parts[0].Text, "Chef Mel")
		assert.Contains(t, req.Contents[0].Parts[0].Text, "Pão de Mel Tradicional")

		json.NewEncoder(w).Encode(generateResponse{
			Candidates: []candidate{
				{Content: content{Parts: []part{{Text: "Experimente o Pistache Supremo! 🍯"}}}},
			},
		})
	}))
	defer server.Close()

	c := NewClient("secret-key", "test-model", server.URL, zap.NewNop())

	got := c.Recommend(context.Background(), "quero algo especial", catalog.SeedProducts())

	assert.Equal(t, "Experimente o Pistache Supremo! 🍯", got)
	assert.Equal(t, "/v1beta/models/test-model:generateContent", capturedPath)
	assert.Equal(t, "secret-key", capturedKey)
}

func TestClient_Recommend_ServerErrorFallsBack(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	c := NewClient("secret-key", "test-model", server.URL, zap.NewNop())

	got := c.Recommend(context.Background(), "qualquer coisa", nil)

	assert.Equal(t, fallbackRequestFailed, got)
}

func TestClient_Recommend_EmptyCandidatesFallsBack(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(generateResponse{})
	}))
	defer server.Close()

	c := NewClient("secret-key", "test-model", server.URL, zap.NewNop())

	got := c.Recommend(context.Background(), "qualquer coisa", nil)

	assert.Equal(t, fallbackEmptyResponse, got)
}

func TestClient_Describe_NoKeyFallsBack(t *testing.T) {
	c := NewClient("", "test-model", "", zap.NewNop())

	got := c.Describe(context.Background(), "Ninho com Nutella", "leite ninho, nutella")

	assert.Equal(t, fallbackNoDescription, got)
}

func TestClient_Describe_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(generateResponse{
			Candidates: []candidate{
				{Content: content{Parts: []part{{Text: "Camadas de ninho cremoso com nutella."}}}},
			},
		})
	}))
	defer server.Close()

	c := NewClient("secret-key", "test-model", server.URL, zap.NewNop())

	got := c.Describe(context.Background(), "Ninho com Nutella", "leite ninho, nutella")

	assert.Equal(t, "Camadas de ninho cremoso com nutella.", got)
}
