// Package recommend calls the text-completion service for menu
// recommendations and product descriptions. The call is one-shot: no
// retry, no streaming. Without an API key, or on any failure, callers
// get a static fallback string instead of an error.
package recommend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"melmagia/internal/domain"
)

const (
	fallbackNoKey         = "A chave de API não foi configurada. Não posso dar recomendações no momento."
	fallbackRequestFailed = "Tive um problema ao consultar meu livro de receitas digital. Tente novamente!"
	fallbackEmptyResponse = "Desculpe, não consegui pensar em uma recomendação agora."
	fallbackNoDescription = "Descrição automática indisponível."
	defaultBaseURL        = "https://generativelanguage.googleapis.com"
)

type Client struct {
	apiKey  string
	model   string
	baseURL string
	http    *http.Client
	logger  *zap.Logger
}

func NewClient(apiKey, model, baseURL string, logger *zap.Logger) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		apiKey:  apiKey,
		model:   model,
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 15 * time.Second},
		logger:  logger,
	}
}

// Configured reports whether an API key was supplied.
func (c *Client) Configured() bool {
	return c.apiKey != ""
}

// Recommend asks "Chef Mel" for a suggestion based on the customer's
// free-text query and the current menu.
func (c *Client) Recommend(ctx context.Context, query string, products []domain.Product) string {
	if !c.Configured() {
		return fallbackNoKey
	}

	var menu strings.Builder
	for _, p := range products {
		fmt.Fprintf(&menu, "%s (%s): %s - R$ %s\n", p.Name, p.Category, p.Description, p.Price.StringFixed(2))
	}

	prompt := fmt.Sprintf(`Você é um chef confeiteiro especialista em Pão de Mel chamado "Chef Mel".
O cliente disse: %q.

Aqui está o nosso cardápio atual:
%s
Com base no cardápio e no pedido do cliente, sugira 1 ou 2 opções ideais.
Seja carismático, use emojis relacionados a doces e mel. Mantenha a resposta curta (máximo 3 frases).`, query, menu.String())

	text, err := c.generate(ctx, prompt)
	if err != nil {
		c.logger.Warn("recommendation request failed", zap.Error(err))
		return fallbackRequestFailed
	}
	if text == "" {
		return fallbackEmptyResponse
	}
	return text
}

// Describe generates a short marketing description for a new product.
func (c *Client) Describe(ctx context.Context, productName, ingredients string) string {
	if !c.Configured() {
		return fallbackNoDescription
	}

	prompt := fmt.Sprintf(
		`Crie uma descrição curta, apetitosa e vendedora para um novo Pão de Mel chamado %q que contém %q. Foque na experiência sensorial. Máximo de 150 caracteres.`,
		productName, ingredients)

	text, err := c.generate(ctx, prompt)
	if err != nil {
		c.logger.Warn("description request failed", zap.Error(err))
		return fallbackNoDescription
	}
	return text
}

type generateRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type candidate struct {
	Content content `json:"content"`
}

type generateResponse struct {
	Candidates []candidate `json:"candidates"`
}

func (c *Client) generate(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
	})
	if err != nil {
		return "", fmt.Errorf("encoding request: %w", err)
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent", c.baseURL, c.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("calling text service: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("text service returned status %d", resp.StatusCode)
	}

	var decoded generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return "", fmt.Errorf("decoding response: %w", err)
	}

	if len(decoded.Candidates) == 0 || len(decoded.Candidates[0].Content.Parts) == 0 {
		return "", nil
	}
	return strings.TrimSpace(decoded.Candidates[0].Content.Parts[0].Text), nil
}
