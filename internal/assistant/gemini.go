// internal/assistant/gemini.go
package assistant

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/livrestore/storefront/internal/config"
	"github.com/livrestore/storefront/internal/models"
)

// GeminiClient talks to the generative language generateContent endpoint.
type GeminiClient struct {
	apiKey  string
	model   string
	baseURL string
	client  *http.Client
}

func NewGeminiClient(cfg config.AssistantConfig) *GeminiClient {
	return &GeminiClient{
		apiKey:  cfg.APIKey,
		model:   cfg.Model,
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		client:  &http.Client{Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second},
	}
}

type geminiPart struct {
	Text       string            `json:"text,omitempty"`
	InlineData *geminiInlineData `json:"inline_data,omitempty"`
}

type geminiInlineData struct {
	MimeType string `json:"mime_type"`
	Data     string `json:"data"`
}

type geminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []geminiPart `json:"parts"`
}

type geminiGenerationConfig struct {
	ResponseMimeType string `json:"response_mime_type,omitempty"`
}

type geminiRequest struct {
	SystemInstruction *geminiContent          `json:"system_instruction,omitempty"`
	Contents          []geminiContent         `json:"contents"`
	GenerationConfig  *geminiGenerationConfig `json:"generationConfig,omitempty"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
}

const sellerPersona = `Você é um vendedor prestativo no marketplace LivreStore. ` +
	`Você está vendendo o produto: %q. Responda às dúvidas dos clientes de ` +
	`forma educada, curta e persuasiva. Use português do Brasil.`

func (g *GeminiClient) Converse(ctx context.Context, productTitle, message string, history []models.ChatTurn) (string, error) {
	contents := make([]geminiContent, 0, len(history)+1)
	for _, turn := range history {
		contents = append(contents, geminiContent{
			Role:  string(turn.Role),
			Parts: []geminiPart{{Text: turn.Content}},
		})
	}
	contents = append(contents, geminiContent{
		Role:  "user",
		Parts: []geminiPart{{Text: message}},
	})

	req := geminiRequest{
		SystemInstruction: &geminiContent{
			Parts: []geminiPart{{Text: fmt.Sprintf(sellerPersona, productTitle)}},
		},
		Contents: contents,
	}

	return g.generate(ctx, req)
}

const draftPrompt = `Crie um anúncio de marketplace para este produto: %s. ` +
	`Responda somente com JSON contendo os campos title, description, ` +
	`suggestedPrice (número, BRL), category e keywords.`

func (g *GeminiClient) DraftListing(ctx context.Context, prompt, imageB64 string) (*ListingDraft, error) {
	parts := []geminiPart{}
	if imageB64 != "" {
		data := imageB64
		// Strip the data-URI prefix if the client sent one.
		if idx := strings.Index(data, ","); idx >= 0 {
			data = data[idx+1:]
		}
		parts = append(parts, geminiPart{InlineData: &geminiInlineData{
			MimeType: "image/jpeg",
			Data:     data,
		}})
	}
	if prompt == "" {
		prompt = "a imagem enviada"
	}
	parts = append(parts, geminiPart{Text: fmt.Sprintf(draftPrompt, prompt)})

	req := geminiRequest{
		Contents:         []geminiContent{{Role: "user", Parts: parts}},
		GenerationConfig: &geminiGenerationConfig{ResponseMimeType: "application/json"},
	}

	raw, err := g.generate(ctx, req)
	if err != nil {
		return nil, err
	}

	var draft ListingDraft
	if err := json.Unmarshal([]byte(raw), &draft); err != nil {
		return nil, fmt.Errorf("assistant returned malformed draft: %w", err)
	}
	return &draft, nil
}

func (g *GeminiClient) generate(ctx context.Context, payload geminiRequest) (string, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to encode assistant request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", g.baseURL, g.model, g.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("assistant request failed: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read assistant response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		logrus.WithFields(logrus.Fields{
			"status": resp.StatusCode,
			"model":  g.model,
		}).Warn("Assistant call rejected")
		return "", fmt.Errorf("assistant returned status %d", resp.StatusCode)
	}

	var parsed geminiResponse
	if err := json.Unmarshal(data, &parsed); err != nil {
		return "", fmt.Errorf("failed to decode assistant response: %w", err)
	}

	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return "", nil
	}

	var sb strings.Builder
	for _, part := range parsed.Candidates[0].Content.Parts {
		sb.WriteString(part.Text)
	}
	return strings.TrimSpace(sb.String()), nil
}
