// Package narrative asks a language model for a CFO-style reading of the DRE.
package narrative

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/genai"
)

// ErrNoAPIKey is returned when no Gemini API key is configured.
var ErrNoAPIKey = errors.New("GEMINI_API_KEY not set")

// Provider generates text for a prompt.
type Provider interface {
	Generate(ctx context.Context, model, prompt string) (string, error)
}

// GeminiProvider calls the Gemini API.
type GeminiProvider struct {
	client *genai.Client
}

var _ Provider = (*GeminiProvider)(nil)

// NewGeminiProvider creates a client for the Gemini developer API.
func NewGeminiProvider(ctx context.Context, apiKey string) (*GeminiProvider, error) {
	if apiKey == "" {
		return nil, ErrNoAPIKey
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("creating genai client: %w", err)
	}
	return &GeminiProvider{client: client}, nil
}

// Generate sends a single-turn prompt and returns the response text.
func (p *GeminiProvider) Generate(ctx context.Context, model, prompt string) (string, error) {
	result, err := p.client.Models.GenerateContent(ctx, model, genai.Text(prompt), &genai.GenerateContentConfig{
		Temperature: genai.Ptr(float32(0.4)),
	})
	if err != nil {
		return "", fmt.Errorf("gemini generation failed: %w", err)
	}
	return result.Text(), nil
}
