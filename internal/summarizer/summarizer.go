package summarizer

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

// ErrNoAPIKeys is returned when the summarizer has no key to call the model with.
var ErrNoAPIKeys = errors.New("no Gemini API keys configured")

// Generate sends the prompt to Gemini and returns the response text.
// Rotates API keys on 429 / quota errors.
func (s *implSummarizer) Generate(ctx context.Context, prompt string) (string, error) {
	if len(s.apiKeys) == 0 {
		return "", ErrNoAPIKeys
	}

	attempts := len(s.apiKeys)
	var lastErr error

	for range attempts {
		keyIndex := s.currentKey
		text, err := s.generate(ctx, s.apiKeys[keyIndex], s.model, prompt)
		if err == nil {
			return text, nil
		}
		if ctx.Err() != nil {
			return "", fmt.Errorf("generate content: %w", ctx.Err())
		}
		if isRateLimited(err) {
			s.logger.Warn(ctx, "Key %d rate limited, rotating...", keyIndex+1)
			s.rotateKey()
			lastErr = err
			continue
		}
		return "", fmt.Errorf("generate content: %w", err)
	}

	return "", fmt.Errorf("all API keys exhausted: %w", lastErr)
}

// callGemini performs one GenerateContent call with the given key.
func (s *implSummarizer) callGemini(ctx context.Context, apiKey, model, prompt string) (string, error) {
	client, err := s.client(ctx, apiKey)
	if err != nil {
		return "", err
	}

	s.logger.Debug(ctx, "Calling %s (%d prompt bytes)", model, len(prompt))
	result, err := client.Models.GenerateContent(ctx, model, genai.Text(prompt), nil)
	if err != nil {
		return "", err
	}

	if result != nil && len(result.Candidates) > 0 && result.Candidates[0].Content != nil {
		var text strings.Builder
		for _, part := range result.Candidates[0].Content.Parts {
			if part != nil && part.Text != "" {
				text.WriteString(part.Text)
			}
		}
		if text.Len() > 0 {
			return text.String(), nil
		}
	}

	return "", fmt.Errorf("empty response from Gemini")
}

func (s *implSummarizer) client(ctx context.Context, apiKey string) (*genai.Client, error) {
	if c, ok := s.clients[apiKey]; ok {
		return c, nil
	}
	c, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create client: %w", err)
	}
	s.clients[apiKey] = c
	return c, nil
}

func (s *implSummarizer) rotateKey() {
	s.currentKey = (s.currentKey + 1) % len(s.apiKeys)
}

func isRateLimited(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "429") || strings.Contains(msg, "quota") || strings.Contains(msg, "RESOURCE_EXHAUSTED")
}
