package summarizer

import (
	"context"

	"github.com/sparta-contents/summary-note-maker/internal/logger"
	"google.golang.org/genai"
)

// generateFunc performs a single model call with one API key.
type generateFunc func(ctx context.Context, apiKey, model, prompt string) (string, error)

type implSummarizer struct {
	apiKeys    []string
	currentKey int
	logger     logger.Logger
	model      string
	generate   generateFunc
	clients    map[string]*genai.Client
}

// New creates a Summarizer that rotates through the supplied Gemini API keys.
func New(apiKeys []string, model string, log logger.Logger) Summarizer {
	if model == "" {
		model = "gemini-2.5-flash"
	}
	s := &implSummarizer{
		apiKeys: apiKeys,
		logger:  log,
		model:   model,
		clients: make(map[string]*genai.Client),
	}
	s.generate = s.callGemini
	return s
}
