package summarizer

import "context"

// Summarizer sends an instruction to the language model and returns its raw text.
type Summarizer interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
