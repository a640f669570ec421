package processor

import (
	"errors"

	"github.com/sparta-contents/summary-note-maker/internal/notes"
)

var (
	// ErrEmptyTranscript means the subtitle content had no usable blocks.
	ErrEmptyTranscript = errors.New("subtitle content is empty or could not be parsed")
	// ErrSummarize wraps failures of the model call, including timeouts.
	ErrSummarize = errors.New("summary generation failed")
	// ErrInvalidOutput is returned by ProcessFile when the model output was an error record.
	ErrInvalidOutput = errors.New(notes.InvalidOutputMessage)
)
