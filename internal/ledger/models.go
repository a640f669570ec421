package ledger

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Status is the outcome recorded for one file.
type Status string

const (
	StatusDone    Status = "done"
	StatusFailed  Status = "failed"
	StatusSkipped Status = "skipped"
)

// Entry is one ledger row.
type Entry struct {
	SourceID    string
	FileName    string
	ContentHash string
	Status      Status
	OutputRef   string
	Message     string
	ProcessedAt time.Time
}

// HashContent returns the hex sha256 of subtitle content.
func HashContent(content string) string {
	sum := sha256.Sum256([]byte(content))
	return hex.EncodeToString(sum[:])
}
