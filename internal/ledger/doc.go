// Package ledger records which subtitle files have been summarized.
//
// The batch runner consults it to skip files whose exact content was already
// summarized and uploaded. It is a convenience for the caller: summarizing the
// same input twice is always allowed.
package ledger
