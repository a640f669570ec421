// Package notes turns a model response into a finished summary-note document.
//
// A document is a JSON array of section objects. Sanitize strips code-fence
// wrappers from the raw response and decodes it; Finalize then assigns fresh
// section ids, removes stray backslashes from text fields and numbers the
// sections in document order. Entries that are not sections, including error
// records, pass through untouched.
package notes
