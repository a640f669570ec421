package transcript

import (
	"fmt"
	"io"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Decode reads subtitle bytes as UTF-8. A leading BOM is dropped and invalid
// byte sequences are replaced with U+FFFD instead of failing.
func Decode(r io.Reader) (string, error) {
	decoder := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	data, err := io.ReadAll(transform.NewReader(r, decoder))
	if err != nil {
		return "", fmt.Errorf("decode subtitle: %w", err)
	}
	return string(data), nil
}
