package service

import (
	"fmt"
	"io"
	"mime"

	"golang.org/x/net/html/charset"
)

// decodeText reads body and converts it to UTF-8 text using the charset
// declared in contentType, defaulting to UTF-8. Malformed sequences become
// U+FFFD. A read error or an unknown charset label fails.
func decodeText(body io.Reader, contentType string) (string, error) {
	raw, err := io.ReadAll(body)
	if err != nil {
		return "", fmt.Errorf("read body: %w", err)
	}

	label := "utf-8"
	if contentType != "" {
		if _, params, err := mime.ParseMediaType(contentType); err == nil && params["charset"] != "" {
			label = params["charset"]
		}
	}

	enc, _ := charset.Lookup(label)
	if enc == nil {
		return "", fmt.Errorf("unsupported charset %q", label)
	}

	text, err := enc.NewDecoder().Bytes(raw)
	if err != nil {
		return "", fmt.Errorf("decode %s: %w", label, err)
	}
	return string(text), nil
}
