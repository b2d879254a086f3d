package domain

import (
	"bytes"
	"encoding/json"
	"strings"
)

// DecodeQuestionBlob parses one generated blob as JSON and returns it in
// compact form. Markdown code fences around the blob are removed first.
func DecodeQuestionBlob(blob string) (json.RawMessage, error) {
	cleaned := []byte(StripCodeFence(blob))

	var probe interface{}
	if err := json.Unmarshal(cleaned, &probe); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := json.Compact(&buf, cleaned); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// StripCodeFence removes a leading ``` or ```json line and a trailing ```.
func StripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	if nl := strings.IndexByte(s, '\n'); nl != -1 {
		s = s[nl+1:]
	} else {
		s = strings.TrimPrefix(s, "json")
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
