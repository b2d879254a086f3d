package quizgen

import (
	"encoding/json"
	"fmt"
	"strings"
)

// SplitBlankLines splits a free-text reply on blank lines, trims every
// segment and drops empty ones. A positive limit truncates the result.
func SplitBlankLines(raw string, limit int) []string {
	segments := strings.Split(raw, "\n\n")
	out := make([]string, 0, len(segments))
	for _, s := range segments {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return truncate(out, limit)
}

// ParseJSONArray decodes a reply that must be a JSON array and returns each
// element as its own JSON text. A positive limit truncates the result.
func ParseJSONArray(raw string, limit int) ([]string, error) {
	var items []json.RawMessage
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil, fmt.Errorf("reply is not a JSON array: %w", err)
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, string(item))
	}
	return truncate(out, limit), nil
}

func truncate(items []string, limit int) []string {
	if limit > 0 && len(items) > limit {
		return items[:limit]
	}
	return items
}
