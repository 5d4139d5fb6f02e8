package storage

import (
	"fmt"
	"time"
)

// Timestamps cross the store boundary as ISO-8601 strings inside the doc.
// RFC 3339 with nanoseconds is the form written; parsing accepts any
// RFC 3339 precision so records written by other producers still load.

func formatTimestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTimestamp(raw string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("bad timestamp %q: %w", raw, err)
	}
	return t.UTC(), nil
}

func docString(doc map[string]any, key string) string {
	v, _ := doc[key].(string)
	return v
}

func docFloat(doc map[string]any, key string) float64 {
	v, _ := doc[key].(float64)
	return v
}

// docInt reads an integer field; JSON numbers decode as float64.
func docInt(doc map[string]any, key string) int {
	v, _ := doc[key].(float64)
	return int(v)
}

func docStrings(doc map[string]any, key string) []string {
	raw, ok := doc[key].([]any)
	if !ok {
		return []string{}
	}
	out := make([]string, 0, len(raw))
	for _, item := range raw {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

func docTime(doc map[string]any, key string) (time.Time, error) {
	raw, ok := doc[key].(string)
	if !ok {
		return time.Time{}, fmt.Errorf("missing timestamp field %q", key)
	}
	return parseTimestamp(raw)
}
