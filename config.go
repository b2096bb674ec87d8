package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/alecthomas/kong"
)

// JSONConfig loads flag defaults from a JSON object. Keys may be spelled like
// the flags ("bar-extent") or with underscores ("bar_extent").
func JSONConfig(r io.Reader) (kong.Resolver, error) {
	values := map[string]any{}
	if err := json.NewDecoder(r).Decode(&values); err != nil {
		return nil, fmt.Errorf("invalid config file: %w", err)
	}
	content, err := json.Marshal(normalizeKeys(values))
	if err != nil {
		return nil, err
	}
	return kong.JSON(bytes.NewReader(content))
}

func normalizeKeys(values map[string]any) map[string]any {
	out := make(map[string]any, len(values))
	for key, value := range values {
		if nested, ok := value.(map[string]any); ok {
			value = normalizeKeys(nested)
		}
		out[strings.ReplaceAll(key, "-", "_")] = value
	}
	return out
}
