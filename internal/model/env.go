package model

import (
	"sort"
	"strings"
)

// ParseEnvText converts an editable KEY=VALUE buffer into a variable map.
// Each line is split on the first '='; keys and values are trimmed. Lines
// without '=' or with an empty key after trimming are dropped. Duplicate
// keys collapse to the last occurrence.
func ParseEnvText(text string) map[string]string {
	vars := make(map[string]string)
	for _, line := range strings.Split(text, "\n") {
		key, value, ok := strings.Cut(strings.TrimSpace(line), "=")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}
		vars[key] = strings.TrimSpace(value)
	}
	return vars
}

// FormatEnvText renders a variable map as KEY=VALUE lines for editing.
// Keys are sorted so the buffer is stable across fetches.
func FormatEnvText(vars map[string]string) string {
	if len(vars) == 0 {
		return ""
	}
	keys := make([]string, 0, len(vars))
	for k := range vars {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	lines := make([]string, 0, len(keys))
	for _, k := range keys {
		lines = append(lines, k+"="+vars[k])
	}
	return strings.Join(lines, "\n")
}
