package repository

import (
	"fmt"
	"os"
)

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func mergeNames(a, b map[string]string) map[string]string {
	if len(a) == 0 {
		return b
	}
	if len(b) == 0 {
		return a
	}
	out := make(map[string]string, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		out[k] = v
	}
	return out
}

// placeholders assigns "#f0", "#f1", ... to attrs. It returns the expression attribute
// names map and a lookup from attribute to its placeholder.
func placeholders(attrs []string) (names map[string]string, byAttr map[string]string) {
	names = make(map[string]string, len(attrs))
	byAttr = make(map[string]string, len(attrs))
	for i, a := range attrs {
		if _, seen := byAttr[a]; seen {
			continue
		}
		p := fmt.Sprintf("#f%d", i)
		names[p] = a
		byAttr[a] = p
	}
	return names, byAttr
}
