// Package search filters lines of text by substring containment.
package search

import "strings"

// Lines splits text into lines. A trailing terminator does not produce an
// empty trailing line, and a "\r" before "\n" is dropped.
func Lines(text string) []string {
	if text == "" {
		return []string{}
	}
	parts := strings.Split(text, "\n")
	if parts[len(parts)-1] == "" {
		parts = parts[:len(parts)-1]
	}
	for i, p := range parts {
		parts[i] = strings.TrimSuffix(p, "\r")
	}
	return parts
}

// Search returns the lines of text that contain query, in order.
func Search(query, text string) []string {
	out := []string{}
	for _, line := range Lines(text) {
		if strings.Contains(line, query) {
			out = append(out, line)
		}
	}
	return out
}

// SearchCaseInsensitive is Search with both query and line lowercased
// before comparison.
func SearchCaseInsensitive(query, text string) []string {
	q := strings.ToLower(query)
	out := []string{}
	for _, line := range Lines(text) {
		if strings.Contains(strings.ToLower(line), q) {
			out = append(out, line)
		}
	}
	return out
}
