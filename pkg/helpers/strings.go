package helpers

import "strings"

// TitleCase lowercases the input and capitalizes the first letter of each
// space-separated word: "jane doe" -> "Jane Doe".
func TitleCase(s string) string {
	if s == "" {
		return ""
	}
	words := strings.Split(strings.ToLower(s), " ")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// LowerTrim normalizes identifiers such as emails: trimmed and lowercased.
func LowerTrim(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
