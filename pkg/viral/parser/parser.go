package parser

import (
	"encoding/json"
	"regexp"
	"strings"
)

// Candidate is an unvalidated post-shaped object extracted from raw model
// output. Hashtags must be present (possibly empty) for the candidate to be
// considered valid.
type Candidate struct {
	Content  string   `json:"content"`
	Platform string   `json:"platform"`
	Tone     string   `json:"tone"`
	Hashtags []string `json:"hashtags"`
}

// IsValid reports whether the candidate satisfies the minimum contract:
// non-empty content after trimming and a present hashtags slice.
func (c Candidate) IsValid() bool {
	return strings.TrimSpace(c.Content) != "" && c.Hashtags != nil
}

var objectWithContentRe = regexp.MustCompile(`\{[^{}]*"content"[^{}]*\}`)

// Parse turns raw LLM output into zero or more candidates. Models rarely
// honor the strict-JSON contract, so a cascade of strategies is tried in
// order; each one only runs when the previous yielded nothing. Parse never
// returns an error: unusable output is simply an empty slice.
func Parse(raw string) []Candidate {
	if posts, ok := parseArray(raw); ok {
		return posts
	}
	if posts, ok := parseArray(stripMarkdownFence(raw)); ok {
		return posts
	}
	if posts, ok := parseArray(extractArraySubstring(raw)); ok {
		return posts
	}
	if posts := parseLooseObjects(raw); len(posts) > 0 {
		return posts
	}
	return nil
}

// ParseValid runs Parse and discards candidates that fail the validity
// contract. An empty result means the caller should take the fallback path.
func ParseValid(raw string) []Candidate {
	all := Parse(raw)
	valid := make([]Candidate, 0, len(all))
	for _, c := range all {
		if c.IsValid() {
			valid = append(valid, c)
		}
	}
	return valid
}

func parseArray(text string) ([]Candidate, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, false
	}
	var posts []Candidate
	if err := json.Unmarshal([]byte(text), &posts); err != nil {
		return nil, false
	}
	return posts, true
}

// stripMarkdownFence removes one leading ``` or ```json fence and one
// trailing ``` fence, if present.
func stripMarkdownFence(text string) string {
	cleaned := strings.TrimSpace(text)

	if strings.HasPrefix(cleaned, "```json") {
		cleaned = cleaned[len("```json"):]
	} else if strings.HasPrefix(cleaned, "```") {
		cleaned = cleaned[len("```"):]
	}

	if strings.HasSuffix(cleaned, "```") {
		cleaned = cleaned[:len(cleaned)-len("```")]
	}

	return strings.TrimSpace(cleaned)
}

// extractArraySubstring grabs the greedy span between the first '[' and the
// last ']' so that prose before or after a JSON array does not break parsing.
func extractArraySubstring(text string) string {
	start := strings.Index(text, "[")
	end := strings.LastIndex(text, "]")
	if start == -1 || end == -1 || end <= start {
		return ""
	}
	return text[start : end+1]
}

// parseLooseObjects scans for brace-delimited objects containing a "content"
// key (no nested braces) and parses each one independently, dropping any
// that fail.
func parseLooseObjects(text string) []Candidate {
	matches := objectWithContentRe.FindAllString(text, -1)
	if len(matches) == 0 {
		return nil
	}

	var posts []Candidate
	for _, match := range matches {
		var c Candidate
		if err := json.Unmarshal([]byte(match), &c); err != nil {
			continue
		}
		posts = append(posts, c)
	}
	return posts
}
