package sanitizer

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	hashtagRe    = regexp.MustCompile(`#\w+`)
	whitespaceRe = regexp.MustCompile(`\s+`)
)

// Result is a cleaned post body plus its final hashtag set.
type Result struct {
	Content  string
	Hashtags []string
}

// Sanitize strips inline hashtags out of the post body and merges them with
// the hashtags the model declared separately. Extracted tags come first, then
// declared ones, deduplicated case-insensitively with first-seen order kept.
func Sanitize(content string, declared []string) Result {
	extracted := ExtractHashtags(content)

	clean := hashtagRe.ReplaceAllString(content, "")
	clean = whitespaceRe.ReplaceAllString(clean, " ")
	clean = strings.TrimSpace(clean)

	return Result{
		Content:  clean,
		Hashtags: MergeHashtags(extracted, declared),
	}
}

// ExtractHashtags returns every inline "#word" token in order, without the
// leading '#'.
func ExtractHashtags(content string) []string {
	matches := hashtagRe.FindAllString(content, -1)
	tags := make([]string, 0, len(matches))
	for _, m := range matches {
		tags = append(tags, strings.TrimPrefix(m, "#"))
	}
	return tags
}

// MergeHashtags unions the two tag lists in order, deduplicates them
// case-insensitively, and canonicalizes each survivor. The canonical form
// upper-cases only the first character; the remainder is lower-cased to make
// dedup deterministic regardless of which casing was seen first.
func MergeHashtags(extracted, declared []string) []string {
	seen := make(map[string]struct{})
	merged := make([]string, 0, len(extracted)+len(declared))

	for _, tag := range append(append([]string{}, extracted...), declared...) {
		key := strings.ToLower(tag)
		if key == "" {
			continue
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		merged = append(merged, Canonicalize(tag))
	}

	return merged
}

// Canonicalize formats a tag for display: first rune upper-cased, remainder
// lower-cased. This is a display convention, not linguistic title-casing.
func Canonicalize(tag string) string {
	lower := strings.ToLower(tag)
	runes := []rune(lower)
	if len(runes) == 0 {
		return lower
	}
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
