package fallback

import (
	"strings"
	"testing"
	"unicode/utf8"

	"viralpost-be/pkg/viral/catalog"
)

func mustPlatform(t *testing.T, value string) catalog.PlatformInfo {
	t.Helper()
	p, ok := catalog.LookupPlatform(value)
	if !ok {
		t.Fatalf("unknown platform %q", value)
	}
	return p
}

func mustTone(t *testing.T, value string) catalog.ToneInfo {
	t.Helper()
	tone, ok := catalog.LookupTone(value)
	if !ok {
		t.Fatalf("unknown tone %q", value)
	}
	return tone
}

func TestGenerateAlwaysThreeValidPosts(t *testing.T) {
	content := "How to build resilient backend systems with graceful degradation"

	for _, p := range catalog.Platforms() {
		for _, tone := range catalog.Tones() {
			t.Run(string(p.Value)+"/"+string(tone.Value), func(t *testing.T) {
				posts := Generate(content, p, tone)

				if len(posts) != 3 {
					t.Fatalf("len(posts) = %d, want 3", len(posts))
				}
				for i, post := range posts {
					if !post.IsValid() {
						t.Errorf("posts[%d] is not a valid candidate: %+v", i, post)
					}
					if post.Platform != string(p.Value) {
						t.Errorf("posts[%d].Platform = %q, want %q", i, post.Platform, p.Value)
					}
					if post.Tone != string(tone.Value) {
						t.Errorf("posts[%d].Tone = %q, want %q", i, post.Tone, tone.Value)
					}
					if n := utf8.RuneCountInString(post.Content); n > p.MaxChars {
						t.Errorf("posts[%d] length %d exceeds platform limit %d", i, n, p.MaxChars)
					}
					if len(post.Hashtags) == 0 {
						t.Errorf("posts[%d] has no hashtags", i)
					}
				}
			})
		}
	}
}

func TestGenerateTruncatesLongContent(t *testing.T) {
	long := strings.Repeat("a", 1000)
	p := mustPlatform(t, "twitter")

	posts := Generate(long, p, mustTone(t, "casual"))
	for i, post := range posts {
		// 200-rune snippet plus template framing must stay under 280.
		if n := utf8.RuneCountInString(post.Content); n > p.MaxChars {
			t.Errorf("posts[%d] length %d exceeds %d", i, n, p.MaxChars)
		}
	}
}

func TestGenerateFallsThroughToCasual(t *testing.T) {
	// Twitter has no "funny" table, so the casual set is used.
	posts := Generate("content", mustPlatform(t, "twitter"), mustTone(t, "funny"))
	if len(posts) != 3 {
		t.Fatalf("len(posts) = %d, want 3", len(posts))
	}
	if !strings.Contains(posts[0].Content, "Check this out!") {
		t.Errorf("expected casual template, got %q", posts[0].Content)
	}
	// Tone metadata still reflects what was requested.
	if posts[0].Tone != "funny" {
		t.Errorf("posts[0].Tone = %q, want funny", posts[0].Tone)
	}
}

func TestGenerateHashtagsMatchBody(t *testing.T) {
	posts := Generate("some content", mustPlatform(t, "linkedin"), mustTone(t, "professional"))
	for i, post := range posts {
		for _, tag := range post.Hashtags {
			if !strings.Contains(post.Content, "#"+tag) {
				t.Errorf("posts[%d] hashtag %q not present in body %q", i, tag, post.Content)
			}
		}
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name    string
		content string
		limit   int
		want    string
	}{
		{"shorter than limit", "abc", 10, "abc"},
		{"exactly at limit", "abc", 3, "abc"},
		{"over limit", "abcdef", 3, "abc"},
		{"multibyte runes kept intact", "héllo wörld", 6, "héllo "},
		{"negative limit", "abc", -1, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := truncate(tt.content, tt.limit); got != tt.want {
				t.Errorf("truncate(%q, %d) = %q, want %q", tt.content, tt.limit, got, tt.want)
			}
		})
	}
}
