package parser

import (
	"testing"
)

func TestParseStrictArray(t *testing.T) {
	raw := `[{"content":"Post one","platform":"twitter","tone":"casual","hashtags":["AI"]},{"content":"Post two","platform":"twitter","tone":"casual","hashtags":[]}]`

	posts := Parse(raw)
	if len(posts) != 2 {
		t.Fatalf("len(posts) = %d, want 2", len(posts))
	}
	if posts[0].Content != "Post one" {
		t.Errorf("posts[0].Content = %q, want %q", posts[0].Content, "Post one")
	}
	if len(posts[0].Hashtags) != 1 || posts[0].Hashtags[0] != "AI" {
		t.Errorf("posts[0].Hashtags = %v, want [AI]", posts[0].Hashtags)
	}
}

func TestParseCascade(t *testing.T) {
	tests := []struct {
		name      string
		raw       string
		wantCount int
		wantFirst string
	}{
		{
			name:      "markdown fenced json",
			raw:       "```json\n[{\"content\":\"Fenced post\",\"hashtags\":[\"Go\"]}]\n```",
			wantCount: 1,
			wantFirst: "Fenced post",
		},
		{
			name:      "bare fence without language",
			raw:       "```\n[{\"content\":\"Bare fence\",\"hashtags\":[]}]\n```",
			wantCount: 1,
			wantFirst: "Bare fence",
		},
		{
			name:      "array wrapped in prose",
			raw:       "Sure! Here are your posts:\n[{\"content\":\"Wrapped\",\"hashtags\":[\"X\"]}]\nHope that helps!",
			wantCount: 1,
			wantFirst: "Wrapped",
		},
		{
			name:      "loose objects without array",
			raw:       `{"content":"First loose","hashtags":["A"]} some noise {"content":"Second loose","hashtags":["B"]}`,
			wantCount: 2,
			wantFirst: "First loose",
		},
		{
			name:      "plain prose yields nothing",
			raw:       "I cannot help with that request.",
			wantCount: 0,
		},
		{
			name:      "empty input yields nothing",
			raw:       "",
			wantCount: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			posts := Parse(tt.raw)
			if len(posts) != tt.wantCount {
				t.Fatalf("len(posts) = %d, want %d", len(posts), tt.wantCount)
			}
			if tt.wantCount > 0 && posts[0].Content != tt.wantFirst {
				t.Errorf("posts[0].Content = %q, want %q", posts[0].Content, tt.wantFirst)
			}
		})
	}
}

func TestParseValidFiltersInvalidCandidates(t *testing.T) {
	tests := []struct {
		name      string
		raw       string
		wantCount int
	}{
		{
			name:      "empty content rejected",
			raw:       `[{"content":"","hashtags":["A"]}]`,
			wantCount: 0,
		},
		{
			name:      "whitespace-only content rejected",
			raw:       `[{"content":"   ","hashtags":["A"]}]`,
			wantCount: 0,
		},
		{
			name:      "missing hashtags rejected",
			raw:       `[{"content":"ok"}]`,
			wantCount: 0,
		},
		{
			name:      "empty hashtags array accepted",
			raw:       `[{"content":"ok","hashtags":[]}]`,
			wantCount: 1,
		},
		{
			name:      "mixed validity keeps only valid",
			raw:       `[{"content":"","hashtags":[]},{"content":"keep me","hashtags":["T"]}]`,
			wantCount: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			posts := ParseValid(tt.raw)
			if len(posts) != tt.wantCount {
				t.Errorf("len(posts) = %d, want %d", len(posts), tt.wantCount)
			}
		})
	}
}

func TestCandidateIsValid(t *testing.T) {
	tests := []struct {
		name string
		c    Candidate
		want bool
	}{
		{"content and tags", Candidate{Content: "hello", Hashtags: []string{"A"}}, true},
		{"content and empty tags", Candidate{Content: "hello", Hashtags: []string{}}, true},
		{"nil hashtags", Candidate{Content: "hello"}, false},
		{"blank content", Candidate{Content: " \n\t", Hashtags: []string{}}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.c.IsValid(); got != tt.want {
				t.Errorf("IsValid() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestStripMarkdownFence(t *testing.T) {
	got := stripMarkdownFence("```json\n[1]\n```")
	if got != "[1]" {
		t.Errorf("stripMarkdownFence = %q, want %q", got, "[1]")
	}

	// Unfenced text passes through unchanged apart from trimming.
	got = stripMarkdownFence("  [2]  ")
	if got != "[2]" {
		t.Errorf("stripMarkdownFence = %q, want %q", got, "[2]")
	}
}

func TestExtractArraySubstring(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"prose around array", "before [1, 2] after", "[1, 2]"},
		{"no brackets", "nothing here", ""},
		{"only open bracket", "broken [", ""},
		{"greedy span over nested arrays", "x [[1],[2]] y", "[[1],[2]]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := extractArraySubstring(tt.in); got != tt.want {
				t.Errorf("extractArraySubstring(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
