package prompt

import (
	"strings"
	"testing"

	"viralpost-be/pkg/viral/catalog"
)

func TestBuild(t *testing.T) {
	platform, _ := catalog.LookupPlatform("twitter")
	tone, _ := catalog.LookupTone("educational")

	spec := Build("My article about Go concurrency", platform, tone)

	if spec.User != "My article about Go concurrency" {
		t.Errorf("User = %q, want the source content verbatim", spec.User)
	}

	for _, want := range []string{
		"exactly THREE highly viral social media posts",
		`"twitter"`,
		`"educational"`,
		tone.Directive,
		"under 280 characters",
		"RESPONSE_FORMAT:",
		"Deliver exactly 3 posts",
	} {
		if !strings.Contains(spec.System, want) {
			t.Errorf("System prompt missing %q", want)
		}
	}
}

func TestBuildVariesByPlatformAndTone(t *testing.T) {
	content := "same content"
	twitter, _ := catalog.LookupPlatform("twitter")
	linkedin, _ := catalog.LookupPlatform("linkedin")
	casual, _ := catalog.LookupTone("casual")
	funny, _ := catalog.LookupTone("funny")

	a := Build(content, twitter, casual)
	b := Build(content, linkedin, casual)
	c := Build(content, twitter, funny)

	if a.System == b.System {
		t.Error("system prompt identical across platforms")
	}
	if a.System == c.System {
		t.Error("system prompt identical across tones")
	}
	if !strings.Contains(b.System, "under 3000 characters") {
		t.Error("linkedin prompt missing its character budget")
	}
}
