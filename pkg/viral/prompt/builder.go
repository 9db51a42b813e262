package prompt

import (
	"fmt"
	"strings"

	"viralpost-be/pkg/viral/catalog"
)

// Spec is the fully built prompt handed to the LLM provider.
type Spec struct {
	System string
	User   string
}

// Build constructs the system/user prompt for one (platform, tone) pair.
// It is a pure function; callers must only pass catalog-validated values.
func Build(content string, platform catalog.PlatformInfo, tone catalog.ToneInfo) Spec {
	var sb strings.Builder

	sb.WriteString("You are an expert viral post writer with 10+ years experience.\n")
	sb.WriteString(fmt.Sprintf(
		"Your job is to transform provided text into exactly THREE highly viral social media posts for the %q platform in %q tone.\n",
		platform.Value, tone.Value,
	))
	sb.WriteString("Each post must:\n")
	sb.WriteString(fmt.Sprintf(
		"- Follow the most current best practices for %s: length limits, formatting, use of line breaks, hashtags, and engagement tactics.\n",
		platform.Value,
	))
	sb.WriteString(fmt.Sprintf("- Strictly match the %q tone: %s\n", tone.Value, tone.Directive))
	sb.WriteString("- Be optimized for maximum shares, likes, and platform-specific virality.\n")
	sb.WriteString("- Use emojis and trending hashtags only if relevant.\n")
	sb.WriteString("- Be in this exact response format:\n\n")
	sb.WriteString("RESPONSE_FORMAT:\n")
	sb.WriteString("[\n")
	sb.WriteString(fmt.Sprintf("  {\n    \"content\": \"string, best viral post text, under %d characters\",\n", platform.MaxChars))
	sb.WriteString(fmt.Sprintf("    \"platform\": %q,\n", platform.Value))
	sb.WriteString(fmt.Sprintf("    \"tone\": %q,\n", tone.Value))
	sb.WriteString("    \"hashtags\": [\"trending\", \"tags\", \"etc\"]\n  },\n")
	sb.WriteString("  {...}, {...}\n")
	sb.WriteString("]\n\n")
	sb.WriteString("Do not include any other text, explanations, intros or outros. Deliver exactly 3 posts and nothing else and Must follow the RESPONSE_FORMAT only.\n")

	return Spec{
		System: sb.String(),
		User:   content,
	}
}
