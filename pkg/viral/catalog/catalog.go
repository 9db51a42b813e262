package catalog

import "strings"

// Platform is a target social network for generated posts.
type Platform string

const (
	PlatformTwitter  Platform = "twitter"
	PlatformLinkedIn Platform = "linkedin"
	PlatformReddit   Platform = "reddit"
)

// Tone is the stylistic directive applied to generated text.
type Tone string

const (
	ToneEducational   Tone = "educational"
	ToneProfessional  Tone = "professional"
	ToneFunny         Tone = "funny"
	ToneInspirational Tone = "inspirational"
	ToneControversial Tone = "controversial"
	ToneCasual        Tone = "casual"
)

// PlatformInfo holds the display and formatting norms for a platform.
type PlatformInfo struct {
	Value    Platform
	Label    string
	MaxChars int
	// FallbackPrefixLen is how much of the source content a fallback
	// template embeds for this platform.
	FallbackPrefixLen int
}

// ToneInfo pairs a tone with the style directive injected into prompts.
type ToneInfo struct {
	Value     Tone
	Label     string
	Directive string
}

var platforms = []PlatformInfo{
	{Value: PlatformTwitter, Label: "Twitter/X", MaxChars: 280, FallbackPrefixLen: 200},
	{Value: PlatformLinkedIn, Label: "LinkedIn", MaxChars: 3000, FallbackPrefixLen: 300},
	{Value: PlatformReddit, Label: "Reddit", MaxChars: 40000, FallbackPrefixLen: 400},
}

var tones = []ToneInfo{
	{Value: ToneEducational, Label: "Educational", Directive: "Teach, give insights, break down info clearly."},
	{Value: ToneProfessional, Label: "Professional", Directive: "Be confident, authoritative, actionable."},
	{Value: ToneFunny, Label: "Funny", Directive: "Use clever humor, playfulness, memes, light-hearted language."},
	{Value: ToneInspirational, Label: "Inspirational", Directive: "Motivate, use energetic and uplifting language."},
	{Value: ToneControversial, Label: "Controversial", Directive: "Take a bold stance, challenge common assumptions respectfully."},
	{Value: ToneCasual, Label: "Casual", Directive: "Light, conversational, friendly, relaxed."},
}

// Platforms returns the supported platforms in display order.
func Platforms() []PlatformInfo {
	out := make([]PlatformInfo, len(platforms))
	copy(out, platforms)
	return out
}

// Tones returns the supported tones in display order.
func Tones() []ToneInfo {
	out := make([]ToneInfo, len(tones))
	copy(out, tones)
	return out
}

// LookupPlatform resolves a platform by its value, case-insensitively.
func LookupPlatform(value string) (PlatformInfo, bool) {
	for _, p := range platforms {
		if strings.EqualFold(string(p.Value), value) {
			return p, true
		}
	}
	return PlatformInfo{}, false
}

// LookupTone resolves a tone by its value, case-insensitively.
func LookupTone(value string) (ToneInfo, bool) {
	for _, t := range tones {
		if strings.EqualFold(string(t.Value), value) {
			return t, true
		}
	}
	return ToneInfo{}, false
}

// IsValidPlatform reports whether value names a supported platform.
func IsValidPlatform(value string) bool {
	_, ok := LookupPlatform(value)
	return ok
}

// IsValidTone reports whether value names a supported tone.
func IsValidTone(value string) bool {
	_, ok := LookupTone(value)
	return ok
}
