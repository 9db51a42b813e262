package fallback

import (
	"fmt"

	"viralpost-be/pkg/viral/catalog"
	"viralpost-be/pkg/viral/parser"
	"viralpost-be/pkg/viral/sanitizer"
)

// template wraps a truncated content prefix into a finished post body.
type template func(snippet string) string

// Per (platform, tone) template tables. Each entry yields three posts with
// two baked-in hashtags. Unmapped tones fall through to the platform's
// casual set, then to the generic template.
var templates = map[catalog.Platform]map[catalog.Tone][]template{
	catalog.PlatformTwitter: {
		catalog.ToneCasual: {
			func(s string) string { return fmt.Sprintf("Check this out! %s... #ViralContent #SocialMedia", s) },
			func(s string) string { return fmt.Sprintf("This is amazing! %s... #Trending #MustSee", s) },
			func(s string) string { return fmt.Sprintf("You won't believe this! %s... #Wow #Amazing", s) },
		},
		catalog.ToneProfessional: {
			func(s string) string { return fmt.Sprintf("Key insight: %s... #BusinessTips #Leadership", s) },
			func(s string) string { return fmt.Sprintf("Important update: %s... #IndustryNews #Professional", s) },
			func(s string) string { return fmt.Sprintf("Strategic thinking: %s... #Strategy #Business", s) },
		},
		catalog.ToneEducational: {
			func(s string) string { return fmt.Sprintf("Learn this: %s... #Education #Learning", s) },
			func(s string) string { return fmt.Sprintf("Did you know? %s... #Facts #Knowledge", s) },
			func(s string) string { return fmt.Sprintf("Here's how: %s... #Tutorial #HowTo", s) },
		},
	},
	catalog.PlatformLinkedIn: {
		catalog.ToneProfessional: {
			func(s string) string {
				return fmt.Sprintf("Professional insight: %s... #ProfessionalDevelopment #Leadership", s)
			},
			func(s string) string { return fmt.Sprintf("Industry update: %s... #IndustryInsights #CareerGrowth", s) },
			func(s string) string { return fmt.Sprintf("Strategic perspective: %s... #BusinessStrategy #Innovation", s) },
		},
		catalog.ToneEducational: {
			func(s string) string { return fmt.Sprintf("Educational content: %s... #Learning #Skills", s) },
			func(s string) string { return fmt.Sprintf("Knowledge sharing: %s... #Education #CareerTips", s) },
			func(s string) string { return fmt.Sprintf("Professional learning: %s... #ProfessionalGrowth #Development", s) },
		},
		catalog.ToneCasual: {
			func(s string) string { return fmt.Sprintf("Thoughts on: %s... #ProfessionalThoughts #Networking", s) },
			func(s string) string { return fmt.Sprintf("Sharing insights: %s... #ProfessionalInsights #Career", s) },
			func(s string) string { return fmt.Sprintf("Professional perspective: %s... #Career #Networking", s) },
		},
	},
	catalog.PlatformReddit: {
		catalog.ToneCasual: {
			func(s string) string {
				return fmt.Sprintf("So I was thinking about this: %s... What do you all think? #Discussion #Community", s)
			},
			func(s string) string {
				return fmt.Sprintf("Interesting take on this topic: %s... Thoughts? #Opinion #Discussion", s)
			},
			func(s string) string {
				return fmt.Sprintf("This is pretty cool: %s... Anyone else have experience with this? #Community #Sharing", s)
			},
		},
		catalog.ToneEducational: {
			func(s string) string {
				return fmt.Sprintf("Educational post: %s... Hope this helps someone! #Learning #Knowledge", s)
			},
			func(s string) string {
				return fmt.Sprintf("Learning moment: %s... Sharing knowledge with the community. #Education #Community", s)
			},
			func(s string) string {
				return fmt.Sprintf("Informative content: %s... Always happy to share what I know. #Knowledge #Sharing", s)
			},
		},
		catalog.ToneProfessional: {
			func(s string) string {
				return fmt.Sprintf("Professional insight: %s... Would love to hear your thoughts. #Professional #Discussion", s)
			},
			func(s string) string {
				return fmt.Sprintf("Industry perspective: %s... What's your experience? #Industry #Career", s)
			},
			func(s string) string {
				return fmt.Sprintf("Business insight: %s... Curious about others' views. #Business #Insights", s)
			},
		},
	},
}

// Generate builds exactly three deterministic placeholder posts for one
// (platform, tone) pair. It is the recovery path whenever the model call
// failed or produced no valid candidate, so every result must itself satisfy
// the candidate validity contract.
func Generate(content string, platform catalog.PlatformInfo, tone catalog.ToneInfo) []parser.Candidate {
	snippet := truncate(content, platform.FallbackPrefixLen)

	set := lookupTemplates(platform.Value, tone.Value)
	if set == nil {
		generic := fmt.Sprintf("%s... #Content #SocialMedia", truncate(content, platform.MaxChars-50))
		set = []template{
			func(string) string { return generic },
			func(string) string { return generic },
			func(string) string { return generic },
		}
	}

	posts := make([]parser.Candidate, 0, 3)
	for _, tpl := range set[:3] {
		body := tpl(snippet)
		posts = append(posts, parser.Candidate{
			Content:  body,
			Platform: string(platform.Value),
			Tone:     string(tone.Value),
			Hashtags: sanitizer.ExtractHashtags(body),
		})
	}
	return posts
}

func lookupTemplates(platform catalog.Platform, tone catalog.Tone) []template {
	byTone, ok := templates[platform]
	if !ok {
		return nil
	}
	if set, ok := byTone[tone]; ok && len(set) >= 3 {
		return set
	}
	if set, ok := byTone[catalog.ToneCasual]; ok && len(set) >= 3 {
		return set
	}
	return nil
}

func truncate(content string, limit int) string {
	if limit < 0 {
		limit = 0
	}
	runes := []rune(content)
	if len(runes) <= limit {
		return content
	}
	return string(runes[:limit])
}
