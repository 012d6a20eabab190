// Package presets holds the immutable tone and niche tables injected into
// generation prompts. The tables are process-wide constants, never mutated
// at runtime, and unknown keys are rejected before any completion call.
package presets

import "errors"

var (
	ErrInvalidTone  = errors.New("unknown tone")
	ErrInvalidNiche = errors.New("unknown niche")
)

type Tone string

const (
	ToneCasual        Tone = "casual"
	ToneProfessional  Tone = "professional"
	ToneHumorous      Tone = "humorous"
	ToneEducational   Tone = "educational"
	ToneInspirational Tone = "inspirational"
	ToneControversial Tone = "controversial"
	ToneStorytelling  Tone = "storytelling"
)

// TonePreset is the descriptive bundle a tone contributes to a prompt.
type TonePreset struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Style       string `json:"style"`
}

var tones = map[Tone]TonePreset{
	ToneCasual: {
		Name:        "Casual",
		Description: "Relaxed, friendly, and conversational",
		Style:       "Use everyday language, slang, and a laid-back tone. Like chatting with friends.",
	},
	ToneProfessional: {
		Name:        "Professional",
		Description: "Polished, authoritative, and business-focused",
		Style:       "Use formal language, industry terms, and maintain a professional demeanor.",
	},
	ToneHumorous: {
		Name:        "Humorous",
		Description: "Fun, witty, and entertaining",
		Style:       "Include jokes, wordplay, and light-hearted observations. Keep it entertaining but not silly.",
	},
	ToneEducational: {
		Name:        "Educational",
		Description: "Informative, clear, and helpful",
		Style:       "Break down complex topics, use examples, and focus on teaching/explaining.",
	},
	ToneInspirational: {
		Name:        "Inspirational",
		Description: "Motivational, uplifting, and encouraging",
		Style:       "Use powerful language, share insights, and focus on growth and possibilities.",
	},
	ToneControversial: {
		Name:        "Controversial",
		Description: "Thought-provoking and debate-sparking",
		Style:       "Present challenging viewpoints, ask tough questions, but remain respectful.",
	},
	ToneStorytelling: {
		Name:        "Storytelling",
		Description: "Narrative-focused and engaging",
		Style:       "Use narrative techniques, build suspense, and focus on the story arc.",
	},
}

// DefaultTone is used when a request omits the tone field.
const DefaultTone = ToneCasual

// LookupTone resolves a tone key, returning ErrInvalidTone for unknown keys.
// An empty key resolves to DefaultTone.
func LookupTone(key string) (Tone, TonePreset, error) {
	if key == "" {
		return DefaultTone, tones[DefaultTone], nil
	}
	t := Tone(key)
	preset, ok := tones[t]
	if !ok {
		return "", TonePreset{}, ErrInvalidTone
	}
	return t, preset, nil
}

// Tones returns a copy of the tone table for API display.
func Tones() map[Tone]TonePreset {
	out := make(map[Tone]TonePreset, len(tones))
	for k, v := range tones {
		out[k] = v
	}
	return out
}

type Niche string

const (
	NicheTech           Niche = "tech"
	NicheBusiness       Niche = "business"
	NichePersonalGrowth Niche = "personal_growth"
	NicheCreatorEconomy Niche = "creator_economy"
	NicheFinance        Niche = "finance"
	NicheHealthWellness Niche = "health_wellness"
)

type NichePreset struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Topics      []string `json:"topics"`
}

var niches = map[Niche]NichePreset{
	NicheTech: {
		Name:        "Technology & Programming",
		Description: "Software development, tech trends, and digital innovation",
		Topics:      []string{"coding", "software", "tech news", "AI", "web development"},
	},
	NicheBusiness: {
		Name:        "Business & Entrepreneurship",
		Description: "Startups, business strategy, and entrepreneurship",
		Topics:      []string{"startups", "marketing", "leadership", "business growth", "entrepreneurship"},
	},
	NichePersonalGrowth: {
		Name:        "Personal Development",
		Description: "Self-improvement, productivity, and lifestyle optimization",
		Topics:      []string{"productivity", "mindset", "habits", "personal growth", "motivation"},
	},
	NicheCreatorEconomy: {
		Name:        "Creator Economy",
		Description: "Content creation, social media, and online business",
		Topics:      []string{"content creation", "social media", "personal branding", "monetization", "audience building"},
	},
	NicheFinance: {
		Name:        "Finance & Investing",
		Description: "Personal finance, investing, and wealth building",
		Topics:      []string{"investing", "crypto", "personal finance", "wealth building", "financial literacy"},
	},
	NicheHealthWellness: {
		Name:        "Health & Wellness",
		Description: "Physical health, mental wellbeing, and lifestyle",
		Topics:      []string{"fitness", "mental health", "nutrition", "wellness", "mindfulness"},
	},
}

// LookupNiche resolves a niche key, returning ErrInvalidNiche for unknown keys.
func LookupNiche(key string) (Niche, NichePreset, error) {
	n := Niche(key)
	preset, ok := niches[n]
	if !ok {
		return "", NichePreset{}, ErrInvalidNiche
	}
	return n, preset, nil
}

// Niches returns a copy of the niche table for API display.
func Niches() map[Niche]NichePreset {
	out := make(map[Niche]NichePreset, len(niches))
	for k, v := range niches {
		out[k] = v
	}
	return out
}
