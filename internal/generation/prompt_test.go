package generation

import (
	"strings"
	"testing"

	"github.com/threadgenius/threadgenius/internal/presets"
)

func mustTone(t *testing.T, key string) (presets.Tone, presets.TonePreset) {
	t.Helper()
	tone, preset, err := presets.LookupTone(key)
	if err != nil {
		t.Fatalf("looking up tone %q: %v", key, err)
	}
	return tone, preset
}

func TestTweetPromptCarriesToneStyle(t *testing.T) {
	tone, preset := mustTone(t, "humorous")

	system, prompt := buildTweetPrompt("deploy fridays", tone, preset)
	if !strings.Contains(system, preset.Style) {
		t.Error("tone style text missing from system message")
	}
	if !strings.Contains(prompt, "deploy fridays") {
		t.Error("user input missing from prompt")
	}
	if !strings.Contains(prompt, "humorous") {
		t.Error("tone name missing from prompt")
	}
}

func TestThreadPromptStatesExactCount(t *testing.T) {
	tone, preset := mustTone(t, "")

	_, prompt := buildThreadPrompt("startup story", tone, preset, 5)
	if !strings.Contains(prompt, "exactly 5 tweets") {
		t.Errorf("length instruction missing: %q", prompt)
	}
}

func TestBioPromptInjectsWritingStyleVerbatim(t *testing.T) {
	tone, preset := mustTone(t, "professional")
	style := "short sentences.\nno filler words."

	system, _ := buildBioPrompt("golang, coffee", style, tone, preset)
	if !strings.Contains(system, style) {
		t.Error("writing style not injected verbatim")
	}
}

func TestIdeasPromptDefaultsTopicsFromNiche(t *testing.T) {
	niche, preset, err := presets.LookupNiche("tech")
	if err != nil {
		t.Fatalf("looking up niche: %v", err)
	}

	system, _ := buildIdeasPrompt("style", niche, preset, "", nil)
	for _, topic := range preset.Topics {
		if !strings.Contains(system, topic) {
			t.Errorf("preset topic %q missing when request topics empty", topic)
		}
	}

	// Explicit topics win over the preset list.
	system, _ = buildIdeasPrompt("style", niche, preset, "only this", nil)
	if !strings.Contains(system, "only this") {
		t.Error("explicit topics not used")
	}
}

func TestIdeasPromptIncludesRecentContent(t *testing.T) {
	niche, preset, err := presets.LookupNiche("finance")
	if err != nil {
		t.Fatalf("looking up niche: %v", err)
	}

	system, _ := buildIdeasPrompt("style", niche, preset, "", []string{"old tweet one", "old tweet two"})
	if !strings.Contains(system, "old tweet one") || !strings.Contains(system, "old tweet two") {
		t.Error("recent content missing from system message")
	}

	system, _ = buildIdeasPrompt("style", niche, preset, "", nil)
	if strings.Contains(system, "Recent content examples") {
		t.Error("recent-content section present with no examples")
	}
}
