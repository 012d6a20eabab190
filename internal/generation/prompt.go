package generation

import (
	"fmt"
	"strings"

	"github.com/threadgenius/threadgenius/internal/presets"
)

// Prompt builders return the system and user messages for one completion
// call. Tone presets contribute their style text to the system message so
// the model sees the full instruction, not just a tone name.

const tweetSystem = `You are a social media expert who writes tweets that go viral. Your style is:
- Natural and conversational, like talking to a friend
- Thought-provoking without being pretentious
- Clear and accessible, avoiding industry jargon
- Engaging but not clickbaity
- Zero hashtags unless absolutely essential
- No corporate speak or marketing buzzwords

Examples of good tweets:
"Just realized my best code is written at 2 AM. My worst code is also written at 2 AM. It's a mystery"
"Hot take: Documentation isn't just about helping others. Future you is the first person you're writing it for."

Examples to avoid:
"10 MIND-BLOWING JavaScript hacks that will 100x your productivity! #coding #javascript #webdev"
"Leveraging synergistic opportunities in the digital transformation space"`

func buildTweetPrompt(input string, tone presets.Tone, preset presets.TonePreset) (system, prompt string) {
	system = tweetSystem + "\n\nTone: " + preset.Name + ". " + preset.Style
	prompt = fmt.Sprintf(`Write a %s tweet about: '%s'.
Make it feel like a genuine thought or observation that would spark replies.
If using emojis, keep them minimal and natural (max 1-2).
Focus on starting a conversation or sharing a unique perspective.
Remember: write like a real person, not a brand.`, tone, input)
	return system, prompt
}

const threadSystem = `You are a master storyteller who creates captivating Twitter threads. Your approach:
- Hook readers with a strong, intriguing opening tweet
- Each tweet builds curiosity for the next one
- Use simple, clear language that anyone can understand
- Create smooth transitions between tweets
- End with insight that makes readers think or take action
- Avoid clickbait or artificial cliffhangers
- No hashtags or forced engagement requests
- Each tweet must be under 280 characters
- Separate tweets with blank lines
- Output only the tweets, no numbering or labels

Thread Structure:
1. Opening tweet: Hook + Promise of value
2. Middle tweets: Deliver value through story/insights
3. Final tweet: Key takeaway + natural conclusion`

func buildThreadPrompt(input string, tone presets.Tone, preset presets.TonePreset, length int) (system, prompt string) {
	system = threadSystem + "\n\nTone: " + preset.Name + ". " + preset.Style
	prompt = fmt.Sprintf(`Create an engaging %s thread with exactly %d tweets about: %s

Guidelines:
- First tweet must grab attention and hint at value
- Build the story naturally, like telling it to a friend
- Include specific details and personal insights
- Make each tweet flow into the next
- End with a meaningful conclusion that resonates
- Keep it conversational and authentic throughout
- No clickbait or artificial suspense`, tone, length, input)
	return system, prompt
}

func buildBioPrompt(keywords, writingStyle string, tone presets.Tone, preset presets.TonePreset) (system, prompt string) {
	system = fmt.Sprintf(`You are a friendly helper who's good at writing Twitter bios that show who people really are. Here's how the user naturally writes:

%s

When writing their bio:
- Write exactly like the user writes
- Show their real personality
- Use simple, clear words
- Keep it honest and real
- Skip overused phrases
- Only use emojis if they really fit (max 2-3)
- Keep it under 160 characters

Skip these overused phrases:
- "Coffee lover"
- "Living life to the fullest"
- "Views are my own"
- "Passionate about..."
- Any job title + "[hobby] by night"

Remember: The bio should sound just like the user, not like a resume or brand statement.

Tone: %s. %s`, writingStyle, preset.Name, preset.Style)

	prompt = fmt.Sprintf(`Create a %s Twitter bio using these details: %s

Write it in the user's exact style and voice.
Make it sound real and personal, like they wrote it themselves.
Keep the words simple and clear.
Focus on what makes them unique and interesting.
Skip business language and buzzwords.
If you use emojis, make sure they really fit who they are.`, tone, keywords)
	return system, prompt
}

func buildIdeasPrompt(writingStyle string, niche presets.Niche, preset presets.NichePreset, topics string, recent []string) (system, prompt string) {
	if topics == "" {
		topics = strings.Join(preset.Topics, ", ")
	}

	var b strings.Builder
	fmt.Fprintf(&b, `You're a content strategist helping generate Twitter content ideas. Here's the context:

Writing Style: %s
Niche: %s (%s)
Topics: %s
`, writingStyle, preset.Name, preset.Description, topics)

	if len(recent) > 0 {
		b.WriteString("\nRecent content examples:\n")
		b.WriteString(strings.Join(recent, "\n\n"))
		b.WriteString("\n")
	}

	b.WriteString(`
Generate a mix of:
- Tweet ideas (single tweets)
- Thread ideas (multi-tweet topics)
- Content series ideas
- Engagement questions
- Personal story angles

Format each idea clearly with a blank line between ideas.
Make ideas specific and actionable, not generic.
Match their exact writing style and expertise level.`)

	prompt = fmt.Sprintf(`Generate 8 content ideas for Twitter that would resonate with an audience in the %s niche.

Separate each idea with a blank line, no numbering.

Make sure each idea:
- Is specific to their niche
- Matches their writing style
- Provides clear value
- Would engage their audience
- Could be expanded into tweets/threads`, niche)
	return b.String(), prompt
}
