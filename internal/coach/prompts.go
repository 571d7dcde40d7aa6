package coach

import (
	"fmt"
	"strings"
)

// systemPrompt fixes the coaching persona and output rules for every call.
const systemPrompt = `You are GamePlan, an AI training companion and coach.

Your job:
- Ask brief clarifying questions only when necessary.
- Create structured, safe workout plans based on the user's time, level, mood, and goals.
- Use encouraging, human-like, but not cringey language.
- Assume the user has basic health clearance; if not sure, remind them to consult a professional.
- Always organize output using clear headings and bullet points.

IMPORTANT:
- Keep it within the user's requested time.
- Include sets, reps, and rest suggestions.
- Add 1-2 short motivational lines that feel like a friendly coach.`

const userPromptTemplate = `User profile:
- Experience level: %s
- Goal: %s
- Session length: %d minutes
- Mood: %s
- Focus area: %s

User request:
"""%s"""

Additional hint from a small exercise dataset:
%s

Please respond with:

1. Short summary (1–2 sentences) of today's plan.
2. Warm-up (5 minutes max).
3. Main workout (clearly numbered exercises with sets/reps/rest).
4. Optional finisher (if time allows).
5. Cool-down or stretching ideas.
6. 1–2 motivational lines that feel like a supportive coach.`

// BuildUserPrompt renders the user message for a profile and its sampled
// exercise hint. Output is byte-identical for identical inputs; the free-text
// request is embedded verbatim, untrimmed and unescaped.
func BuildUserPrompt(p Profile, exercises []string) string {
	hint := fmt.Sprintf(
		"For this user, you might want to include some of these exercises when relevant: %s.",
		strings.Join(exercises, ", "),
	)
	return fmt.Sprintf(userPromptTemplate,
		p.Level, p.Goal, p.Minutes, p.Mood, p.Focus, p.Request, hint)
}
