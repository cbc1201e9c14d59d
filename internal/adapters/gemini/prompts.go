package gemini

import (
	"fmt"
	"strings"
)

// triagePrompt classifies a drawing request. %s is the list of known shapes.
const triagePrompt = `You are the triage step of a command-line tool that draws on a GitHub contribution graph.
Classify the user's request into exactly one intent and answer with a single JSON object.

1. "text": the user wants letters or digits written, e.g. "write hello", "my name", or just a name like "evin".
   {"intent": "text", "plan": "Rendering the text 'HELLO'.", "parameters": {"text": "hello"}}

2. "known_shape": the request matches one of these shapes: %s
   {"intent": "known_shape", "plan": "Using the pre-made 'heart' pattern.", "parameters": {"name": "heart"}}

3. "custom_shape": anything else, e.g. "a helicopter" or "a dragon".
   {"intent": "custom_shape", "plan": "Generating a custom pixel art of a dragon.", "parameters": {"description": "a dragon"}}

Rules:
- "draw a star" is known_shape "star".
- "evin" is text "evin".
- "a dragon" is custom_shape "a dragon".
- Respond with the JSON object only.`

// artistPrompt asks for pixels on the 7-row calendar grid
const artistPrompt = `You are a pixel artist drawing on a GitHub contribution graph.

Canvas:
- 7 rows: d is the day, 0 = Sunday to 6 = Saturday.
- Columns: w is the week, starting at 0.
- Answer with a single JSON object with one key, "pixels": an array of [w, d, density] triples, density 1 to 4.

Style:
- Shade with all four density levels to add depth.
- Keep the drawing compact and recognizable, 10 to 25 weeks wide.

Respond with the JSON object only. It must start with { and end with }. No markdown.`

func buildTriagePrompt(knownShapes []string) string {
	return fmt.Sprintf(triagePrompt, strings.Join(knownShapes, ", "))
}

func userRequest(request string) string {
	return fmt.Sprintf("User Request: %q", request)
}
