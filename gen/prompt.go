package gen

import "fmt"

// walkPrompt asks for the three walk phases of one direction in a single
// request. Requesting the phases together makes the "all frames identical"
// failure mode detectable in one round trip.
func walkPrompt(description string, d direction) string {
	return fmt.Sprintf(`Create 3 DIFFERENT walk animation frames for a %s.

Direction: %s

Make a simple humanoid (head, body, 2 arms, 2 legs). About 12 pixels tall, centered.

IMPORTANT - Create 3 UNIQUE frames:
1. Frame 0: Wide stance - LEFT leg forward, RIGHT leg back
2. Frame 1: Standing - both legs together
3. Frame 2: Wide stance - RIGHT leg forward, LEFT leg back

Each frame MUST look different! Different leg positions!

16x16 grid. Use: @ (body) # (detail) + (light) = (medium) - (shadow) . (outline) space (empty)

NO BACKGROUND - use space characters for all empty areas around the character.

Return ONLY this exact JSON format:
{
  "f0": ["line1 (16 chars)", "line2", ... 16 lines total],
  "f1": ["line1 (16 chars)", "line2", ... 16 lines total],
  "f2": ["line1 (16 chars)", "line2", ... 16 lines total]
}

No other text. Just the JSON.`, description, d.view())
}

// idlePrompt asks for a single standing pose for one direction.
func idlePrompt(description string, d direction) string {
	return fmt.Sprintf(`Create ONE idle pose for a %s, standing still.

Direction: %s

Make a simple humanoid (head, body, 2 arms, 2 legs). About 12 pixels tall,
centered, both legs together, arms at sides.

16x16 grid. Use: @ (body) # (detail) + (light) = (medium) - (shadow) . (outline) space (empty)

NO BACKGROUND - use space characters for all empty areas around the character.

Return ONLY this exact JSON format:
{
  "frame": ["line1 (16 chars)", "line2", ... 16 lines total]
}

No other text. Just the JSON.`, description, d.view())
}
