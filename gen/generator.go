package gen

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/spritegen/spritegen/artifact"
	"github.com/spritegen/spritegen/frame"
)

const walkPhases = 3

// Generator assembles a complete directional animation: three walk phases
// plus one idle pose for each of the four directions. Each direction costs
// two requests, issued sequentially with the policy delay in between.
type Generator struct {
	Client Client
	Policy Policy
	Logger *log.Logger

	// Accept judges each candidate walk set; nil means DistinctFrames.
	Accept Accept

	// Height and Width override the canonical frame size when non-zero.
	Height int
	Width  int
}

func (g *Generator) size() (int, int) {
	height, width := g.Height, g.Width
	if height <= 0 {
		height = frame.Height
	}
	if width <= 0 {
		width = frame.Width
	}
	return height, width
}

func (g *Generator) attempts() int {
	if g.Policy.Attempts < 1 {
		return 1
	}
	return g.Policy.Attempts
}

func (g *Generator) accept() Accept {
	if g.Accept == nil {
		return DistinctFrames
	}
	return g.Accept
}

func (g *Generator) logf(format string, v ...interface{}) {
	if g.Logger != nil {
		g.Logger.Printf(format, v...)
	}
}

func (g *Generator) sleep(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if g.Policy.Delay <= 0 {
		return nil
	}
	t := time.NewTimer(g.Policy.Delay)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Generate produces the full animation for a character description. The
// palette is derived from the description, the frames from the model.
func (g *Generator) Generate(ctx context.Context, description string) (*artifact.Animation, error) {
	frames := make(map[string]frame.Frame)

	for i, d := range directions {
		if i > 0 {
			if err := g.sleep(ctx); err != nil {
				return nil, err
			}
		}

		g.logf("generating %s walk frames", d)
		walk, err := g.walkFrames(ctx, description, d)
		if err != nil {
			return nil, err
		}
		for phase, f := range walk {
			frames[fmt.Sprintf("walk_%s_%d", d, phase)] = f
		}

		if err := g.sleep(ctx); err != nil {
			return nil, err
		}

		g.logf("generating %s idle frame", d)
		idle, err := g.idleFrame(ctx, description, d)
		if err != nil {
			return nil, err
		}
		frames[fmt.Sprintf("idle_%s_0", d)] = idle
	}

	return &artifact.Animation{
		Palette: ColorMap(description),
		Frames:  frames,
	}, nil
}

// walkFrames requests the three walk phases for one direction, retrying
// until the acceptance predicate passes or attempts run out.
func (g *Generator) walkFrames(ctx context.Context, description string, d direction) ([]frame.Frame, error) {
	height, width := g.size()

	var lastErr error
	for attempt := 0; attempt < g.attempts(); attempt++ {
		if attempt > 0 {
			g.logf("retrying %s walk frames: %v", d, lastErr)
			if err := g.sleep(ctx); err != nil {
				return nil, err
			}
		}

		content, err := g.Client.Complete(ctx, walkPrompt(description, d))
		if err != nil {
			lastErr = err
			continue
		}

		var resp struct {
			F0 []string `json:"f0"`
			F1 []string `json:"f1"`
			F2 []string `json:"f2"`
		}
		if err := ExtractJSON(content, &resp); err != nil {
			lastErr = err
			continue
		}

		phases := []frame.Frame{
			frame.Normalize(resp.F0, height, width),
			frame.Normalize(resp.F1, height, width),
			frame.Normalize(resp.F2, height, width),
		}

		candidate := make(map[string]frame.Frame, walkPhases)
		for i, f := range phases {
			candidate[fmt.Sprintf("%d", i)] = f
		}
		if !g.accept()(candidate) {
			lastErr = fmt.Errorf("gen: %s walk frames rejected", d)
			continue
		}

		return phases, nil
	}

	return nil, fmt.Errorf("gen: %s walk frames failed after %d attempts: %v", d, g.attempts(), lastErr)
}

// idleFrame requests the single standing pose for one direction.
func (g *Generator) idleFrame(ctx context.Context, description string, d direction) (frame.Frame, error) {
	height, width := g.size()

	var lastErr error
	for attempt := 0; attempt < g.attempts(); attempt++ {
		if attempt > 0 {
			g.logf("retrying %s idle frame: %v", d, lastErr)
			if err := g.sleep(ctx); err != nil {
				return nil, err
			}
		}

		content, err := g.Client.Complete(ctx, idlePrompt(description, d))
		if err != nil {
			lastErr = err
			continue
		}

		var resp struct {
			Frame []string `json:"frame"`
		}
		if err := ExtractJSON(content, &resp); err != nil {
			lastErr = err
			continue
		}

		return frame.Normalize(resp.Frame, height, width), nil
	}

	return nil, fmt.Errorf("gen: %s idle frame failed after %d attempts: %v", d, g.attempts(), lastErr)
}
