/*
Package gen drives a language model through the request sequence that
produces a complete directional walk animation as ASCII art frames.

The model is an unreliable collaborator: it may time out, wrap its JSON in
markdown fences, return ragged frames or return the same drawing for every
walk phase. Everything here is defensive plumbing around that: a Client
interface with a real HTTP implementation and an offline mock, bounded
retries with a caller-supplied acceptance predicate, and tolerant JSON
extraction. Frame repair itself lives in the frame package.
*/
package gen

import "context"

// Client produces raw completion text for a prompt. Implementations may
// fail or return malformed text; callers repair or reject downstream.
type Client interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

type direction int

const (
	directionDown direction = iota
	directionUp
	directionLeft
	directionRight
)

var directions = []direction{directionDown, directionUp, directionLeft, directionRight}

func (d direction) String() string {
	switch d {
	case directionDown:
		return "down"
	case directionUp:
		return "up"
	case directionLeft:
		return "left"
	case directionRight:
		return "right"
	}
	return "unknown"
}

// view describes the camera angle for prompts.
func (d direction) view() string {
	switch d {
	case directionDown:
		return "facing TOWARD the viewer (front view)"
	case directionUp:
		return "facing AWAY from the viewer (back view)"
	case directionLeft:
		return "facing LEFT (side profile)"
	case directionRight:
		return "facing RIGHT (side profile)"
	}
	return ""
}
