package ai

import "context"

// Line is one spoken line of the simulated call, as seen by the dialogue
// generator.
type Line struct {
	Speaker string
	Text    string
}

type Dialogue interface {
	// NextLine produces the next Hebrew line for the given speaker, taking
	// the conversation so far as context.
	NextLine(ctx context.Context, speaker string, history []Line) (string, error)
}
