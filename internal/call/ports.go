package call

import (
	"context"
	"time"
)

// Turn is one processed exchange of the simulated call: everything a single
// line went through on its way from generation to the transcript.
type Turn struct {
	Step              int
	Speaker           string
	OriginalText      string
	NikudText         string
	AudioFile         string
	TranscribedText   string
	UsedFallbackAudio bool
	Timestamp         time.Time
	Status            string // "success" or "failed"
}

// Report is what RunSimulation hands back to main for the results block.
type Report struct {
	Status          string // "completed" or "failed"
	SessionID       string
	TotalSteps      int
	SuccessfulSteps int
	Outcome         string
	Error           string
	Turns           []Turn
}

type Annotator interface {
	Annotate(ctx context.Context, text string) string
}

type Synthesizer interface {
	// SynthesizeStep writes the step's audio file and returns its path plus
	// whether the silent placeholder had to be used.
	SynthesizeStep(ctx context.Context, text string, step int) (string, bool, error)
}

type Transcriber interface {
	Transcribe(ctx context.Context, filePath string) (string, error)
}
