package call

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/dinakars/hebrew-call-center/internal/ai"
	"github.com/dinakars/hebrew-call-center/internal/transcript"
)

// HardTurnCap is the guardrail on the conversation length. The loop never
// runs past it no matter what MAX_CONVERSATION_TURNS says.
const HardTurnCap = 6

// resolvedThreshold: a call with at least this many successful steps counts
// as a processed cancellation.
const resolvedThreshold = 4

type Service struct {
	dialogue    ai.Dialogue
	annotator   Annotator
	synthesizer Synthesizer
	transcriber Transcriber
	logger      transcript.Logger

	maxTurns int
	now      func() time.Time
}

func NewService(
	dialogue ai.Dialogue,
	annotator Annotator,
	synthesizer Synthesizer,
	transcriber Transcriber,
	logger transcript.Logger,
) *Service {
	return &Service{
		dialogue:    dialogue,
		annotator:   annotator,
		synthesizer: synthesizer,
		transcriber: transcriber,
		logger:      logger,
		maxTurns:    maxTurnsFromEnv(),
		now:         time.Now,
	}
}

func maxTurnsFromEnv() int {
	raw := os.Getenv("MAX_CONVERSATION_TURNS")
	if raw == "" {
		return HardTurnCap
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		log.Printf("[call] bad MAX_CONVERSATION_TURNS=%q, using %d", raw, HardTurnCap)
		return HardTurnCap
	}
	if n > HardTurnCap {
		return HardTurnCap
	}
	return n
}

func speakerForStep(step int) string {
	if step%2 == 1 {
		return ai.SpeakerCustomer
	}
	return ai.SpeakerSupport
}

// RunSimulation drives the whole call: for every turn it generates a line,
// annotates it, synthesizes it, transcribes it back and logs it. Tool
// failures degrade to safe defaults; the loop only stops early when a turn
// cannot produce its files at all (no audio on disk, or the transcript
// write failed).
func (s *Service) RunSimulation(ctx context.Context) Report {
	sessionID, err := s.logger.InitSession()
	if err != nil {
		log.Printf("[call] init session fail: %v", err)
		return Report{Status: "failed", Error: fmt.Sprintf("init session: %v", err)}
	}

	_ = s.logger.LogEvent("INFO", "call simulation started", map[string]any{
		"session_id": sessionID,
		"max_turns":  s.maxTurns,
	})

	var (
		turns   []Turn
		history []ai.Line
	)

	for step := 1; step <= s.maxTurns; step++ {
		turn := s.processTurn(ctx, step, history)
		turns = append(turns, turn)

		if turn.Status != "success" {
			log.Printf("[call] step %d failed, stopping simulation", step)
			break
		}
		history = append(history, ai.Line{Speaker: turn.Speaker, Text: turn.OriginalText})
	}

	successful := 0
	for _, t := range turns {
		if t.Status == "success" {
			successful++
		}
	}

	outcome := "Call incomplete"
	satisfaction := "Unresolved"
	resolved := false
	if successful >= resolvedThreshold {
		outcome = "Cancellation processed"
		satisfaction = "Resolved"
		resolved = true
	}

	if err := s.logger.LogSummary(transcript.Summary{
		TotalSteps:           len(turns),
		Outcome:              outcome,
		CustomerSatisfaction: satisfaction,
		IssuesResolved:       resolved,
		AdditionalNotes:      fmt.Sprintf("Processed %d/%d steps successfully", successful, len(turns)),
	}); err != nil {
		log.Printf("[call] summary write fail: %v", err)
	}

	_ = s.logger.LogEvent("INFO", "call simulation finished", map[string]any{
		"total_steps":      len(turns),
		"successful_steps": successful,
		"outcome":          outcome,
	})

	log.Printf("[call] simulation done: %d/%d steps ok, outcome=%q", successful, len(turns), outcome)

	return Report{
		Status:          "completed",
		SessionID:       sessionID,
		TotalSteps:      len(turns),
		SuccessfulSteps: successful,
		Outcome:         outcome,
		Turns:           turns,
	}
}

// processTurn runs one line through the full pipeline:
// dialogue -> nikud -> TTS -> STT -> transcript.
func (s *Service) processTurn(ctx context.Context, step int, history []ai.Line) Turn {
	speaker := speakerForStep(step)
	turn := Turn{
		Step:      step,
		Speaker:   speaker,
		Timestamp: s.now(),
		Status:    "failed",
	}

	// 1) line of dialogue, scripted fallback when generation is down
	text, err := s.dialogue.NextLine(ctx, speaker, history)
	if err != nil {
		_ = s.logger.LogEvent("ERROR", "dialogue generation failed, using scripted line",
			map[string]any{"step": step, "speaker": speaker, "error": err.Error()})
		text = fallbackLine(step)
	}
	if strings.TrimSpace(text) == "" {
		_ = s.logger.LogEvent("ERROR", "no dialogue text available for step",
			map[string]any{"step": step, "speaker": speaker})
		return turn
	}
	turn.OriginalText = text

	// 2) nikud (pass-through on failure inside the annotator)
	turn.NikudText = s.annotator.Annotate(ctx, text)

	// 3) speech synthesis, silent placeholder on provider failure
	audioPath, usedFallback, err := s.synthesizer.SynthesizeStep(ctx, turn.NikudText, step)
	if err != nil {
		_ = s.logger.LogEvent("ERROR", "synthesis and placeholder both failed",
			map[string]any{"step": step, "error": err.Error()})
		return turn
	}
	turn.AudioFile = audioPath
	turn.UsedFallbackAudio = usedFallback
	if usedFallback {
		_ = s.logger.LogEvent("WARN", "speech synthesis unavailable, silent placeholder written",
			map[string]any{"step": step, "audio_file": audioPath})
	}

	// 4) recognition; empty or failed transcription falls back to the text
	// we synthesized from
	transcribed, err := s.transcriber.Transcribe(ctx, audioPath)
	if err != nil {
		_ = s.logger.LogEvent("WARN", "transcription failed",
			map[string]any{"step": step, "error": err.Error()})
		transcribed = ""
	}
	if strings.TrimSpace(transcribed) == "" {
		transcribed = turn.NikudText
	}
	turn.TranscribedText = transcribed

	// 5) transcript entry
	if err := s.logger.LogStep(transcript.Entry{
		Step:            step,
		Speaker:         speaker,
		OriginalText:    turn.OriginalText,
		NikudText:       turn.NikudText,
		AudioFile:       turn.AudioFile,
		TranscribedText: turn.TranscribedText,
		Timestamp:       turn.Timestamp,
	}); err != nil {
		_ = s.logger.LogEvent("ERROR", "transcript write failed",
			map[string]any{"step": step, "error": err.Error()})
		return turn
	}

	_ = s.logger.LogEvent("INFO", "step completed", map[string]any{
		"step":       step,
		"speaker":    speaker,
		"text":       turn.OriginalText,
		"audio_file": turn.AudioFile,
	})

	turn.Status = "success"
	log.Printf("[call] step %d ok speaker=%s audio=%s", step, speaker, audioPath)
	return turn
}
