package speech

import (
	"context"
	"fmt"
	"log"
	"path/filepath"
)

// Service fronts one STT and one TTS provider for the call pipeline.
type Service struct {
	stt STTClient
	tts TTSClient
	dir string // where per-step audio files land
}

func NewService(stt STTClient, tts TTSClient, outputDir string) *Service {
	return &Service{
		stt: stt,
		tts: tts,
		dir: outputDir,
	}
}

// SynthesizeStep renders one line of the call into output/audio_step_N.mp3.
// When the provider fails it writes a silent WAV placeholder instead and
// returns its path, so a turn always ends with playable audio on disk.
// The second return value reports whether the placeholder was used.
func (s *Service) SynthesizeStep(ctx context.Context, text string, step int) (string, bool, error) {
	outPath := filepath.Join(s.dir, fmt.Sprintf("audio_step_%d.mp3", step))

	if err := s.tts.Synthesize(ctx, text, outPath); err != nil {
		log.Printf("[speech] synth fail step=%d err=%v, writing silent placeholder", step, err)

		fallback := FallbackPath(s.dir, step)
		if werr := WriteSilentWAV(fallback); werr != nil {
			return "", false, fmt.Errorf("tts failed (%v) and silent fallback failed: %w", err, werr)
		}
		return fallback, true, nil
	}

	log.Printf("[speech] synthesized step=%d -> %s", step, outPath)
	return outPath, false, nil
}

// Transcribe turns a synthesized audio file back into text for verification.
func (s *Service) Transcribe(ctx context.Context, filePath string) (string, error) {
	return s.stt.Transcribe(ctx, filePath)
}
