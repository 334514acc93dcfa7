package speech

import (
	"encoding/binary"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

const (
	silenceSampleRate = 16000
	silenceSeconds    = 1
)

// WriteSilentWAV writes a playable 16-bit mono PCM WAV of silence. It is the
// stand-in audio used when every synthesis provider is unreachable, so the
// rest of the pipeline always has a real file to work with.
func WriteSilentWAV(outPath string) error {
	if err := os.MkdirAll(filepath.Dir(outPath), 0755); err != nil {
		return err
	}

	out, err := os.Create(outPath)
	if err != nil {
		return err
	}
	defer out.Close()

	numSamples := silenceSampleRate * silenceSeconds
	dataSize := uint32(numSamples * 2) // 16-bit samples

	// RIFF header
	if _, err := out.WriteString("RIFF"); err != nil {
		return err
	}
	if err := binary.Write(out, binary.LittleEndian, uint32(36+dataSize)); err != nil {
		return err
	}
	if _, err := out.WriteString("WAVE"); err != nil {
		return err
	}

	// fmt chunk: PCM, mono, 16 kHz, 16 bit
	if _, err := out.WriteString("fmt "); err != nil {
		return err
	}
	fmtChunk := []any{
		uint32(16),                    // chunk size
		uint16(1),                     // PCM
		uint16(1),                     // channels
		uint32(silenceSampleRate),     // sample rate
		uint32(silenceSampleRate * 2), // byte rate
		uint16(2),                     // block align
		uint16(16),                    // bits per sample
	}
	for _, v := range fmtChunk {
		if err := binary.Write(out, binary.LittleEndian, v); err != nil {
			return err
		}
	}

	// data chunk
	if _, err := out.WriteString("data"); err != nil {
		return err
	}
	if err := binary.Write(out, binary.LittleEndian, dataSize); err != nil {
		return err
	}
	if _, err := out.Write(make([]byte, dataSize)); err != nil {
		return err
	}

	return nil
}

// FallbackPath derives the silent-placeholder path for a step's audio file.
// Step 0 means "no step", which gets a random name.
func FallbackPath(dir string, step int) string {
	if step > 0 {
		return filepath.Join(dir, fmt.Sprintf("audio_step_%d_fallback.wav", step))
	}
	return filepath.Join(dir, fmt.Sprintf("tts_silent_%s.wav", uuid.NewString()))
}
