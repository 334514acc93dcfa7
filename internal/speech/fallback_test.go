package speech

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteSilentWAV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "silence.wav")

	require.NoError(t, WriteSilentWAV(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.NotEmpty(t, data)

	// 44-byte canonical header plus one second of 16-bit 16 kHz mono PCM
	wantData := silenceSampleRate * silenceSeconds * 2
	require.Len(t, data, 44+wantData)

	assert.Equal(t, "RIFF", string(data[0:4]))
	assert.Equal(t, "WAVE", string(data[8:12]))
	assert.Equal(t, "fmt ", string(data[12:16]))
	assert.Equal(t, "data", string(data[36:40]))

	assert.EqualValues(t, 1, binary.LittleEndian.Uint16(data[20:22]), "PCM format tag")
	assert.EqualValues(t, 1, binary.LittleEndian.Uint16(data[22:24]), "mono")
	assert.EqualValues(t, silenceSampleRate, binary.LittleEndian.Uint32(data[24:28]))
	assert.EqualValues(t, 16, binary.LittleEndian.Uint16(data[34:36]), "bits per sample")
	assert.EqualValues(t, wantData, binary.LittleEndian.Uint32(data[40:44]))

	// payload is pure silence
	for _, b := range data[44:] {
		if b != 0 {
			t.Fatal("expected zero samples in silent WAV")
		}
	}
}

func TestWriteSilentWAV_CreatesParentDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "out", "silence.wav")
	require.NoError(t, WriteSilentWAV(path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}

func TestFallbackPath(t *testing.T) {
	assert.Equal(t, filepath.Join("output", "audio_step_3_fallback.wav"), FallbackPath("output", 3))

	anon := FallbackPath("output", 0)
	assert.Contains(t, anon, "tts_silent_")
	assert.NotEqual(t, anon, FallbackPath("output", 0), "unnamed paths must not collide")
}
