package speech

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubTTS struct {
	err error
}

func (s *stubTTS) Synthesize(_ context.Context, text, outPath string) error {
	if s.err != nil {
		return s.err
	}
	return os.WriteFile(outPath, []byte("mp3:"+text), 0644)
}

type stubSTT struct {
	text string
	err  error
}

func (s *stubSTT) Transcribe(_ context.Context, _ string) (string, error) {
	return s.text, s.err
}

func TestSynthesizeStep_WritesProviderAudio(t *testing.T) {
	dir := t.TempDir()
	svc := NewService(&stubSTT{}, &stubTTS{}, dir)

	path, usedFallback, err := svc.SynthesizeStep(context.Background(), "שלום", 1)
	require.NoError(t, err)
	assert.False(t, usedFallback)
	assert.Equal(t, filepath.Join(dir, "audio_step_1.mp3"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "mp3:שלום", string(data))
}

func TestSynthesizeStep_ProviderFailureWritesPlaceholder(t *testing.T) {
	dir := t.TempDir()
	svc := NewService(&stubSTT{}, &stubTTS{err: fmt.Errorf("service unreachable")}, dir)

	path, usedFallback, err := svc.SynthesizeStep(context.Background(), "שלום", 2)
	require.NoError(t, err)
	assert.True(t, usedFallback)
	assert.Equal(t, filepath.Join(dir, "audio_step_2_fallback.wav"), path)

	// placeholder must be a real, non-empty, playable WAV
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Greater(t, len(data), 44)
	assert.Equal(t, "RIFF", string(data[0:4]))
	assert.Equal(t, "WAVE", string(data[8:12]))
}

func TestTranscribe_Delegates(t *testing.T) {
	svc := NewService(&stubSTT{text: "טקסט מזוהה"}, &stubTTS{}, t.TempDir())

	got, err := svc.Transcribe(context.Background(), "whatever.mp3")
	require.NoError(t, err)
	assert.Equal(t, "טקסט מזוהה", got)
}

func TestTranscribe_PropagatesError(t *testing.T) {
	svc := NewService(&stubSTT{err: fmt.Errorf("bad audio")}, &stubTTS{}, t.TempDir())

	_, err := svc.Transcribe(context.Background(), "whatever.mp3")
	assert.Error(t, err)
}
