package nikud

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAnnotator struct {
	out string
	err error
}

func (s *stubAnnotator) AddNikud(_ context.Context, _ string) (string, error) {
	return s.out, s.err
}

func TestAnnotate_ReturnsVocalizedText(t *testing.T) {
	svc := NewService(&stubAnnotator{out: "שָׁלוֹם"})

	got := svc.Annotate(context.Background(), "שלום")
	assert.Equal(t, "שָׁלוֹם", got)
}

func TestAnnotate_FailurePassesTextThrough(t *testing.T) {
	svc := NewService(&stubAnnotator{err: fmt.Errorf("model missing")})

	got := svc.Annotate(context.Background(), "שלום")
	assert.Equal(t, "שלום", got)
}

func TestPhonikudCLI_MissingModel(t *testing.T) {
	t.Setenv("PHONIKUD_MODEL_PATH", filepath.Join(t.TempDir(), "nope.onnx"))

	cli := NewPhonikudCLI()
	require.False(t, cli.ModelAvailable())

	_, err := cli.AddNikud(context.Background(), "שלום")
	assert.ErrorContains(t, err, "phonikud model not found")
}

func TestPhonikudCLI_EnvOverrides(t *testing.T) {
	t.Setenv("PHONIKUD_BIN", "custom-phonikud")
	t.Setenv("PHONIKUD_MODEL_PATH", "/models/phonikud.onnx")

	cli := NewPhonikudCLI()
	assert.Equal(t, "custom-phonikud", cli.bin)
	assert.Equal(t, "/models/phonikud.onnx", cli.modelPath)
}
