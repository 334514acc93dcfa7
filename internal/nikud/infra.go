package nikud

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"os"
	"os/exec"
	"strings"
)

const defaultModelPath = "./phonikud-1.0.int8.onnx"

// PhonikudCLI shells out to the phonikud command-line tool, which wraps the
// Phonikud ONNX diacritization model. Text goes in on stdin, vocalized text
// comes back on stdout.
type PhonikudCLI struct {
	bin       string
	modelPath string
}

func NewPhonikudCLI() *PhonikudCLI {
	bin := os.Getenv("PHONIKUD_BIN")
	if bin == "" {
		bin = "phonikud-cli"
	}

	modelPath := os.Getenv("PHONIKUD_MODEL_PATH")
	if modelPath == "" {
		modelPath = defaultModelPath
	}

	return &PhonikudCLI{
		bin:       bin,
		modelPath: modelPath,
	}
}

// ModelAvailable reports whether the ONNX model file exists on disk.
func (c *PhonikudCLI) ModelAvailable() bool {
	_, err := os.Stat(c.modelPath)
	return err == nil
}

func (c *PhonikudCLI) AddNikud(ctx context.Context, text string) (string, error) {
	if !c.ModelAvailable() {
		return "", fmt.Errorf("phonikud model not found at %s", c.modelPath)
	}

	cmd := exec.CommandContext(ctx, c.bin, "--model", c.modelPath)
	cmd.Stdin = strings.NewReader(text)

	var out, errBuf bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &errBuf

	if err := cmd.Run(); err != nil {
		log.Printf("[nikud] %s failed: %v (%s)", c.bin, err, strings.TrimSpace(errBuf.String()))
		return "", fmt.Errorf("phonikud: %w", err)
	}

	vocalized := strings.TrimSpace(out.String())
	if vocalized == "" {
		return "", fmt.Errorf("phonikud produced no output")
	}
	return vocalized, nil
}
