package speech

import (
	"context"
	"os/exec"
	"strconv"
	"strings"
)

// AudioDuration reports a file's duration in seconds via ffprobe. Callers
// treat errors as "unknown", not as a pipeline failure; the summary just
// skips the duration column when ffprobe is absent.
func AudioDuration(ctx context.Context, path string) (float64, error) {
	out, err := exec.CommandContext(ctx, "ffprobe",
		"-v", "error",
		"-show_entries", "format=duration",
		"-of", "default=noprint_wrappers=1:nokey=1",
		path,
	).Output()
	if err != nil {
		return 0, err
	}

	return strconv.ParseFloat(strings.TrimSpace(string(out)), 64)
}
