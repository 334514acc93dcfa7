package transcript

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"
)

const timeLayout = "2006-01-02 15:04:05"

// FileLogger appends to the plain-text transcript and the execution log.
// Both files are truncated at session start.
type FileLogger struct {
	TranscriptPath string
	CallLogPath    string

	now func() time.Time
}

func NewFileLogger(outputDir, logsDir string) *FileLogger {
	return &FileLogger{
		TranscriptPath: filepath.Join(outputDir, "transcript.txt"),
		CallLogPath:    filepath.Join(logsDir, "call_log.txt"),
		now:            time.Now,
	}
}

func (l *FileLogger) InitSession() (string, error) {
	sessionID := uuid.NewString()
	ts := l.now().Format(timeLayout)

	header := fmt.Sprintf("HEBREW CALL CENTER TRANSCRIPT\nSession Started: %s\nSession ID: %s\n%s\n\n",
		ts, sessionID, strings.Repeat("=", 60))
	if err := writeFile(l.TranscriptPath, header); err != nil {
		return "", fmt.Errorf("init transcript: %w", err)
	}

	logHeader := fmt.Sprintf("CALL CENTER SYSTEM LOG\nSession Started: %s\nSession ID: %s\n%s\n\n",
		ts, sessionID, strings.Repeat("=", 60))
	if err := writeFile(l.CallLogPath, logHeader); err != nil {
		return "", fmt.Errorf("init call log: %w", err)
	}

	return sessionID, nil
}

func (l *FileLogger) LogStep(e Entry) error {
	ts := e.Timestamp
	if ts.IsZero() {
		ts = l.now()
	}

	entry := fmt.Sprintf(`
=== CONVERSATION STEP %d ===
Timestamp: %s
Speaker: %s
Original Text: %s
Nikud Text: %s
Audio File: %s
Transcribed Text: %s
%s
`,
		e.Step, ts.Format(timeLayout), e.Speaker, e.OriginalText,
		e.NikudText, e.AudioFile, e.TranscribedText, strings.Repeat("=", 50))

	if err := appendFile(l.TranscriptPath, entry); err != nil {
		return fmt.Errorf("log step %d: %w", e.Step, err)
	}
	return nil
}

func (l *FileLogger) LogSummary(s Summary) error {
	resolved := "No"
	if s.IssuesResolved {
		resolved = "Yes"
	}

	bar := strings.Repeat("=", 60)
	summary := fmt.Sprintf(`
%s
CALL SUMMARY
%s
Call Date: %s
Total Conversation Steps: %d
Call Outcome: %s
Customer Satisfaction: %s
Issues Resolved: %s

Additional Notes: %s

Generated Files:
- Transcript: %s
- Audio Files: %s
- Call Log: %s

%s
`,
		bar, bar, l.now().Format(timeLayout), s.TotalSteps, s.Outcome,
		s.CustomerSatisfaction, resolved, s.AdditionalNotes,
		l.TranscriptPath, filepath.Join(filepath.Dir(l.TranscriptPath), "audio_step_*"),
		l.CallLogPath, bar)

	if err := appendFile(l.TranscriptPath, summary); err != nil {
		return fmt.Errorf("log summary: %w", err)
	}
	return nil
}

func (l *FileLogger) LogEvent(eventType, message string, data map[string]any) error {
	var b strings.Builder
	fmt.Fprintf(&b, "[%s] %s: %s\n", l.now().Format(timeLayout), eventType, message)

	if len(data) > 0 {
		encoded, err := json.MarshalIndent(data, "", "  ")
		if err != nil {
			return fmt.Errorf("encode event data: %w", err)
		}
		fmt.Fprintf(&b, "Data: %s\n", encoded)
	}
	b.WriteString("\n")

	if err := appendFile(l.CallLogPath, b.String()); err != nil {
		return fmt.Errorf("log event: %w", err)
	}
	return nil
}

func writeFile(path, content string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(content), 0644)
}

func appendFile(path, content string) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = f.WriteString(content)
	return err
}
