package transcript

import "time"

// Entry is one fully processed conversation step as it appears in the
// transcript file.
type Entry struct {
	Step            int
	Speaker         string
	OriginalText    string
	NikudText       string
	AudioFile       string
	TranscribedText string
	Timestamp       time.Time
}

// Summary describes the whole call once the turn loop has finished.
type Summary struct {
	TotalSteps           int
	Outcome              string
	CustomerSatisfaction string
	IssuesResolved       bool
	AdditionalNotes      string
}

type Logger interface {
	InitSession() (string, error) // returns session id
	LogStep(e Entry) error
	LogSummary(s Summary) error
	LogEvent(eventType, message string, data map[string]any) error
}
