package speech

import "context"

type STTClient interface {
	Transcribe(ctx context.Context, filePath string) (string, error) // voice -> text
}

type TTSClient interface {
	Synthesize(ctx context.Context, text, outPath string) error // text -> voice (writes file)
}
