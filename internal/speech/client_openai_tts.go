package speech

import (
	"context"
	"io"
	"os"
	"path/filepath"

	openai "github.com/sashabaranov/go-openai"
)

// OpenAITTSClient is the fallback synthesizer used when no ElevenLabs key is
// configured, so the demo runs on OPENAI_API_KEY alone.
type OpenAITTSClient struct {
	client *openai.Client
}

func NewOpenAITTSClient() *OpenAITTSClient {
	key := os.Getenv("OPENAI_API_KEY")
	if key == "" {
		panic("OPENAI_API_KEY not set")
	}
	return &OpenAITTSClient{
		client: openai.NewClient(key),
	}
}

func (c *OpenAITTSClient) Synthesize(ctx context.Context, text, outPath string) error {
	resp, err := c.client.CreateSpeech(ctx, openai.CreateSpeechRequest{
		Model:          openai.TTSModel1,
		Input:          text,
		Voice:          openai.VoiceAlloy,
		ResponseFormat: openai.SpeechResponseFormatMp3,
	})
	if err != nil {
		return err
	}
	defer resp.Close()

	if err := os.MkdirAll(filepath.Dir(outPath), 0755); err != nil {
		return err
	}

	out, err := os.Create(outPath)
	if err != nil {
		return err
	}
	defer out.Close()

	_, err = io.Copy(out, resp)
	return err
}
