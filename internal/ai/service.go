package ai

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

const (
	SpeakerCustomer = "customer"
	SpeakerSupport  = "support"
)

const customerPrompt = `אתה לקוח של חברת טלוויזיה בכבלים שמתקשר למוקד השירות כדי לבטל את המנוי שלו.
החשבונות יקרים מדי והשירות לא מספק אותך. אתה מנומס אבל נחוש לבטל.
ענה תמיד בעברית, משפט אחד או שניים לכל היותר, בלי ניקוד.`

const supportPrompt = `אתה נציג שירות לקוחות בחברת טלוויזיה בכבלים.
לקוח מבקש לבטל את המנוי. נסה להבין את הבעיה ולהציע פתרון, ואם הלקוח מתעקש - אשר את הביטול.
ענה תמיד בעברית, משפט אחד או שניים לכל היותר, בלי ניקוד.`

// gptTimeout bounds a single completion call, same budget the rest of the
// pipeline steps get.
const gptTimeout = 120 * time.Second

type DialogueService struct {
	client *OpenAIClient
	model  string
}

func NewDialogueService(client *OpenAIClient) *DialogueService {
	model := os.Getenv("OPENAI_MODEL")
	if model == "" {
		model = openai.GPT4oMini
	}
	return &DialogueService{
		client: client,
		model:  model,
	}
}

// analyzeOpenAIError turns the raw client error into a one-line diagnostic
// for the call log.
func analyzeOpenAIError(err error) string {
	msg := strings.ToLower(err.Error())

	switch {
	case strings.Contains(msg, "status code: 401"):
		return "invalid OpenAI API key"
	case strings.Contains(msg, "status code: 404"):
		return "model not found"
	case strings.Contains(msg, "status code: 429"):
		return "OpenAI rate limit exceeded"
	case strings.Contains(msg, "status code: 400") && strings.Contains(msg, "model"):
		return "bad model name"
	case strings.Contains(msg, "status code: 400"):
		return "malformed OpenAI request"
	case strings.Contains(msg, "status code: 500"):
		return "OpenAI internal error"
	}
	return "unknown OpenAI error: " + err.Error()
}

func rolePrompt(speaker string) string {
	if speaker == SpeakerSupport {
		return supportPrompt
	}
	return customerPrompt
}

// buildMessages lays out the conversation from the speaker's seat: its own
// lines become assistant messages, the other side's lines become user
// messages.
func buildMessages(speaker string, history []Line) []openai.ChatCompletionMessage {
	messages := []openai.ChatCompletionMessage{
		{Role: openai.ChatMessageRoleSystem, Content: rolePrompt(speaker)},
	}

	for _, l := range history {
		role := openai.ChatMessageRoleUser
		if l.Speaker == speaker {
			role = openai.ChatMessageRoleAssistant
		}
		txt := strings.TrimSpace(l.Text)
		if txt == "" {
			continue
		}
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    role,
			Content: txt,
		})
	}

	if len(history) == 0 {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleUser,
			Content: "השיחה מתחילה עכשיו. אמור את המשפט הראשון שלך.",
		})
	}

	return messages
}

// NextLine asks the model for the speaker's next line.
func (s *DialogueService) NextLine(ctx context.Context, speaker string, history []Line) (string, error) {
	start := time.Now()
	log.Printf("[dialogue] >>> speaker=%s history=%d", speaker, len(history))

	messages := buildMessages(speaker, history)

	ctxGPT, cancel := context.WithTimeout(ctx, gptTimeout)
	defer cancel()

	reply, err := s.client.GetCompletion(ctxGPT, messages, s.model)
	log.Printf("[dialogue][%.1fs] done err=%v", time.Since(start).Seconds(), err)

	if err != nil {
		return "", fmt.Errorf("%s: %w", analyzeOpenAIError(err), err)
	}

	reply = strings.TrimSpace(reply)
	if reply == "" {
		return "", fmt.Errorf("empty completion for speaker %s", speaker)
	}
	return reply, nil
}
