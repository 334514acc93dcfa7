package ai

import (
	"fmt"
	"testing"

	openai "github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildMessages_FirstTurnSeedsOpening(t *testing.T) {
	msgs := buildMessages(SpeakerCustomer, nil)

	require.Len(t, msgs, 2)
	assert.Equal(t, openai.ChatMessageRoleSystem, msgs[0].Role)
	assert.Equal(t, customerPrompt, msgs[0].Content)
	assert.Equal(t, openai.ChatMessageRoleUser, msgs[1].Role)
}

func TestBuildMessages_HistorySeenFromOwnSeat(t *testing.T) {
	history := []Line{
		{Speaker: SpeakerCustomer, Text: "אני רוצה לבטל"},
		{Speaker: SpeakerSupport, Text: "מה הבעיה?"},
		{Speaker: SpeakerCustomer, Text: "יקר מדי"},
	}

	msgs := buildMessages(SpeakerSupport, history)

	require.Len(t, msgs, 4)
	assert.Equal(t, supportPrompt, msgs[0].Content)
	// customer lines are "user", own lines are "assistant"
	assert.Equal(t, openai.ChatMessageRoleUser, msgs[1].Role)
	assert.Equal(t, openai.ChatMessageRoleAssistant, msgs[2].Role)
	assert.Equal(t, openai.ChatMessageRoleUser, msgs[3].Role)
	assert.Equal(t, "יקר מדי", msgs[3].Content)
}

func TestBuildMessages_SkipsBlankLines(t *testing.T) {
	history := []Line{
		{Speaker: SpeakerCustomer, Text: "   "},
		{Speaker: SpeakerSupport, Text: "שלום"},
	}

	msgs := buildMessages(SpeakerCustomer, history)

	require.Len(t, msgs, 2)
	assert.Equal(t, "שלום", msgs[1].Content)
}

func TestAnalyzeOpenAIError(t *testing.T) {
	cases := []struct {
		err  string
		want string
	}{
		{"error, status code: 401, message: bad key", "invalid OpenAI API key"},
		{"error, status code: 404, message: nope", "model not found"},
		{"error, status code: 429, message: slow down", "OpenAI rate limit exceeded"},
		{"error, status code: 400, message: unknown model gpt-x", "bad model name"},
		{"error, status code: 400, message: bad payload", "malformed OpenAI request"},
		{"error, status code: 500, message: boom", "OpenAI internal error"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, analyzeOpenAIError(fmt.Errorf("%s", tc.err)), tc.err)
	}

	assert.Contains(t, analyzeOpenAIError(fmt.Errorf("dial tcp: timeout")), "unknown OpenAI error")
}

func TestRolePrompt(t *testing.T) {
	assert.Equal(t, customerPrompt, rolePrompt(SpeakerCustomer))
	assert.Equal(t, supportPrompt, rolePrompt(SpeakerSupport))
	// anything unexpected speaks as the customer rather than crashing
	assert.Equal(t, customerPrompt, rolePrompt("moderator"))
}
