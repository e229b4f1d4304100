package chat_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/manthansinghshekhawat/personahitesh/internal/chat"
	"github.com/manthansinghshekhawat/personahitesh/internal/llm"
)

type stubClient struct {
	reply string
	err   error

	calls    int
	lastSeen []llm.Message
}

func (c *stubClient) Complete(ctx context.Context, messages []llm.Message) (string, error) {
	c.calls++
	c.lastSeen = messages
	if c.err != nil {
		return "", c.err
	}
	return c.reply, nil
}

func newAssistant(client llm.Client) *chat.Assistant {
	return chat.NewAssistant("test persona", client, chat.NewSession())
}

func TestTurnsAlternateInOrder(t *testing.T) {
	client := &stubClient{reply: "fixed reply"}
	a := newAssistant(client)

	const turns = 5
	for i := 0; i < turns; i++ {
		_, _, err := a.HandleMessage(context.Background(), fmt.Sprintf("question %d", i))
		require.NoError(t, err)
	}

	transcript := a.Session().Transcript()
	require.Len(t, transcript, 2*turns)
	for i, entry := range transcript {
		if i%2 == 0 {
			assert.Equal(t, llm.RoleUser, entry.Role)
			assert.Equal(t, fmt.Sprintf("question %d", i/2), entry.Content)
		} else {
			assert.Equal(t, llm.RoleAssistant, entry.Role)
			assert.Equal(t, "fixed reply", entry.Content)
		}
	}
}

func TestRequestStartsWithPersona(t *testing.T) {
	client := &stubClient{reply: "hi"}
	a := newAssistant(client)

	_, _, err := a.HandleMessage(context.Background(), "hello")
	require.NoError(t, err)

	require.NotEmpty(t, client.lastSeen)
	assert.Equal(t, llm.RoleSystem, client.lastSeen[0].Role)
	assert.Equal(t, "test persona", client.lastSeen[0].Content)

	// newest user message is the tail
	last := client.lastSeen[len(client.lastSeen)-1]
	assert.Equal(t, llm.RoleUser, last.Role)
	assert.Equal(t, "hello", last.Content)

	// persona itself is never stored
	for _, entry := range a.Session().Transcript() {
		assert.NotEqual(t, llm.RoleSystem, entry.Role)
	}
}

func TestCompletionFailureKeepsUserMessage(t *testing.T) {
	client := &stubClient{err: errors.New("quota exceeded")}
	a := newAssistant(client)

	_, _, err := a.HandleMessage(context.Background(), "still there?")
	require.Error(t, err)

	transcript := a.Session().Transcript()
	require.Len(t, transcript, 1)
	assert.Equal(t, llm.RoleUser, transcript[0].Role)
	assert.Equal(t, "still there?", transcript[0].Content)
	assert.Equal(t, 1, len(transcript)%2, "failed turn leaves one more user message than replies")
}

func TestNilClientReportsUnavailable(t *testing.T) {
	a := newAssistant(nil)

	_, _, err := a.HandleMessage(context.Background(), "anyone home?")
	require.ErrorIs(t, err, chat.ErrClientUnavailable)
	assert.Equal(t, 1, a.Session().Len())
}

func TestEmptySessionGreetsExactlyOnce(t *testing.T) {
	a := newAssistant(&stubClient{reply: "ok"})

	history := a.History()
	require.Len(t, history, 1)
	assert.Equal(t, llm.RoleAssistant, history[0].Role)
	assert.Equal(t, 1, a.Session().Len())

	// a second render pushes the same transcript verbatim
	again := a.History()
	require.Len(t, again, 1)
	assert.Equal(t, history[0].ID, again[0].ID)
}

func TestEndConversationArchivesAndClears(t *testing.T) {
	client := &stubClient{reply: "reply"}
	a := newAssistant(client)

	_, _, err := a.HandleMessage(context.Background(), "first")
	require.NoError(t, err)
	_, _, err = a.HandleMessage(context.Background(), "second")
	require.NoError(t, err)

	before := a.Session().Transcript()
	farewell := a.EndConversation()

	assert.Equal(t, llm.RoleAssistant, farewell.Role)
	assert.NotEmpty(t, farewell.Content)

	assert.Equal(t, 0, a.Session().Len())
	require.Equal(t, 1, a.Session().ArchiveLen())

	archived := a.Session().Archive()[0]
	require.Len(t, archived.Messages, len(before))
	for i := range before {
		assert.Equal(t, before[i].ID, archived.Messages[i].ID)
	}
}

func TestArchiveIndependentOfNewTranscript(t *testing.T) {
	client := &stubClient{reply: "reply"}
	a := newAssistant(client)

	_, _, err := a.HandleMessage(context.Background(), "old conversation")
	require.NoError(t, err)
	a.EndConversation()

	archived := a.Session().Archive()[0]
	archivedLen := len(archived.Messages)
	firstContent := archived.Messages[0].Content

	// new conversation must not leak into the snapshot
	_, _, err = a.HandleMessage(context.Background(), "new conversation")
	require.NoError(t, err)

	archivedAgain := a.Session().Archive()[0]
	assert.Len(t, archivedAgain.Messages, archivedLen)
	assert.Equal(t, firstContent, archivedAgain.Messages[0].Content)
}

func TestIsEndIntent(t *testing.T) {
	tests := []struct {
		text string
		want bool
	}{
		{"ok", true},
		{"OK", true},
		{"Ok, got it", true},
		{"thank you", true},
		{"Thank You so much!", true},
		{"thanks", true},
		{"THANKS", true},
		{"bye", true},
		{"Goodbye!", true},
		{"धन्यवाद", true},
		{"ठीक है", true},
		{"how do closures work in javascript", false},
		// whole-word matching: "ok" inside a word does not count
		{"tell me about tokyo", false},
		{"the broken build is back", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			assert.Equal(t, tt.want, chat.IsEndIntent(tt.text))
		})
	}
}
