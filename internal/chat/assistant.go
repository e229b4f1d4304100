package chat

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"unicode"

	"github.com/manthansinghshekhawat/personahitesh/internal/llm"
	"github.com/manthansinghshekhawat/personahitesh/internal/observability"
)

const (
	greetingMessage = "नमस्ते! I'm Hitesh Chaudhary, your programming mentor. चलिए शुरू करते हैं! 🚀"
	farewellMessage = "धन्यवाद! Happy coding! 🎉"
)

// closingPhrases are the fixed end-of-conversation markers, English
// plus two Hindi equivalents.
var closingPhrases = []string{
	"ok", "thank you", "thanks", "bye", "goodbye", "धन्यवाद", "ठीक है",
}

// ErrClientUnavailable means no completion client was constructed at
// startup; it stays that way for the process lifetime.
var ErrClientUnavailable = errors.New("completion client is not available")

// Assistant drives the turn cycle of one conversation: take user
// input, call the completion client with persona plus history, record
// the reply. One turn runs to completion before the next starts.
type Assistant struct {
	mu      sync.Mutex
	persona string
	client  llm.Client
	session *Session
}

// NewAssistant wires a persona and completion client to an explicit
// session. client may be nil when initialization failed; turns then
// report ErrClientUnavailable instead of replies.
func NewAssistant(personaText string, client llm.Client, session *Session) *Assistant {
	return &Assistant{
		persona: personaText,
		client:  client,
		session: session,
	}
}

func (a *Assistant) Session() *Session {
	return a.session
}

// History returns the transcript for display. A fresh, empty session
// is seeded with exactly one assistant greeting first.
func (a *Assistant) History() []Entry {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.session.IsEmpty() {
		a.session.Append(llm.RoleAssistant, greetingMessage)
	}
	return a.session.Transcript()
}

// HandleMessage runs one turn: append the user message, complete with
// persona + full history, append the reply. On completion failure the
// user message stays in the transcript and no assistant entry is
// added.
func (a *Assistant) HandleMessage(ctx context.Context, text string) (userEntry, replyEntry Entry, err error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	log := observability.WithFields("transcript_len", a.session.Len())

	userEntry = a.session.Append(llm.RoleUser, text)

	if a.client == nil {
		log.Error("turn dropped, no completion client")
		return userEntry, Entry{}, ErrClientUnavailable
	}

	reply, err := a.client.Complete(ctx, a.buildRequest())
	if err != nil {
		log.Error("completion failed", "error", err)
		return userEntry, Entry{}, fmt.Errorf("completion request: %w", err)
	}

	replyEntry = a.session.Append(llm.RoleAssistant, reply)
	log.Info("turn completed", "reply_len", len(reply))
	return userEntry, replyEntry, nil
}

// EndConversation appends the fixed farewell, archives a snapshot of
// the transcript as it stood before the farewell, then clears the
// session for a fresh conversation.
func (a *Assistant) EndConversation() Entry {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.session.End()
	snapshot := a.session.SnapshotAndArchive()
	farewell := a.session.Append(llm.RoleAssistant, farewellMessage)
	a.session.Clear()

	observability.Logger().Info("conversation archived",
		"archive_id", snapshot.ID,
		"messages", len(snapshot.Messages),
	)
	return farewell
}

// buildRequest assembles [persona] + transcript, the newest user
// message already being the transcript tail. Callers hold a.mu.
func (a *Assistant) buildRequest() []llm.Message {
	transcript := a.session.Transcript()

	msgs := make([]llm.Message, 0, len(transcript)+1)
	msgs = append(msgs, llm.Message{Role: llm.RoleSystem, Content: a.persona})
	for _, e := range transcript {
		msgs = append(msgs, llm.Message{Role: e.Role, Content: e.Content})
	}
	return msgs
}

// IsEndIntent reports whether the message contains one of the fixed
// closing phrases as whole words, case-insensitively. Matching is
// token-exact, so "ok" inside an unrelated word does not count. The
// predicate is not consulted by turn processing; ending a conversation
// is an explicit user action.
func IsEndIntent(text string) bool {
	words := tokenize(text)
	for _, phrase := range closingPhrases {
		if containsSequence(words, tokenize(phrase)) {
			return true
		}
	}
	return false
}

func tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsMark(r)
	})
}

func containsSequence(words, seq []string) bool {
	if len(seq) == 0 || len(seq) > len(words) {
		return false
	}
	for i := 0; i+len(seq) <= len(words); i++ {
		match := true
		for j, w := range seq {
			if words[i+j] != w {
				match = false
				break
			}
		}
		if match {
			return true
		}
	}
	return false
}
