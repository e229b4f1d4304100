package llm

import "context"

type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is one turn as the completion provider sees it. The system
// message only ever appears as the head of a request, never in stored
// history.
type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// GenerationConfig bounds a single completion request.
type GenerationConfig struct {
	MaxTokens   int
	Temperature float64
	TopP        float64
}

// Client is a completion provider. Complete sends the full ordered
// message list (persona first) and returns the top choice's text. A
// provider answering with no usable content is reported as an empty
// reply, not an error.
type Client interface {
	Complete(ctx context.Context, messages []Message) (string, error)
}
