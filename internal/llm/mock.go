package llm

import (
	"context"
	"fmt"
)

// MockClient echoes the last user message back. Used when no Azure
// credentials are configured so the UI stays usable in dev.
type MockClient struct{}

func NewMockClient() *MockClient {
	return &MockClient{}
}

func (m *MockClient) Complete(ctx context.Context, messages []Message) (string, error) {
	last := ""
	for i := len(messages) - 1; i >= 0; i-- {
		if messages[i].Role == RoleUser {
			last = messages[i].Content
			break
		}
	}
	return fmt.Sprintf("अच्छा सवाल! You asked %q. चलिए इसे step by step देखते हैं।", last), nil
}
