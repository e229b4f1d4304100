package azureopenai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/manthansinghshekhawat/personahitesh/internal/llm"
)

const (
	DefaultDeployment = "gpt-4o"
	DefaultAPIVersion = "2025-01-01-preview"
)

// chatCompletionsRequest represents the request body for the Azure
// OpenAI chat completions API.
type chatCompletionsRequest struct {
	Messages    []llm.Message `json:"messages"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
	Temperature float64       `json:"temperature,omitempty"`
	TopP        float64       `json:"top_p,omitempty"`
}

// chatCompletionsResponse represents the response from the chat
// completions API.
type chatCompletionsResponse struct {
	Choices []chatCompletionsChoice `json:"choices"`
}

type chatCompletionsChoice struct {
	Message struct {
		Content string `json:"content"`
	} `json:"message"`
}

// Client talks to one Azure OpenAI deployment. A single blocking round
// trip per Complete call, no retries.
type Client struct {
	endpoint   string
	apiKey     string
	deployment string
	apiVersion string
	gen        llm.GenerationConfig

	httpClient *http.Client
}

// NewClient validates the connection settings and builds a client.
func NewClient(endpoint, apiKey, deployment, apiVersion string, gen llm.GenerationConfig) (*Client, error) {
	if endpoint == "" || apiKey == "" {
		return nil, fmt.Errorf("azure openai endpoint and api key are required")
	}
	if deployment == "" {
		deployment = DefaultDeployment
	}
	if apiVersion == "" {
		apiVersion = DefaultAPIVersion
	}

	return &Client{
		endpoint:   strings.TrimSuffix(endpoint, "/"),
		apiKey:     apiKey,
		deployment: deployment,
		apiVersion: apiVersion,
		gen:        gen,
		httpClient: &http.Client{},
	}, nil
}

// Complete sends the ordered message list to the deployment and returns
// the top choice's text verbatim. An empty or choice-less 2xx response
// is an empty reply, not an error.
func (c *Client) Complete(ctx context.Context, messages []llm.Message) (string, error) {
	reqBody := chatCompletionsRequest{
		Messages:    messages,
		MaxTokens:   c.gen.MaxTokens,
		Temperature: c.gen.Temperature,
		TopP:        c.gen.TopP,
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("error marshaling request: %w", err)
	}

	url := fmt.Sprintf("%s/openai/deployments/%s/chat/completions?api-version=%s",
		c.endpoint, c.deployment, c.apiVersion)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("error creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("api-key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("error sending request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("error reading response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("API error: %s", string(body))
	}

	var result chatCompletionsResponse
	if err := json.Unmarshal(body, &result); err != nil {
		// Malformed provider output must not take the conversation
		// down with it.
		return "", nil
	}

	if len(result.Choices) == 0 {
		return "", nil
	}

	return result.Choices[0].Message.Content, nil
}
