package azure

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"resume-analyzer/internal/llm"
	"resume-analyzer/internal/shared/config"
)

const (
	defaultAPIVersion = "2024-05-01-preview"
	requestTimeout    = 30 * time.Second
	temperature       = 0.2
)

// ErrConfigMissing is returned before any network activity when the Azure
// OpenAI endpoint, API key, or deployment is not configured.
var ErrConfigMissing = errors.New("azure openai is not configured")

// UpstreamError reports a non-2xx response from Azure OpenAI.
type UpstreamError struct {
	StatusCode int
	Body       string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("azure openai returned status %d: %s", e.StatusCode, e.Body)
}

// Client implements llm.Client against an Azure OpenAI chat-completions deployment.
type Client struct {
	endpoint   string
	apiKey     string
	deployment string
	apiVersion string
	httpClient *http.Client
}

// NewClient constructs a client from configuration. Missing settings are
// detected lazily on Complete so a partially configured environment can
// still boot.
func NewClient(cfg config.AzureOpenAIConfig) *Client {
	apiVersion := strings.TrimSpace(cfg.APIVersion)
	if apiVersion == "" {
		apiVersion = defaultAPIVersion
	}
	return &Client{
		endpoint:   strings.TrimRight(strings.TrimSpace(cfg.Endpoint), "/"),
		apiKey:     strings.TrimSpace(cfg.APIKey),
		deployment: strings.TrimSpace(cfg.Deployment),
		apiVersion: apiVersion,
		httpClient: &http.Client{Timeout: requestTimeout},
	}
}

type chatRequest struct {
	Messages    []llm.Message `json:"messages"`
	Temperature float64       `json:"temperature"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Complete sends the messages to the configured deployment and returns the
// first choice's content with surrounding whitespace trimmed.
func (c *Client) Complete(ctx context.Context, messages []llm.Message) (string, error) {
	if c.endpoint == "" || c.apiKey == "" || c.deployment == "" {
		return "", ErrConfigMissing
	}

	payload, err := json.Marshal(chatRequest{Messages: messages, Temperature: temperature})
	if err != nil {
		return "", fmt.Errorf("encode chat request: %w", err)
	}

	url := fmt.Sprintf("%s/openai/deployments/%s/chat/completions?api-version=%s",
		c.endpoint, c.deployment, c.apiVersion)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("build chat request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("api-key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("call azure openai: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", fmt.Errorf("read azure openai response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &UpstreamError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	var parsed chatResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("decode azure openai response: %w", err)
	}
	if len(parsed.Choices) == 0 {
		return "", &UpstreamError{StatusCode: resp.StatusCode, Body: "response contained no choices"}
	}
	return strings.TrimSpace(parsed.Choices[0].Message.Content), nil
}
