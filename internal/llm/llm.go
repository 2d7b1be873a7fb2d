package llm

import "context"

// Chat roles understood by chat-completion providers.
const (
	RoleSystem = "system"
	RoleUser   = "user"
)

// Message is a single chat turn sent to the model.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Client abstracts chat-completion providers for resume analysis.
type Client interface {
	Complete(ctx context.Context, messages []Message) (string, error)
}
