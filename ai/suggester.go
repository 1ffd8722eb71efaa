//go:generate go run go.uber.org/mock/mockgen -source=suggester.go -destination=../mocks/mock_suggester.go -package=mocks
package ai

import (
	"boozbaal-chat/domain"
	"context"
	"log/slog"
	"strings"
)

const (
	DefaultModel     = "gemini-2.5-flash"
	UnavailableReply = "Sorry, AI features are currently unavailable."
	GreetingReply    = "Hello! How can I help you today?"
	FailureReply     = "Could not generate a suggestion."
)

// Generator sends a single prompt to a text-generation model.
type Generator interface {
	Generate(ctx context.Context, model, prompt string) (string, error)
}

// Suggester drafts a reply to a conversation. It never fails: every problem
// is turned into one of the fixed placeholder replies.
type Suggester interface {
	SuggestReply(ctx context.Context, messages []domain.Message) string
	Available() bool
}

// Config is the capability switch of the suggestion feature.
// An empty APIKey disables it without affecting the rest of the client.
type Config struct {
	APIKey string
	Model  string
}

func (c Config) Enabled() bool {
	return strings.TrimSpace(c.APIKey) != ""
}

// NewSuggester picks the implementation once, so call sites never branch
// on whether the credential is present.
func NewSuggester(config Config, generator Generator, log *slog.Logger) Suggester {
	if !config.Enabled() {
		log.Warn("API_KEY environment variable not set, AI features are disabled")
		return Unavailable{}
	}
	if generator == nil {
		log.Warn("AI client unavailable, AI features are disabled")
		return Unavailable{}
	}
	model := config.Model
	if model == "" {
		model = DefaultModel
	}
	return &RemoteSuggester{generator: generator, model: model, log: log}
}

// Unavailable answers every request with UnavailableReply.
type Unavailable struct{}

func (Unavailable) SuggestReply(context.Context, []domain.Message) string { return UnavailableReply }

func (Unavailable) Available() bool { return false }

type RemoteSuggester struct {
	generator Generator
	model     string
	log       *slog.Logger
}

func (s *RemoteSuggester) Available() bool { return true }

// SuggestReply asks the model for an answer to the last message only.
// The call is made once, without retry.
func (s *RemoteSuggester) SuggestReply(ctx context.Context, messages []domain.Message) string {
	if len(messages) == 0 {
		return GreetingReply
	}
	last := messages[len(messages)-1]

	text, err := s.generator.Generate(ctx, s.model, BuildPrompt(last.Content))
	if err != nil {
		s.log.Error("Error generating reply", "model", s.model, "error", err)
		return FailureReply
	}
	text = cleanReply(text)
	if text == "" {
		s.log.Warn("Empty reply generated", "model", s.model)
		return FailureReply
	}
	return text
}

func cleanReply(text string) string {
	text = strings.TrimSpace(text)
	if len(text) >= 2 && strings.HasPrefix(text, `"`) && strings.HasSuffix(text, `"`) {
		text = strings.TrimSpace(text[1 : len(text)-1])
	}
	return text
}
