package services

import (
	"context"
	"fmt"
	"time"

	"alfredoptarigan/resume-analyzer/internal/config"
	"alfredoptarigan/resume-analyzer/internal/logger"
)

const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

type ChatMessage struct {
	Role    string
	Content string
}

// ChatClient is a hosted chat completion model.
type ChatClient interface {
	Chat(ctx context.Context, messages []ChatMessage) (string, error)
	// Ping verifies credentials and the configured model.
	Ping(ctx context.Context) error
	Model() string
}

// ChatClientFactory builds a ChatClient; it runs in the background at startup.
type ChatClientFactory func(ctx context.Context) (ChatClient, error)

// LLMService gates a ChatClient behind a Readiness future.
type LLMService struct {
	readiness *Readiness
	client    ChatClient
	timeout   time.Duration
}

// NewLLMService bounds every Chat call by timeout; zero means no bound.
func NewLLMService(timeout time.Duration) *LLMService {
	return &LLMService{readiness: NewReadiness(), timeout: timeout}
}

// Init builds the client and performs the handshake, then resolves readiness.
// It is meant to be started in its own goroutine.
func (s *LLMService) Init(ctx context.Context, factory ChatClientFactory) {
	client, err := factory(ctx)
	if err == nil {
		err = client.Ping(ctx)
	}
	if err != nil {
		logger.Error().Err(err).Msg("❌ AI client initialization failed")
		s.readiness.Resolve(fmt.Errorf("AI client initialization failed: %w", err))
		return
	}

	s.client = client
	logger.Info().Str("model", client.Model()).Msg("✅ AI client ready")
	s.readiness.Resolve(nil)
}

func (s *LLMService) Readiness() *Readiness {
	return s.readiness
}

// Chat fails immediately with ErrClientNotReady until the handshake succeeded.
func (s *LLMService) Chat(ctx context.Context, messages []ChatMessage) (string, error) {
	if !s.readiness.Ready() {
		return "", ErrClientNotReady
	}

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	start := time.Now()
	reply, err := s.client.Chat(ctx, messages)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrAIRequest, err)
	}

	logger.Ctx(ctx).Info().
		Str("model", s.client.Model()).
		Int("reply_chars", len(reply)).
		Dur("latency", time.Since(start)).
		Msg("🤖 AI response received")
	return reply, nil
}

// NewChatClientFactory selects the provider named in the config.
func NewChatClientFactory(cfg config.LLMConfig) ChatClientFactory {
	return func(ctx context.Context) (ChatClient, error) {
		switch cfg.Provider {
		case "gemini":
			return NewGeminiService(ctx, cfg)
		case "openai":
			return NewOpenAIService(cfg), nil
		default:
			return nil, fmt.Errorf("unsupported LLM provider %q", cfg.Provider)
		}
	}
}
