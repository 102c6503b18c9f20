package services

import (
	"context"
	"fmt"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"alfredoptarigan/resume-analyzer/internal/config"
)

const defaultOpenAIModel = "gpt-4o"

type openAIService struct {
	client      *openai.Client
	modelName   string
	temperature float64
}

// NewOpenAIService talks to the OpenAI API or any compatible endpoint set in LLM_BASE_URL.
func NewOpenAIService(cfg config.LLMConfig) ChatClient {
	opts := []option.RequestOption{option.WithAPIKey(cfg.APIKey)}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}

	model := cfg.Model
	if model == "" {
		model = defaultOpenAIModel
	}

	return &openAIService{
		client:      openai.NewClient(opts...),
		modelName:   model,
		temperature: float64(cfg.Temperature),
	}
}

func (o *openAIService) Model() string {
	return o.modelName
}

// Ping implements ChatClient.
func (o *openAIService) Ping(ctx context.Context) error {
	if _, err := o.client.Models.Get(ctx, o.modelName); err != nil {
		return fmt.Errorf("openai model %s unavailable: %w", o.modelName, err)
	}
	return nil
}

// Chat implements ChatClient.
func (o *openAIService) Chat(ctx context.Context, messages []ChatMessage) (string, error) {
	params := make([]openai.ChatCompletionMessageParamUnion, 0, len(messages))
	for _, m := range messages {
		switch m.Role {
		case RoleSystem:
			params = append(params, openai.SystemMessage(m.Content))
		case RoleAssistant:
			params = append(params, openai.AssistantMessage(m.Content))
		default:
			params = append(params, openai.UserMessage(m.Content))
		}
	}

	resp, err := o.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Messages:    openai.F(params),
		Model:       openai.F(openai.ChatModel(o.modelName)),
		Temperature: openai.F(o.temperature),
	})
	if err != nil {
		return "", fmt.Errorf("openai chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no choices in response")
	}

	return resp.Choices[0].Message.Content, nil
}
