package services

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"alfredoptarigan/resume-analyzer/internal/config"
	"alfredoptarigan/resume-analyzer/internal/logger"
)

const defaultGeminiModel = "gemini-2.5-flash"

type geminiService struct {
	client      *genai.Client
	modelName   string
	temperature float32
}

func NewGeminiService(ctx context.Context, cfg config.LLMConfig) (ChatClient, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	model := cfg.Model
	if model == "" {
		model = defaultGeminiModel
	}

	return &geminiService{
		client:      client,
		modelName:   model,
		temperature: cfg.Temperature,
	}, nil
}

func (g *geminiService) Model() string {
	return g.modelName
}

// Ping implements ChatClient.
func (g *geminiService) Ping(ctx context.Context) error {
	if _, err := g.client.Models.Get(ctx, g.modelName, nil); err != nil {
		return fmt.Errorf("gemini model %s unavailable: %w", g.modelName, err)
	}
	return nil
}

// Chat implements ChatClient. System messages become the system instruction.
func (g *geminiService) Chat(ctx context.Context, messages []ChatMessage) (string, error) {
	temperature := g.temperature
	genConfig := &genai.GenerateContentConfig{
		Temperature:     &temperature,
		MaxOutputTokens: 4096,
	}

	var system []string
	var contents []*genai.Content
	for _, m := range messages {
		switch m.Role {
		case RoleSystem:
			system = append(system, m.Content)
		case RoleAssistant:
			contents = append(contents, genai.NewContentFromText(m.Content, genai.RoleModel))
		default:
			contents = append(contents, genai.NewContentFromText(m.Content, genai.RoleUser))
		}
	}
	if len(system) > 0 {
		genConfig.SystemInstruction = genai.NewContentFromText(strings.Join(system, "\n"), genai.RoleUser)
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.modelName, contents, genConfig)
	if err != nil {
		return "", fmt.Errorf("gemini generate content: %w", err)
	}
	if resp == nil {
		return "", fmt.Errorf("no response generated (nil response)")
	}

	text := resp.Text()
	if text == "" {
		logger.Ctx(ctx).Warn().Int("candidates", len(resp.Candidates)).Msg("⚠️ Gemini returned no text content")
		return "", fmt.Errorf("no text content in response")
	}

	return text, nil
}
