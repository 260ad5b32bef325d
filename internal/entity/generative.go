package entity

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/rs/zerolog"
	"github.com/sashabaranov/go-openai"
	"synstatement/internal/logger"
	"synstatement/pkg/models"
)

const companyPrompt = `Generate a realistic Canadian business for a supplier statement. Return JSON with:
{
    "name": "Company Name Ltd.",
    "address": "Street Address\nCity Province PostalCode",
    "phone": "(XXX) XXX-XXXX",
    "email": "accounts@domain.ca",
    "website": "www.domain.ca"
}
Make it sound like a real food/manufacturing supplier.`

// GenerativeSource fetches company profiles from the OpenAI chat
// completion API. Every failure path (transport error, empty response,
// malformed JSON) falls back to the static pool, so FetchCompany never
// returns an error to the caller.
type GenerativeSource struct {
	client   *openai.Client
	model    string
	fallback *StaticPool
	log      zerolog.Logger
}

// NewGenerativeSource creates a source backed by the OpenAI API.
func NewGenerativeSource(apiKey, model string, fallback *StaticPool) *GenerativeSource {
	return NewGenerativeSourceWithClient(openai.NewClient(apiKey), model, fallback)
}

// NewGenerativeSourceWithClient creates a source with an injected client,
// for testing against a fake API server.
func NewGenerativeSourceWithClient(client *openai.Client, model string, fallback *StaticPool) *GenerativeSource {
	return &GenerativeSource{
		client:   client,
		model:    model,
		fallback: fallback,
		log:      logger.WithComponent("entity-generative"),
	}
}

// FetchCompany requests a generated company profile, falling back to the
// static pool on any failure.
func (s *GenerativeSource) FetchCompany(ctx context.Context) (models.Company, error) {
	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: s.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: companyPrompt,
			},
		},
		MaxTokens:   200,
		Temperature: 0.9,
	})
	if err != nil {
		s.log.Warn().Err(err).Msg("Company generation request failed, using static pool")
		return s.fallback.FetchCompany(ctx)
	}
	if len(resp.Choices) == 0 {
		s.log.Warn().Msg("Company generation returned no choices, using static pool")
		return s.fallback.FetchCompany(ctx)
	}

	content := stripCodeFences(resp.Choices[0].Message.Content)

	var company models.Company
	if err := json.Unmarshal([]byte(content), &company); err != nil {
		s.log.Warn().
			Err(err).
			Str("response", content).
			Msg("Failed to parse generated company profile, using static pool")
		return s.fallback.FetchCompany(ctx)
	}
	if company.Name == "" {
		s.log.Warn().Msg("Generated company profile has no name, using static pool")
		return s.fallback.FetchCompany(ctx)
	}

	s.log.Debug().Str("company", company.Name).Msg("Generated company profile")
	return company, nil
}

// stripCodeFences removes markdown code fences the model sometimes wraps
// JSON responses in.
func stripCodeFences(response string) string {
	cleaned := strings.TrimSpace(response)
	if strings.HasPrefix(cleaned, "```json") {
		cleaned = strings.TrimPrefix(cleaned, "```json")
		cleaned = strings.TrimSuffix(cleaned, "```")
	} else if strings.HasPrefix(cleaned, "```") {
		cleaned = strings.TrimPrefix(cleaned, "```")
		cleaned = strings.TrimSuffix(cleaned, "```")
	}
	return strings.TrimSpace(cleaned)
}
