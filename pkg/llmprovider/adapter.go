package llmprovider

import (
	"context"
	"errors"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	anthropicOption "github.com/anthropics/anthropic-sdk-go/option"
	"github.com/openai/openai-go"
	openaiOption "github.com/openai/openai-go/option"
	"github.com/openai/openai-go/shared"

	"travel-assistant/pkg/deepseek"
)

// OpenAIAdapter serves any OpenAI-compatible chat completion API (OpenAI, Groq).
type OpenAIAdapter struct {
	client *openai.Client
	name   string
	model  string
}

// NewOpenAIAdapter creates an adapter. baseURL may be empty for api.openai.com.
// SDK-level retries are disabled; Manager owns the retry policy.
func NewOpenAIAdapter(name, apiKey, baseURL, model string) *OpenAIAdapter {
	opts := []openaiOption.RequestOption{
		openaiOption.WithAPIKey(apiKey),
		openaiOption.WithMaxRetries(0),
	}
	if baseURL != "" {
		opts = append(opts, openaiOption.WithBaseURL(baseURL))
	}
	client := openai.NewClient(opts...)
	return &OpenAIAdapter{client: &client, name: name, model: model}
}

// GenerateContent implements Provider interface
func (a *OpenAIAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	params := openai.ChatCompletionNewParams{
		Model:       shared.ChatModel(a.model),
		Messages:    convertToOpenAIMessages(req),
		Temperature: openai.Float(req.Temperature),
	}
	if req.MaxTokens > 0 {
		params.MaxTokens = openai.Int(int64(req.MaxTokens))
	}

	completion, err := a.client.Chat.Completions.New(ctx, params)
	if err != nil {
		var apiErr *openai.Error
		if errors.As(err, &apiErr) {
			return nil, classifyStatus(a.name, apiErr.StatusCode, err)
		}
		return nil, classifyTransport(a.name, err)
	}
	if len(completion.Choices) == 0 {
		return nil, &ProviderError{Provider: a.name, Err: ErrEmptyResponse}
	}

	return &Response{
		Content:      NewTextMessage(RoleAssistant, completion.Choices[0].Message.Content),
		ProviderName: a.name,
		ModelName:    a.model,
		Truncated:    string(completion.Choices[0].FinishReason) == finishReasonLength,
		Usage: &Usage{
			InputTokens:  int(completion.Usage.PromptTokens),
			OutputTokens: int(completion.Usage.CompletionTokens),
			TotalTokens:  int(completion.Usage.TotalTokens),
		},
	}, nil
}

// Name returns provider name
func (a *OpenAIAdapter) Name() string {
	return a.name
}

// Model returns model name
func (a *OpenAIAdapter) Model() string {
	return a.model
}

func convertToOpenAIMessages(req *Request) []openai.ChatCompletionMessageParamUnion {
	msgs := make([]openai.ChatCompletionMessageParamUnion, 0, len(req.Messages)+1)
	if req.SystemInstruction != nil {
		msgs = append(msgs, openai.SystemMessage(req.SystemInstruction.Text()))
	}
	for _, m := range req.Messages {
		switch m.Role {
		case RoleAssistant:
			msgs = append(msgs, openai.AssistantMessage(m.Text()))
		case RoleSystem:
			msgs = append(msgs, openai.SystemMessage(m.Text()))
		default:
			msgs = append(msgs, openai.UserMessage(m.Text()))
		}
	}
	return msgs
}

// AnthropicAdapter adapts the Anthropic Messages API to Provider.
type AnthropicAdapter struct {
	client *anthropic.Client
	model  string
}

// NewAnthropicAdapter creates a new Anthropic adapter
func NewAnthropicAdapter(apiKey, baseURL, model string) *AnthropicAdapter {
	opts := []anthropicOption.RequestOption{
		anthropicOption.WithAPIKey(apiKey),
		anthropicOption.WithMaxRetries(0),
	}
	if baseURL != "" {
		opts = append(opts, anthropicOption.WithBaseURL(baseURL))
	}
	client := anthropic.NewClient(opts...)
	return &AnthropicAdapter{client: &client, model: model}
}

// GenerateContent implements Provider interface
func (a *AnthropicAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	maxTokens := req.MaxTokens
	if maxTokens <= 0 {
		maxTokens = 1024
	}

	params := anthropic.MessageNewParams{
		Model:       anthropic.Model(a.model),
		MaxTokens:   int64(maxTokens),
		Messages:    convertToAnthropicMessages(req.Messages),
		Temperature: anthropic.Float(req.Temperature),
	}
	if req.SystemInstruction != nil {
		params.System = []anthropic.TextBlockParam{{Text: req.SystemInstruction.Text()}}
	}

	message, err := a.client.Messages.New(ctx, params)
	if err != nil {
		var apiErr *anthropic.Error
		if errors.As(err, &apiErr) {
			return nil, classifyStatus(a.Name(), apiErr.StatusCode, err)
		}
		return nil, classifyTransport(a.Name(), err)
	}

	var text strings.Builder
	for _, block := range message.Content {
		if block.Type == "text" {
			text.WriteString(block.Text)
		}
	}

	in, out := int(message.Usage.InputTokens), int(message.Usage.OutputTokens)
	return &Response{
		Content:      NewTextMessage(RoleAssistant, text.String()),
		ProviderName: a.Name(),
		ModelName:    a.model,
		Truncated:    string(message.StopReason) == stopReasonMaxTokens,
		Usage:        &Usage{InputTokens: in, OutputTokens: out, TotalTokens: in + out},
	}, nil
}

// Name returns provider name
func (a *AnthropicAdapter) Name() string {
	return "anthropic"
}

// Model returns model name
func (a *AnthropicAdapter) Model() string {
	return a.model
}

// convertToAnthropicMessages drops empty turns, merges consecutive turns of the
// same role and makes sure the conversation opens with a user turn, which the
// Messages API requires.
func convertToAnthropicMessages(msgs []Message) []anthropic.MessageParam {
	type turn struct {
		role string
		text string
	}

	var turns []turn
	for _, m := range msgs {
		text := strings.TrimSpace(m.Text())
		if text == "" {
			continue
		}
		role := RoleUser
		if m.Role == RoleAssistant {
			role = RoleAssistant
		}
		if n := len(turns); n > 0 && turns[n-1].role == role {
			turns[n-1].text += "\n\n" + text
			continue
		}
		turns = append(turns, turn{role: role, text: text})
	}
	for len(turns) > 0 && turns[0].role != RoleUser {
		turns = turns[1:]
	}
	if len(turns) == 0 {
		turns = append(turns, turn{role: RoleUser, text: "Please respond."})
	}

	out := make([]anthropic.MessageParam, len(turns))
	for i, t := range turns {
		if t.role == RoleAssistant {
			out[i] = anthropic.NewAssistantMessage(anthropic.NewTextBlock(t.text))
		} else {
			out[i] = anthropic.NewUserMessage(anthropic.NewTextBlock(t.text))
		}
	}
	return out
}

// DeepSeekAdapter adapts pkg/deepseek to llmprovider.Provider interface
type DeepSeekAdapter struct {
	client deepseek.IDeepSeek
}

// NewDeepSeekAdapter creates a new DeepSeek adapter
func NewDeepSeekAdapter(client deepseek.IDeepSeek) *DeepSeekAdapter {
	return &DeepSeekAdapter{client: client}
}

// GenerateContent implements Provider interface
func (a *DeepSeekAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	dsReq := &deepseek.Request{
		Messages:    convertToDeepSeekMessages(req),
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	}

	resp, err := a.client.GenerateContent(ctx, dsReq)
	if err != nil {
		if errors.Is(err, deepseek.ErrNoChoices) {
			return nil, &ProviderError{Provider: a.Name(), Err: ErrEmptyResponse}
		}
		var apiErr *deepseek.APIError
		if errors.As(err, &apiErr) {
			return nil, classifyStatus(a.Name(), apiErr.StatusCode, err)
		}
		return nil, classifyTransport(a.Name(), err)
	}

	return &Response{
		Content:      NewTextMessage(RoleAssistant, resp.Text()),
		ProviderName: a.Name(),
		ModelName:    a.client.Model(),
		Truncated:    resp.Truncated(),
		Usage: &Usage{
			InputTokens:  resp.Usage.PromptTokens,
			OutputTokens: resp.Usage.CompletionTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}, nil
}

// Name returns provider name
func (a *DeepSeekAdapter) Name() string {
	return "deepseek"
}

// Model returns model name
func (a *DeepSeekAdapter) Model() string {
	return a.client.Model()
}

func convertToDeepSeekMessages(req *Request) []deepseek.Message {
	msgs := make([]deepseek.Message, 0, len(req.Messages)+1)
	if req.SystemInstruction != nil {
		msgs = append(msgs, deepseek.Message{Role: RoleSystem, Content: req.SystemInstruction.Text()})
	}
	for _, m := range req.Messages {
		msgs = append(msgs, deepseek.Message{Role: m.Role, Content: m.Text()})
	}
	return msgs
}
