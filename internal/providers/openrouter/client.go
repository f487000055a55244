package openrouter

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"golang.org/x/sync/errgroup"

	"github.com/teron131/Visual-Prompting/internal/domain"
	"github.com/teron131/Visual-Prompting/internal/promptgen"
)

const (
	// DefaultBaseURL is the OpenRouter OpenAI-compatible endpoint.
	DefaultBaseURL = "https://openrouter.ai/api/v1"
	// DefaultModel is used when no model is configured.
	DefaultModel = "openai/gpt-4.1-mini"

	defaultTimeout = 60 * time.Second

	// Calls within one batch run concurrently up to this limit, which matches
	// the maximum batch size.
	maxConcurrentCalls = 4
)

// Options configures the OpenRouter client.
type Options struct {
	APIKey     string
	Model      string
	BaseURL    string
	HTTPClient *http.Client
}

// Client generates structured visual prompts through the OpenRouter chat
// completions API. Safe for concurrent use.
type Client struct {
	api   *openai.Client
	model string
}

// NewClient validates the options and builds a client.
func NewClient(opts Options) (*Client, error) {
	apiKey := strings.TrimSpace(opts.APIKey)
	if apiKey == "" {
		return nil, errors.New("openrouter: api key is required")
	}
	baseURL := strings.TrimRight(strings.TrimSpace(opts.BaseURL), "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	model := strings.TrimSpace(opts.Model)
	if model == "" {
		model = DefaultModel
	}
	cfg := openai.DefaultConfig(apiKey)
	cfg.BaseURL = baseURL
	if opts.HTTPClient != nil {
		cfg.HTTPClient = opts.HTTPClient
	} else {
		cfg.HTTPClient = &http.Client{Timeout: defaultTimeout}
	}
	return &Client{api: openai.NewClientWithConfig(cfg), model: model}, nil
}

// Model returns the configured model identifier.
func (c *Client) Model() string { return c.model }

// GenerateRequest describes one prompt generation batch.
type GenerateRequest struct {
	Mode     domain.Mode
	UserText string
	Image    []byte
	Count    int
	Params   domain.ParameterSelections
}

// Generate issues one chat completion per requested output and returns
// exactly Count rendered prompt strings. Any failed call fails the batch;
// calls are not retried.
func (c *Client) Generate(ctx context.Context, req GenerateRequest) ([]string, error) {
	if !req.Mode.Valid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidMode, req.Mode)
	}
	if req.Count < 1 {
		req.Count = 1
	}
	instruction := promptgen.BuildInstruction(req.Mode, req.Params)

	prompts := make([]string, req.Count)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentCalls)
	for i := range prompts {
		i := i
		g.Go(func() error {
			rendered, err := c.generateOne(gctx, instruction, req)
			if err != nil {
				return err
			}
			prompts[i] = rendered
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return prompts, nil
}

func (c *Client) generateOne(ctx context.Context, instruction string, req GenerateRequest) (string, error) {
	toolName := promptToolName(req.Mode)
	chatReq := openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: instruction},
			userMessage(req),
		},
		Tools: []openai.Tool{{
			Type: openai.ToolTypeFunction,
			Function: &openai.FunctionDefinition{
				Name:        toolName,
				Description: fmt.Sprintf("Record the structured %s generation prompt", req.Mode),
				Parameters:  promptToolSchema(req.Mode),
			},
		}},
		ToolChoice: openai.ToolChoice{
			Type:     openai.ToolTypeFunction,
			Function: openai.ToolFunction{Name: toolName},
		},
	}

	resp, err := c.api.CreateChatCompletion(ctx, chatReq)
	if err != nil {
		return "", fmt.Errorf("%w: openrouter call: %v", domain.ErrProviderFailure, err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%w: openrouter returned no choices", domain.ErrProviderFailure)
	}
	raw, err := structuredArguments(resp.Choices[0].Message, toolName)
	if err != nil {
		return "", err
	}
	return renderStructured(req.Mode, raw)
}

// userMessage builds the human turn. A reference image is inlined ahead of
// the text as a base64 data URL, mirroring the image-augmented request shape
// of OpenAI-compatible vision APIs.
func userMessage(req GenerateRequest) openai.ChatCompletionMessage {
	text := fmt.Sprintf("Create a %s generation prompt based on this request: %s", req.Mode, strings.TrimSpace(req.UserText))
	if len(req.Image) == 0 {
		return openai.ChatCompletionMessage{Role: openai.ChatMessageRoleUser, Content: text}
	}
	mime := http.DetectContentType(req.Image)
	dataURL := fmt.Sprintf("data:%s;base64,%s", mime, base64.StdEncoding.EncodeToString(req.Image))
	return openai.ChatCompletionMessage{
		Role: openai.ChatMessageRoleUser,
		MultiContent: []openai.ChatMessagePart{
			{Type: openai.ChatMessagePartTypeImageURL, ImageURL: &openai.ChatMessageImageURL{URL: dataURL, Detail: openai.ImageURLDetailAuto}},
			{Type: openai.ChatMessagePartTypeText, Text: text},
		},
	}
}

// structuredArguments prefers the forced tool call; models that answer in
// plain content instead are salvaged with a JSON-fragment pass.
func structuredArguments(msg openai.ChatCompletionMessage, toolName string) (string, error) {
	for _, call := range msg.ToolCalls {
		if call.Function.Name != toolName {
			continue
		}
		args := strings.TrimSpace(call.Function.Arguments)
		if args != "" {
			return args, nil
		}
	}
	if salvaged := extractJSONFragment(msg.Content); salvaged != "" {
		return salvaged, nil
	}
	return "", fmt.Errorf("%w: response carried no structured prompt", domain.ErrProviderFailure)
}

func renderStructured(mode domain.Mode, raw string) (string, error) {
	if mode == domain.ModeVideo {
		var p domain.VideoPrompt
		if err := json.Unmarshal([]byte(raw), &p); err != nil {
			return "", fmt.Errorf("%w: decode video prompt: %v", domain.ErrProviderFailure, err)
		}
		if err := p.Validate(); err != nil {
			return "", fmt.Errorf("%w: video prompt: %v", domain.ErrProviderFailure, err)
		}
		return promptgen.RenderVideoPrompt(p), nil
	}
	var p domain.ImagePrompt
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		return "", fmt.Errorf("%w: decode image prompt: %v", domain.ErrProviderFailure, err)
	}
	if err := p.Validate(); err != nil {
		return "", fmt.Errorf("%w: image prompt: %v", domain.ErrProviderFailure, err)
	}
	return promptgen.RenderImagePrompt(p), nil
}
