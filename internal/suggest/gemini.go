package suggest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/thenoetrevino/tablero/internal/board"
	"google.golang.org/api/generativelanguage/v1beta"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

const (
	// DefaultModel is the Gemini model used when none is configured
	DefaultModel = "gemini-3-flash-preview"

	// APITimeout is the timeout for API calls.
	APITimeout = 30 * time.Second

	jsonMimeType = "application/json"
)

// GeminiClient implements Suggester on top of the Generative Language API
type GeminiClient struct {
	svc     *generativelanguage.Service
	model   string
	timeout time.Duration
	logger  *slog.Logger
}

// GeminiOption configures a GeminiClient
type GeminiOption func(*geminiSettings)

type geminiSettings struct {
	model      string
	timeout    time.Duration
	endpoint   string
	httpClient *http.Client
	logger     *slog.Logger
}

// WithModel overrides DefaultModel
func WithModel(model string) GeminiOption {
	return func(s *geminiSettings) {
		if model != "" {
			s.model = model
		}
	}
}

// WithTimeout overrides APITimeout
func WithTimeout(d time.Duration) GeminiOption {
	return func(s *geminiSettings) {
		if d > 0 {
			s.timeout = d
		}
	}
}

// WithEndpoint points the client at a different base URL
func WithEndpoint(endpoint string) GeminiOption {
	return func(s *geminiSettings) {
		s.endpoint = endpoint
	}
}

// WithHTTPClient sets the HTTP client used for requests
func WithHTTPClient(c *http.Client) GeminiOption {
	return func(s *geminiSettings) {
		s.httpClient = c
	}
}

// WithLogger sets the logger for request failures
func WithLogger(l *slog.Logger) GeminiOption {
	return func(s *geminiSettings) {
		s.logger = l
	}
}

// NewGeminiClient creates a client authenticated with an API key
func NewGeminiClient(ctx context.Context, apiKey string, opts ...GeminiOption) (*GeminiClient, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, ErrNoAPIKey
	}

	settings := geminiSettings{
		model:   DefaultModel,
		timeout: APITimeout,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(&settings)
	}

	clientOpts := []option.ClientOption{option.WithAPIKey(apiKey)}
	if settings.endpoint != "" {
		clientOpts = append(clientOpts, option.WithEndpoint(settings.endpoint))
	}
	if settings.httpClient != nil {
		clientOpts = append(clientOpts, option.WithHTTPClient(settings.httpClient))
	}

	svc, err := generativelanguage.NewService(ctx, clientOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create generative language service: %w", err)
	}

	return &GeminiClient{
		svc:     svc,
		model:   settings.model,
		timeout: settings.timeout,
		logger:  settings.logger,
	}, nil
}

// Model returns the model name requests are sent to
func (c *GeminiClient) Model() string {
	return c.model
}

// SuggestTasks asks for five starter tasks for the project
func (c *GeminiClient) SuggestTasks(ctx context.Context, projectName string) ([]board.Suggestion, error) {
	prompt := fmt.Sprintf(
		"Suggest a list of 5 initial tasks for a project named: \"%s\". Include a clear title and a brief description for each.",
		projectName,
	)

	var out struct {
		Tasks []board.Suggestion `json:"tasks"`
	}
	if err := c.generate(ctx, prompt, taskListSchema(), &out); err != nil {
		return nil, err
	}
	return out.Tasks, nil
}

// SuggestSubtasks asks for three to five subtasks of the given task
func (c *GeminiClient) SuggestSubtasks(ctx context.Context, title, description string) ([]string, error) {
	prompt := fmt.Sprintf(
		"Given the task \"%s\" with description \"%s\", suggest 3 to 5 actionable subtasks.",
		title, description,
	)

	var out struct {
		Subtasks []string `json:"subtasks"`
	}
	if err := c.generate(ctx, prompt, subtaskListSchema(), &out); err != nil {
		return nil, err
	}
	return out.Subtasks, nil
}

// generate sends one prompt and decodes the JSON answer into out.
// An answer with no text decodes as the zero value of out.
func (c *GeminiClient) generate(ctx context.Context, prompt string, schema *generativelanguage.Schema, out any) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req := &generativelanguage.GenerateContentRequest{
		Contents: []*generativelanguage.Content{{
			Role:  "user",
			Parts: []*generativelanguage.Part{{Text: prompt}},
		}},
		GenerationConfig: &generativelanguage.GenerationConfig{
			ResponseMimeType: jsonMimeType,
			ResponseSchema:   schema,
		},
	}

	resp, err := c.svc.Models.GenerateContent("models/"+c.model, req).Context(ctx).Do()
	if err != nil {
		c.logger.Error("generate content failed", "model", c.model, "status", statusCode(err), "error", err)
		return fmt.Errorf("%w: %v", ErrSuggestionService, err)
	}

	text := responseText(resp)
	if text == "" {
		return nil
	}
	if err := sonic.UnmarshalString(text, out); err != nil {
		c.logger.Error("unreadable suggestion response", "model", c.model, "error", err)
		return fmt.Errorf("%w: decode response: %v", ErrSuggestionService, err)
	}
	return nil
}

// responseText joins the text parts of the first candidate
func responseText(resp *generativelanguage.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 {
		return ""
	}
	content := resp.Candidates[0].Content
	if content == nil {
		return ""
	}
	var sb strings.Builder
	for _, part := range content.Parts {
		if part != nil {
			sb.WriteString(part.Text)
		}
	}
	return strings.TrimSpace(sb.String())
}

func statusCode(err error) int {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		return apiErr.Code
	}
	return 0
}

func taskListSchema() *generativelanguage.Schema {
	return &generativelanguage.Schema{
		Type: "OBJECT",
		Properties: map[string]generativelanguage.Schema{
			"tasks": {
				Type: "ARRAY",
				Items: &generativelanguage.Schema{
					Type: "OBJECT",
					Properties: map[string]generativelanguage.Schema{
						"title":       {Type: "STRING"},
						"description": {Type: "STRING"},
						"priority":    {Type: "STRING", Format: "enum", Enum: []string{"low", "medium", "high"}},
					},
					Required: []string{"title", "description", "priority"},
				},
			},
		},
		Required: []string{"tasks"},
	}
}

func subtaskListSchema() *generativelanguage.Schema {
	return &generativelanguage.Schema{
		Type: "OBJECT",
		Properties: map[string]generativelanguage.Schema{
			"subtasks": {
				Type:  "ARRAY",
				Items: &generativelanguage.Schema{Type: "STRING"},
			},
		},
		Required: []string{"subtasks"},
	}
}
