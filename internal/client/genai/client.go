package genai

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

	"github.com/dmitrijs2005/jobtracker/internal/client/models"
	"github.com/dmitrijs2005/jobtracker/internal/logging"
)

const (
	DefaultBaseURL    = "https://openrouter.ai/api/v1"
	DefaultModel      = "google/gemini-2.5-flash"
	DefaultImageModel = "google/gemini-2.5-flash-image-preview"
)

var (
	ErrNoAPIKey    = errors.New("generation api key is empty")
	ErrNoChoices   = errors.New("no choices returned by model")
	ErrEmptyResult = errors.New("model returned no content")
)

// Generator is the generation surface the rest of the client depends on.
type Generator interface {
	GenerateCoverLetter(ctx context.Context, job models.Job, resume models.Resume) (string, error)
	GenerateInterviewGuide(ctx context.Context, job models.Job, resume models.Resume) (string, error)
	ParseResume(ctx context.Context, data []byte, mimeType string) (models.Resume, error)
	GenerateAvatar(ctx context.Context, image []byte, contentType, style string) ([]byte, string, error)
	Chat(ctx context.Context, jobs []models.Job, history []models.Message, text string) (string, error)
}

type Options struct {
	APIKey     string
	BaseURL    string
	Model      string
	ImageModel string
	Timeout    time.Duration
	AppTitle   string
}

// Client is a minimal OpenAI-compatible chat completions client.
type Client struct {
	apiKey     string
	baseURL    string
	model      string
	imageModel string
	appTitle   string
	httpDo     *http.Client
	prompts    *Prompts
	log        logging.Logger
}

func New(opts Options, prompts *Prompts, log logging.Logger) *Client {
	if opts.BaseURL == "" {
		opts.BaseURL = DefaultBaseURL
	}
	if opts.Model == "" {
		opts.Model = DefaultModel
	}
	if opts.ImageModel == "" {
		opts.ImageModel = DefaultImageModel
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 60 * time.Second
	}
	return &Client{
		apiKey:     opts.APIKey,
		baseURL:    strings.TrimRight(opts.BaseURL, "/"),
		model:      opts.Model,
		imageModel: opts.ImageModel,
		appTitle:   opts.AppTitle,
		httpDo:     &http.Client{Timeout: opts.Timeout},
		prompts:    prompts,
		log:        log.With("module", "genai"),
	}
}

type contentPart struct {
	Type     string    `json:"type"`
	Text     string    `json:"text,omitempty"`
	ImageURL *imageURL `json:"image_url,omitempty"`
}

type imageURL struct {
	URL string `json:"url"`
}

type message struct {
	Role string `json:"role"`
	// Content is a string or a []contentPart.
	Content any `json:"content"`
}

type chatCompletionsRequest struct {
	Model       string    `json:"model"`
	Messages    []message `json:"messages"`
	Modalities  []string  `json:"modalities,omitempty"`
	Temperature float32   `json:"temperature,omitempty"`
}

type chatChoice struct {
	Message struct {
		Role    string `json:"role"`
		Content string `json:"content"`
		Images  []struct {
			Type     string   `json:"type"`
			ImageURL imageURL `json:"image_url"`
		} `json:"images"`
	} `json:"message"`
	FinishReason string `json:"finish_reason"`
}

type chatCompletionsResponse struct {
	ID      string       `json:"id"`
	Model   string       `json:"model"`
	Choices []chatChoice `json:"choices"`
}

func (c *Client) complete(ctx context.Context, req chatCompletionsRequest) (*chatChoice, error) {
	if c.apiKey == "" {
		return nil, ErrNoAPIKey
	}
	data, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}

	endpoint := c.baseURL + "/chat/completions"
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	if c.appTitle != "" {
		httpReq.Header.Set("X-Title", c.appTitle)
	}

	started := time.Now()
	resp, err := c.httpDo.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("generation http %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
	var out chatCompletionsResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decoding completion: %w", err)
	}
	if len(out.Choices) == 0 {
		return nil, ErrNoChoices
	}
	c.log.Debug(ctx, "completion done", "model", req.Model, "elapsed", time.Since(started))
	return &out.Choices[0], nil
}

func (c *Client) ask(ctx context.Context, system, user string) (string, error) {
	choice, err := c.complete(ctx, chatCompletionsRequest{
		Model: c.model,
		Messages: []message{
			{Role: "system", Content: system},
			{Role: "user", Content: user},
		},
		Temperature: 0.4,
	})
	if err != nil {
		return "", err
	}
	text := strings.TrimSpace(choice.Message.Content)
	if text == "" {
		return "", ErrEmptyResult
	}
	return text, nil
}

type jobPromptData struct {
	Job    models.Job
	Resume models.Resume
}

func (c *Client) GenerateCoverLetter(ctx context.Context, job models.Job, resume models.Resume) (string, error) {
	user, err := render("cover_letter", c.prompts.CoverLetter.User, jobPromptData{job, resume})
	if err != nil {
		return "", err
	}
	return c.ask(ctx, c.prompts.CoverLetter.System, user)
}

func (c *Client) GenerateInterviewGuide(ctx context.Context, job models.Job, resume models.Resume) (string, error) {
	user, err := render("interview_guide", c.prompts.InterviewGuide.User, jobPromptData{job, resume})
	if err != nil {
		return "", err
	}
	return c.ask(ctx, c.prompts.InterviewGuide.System, user)
}

// Chat answers text in the context of the user's jobs and the prior history.
func (c *Client) Chat(ctx context.Context, jobs []models.Job, history []models.Message, text string) (string, error) {
	system, err := render("chat", c.prompts.Chat.System, struct{ Jobs []models.Job }{jobs})
	if err != nil {
		return "", err
	}

	msgs := make([]message, 0, len(history)+2)
	msgs = append(msgs, message{Role: "system", Content: system})
	for _, m := range history {
		role := "user"
		if m.Role == models.RoleModel {
			role = "assistant"
		}
		msgs = append(msgs, message{Role: role, Content: m.Text})
	}
	msgs = append(msgs, message{Role: "user", Content: text})

	choice, err := c.complete(ctx, chatCompletionsRequest{Model: c.model, Messages: msgs, Temperature: 0.6})
	if err != nil {
		return "", err
	}
	reply := strings.TrimSpace(choice.Message.Content)
	if reply == "" {
		return "", ErrEmptyResult
	}
	return reply, nil
}
