package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/jobtracker/internal/client/models"
	"github.com/dmitrijs2005/jobtracker/internal/client/repositories/messages"
	"github.com/dmitrijs2005/jobtracker/internal/logging"
	"github.com/google/uuid"
)

// ChatApology is the model message appended when the assistant cannot answer.
const ChatApology = "Sorry, I could not reach the assistant just now. Please try again in a moment."

// Chatter answers a user message given the job list and prior history.
type Chatter interface {
	Chat(ctx context.Context, jobs []models.Job, history []models.Message, text string) (string, error)
}

// JobLister supplies the job list used as chat context.
type JobLister interface {
	List() []models.Job
}

type ChatService struct {
	repo messages.Repository
	gen  Chatter
	jobs JobLister
	log  logging.Logger
	now  func() time.Time
}

func NewChatService(repo messages.Repository, gen Chatter, jobs JobLister, log logging.Logger) *ChatService {
	return &ChatService{repo: repo, gen: gen, jobs: jobs, log: log.With("module", "chat"), now: time.Now}
}

func (s *ChatService) History(ctx context.Context) ([]models.Message, error) {
	msgs, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading history: %w", err)
	}
	return msgs, nil
}

// Send appends the user's message, asks the model and appends its reply. A
// generation failure appends ChatApology instead and is not returned.
func (s *ChatService) Send(ctx context.Context, text string) (models.Message, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return models.Message{}, fmt.Errorf("empty message")
	}

	history, err := s.History(ctx)
	if err != nil {
		return models.Message{}, err
	}

	user := models.Message{ID: uuid.NewString(), Role: models.RoleUser, Text: text, CreatedAt: s.now()}
	if err := s.repo.Append(ctx, user); err != nil {
		return models.Message{}, fmt.Errorf("saving error: %w", err)
	}

	replyText, err := s.gen.Chat(ctx, s.jobs.List(), history, text)
	if err != nil {
		s.log.Warn(ctx, "assistant reply failed", "error", err)
		replyText = ChatApology
	}

	reply := models.Message{ID: uuid.NewString(), Role: models.RoleModel, Text: replyText, CreatedAt: s.now()}
	if err := s.repo.Append(ctx, reply); err != nil {
		return models.Message{}, fmt.Errorf("saving error: %w", err)
	}
	return reply, nil
}
