package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/dmitrijs2005/jobtracker/internal/client/client"
	"github.com/dmitrijs2005/jobtracker/internal/client/models"
	"github.com/dmitrijs2005/jobtracker/internal/cryptox"
	"github.com/dmitrijs2005/jobtracker/internal/logging"
	"github.com/dmitrijs2005/jobtracker/internal/netx"
)

// ResumeRemote is the resume part of the persistence client.
type ResumeRemote interface {
	GetResume(ctx context.Context) (*models.Resume, error)
	SaveResume(ctx context.Context, resume models.Resume) error
	GetAvatarUploadURL(ctx context.Context, digest, contentType string) (string, string, error)
	GetAvatarURL(ctx context.Context, key string) (string, error)
}

// ResumeGenerator is the resume part of the generation client.
type ResumeGenerator interface {
	ParseResume(ctx context.Context, data []byte, mimeType string) (models.Resume, error)
	GenerateAvatar(ctx context.Context, image []byte, contentType, style string) ([]byte, string, error)
}

// UploadTimeout bounds each transfer to or from object storage.
const UploadTimeout = 60 * time.Second

// ChangeNotifier is told about every edit; the autosaver implements it.
type ChangeNotifier interface {
	Changed(r models.Resume)
}

type ResumeService struct {
	mu      sync.Mutex
	current models.Resume
	remote  ResumeRemote
	gen     ResumeGenerator
	changes ChangeNotifier
	http    *http.Client
	log     logging.Logger
}

func NewResumeService(remote ResumeRemote, gen ResumeGenerator, log logging.Logger) *ResumeService {
	return &ResumeService{
		current: models.DefaultResume(),
		remote:  remote,
		gen:     gen,
		http:    &http.Client{Timeout: UploadTimeout},
		log:     log.With("module", "resume"),
	}
}

// SetChangeNotifier wires the autosaver. It is separate from the constructor
// because the autosaver persists through this service's remote.
func (s *ResumeService) SetChangeNotifier(c ChangeNotifier) {
	s.changes = c
}

// Load fetches the stored resume; a user without one starts from the default.
func (s *ResumeService) Load(ctx context.Context) error {
	r, err := s.remote.GetResume(ctx)
	if errors.Is(err, client.ErrNotFound) {
		s.set(models.DefaultResume())
		return nil
	}
	if err != nil {
		return fmt.Errorf("loading resume: %w", err)
	}
	s.set(*r)
	return nil
}

// Current returns a copy of the document being edited.
func (s *ResumeService) Current() models.Resume {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current.Clone()
}

// Edit applies fn to the document and schedules an autosave.
func (s *ResumeService) Edit(fn func(r *models.Resume)) models.Resume {
	s.mu.Lock()
	r := s.current.Clone()
	fn(&r)
	s.current = r.Clone()
	s.mu.Unlock()

	if s.changes != nil {
		s.changes.Changed(r)
	}
	return r
}

// Save writes r to the remote. It is the autosaver's persist function.
func (s *ResumeService) Save(ctx context.Context, r models.Resume) error {
	if err := s.remote.SaveResume(ctx, r); err != nil {
		return fmt.Errorf("saving error: %w", err)
	}
	return nil
}

// Import parses an uploaded resume file and replaces the fields it found.
// Fields the parser could not fill keep their current values, and the avatar
// is never touched.
func (s *ResumeService) Import(ctx context.Context, data []byte, mimeType string) (models.Resume, error) {
	parsed, err := s.gen.ParseResume(ctx, data, mimeType)
	if err != nil {
		return models.Resume{}, fmt.Errorf("importing resume: %w", err)
	}

	return s.Edit(func(r *models.Resume) {
		mergeString(&r.FullName, parsed.FullName)
		mergeString(&r.Email, parsed.Email)
		mergeString(&r.Phone, parsed.Phone)
		mergeString(&r.Summary, parsed.Summary)
		mergeString(&r.Skills, parsed.Skills)
		if len(parsed.Experience) > 0 {
			r.Experience = parsed.Experience
		}
		if len(parsed.Education) > 0 {
			r.Education = parsed.Education
		}
		if len(parsed.Projects) > 0 {
			r.Projects = parsed.Projects
		}
	}), nil
}

func mergeString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

// GenerateAvatar restyles image, uploads the result to object storage and
// stores its key on the resume.
func (s *ResumeService) GenerateAvatar(ctx context.Context, image []byte, contentType, style string) (string, error) {
	out, outType, err := s.gen.GenerateAvatar(ctx, image, contentType, style)
	if err != nil {
		return "", fmt.Errorf("generating avatar: %w", err)
	}
	return s.UploadAvatar(ctx, out, outType)
}

// UploadAvatar stores img under its content digest and records the key.
func (s *ResumeService) UploadAvatar(ctx context.Context, img []byte, contentType string) (string, error) {
	digest := cryptox.Digest(img)
	key, url, err := s.remote.GetAvatarUploadURL(ctx, digest, contentType)
	if err != nil {
		return "", fmt.Errorf("requesting upload url: %w", err)
	}
	if err := netx.UploadToPresignedURL(ctx, s.http, url, contentType, img); err != nil {
		return "", fmt.Errorf("uploading avatar: %w", err)
	}
	s.log.Info(ctx, "avatar uploaded", "key", key, "bytes", len(img))

	s.Edit(func(r *models.Resume) { r.Avatar = key })
	return key, nil
}

// AvatarURL returns a short-lived download URL for the current avatar.
func (s *ResumeService) AvatarURL(ctx context.Context) (string, error) {
	key := s.Current().Avatar
	if key == "" {
		return "", fmt.Errorf("no avatar: %w", client.ErrNotFound)
	}
	return s.remote.GetAvatarURL(ctx, key)
}

func (s *ResumeService) set(r models.Resume) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = r.Clone()
}
