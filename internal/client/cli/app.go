package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"github.com/dmitrijs2005/jobtracker/internal/client/autosave"
	"github.com/dmitrijs2005/jobtracker/internal/client/client"
	"github.com/dmitrijs2005/jobtracker/internal/client/config"
	"github.com/dmitrijs2005/jobtracker/internal/client/genai"
	"github.com/dmitrijs2005/jobtracker/internal/client/jobstore"
	"github.com/dmitrijs2005/jobtracker/internal/client/models"
	"github.com/dmitrijs2005/jobtracker/internal/client/notifier"
	"github.com/dmitrijs2005/jobtracker/internal/client/regen"
	"github.com/dmitrijs2005/jobtracker/internal/client/repositories/messages"
	"github.com/dmitrijs2005/jobtracker/internal/client/repositories/uistate"
	"github.com/dmitrijs2005/jobtracker/internal/client/services"
	"github.com/dmitrijs2005/jobtracker/internal/filex"
	"github.com/dmitrijs2005/jobtracker/internal/logging"
)

type Mode string

const (
	ModeOffline  Mode = "offline"
	ModeOnline   Mode = "online"
	ModeDisabled Mode = "disabled"
)

type pinger interface {
	Ping(ctx context.Context) error
}

type resumeService interface {
	Load(ctx context.Context) error
	Current() models.Resume
	Edit(fn func(r *models.Resume)) models.Resume
	Import(ctx context.Context, data []byte, mimeType string) (models.Resume, error)
	GenerateAvatar(ctx context.Context, image []byte, contentType, style string) (string, error)
	UploadAvatar(ctx context.Context, img []byte, contentType string) (string, error)
	AvatarURL(ctx context.Context) (string, error)
}

type chatService interface {
	History(ctx context.Context) ([]models.Message, error)
	Send(ctx context.Context, text string) (models.Message, error)
}

type unreadFlag interface {
	Unread() bool
	ChatOpened(ctx context.Context)
}

type resumeSaver interface {
	Pending() bool
	Flush(ctx context.Context) error
	Close()
}

type App struct {
	config *config.Config
	log    logging.Logger

	remote   pinger
	jobs     services.JobService
	resume   resumeService
	chat     chatService
	saver    resumeSaver
	notifier unreadFlag

	modeMu sync.RWMutex
	Mode   Mode
	// inChat is set while the chat view is open; the transition hook passes
	// it to the notifier.
	inChat atomic.Bool

	reader  *bufio.Reader
	out     io.Writer
	closers []io.Closer
}

// NewApp opens local storage, connects to the backend and wires the job,
// resume and assistant services together.
func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	if _, err := filex.EnsureParentDir(c.DatabasePath); err != nil {
		return nil, fmt.Errorf("error preparing database dir: %w", err)
	}

	db, err := client.InitDatabase(ctx, c.DatabasePath)
	if err != nil {
		log.Error(ctx, "error initializing database", "error", err)
		return nil, err
	}

	apiClient, err := client.NewJobTrackerClient(c.ServerEndpointAddr, c.AccessToken, c.RequestTimeout)
	if err != nil {
		db.Close()
		return nil, err
	}

	prompts, err := genai.LoadPrompts(nil)
	if err != nil {
		db.Close()
		apiClient.Close()
		return nil, err
	}
	gen := genai.New(genai.Options{
		APIKey:     c.LLMAPIKey,
		BaseURL:    c.LLMBaseURL,
		Model:      c.LLMModel,
		ImageModel: c.LLMImageModel,
		AppTitle:   "jobtracker",
	}, prompts, log)

	a := &App{
		config:  c,
		log:     log.With("module", "cli"),
		remote:  apiClient,
		reader:  bufio.NewReader(os.Stdin),
		out:     os.Stdout,
		closers: []io.Closer{apiClient, dbCloser{db}},
	}
	a.wire(ctx, db, apiClient, gen, log)

	return a, nil
}

type dbCloser struct{ db *sql.DB }

func (d dbCloser) Close() error { return d.db.Close() }

func (a *App) wire(ctx context.Context, db *sql.DB, api *client.GRPCClient, gen genai.Generator, log logging.Logger) {
	msgs := messages.NewSQLiteRepository(db)
	n := notifier.NewNotifier(ctx, msgs, uistate.NewSQLiteRepository(db), log)
	a.notifier = n

	store := jobstore.NewStore(api, log, jobstore.WithTransitionHook(func(ctx context.Context, prev, next models.Job) {
		if _, err := n.Notify(ctx, prev, next, a.inChat.Load()); err != nil {
			a.log.Warn(ctx, "transition message not stored", "job_id", next.ID, "error", err)
		}
	}))

	rs := services.NewResumeService(api, gen, log)
	saver := autosave.New(rs.Save, a.config.AutosaveInterval, log)
	rs.SetChangeNotifier(saver)
	a.resume = rs
	a.saver = saver

	a.jobs = services.NewJobService(store, regen.NewController(gen, store, rs, log))
	a.chat = services.NewChatService(msgs, gen, store, log)
}

func (a *App) mode() Mode {
	a.modeMu.RLock()
	defer a.modeMu.RUnlock()
	return a.Mode
}

func (a *App) setMode(mode Mode) {
	a.modeMu.Lock()
	changed := a.Mode != mode
	a.Mode = mode
	a.modeMu.Unlock()

	if changed && a.log != nil {
		a.log.Info(context.Background(), fmt.Sprintf("Switched to %s mode", mode))
	}
}

// Run loads the initial state, starts the online watcher and blocks in the
// REPL until the user exits. Pending resume edits are flushed on the way out.
func (a *App) Run(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	defer a.shutdown()

	printlnFn("Welcome to jobtracker (type 'help' for commands)")

	if err := a.Refresh(ctx); err != nil {
		a.setMode(ModeOffline)
	} else {
		a.setMode(ModeOnline)
	}
	if err := a.resume.Load(ctx); err != nil {
		a.log.Warn(ctx, "resume not loaded", "error", err)
	}

	if a.config.OnlineCheckInterval > 0 {
		go a.StartOnlineStatusWatcher(ctx, a.config.OnlineCheckInterval)
	} else {
		a.setMode(ModeDisabled)
	}

	runREPL(ctx, a, a.getStatus, a.reader)
}

func (a *App) shutdown() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if a.saver != nil {
		if a.saver.Pending() {
			if err := a.saver.Flush(ctx); err != nil {
				a.log.Error(ctx, "resume not saved on exit", "error", err)
			}
		}
		a.saver.Close()
	}
	for _, c := range a.closers {
		if err := c.Close(); err != nil {
			a.log.Warn(ctx, "close failed", "error", err)
		}
	}
}

// getStatus renders the prompt status: connectivity and the unread marker.
func (a *App) getStatus() string {
	s := string(a.mode())
	if a.notifier != nil && a.notifier.Unread() {
		if s != "" {
			s += ", "
		}
		s += "new assistant message"
	}
	if s != "" {
		s = fmt.Sprintf("(%s)", s)
	}
	return s
}

func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			a.checkOnline(ctx)

		case <-ctx.Done():
			return
		}
	}
}

func (a *App) checkOnline(ctx context.Context) {
	pctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	err := a.remote.Ping(pctx)
	cancel()

	if err != nil {
		if a.mode() == ModeOnline {
			a.setMode(ModeOffline)
		}
		return
	}
	if a.mode() != ModeOnline {
		a.setMode(ModeOnline)
	}
}
