// Package notifier turns qualifying job status transitions into assistant
// messages and tracks the assistant unread flag.
package notifier

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/dmitrijs2005/jobtracker/internal/client/models"
	"github.com/dmitrijs2005/jobtracker/internal/logging"
	"github.com/google/uuid"
)

// unreadKey is the ui_state key the unread flag is persisted under.
const unreadKey = "assistant_unread"

// Sink receives assistant messages.
type Sink interface {
	Append(ctx context.Context, m models.Message) error
}

// FlagStore persists the unread flag across restarts.
type FlagStore interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key string, value string) error
}

type Notifier struct {
	mu     sync.Mutex
	sink   Sink
	flags  FlagStore
	log    logging.Logger
	unread bool
	now    func() time.Time
}

// NewNotifier builds a notifier. flags may be nil, in which case the unread
// flag lives in memory only.
func NewNotifier(ctx context.Context, sink Sink, flags FlagStore, log logging.Logger) *Notifier {
	n := &Notifier{
		sink:  sink,
		flags: flags,
		log:   log.With("module", "notifier"),
		now:   time.Now,
	}
	if flags != nil {
		v, ok, err := flags.Get(ctx, unreadKey)
		if err != nil {
			n.log.Warn(ctx, "cannot read unread flag", "error", err)
		}
		n.unread = ok && v == "1"
	}
	return n
}

// Notifiable reports whether moving from prev to next produces a message.
func Notifiable(prev, next models.Status) bool {
	if prev == next {
		return false
	}
	return next == models.StatusAccepted || next == models.StatusRejected
}

// MessageText renders the assistant message for a notifiable transition.
func MessageText(job models.Job) string {
	switch job.Status {
	case models.StatusAccepted:
		return fmt.Sprintf("Congratulations! You accepted the %s role at %s. That is a big step, well done.", job.Role, job.Company)
	case models.StatusRejected:
		return fmt.Sprintf("Sorry to hear the %s role at %s did not work out. Every application teaches something; keep going, the right fit is out there.", job.Role, job.Company)
	default:
		return ""
	}
}

// Notify inspects one status change. On a notifiable transition it appends a
// model message to the sink and, unless the chat view is being observed,
// raises the unread flag. It reports whether a message was appended.
func (n *Notifier) Notify(ctx context.Context, prev, next models.Job, observingChat bool) (bool, error) {
	if !Notifiable(prev.Status, next.Status) {
		return false, nil
	}

	m := models.Message{
		ID:        uuid.NewString(),
		Role:      models.RoleModel,
		Text:      MessageText(next),
		CreatedAt: n.now(),
	}
	if err := n.sink.Append(ctx, m); err != nil {
		return false, fmt.Errorf("appending transition message: %w", err)
	}
	n.log.Info(ctx, "transition message appended", "job_id", next.ID, "status", next.Status)

	if !observingChat {
		n.setUnread(ctx, true)
	}
	return true, nil
}

// Unread reports whether there are assistant messages the user has not seen.
func (n *Notifier) Unread() bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.unread
}

// ChatOpened clears the unread flag; call it when the chat view becomes active.
func (n *Notifier) ChatOpened(ctx context.Context) {
	n.setUnread(ctx, false)
}

// MarkUnread raises the unread flag. Setting it twice is the same as once.
func (n *Notifier) MarkUnread(ctx context.Context) {
	n.setUnread(ctx, true)
}

func (n *Notifier) setUnread(ctx context.Context, v bool) {
	n.mu.Lock()
	changed := n.unread != v
	n.unread = v
	n.mu.Unlock()

	if !changed || n.flags == nil {
		return
	}
	val := "0"
	if v {
		val = "1"
	}
	if err := n.flags.Set(ctx, unreadKey, val); err != nil {
		n.log.Warn(ctx, "cannot persist unread flag", "error", err)
	}
}
