package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/jobtracker/internal/client/models"
)

// Chat opens the assistant view. With arguments it sends them as a single
// message and returns; without, it shows the history and reads messages
// until an empty line or /exit.
func (a *App) Chat(ctx context.Context, args []string) error {
	a.inChat.Store(true)
	defer a.inChat.Store(false)
	if a.notifier != nil {
		a.notifier.ChatOpened(ctx)
	}

	if len(args) > 0 {
		return a.sendChat(ctx, strings.Join(args, " "))
	}

	history, err := a.chat.History(ctx)
	if err != nil {
		return a.report(ctx, "error loading chat", err)
	}
	for _, m := range history {
		printlnFn(formatMessage(m))
	}
	printlnFn("(empty line or /exit to leave the chat)")

	for {
		text, err := GetSimpleText(a.reader, "you", a.out)
		if err != nil || text == "" || text == "/exit" {
			return nil
		}
		if err := a.sendChat(ctx, text); err != nil {
			return err
		}
	}
}

func (a *App) sendChat(ctx context.Context, text string) error {
	reply, err := a.chat.Send(ctx, text)
	if err != nil {
		return a.report(ctx, "error sending message", err)
	}
	printlnFn(formatMessage(reply))
	return nil
}

func formatMessage(m models.Message) string {
	who := "you"
	if m.Role == models.RoleModel {
		who = "assistant"
	}
	return fmt.Sprintf("[%s] %s: %s", m.CreatedAt.Local().Format("Jan 2 15:04"), who, m.Text)
}
