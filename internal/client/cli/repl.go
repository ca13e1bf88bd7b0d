package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/dmitrijs2005/jobtracker/internal/client/models"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	Apps(ctx context.Context) error
	Offers(ctx context.Context) error
	Add(ctx context.Context, origin models.Origin) error
	Show(ctx context.Context, id string) error
	Edit(ctx context.Context, id string) error
	SetStatus(ctx context.Context, id, status string) error
	Delete(ctx context.Context, id string) error
	Regen(ctx context.Context, id string) error
	Stats(ctx context.Context) error
	Refresh(ctx context.Context) error
	Resume(ctx context.Context, args []string) error
	Chat(ctx context.Context, args []string) error
}

const helpText = `Available commands:
  apps                     list applications
  offers                   list offers
  add | addoffer           create an application or an offer
  show <id>                show one record with its generated content
  edit <id>                edit a record field by field
  status <id> <status>     move a record to Applied, Interview, Offer, Accepted, Rejected or Draft
  delete <id>              delete a record
  regen <id>               regenerate the cover letter or interview guide
  stats                    applications per status
  resume [show|set|add|import|avatar|avatar-url]
  chat [message]           open the assistant, or send it one message
  refresh                  reload records from the server
  exit | quit`

// runREPL starts a simple read–eval–print loop for the jobtracker CLI.
//
// It reads a line from reader, parses the first token as the command, and
// dispatches to methods on 'a'. Ids may be given as a unique prefix. The loop
// exits on EOF or when the user types "exit" or "quit".
//
// Errors returned by command handlers are ignored here; handlers report
// their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("jt %s> ", statusFn()))
		line, err := reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help", "h":
			printlnFn(helpText)

		case "apps", "l", "list":
			_ = a.Apps(ctx)

		case "offers":
			_ = a.Offers(ctx)

		case "add":
			_ = a.Add(ctx, models.OriginApplication)

		case "addoffer":
			_ = a.Add(ctx, models.OriginOffer)

		case "show", "edit", "delete", "regen":
			if len(args) == 0 {
				printlnFn(fmt.Sprintf("Usage: %s <id>", cmd))
				continue
			}
			switch cmd {
			case "show":
				_ = a.Show(ctx, args[0])
			case "edit":
				_ = a.Edit(ctx, args[0])
			case "delete":
				_ = a.Delete(ctx, args[0])
			case "regen":
				_ = a.Regen(ctx, args[0])
			}

		case "status":
			if len(args) < 2 {
				printlnFn("Usage: status <id> <status>")
				continue
			}
			_ = a.SetStatus(ctx, args[0], args[1])

		case "stats":
			_ = a.Stats(ctx)

		case "refresh", "sync":
			_ = a.Refresh(ctx)

		case "resume":
			_ = a.Resume(ctx, args)

		case "chat":
			_ = a.Chat(ctx, args)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if err != nil {
			// last line had no newline
			return
		}
	}
}
