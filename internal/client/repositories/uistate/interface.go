// Package uistate persists small pieces of client UI state, such as the
// assistant unread flag, in the local SQLite ui_state table.
package uistate

import (
	"context"
)

type Repository interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key string, value string) error
	Delete(ctx context.Context, key string) error
	List(ctx context.Context) (map[string]string, error)
}
