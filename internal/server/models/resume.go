package models

import (
	"encoding/json"
	"time"
)

// Resume is a user's single resume document, kept as an opaque JSON body.
type Resume struct {
	UserID    string
	Data      json.RawMessage
	UpdatedAt time.Time
}
