package genai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/jobtracker/internal/client/models"
	"github.com/google/uuid"
)

// parsedResume mirrors the JSON shape requested in the parse_resume prompt.
// Every field is optional.
type parsedResume struct {
	FullName   string                 `json:"fullName"`
	Email      string                 `json:"email"`
	Phone      string                 `json:"phone"`
	Summary    string                 `json:"summary"`
	Skills     flexString             `json:"skills"`
	Experience []models.ResumeEntry   `json:"experience"`
	Education  []models.ResumeEntry   `json:"education"`
	Projects   []models.ResumeProject `json:"projects"`
}

// flexString accepts either a string or a list of strings, joined by commas.
type flexString string

func (f *flexString) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*f = flexString(s)
		return nil
	}
	var list []string
	if err := json.Unmarshal(b, &list); err != nil {
		// unexpected shapes degrade to empty
		*f = ""
		return nil
	}
	*f = flexString(strings.Join(list, ", "))
	return nil
}

// ParseResume extracts text from the document and asks the model to
// structure it. Missing or malformed fields come back empty.
func (c *Client) ParseResume(ctx context.Context, data []byte, mimeType string) (models.Resume, error) {
	text, err := DocumentText(data, mimeType)
	if err != nil {
		return models.Resume{}, fmt.Errorf("reading resume: %w", err)
	}
	if text == "" {
		return models.Resume{}, fmt.Errorf("reading resume: %w", ErrEmptyResult)
	}

	user, err := render("parse_resume", c.prompts.ParseResume.User, struct{ Text string }{text})
	if err != nil {
		return models.Resume{}, err
	}
	reply, err := c.ask(ctx, c.prompts.ParseResume.System, user)
	if err != nil {
		return models.Resume{}, err
	}
	return DecodeResume(reply)
}

// DecodeResume turns a model reply into a resume. It tolerates code fences
// and text around the JSON object.
func DecodeResume(reply string) (models.Resume, error) {
	raw := extractJSONObject(reply)
	if raw == "" {
		return models.Resume{}, fmt.Errorf("decoding resume: no json object in reply")
	}
	var p parsedResume
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		return models.Resume{}, fmt.Errorf("decoding resume: %w", err)
	}

	r := models.DefaultResume()
	r.FullName = strings.TrimSpace(p.FullName)
	r.Email = strings.TrimSpace(p.Email)
	r.Phone = strings.TrimSpace(p.Phone)
	r.Summary = strings.TrimSpace(p.Summary)
	r.Skills = strings.TrimSpace(string(p.Skills))
	r.Experience = withEntryIDs(p.Experience)
	r.Education = withEntryIDs(p.Education)
	for _, pr := range p.Projects {
		if pr.ID == "" {
			pr.ID = uuid.NewString()
		}
		r.Projects = append(r.Projects, pr)
	}
	return r, nil
}

func withEntryIDs(in []models.ResumeEntry) []models.ResumeEntry {
	out := make([]models.ResumeEntry, 0, len(in))
	for _, e := range in {
		if e.ID == "" {
			e.ID = uuid.NewString()
		}
		out = append(out, e)
	}
	return out
}

func extractJSONObject(s string) string {
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start < 0 || end <= start {
		return ""
	}
	return s[start : end+1]
}
