package models

import (
	"reflect"
	"strings"
)

// ResumeEntry is one experience or education item.
type ResumeEntry struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Company string `json:"company"`
	Date    string `json:"date"`
	Details string `json:"details"`
}

type ResumeProject struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Technologies string `json:"technologies"`
	Link         string `json:"link"`
	Description  string `json:"description"`
}

// Resume is the per-user singleton document. It is never deleted, only overwritten.
type Resume struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Summary  string `json:"summary"`
	// Skills is comma-delimited free text.
	Skills     string          `json:"skills"`
	Experience []ResumeEntry   `json:"experience"`
	Education  []ResumeEntry   `json:"education"`
	Projects   []ResumeProject `json:"projects"`
	// Avatar is an object-storage key, empty when no avatar was generated.
	Avatar string `json:"avatar,omitempty"`
}

// DefaultResume is the untouched document a user starts with.
func DefaultResume() Resume {
	return Resume{
		Experience: []ResumeEntry{},
		Education:  []ResumeEntry{},
		Projects:   []ResumeProject{},
	}
}

// IsDefault reports whether r is still the untouched default document.
// Nil and empty sequences are treated alike.
func (r Resume) IsDefault() bool {
	return reflect.DeepEqual(r.normalized(), DefaultResume())
}

func (r Resume) normalized() Resume {
	if r.Experience == nil {
		r.Experience = []ResumeEntry{}
	}
	if r.Education == nil {
		r.Education = []ResumeEntry{}
	}
	if r.Projects == nil {
		r.Projects = []ResumeProject{}
	}
	return r
}

// Clone returns a deep copy so callers can mutate sequences freely.
func (r Resume) Clone() Resume {
	out := r
	out.Experience = append([]ResumeEntry(nil), r.Experience...)
	out.Education = append([]ResumeEntry(nil), r.Education...)
	out.Projects = append([]ResumeProject(nil), r.Projects...)
	return out.normalized()
}

// SkillList splits Skills on commas, dropping blanks.
func (r Resume) SkillList() []string {
	parts := strings.Split(r.Skills, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
