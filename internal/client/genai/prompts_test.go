package genai

import (
	"testing"

	"github.com/dmitrijs2005/jobtracker/internal/client/models"
	"github.com/stretchr/testify/require"
)

func TestLoadPrompts_Embedded(t *testing.T) {
	p, err := LoadPrompts(nil)
	require.NoError(t, err)
	require.NotEmpty(t, p.CoverLetter.System)
	require.NotEmpty(t, p.InterviewGuide.User)
	require.NotEmpty(t, p.ParseResume.System)
	require.NotEmpty(t, p.Avatar.User)
	require.NotEmpty(t, p.Chat.System)
}

func TestLoadPrompts_Custom(t *testing.T) {
	p, err := LoadPrompts([]byte(`
cover_letter: {system: s, user: "CL for {{.Job.Company}}"}
interview_guide: {system: s, user: u}
parse_resume: {system: s, user: u}
`))
	require.NoError(t, err)

	out, err := render("cl", p.CoverLetter.User, jobPromptData{Job: models.Job{Company: "Acme"}})
	require.NoError(t, err)
	require.Equal(t, "CL for Acme", out)
}

func TestLoadPrompts_Invalid(t *testing.T) {
	_, err := LoadPrompts([]byte("cover_letter: [unterminated"))
	require.Error(t, err)

	_, err = LoadPrompts([]byte("chat: {system: s}"))
	require.Error(t, err)
}

func TestRender_BadTemplate(t *testing.T) {
	_, err := render("x", "{{.Nope", nil)
	require.Error(t, err)
}

func TestChatPrompt_NoJobs(t *testing.T) {
	p, err := LoadPrompts(nil)
	require.NoError(t, err)
	out, err := render("chat", p.Chat.System, struct{ Jobs []models.Job }{})
	require.NoError(t, err)
	require.Contains(t, out, "no job records yet")
}
