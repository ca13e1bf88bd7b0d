package cli

import (
	"context"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/dmitrijs2005/jobtracker/internal/client/models"
	"github.com/dmitrijs2005/jobtracker/internal/filex"
	"github.com/google/uuid"
)

const maxUploadSize = 10 << 20

const resumeUsage = `Usage:
  resume [show]
  resume set <fullname|email|phone|summary|skills>
  resume add <experience|education|project>
  resume import <file.pdf|file.txt>
  resume avatar <image> [style...]
  resume avatar-url
  resume save`

// Resume dispatches the resume subcommands. Edits are saved by the
// autosaver once typing stops; `resume save` forces it.
func (a *App) Resume(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return a.showResume()
	}
	switch args[0] {
	case "show":
		return a.showResume()
	case "set":
		if len(args) < 2 {
			break
		}
		return a.setResumeField(ctx, args[1])
	case "add":
		if len(args) < 2 {
			break
		}
		return a.addResumeEntry(ctx, args[1])
	case "import":
		if len(args) < 2 {
			break
		}
		return a.importResume(ctx, args[1])
	case "avatar":
		if len(args) < 2 {
			break
		}
		return a.generateAvatar(ctx, args[1], strings.Join(args[2:], " "))
	case "avatar-url":
		url, err := a.resume.AvatarURL(ctx)
		if err != nil {
			return a.report(ctx, "error getting avatar url", err)
		}
		printlnFn(url)
		return nil
	case "save":
		if err := a.saver.Flush(ctx); err != nil {
			return a.report(ctx, "error saving resume", err)
		}
		printlnFn("Saved.")
		return nil
	}
	printlnFn(resumeUsage)
	return nil
}

func (a *App) showResume() error {
	r := a.resume.Current()
	if r.IsDefault() {
		printlnFn("Resume is empty. Use 'resume set', 'resume add' or 'resume import'.")
		return nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", valueOr(r.FullName, "(no name)"))
	for _, v := range []string{r.Email, r.Phone} {
		if v != "" {
			fmt.Fprintf(&b, "%s\n", v)
		}
	}
	if r.Summary != "" {
		fmt.Fprintf(&b, "\n%s\n", r.Summary)
	}
	if skills := r.SkillList(); len(skills) > 0 {
		fmt.Fprintf(&b, "\nSkills: %s\n", strings.Join(skills, ", "))
	}
	writeEntries(&b, "Experience", r.Experience)
	writeEntries(&b, "Education", r.Education)
	if len(r.Projects) > 0 {
		b.WriteString("\nProjects\n")
		for _, p := range r.Projects {
			fmt.Fprintf(&b, "  - %s", p.Name)
			if p.Technologies != "" {
				fmt.Fprintf(&b, " [%s]", p.Technologies)
			}
			b.WriteString("\n")
		}
	}
	if r.Avatar != "" {
		fmt.Fprintf(&b, "\nAvatar: %s\n", r.Avatar)
	}
	if a.saver != nil && a.saver.Pending() {
		b.WriteString("\n(unsaved changes)\n")
	}
	printlnFn(strings.TrimRight(b.String(), "\n"))
	return nil
}

func writeEntries(b *strings.Builder, title string, entries []models.ResumeEntry) {
	if len(entries) == 0 {
		return
	}
	fmt.Fprintf(b, "\n%s\n", title)
	for _, e := range entries {
		fmt.Fprintf(b, "  - %s, %s", e.Title, e.Company)
		if e.Date != "" {
			fmt.Fprintf(b, " (%s)", e.Date)
		}
		b.WriteString("\n")
	}
}

func valueOr(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

func (a *App) setResumeField(ctx context.Context, field string) error {
	cur := a.resume.Current()

	var (
		v   string
		err error
	)
	switch strings.ToLower(field) {
	case "fullname", "name":
		v, err = GetField(a.reader, "Full name", cur.FullName, a.out)
		if err == nil {
			a.resume.Edit(func(r *models.Resume) { r.FullName = v })
		}
	case "email":
		v, err = GetField(a.reader, "Email", cur.Email, a.out)
		if err == nil {
			a.resume.Edit(func(r *models.Resume) { r.Email = v })
		}
	case "phone":
		v, err = GetField(a.reader, "Phone", cur.Phone, a.out)
		if err == nil {
			a.resume.Edit(func(r *models.Resume) { r.Phone = v })
		}
	case "summary":
		v, err = GetMultiline(a.reader, "Summary", a.out)
		if err == nil {
			a.resume.Edit(func(r *models.Resume) { r.Summary = v })
		}
	case "skills":
		v, err = GetField(a.reader, "Skills (comma separated)", cur.Skills, a.out)
		if err == nil {
			a.resume.Edit(func(r *models.Resume) { r.Skills = v })
		}
	default:
		printlnFn(resumeUsage)
		return nil
	}
	if err != nil {
		return a.report(ctx, "input error", err)
	}
	return nil
}

func (a *App) addResumeEntry(ctx context.Context, kind string) error {
	kind = strings.ToLower(kind)
	switch kind {
	case "experience", "education":
		e := models.ResumeEntry{ID: uuid.NewString()}
		company := "Company"
		if kind == "education" {
			company = "School"
		}
		for _, f := range []struct {
			label string
			dst   *string
		}{
			{"Title", &e.Title},
			{company, &e.Company},
			{"Date", &e.Date},
		} {
			v, err := GetSimpleText(a.reader, f.label, a.out)
			if err != nil {
				return a.report(ctx, "input error", err)
			}
			*f.dst = v
		}
		details, err := GetMultiline(a.reader, "Details", a.out)
		if err != nil {
			return a.report(ctx, "input error", err)
		}
		e.Details = details
		a.resume.Edit(func(r *models.Resume) {
			if kind == "education" {
				r.Education = append(r.Education, e)
			} else {
				r.Experience = append(r.Experience, e)
			}
		})

	case "project":
		p := models.ResumeProject{ID: uuid.NewString()}
		for _, f := range []struct {
			label string
			dst   *string
		}{
			{"Name", &p.Name},
			{"Technologies", &p.Technologies},
			{"Link", &p.Link},
		} {
			v, err := GetSimpleText(a.reader, f.label, a.out)
			if err != nil {
				return a.report(ctx, "input error", err)
			}
			*f.dst = v
		}
		desc, err := GetMultiline(a.reader, "Description", a.out)
		if err != nil {
			return a.report(ctx, "input error", err)
		}
		p.Description = desc
		a.resume.Edit(func(r *models.Resume) { r.Projects = append(r.Projects, p) })

	default:
		printlnFn(resumeUsage)
		return nil
	}
	printlnFn("Added.")
	return nil
}

func (a *App) importResume(ctx context.Context, path string) error {
	data, err := filex.ReadLimited(path, maxUploadSize)
	if err != nil {
		return a.report(ctx, "error reading file", err)
	}
	printlnFn("Reading resume...")
	if _, err := a.resume.Import(ctx, data, documentType(path, data)); err != nil {
		return a.report(ctx, "error importing resume", err)
	}
	return a.showResume()
}

// documentType picks the mime type for a resume file, trusting the
// extension over content sniffing for text formats.
func documentType(path string, data []byte) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		return "application/pdf"
	case ".txt", ".md":
		return "text/plain"
	}
	return http.DetectContentType(data)
}

func (a *App) generateAvatar(ctx context.Context, path, style string) error {
	img, err := filex.ReadLimited(path, maxUploadSize)
	if err != nil {
		return a.report(ctx, "error reading file", err)
	}
	ct := http.DetectContentType(img)
	if !strings.HasPrefix(ct, "image/") {
		return a.report(ctx, "input error", fmt.Errorf("%s is not an image (%s)", path, ct))
	}
	printlnFn("Generating avatar...")
	key, err := a.resume.GenerateAvatar(ctx, img, ct, style)
	if err != nil {
		return a.report(ctx, "error generating avatar", err)
	}
	printlnFn("Avatar stored as", key)
	return nil
}
