package app

import (
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"go.trai.ch/antscan/internal/core/domain"
	"go.trai.ch/antscan/internal/ui/output"
	"go.trai.ch/antscan/internal/ui/style"
)

// printer writes command output with styles bound to its writer.
type printer struct {
	w      io.Writer
	name   lipgloss.Style
	detail lipgloss.Style
	def    lipgloss.Style
	ok     lipgloss.Style
	warn   lipgloss.Style
}

func newPrinter(w io.Writer) *printer {
	r := lipgloss.NewRenderer(w, termenv.WithProfile(output.ColorProfile()))
	return &printer{
		w:      w,
		name:   r.NewStyle().Inherit(style.TaskName),
		detail: r.NewStyle().Inherit(style.Detail),
		def:    r.NewStyle().Inherit(style.Default),
		ok:     r.NewStyle().Foreground(style.Green),
		warn:   r.NewStyle().Foreground(style.Yellow),
	}
}

func (p *printer) json(v any) error {
	enc := json.NewEncoder(p.w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// tasks prints one line per task: name, buildfile relative to root, command line.
func (p *printer) tasks(tasks []*domain.Task, root string) {
	if len(tasks) == 0 {
		_, _ = fmt.Fprintln(p.w, p.warn.Render(style.Warning+" no tasks found"))
		return
	}

	nameWidth := 0
	for _, t := range tasks {
		nameWidth = max(nameWidth, lipgloss.Width(t.Name))
	}

	files := make(map[string]struct{})
	for _, t := range tasks {
		files[t.File()] = struct{}{}
		name := p.name.Render(t.Name) + strings.Repeat(" ", nameWidth-lipgloss.Width(t.Name))
		_, _ = fmt.Fprintf(p.w, "%s %s  %s  %s\n",
			style.Dot,
			name,
			p.detail.Render(relativeTo(root, t.File())),
			t.Execution.String(),
		)
	}
	_, _ = fmt.Fprintln(p.w, p.ok.Render(fmt.Sprintf("%s %s from %s",
		style.Check, plural(len(tasks), "task"), plural(len(files), "buildfile"))))
}

// extraction prints the targets of one buildfile and the path that produced them.
func (p *printer) extraction(file string, e domain.Extraction) {
	_, _ = fmt.Fprintf(p.w, "%s %s\n", file, p.detail.Render("("+e.Source.String()+")"))
	if e.Source == domain.SourceEmpty {
		reason := "no targets"
		if e.Reason != nil {
			reason = e.Reason.Error()
		}
		_, _ = fmt.Fprintln(p.w, p.warn.Render("  "+style.Warning+" "+reason))
		return
	}

	for t := range e.Targets.All() {
		if t.DisplayName == t.InvocationName {
			_, _ = fmt.Fprintf(p.w, "  %s\n", t.DisplayName)
			continue
		}
		_, _ = fmt.Fprintf(p.w, "  %s %s %s\n", p.def.Render(t.DisplayName), style.Arrow, t.InvocationName)
	}
}

// changed prints the outcome of applying a batch of buildfile changes.
func (p *printer) changed(files []string, root string, taskCount int) {
	rel := make([]string, len(files))
	for i, f := range files {
		rel[i] = relativeTo(root, f)
	}
	_, _ = fmt.Fprintf(p.w, "%s %s %s\n",
		style.Tilde,
		p.detail.Render(strings.Join(rel, ", ")),
		p.ok.Render(fmt.Sprintf("%s %s", style.Arrow, plural(taskCount, "task"))),
	)
}

// taskDocument is a task as listed by `tasks --json`, keyed by its stable fingerprint.
type taskDocument struct {
	ID string `json:"id"`
	*domain.Task
}

func newTaskDocuments(tasks []*domain.Task) []taskDocument {
	docs := make([]taskDocument, len(tasks))
	for i, t := range tasks {
		docs[i] = taskDocument{ID: t.Key(), Task: t}
	}
	return docs
}

type targetsDocument struct {
	File    string          `json:"file"`
	Source  string          `json:"source"`
	Reason  string          `json:"reason,omitempty"`
	Targets []domain.Target `json:"targets"`
}

func newTargetsDocument(file string, e domain.Extraction) targetsDocument {
	doc := targetsDocument{
		File:    file,
		Source:  e.Source.String(),
		Targets: make([]domain.Target, 0, e.Targets.Len()),
	}
	if e.Reason != nil {
		doc.Reason = e.Reason.Error()
	}
	for t := range e.Targets.All() {
		doc.Targets = append(doc.Targets, t)
	}
	return doc
}

func relativeTo(root, path string) string {
	rel, err := filepath.Rel(root, path)
	if err != nil || strings.HasPrefix(rel, "..") {
		return path
	}
	return filepath.ToSlash(rel)
}

func plural(n int, word string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", word)
	}
	return fmt.Sprintf("%d %ss", n, word)
}
