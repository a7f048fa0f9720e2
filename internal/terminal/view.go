// Package terminal renders a chat.Controller conversation as plain terminal output.
package terminal

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"

	"kamau.dev/portfolio/internal/catalog"
	"kamau.dev/portfolio/internal/chat"
	"kamau.dev/portfolio/internal/model"
)

var (
	userStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	assistantStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	dimStyle       = lipgloss.NewStyle().Faint(true)
	titleStyle     = lipgloss.NewStyle().Bold(true)
	panelStyle     = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("12")).
			Padding(0, 1)
)

const assistantName = "Newton"

// View writes conversation events to w. Reveal progress is printed as it arrives, so the
// reply appears to be typed.
type View struct {
	mu       sync.Mutex
	w        io.Writer
	printed  int // runes of the current reply already written
	activity chat.Activity
}

func NewView(w io.Writer) *View {
	return &View{w: w}
}

func (v *View) MessageAppended(e chat.Entry) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if e.Role == model.RoleUser {
		fmt.Fprintf(v.w, "%s %s\n", userStyle.Render("you ›"), e.Content)
		return
	}
	v.printed = 0
	fmt.Fprintf(v.w, "%s ", assistantStyle.Render(assistantName+" ›"))
}

func (v *View) RevealProgress(_ chat.Entry, prefix string) {
	v.mu.Lock()
	defer v.mu.Unlock()

	runes := []rune(prefix)
	if len(runes) <= v.printed {
		return
	}
	fmt.Fprint(v.w, string(runes[v.printed:]))
	v.printed = len(runes)
}

func (v *View) RevealDone(_ chat.Entry) {
	v.mu.Lock()
	defer v.mu.Unlock()
	fmt.Fprintln(v.w)
}

// RevealAborted ends the half-printed line so later output starts cleanly.
func (v *View) RevealAborted(_ chat.Entry) {
	v.mu.Lock()
	defer v.mu.Unlock()
	fmt.Fprintln(v.w)
}

func (v *View) PanelMounted(e chat.Entry) {
	v.mu.Lock()
	defer v.mu.Unlock()

	switch e.Panel {
	case chat.PanelProjects:
		fmt.Fprintln(v.w, RenderProjects(catalog.Projects()))
	case chat.PanelContact:
		fmt.Fprintln(v.w, RenderContact(catalog.ContactMethods()))
	}
}

func (v *View) ActivityChanged(a chat.Activity) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if a.Active && a.Listening && !v.activity.Listening {
		fmt.Fprintln(v.w, dimStyle.Render(Orb(a)+" thinking..."))
	}
	v.activity = a
}

// Greeting prints an assistant message without a reveal.
func (v *View) Greeting(e chat.Entry) {
	v.mu.Lock()
	defer v.mu.Unlock()
	fmt.Fprintf(v.w, "%s %s\n", assistantStyle.Render(assistantName+" ›"), e.Content)
}

// Orb is the one-glyph status indicator for a.
func Orb(a chat.Activity) string {
	switch {
	case a.Pulsing:
		return "◉"
	case a.Listening:
		return "◎"
	case a.Active:
		return "●"
	default:
		return "○"
	}
}

func RenderProjects(projects []catalog.Project) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Projects"))
	for _, p := range projects {
		b.WriteString("\n\n")
		b.WriteString(titleStyle.Render(p.Title))
		fmt.Fprintf(&b, " %s\n", dimStyle.Render(p.Category+" · "+p.Year))
		b.WriteString(p.Description)
		if len(p.Tech) > 0 {
			fmt.Fprintf(&b, "\n%s", dimStyle.Render(strings.Join(p.Tech, ", ")))
		}
		for _, a := range p.Achievements {
			fmt.Fprintf(&b, "\n • %s", a)
		}
	}
	return panelStyle.Render(b.String())
}

func RenderContact(methods []catalog.ContactMethod) string {
	width := 0
	for _, m := range methods {
		width = max(width, utf8.RuneCountInString(m.Label))
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Let's Connect!"))
	for _, m := range methods {
		fmt.Fprintf(&b, "\n%-*s  %s  %s", width, m.Label, m.Value, dimStyle.Render(m.Note))
	}
	b.WriteString("\n\n" + dimStyle.Render("Usually responds within 24 hours"))
	return panelStyle.Render(b.String())
}

// RenderStars is the header line for the repository star summary.
func RenderStars(totalStars, repoCount int) string {
	return dimStyle.Render(fmt.Sprintf("★ %d stars across %d public repos", totalStars, repoCount))
}

// RenderSuggestions lists questions numbered from 1.
func RenderSuggestions(questions []string) string {
	var b strings.Builder
	b.WriteString(dimStyle.Render("Try asking:"))
	for i, q := range questions {
		fmt.Fprintf(&b, "\n  %d. %s", i+1, q)
	}
	return b.String()
}
