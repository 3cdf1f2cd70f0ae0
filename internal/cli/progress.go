package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/gnomegl/urlsx/internal/core"
)

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	subtleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

type StatusMsg struct {
	Checked int
	Total   int
}

type FoundMsg struct {
	URL string
}

type DoneMsg struct{}

type ProgressModel struct {
	spinner  spinner.Model
	progress progress.Model

	checked  int
	total    int
	foundURL string

	done     bool
	quitting bool
}

func NewProgressModel(total int) ProgressModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	p := progress.New(
		progress.WithSolidFill("240"),
		progress.WithoutPercentage(),
	)
	p.Width = 40

	return ProgressModel{
		spinner:  s,
		progress: p,
		total:    total,
	}
}

func (m ProgressModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m ProgressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case StatusMsg:
		m.checked = msg.Checked
		m.total = msg.Total
		return m, nil

	case FoundMsg:
		m.foundURL = msg.URL
		return m, nil

	case DoneMsg:
		m.done = true
		return m, tea.Quit
	}

	return m, nil
}

func (m ProgressModel) View() string {
	if m.quitting || m.done {
		return ""
	}

	var b strings.Builder

	b.WriteString("\033[K")
	b.WriteString(m.spinner.View())
	b.WriteString(" ")

	if m.total > 0 {
		percent := float64(m.checked) / float64(m.total)
		b.WriteString(m.progress.ViewAs(percent))
		b.WriteString(fmt.Sprintf("  %d/%d", m.checked, m.total))
	}

	if m.foundURL != "" {
		b.WriteString(fmt.Sprintf("  %s %s", successStyle.Render("✓"), m.foundURL))
	}

	b.WriteString(fmt.Sprintf("  %s", subtleStyle.Render("(q: quit)")))

	return b.String()
}

// Quitting reports whether the user aborted the run from the UI.
func (m ProgressModel) Quitting() bool {
	return m.quitting
}

// TeaReporter forwards search progress into a running bubbletea program.
// Sends are fire-and-forget; a torn-down program just drops them.
type TeaReporter struct {
	program *tea.Program
}

func NewTeaReporter(program *tea.Program) *TeaReporter {
	return &TeaReporter{program: program}
}

func (r *TeaReporter) Report(checked, total int) {
	r.program.Send(StatusMsg{Checked: checked, Total: total})
}

func (r *TeaReporter) ReportFound(url string) {
	r.program.Send(FoundMsg{URL: url})
}

// LineSink overwrites a single terminal line with each update. It backs the
// plain-text bar when the interactive UI is disabled.
type LineSink struct {
	Out io.Writer
}

func (s *LineSink) Update(text string) error {
	if s.Out == nil {
		return nil
	}
	_, err := fmt.Fprintf(s.Out, "\r\033[K%s", text)
	return err
}

func FormatSummary(report *core.SearchReport, showDetails bool) string {
	var b strings.Builder

	if report.Found {
		b.WriteString(successStyle.Render("✓ FOUND"))
		b.WriteString(fmt.Sprintf(" | %s", infoStyle.Render(report.FoundURL)))
	} else {
		b.WriteString(subtleStyle.Render("✗ NOT FOUND"))
	}

	b.WriteString(fmt.Sprintf(" | checked %d/%d", report.Checked, report.Total))

	if showDetails {
		b.WriteString(fmt.Sprintf(" | dead %d", report.Dead))
		if report.Errors > 0 {
			b.WriteString(fmt.Sprintf(" | %s", errorStyle.Render(fmt.Sprintf("errors %d", report.Errors))))
		}
		b.WriteString(fmt.Sprintf(" | %.2fs", report.Elapsed))
	}

	return b.String()
}
