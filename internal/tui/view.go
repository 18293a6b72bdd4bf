package tui

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/pytutor/internal/ui/theme"
)

func (m Model) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	header := theme.Header.Width(m.width).Render(
		theme.Title.Render("pytutor") + theme.Subtitle.Render("  learn Python, one lesson at a time"))

	prompt := "> " + m.input.View()
	if m.waiting {
		prompt = theme.Hint.Render("thinking...")
	}

	footer := theme.Footer.Width(m.width).Render(
		theme.Hint.Render("Enter send · PgUp/PgDn scroll · /stats /prev /quiz /restart /certificate · Ctrl+C quit"))

	chromeHeight := lipgloss.Height(header) + lipgloss.Height(prompt) + lipgloss.Height(footer)
	bodyHeight := m.height - chromeHeight
	if bodyHeight < 0 {
		bodyHeight = 0
	}

	body := m.renderTranscript(bodyHeight)

	v.SetContent(strings.Join([]string{header, body, prompt, footer}, "\n"))
	return v
}

// renderTranscript lays out the chat tail, newest at the bottom, honoring
// the manual scroll offset.
func (m Model) renderTranscript(height int) string {
	var lines []string
	for _, l := range m.transcript {
		lines = append(lines, m.renderLine(l)...)
		lines = append(lines, "")
	}
	for i, c := range m.choices {
		lines = append(lines, theme.ChoiceNumber.Render(fmt.Sprintf("  %d.", i+1))+" "+c.Label)
	}

	// Scroll counts whole lines back from the newest.
	end := len(lines) - m.scroll
	if end < 0 {
		end = 0
	}
	start := end - height
	if start < 0 {
		start = 0
	}
	visible := lines[start:end]

	out := strings.Join(visible, "\n")
	for i := len(visible); i < height; i++ {
		out = "\n" + out
	}
	return out
}

func (m Model) renderLine(l chatLine) []string {
	width := m.width - 2
	if width < 10 {
		width = 10
	}

	var label string
	switch l.role {
	case roleTutor:
		label = theme.TutorLabel.Render("tutor")
	case roleStudent:
		label = theme.StudentLabel.Render("you")
	case roleSystem:
		label = theme.Hint.Render("note")
	}

	wrapped := lipgloss.NewStyle().Width(width).Render(l.text)
	lines := strings.Split(wrapped, "\n")
	if len(lines) > 0 {
		lines[0] = label + " " + lines[0]
		for i := 1; i < len(lines); i++ {
			lines[i] = "  " + lines[i]
		}
	}
	return lines
}
