package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"taskman/internal/output"
	"taskman/internal/service"
)

const (
	headerText  = "Task Manager"
	loadingText = "Loading tasks..."
	emptyText   = "No tasks yet. Create your first task!"
	helpInput   = "enter add • tab list • ctrl+c quit"
	helpList    = "↑/k up • ↓/j down • d done • x delete • r reload • a add • q quit"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).MarginBottom(1)
	errorStyle  = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ffffff")).
			Background(lipgloss.Color("#e74c3c")).
			Padding(0, 1)
	titleStyle       = lipgloss.NewStyle().Bold(true)
	doneTitleStyle   = lipgloss.NewStyle().Strikethrough(true).Faint(true)
	descriptionStyle = lipgloss.NewStyle().Faint(true).PaddingLeft(4)
	helpStyle        = lipgloss.NewStyle().Faint(true)
)

// statusStyle renders the status badge in the status colour.
func statusStyle(s service.Status) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("#ffffff")).
		Background(lipgloss.Color(s.Color())).
		Padding(0, 1)
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(headerStyle.Render(headerText))
	b.WriteString("\n")

	if msg := m.board.Err(); msg != "" {
		b.WriteString(errorStyle.Render(msg))
		b.WriteString("\n\n")
	}

	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	switch {
	case m.board.Loading():
		b.WriteString(loadingText)
	case m.board.Len() == 0:
		b.WriteString(emptyText)
	default:
		b.WriteString(m.renderTasks())
	}

	b.WriteString("\n\n")
	if m.focus == focusInput {
		b.WriteString(helpStyle.Render(helpInput))
	} else {
		b.WriteString(helpStyle.Render(helpList))
	}
	b.WriteString("\n")
	return b.String()
}

func (m Model) renderTasks() string {
	tasks := m.board.Tasks()
	lines := make([]string, 0, len(tasks))
	for i, t := range tasks {
		marker := "  "
		if m.focus == focusList && i == m.cursor {
			marker = "> "
		}

		title := output.NormalizeTitle(t.Title)
		if t.Status == service.StatusDone {
			title = doneTitleStyle.Render(title)
		} else {
			title = titleStyle.Render(title)
		}
		lines = append(lines, marker+title+"  "+statusStyle(t.Status).Render(string(t.Status)))

		if strings.TrimSpace(t.Description) != "" {
			lines = append(lines, descriptionStyle.Render(t.Description))
		}
	}
	return strings.Join(lines, "\n")
}
