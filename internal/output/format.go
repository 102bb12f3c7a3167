// Package output provides formatters for CLI output.
package output

import (
	"fmt"
	"io"
	"strings"

	"taskman/internal/service"
)

const (
	// EmptyMessage is printed when there are no tasks.
	EmptyMessage = "No tasks yet."

	// statusWidth fits the widest badge, "[IN_PROGRESS]".
	statusWidth = 13

	// descriptionIndent aligns descriptions under titles.
	descriptionIndent = 4 + 2 + statusWidth + 2
)

// FormatTask formats a task line.
// Format: "{N:>4}  {[STATUS]:<13}  {TITLE}\n", followed by the description on
// its own indented line when present.
func FormatTask(w io.Writer, num int, task service.Task) {
	fmt.Fprintf(w, "%4d  %-*s  %s\n", num, statusWidth, StatusBadge(task.Status), NormalizeTitle(task.Title))
	if desc := flatten(task.Description); strings.TrimSpace(desc) != "" {
		fmt.Fprintf(w, "%s%s\n", strings.Repeat(" ", descriptionIndent), desc)
	}
}

// FormatTasks formats a whole list, numbering from 1.
func FormatTasks(w io.Writer, tasks []service.Task) {
	if len(tasks) == 0 {
		fmt.Fprintln(w, EmptyMessage)
		return
	}
	for i, task := range tasks {
		FormatTask(w, i+1, task)
	}
}

// FormatTaskIDs formats "{ID}\t{STATUS}\t{TITLE}" lines for scripting.
func FormatTaskIDs(w io.Writer, tasks []service.Task) {
	for _, task := range tasks {
		fmt.Fprintf(w, "%s\t%s\t%s\n", task.ID, task.Status, NormalizeTitle(task.Title))
	}
}

// StatusBadge returns the bracketed status, e.g. "[DONE]".
func StatusBadge(s service.Status) string {
	if s == "" {
		return "[?]"
	}
	return "[" + string(s) + "]"
}

// NormalizeTitle normalizes a task title for display.
// - Empty or whitespace-only titles become "(untitled)"
// - Newlines are replaced with spaces
func NormalizeTitle(title string) string {
	title = flatten(title)
	if strings.TrimSpace(title) == "" {
		return "(untitled)"
	}
	return title
}

func flatten(s string) string {
	s = strings.ReplaceAll(s, "\r", " ")
	return strings.ReplaceAll(s, "\n", " ")
}
