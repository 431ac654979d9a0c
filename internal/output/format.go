// Package output provides formatters for CLI output.
package output

import (
	"fmt"
	"io"
	"strings"

	"tasksync/internal/service"
)

// FormatTask formats a task line.
// Format: "{N:>4}  [x] {TITLE}\n" ("[ ]" for open tasks).
func FormatTask(w io.Writer, num int, task service.Task) {
	fmt.Fprintf(w, "%4d  %s %s\n", num, checkbox(task.Completed), normalizeTitle(task.Title))
}

// FormatTasks formats tasks numbered from 1 in the given order and
// returns how many lines were written. With openOnly, completed tasks are
// skipped but keep their number, so numbers match the unfiltered list.
func FormatTasks(w io.Writer, tasks []service.Task, openOnly bool) int {
	shown := 0
	for i, task := range tasks {
		if openOnly && task.Completed {
			continue
		}
		FormatTask(w, i+1, task)
		shown++
	}
	return shown
}

// FormatDetail formats a single task with its timestamps.
func FormatDetail(w io.Writer, task service.Task) {
	fmt.Fprintf(w, "id:        %d\n", task.ID)
	fmt.Fprintf(w, "title:     %s\n", normalizeTitle(task.Title))
	fmt.Fprintf(w, "completed: %t\n", task.Completed)
	if !task.CreatedAt.IsZero() {
		fmt.Fprintf(w, "created:   %s\n", task.CreatedAt.Local().Format("2006-01-02 15:04:05"))
	}
	if !task.UpdatedAt.IsZero() {
		fmt.Fprintf(w, "updated:   %s\n", task.UpdatedAt.Local().Format("2006-01-02 15:04:05"))
	}
}

func checkbox(completed bool) string {
	if completed {
		return "[x]"
	}
	return "[ ]"
}

// normalizeTitle normalizes a task title for display.
// - Empty or whitespace-only titles become "(untitled)"
// - Newlines are replaced with spaces
func normalizeTitle(title string) string {
	title = strings.ReplaceAll(title, "\r", " ")
	title = strings.ReplaceAll(title, "\n", " ")

	if strings.TrimSpace(title) == "" {
		return "(untitled)"
	}
	return title
}
