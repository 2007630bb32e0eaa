package usecase

import (
	"fmt"
	"strings"

	"todo-backend/internal/assist/domain"
	tododomain "todo-backend/internal/todo/domain"
)

// RenderAnalysisData flattens a statistics report into the plain-text block
// the provider embeds in its summarization prompt. Every number the model is
// allowed to mention comes from here.
func RenderAnalysisData(report *domain.StatisticsReport) string {
	var b strings.Builder

	b.WriteString("=== Basic statistics ===\n")
	fmt.Fprintf(&b, "- Total todos: %d\n", report.Total)
	fmt.Fprintf(&b, "- Completed: %d (%.1f%%)\n", report.Completed, report.CompletionRate)
	fmt.Fprintf(&b, "- Incomplete: %d\n", report.Incomplete)

	b.WriteString("\n=== Priority breakdown ===\n")
	for _, p := range report.Priorities {
		fmt.Fprintf(&b, "- %s priority: total %d (completed %d, %.1f%%)\n",
			p.Priority, p.Total, p.Completed, p.CompletionRate)
	}

	b.WriteString("\n=== Time management ===\n")
	fmt.Fprintf(&b, "- Todos with a due date: %d\n", report.WithDueDate)
	fmt.Fprintf(&b, "- Due-date compliance rate: %.1f%% (%d/%d)\n",
		report.ComplianceRate, report.OnTimeCompleted, report.WithDueDate)
	fmt.Fprintf(&b, "- Currently overdue: %d%s\n", len(report.Overdue), titleList(report.Overdue))
	fmt.Fprintf(&b, "- Completed after their due date: %d\n", len(report.LateButDone))

	b.WriteString("\n=== Time-of-day concentration ===\n")
	for _, slot := range report.TimeSlots {
		fmt.Fprintf(&b, "- %s: %d (completed %d, %.1f%%)\n",
			slot.Name, slot.Total, slot.Completed, completionRate(slot.Completed, slot.Total))
	}
	if report.BusiestSlot != "" {
		fmt.Fprintf(&b, "- Busiest time slot: %s\n", report.BusiestSlot)
	}

	b.WriteString("\n=== Category breakdown ===\n")
	for _, cat := range report.Categories {
		fmt.Fprintf(&b, "- %s: total %d (completed %d, %.1f%%)\n",
			cat.Name, cat.Total, cat.Completed, completionRate(cat.Completed, cat.Total))
	}

	b.WriteString("\n=== Productivity patterns ===\n")
	fmt.Fprintf(&b, "- Highest completion-rate category: %s\n", report.BestCategory)
	fmt.Fprintf(&b, "- Highest completion-rate priority: %s\n", report.BestPriority)
	if report.Period == domain.PeriodWeek && len(report.Weekdays) > 0 {
		b.WriteString("- Weekday distribution:\n")
		for _, day := range report.Weekdays {
			fmt.Fprintf(&b, "  - %s: %d (completed %d)\n", day.Name, day.Total, day.Completed)
		}
	}

	b.WriteString("\n=== Urgent work ===\n")
	fmt.Fprintf(&b, "- Incomplete high-priority todos: %d%s\n", len(report.Urgent), titleList(report.Urgent))

	return b.String()
}

// RenderTodoList writes one detail line per todo for the prompt
func RenderTodoList(todos []*tododomain.Todo) string {
	var b strings.Builder
	for i, t := range todos {
		status := "[open]"
		if t.Completed {
			status = "[done]"
		}
		due := "no due date"
		if t.DueDate != nil {
			due = t.DueDate.Format("2006-01-02 15:04")
		}
		category := t.Category
		if category == "" {
			category = uncategorizedLabel
		}
		fmt.Fprintf(&b, "%d. %s %s (priority: %s, category: %s, due: %s", i+1, status, t.Title, t.Priority, category, due)
		if t.Description != "" {
			desc := t.Description
			if len([]rune(desc)) > 50 {
				desc = string([]rune(desc)[:50])
			}
			fmt.Fprintf(&b, ", description: %s", desc)
		}
		b.WriteString(")\n")
	}
	return b.String()
}

func titleList(todos []*tododomain.Todo) string {
	if len(todos) == 0 {
		return ""
	}
	titles := make([]string, len(todos))
	for i, t := range todos {
		titles[i] = t.Title
	}
	return " (" + strings.Join(titles, ", ") + ")"
}
