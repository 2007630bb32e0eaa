package usecase

import (
	"math"
	"time"

	"todo-backend/internal/assist/domain"
	tododomain "todo-backend/internal/todo/domain"
)

const uncategorizedLabel = "uncategorized"

// Fixed time-of-day buckets, assigned by the hour of the due time. The order
// here is the tie-break order for the busiest slot.
var timeSlotNames = []string{
	"morning (09:00-12:00)",
	"afternoon (12:00-18:00)",
	"evening (18:00-21:00)",
	"night (21:00-24:00)",
}

// AggregateStats computes the deterministic statistics report used as factual
// grounding for summarization. It never fails: every rate is zero-guarded and
// every grouping substitutes documented defaults for missing fields. now must
// be the request's captured clock.
func AggregateStats(todos []*tododomain.Todo, period domain.Period, now time.Time) *domain.StatisticsReport {
	report := &domain.StatisticsReport{
		Period: period,
		Total:  len(todos),
	}

	today := calendarDate(now)

	priorityOrder := []tododomain.Priority{
		tododomain.PriorityHigh,
		tododomain.PriorityMedium,
		tododomain.PriorityLow,
	}
	report.Priorities = make([]domain.PriorityBucket, len(priorityOrder))
	priorityIndex := make(map[tododomain.Priority]int, len(priorityOrder))
	for i, p := range priorityOrder {
		report.Priorities[i].Priority = p
		priorityIndex[p] = i
	}

	report.TimeSlots = make([]domain.TimeSlotStat, len(timeSlotNames))
	for i, name := range timeSlotNames {
		report.TimeSlots[i].Name = name
	}

	categoryIndex := make(map[string]int)
	weekdayIndex := make(map[string]int)

	for _, t := range todos {
		if t.Completed {
			report.Completed++
		} else {
			report.Incomplete++
		}

		pi, ok := priorityIndex[t.Priority]
		if !ok {
			pi = priorityIndex[tododomain.PriorityMedium]
		}
		bucket := &report.Priorities[pi]
		bucket.Total++
		if t.Completed {
			bucket.Completed++
		} else {
			bucket.Incomplete++
		}

		category := t.Category
		if category == "" {
			category = uncategorizedLabel
		}
		ci, ok := categoryIndex[category]
		if !ok {
			ci = len(report.Categories)
			categoryIndex[category] = ci
			report.Categories = append(report.Categories, domain.CategoryStat{Name: category})
		}
		report.Categories[ci].Total++
		if t.Completed {
			report.Categories[ci].Completed++
		}

		if t.Priority == tododomain.PriorityHigh && !t.Completed {
			report.Urgent = append(report.Urgent, t)
		}

		if t.DueDate == nil {
			continue
		}
		due := *t.DueDate
		report.WithDueDate++

		dueDay := calendarDate(due)
		completedDay := calendarDate(t.UpdatedAt)

		if t.Completed {
			if completedDay.After(dueDay) {
				report.LateButDone = append(report.LateButDone, t)
			} else {
				report.OnTimeCompleted++
			}
		} else if dueDay.Before(today) {
			report.Overdue = append(report.Overdue, t)
		}

		si := timeSlotIndex(due.Hour())
		report.TimeSlots[si].Total++
		if t.Completed {
			report.TimeSlots[si].Completed++
		}

		if period == domain.PeriodWeek {
			dayName := due.Weekday().String()
			wi, ok := weekdayIndex[dayName]
			if !ok {
				wi = len(report.Weekdays)
				weekdayIndex[dayName] = wi
				report.Weekdays = append(report.Weekdays, domain.WeekdayStat{Name: dayName})
			}
			report.Weekdays[wi].Total++
			if t.Completed {
				report.Weekdays[wi].Completed++
			}
		}
	}

	report.CompletionRate = completionRate(report.Completed, report.Total)
	for i := range report.Priorities {
		b := &report.Priorities[i]
		b.CompletionRate = completionRate(b.Completed, b.Total)
	}
	report.ComplianceRate = completionRate(report.OnTimeCompleted, report.WithDueDate)

	// Strictly-greater comparisons keep the first group on ties.
	maxSlotTotal := 0
	for _, slot := range report.TimeSlots {
		if slot.Total > maxSlotTotal {
			maxSlotTotal = slot.Total
			report.BusiestSlot = slot.Name
		}
	}

	report.BestCategory = "none"
	bestCategoryRate := -1.0
	for _, cat := range report.Categories {
		if cat.Total == 0 {
			continue
		}
		r := completionRate(cat.Completed, cat.Total)
		if r > bestCategoryRate {
			bestCategoryRate = r
			report.BestCategory = cat.Name
		}
	}

	report.BestPriority = "none"
	bestPriorityRate := -1.0
	for _, b := range report.Priorities {
		if b.Total == 0 {
			continue
		}
		if b.CompletionRate > bestPriorityRate {
			bestPriorityRate = b.CompletionRate
			report.BestPriority = string(b.Priority)
		}
	}

	return report
}

// completionRate returns completed/total as a percentage rounded to one
// decimal place, 0 when total is 0.
func completionRate(completed, total int) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(float64(completed)/float64(total)*1000) / 10
}

// calendarDate pins a moment to its calendar date, ignoring time-of-day and
// zone, so date comparisons are pure component comparisons.
func calendarDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// timeSlotIndex maps a due hour to its bucket; hours before 09:00 fall back
// to the morning bucket.
func timeSlotIndex(hour int) int {
	switch {
	case hour >= 12 && hour < 18:
		return 1
	case hour >= 18 && hour < 21:
		return 2
	case hour >= 21:
		return 3
	default:
		return 0
	}
}
