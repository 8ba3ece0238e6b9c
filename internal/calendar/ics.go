package calendar

import (
	"fmt"
	"strings"
	"time"

	"coachbot/internal/catalog"
	"coachbot/internal/models"

	"github.com/google/uuid"
)

// Event представляет событие календаря
type Event struct {
	UID         string
	Summary     string
	Description string
	StartTime   time.Time
	EndTime     time.Time
	Reminder    int // минут до события
}

var dayOffsets = map[string]int{
	"Mon": 0, "Tue": 1, "Wed": 2, "Thu": 3, "Fri": 4, "Sat": 5, "Sun": 6,
}

// PlanEvents превращает недельный план в события ближайшей недели.
// Каждая тренировка получает час в 18:00 своего дня, начиная с
// ближайшего понедельника.
func PlanEvents(plan models.WeeklyPlan, from time.Time) []Event {
	monday := nextMonday(from)

	events := make([]Event, 0, len(plan.Workouts))
	for _, w := range plan.Workouts {
		offset, ok := dayOffsets[w.DayLabel]
		if !ok {
			continue
		}
		day := monday.AddDate(0, 0, offset)
		start := time.Date(day.Year(), day.Month(), day.Day(), 18, 0, 0, 0, from.Location())

		var lines []string
		for i, id := range w.ExerciseIDs {
			lines = append(lines, fmt.Sprintf("%d. %s", i+1, catalog.ExerciseName(id)))
		}

		events = append(events, Event{
			UID:         uuid.New().String(),
			Summary:     fmt.Sprintf("Workout: %s (%s)", w.Title, w.Focus),
			Description: strings.Join(lines, "\n"),
			StartTime:   start,
			EndTime:     start.Add(time.Hour),
			Reminder:    30,
		})
	}
	return events
}

func nextMonday(t time.Time) time.Time {
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	offset := (int(time.Monday) - int(day.Weekday()) + 7) % 7
	if offset == 0 {
		offset = 7
	}
	return day.AddDate(0, 0, offset)
}

// GenerateICS генерирует содержимое .ics файла для набора событий
func GenerateICS(events []Event) string {
	var sb strings.Builder

	sb.WriteString("BEGIN:VCALENDAR\r\n")
	sb.WriteString("VERSION:2.0\r\n")
	sb.WriteString("PRODID:-//CoachBot//Workout Calendar//EN\r\n")
	sb.WriteString("CALSCALE:GREGORIAN\r\n")
	sb.WriteString("METHOD:PUBLISH\r\n")
	sb.WriteString("X-WR-CALNAME:Workouts\r\n")

	for _, event := range events {
		sb.WriteString("BEGIN:VEVENT\r\n")
		sb.WriteString(fmt.Sprintf("UID:%s\r\n", event.UID))
		sb.WriteString(fmt.Sprintf("DTSTAMP:%s\r\n", formatICSTime(time.Now())))
		sb.WriteString(fmt.Sprintf("DTSTART:%s\r\n", formatICSTime(event.StartTime)))
		sb.WriteString(fmt.Sprintf("DTEND:%s\r\n", formatICSTime(event.EndTime)))
		sb.WriteString(fmt.Sprintf("SUMMARY:%s\r\n", escapeICS(event.Summary)))

		if event.Description != "" {
			sb.WriteString(fmt.Sprintf("DESCRIPTION:%s\r\n", escapeICS(event.Description)))
		}

		if event.Reminder > 0 {
			sb.WriteString("BEGIN:VALARM\r\n")
			sb.WriteString("ACTION:DISPLAY\r\n")
			sb.WriteString(fmt.Sprintf("TRIGGER:-PT%dM\r\n", event.Reminder))
			sb.WriteString("DESCRIPTION:Workout reminder\r\n")
			sb.WriteString("END:VALARM\r\n")
		}

		sb.WriteString("END:VEVENT\r\n")
	}

	sb.WriteString("END:VCALENDAR\r\n")

	return sb.String()
}

// formatICSTime форматирует время в формат iCalendar
func formatICSTime(t time.Time) string {
	return t.UTC().Format("20060102T150405Z")
}

// escapeICS экранирует специальные символы для iCalendar
func escapeICS(s string) string {
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, ";", "\\;")
	s = strings.ReplaceAll(s, ",", "\\,")
	s = strings.ReplaceAll(s, "\n", "\\n")
	return s
}
