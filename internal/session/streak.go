package session

import (
	"sort"
	"time"

	"coachbot/internal/models"
)

// Streak считает текущую серию: количество подряд идущих дней
// с завершённой тренировкой, заканчивающихся сегодня или вчера.
// Дни считаются по локальной дате, несколько тренировок за день
// схлопываются в один. Если тренировки вообще есть, серия минимум 1.
func Streak(completed []models.CompletedWorkout, now time.Time) int {
	if len(completed) == 0 {
		return 1
	}

	days := make(map[time.Time]bool, len(completed))
	for _, w := range completed {
		days[truncateToDay(w.CompletedAt.In(now.Location()))] = true
	}

	unique := make([]time.Time, 0, len(days))
	for day := range days {
		unique = append(unique, day)
	}
	sort.Slice(unique, func(i, j int) bool { return unique[i].After(unique[j]) })

	streak := 0
	check := truncateToDay(now)
	for _, day := range unique {
		switch {
		case day.Equal(check) || day.Equal(check.AddDate(0, 0, -1)):
			streak++
			check = day
		case day.Before(check.AddDate(0, 0, -1)):
			return max1(streak)
		}
	}
	return max1(streak)
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func max1(n int) int {
	if n < 1 {
		return 1
	}
	return n
}
