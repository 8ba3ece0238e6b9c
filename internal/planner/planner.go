package planner

import (
	"fmt"
	"log"
	"time"

	"coachbot/internal/catalog"
	"coachbot/internal/models"
)

// schedules - раскладка тренировочных дней по количеству тренировок.
// Назначение позиционное: i-я тренировка получает i-й день.
var schedules = map[int][]string{
	3: {"Mon", "Wed", "Fri"},
	4: {"Mon", "Tue", "Thu", "Sat"},
	5: {"Mon", "Tue", "Thu", "Fri", "Sat"},
}

// Generate строит недельный план по анкете клиента.
// Состав тренировок детерминирован анкетой, варьируются
// только id плана и timestamp создания.
func Generate(profile models.UserProfile) models.WeeklyPlan {
	templates, known := catalog.Templates(profile.Equipment, profile.Goal)
	if !known {
		log.Printf("Unknown goal/equipment pair (%s, %s), using home/strength templates",
			profile.Equipment, profile.Goal)
	}

	count := 3
	if profile.Experience == models.ExperienceIntermediate {
		count = 5
	}

	workouts := expand(templates, count)
	for i := range workouts {
		workouts[i].ExerciseIDs = applyInjurySwaps(workouts[i].ExerciseIDs, profile.Injuries)
	}

	now := time.Now()
	return models.WeeklyPlan{
		ID:        fmt.Sprintf("plan_%d", now.UnixMilli()),
		CreatedAt: now.UTC().Format(time.RFC3339),
		Workouts:  workouts,
	}
}

// expand расширяет 3 базовых шаблона до count тренировок,
// циклически повторяя их, и назначает дни из раскладки
func expand(templates []models.Workout, count int) []models.Workout {
	schedule, ok := schedules[count]
	if !ok {
		schedule = schedules[3]
	}

	workouts := make([]models.Workout, 0, count)
	for i := 0; i < count; i++ {
		w := templates[i%len(templates)]
		w.ID = fmt.Sprintf("%s_%d", w.ID, i)
		if i < len(schedule) {
			w.DayLabel = schedule[i]
		}
		// списки упражнений у расширенных копий независимы
		w.ExerciseIDs = append([]string(nil), w.ExerciseIDs...)
		workouts = append(workouts, w)
	}
	return workouts
}

// applyInjurySwaps заменяет противопоказанные упражнения.
// Замена поштучная, порядок и длина списка сохраняются.
func applyInjurySwaps(exerciseIDs []string, injuries []models.Injury) []string {
	if len(injuries) == 0 {
		return exerciseIDs
	}
	swapped := make([]string, len(exerciseIDs))
	for i, id := range exerciseIDs {
		swapped[i] = catalog.SwapForInjuries(id, injuries)
	}
	return swapped
}
