package gamification

import (
	"coachbot/internal/catalog"
	"coachbot/internal/models"
)

// CheckNewAchievements возвращает достижения, условия которых выполнены
// по снимку статистики, но которые ещё не разблокированы. Чистый предикат:
// снимок не мутируется, дописать id в unlockedAchievements обязан вызывающий.
func CheckNewAchievements(stats models.UserStats) []models.Achievement {
	var unlocked []models.Achievement

	for _, a := range catalog.Achievements {
		if stats.HasAchievement(a.ID) {
			continue
		}

		var current int
		switch a.Type {
		case models.AchievementWorkouts:
			current = stats.WorkoutsCompleted
		case models.AchievementStreak:
			current = stats.LongestStreak
		case models.AchievementExercises:
			current = stats.ExercisesCompleted
		case models.AchievementLearning:
			current = stats.TopicsRead
		default:
			continue
		}

		if current >= a.Requirement {
			unlocked = append(unlocked, a)
		}
	}

	return unlocked
}
