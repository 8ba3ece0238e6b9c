package gamification

import (
	"testing"

	"coachbot/internal/models"
)

func hasAchievement(list []models.Achievement, id string) bool {
	for _, a := range list {
		if a.ID == id {
			return true
		}
	}
	return false
}

func TestCheckNewAchievements_FirstWorkout(t *testing.T) {
	stats := models.NewUserStats()
	stats.WorkoutsCompleted = 1

	unlocked := CheckNewAchievements(stats)
	if !hasAchievement(unlocked, "first_workout") {
		t.Error("first_workout not unlocked after 1 workout")
	}
}

func TestCheckNewAchievements_SkipsAlreadyUnlocked(t *testing.T) {
	stats := models.NewUserStats()
	stats.WorkoutsCompleted = 1
	stats.UnlockedAchievements = []string{"first_workout"}

	unlocked := CheckNewAchievements(stats)
	if hasAchievement(unlocked, "first_workout") {
		t.Error("first_workout returned although already unlocked")
	}
}

func TestCheckNewAchievements_StreakThresholds(t *testing.T) {
	stats := models.NewUserStats()
	stats.LongestStreak = 7

	unlocked := CheckNewAchievements(stats)
	if !hasAchievement(unlocked, "streak_3") {
		t.Error("streak_3 not unlocked with longest streak 7")
	}
	if !hasAchievement(unlocked, "streak_7") {
		t.Error("streak_7 not unlocked with longest streak 7")
	}
	if hasAchievement(unlocked, "streak_14") {
		t.Error("streak_14 unlocked too early")
	}
}

func TestCheckNewAchievements_Learning(t *testing.T) {
	stats := models.NewUserStats()
	stats.TopicsRead = 3

	unlocked := CheckNewAchievements(stats)
	if !hasAchievement(unlocked, "learning_3") {
		t.Error("learning_3 not unlocked after 3 topics")
	}
	if hasAchievement(unlocked, "learning_all") {
		t.Error("learning_all unlocked before reading every topic")
	}
}

func TestCheckNewAchievements_MultipleAtOnce(t *testing.T) {
	stats := models.NewUserStats()
	stats.WorkoutsCompleted = 5
	stats.LongestStreak = 3
	stats.ExercisesCompleted = 50

	unlocked := CheckNewAchievements(stats)
	if len(unlocked) < 4 {
		// first_workout, five_workouts, streak_3, exercises_50
		t.Errorf("unlocked %d achievements, want at least 4", len(unlocked))
	}
}

func TestCheckNewAchievements_PureAndIdempotentOnSnapshot(t *testing.T) {
	stats := models.NewUserStats()
	stats.WorkoutsCompleted = 10

	first := CheckNewAchievements(stats)
	second := CheckNewAchievements(stats)

	if len(first) != len(second) {
		t.Fatalf("repeated call on same snapshot differs: %d vs %d", len(first), len(second))
	}
	if len(stats.UnlockedAchievements) != 0 {
		t.Error("CheckNewAchievements mutated the snapshot")
	}
}

func TestCheckNewAchievements_EmptyStats(t *testing.T) {
	if unlocked := CheckNewAchievements(models.NewUserStats()); len(unlocked) != 0 {
		t.Errorf("zero stats unlocked %d achievements", len(unlocked))
	}
}
