package gamification

import (
	"testing"

	"coachbot/internal/storage"
)

const testUser = "tg:100500"

func TestRecordWorkoutComplete_FirstWorkout(t *testing.T) {
	svc := NewService(storage.NewMemory())

	result := svc.RecordWorkoutComplete(testUser, 4, 1)

	// 25 + 4*5 = 45 базовых + 50 за first_workout
	if result.XPEarned != 95 {
		t.Errorf("XPEarned = %d, want 95", result.XPEarned)
	}
	if !hasAchievement(result.NewAchievements, "first_workout") {
		t.Error("first_workout not unlocked on first recorded workout")
	}
	if result.NewLevel != 1 || result.LevelUp {
		t.Errorf("unexpected level change: levelUp=%v newLevel=%d", result.LevelUp, result.NewLevel)
	}

	stats := svc.Stats(testUser)
	if stats.WorkoutsCompleted != 1 {
		t.Errorf("workoutsCompleted = %d, want 1", stats.WorkoutsCompleted)
	}
	if stats.ExercisesCompleted != 4 {
		t.Errorf("exercisesCompleted = %d, want 4", stats.ExercisesCompleted)
	}
	if stats.TotalXP != 95 {
		t.Errorf("totalXP = %d, want 95", stats.TotalXP)
	}
	if !stats.HasAchievement("first_workout") {
		t.Error("first_workout not persisted in unlockedAchievements")
	}
}

func TestRecordWorkoutComplete_LevelUp(t *testing.T) {
	svc := NewService(storage.NewMemory())

	// первая тренировка: 95 XP, уровень 1
	svc.RecordWorkoutComplete(testUser, 4, 1)
	// вторая: 25+20=45 XP, итого 140 - уровень 2
	result := svc.RecordWorkoutComplete(testUser, 4, 2)

	if !result.LevelUp {
		t.Error("expected a level up at 140 total XP")
	}
	if result.NewLevel != 2 {
		t.Errorf("NewLevel = %d, want 2", result.NewLevel)
	}
}

func TestRecordWorkoutComplete_StreakBookkeeping(t *testing.T) {
	svc := NewService(storage.NewMemory())

	svc.RecordWorkoutComplete(testUser, 3, 5)
	svc.RecordWorkoutComplete(testUser, 3, 2)

	stats := svc.Stats(testUser)
	if stats.CurrentStreak != 2 {
		t.Errorf("currentStreak = %d, want caller-supplied 2", stats.CurrentStreak)
	}
	if stats.LongestStreak != 5 {
		t.Errorf("longestStreak = %d, want 5 (monotonic max)", stats.LongestStreak)
	}
}

func TestRecordWorkoutComplete_StreakUnlocksSameCall(t *testing.T) {
	svc := NewService(storage.NewMemory())

	result := svc.RecordWorkoutComplete(testUser, 2, 3)
	if !hasAchievement(result.NewAchievements, "streak_3") {
		t.Error("streak_3 not unlocked in the same call that reached it")
	}
}

func TestRecordWorkoutComplete_AchievementUnlocksOnlyOnce(t *testing.T) {
	svc := NewService(storage.NewMemory())

	svc.RecordWorkoutComplete(testUser, 2, 1)
	result := svc.RecordWorkoutComplete(testUser, 2, 1)

	if hasAchievement(result.NewAchievements, "first_workout") {
		t.Error("first_workout unlocked twice")
	}
}

func TestRecordTopicRead_FirstAndRepeat(t *testing.T) {
	svc := NewService(storage.NewMemory())

	first := svc.RecordTopicRead(testUser, "chest")
	if !first.FirstRead {
		t.Error("first read not reported as first")
	}
	if first.XPEarned != 10 {
		t.Errorf("first read XP = %d, want 10", first.XPEarned)
	}

	repeat := svc.RecordTopicRead(testUser, "chest")
	if repeat.FirstRead {
		t.Error("repeated read reported as first")
	}
	if repeat.XPEarned != 0 || len(repeat.NewAchievements) != 0 {
		t.Errorf("repeated read must be a no-op, got xp=%d achievements=%d",
			repeat.XPEarned, len(repeat.NewAchievements))
	}

	stats := svc.Stats(testUser)
	if stats.TopicsRead != 1 {
		t.Errorf("topicsRead = %d, want 1", stats.TopicsRead)
	}
	if stats.TotalXP != 10 {
		t.Errorf("totalXP = %d, want 10", stats.TotalXP)
	}
}

func TestRecordTopicRead_LearningAchievement(t *testing.T) {
	svc := NewService(storage.NewMemory())

	svc.RecordTopicRead(testUser, "chest")
	svc.RecordTopicRead(testUser, "back")
	result := svc.RecordTopicRead(testUser, "legs")

	if !hasAchievement(result.NewAchievements, "learning_3") {
		t.Error("learning_3 not unlocked on the third topic")
	}
	// 10 + 50 бонуса
	if result.XPEarned != 60 {
		t.Errorf("XPEarned = %d, want 60", result.XPEarned)
	}
}

func TestAwardXP(t *testing.T) {
	svc := NewService(storage.NewMemory())

	result := svc.AwardXP(testUser, 150)
	if result.NewXP != 150 {
		t.Errorf("NewXP = %d, want 150", result.NewXP)
	}
	if !result.LevelUp || result.NewLevel != 2 {
		t.Errorf("expected level up to 2, got levelUp=%v newLevel=%d", result.LevelUp, result.NewLevel)
	}

	stats := svc.Stats(testUser)
	if stats.WorkoutsCompleted != 0 {
		t.Error("AwardXP must not touch counters")
	}
}

func TestService_LoadFailureDegradesToDefaults(t *testing.T) {
	store := storage.NewMemory()
	store.FailGets = true
	svc := NewService(store)

	stats := svc.Stats(testUser)
	if stats.TotalXP != 0 || stats.Level != 1 {
		t.Errorf("degraded stats = %+v, want zeroed defaults", stats)
	}

	// запись поверх недоступного load тоже не должна паниковать
	result := svc.RecordWorkoutComplete(testUser, 3, 1)
	if result.XPEarned != 40+50 {
		t.Errorf("XPEarned on degraded load = %d, want 90", result.XPEarned)
	}
}

func TestService_SaveFailureStillReturnsResult(t *testing.T) {
	store := storage.NewMemory()
	store.FailSets = true
	svc := NewService(store)

	result := svc.RecordWorkoutComplete(testUser, 4, 1)
	if result.XPEarned != 95 {
		t.Errorf("XPEarned with failing save = %d, want 95", result.XPEarned)
	}

	// сохранение не прошло - следующий вызов видит прежнее состояние
	stats := svc.Stats(testUser)
	if stats.WorkoutsCompleted != 0 {
		t.Errorf("stats persisted despite failing save: %+v", stats)
	}
}

func TestService_CorruptStatsDegradeToDefaults(t *testing.T) {
	store := storage.NewMemory()
	store.Set(storage.StatsKey(testUser), "{not json")
	svc := NewService(store)

	stats := svc.Stats(testUser)
	if stats.TotalXP != 0 || stats.Level != 1 {
		t.Errorf("corrupt record not degraded: %+v", stats)
	}
}

func TestService_UsersAreIsolated(t *testing.T) {
	svc := NewService(storage.NewMemory())

	svc.RecordWorkoutComplete("tg:1", 4, 1)
	other := svc.Stats("tg:2")

	if other.WorkoutsCompleted != 0 {
		t.Error("stats leaked between users")
	}
}
