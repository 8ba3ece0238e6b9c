package session

import (
	"encoding/json"
	"log"
	"time"

	"coachbot/internal/gamification"
	"coachbot/internal/models"
	"coachbot/internal/storage"
)

// Recorder фиксирует завершённые тренировки: ведёт журнал,
// считает серию и отчитывается движку геймификации
type Recorder struct {
	store  storage.Store
	gamify *gamification.Service
}

// NewRecorder создаёт оркестратор завершения тренировок
func NewRecorder(store storage.Store, gamify *gamification.Service) *Recorder {
	return &Recorder{store: store, gamify: gamify}
}

// Summary - итог завершённой тренировки для показа клиенту
type Summary struct {
	Streak          int                  `json:"streak"`
	XPEarned        int                  `json:"xpEarned"`
	NewAchievements []models.Achievement `json:"newAchievements"`
	LevelUp         bool                 `json:"levelUp"`
	NewLevel        int                  `json:"newLevel"`
}

// Complete записывает завершение тренировки: дописывает журнал,
// пересчитывает серию по журналу вместе с новой записью и
// прогоняет результат через геймификацию
func (r *Recorder) Complete(userID, workoutID string, exerciseCount int) Summary {
	now := time.Now()

	completed := r.History(userID)
	completed = append(completed, models.CompletedWorkout{
		WorkoutID:     workoutID,
		CompletedAt:   now,
		ExerciseCount: exerciseCount,
	})
	r.saveHistory(userID, completed)

	streak := Streak(completed, now)
	result := r.gamify.RecordWorkoutComplete(userID, exerciseCount, streak)

	return Summary{
		Streak:          streak,
		XPEarned:        result.XPEarned,
		NewAchievements: result.NewAchievements,
		LevelUp:         result.LevelUp,
		NewLevel:        result.NewLevel,
	}
}

// History возвращает журнал завершённых тренировок.
// Недоступное хранилище деградирует до пустого журнала.
func (r *Recorder) History(userID string) []models.CompletedWorkout {
	raw, ok, err := r.store.Get(storage.CompletedKey(userID))
	if err != nil {
		log.Printf("Failed to load workout history [user=%s]: %v", userID, err)
		return nil
	}
	if !ok {
		return nil
	}

	var completed []models.CompletedWorkout
	if err := json.Unmarshal([]byte(raw), &completed); err != nil {
		log.Printf("Corrupt workout history [user=%s]: %v", userID, err)
		return nil
	}
	return completed
}

func (r *Recorder) saveHistory(userID string, completed []models.CompletedWorkout) {
	data, err := json.Marshal(completed)
	if err != nil {
		log.Printf("Failed to marshal workout history [user=%s]: %v", userID, err)
		return
	}
	if err := r.store.Set(storage.CompletedKey(userID), string(data)); err != nil {
		log.Printf("Failed to save workout history [user=%s]: %v", userID, err)
	}
}
