package bot

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"coachbot/internal/catalog"
	"coachbot/internal/models"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Состояния ведомой тренировки
const (
	stateWorkoutPick   = "workout_pick"
	stateWorkoutActive = "workout_active"
)

// Кнопки тренировки
const (
	btnExerciseDone = "✅ Done"
	btnExerciseSkip = "⏭ Skip"
	btnFinishEarly  = "🏁 Finish"
)

// WorkoutSession хранит состояние текущей тренировки клиента
type WorkoutSession struct {
	Workout         models.Workout
	CurrentExercise int
	CompletedCount  int
	SkippedCount    int
	StartTime       time.Time
}

var workoutSessions = struct {
	sync.RWMutex
	sessions map[int64]*WorkoutSession
}{sessions: make(map[int64]*WorkoutSession)}

func getWorkoutSession(chatID int64) *WorkoutSession {
	workoutSessions.RLock()
	defer workoutSessions.RUnlock()
	return workoutSessions.sessions[chatID]
}

func setWorkoutSession(chatID int64, session *WorkoutSession) {
	workoutSessions.Lock()
	workoutSessions.sessions[chatID] = session
	workoutSessions.Unlock()
}

func clearWorkoutSession(chatID int64) {
	workoutSessions.Lock()
	delete(workoutSessions.sessions, chatID)
	workoutSessions.Unlock()
}

// handleWorkoutMenu предлагает выбрать тренировку из плана
func (b *Bot) handleWorkoutMenu(chatID int64) {
	plan, ok := b.loadPlan(chatID)
	if !ok {
		b.sendMessage(chatID, "No plan yet - run /start to set up your profile.")
		return
	}

	var rows [][]tgbotapi.KeyboardButton
	for i, w := range plan.Workouts {
		label := fmt.Sprintf("%s — %s [%d]", w.DayLabel, w.Title, i)
		rows = append(rows, tgbotapi.NewKeyboardButtonRow(tgbotapi.NewKeyboardButton(label)))
	}
	rows = append(rows, tgbotapi.NewKeyboardButtonRow(tgbotapi.NewKeyboardButton(btnCancel)))

	setState(chatID, stateWorkoutPick)
	b.sendMessageWithKeyboard(chatID, "Which workout is it today?", tgbotapi.NewReplyKeyboard(rows...))
}

// handleWorkoutPicked запускает выбранную тренировку
func (b *Bot) handleWorkoutPicked(chatID int64, text string) {
	plan, ok := b.loadPlan(chatID)
	if !ok {
		clearState(chatID)
		b.sendMessage(chatID, "No plan yet - run /start to set up your profile.")
		return
	}

	index := parseIndexFromBrackets(text)
	if index < 0 || index >= len(plan.Workouts) {
		b.sendMessage(chatID, "Please pick a workout with the buttons below.")
		return
	}

	session := &WorkoutSession{
		Workout:   plan.Workouts[index],
		StartTime: time.Now(),
	}
	setWorkoutSession(chatID, session)
	setState(chatID, stateWorkoutActive)

	b.sendMessage(chatID, fmt.Sprintf("🏋 %s — %s\n%d exercises. %s",
		session.Workout.Title, session.Workout.Focus,
		len(session.Workout.ExerciseIDs), catalog.RandomMantra()))
	b.sendCurrentExercise(chatID, session)
}

// handleWorkoutStep обрабатывает ответ по текущему упражнению
func (b *Bot) handleWorkoutStep(chatID int64, text string) {
	session := getWorkoutSession(chatID)
	if session == nil {
		clearState(chatID)
		b.sendMessageWithKeyboard(chatID, "No active workout.", mainMenuKeyboard())
		return
	}

	switch text {
	case btnExerciseDone:
		session.CompletedCount++
		session.CurrentExercise++
	case btnExerciseSkip:
		session.SkippedCount++
		session.CurrentExercise++
	case btnFinishEarly:
		b.finishWorkout(chatID, session)
		return
	default:
		b.sendMessage(chatID, "Use the buttons: Done, Skip or Finish.")
		return
	}

	if session.CurrentExercise >= len(session.Workout.ExerciseIDs) {
		b.finishWorkout(chatID, session)
		return
	}
	b.sendCurrentExercise(chatID, session)
}

// sendCurrentExercise показывает текущее упражнение с подсказкой
func (b *Bot) sendCurrentExercise(chatID int64, session *WorkoutSession) {
	id := session.Workout.ExerciseIDs[session.CurrentExercise]
	total := len(session.Workout.ExerciseIDs)

	var text string
	if exercise, ok := catalog.ExerciseByID(id); ok {
		text = fmt.Sprintf("Exercise %d/%d: %s\n\n%s",
			session.CurrentExercise+1, total, exercise.Name, exercise.Description)
	} else {
		// упражнения нет в каталоге - показываем сырой id
		text = fmt.Sprintf("Exercise %d/%d: %s", session.CurrentExercise+1, total, id)
	}

	b.sendMessageWithKeyboard(chatID, text, tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(btnExerciseDone),
			tgbotapi.NewKeyboardButton(btnExerciseSkip),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(btnFinishEarly),
		),
	))
}

// finishWorkout завершает тренировку и показывает итоги
func (b *Bot) finishWorkout(chatID int64, session *WorkoutSession) {
	clearWorkoutSession(chatID)
	clearState(chatID)

	summary := b.recorder.Complete(userID(chatID), session.Workout.ID, session.CompletedCount)

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("🎉 Workout complete! %s\n\n", catalog.RandomReflection()))
	sb.WriteString(fmt.Sprintf("Exercises done: %d", session.CompletedCount))
	if session.SkippedCount > 0 {
		sb.WriteString(fmt.Sprintf(" (skipped %d)", session.SkippedCount))
	}
	sb.WriteString(fmt.Sprintf("\nTime: %s\n", time.Since(session.StartTime).Round(time.Second)))
	sb.WriteString(fmt.Sprintf("Streak: %d day(s) 🔥\n", summary.Streak))
	sb.WriteString(fmt.Sprintf("XP earned: +%d\n", summary.XPEarned))

	for _, a := range summary.NewAchievements {
		sb.WriteString(fmt.Sprintf("\n%s Achievement unlocked: %s — %s (+%d XP)",
			a.Icon, a.Title, a.Description, a.XP))
	}
	if summary.LevelUp {
		sb.WriteString(fmt.Sprintf("\n\n⬆️ Level up! You are now level %d.", summary.NewLevel))
	}

	b.sendMessageWithKeyboard(chatID, sb.String(), mainMenuKeyboard())
}
