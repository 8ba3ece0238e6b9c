package bot

import (
	"fmt"
	"strings"

	"coachbot/internal/catalog"
	"coachbot/internal/models"
	"coachbot/internal/planner"
)

// handleShowPlan показывает текущий недельный план
func (b *Bot) handleShowPlan(chatID int64) {
	plan, ok := b.loadPlan(chatID)
	if !ok {
		if _, hasProfile := b.loadProfile(chatID); !hasProfile {
			b.sendMessage(chatID, "You don't have a profile yet - run /start first.")
			return
		}
		b.handleRegeneratePlan(chatID)
		return
	}

	b.sendMessage(chatID, formatPlan(plan))
}

// handleRegeneratePlan строит свежий план по сохранённой анкете.
// Старый план заменяется целиком.
func (b *Bot) handleRegeneratePlan(chatID int64) {
	profile, ok := b.loadProfile(chatID)
	if !ok {
		b.sendMessage(chatID, "You don't have a profile yet - run /start first.")
		return
	}

	plan := planner.Generate(profile)
	b.savePlan(chatID, plan)

	b.sendMessage(chatID, "Fresh plan coming up!\n\n"+formatPlan(plan))
}

// formatPlan форматирует недельный план для Telegram
func formatPlan(plan models.WeeklyPlan) string {
	var sb strings.Builder
	sb.WriteString("🗓 Your week\n")

	for _, w := range plan.Workouts {
		sb.WriteString(fmt.Sprintf("\n%s — %s (%s)\n", w.DayLabel, w.Title, w.Focus))
		for i, id := range w.ExerciseIDs {
			// неизвестный id показываем как есть
			sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, catalog.ExerciseName(id)))
		}
	}

	return sb.String()
}
