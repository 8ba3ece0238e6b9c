package bot

import (
	"fmt"
	"strings"

	"coachbot/internal/catalog"
	"coachbot/internal/gamification"
	"coachbot/internal/models"
)

// handleProgress показывает уровень, XP и достижения
func (b *Bot) handleProgress(chatID int64) {
	stats := b.gamify.Stats(userID(chatID))
	info := gamification.LevelFromXP(stats.TotalXP)

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("📈 Level %d — %s\n", info.Level, info.Title))
	sb.WriteString(fmt.Sprintf("%s %d/%d XP\n\n", progressBar(info.Progress, 10), stats.TotalXP, info.NextLevelXP))
	sb.WriteString(fmt.Sprintf("Workouts completed: %d\n", stats.WorkoutsCompleted))
	sb.WriteString(fmt.Sprintf("Exercises completed: %d\n", stats.ExercisesCompleted))
	sb.WriteString(fmt.Sprintf("Current streak: %d day(s)\n", stats.CurrentStreak))
	sb.WriteString(fmt.Sprintf("Longest streak: %d day(s)\n", stats.LongestStreak))
	sb.WriteString(fmt.Sprintf("Topics read: %d\n", stats.TopicsRead))

	sb.WriteString(fmt.Sprintf("\n🏆 Achievements (%d/%d)\n", len(stats.UnlockedAchievements), len(catalog.Achievements)))
	sb.WriteString(formatAchievements(stats))

	b.sendMessage(chatID, sb.String())
}

// formatAchievements перечисляет достижения: открытые с иконкой, закрытые с замком
func formatAchievements(stats models.UserStats) string {
	var sb strings.Builder
	for _, a := range catalog.Achievements {
		if stats.HasAchievement(a.ID) {
			sb.WriteString(fmt.Sprintf("%s %s — %s\n", a.Icon, a.Title, a.Description))
		} else {
			sb.WriteString(fmt.Sprintf("🔒 %s — %s\n", a.Title, a.Description))
		}
	}
	return sb.String()
}

// progressBar рисует текстовый прогресс-бар из width сегментов
func progressBar(progress float64, width int) string {
	if progress < 0 {
		progress = 0
	}
	if progress > 1 {
		progress = 1
	}
	filled := int(progress * float64(width))
	return strings.Repeat("▓", filled) + strings.Repeat("░", width-filled)
}
