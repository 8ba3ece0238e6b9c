package bot

import (
	"time"

	"coachbot/internal/calendar"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// handleCalendarExport отправляет недельный план файлом .ics
func (b *Bot) handleCalendarExport(chatID int64) {
	plan, ok := b.loadPlan(chatID)
	if !ok {
		b.sendMessage(chatID, "No plan yet. Use /start to set up your profile first.")
		return
	}

	ics := calendar.GenerateICS(calendar.PlanEvents(plan, time.Now()))

	doc := tgbotapi.NewDocument(chatID, tgbotapi.FileBytes{
		Name:  "workouts.ics",
		Bytes: []byte(ics),
	})
	doc.Caption = "Add these to your calendar 📅"
	if _, err := b.api.Send(doc); err != nil {
		b.sendError(chatID, "Could not send the calendar file. Try again later.", err)
	}
}
