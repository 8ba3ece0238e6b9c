package bot

import (
	"encoding/json"
	"log"
	"strconv"
	"time"

	"coachbot/internal/catalog"

	"github.com/robfig/cron"
)

const knownUsersKey = "bot:known_chats"

// rememberUser добавляет чат в список для утренних напоминаний
func (b *Bot) rememberUser(chatID int64) {
	chats := b.knownChats()
	for _, id := range chats {
		if id == chatID {
			return
		}
	}
	chats = append(chats, chatID)

	data, err := json.Marshal(chats)
	if err != nil {
		log.Printf("Failed to marshal known chats: %v", err)
		return
	}
	if err := b.store.Set(knownUsersKey, string(data)); err != nil {
		log.Printf("Failed to save known chats: %v", err)
	}
}

func (b *Bot) knownChats() []int64 {
	raw, ok, err := b.store.Get(knownUsersKey)
	if err != nil {
		log.Printf("Failed to load known chats: %v", err)
		return nil
	}
	if !ok {
		return nil
	}
	var chats []int64
	if err := json.Unmarshal([]byte(raw), &chats); err != nil {
		log.Printf("Failed to parse known chats: %v", err)
		return nil
	}
	return chats
}

// startReminders запускает планировщик утренних напоминаний.
// Напоминание получают только пользователи с готовым планом.
func (b *Bot) startReminders() {
	c := cron.New()
	err := c.AddFunc(b.config.ReminderCron, func() {
		b.sendReminders()
	})
	if err != nil {
		log.Printf("Failed to schedule reminders: %v", err)
		return
	}
	c.Start()
	log.Printf("Reminder scheduler started: %s", b.config.ReminderCron)
}

func (b *Bot) sendReminders() {
	quote := catalog.DailyQuote(time.Now())
	for _, chatID := range b.knownChats() {
		plan, ok := b.loadPlan(chatID)
		if !ok || len(plan.Workouts) == 0 {
			continue
		}
		text := "🌅 Good morning! Your plan is waiting.\n\n" +
			"🧘 \"" + quote.Text + "\" — " + quote.Author + "\n\n" +
			"Today: " + strconv.Itoa(len(plan.Workouts)) + " workouts this week. Tap 🏋 Start Workout when you're ready."
		b.sendMessage(chatID, text)
	}
}
