package bot

import (
	"encoding/json"
	"log"
	"strconv"
	"strings"

	"coachbot/internal/models"
	"coachbot/internal/storage"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// sendError sends error message to user and logs it
func (b *Bot) sendError(chatID int64, userMessage string, err error) {
	if err != nil {
		log.Printf("Error [chat=%d]: %v", chatID, err)
	}
	msg := tgbotapi.NewMessage(chatID, userMessage)
	if _, sendErr := b.api.Send(msg); sendErr != nil {
		log.Printf("Failed to send error message [chat=%d]: %v", chatID, sendErr)
	}
}

// sendMessage sends message to user with error logging
func (b *Bot) sendMessage(chatID int64, text string) error {
	msg := tgbotapi.NewMessage(chatID, text)
	_, err := b.api.Send(msg)
	if err != nil {
		log.Printf("Failed to send message [chat=%d]: %v", chatID, err)
	}
	return err
}

// sendMessageWithKeyboard sends message with keyboard
func (b *Bot) sendMessageWithKeyboard(chatID int64, text string, keyboard tgbotapi.ReplyKeyboardMarkup) error {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ReplyMarkup = keyboard
	_, err := b.api.Send(msg)
	if err != nil {
		log.Printf("Failed to send message with keyboard [chat=%d]: %v", chatID, err)
	}
	return err
}

// setState sets user state with proper locking
func setState(chatID int64, state string) {
	userStates.Lock()
	userStates.states[chatID] = state
	userStates.Unlock()
}

// getState gets user state with proper locking
func getState(chatID int64) string {
	userStates.RLock()
	defer userStates.RUnlock()
	return userStates.states[chatID]
}

// clearState clears user state
func clearState(chatID int64) {
	userStates.Lock()
	delete(userStates.states, chatID)
	userStates.Unlock()
}

// parseIndexFromBrackets extracts index from text like "Mon — Full Body A [2]"
func parseIndexFromBrackets(text string) int {
	start := strings.LastIndex(text, "[")
	end := strings.LastIndex(text, "]")
	if start == -1 || end == -1 || start >= end {
		return -1
	}
	i, err := strconv.Atoi(text[start+1 : end])
	if err != nil {
		return -1
	}
	return i
}

// mainMenuKeyboard - постоянная клавиатура главного меню
func mainMenuKeyboard() tgbotapi.ReplyKeyboardMarkup {
	kb := tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(btnPlan),
			tgbotapi.NewKeyboardButton(btnWorkout),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(btnProgress),
			tgbotapi.NewKeyboardButton(btnLearn),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(btnQuote),
		),
	)
	kb.ResizeKeyboard = true
	return kb
}

// userID возвращает идентификатор клиента бота в keyspace хранилища
func userID(chatID int64) string {
	return storage.TelegramUserID(chatID)
}

// loadProfile загружает анкету клиента; ok=false если анкеты нет
func (b *Bot) loadProfile(chatID int64) (models.UserProfile, bool) {
	raw, ok, err := b.store.Get(storage.ProfileKey(userID(chatID)))
	if err != nil {
		log.Printf("Failed to load profile [chat=%d]: %v", chatID, err)
		return models.UserProfile{}, false
	}
	if !ok {
		return models.UserProfile{}, false
	}

	var profile models.UserProfile
	if err := json.Unmarshal([]byte(raw), &profile); err != nil {
		log.Printf("Corrupt profile [chat=%d]: %v", chatID, err)
		return models.UserProfile{}, false
	}
	return profile, true
}

// saveProfile сохраняет анкету клиента
func (b *Bot) saveProfile(chatID int64, profile models.UserProfile) {
	data, err := json.Marshal(profile)
	if err != nil {
		log.Printf("Failed to marshal profile [chat=%d]: %v", chatID, err)
		return
	}
	if err := b.store.Set(storage.ProfileKey(userID(chatID)), string(data)); err != nil {
		log.Printf("Failed to save profile [chat=%d]: %v", chatID, err)
	}
}

// loadPlan загружает недельный план; ok=false если плана нет
func (b *Bot) loadPlan(chatID int64) (models.WeeklyPlan, bool) {
	raw, ok, err := b.store.Get(storage.PlanKey(userID(chatID)))
	if err != nil {
		log.Printf("Failed to load plan [chat=%d]: %v", chatID, err)
		return models.WeeklyPlan{}, false
	}
	if !ok {
		return models.WeeklyPlan{}, false
	}

	var plan models.WeeklyPlan
	if err := json.Unmarshal([]byte(raw), &plan); err != nil {
		log.Printf("Corrupt plan [chat=%d]: %v", chatID, err)
		return models.WeeklyPlan{}, false
	}
	return plan, true
}

// savePlan сохраняет недельный план (всегда заменяется целиком)
func (b *Bot) savePlan(chatID int64, plan models.WeeklyPlan) {
	data, err := json.Marshal(plan)
	if err != nil {
		log.Printf("Failed to marshal plan [chat=%d]: %v", chatID, err)
		return
	}
	if err := b.store.Set(storage.PlanKey(userID(chatID)), string(data)); err != nil {
		log.Printf("Failed to save plan [chat=%d]: %v", chatID, err)
	}
}
