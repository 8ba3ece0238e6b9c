package bot

import (
	"fmt"
	"time"

	"coachbot/internal/catalog"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

const stateLearnPick = "learn_pick"

// handleLearnMenu показывает список обучающих статей.
// Прочитанные помечаются галочкой.
func (b *Bot) handleLearnMenu(chatID int64) {
	read := make(map[string]bool)
	for _, id := range b.gamify.ReadTopics(userID(chatID)) {
		read[id] = true
	}

	var rows [][]tgbotapi.KeyboardButton
	for i, topic := range catalog.LearnTopics {
		mark := topic.Icon
		if read[topic.ID] {
			mark = "✅"
		}
		label := fmt.Sprintf("%s %s [%d]", mark, topic.Title, i)
		rows = append(rows, tgbotapi.NewKeyboardButtonRow(tgbotapi.NewKeyboardButton(label)))
	}
	rows = append(rows, tgbotapi.NewKeyboardButtonRow(tgbotapi.NewKeyboardButton(btnCancel)))

	setState(chatID, stateLearnPick)
	b.sendMessageWithKeyboard(chatID,
		"📚 Pick a topic. First read gives +10 XP.",
		tgbotapi.NewReplyKeyboard(rows...))
}

// handleLearnPicked отправляет статью и фиксирует прочтение
func (b *Bot) handleLearnPicked(chatID int64, text string) {
	index := parseIndexFromBrackets(text)
	if index < 0 || index >= len(catalog.LearnTopics) {
		b.sendMessage(chatID, "Please pick a topic with the buttons below.")
		return
	}
	topic := catalog.LearnTopics[index]

	clearState(chatID)
	b.sendMessageWithKeyboard(chatID,
		fmt.Sprintf("%s %s\n\n%s", topic.Icon, topic.Title, topic.Content),
		mainMenuKeyboard())

	result := b.gamify.RecordTopicRead(userID(chatID), topic.ID)
	if !result.FirstRead {
		return
	}

	reward := fmt.Sprintf("+%d XP for learning!", result.XPEarned)
	for _, a := range result.NewAchievements {
		reward += fmt.Sprintf("\n%s Achievement unlocked: %s (+%d XP)", a.Icon, a.Title, a.XP)
	}
	b.sendMessage(chatID, reward)
}

// handleDailyQuote показывает цитату дня
func (b *Bot) handleDailyQuote(chatID int64) {
	quote := catalog.DailyQuote(time.Now())
	b.sendMessage(chatID, fmt.Sprintf("🧘 \"%s\"\n\n— %s, %s", quote.Text, quote.Author, quote.Attribution))
}
