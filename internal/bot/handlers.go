package bot

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Кнопки главного меню
const (
	btnPlan     = "📋 My Plan"
	btnWorkout  = "🏋 Start Workout"
	btnProgress = "📈 Progress"
	btnLearn    = "📚 Learn"
	btnQuote    = "🧘 Daily Quote"
	btnCancel   = "Cancel"
)

// handleCommand обрабатывает команды
func (b *Bot) handleCommand(message *tgbotapi.Message) {
	chatID := message.Chat.ID

	switch message.Command() {
	case "start":
		b.handleStart(message)
	case "plan":
		b.handleShowPlan(chatID)
	case "workout":
		b.handleWorkoutMenu(chatID)
	case "progress":
		b.handleProgress(chatID)
	case "learn":
		b.handleLearnMenu(chatID)
	case "quote":
		b.handleDailyQuote(chatID)
	case "regenerate":
		b.handleRegeneratePlan(chatID)
	case "calendar":
		b.handleCalendarExport(chatID)
	case "help":
		b.handleHelp(chatID)
	default:
		b.sendMessage(chatID, "Unknown command. Try /help")
	}
}

// handleMessage обрабатывает обычные сообщения по текущему состоянию диалога
func (b *Bot) handleMessage(message *tgbotapi.Message) {
	chatID := message.Chat.ID
	text := message.Text

	if text == btnCancel {
		clearState(chatID)
		clearOnboarding(chatID)
		clearWorkoutSession(chatID)
		b.sendMessageWithKeyboard(chatID, "Cancelled.", mainMenuKeyboard())
		return
	}

	state := getState(chatID)
	switch {
	case isOnboardingState(state):
		b.handleOnboardingStep(chatID, state, text)
		return
	case state == stateWorkoutPick:
		b.handleWorkoutPicked(chatID, text)
		return
	case state == stateWorkoutActive:
		b.handleWorkoutStep(chatID, text)
		return
	case state == stateLearnPick:
		b.handleLearnPicked(chatID, text)
		return
	}

	switch text {
	case btnPlan:
		b.handleShowPlan(chatID)
	case btnWorkout:
		b.handleWorkoutMenu(chatID)
	case btnProgress:
		b.handleProgress(chatID)
	case btnLearn:
		b.handleLearnMenu(chatID)
	case btnQuote:
		b.handleDailyQuote(chatID)
	default:
		b.sendMessage(chatID, "I didn't get that. Use the menu below or /help")
	}
}

// handleStart приветствует клиента и запускает онбординг при первом заходе
func (b *Bot) handleStart(message *tgbotapi.Message) {
	chatID := message.Chat.ID
	b.rememberUser(chatID)

	if profile, ok := b.loadProfile(chatID); ok {
		b.sendMessageWithKeyboard(chatID,
			"Welcome back, "+profile.Name+"! Your plan is ready whenever you are.",
			mainMenuKeyboard())
		return
	}

	b.sendMessage(chatID,
		"Welcome to CoachBot! 💪\n\n"+
			"I build you a weekly workout plan, guide you through every session "+
			"and track your progress.\n\nLet's set you up - a few quick questions.")
	b.startOnboarding(chatID)
}

// handleHelp показывает список команд
func (b *Bot) handleHelp(chatID int64) {
	b.sendMessage(chatID,
		"/start - set up your profile\n"+
			"/plan - show your weekly plan\n"+
			"/regenerate - build a fresh plan\n"+
			"/workout - start a guided workout\n"+
			"/progress - XP, level and achievements\n"+
			"/learn - educational topics\n"+
			"/quote - today's mindset quote\n"+
			"/calendar - export your plan as an .ics file")
}
