package bot

import (
	"fmt"
	"strings"
	"sync"

	"coachbot/internal/models"
	"coachbot/internal/planner"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Состояния анкеты онбординга
const (
	stateOnbName       = "onb_name"
	stateOnbGoal       = "onb_goal"
	stateOnbEquipment  = "onb_equipment"
	stateOnbExperience = "onb_experience"
	stateOnbInjuries   = "onb_injuries"
)

// Кнопки анкеты
const (
	btnGoalStrength   = "💪 Strength"
	btnGoalFatLoss    = "🔥 Fat Loss"
	btnGoalMobility   = "🧘 Mobility"
	btnEquipHome      = "🏠 Home"
	btnEquipGym       = "🏋 Gym"
	btnExpBeginner    = "🌱 Beginner"
	btnExpIntermed    = "⚡ Intermediate"
	btnInjuryKnee     = "Knee"
	btnInjuryShoulder = "Shoulder"
	btnInjuryBack     = "Back"
	btnInjuryDone     = "✅ Done"
	btnInjuryNone     = "No injuries"
)

// OnboardingData накапливает ответы анкеты
type OnboardingData struct {
	Name       string
	Goal       models.Goal
	Equipment  models.Equipment
	Experience models.Experience
	Injuries   []models.Injury
}

var onboardingStore = struct {
	sync.RWMutex
	data map[int64]*OnboardingData
}{data: make(map[int64]*OnboardingData)}

func getOnboarding(chatID int64) *OnboardingData {
	onboardingStore.RLock()
	defer onboardingStore.RUnlock()
	return onboardingStore.data[chatID]
}

func setOnboarding(chatID int64, data *OnboardingData) {
	onboardingStore.Lock()
	onboardingStore.data[chatID] = data
	onboardingStore.Unlock()
}

func clearOnboarding(chatID int64) {
	onboardingStore.Lock()
	delete(onboardingStore.data, chatID)
	onboardingStore.Unlock()
}

func isOnboardingState(state string) bool {
	return strings.HasPrefix(state, "onb_")
}

// startOnboarding начинает анкету с вопроса об имени
func (b *Bot) startOnboarding(chatID int64) {
	setOnboarding(chatID, &OnboardingData{})
	setState(chatID, stateOnbName)

	msg := tgbotapi.NewMessage(chatID, "What should I call you?")
	msg.ReplyMarkup = tgbotapi.NewRemoveKeyboard(true)
	b.api.Send(msg)
}

// handleOnboardingStep обрабатывает очередной ответ анкеты
func (b *Bot) handleOnboardingStep(chatID int64, state, text string) {
	data := getOnboarding(chatID)
	if data == nil {
		// состояние есть, а данных нет - начинаем заново
		b.startOnboarding(chatID)
		return
	}

	switch state {
	case stateOnbName:
		name := strings.TrimSpace(text)
		if len(name) < 2 || len(name) > 50 {
			b.sendMessage(chatID, "Please enter a name between 2 and 50 characters.")
			return
		}
		data.Name = name
		setState(chatID, stateOnbGoal)
		b.sendMessageWithKeyboard(chatID,
			fmt.Sprintf("Nice to meet you, %s! What's your main goal?", name),
			tgbotapi.NewReplyKeyboard(
				tgbotapi.NewKeyboardButtonRow(
					tgbotapi.NewKeyboardButton(btnGoalStrength),
					tgbotapi.NewKeyboardButton(btnGoalFatLoss),
				),
				tgbotapi.NewKeyboardButtonRow(
					tgbotapi.NewKeyboardButton(btnGoalMobility),
				),
			))

	case stateOnbGoal:
		goal, ok := parseGoalButton(text)
		if !ok {
			b.sendMessage(chatID, "Please pick a goal with the buttons below.")
			return
		}
		data.Goal = goal
		setState(chatID, stateOnbEquipment)
		b.sendMessageWithKeyboard(chatID, "Where will you train?",
			tgbotapi.NewReplyKeyboard(
				tgbotapi.NewKeyboardButtonRow(
					tgbotapi.NewKeyboardButton(btnEquipHome),
					tgbotapi.NewKeyboardButton(btnEquipGym),
				),
			))

	case stateOnbEquipment:
		equipment, ok := parseEquipmentButton(text)
		if !ok {
			b.sendMessage(chatID, "Please pick home or gym with the buttons below.")
			return
		}
		data.Equipment = equipment
		setState(chatID, stateOnbExperience)
		b.sendMessageWithKeyboard(chatID, "How experienced are you?",
			tgbotapi.NewReplyKeyboard(
				tgbotapi.NewKeyboardButtonRow(
					tgbotapi.NewKeyboardButton(btnExpBeginner),
					tgbotapi.NewKeyboardButton(btnExpIntermed),
				),
			))

	case stateOnbExperience:
		experience, ok := parseExperienceButton(text)
		if !ok {
			b.sendMessage(chatID, "Please pick your experience with the buttons below.")
			return
		}
		data.Experience = experience
		setState(chatID, stateOnbInjuries)
		b.sendMessageWithKeyboard(chatID,
			"Any injuries I should plan around? Tap all that apply, then Done.",
			injuriesKeyboard())

	case stateOnbInjuries:
		if text == btnInjuryDone || text == btnInjuryNone {
			b.finishOnboarding(chatID, data)
			return
		}
		injury, ok := parseInjuryButton(text)
		if !ok {
			b.sendMessage(chatID, "Please use the buttons below, then tap Done.")
			return
		}
		for _, existing := range data.Injuries {
			if existing == injury {
				b.sendMessage(chatID, fmt.Sprintf("%s already noted. Anything else?", text))
				return
			}
		}
		data.Injuries = append(data.Injuries, injury)
		b.sendMessage(chatID, fmt.Sprintf("Got it: %s. Anything else? Tap Done when finished.", text))
	}
}

// finishOnboarding сохраняет анкету, генерирует план и показывает его
func (b *Bot) finishOnboarding(chatID int64, data *OnboardingData) {
	profile := models.UserProfile{
		Name:       data.Name,
		Goal:       data.Goal,
		Equipment:  data.Equipment,
		Experience: data.Experience,
		Injuries:   data.Injuries,
	}
	b.saveProfile(chatID, profile)

	plan := planner.Generate(profile)
	b.savePlan(chatID, plan)

	clearState(chatID)
	clearOnboarding(chatID)

	b.sendMessageWithKeyboard(chatID,
		"All set! Here's your weekly plan 👇", mainMenuKeyboard())
	b.sendMessage(chatID, formatPlan(plan))
}

func injuriesKeyboard() tgbotapi.ReplyKeyboardMarkup {
	return tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(btnInjuryKnee),
			tgbotapi.NewKeyboardButton(btnInjuryShoulder),
			tgbotapi.NewKeyboardButton(btnInjuryBack),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(btnInjuryNone),
			tgbotapi.NewKeyboardButton(btnInjuryDone),
		),
	)
}

func parseGoalButton(text string) (models.Goal, bool) {
	switch text {
	case btnGoalStrength:
		return models.GoalStrength, true
	case btnGoalFatLoss:
		return models.GoalFatLoss, true
	case btnGoalMobility:
		return models.GoalMobility, true
	}
	return models.ParseGoal(text)
}

func parseEquipmentButton(text string) (models.Equipment, bool) {
	switch text {
	case btnEquipHome:
		return models.EquipmentHome, true
	case btnEquipGym:
		return models.EquipmentGym, true
	}
	return models.ParseEquipment(text)
}

func parseExperienceButton(text string) (models.Experience, bool) {
	switch text {
	case btnExpBeginner:
		return models.ExperienceBeginner, true
	case btnExpIntermed:
		return models.ExperienceIntermediate, true
	}
	return models.ParseExperience(text)
}

func parseInjuryButton(text string) (models.Injury, bool) {
	switch text {
	case btnInjuryKnee:
		return models.InjuryKnee, true
	case btnInjuryShoulder:
		return models.InjuryShoulder, true
	case btnInjuryBack:
		return models.InjuryBack, true
	}
	return models.ParseInjury(text)
}
