package bot

import (
	"sync"

	"coachbot/internal/config"
	"coachbot/internal/gamification"
	"coachbot/internal/session"
	"coachbot/internal/storage"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Bot представляет Telegram бота
type Bot struct {
	api      *tgbotapi.BotAPI
	store    storage.Store
	gamify   *gamification.Service
	recorder *session.Recorder
	config   *config.Config
}

// New создаёт новый экземпляр бота
func New(api *tgbotapi.BotAPI, store storage.Store, cfg *config.Config) *Bot {
	gamify := gamification.NewService(store)
	return &Bot{
		api:      api,
		store:    store,
		gamify:   gamify,
		recorder: session.NewRecorder(store, gamify),
		config:   cfg,
	}
}

// Start запускает бота
func (b *Bot) Start() error {
	b.startReminders()

	updates, err := b.initUpdatesChannel()
	if err != nil {
		return err
	}

	b.handleUpdates(updates)
	return nil
}

func (b *Bot) handleUpdates(updates tgbotapi.UpdatesChannel) {
	for update := range updates {
		if update.Message == nil {
			continue
		}

		if update.Message.IsCommand() {
			b.handleCommand(update.Message)
			continue
		}

		b.handleMessage(update.Message)
	}
}

func (b *Bot) initUpdatesChannel() (tgbotapi.UpdatesChannel, error) {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 30

	return b.api.GetUpdatesChan(u), nil
}

// userStates хранит текущее состояние диалога каждого чата
var userStates = struct {
	sync.RWMutex
	states map[int64]string
}{states: make(map[int64]string)}
