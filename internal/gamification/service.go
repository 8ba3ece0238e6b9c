package gamification

import (
	"encoding/json"
	"log"
	"sync"

	"coachbot/internal/models"
	"coachbot/internal/storage"
)

// Базовые начисления XP
const (
	workoutBaseXP     = 25
	workoutPerExercXP = 5
	topicReadXP       = 10
)

// Service - движок геймификации. Держит ссылку на хранилище,
// все мутирующие вызовы сериализуются одним мьютексом: цикл
// load-mutate-save не должен гоняться сам с собой.
type Service struct {
	mu    sync.Mutex
	store storage.Store
}

// NewService создаёт движок поверх хранилища
func NewService(store storage.Store) *Service {
	return &Service{store: store}
}

// WorkoutResult - дельты после записи завершённой тренировки
type WorkoutResult struct {
	XPEarned        int                  `json:"xpEarned"`
	NewAchievements []models.Achievement `json:"newAchievements"`
	LevelUp         bool                 `json:"levelUp"`
	NewLevel        int                  `json:"newLevel"`
}

// TopicResult - дельты после записи прочитанной статьи
type TopicResult struct {
	FirstRead       bool                 `json:"firstRead"`
	XPEarned        int                  `json:"xpEarned"`
	NewAchievements []models.Achievement `json:"newAchievements"`
}

// XPResult - дельты после прямого начисления XP
type XPResult struct {
	NewXP    int  `json:"newXP"`
	LevelUp  bool `json:"levelUp"`
	NewLevel int  `json:"newLevel"`
}

// Stats возвращает снимок статистики клиента.
// Недоступность хранилища деградирует до нулевой статистики.
func (s *Service) Stats(userID string) models.UserStats {
	return s.loadStats(userID)
}

// RecordWorkoutComplete фиксирует завершённую тренировку:
// счётчики, серия, достижения, XP и уровень - одним циклом
// load-mutate-save. Серию движок принимает от оркестратора
// сессий как доверенный вход.
func (s *Service) RecordWorkoutComplete(userID string, exerciseCount, currentStreak int) WorkoutResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	stats := s.loadStats(userID)

	stats.WorkoutsCompleted++
	stats.ExercisesCompleted += exerciseCount
	stats.CurrentStreak = currentStreak
	if currentStreak > stats.LongestStreak {
		stats.LongestStreak = currentStreak
	}

	// Проверяем по уже обновлённым счётчикам: достигнутый
	// в этом же вызове порог разблокируется сразу
	newAchievements := CheckNewAchievements(stats)

	xpEarned := workoutBaseXP + exerciseCount*workoutPerExercXP
	for _, a := range newAchievements {
		xpEarned += a.XP
		stats.UnlockedAchievements = append(stats.UnlockedAchievements, a.ID)
	}

	oldLevel := stats.Level
	stats.TotalXP += xpEarned
	newLevel := LevelFromXP(stats.TotalXP)
	stats.Level = newLevel.Level

	s.saveStats(userID, stats)

	return WorkoutResult{
		XPEarned:        xpEarned,
		NewAchievements: newAchievements,
		LevelUp:         newLevel.Level > oldLevel,
		NewLevel:        newLevel.Level,
	}
}

// RecordTopicRead фиксирует первое прочтение статьи.
// Повторное прочтение - no-op: ни XP, ни мутаций.
func (s *Service) RecordTopicRead(userID, topicID string) TopicResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	readTopics := s.loadReadTopics(userID)
	for _, id := range readTopics {
		if id == topicID {
			return TopicResult{NewAchievements: []models.Achievement{}}
		}
	}

	readTopics = append(readTopics, topicID)
	s.saveJSON(storage.ReadTopicsKey(userID), readTopics)

	stats := s.loadStats(userID)
	stats.TopicsRead = len(readTopics)

	newAchievements := CheckNewAchievements(stats)
	xpEarned := topicReadXP
	for _, a := range newAchievements {
		xpEarned += a.XP
		stats.UnlockedAchievements = append(stats.UnlockedAchievements, a.ID)
	}

	stats.TotalXP += xpEarned
	stats.Level = LevelFromXP(stats.TotalXP).Level

	s.saveStats(userID, stats)

	if newAchievements == nil {
		newAchievements = []models.Achievement{}
	}
	return TopicResult{
		FirstRead:       true,
		XPEarned:        xpEarned,
		NewAchievements: newAchievements,
	}
}

// AwardXP начисляет XP без счётчиков и достижений -
// общий примитив для разовых наград
func (s *Service) AwardXP(userID string, amount int) XPResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	stats := s.loadStats(userID)
	oldLevel := LevelFromXP(stats.TotalXP).Level

	stats.TotalXP += amount
	newLevel := LevelFromXP(stats.TotalXP)
	stats.Level = newLevel.Level

	s.saveStats(userID, stats)

	return XPResult{
		NewXP:    stats.TotalXP,
		LevelUp:  newLevel.Level > oldLevel,
		NewLevel: newLevel.Level,
	}
}

// ReadTopics возвращает список прочитанных статей
func (s *Service) ReadTopics(userID string) []string {
	return s.loadReadTopics(userID)
}

// loadStats загружает статистику; любая проблема хранилища
// деградирует до нулевой статистики нового клиента
func (s *Service) loadStats(userID string) models.UserStats {
	raw, ok, err := s.store.Get(storage.StatsKey(userID))
	if err != nil {
		log.Printf("Failed to load stats [user=%s]: %v", userID, err)
		return models.NewUserStats()
	}
	if !ok {
		return models.NewUserStats()
	}

	var stats models.UserStats
	if err := json.Unmarshal([]byte(raw), &stats); err != nil {
		log.Printf("Corrupt stats record [user=%s]: %v", userID, err)
		return models.NewUserStats()
	}
	if stats.Level == 0 {
		stats.Level = 1
	}
	if stats.UnlockedAchievements == nil {
		stats.UnlockedAchievements = []string{}
	}
	return stats
}

// saveStats сохраняет статистику best-effort: потеря записи
// не отменяет уже вычисленный результат вызова
func (s *Service) saveStats(userID string, stats models.UserStats) {
	s.saveJSON(storage.StatsKey(userID), stats)
}

func (s *Service) loadReadTopics(userID string) []string {
	raw, ok, err := s.store.Get(storage.ReadTopicsKey(userID))
	if err != nil {
		log.Printf("Failed to load read topics [user=%s]: %v", userID, err)
		return nil
	}
	if !ok {
		return nil
	}

	var topics []string
	if err := json.Unmarshal([]byte(raw), &topics); err != nil {
		log.Printf("Corrupt read topics record [user=%s]: %v", userID, err)
		return nil
	}
	return topics
}

func (s *Service) saveJSON(key string, v interface{}) {
	data, err := json.Marshal(v)
	if err != nil {
		log.Printf("Failed to marshal state [key=%s]: %v", key, err)
		return
	}
	if err := s.store.Set(key, string(data)); err != nil {
		log.Printf("Failed to save state [key=%s]: %v", key, err)
	}
}
