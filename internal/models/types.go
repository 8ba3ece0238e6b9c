package models

import (
	"strings"
	"time"
)

// Goal - цель тренировок клиента
type Goal string

const (
	GoalStrength Goal = "strength"
	GoalFatLoss  Goal = "fat-loss"
	GoalMobility Goal = "mobility"
)

// ParseGoal разбирает цель из пользовательского ввода.
// Неизвестное значение возвращается как есть с ok=false,
// решение о fallback принимает вызывающий код.
func ParseGoal(s string) (Goal, bool) {
	switch Goal(strings.ToLower(strings.TrimSpace(s))) {
	case GoalStrength:
		return GoalStrength, true
	case GoalFatLoss:
		return GoalFatLoss, true
	case GoalMobility:
		return GoalMobility, true
	}
	return Goal(s), false
}

// Equipment - доступное оборудование
type Equipment string

const (
	EquipmentHome Equipment = "home"
	EquipmentGym  Equipment = "gym"
)

// ParseEquipment разбирает оборудование из пользовательского ввода
func ParseEquipment(s string) (Equipment, bool) {
	switch Equipment(strings.ToLower(strings.TrimSpace(s))) {
	case EquipmentHome:
		return EquipmentHome, true
	case EquipmentGym:
		return EquipmentGym, true
	}
	return Equipment(s), false
}

// Experience - уровень подготовки
type Experience string

const (
	ExperienceBeginner     Experience = "beginner"
	ExperienceIntermediate Experience = "intermediate"
)

// ParseExperience разбирает уровень подготовки
func ParseExperience(s string) (Experience, bool) {
	switch Experience(strings.ToLower(strings.TrimSpace(s))) {
	case ExperienceBeginner:
		return ExperienceBeginner, true
	case ExperienceIntermediate:
		return ExperienceIntermediate, true
	}
	return Experience(s), false
}

// Injury - травма/ограничение клиента
type Injury string

const (
	InjuryKnee     Injury = "knee"
	InjuryShoulder Injury = "shoulder"
	InjuryBack     Injury = "back"
)

// ParseInjury разбирает травму
func ParseInjury(s string) (Injury, bool) {
	switch Injury(strings.ToLower(strings.TrimSpace(s))) {
	case InjuryKnee:
		return InjuryKnee, true
	case InjuryShoulder:
		return InjuryShoulder, true
	case InjuryBack:
		return InjuryBack, true
	}
	return Injury(s), false
}

// UserProfile - анкета клиента, собирается при онбординге
type UserProfile struct {
	Name       string     `json:"name"`
	Goal       Goal       `json:"goal"`
	Equipment  Equipment  `json:"equipment"`
	Experience Experience `json:"experience"`
	Injuries   []Injury   `json:"injuries"`
}

// Exercise - упражнение из каталога
type Exercise struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Image       string   `json:"image"`
	Tags        []string `json:"tags"`
}

// Workout - одна тренировка недельного плана
type Workout struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Focus       string   `json:"focus"`
	DayLabel    string   `json:"dayLabel"`
	ExerciseIDs []string `json:"exerciseIds"`
}

// WeeklyPlan - недельный план тренировок.
// План никогда не мутируется, при регенерации заменяется целиком.
type WeeklyPlan struct {
	ID        string    `json:"id"`
	CreatedAt string    `json:"createdAt"`
	Workouts  []Workout `json:"workouts"`
}

// AchievementType определяет, какой счётчик статистики
// проверяется для разблокировки достижения
type AchievementType string

const (
	AchievementWorkouts  AchievementType = "workouts"
	AchievementStreak    AchievementType = "streak"
	AchievementExercises AchievementType = "exercises"
	AchievementLearning  AchievementType = "learning"
)

// Achievement - достижение из каталога
type Achievement struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Icon        string          `json:"icon"`
	Requirement int             `json:"requirement"`
	Type        AchievementType `json:"type"`
	XP          int             `json:"xp"`
}

// UserStats - накопительная статистика клиента.
// Счётчики только растут, разблокированные достижения не удаляются.
type UserStats struct {
	TotalXP              int      `json:"totalXP"`
	Level                int      `json:"level"`
	WorkoutsCompleted    int      `json:"workoutsCompleted"`
	LongestStreak        int      `json:"longestStreak"`
	CurrentStreak        int      `json:"currentStreak"`
	ExercisesCompleted   int      `json:"exercisesCompleted"`
	TopicsRead           int      `json:"topicsRead"`
	UnlockedAchievements []string `json:"unlockedAchievements"`
}

// NewUserStats возвращает нулевую статистику нового клиента
func NewUserStats() UserStats {
	return UserStats{
		Level:                1,
		UnlockedAchievements: []string{},
	}
}

// HasAchievement проверяет, разблокировано ли достижение
func (s *UserStats) HasAchievement(id string) bool {
	for _, a := range s.UnlockedAchievements {
		if a == id {
			return true
		}
	}
	return false
}

// Level - ступень кривой уровней
type Level struct {
	Level int    `json:"level"`
	MinXP int    `json:"minXP"`
	Title string `json:"title"`
}

// LevelInfo - положение клиента на кривой уровней
type LevelInfo struct {
	Level       int     `json:"level"`
	Title       string  `json:"title"`
	Progress    float64 `json:"progress"`
	NextLevelXP int     `json:"nextLevelXP"`
}

// CompletedWorkout - запись о завершённой тренировке
type CompletedWorkout struct {
	WorkoutID     string    `json:"workoutId"`
	CompletedAt   time.Time `json:"completedAt"`
	ExerciseCount int       `json:"exerciseCount"`
}

// LearnTopic - обучающая статья
type LearnTopic struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Category string `json:"category"`
	Icon     string `json:"icon"`
	Summary  string `json:"summary"`
	Content  string `json:"content"`
}

// Quote - мотивационная цитата
type Quote struct {
	ID          string `json:"id"`
	Text        string `json:"text"`
	Author      string `json:"author"`
	Attribution string `json:"attribution"`
	Category    string `json:"category"`
}
