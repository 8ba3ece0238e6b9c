package catalog

import "coachbot/internal/models"

// Achievements - каталог достижений.
// Порядок списка = порядок проверки и отображения.
var Achievements = []models.Achievement{
	{
		ID:          "first_workout",
		Title:       "First Rep",
		Description: "Complete your first workout",
		Icon:        "🎯",
		Requirement: 1,
		Type:        models.AchievementWorkouts,
		XP:          50,
	},
	{
		ID:          "five_workouts",
		Title:       "Getting Strong",
		Description: "Complete 5 workouts",
		Icon:        "💪",
		Requirement: 5,
		Type:        models.AchievementWorkouts,
		XP:          100,
	},
	{
		ID:          "ten_workouts",
		Title:       "Dedicated",
		Description: "Complete 10 workouts",
		Icon:        "🏆",
		Requirement: 10,
		Type:        models.AchievementWorkouts,
		XP:          200,
	},
	{
		ID:          "twenty_five_workouts",
		Title:       "Unstoppable",
		Description: "Complete 25 workouts",
		Icon:        "⚡",
		Requirement: 25,
		Type:        models.AchievementWorkouts,
		XP:          500,
	},
	{
		ID:          "fifty_workouts",
		Title:       "Iron Will",
		Description: "Complete 50 workouts",
		Icon:        "🔥",
		Requirement: 50,
		Type:        models.AchievementWorkouts,
		XP:          1000,
	},
	{
		ID:          "streak_3",
		Title:       "On a Roll",
		Description: "Maintain a 3-day streak",
		Icon:        "🔥",
		Requirement: 3,
		Type:        models.AchievementStreak,
		XP:          75,
	},
	{
		ID:          "streak_7",
		Title:       "Week Warrior",
		Description: "Maintain a 7-day streak",
		Icon:        "🗓",
		Requirement: 7,
		Type:        models.AchievementStreak,
		XP:          200,
	},
	{
		ID:          "streak_14",
		Title:       "Two Week Champion",
		Description: "Maintain a 14-day streak",
		Icon:        "👑",
		Requirement: 14,
		Type:        models.AchievementStreak,
		XP:          400,
	},
	{
		ID:          "streak_30",
		Title:       "Monthly Master",
		Description: "Maintain a 30-day streak",
		Icon:        "🌟",
		Requirement: 30,
		Type:        models.AchievementStreak,
		XP:          1000,
	},
	{
		ID:          "exercises_50",
		Title:       "Exercise Explorer",
		Description: "Complete 50 exercises total",
		Icon:        "🏋",
		Requirement: 50,
		Type:        models.AchievementExercises,
		XP:          150,
	},
	{
		ID:          "exercises_200",
		Title:       "Rep Master",
		Description: "Complete 200 exercises total",
		Icon:        "💯",
		Requirement: 200,
		Type:        models.AchievementExercises,
		XP:          500,
	},
	{
		ID:          "learning_3",
		Title:       "Knowledge Seeker",
		Description: "Read 3 educational topics",
		Icon:        "📚",
		Requirement: 3,
		Type:        models.AchievementLearning,
		XP:          50,
	},
	{
		ID:          "learning_all",
		Title:       "Fitness Scholar",
		Description: "Read all educational topics",
		Icon:        "🧠",
		Requirement: 11,
		Type:        models.AchievementLearning,
		XP:          300,
	},
}

// Levels - кривая уровней: ровно 10 ступеней,
// пороги XP строго возрастают, первая ступень {1, 0}
var Levels = []models.Level{
	{Level: 1, MinXP: 0, Title: "Beginner"},
	{Level: 2, MinXP: 100, Title: "Novice"},
	{Level: 3, MinXP: 300, Title: "Apprentice"},
	{Level: 4, MinXP: 600, Title: "Intermediate"},
	{Level: 5, MinXP: 1000, Title: "Skilled"},
	{Level: 6, MinXP: 1500, Title: "Advanced"},
	{Level: 7, MinXP: 2200, Title: "Expert"},
	{Level: 8, MinXP: 3000, Title: "Master"},
	{Level: 9, MinXP: 4000, Title: "Champion"},
	{Level: 10, MinXP: 5500, Title: "Legend"},
}

// AchievementByID возвращает достижение по id
func AchievementByID(id string) (models.Achievement, bool) {
	for _, a := range Achievements {
		if a.ID == id {
			return a, true
		}
	}
	return models.Achievement{}, false
}
