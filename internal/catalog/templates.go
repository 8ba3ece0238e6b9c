package catalog

import "coachbot/internal/models"

// Шаблоны тренировок: на каждую пару (оборудование, цель)
// ровно 3 базовые тренировки с днями Пн/Ср/Пт по умолчанию.
// Планировщик переразмечает дни при расширении до нужного количества.

var homeTemplates = map[models.Goal][]models.Workout{
	models.GoalStrength: {
		{
			ID:          "home_strength_1",
			Title:       "Full Body A",
			Focus:       "Squat + Push",
			DayLabel:    "Mon",
			ExerciseIDs: []string{"air_squat", "push_up", "glute_bridge", "plank"},
		},
		{
			ID:          "home_strength_2",
			Title:       "Full Body B",
			Focus:       "Lunge + Core",
			DayLabel:    "Wed",
			ExerciseIDs: []string{"reverse_lunge", "dead_bug", "hip_hinge", "band_pull_apart"},
		},
		{
			ID:          "home_strength_3",
			Title:       "Full Body C",
			Focus:       "Glutes + Core",
			DayLabel:    "Fri",
			ExerciseIDs: []string{"glute_bridge", "incline_push_up", "plank", "air_squat"},
		},
	},
	models.GoalFatLoss: {
		{
			ID:          "home_fat_1",
			Title:       "Metcon A",
			Focus:       "Circuit",
			DayLabel:    "Mon",
			ExerciseIDs: []string{"air_squat", "push_up", "plank", "reverse_lunge"},
		},
		{
			ID:          "home_fat_2",
			Title:       "Metcon B",
			Focus:       "Cardio + Core",
			DayLabel:    "Wed",
			ExerciseIDs: []string{"glute_bridge", "dead_bug", "air_squat", "band_pull_apart"},
		},
		{
			ID:          "home_fat_3",
			Title:       "Metcon C",
			Focus:       "Legs + Push",
			DayLabel:    "Fri",
			ExerciseIDs: []string{"reverse_lunge", "push_up", "plank", "hip_hinge"},
		},
	},
	models.GoalMobility: {
		{
			ID:          "home_mob_1",
			Title:       "Mobility Flow A",
			Focus:       "Hips + Core",
			DayLabel:    "Mon",
			ExerciseIDs: []string{"hip_hinge", "dead_bug", "glute_bridge", "plank"},
		},
		{
			ID:          "home_mob_2",
			Title:       "Mobility Flow B",
			Focus:       "Shoulders + Spine",
			DayLabel:    "Wed",
			ExerciseIDs: []string{"band_pull_apart", "plank", "dead_bug", "air_squat"},
		},
		{
			ID:          "home_mob_3",
			Title:       "Mobility Flow C",
			Focus:       "Lower Body",
			DayLabel:    "Fri",
			ExerciseIDs: []string{"glute_bridge", "hip_hinge", "air_squat", "dead_bug"},
		},
	},
}

var gymTemplates = map[models.Goal][]models.Workout{
	models.GoalStrength: {
		{
			ID:          "gym_strength_1",
			Title:       "Strength A",
			Focus:       "Squat + Push",
			DayLabel:    "Mon",
			ExerciseIDs: []string{"goblet_squat", "bench_press", "dumbbell_row", "plank"},
		},
		{
			ID:          "gym_strength_2",
			Title:       "Strength B",
			Focus:       "Hinge + Pull",
			DayLabel:    "Wed",
			ExerciseIDs: []string{"romanian_deadlift", "lat_pulldown", "step_up", "dead_bug"},
		},
		{
			ID:          "gym_strength_3",
			Title:       "Strength C",
			Focus:       "Full Body",
			DayLabel:    "Fri",
			ExerciseIDs: []string{"goblet_squat", "bench_press", "dumbbell_row", "band_pull_apart"},
		},
	},
	models.GoalFatLoss: {
		{
			ID:          "gym_fat_1",
			Title:       "Conditioning A",
			Focus:       "Full Body",
			DayLabel:    "Mon",
			ExerciseIDs: []string{"goblet_squat", "bench_press", "lat_pulldown", "plank"},
		},
		{
			ID:          "gym_fat_2",
			Title:       "Conditioning B",
			Focus:       "Legs + Core",
			DayLabel:    "Wed",
			ExerciseIDs: []string{"step_up", "romanian_deadlift", "dead_bug", "band_pull_apart"},
		},
		{
			ID:          "gym_fat_3",
			Title:       "Conditioning C",
			Focus:       "Push + Pull",
			DayLabel:    "Fri",
			ExerciseIDs: []string{"bench_press", "dumbbell_row", "plank", "goblet_squat"},
		},
	},
	models.GoalMobility: {
		{
			ID:          "gym_mob_1",
			Title:       "Mobility A",
			Focus:       "Hips + Spine",
			DayLabel:    "Mon",
			ExerciseIDs: []string{"hip_hinge", "step_up", "dead_bug", "band_pull_apart"},
		},
		{
			ID:          "gym_mob_2",
			Title:       "Mobility B",
			Focus:       "Shoulders + Core",
			DayLabel:    "Wed",
			ExerciseIDs: []string{"lat_pulldown", "plank", "band_pull_apart", "glute_bridge"},
		},
		{
			ID:          "gym_mob_3",
			Title:       "Mobility C",
			Focus:       "Lower Body",
			DayLabel:    "Fri",
			ExerciseIDs: []string{"goblet_squat", "romanian_deadlift", "dead_bug", "hip_hinge"},
		},
	},
}

// Templates возвращает базовый набор шаблонов для пары (оборудование, цель).
// Для неизвестной комбинации - безопасный набор home/strength, ok=false.
func Templates(equipment models.Equipment, goal models.Goal) ([]models.Workout, bool) {
	byGoal := homeTemplates
	if equipment == models.EquipmentGym {
		byGoal = gymTemplates
	}
	if templates, ok := byGoal[goal]; ok {
		return templates, true
	}
	return homeTemplates[models.GoalStrength], false
}

// AllTemplates возвращает все шаблоны (для проверок целостности каталога)
func AllTemplates() []models.Workout {
	var all []models.Workout
	for _, byGoal := range []map[models.Goal][]models.Workout{homeTemplates, gymTemplates} {
		for _, templates := range byGoal {
			all = append(all, templates...)
		}
	}
	return all
}
