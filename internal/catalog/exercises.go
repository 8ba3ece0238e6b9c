package catalog

import "coachbot/internal/models"

// Exercises - каталог упражнений. Данные зашиты в код,
// загружаются один раз и никогда не мутируются.
var Exercises = []models.Exercise{
	{
		ID:          "air_squat",
		Name:        "Air Squat",
		Description: "Bodyweight squat. Feet shoulder-width, chest up, sit back until thighs are parallel, drive through the heels.",
		Image:       "https://images.coachbot.app/exercises/air_squat.jpg",
		Tags:        []string{"legs", "glutes", "bodyweight"},
	},
	{
		ID:          "push_up",
		Name:        "Push-Up",
		Description: "Hands under shoulders, body in one line, lower the chest to the floor and press back up.",
		Image:       "https://images.coachbot.app/exercises/push_up.jpg",
		Tags:        []string{"chest", "triceps", "bodyweight"},
	},
	{
		ID:          "incline_push_up",
		Name:        "Incline Push-Up",
		Description: "Push-up with hands on a bench or box. Easier on the shoulders, same pressing pattern.",
		Image:       "https://images.coachbot.app/exercises/incline_push_up.jpg",
		Tags:        []string{"chest", "shoulders-friendly", "bodyweight"},
	},
	{
		ID:          "glute_bridge",
		Name:        "Glute Bridge",
		Description: "Lie on your back, feet flat, drive the hips up and squeeze the glutes at the top.",
		Image:       "https://images.coachbot.app/exercises/glute_bridge.jpg",
		Tags:        []string{"glutes", "knee-friendly", "bodyweight"},
	},
	{
		ID:          "plank",
		Name:        "Plank",
		Description: "Forearms on the floor, body rigid from head to heels. Brace the core, breathe.",
		Image:       "https://images.coachbot.app/exercises/plank.jpg",
		Tags:        []string{"core", "isometric", "bodyweight"},
	},
	{
		ID:          "reverse_lunge",
		Name:        "Reverse Lunge",
		Description: "Step back into a lunge, front shin vertical, push through the front heel to stand.",
		Image:       "https://images.coachbot.app/exercises/reverse_lunge.jpg",
		Tags:        []string{"legs", "glutes", "unilateral"},
	},
	{
		ID:          "dead_bug",
		Name:        "Dead Bug",
		Description: "On your back, opposite arm and leg lower slowly while the lower back stays pressed to the floor.",
		Image:       "https://images.coachbot.app/exercises/dead_bug.jpg",
		Tags:        []string{"core", "back-friendly", "bodyweight"},
	},
	{
		ID:          "hip_hinge",
		Name:        "Hip Hinge",
		Description: "Soft knees, push the hips back with a flat back, feel the hamstrings load, return tall.",
		Image:       "https://images.coachbot.app/exercises/hip_hinge.jpg",
		Tags:        []string{"hamstrings", "pattern", "bodyweight"},
	},
	{
		ID:          "band_pull_apart",
		Name:        "Band Pull-Apart",
		Description: "Hold a band at shoulder height, pull it apart squeezing the shoulder blades together.",
		Image:       "https://images.coachbot.app/exercises/band_pull_apart.jpg",
		Tags:        []string{"upper-back", "shoulders-friendly", "band"},
	},
	{
		ID:          "goblet_squat",
		Name:        "Goblet Squat",
		Description: "Hold a dumbbell at the chest, squat between the heels keeping the torso upright.",
		Image:       "https://images.coachbot.app/exercises/goblet_squat.jpg",
		Tags:        []string{"legs", "glutes", "dumbbell"},
	},
	{
		ID:          "bench_press",
		Name:        "Bench Press",
		Description: "Barbell or dumbbells, shoulder blades pinned, lower to the chest and press up.",
		Image:       "https://images.coachbot.app/exercises/bench_press.jpg",
		Tags:        []string{"chest", "triceps", "barbell"},
	},
	{
		ID:          "dumbbell_row",
		Name:        "Dumbbell Row",
		Description: "One hand braced on a bench, row the dumbbell to the hip, elbow close to the body.",
		Image:       "https://images.coachbot.app/exercises/dumbbell_row.jpg",
		Tags:        []string{"back", "lats", "dumbbell"},
	},
	{
		ID:          "romanian_deadlift",
		Name:        "Romanian Deadlift",
		Description: "Bar close to the legs, hinge at the hips with a neutral spine, stand tall squeezing the glutes.",
		Image:       "https://images.coachbot.app/exercises/romanian_deadlift.jpg",
		Tags:        []string{"hamstrings", "glutes", "barbell"},
	},
	{
		ID:          "lat_pulldown",
		Name:        "Lat Pulldown",
		Description: "Wide grip, pull the bar to the upper chest driving the elbows down and back.",
		Image:       "https://images.coachbot.app/exercises/lat_pulldown.jpg",
		Tags:        []string{"back", "lats", "machine"},
	},
	{
		ID:          "step_up",
		Name:        "Step-Up",
		Description: "Step onto a box driving through the working leg, control the way down.",
		Image:       "https://images.coachbot.app/exercises/step_up.jpg",
		Tags:        []string{"legs", "glutes", "unilateral"},
	},
	{
		ID:          "walking_plank",
		Name:        "Walking Plank",
		Description: "From a forearm plank, press up to the hands one arm at a time and back down.",
		Image:       "https://images.coachbot.app/exercises/walking_plank.jpg",
		Tags:        []string{"core", "shoulders", "bodyweight"},
	},
}

var exerciseIndex = func() map[string]models.Exercise {
	idx := make(map[string]models.Exercise, len(Exercises))
	for _, e := range Exercises {
		idx[e.ID] = e
	}
	return idx
}()

// ExerciseByID возвращает упражнение по id.
// При отсутствии в каталоге ok=false - политика отображения
// "сырого" id остаётся на стороне UI.
func ExerciseByID(id string) (models.Exercise, bool) {
	e, ok := exerciseIndex[id]
	return e, ok
}

// ExerciseName возвращает название упражнения,
// для неизвестного id - сам id
func ExerciseName(id string) string {
	if e, ok := exerciseIndex[id]; ok {
		return e.Name
	}
	return id
}
