package catalog

import "coachbot/internal/models"

// InjurySwaps - правила замены противопоказанных упражнений.
// Для каждой травмы: id упражнения -> id безопасной альтернативы.
var InjurySwaps = map[models.Injury]map[string]string{
	models.InjuryKnee: {
		"air_squat":     "glute_bridge",
		"goblet_squat":  "step_up",
		"reverse_lunge": "glute_bridge",
		"step_up":       "glute_bridge",
	},
	models.InjuryShoulder: {
		"bench_press":  "incline_push_up",
		"push_up":      "incline_push_up",
		"lat_pulldown": "band_pull_apart",
	},
	models.InjuryBack: {
		"romanian_deadlift": "hip_hinge",
		"hip_hinge":         "glute_bridge",
	},
}

// SwapForInjuries возвращает замену для упражнения с учётом травм клиента.
// Травмы проверяются в порядке анкеты, применяется первое совпадение,
// замены не сцепляются: найденная альтернатива повторно не проверяется.
func SwapForInjuries(exerciseID string, injuries []models.Injury) string {
	for _, injury := range injuries {
		if swap, ok := InjurySwaps[injury][exerciseID]; ok {
			return swap
		}
	}
	return exerciseID
}
