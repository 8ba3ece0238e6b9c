package planner

import (
	"strings"
	"testing"

	"coachbot/internal/models"
)

var baseProfile = models.UserProfile{
	Name:       "Test User",
	Goal:       models.GoalStrength,
	Equipment:  models.EquipmentGym,
	Experience: models.ExperienceBeginner,
	Injuries:   nil,
}

func TestGenerate_WorkoutCountByExperience(t *testing.T) {
	tests := []struct {
		name       string
		experience models.Experience
		want       int
	}{
		{"beginner gets 3 workouts", models.ExperienceBeginner, 3},
		{"intermediate gets 5 workouts", models.ExperienceIntermediate, 5},
		{"unknown experience defaults to 3", models.Experience("elite"), 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			profile := baseProfile
			profile.Experience = tt.experience
			plan := Generate(profile)
			if len(plan.Workouts) != tt.want {
				t.Errorf("got %d workouts, want %d", len(plan.Workouts), tt.want)
			}
		})
	}
}

func TestGenerate_PlanBounds(t *testing.T) {
	for _, exp := range []models.Experience{models.ExperienceBeginner, models.ExperienceIntermediate} {
		profile := baseProfile
		profile.Experience = exp
		plan := Generate(profile)
		if len(plan.Workouts) < 3 || len(plan.Workouts) > 5 {
			t.Errorf("experience %s: %d workouts out of [3,5]", exp, len(plan.Workouts))
		}
	}
}

func TestGenerate_DayLabels(t *testing.T) {
	validDays := map[string]bool{
		"Mon": true, "Tue": true, "Wed": true, "Thu": true,
		"Fri": true, "Sat": true, "Sun": true,
	}

	profile := baseProfile
	profile.Experience = models.ExperienceIntermediate
	plan := Generate(profile)

	for _, w := range plan.Workouts {
		if !validDays[w.DayLabel] {
			t.Errorf("workout %s has invalid day label %q", w.ID, w.DayLabel)
		}
	}

	// раскладка на 5 дней позиционная
	wantDays := []string{"Mon", "Tue", "Thu", "Fri", "Sat"}
	for i, w := range plan.Workouts {
		if w.DayLabel != wantDays[i] {
			t.Errorf("workout %d day = %s, want %s", i, w.DayLabel, wantDays[i])
		}
	}
}

func TestGenerate_UniqueWorkoutIDs(t *testing.T) {
	profile := baseProfile
	profile.Experience = models.ExperienceIntermediate
	plan := Generate(profile)

	seen := make(map[string]bool)
	for _, w := range plan.Workouts {
		if seen[w.ID] {
			t.Errorf("duplicate workout id %q", w.ID)
		}
		seen[w.ID] = true
	}
}

func TestGenerate_CycledTemplatesKeepTitles(t *testing.T) {
	profile := baseProfile
	profile.Experience = models.ExperienceIntermediate
	plan := Generate(profile)

	// 5 тренировок из 3 шаблонов: 4-я и 5-я повторяют 1-ю и 2-ю
	if plan.Workouts[3].Title != plan.Workouts[0].Title {
		t.Errorf("workout 4 title %q, want cycled %q", plan.Workouts[3].Title, plan.Workouts[0].Title)
	}
	if plan.Workouts[4].Title != plan.Workouts[1].Title {
		t.Errorf("workout 5 title %q, want cycled %q", plan.Workouts[4].Title, plan.Workouts[1].Title)
	}
}

func TestGenerate_EveryWorkoutHasExercises(t *testing.T) {
	for _, goal := range []models.Goal{models.GoalStrength, models.GoalFatLoss, models.GoalMobility} {
		for _, eq := range []models.Equipment{models.EquipmentHome, models.EquipmentGym} {
			profile := baseProfile
			profile.Goal = goal
			profile.Equipment = eq
			plan := Generate(profile)
			for _, w := range plan.Workouts {
				if len(w.ExerciseIDs) == 0 {
					t.Errorf("(%s, %s) workout %s has no exercises", eq, goal, w.ID)
				}
			}
		}
	}
}

func TestGenerate_UnknownGoalFallsBack(t *testing.T) {
	profile := baseProfile
	profile.Goal = models.Goal("powerlifting")
	plan := Generate(profile)

	if len(plan.Workouts) != 3 {
		t.Fatalf("fallback plan has %d workouts, want 3", len(plan.Workouts))
	}
	// fallback - домашние силовые шаблоны
	if !strings.HasPrefix(plan.Workouts[0].ID, "home_strength_") {
		t.Errorf("fallback workout id = %q, want home_strength_* prefix", plan.Workouts[0].ID)
	}
}

func TestGenerate_KneeInjurySwapsAllContraindicated(t *testing.T) {
	contraindicated := map[string]bool{
		"air_squat": true, "goblet_squat": true, "reverse_lunge": true, "step_up": true,
	}

	for _, goal := range []models.Goal{models.GoalStrength, models.GoalFatLoss, models.GoalMobility} {
		for _, eq := range []models.Equipment{models.EquipmentHome, models.EquipmentGym} {
			profile := baseProfile
			profile.Goal = goal
			profile.Equipment = eq
			profile.Experience = models.ExperienceIntermediate
			profile.Injuries = []models.Injury{models.InjuryKnee}

			plan := Generate(profile)
			for _, w := range plan.Workouts {
				for _, id := range w.ExerciseIDs {
					if contraindicated[id] {
						t.Errorf("(%s, %s) workout %s still contains %q with knee injury", eq, goal, w.ID, id)
					}
				}
			}
		}
	}
}

func TestGenerate_InjurySwapsPreserveOrderAndLength(t *testing.T) {
	clean := Generate(baseProfile)

	profile := baseProfile
	profile.Injuries = []models.Injury{models.InjuryShoulder}
	injured := Generate(profile)

	for i := range clean.Workouts {
		cleanIDs := clean.Workouts[i].ExerciseIDs
		injuredIDs := injured.Workouts[i].ExerciseIDs
		if len(cleanIDs) != len(injuredIDs) {
			t.Fatalf("workout %d length changed: %d -> %d", i, len(cleanIDs), len(injuredIDs))
		}
		for j := range cleanIDs {
			// позиция либо не тронута, либо заменена по правилу - но не переставлена
			if cleanIDs[j] != injuredIDs[j] && cleanIDs[j] != "bench_press" &&
				cleanIDs[j] != "push_up" && cleanIDs[j] != "lat_pulldown" {
				t.Errorf("workout %d position %d changed %q -> %q without a shoulder rule",
					i, j, cleanIDs[j], injuredIDs[j])
			}
		}
	}
}

func TestGenerate_DeterministicContent(t *testing.T) {
	profile := baseProfile
	profile.Experience = models.ExperienceIntermediate
	profile.Injuries = []models.Injury{models.InjuryBack}

	a := Generate(profile)
	b := Generate(profile)

	if len(a.Workouts) != len(b.Workouts) {
		t.Fatalf("workout counts differ: %d vs %d", len(a.Workouts), len(b.Workouts))
	}
	for i := range a.Workouts {
		wa, wb := a.Workouts[i], b.Workouts[i]
		if wa.ID != wb.ID || wa.Title != wb.Title || wa.Focus != wb.Focus || wa.DayLabel != wb.DayLabel {
			t.Errorf("workout %d differs between runs: %+v vs %+v", i, wa, wb)
		}
		if len(wa.ExerciseIDs) != len(wb.ExerciseIDs) {
			t.Fatalf("workout %d exercise counts differ", i)
		}
		for j := range wa.ExerciseIDs {
			if wa.ExerciseIDs[j] != wb.ExerciseIDs[j] {
				t.Errorf("workout %d exercise %d differs: %q vs %q", i, j, wa.ExerciseIDs[j], wb.ExerciseIDs[j])
			}
		}
	}
}

func TestGenerate_PlanIDAndTimestamp(t *testing.T) {
	plan := Generate(baseProfile)
	if !strings.HasPrefix(plan.ID, "plan_") {
		t.Errorf("plan id = %q, want plan_ prefix", plan.ID)
	}
	if plan.CreatedAt == "" {
		t.Error("plan createdAt is empty")
	}
}

func TestGenerate_DoesNotMutateTemplates(t *testing.T) {
	profile := baseProfile
	profile.Equipment = models.EquipmentHome
	profile.Injuries = []models.Injury{models.InjuryKnee}
	Generate(profile)

	// повторная генерация без травм обязана вернуть исходные упражнения
	clean := Generate(models.UserProfile{
		Goal:       models.GoalStrength,
		Equipment:  models.EquipmentHome,
		Experience: models.ExperienceBeginner,
	})
	found := false
	for _, w := range clean.Workouts {
		for _, id := range w.ExerciseIDs {
			if id == "air_squat" {
				found = true
			}
		}
	}
	if !found {
		t.Error("template data was mutated by a previous injury-aware generation")
	}
}
