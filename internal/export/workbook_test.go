package export

import (
	"bytes"
	"testing"

	"coachbot/internal/models"

	"github.com/xuri/excelize/v2"
)

func TestPlanWorkbook(t *testing.T) {
	profile := models.UserProfile{
		Name:       "Dana",
		Goal:       models.GoalStrength,
		Equipment:  models.EquipmentHome,
		Experience: models.ExperienceBeginner,
	}
	plan := models.WeeklyPlan{
		ID: "plan_1",
		Workouts: []models.Workout{
			{ID: "w0", Title: "Full Body A", DayLabel: "Mon", Focus: "full body", ExerciseIDs: []string{"air_squat", "mystery_move"}},
			{ID: "w1", Title: "Full Body B", DayLabel: "Wed", Focus: "full body", ExerciseIDs: []string{"plank"}},
		},
	}
	stats := models.NewUserStats()
	stats.TotalXP = 150

	data, err := PlanWorkbook(profile, plan, stats)
	if err != nil {
		t.Fatalf("PlanWorkbook: %v", err)
	}
	if len(data) == 0 {
		t.Fatal("workbook is empty")
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	// сводка + лист на каждую тренировку
	if len(sheets) != 3 {
		t.Fatalf("expected 3 sheets, got %v", sheets)
	}

	name, err := f.GetCellValue("Mon Full Body A", "B2")
	if err != nil {
		t.Fatalf("read cell: %v", err)
	}
	if name != "Air Squat" {
		t.Errorf("first exercise cell = %q, want Air Squat", name)
	}

	// неизвестный id попадает в ячейку как есть
	raw, err := f.GetCellValue("Mon Full Body A", "B3")
	if err != nil {
		t.Fatalf("read cell: %v", err)
	}
	if raw != "mystery_move" {
		t.Errorf("unknown exercise cell = %q, want mystery_move", raw)
	}
}
