package export

import (
	"bytes"
	"fmt"
	"time"

	"coachbot/internal/catalog"
	"coachbot/internal/models"

	"github.com/xuri/excelize/v2"
)

// PlanWorkbook собирает .xlsx с недельным планом и прогрессом.
// Первый лист - сводка, дальше по листу на тренировку.
func PlanWorkbook(profile models.UserProfile, plan models.WeeklyPlan, stats models.UserStats) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	summarySheet := "Plan"
	f.SetSheetName("Sheet1", summarySheet)

	f.SetCellValue(summarySheet, "A1", "Weekly workout plan")
	f.SetCellValue(summarySheet, "A2", fmt.Sprintf("Client: %s", profile.Name))
	f.SetCellValue(summarySheet, "A3", fmt.Sprintf("Goal: %s", profile.Goal))
	f.SetCellValue(summarySheet, "A4", fmt.Sprintf("Equipment: %s", profile.Equipment))
	f.SetCellValue(summarySheet, "A5", fmt.Sprintf("Workouts per week: %d", len(plan.Workouts)))
	f.SetCellValue(summarySheet, "A6", fmt.Sprintf("Generated: %s", time.Now().Format("02.01.2006")))

	f.SetCellValue(summarySheet, "A8", fmt.Sprintf("Total XP: %d", stats.TotalXP))
	f.SetCellValue(summarySheet, "A9", fmt.Sprintf("Level: %d", stats.Level))
	f.SetCellValue(summarySheet, "A10", fmt.Sprintf("Workouts completed: %d", stats.WorkoutsCompleted))
	f.SetCellValue(summarySheet, "A11", fmt.Sprintf("Current streak: %d", stats.CurrentStreak))

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 14},
		Alignment: &excelize.Alignment{Horizontal: "left"},
	})
	f.SetCellStyle(summarySheet, "A1", "A1", headerStyle)

	headerRowStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})

	for _, w := range plan.Workouts {
		sheetName := fmt.Sprintf("%s %s", w.DayLabel, w.Title)
		if len(sheetName) > 31 {
			// Excel обрезает имена листов на 31 символе
			sheetName = sheetName[:31]
		}
		if _, err := f.NewSheet(sheetName); err != nil {
			return nil, fmt.Errorf("create sheet %q: %w", sheetName, err)
		}

		headers := []string{"#", "Exercise", "Description", "Done"}
		for i, h := range headers {
			cell, _ := excelize.CoordinatesToCellName(i+1, 1)
			f.SetCellValue(sheetName, cell, h)
		}
		f.SetCellStyle(sheetName, "A1", "D1", headerRowStyle)

		row := 2
		for i, id := range w.ExerciseIDs {
			f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), i+1)
			exercise, ok := catalog.ExerciseByID(id)
			if ok {
				f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), exercise.Name)
				f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), exercise.Description)
			} else {
				f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), id)
			}
			row++
		}

		f.SetColWidth(sheetName, "B", "B", 24)
		f.SetColWidth(sheetName, "C", "C", 60)
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}
