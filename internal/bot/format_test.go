package bot

import (
	"strings"
	"testing"

	"coachbot/internal/models"
)

func TestParseIndexFromBrackets(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
	}{
		{"workout button", "Mon — Full Body A [2]", 2},
		{"zero index", "💪 Chest basics [0]", 0},
		{"no brackets", "Cancel", -1},
		{"empty brackets", "Topic []", -1},
		{"not a number", "Topic [abc]", -1},
		{"reversed brackets", "Topic ]1[", -1},
		{"last pair wins", "[1] extra [7]", 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := parseIndexFromBrackets(tt.text); got != tt.want {
				t.Errorf("parseIndexFromBrackets(%q) = %d, want %d", tt.text, got, tt.want)
			}
		})
	}
}

func TestProgressBar(t *testing.T) {
	tests := []struct {
		name     string
		progress float64
		want     string
	}{
		{"empty", 0, "░░░░░░░░░░"},
		{"half", 0.5, "▓▓▓▓▓░░░░░"},
		{"full", 1, "▓▓▓▓▓▓▓▓▓▓"},
		{"clamped below", -0.3, "░░░░░░░░░░"},
		{"clamped above", 1.7, "▓▓▓▓▓▓▓▓▓▓"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := progressBar(tt.progress, 10); got != tt.want {
				t.Errorf("progressBar(%v, 10) = %q, want %q", tt.progress, got, tt.want)
			}
		})
	}
}

func TestFormatPlan(t *testing.T) {
	plan := models.WeeklyPlan{
		ID: "plan_1",
		Workouts: []models.Workout{
			{
				ID:          "home_strength_a_0",
				Title:       "Full Body A",
				DayLabel:    "Mon",
				Focus:       "full body",
				ExerciseIDs: []string{"air_squat", "mystery_move"},
			},
		},
	}

	got := formatPlan(plan)

	if !strings.Contains(got, "Mon — Full Body A (full body)") {
		t.Errorf("formatPlan missing workout header, got:\n%s", got)
	}
	if !strings.Contains(got, "1. Air Squat") {
		t.Errorf("formatPlan should resolve known exercise names, got:\n%s", got)
	}
	// неизвестный id не должен ломать вывод
	if !strings.Contains(got, "2. mystery_move") {
		t.Errorf("formatPlan should show unknown ids as-is, got:\n%s", got)
	}
}
