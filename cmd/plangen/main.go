package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"coachbot/internal/catalog"
	"coachbot/internal/models"
	"coachbot/internal/planner"
)

// plangen собирает недельный план по параметрам анкеты и печатает
// его в консоль. Удобно для проверки шаблонов и замен без бота.
func main() {
	name := flag.String("name", "Athlete", "client name")
	goal := flag.String("goal", "strength", "goal: strength, fat_loss, mobility")
	equipment := flag.String("equipment", "home", "equipment: home, gym")
	experience := flag.String("experience", "beginner", "experience: beginner, intermediate")
	injuries := flag.String("injuries", "", "comma-separated injuries: knee, shoulder, back")
	asJSON := flag.Bool("json", false, "print raw JSON instead of formatted plan")
	flag.Parse()

	profile := models.UserProfile{Name: *name}

	var ok bool
	if profile.Goal, ok = models.ParseGoal(*goal); !ok {
		log.Fatalf("Unknown goal: %s", *goal)
	}
	if profile.Equipment, ok = models.ParseEquipment(*equipment); !ok {
		log.Fatalf("Unknown equipment: %s", *equipment)
	}
	if profile.Experience, ok = models.ParseExperience(*experience); !ok {
		log.Fatalf("Unknown experience: %s", *experience)
	}
	for _, raw := range strings.Split(*injuries, ",") {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		injury, ok := models.ParseInjury(raw)
		if !ok {
			log.Fatalf("Unknown injury: %s", raw)
		}
		profile.Injuries = append(profile.Injuries, injury)
	}

	plan := planner.Generate(profile)

	if *asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(plan); err != nil {
			log.Fatalf("Failed to encode plan: %v", err)
		}
		return
	}

	fmt.Printf("Weekly plan for %s (%s, %s, %s)\n", profile.Name, profile.Goal, profile.Equipment, profile.Experience)
	if len(profile.Injuries) > 0 {
		fmt.Printf("Injuries: %v\n", profile.Injuries)
	}
	for _, w := range plan.Workouts {
		fmt.Printf("\n%s — %s (%s)\n", w.DayLabel, w.Title, w.Focus)
		for i, id := range w.ExerciseIDs {
			fmt.Printf("  %d. %s\n", i+1, catalog.ExerciseName(id))
		}
	}
}
