package api

import (
	"encoding/json"
	"net/http"
	"time"

	"coachbot/internal/calendar"
	"coachbot/internal/export"
	"coachbot/internal/models"
	"coachbot/internal/storage"

	"github.com/gin-gonic/gin"
)

func (s *Server) loadUserPlan(c *gin.Context) (models.WeeklyPlan, bool) {
	raw, ok, err := s.store.Get(storage.PlanKey(storeUserID(c)))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Storage unavailable"})
		return models.WeeklyPlan{}, false
	}
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "No plan yet. Save a profile first."})
		return models.WeeklyPlan{}, false
	}

	var plan models.WeeklyPlan
	if err := json.Unmarshal([]byte(raw), &plan); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Corrupt plan"})
		return models.WeeklyPlan{}, false
	}
	return plan, true
}

// handlePlanCalendar отдаёт план в формате iCalendar
func (s *Server) handlePlanCalendar(c *gin.Context) {
	plan, ok := s.loadUserPlan(c)
	if !ok {
		return
	}

	ics := calendar.GenerateICS(calendar.PlanEvents(plan, time.Now()))

	c.Header("Content-Disposition", `attachment; filename="workouts.ics"`)
	c.Data(http.StatusOK, "text/calendar", []byte(ics))
}

// handlePlanWorkbook отдаёт план в формате Excel
func (s *Server) handlePlanWorkbook(c *gin.Context) {
	plan, ok := s.loadUserPlan(c)
	if !ok {
		return
	}

	userID := storeUserID(c)
	var profile models.UserProfile
	if raw, ok, err := s.store.Get(storage.ProfileKey(userID)); err == nil && ok {
		// анкета только украшает сводку, её отсутствие не мешает
		_ = json.Unmarshal([]byte(raw), &profile)
	}

	data, err := export.PlanWorkbook(profile, plan, s.gamify.Stats(userID))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build workbook"})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="plan.xlsx"`)
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}
