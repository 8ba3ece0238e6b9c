package api

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"coachbot/internal/catalog"
	"coachbot/internal/gamification"
	"coachbot/internal/models"
	"coachbot/internal/planner"
	"coachbot/internal/storage"

	"github.com/gin-gonic/gin"
)

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "coachbot",
	})
}

// storeUserID переводит идентификатор из токена в пространство
// ключей API пользователей
func storeUserID(c *gin.Context) string {
	return storage.APIUserID(authUserID(c))
}

type profileRequest struct {
	Name       string   `json:"name" binding:"required"`
	Goal       string   `json:"goal" binding:"required"`
	Equipment  string   `json:"equipment" binding:"required"`
	Experience string   `json:"experience" binding:"required"`
	Injuries   []string `json:"injuries"`
}

func (s *Server) handleGetProfile(c *gin.Context) {
	raw, ok, err := s.store.Get(storage.ProfileKey(storeUserID(c)))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Storage unavailable"})
		return
	}
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Profile not set"})
		return
	}

	var profile models.UserProfile
	if err := json.Unmarshal([]byte(raw), &profile); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Corrupt profile"})
		return
	}
	c.JSON(http.StatusOK, profile)
}

// handleSaveProfile сохраняет анкету и сразу пересобирает план
func (s *Server) handleSaveProfile(c *gin.Context) {
	var req profileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Invalid request: %v", err)})
		return
	}

	if len(req.Name) < 2 || len(req.Name) > 50 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Name must be 2-50 characters"})
		return
	}
	goal, ok := models.ParseGoal(req.Goal)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Unknown goal: %s", req.Goal)})
		return
	}
	equipment, ok := models.ParseEquipment(req.Equipment)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Unknown equipment: %s", req.Equipment)})
		return
	}
	experience, ok := models.ParseExperience(req.Experience)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Unknown experience: %s", req.Experience)})
		return
	}
	var injuries []models.Injury
	for _, raw := range req.Injuries {
		injury, ok := models.ParseInjury(raw)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Unknown injury: %s", raw)})
			return
		}
		injuries = append(injuries, injury)
	}

	profile := models.UserProfile{
		Name:       req.Name,
		Goal:       goal,
		Equipment:  equipment,
		Experience: experience,
		Injuries:   injuries,
	}

	userID := storeUserID(c)
	if err := s.saveJSON(storage.ProfileKey(userID), profile); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save profile"})
		return
	}

	plan := planner.Generate(profile)
	if err := s.saveJSON(storage.PlanKey(userID), plan); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save plan"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"profile": profile, "plan": plan})
}

func (s *Server) handleGetPlan(c *gin.Context) {
	raw, ok, err := s.store.Get(storage.PlanKey(storeUserID(c)))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Storage unavailable"})
		return
	}
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "No plan yet. Save a profile first."})
		return
	}

	var plan models.WeeklyPlan
	if err := json.Unmarshal([]byte(raw), &plan); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Corrupt plan"})
		return
	}
	c.JSON(http.StatusOK, plan)
}

// handleRegeneratePlan собирает свежий план по сохранённой анкете.
// Старый план заменяется целиком.
func (s *Server) handleRegeneratePlan(c *gin.Context) {
	userID := storeUserID(c)

	raw, ok, err := s.store.Get(storage.ProfileKey(userID))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Storage unavailable"})
		return
	}
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Profile not set"})
		return
	}

	var profile models.UserProfile
	if err := json.Unmarshal([]byte(raw), &profile); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Corrupt profile"})
		return
	}

	plan := planner.Generate(profile)
	if err := s.saveJSON(storage.PlanKey(userID), plan); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save plan"})
		return
	}
	c.JSON(http.StatusOK, plan)
}

func (s *Server) handleGetStats(c *gin.Context) {
	stats := s.gamify.Stats(storeUserID(c))
	level := gamification.LevelFromXP(stats.TotalXP)
	c.JSON(http.StatusOK, gin.H{"stats": stats, "level": level})
}

// handleGetAchievements отдаёт весь каталог с пометкой unlocked
func (s *Server) handleGetAchievements(c *gin.Context) {
	stats := s.gamify.Stats(storeUserID(c))

	type achievementStatus struct {
		models.Achievement
		Unlocked bool `json:"unlocked"`
	}

	out := make([]achievementStatus, 0, len(catalog.Achievements))
	for _, a := range catalog.Achievements {
		out = append(out, achievementStatus{
			Achievement: a,
			Unlocked:    stats.HasAchievement(a.ID),
		})
	}
	c.JSON(http.StatusOK, out)
}

func (s *Server) handleListTopics(c *gin.Context) {
	read := make(map[string]bool)
	for _, id := range s.gamify.ReadTopics(storeUserID(c)) {
		read[id] = true
	}

	type topicSummary struct {
		ID       string `json:"id"`
		Title    string `json:"title"`
		Category string `json:"category"`
		Icon     string `json:"icon"`
		Summary  string `json:"summary"`
		Read     bool   `json:"read"`
	}

	out := make([]topicSummary, 0, len(catalog.LearnTopics))
	for _, t := range catalog.LearnTopics {
		out = append(out, topicSummary{
			ID:       t.ID,
			Title:    t.Title,
			Category: t.Category,
			Icon:     t.Icon,
			Summary:  t.Summary,
			Read:     read[t.ID],
		})
	}
	c.JSON(http.StatusOK, out)
}

func (s *Server) handleGetTopic(c *gin.Context) {
	topic, ok := catalog.TopicByID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Topic not found"})
		return
	}
	c.JSON(http.StatusOK, topic)
}

func (s *Server) handleReadTopic(c *gin.Context) {
	topicID := c.Param("id")
	if _, ok := catalog.TopicByID(topicID); !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Topic not found"})
		return
	}

	result := s.gamify.RecordTopicRead(storeUserID(c), topicID)
	c.JSON(http.StatusOK, result)
}

type completeWorkoutRequest struct {
	WorkoutID     string `json:"workoutId" binding:"required"`
	ExerciseCount int    `json:"exerciseCount"`
}

func (s *Server) handleCompleteWorkout(c *gin.Context) {
	var req completeWorkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Invalid request: %v", err)})
		return
	}
	if req.ExerciseCount < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "exerciseCount must be non-negative"})
		return
	}

	summary := s.recorder.Complete(storeUserID(c), req.WorkoutID, req.ExerciseCount)
	c.JSON(http.StatusOK, summary)
}

func (s *Server) saveJSON(key string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		log.Printf("Failed to marshal value for %s: %v", key, err)
		return err
	}
	return s.store.Set(key, string(data))
}
