package api

import (
	"database/sql"

	"coachbot/internal/gamification"
	"coachbot/internal/session"
	"coachbot/internal/storage"

	"github.com/gin-gonic/gin"
)

// Server - HTTP API поверх того же ядра, что и Telegram бот.
// Пользователи API живут в своём пространстве ключей (u:<uuid>).
type Server struct {
	db       *sql.DB
	store    storage.Store
	gamify   *gamification.Service
	recorder *session.Recorder
	jwt      *JWTService
}

func NewServer(db *sql.DB, store storage.Store, jwtSecret string) *Server {
	gamify := gamification.NewService(store)
	return &Server{
		db:       db,
		store:    store,
		gamify:   gamify,
		recorder: session.NewRecorder(store, gamify),
		jwt:      NewJWTService(jwtSecret, "coachbot"),
	}
}

// Router собирает все маршруты API
func (s *Server) Router() *gin.Engine {
	r := gin.Default()

	r.GET("/health", s.handleHealth)

	api := r.Group("/api")
	api.POST("/register", s.handleRegister)
	api.POST("/login", s.handleLogin)

	authed := api.Group("")
	authed.Use(requireAuth(s.jwt))
	authed.GET("/profile", s.handleGetProfile)
	authed.POST("/profile", s.handleSaveProfile)
	authed.GET("/plan", s.handleGetPlan)
	authed.POST("/plan/regenerate", s.handleRegeneratePlan)
	authed.GET("/plan/calendar", s.handlePlanCalendar)
	authed.GET("/plan/export", s.handlePlanWorkbook)
	authed.GET("/stats", s.handleGetStats)
	authed.GET("/achievements", s.handleGetAchievements)
	authed.GET("/topics", s.handleListTopics)
	authed.GET("/topics/:id", s.handleGetTopic)
	authed.POST("/topics/:id/read", s.handleReadTopic)
	authed.POST("/workouts/complete", s.handleCompleteWorkout)

	return r
}
