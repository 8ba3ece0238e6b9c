package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"coachbot/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func newTestServer() (*Server, *gin.Engine) {
	gin.SetMode(gin.TestMode)
	s := NewServer(nil, storage.NewMemory(), "test-secret")
	return s, s.Router()
}

func authedRequest(t *testing.T, s *Server, method, path string, body interface{}, userID string) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	token, err := s.jwt.GenerateToken(userID, "user@example.com")
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	return req
}

func TestRequireAuthRejectsMissingToken(t *testing.T) {
	_, router := newTestServer()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/api/stats", nil))

	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 without token, got %d", w.Code)
	}
}

func TestRequireAuthRejectsBadToken(t *testing.T) {
	_, router := newTestServer()

	req := httptest.NewRequest("GET", "/api/stats", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 with bad token, got %d", w.Code)
	}
}

func TestSaveProfileGeneratesPlan(t *testing.T) {
	s, router := newTestServer()
	userID := uuid.New().String()

	body := map[string]interface{}{
		"name":       "Dana",
		"goal":       "strength",
		"equipment":  "home",
		"experience": "beginner",
		"injuries":   []string{"knee"},
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, authedRequest(t, s, "POST", "/api/profile", body, userID))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Plan struct {
			Workouts []struct {
				ExerciseIDs []string `json:"exerciseIds"`
			} `json:"workouts"`
		} `json:"plan"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.Plan.Workouts) != 3 {
		t.Errorf("beginner plan should have 3 workouts, got %d", len(resp.Plan.Workouts))
	}
	for _, workout := range resp.Plan.Workouts {
		for _, id := range workout.ExerciseIDs {
			if id == "air_squat" {
				t.Errorf("knee injury should swap out air_squat")
			}
		}
	}

	// план должен быть доступен через GET
	w = httptest.NewRecorder()
	router.ServeHTTP(w, authedRequest(t, s, "GET", "/api/plan", nil, userID))
	if w.Code != http.StatusOK {
		t.Errorf("expected 200 for GET /api/plan, got %d", w.Code)
	}
}

func TestSaveProfileValidation(t *testing.T) {
	s, router := newTestServer()
	userID := uuid.New().String()

	tests := []struct {
		name string
		body map[string]interface{}
	}{
		{"short name", map[string]interface{}{"name": "D", "goal": "strength", "equipment": "home", "experience": "beginner"}},
		{"unknown goal", map[string]interface{}{"name": "Dana", "goal": "cardio", "equipment": "home", "experience": "beginner"}},
		{"unknown injury", map[string]interface{}{"name": "Dana", "goal": "strength", "equipment": "home", "experience": "beginner", "injuries": []string{"wrist"}}},
		{"missing fields", map[string]interface{}{"name": "Dana"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			router.ServeHTTP(w, authedRequest(t, s, "POST", "/api/profile", tt.body, userID))
			if w.Code != http.StatusBadRequest {
				t.Errorf("expected 400, got %d: %s", w.Code, w.Body.String())
			}
		})
	}
}

func TestGetPlanWithoutProfile(t *testing.T) {
	s, router := newTestServer()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, authedRequest(t, s, "GET", "/api/plan", nil, uuid.New().String()))
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404 for missing plan, got %d", w.Code)
	}
}

func TestCompleteWorkoutAwardsXP(t *testing.T) {
	s, router := newTestServer()
	userID := uuid.New().String()

	body := map[string]interface{}{"workoutId": "home_strength_a_0", "exerciseCount": 4}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, authedRequest(t, s, "POST", "/api/workouts/complete", body, userID))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var summary struct {
		Streak   int `json:"streak"`
		XPEarned int `json:"xpEarned"`
		NewLevel int `json:"newLevel"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &summary); err != nil {
		t.Fatalf("decode summary: %v", err)
	}
	if summary.Streak != 1 {
		t.Errorf("first workout streak = %d, want 1", summary.Streak)
	}
	// 25 базовых + 4*5 за упражнения + 50 за first_workout
	if summary.XPEarned != 95 {
		t.Errorf("XPEarned = %d, want 95", summary.XPEarned)
	}

	// статистика должна отразить тренировку
	w = httptest.NewRecorder()
	router.ServeHTTP(w, authedRequest(t, s, "GET", "/api/stats", nil, userID))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 for stats, got %d", w.Code)
	}
	var statsResp struct {
		Stats struct {
			TotalXP           int `json:"totalXP"`
			WorkoutsCompleted int `json:"workoutsCompleted"`
		} `json:"stats"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &statsResp); err != nil {
		t.Fatalf("decode stats: %v", err)
	}
	if statsResp.Stats.WorkoutsCompleted != 1 {
		t.Errorf("workoutsCompleted = %d, want 1", statsResp.Stats.WorkoutsCompleted)
	}
	if statsResp.Stats.TotalXP != 95 {
		t.Errorf("totalXP = %d, want 95", statsResp.Stats.TotalXP)
	}
}

func TestReadTopicIdempotent(t *testing.T) {
	s, router := newTestServer()
	userID := uuid.New().String()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, authedRequest(t, s, "POST", "/api/topics/chest/read", nil, userID))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var first struct {
		FirstRead bool `json:"firstRead"`
		XPEarned  int  `json:"xpEarned"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &first); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !first.FirstRead || first.XPEarned != 10 {
		t.Errorf("first read = %+v, want firstRead=true xp=10", first)
	}

	w = httptest.NewRecorder()
	router.ServeHTTP(w, authedRequest(t, s, "POST", "/api/topics/chest/read", nil, userID))
	var second struct {
		FirstRead bool `json:"firstRead"`
		XPEarned  int  `json:"xpEarned"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &second); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if second.FirstRead || second.XPEarned != 0 {
		t.Errorf("repeat read = %+v, want firstRead=false xp=0", second)
	}
}

func TestReadUnknownTopic(t *testing.T) {
	s, router := newTestServer()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, authedRequest(t, s, "POST", "/api/topics/no-such-topic/read", nil, uuid.New().String()))
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404 for unknown topic, got %d", w.Code)
	}
}

func TestAchievementsListCoversCatalog(t *testing.T) {
	s, router := newTestServer()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, authedRequest(t, s, "GET", "/api/achievements", nil, uuid.New().String()))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var list []struct {
		ID       string `json:"id"`
		Unlocked bool   `json:"unlocked"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &list); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(list) != 13 {
		t.Errorf("achievements list length = %d, want 13", len(list))
	}
	for _, a := range list {
		if a.Unlocked {
			t.Errorf("fresh user should have no unlocked achievements, got %s", a.ID)
		}
	}
}

func TestHealthEndpoint(t *testing.T) {
	_, router := newTestServer()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/health", nil))
	if w.Code != http.StatusOK {
		t.Errorf("expected 200 for /health, got %d", w.Code)
	}
}
