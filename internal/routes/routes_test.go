package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/calendar/v3"
	tasks "google.golang.org/api/tasks/v1"

	"github.com/BruksfildServices01/calendar-scheduler/internal/audit"
	"github.com/BruksfildServices01/calendar-scheduler/internal/config"
	"github.com/BruksfildServices01/calendar-scheduler/internal/dto"
	"github.com/BruksfildServices01/calendar-scheduler/internal/infra/repository"
	"github.com/BruksfildServices01/calendar-scheduler/internal/ratelimit"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type brokenGoogle struct{}

func (brokenGoogle) UpcomingEvents(context.Context) ([]*calendar.Event, error) {
	return nil, errors.New("oauth2: token expired")
}

func (brokenGoogle) DefaultTasks(context.Context) ([]*tasks.Task, error) {
	return nil, errors.New("oauth2: token expired")
}

func newServer(t *testing.T, limiter ratelimit.Limiter) (*gin.Engine, *repository.SchedulingMemoryRepository) {
	t.Helper()
	repo := repository.NewSchedulingMemoryRepository()
	dispatcher := audit.NewDispatcher(audit.New(repo), zerolog.Nop())
	t.Cleanup(dispatcher.Close)

	r := gin.New()
	RegisterRoutes(r, Dependencies{
		Config:  &config.Config{JWTSecret: "routes-secret", CORSOrigins: []string{"*"}},
		Repo:    repo,
		Limiter: limiter,
		Google:  brokenGoogle{},
		Auditor: dispatcher,
		Log:     zerolog.Nop(),
	})
	return r, repo
}

func call(r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHealthAndMetrics(t *testing.T) {
	r, _ := newServer(t, ratelimit.NewMemoryLimiter(100, 100))

	w := call(r, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())

	w = call(r, http.MethodGet, "/metrics", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "calendar_http_requests_total")
}

func TestBookingFlowEndToEnd(t *testing.T) {
	r, repo := newServer(t, ratelimit.NewMemoryLimiter(100, 100))
	start := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)

	w := call(r, http.MethodPost, "/api/users", gin.H{"name": "ana"})
	require.Equal(t, http.StatusCreated, w.Code)
	var owner dto.AuthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &owner))

	w = call(r, http.MethodPost, "/api/availability", gin.H{
		"userId": owner.User.ID,
		"slots":  []gin.H{{"start": start, "end": start.Add(time.Hour)}},
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = call(r, http.MethodPost, "/api/random-user", gin.H{"name": "Sam"})
	require.Equal(t, http.StatusCreated, w.Code)
	var visitor dto.User
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &visitor))

	w = call(r, http.MethodPost, "/api/appointments", gin.H{
		"userId":      owner.User.ID,
		"recipientId": visitor.ID,
		"appointment": gin.H{"title": "Appointment with Sam", "start": start, "end": start.Add(time.Hour)},
	})
	require.Equal(t, http.StatusCreated, w.Code)

	apps, err := repo.ListAppointments(context.Background(), owner.User.ID)
	require.NoError(t, err)
	require.Len(t, apps, 1)
	assert.Equal(t, "Appointment with Sam", apps[0].Title)

	// availability is untouched by the booking
	slots, err := repo.ListAvailability(context.Background(), owner.User.ID)
	require.NoError(t, err)
	assert.Len(t, slots, 1)
}

func TestAuditTrailIsWritten(t *testing.T) {
	r, repo := newServer(t, ratelimit.NewMemoryLimiter(100, 100))

	w := call(r, http.MethodPost, "/api/register", gin.H{"username": "ana", "password": "pw123456"})
	require.Equal(t, http.StatusCreated, w.Code)
	var resp dto.AuthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.Eventually(t, func() bool {
		_, total, err := repo.ListAuditLogs(context.Background(), resp.User.ID, 10, 0)
		return err == nil && total == 1
	}, time.Second, 10*time.Millisecond)
}

func TestAccountEndpointsAreRateLimited(t *testing.T) {
	r, _ := newServer(t, ratelimit.NewMemoryLimiter(0.001, 2))

	for i := 0; i < 2; i++ {
		w := call(r, http.MethodPost, "/api/random-user", gin.H{"name": "Sam"})
		require.Equal(t, http.StatusCreated, w.Code)
	}
	w := call(r, http.MethodPost, "/api/random-user", gin.H{"name": "Sam"})
	assert.Equal(t, http.StatusTooManyRequests, w.Code)

	// reads are not throttled
	w = call(r, http.MethodGet, "/api/me", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestGoogleProxyErrorsDoNotCrash(t *testing.T) {
	r, _ := newServer(t, ratelimit.NewMemoryLimiter(100, 100))

	w := call(r, http.MethodGet, "/api/google-calendar", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"oauth2: token expired"}`, w.Body.String())

	w = call(r, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCORSPreflight(t *testing.T) {
	r, _ := newServer(t, ratelimit.NewMemoryLimiter(100, 100))

	req := httptest.NewRequest(http.MethodOptions, "/api/tasks", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))
	assert.True(t, strings.Contains(w.Header().Get("Access-Control-Allow-Methods"), "POST"))
}
