package client

import (
	"context"
	"net/http"
	"net/http/httptest"
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
	"github.com/BruksfildServices01/calendar-scheduler/internal/routes"
	uc "github.com/BruksfildServices01/calendar-scheduler/internal/usecase/scheduling"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type stubGoogle struct{}

func (stubGoogle) UpcomingEvents(context.Context) ([]*calendar.Event, error) {
	return []*calendar.Event{{Id: "e1", Summary: "Dentist"}}, nil
}

func (stubGoogle) DefaultTasks(context.Context) ([]*tasks.Task, error) {
	return []*tasks.Task{{Id: "t1", Title: "Buy milk"}}, nil
}

var _ uc.Auditor = discard{}

type discard struct{}

func (discard) Dispatch(audit.Event) {}

func newBackend(t *testing.T) *Client {
	t.Helper()
	r := gin.New()
	routes.RegisterRoutes(r, routes.Dependencies{
		Config:  &config.Config{JWTSecret: "client-secret"},
		Repo:    repository.NewSchedulingMemoryRepository(),
		Limiter: ratelimit.NewMemoryLimiter(100, 100),
		Google:  stubGoogle{},
		Auditor: discard{},
		Log:     zerolog.Nop(),
	})
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return New(srv.URL + "/api")
}

var t0 = time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)

func TestAccountRoundTrip(t *testing.T) {
	c := newBackend(t)
	ctx := context.Background()

	reg, err := c.Register(ctx, "ana", "pw123456")
	require.NoError(t, err)
	require.NotEmpty(t, reg.Token)

	me, err := c.Me(ctx, reg.Token)
	require.NoError(t, err)
	require.NotNil(t, me)
	assert.Equal(t, reg.User.ID, me.ID)

	me, err = c.Me(ctx, "stale")
	require.NoError(t, err)
	assert.Nil(t, me)

	_, err = c.Login(ctx, "ana", "wrong")
	require.Error(t, err)
	assert.Equal(t, http.StatusUnauthorized, StatusOf(err))

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "invalid_credentials", apiErr.Code)
}

func TestCalendarRoundTrip(t *testing.T) {
	c := newBackend(t)
	ctx := context.Background()

	reg, err := c.Register(ctx, "ana", "")
	require.NoError(t, err)
	owner := reg.User.ID

	task, err := c.CreateTask(ctx, owner, dto.NewTask{Title: "Standup", Start: t0, End: t0.Add(time.Hour)})
	require.NoError(t, err)
	assert.Equal(t, "Standup", task.Title)

	list, err := c.ListTasks(ctx, owner)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	ack, err := c.SubmitAvailability(ctx, owner, []dto.Slot{{Start: t0, End: t0.Add(time.Hour)}})
	require.NoError(t, err)
	assert.Equal(t, 1, ack.Count)

	slots, err := c.ListAvailability(ctx, owner)
	require.NoError(t, err)
	require.Len(t, slots, 1)

	visitor, err := c.CreateRandomUser(ctx, "Sam")
	require.NoError(t, err)

	ap, err := c.CreateAppointment(ctx, owner, visitor.ID, dto.NewAppointment{
		Title: "Appointment with Sam", Start: slots[0].Start, End: slots[0].End,
	})
	require.NoError(t, err)
	assert.Equal(t, visitor.ID, ap.RecipientID)

	apps, err := c.ListAppointments(ctx, owner)
	require.NoError(t, err)
	assert.Len(t, apps, 1)
}

func TestTokenIsSentOnWrites(t *testing.T) {
	c := newBackend(t)
	ctx := context.Background()

	ana, err := c.Register(ctx, "ana", "pw123456")
	require.NoError(t, err)
	bob, err := c.Register(ctx, "bob", "pw123456")
	require.NoError(t, err)

	c.SetToken(bob.Token)
	_, err = c.CreateTask(ctx, ana.User.ID, dto.NewTask{Title: "x", Start: t0, End: t0.Add(time.Hour)})
	assert.Equal(t, http.StatusForbidden, StatusOf(err))

	c.SetToken("")
	_, err = c.CreateTask(ctx, ana.User.ID, dto.NewTask{Title: "x", Start: t0, End: t0.Add(time.Hour)})
	assert.NoError(t, err)
}

func TestGoogleProxies(t *testing.T) {
	c := newBackend(t)
	ctx := context.Background()

	events, err := c.GoogleEvents(ctx)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "Dentist", events[0].Summary)

	items, err := c.GoogleTasks(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Buy milk", items[0].Title)
}

func TestProxyErrorDetail(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"invalid_grant"}`))
	}))
	defer srv.Close()

	_, err := New(srv.URL).GoogleEvents(context.Background())
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusInternalServerError, apiErr.Status)
	assert.Equal(t, "invalid_grant", apiErr.Detail)
}
