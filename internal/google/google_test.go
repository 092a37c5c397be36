package google

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	googleoauth "golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"

	"github.com/BruksfildServices01/calendar-scheduler/internal/config"
)

func TestOAuthConfigFromCredentials(t *testing.T) {
	c := NewClient(config.GoogleConfig{
		ClientID:     "cid",
		ClientSecret: "secret",
		RedirectURI:  "http://localhost:3000/callback",
		RefreshToken: "refresh",
	})

	cfg := c.OAuthConfig()
	assert.Equal(t, "cid", cfg.ClientID)
	assert.Equal(t, "secret", cfg.ClientSecret)
	assert.Equal(t, "http://localhost:3000/callback", cfg.RedirectURL)
	assert.Equal(t, googleoauth.Endpoint, cfg.Endpoint)
	assert.Contains(t, cfg.Scopes, calendar.CalendarReadonlyScope)
}

type seenRequest struct {
	path  string
	query url.Values
}

// fakeGoogle answers both list calls and records what was asked.
func fakeGoogle(t *testing.T, status int) (*Client, *[]seenRequest) {
	t.Helper()
	var seen []seenRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = append(seen, seenRequest{path: r.URL.Path, query: r.URL.Query()})
		w.Header().Set("Content-Type", "application/json")
		if status != http.StatusOK {
			w.WriteHeader(status)
			_, _ = w.Write([]byte(`{"error":{"code":401,"message":"invalid_grant"}}`))
			return
		}
		switch {
		case strings.HasSuffix(r.URL.Path, "/calendars/primary/events"):
			_, _ = w.Write([]byte(`{"items":[{"id":"e1","summary":"Dentist"}]}`))
		case strings.HasSuffix(r.URL.Path, "/lists/@default/tasks"):
			_, _ = w.Write([]byte(`{"items":[{"id":"t1","title":"Buy milk"}]}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	t.Cleanup(srv.Close)

	c := NewClient(config.GoogleConfig{ClientID: "cid", RefreshToken: "refresh"},
		option.WithEndpoint(srv.URL+"/"),
		option.WithHTTPClient(srv.Client()),
	)
	c.now = func() time.Time { return time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC) }
	return c, &seen
}

func TestUpcomingEventsQuery(t *testing.T) {
	c, seen := fakeGoogle(t, http.StatusOK)

	events, err := c.UpcomingEvents(context.Background())
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "Dentist", events[0].Summary)

	require.Len(t, *seen, 1)
	req := (*seen)[0]
	assert.True(t, strings.HasSuffix(req.path, "/calendars/primary/events"), req.path)
	assert.Equal(t, "2024-01-01T00:00:00Z", req.query.Get("timeMin"))
	assert.Equal(t, "10", req.query.Get("maxResults"))
	assert.Equal(t, "true", req.query.Get("singleEvents"))
	assert.Equal(t, "startTime", req.query.Get("orderBy"))
}

func TestDefaultTasksList(t *testing.T) {
	c, seen := fakeGoogle(t, http.StatusOK)

	items, err := c.DefaultTasks(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Buy milk", items[0].Title)

	require.Len(t, *seen, 1)
	assert.True(t, strings.HasSuffix((*seen)[0].path, "/lists/@default/tasks"), (*seen)[0].path)
}

func TestUpstreamFailureIsReturned(t *testing.T) {
	c, _ := fakeGoogle(t, http.StatusUnauthorized)

	_, err := c.UpcomingEvents(context.Background())
	assert.Error(t, err)

	_, err = c.DefaultTasks(context.Background())
	assert.Error(t, err)
}
