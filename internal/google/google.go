// Package google reads the operator's Google Calendar and Google Tasks with
// fixed server-side OAuth credentials.
package google

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/oauth2"
	googleoauth "golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
	tasks "google.golang.org/api/tasks/v1"

	"github.com/BruksfildServices01/calendar-scheduler/internal/config"
)

const (
	primaryCalendar = "primary"
	defaultTaskList = "@default"
	upcomingLimit   = 10
)

// Source is what the proxy handlers read from.
type Source interface {
	UpcomingEvents(ctx context.Context) ([]*calendar.Event, error)
	DefaultTasks(ctx context.Context) ([]*tasks.Task, error)
}

// Client builds a fresh OAuth client and API service on every call; nothing
// is pooled or cached between requests.
type Client struct {
	creds config.GoogleConfig
	now   func() time.Time

	// extra options, used to point the services at a fake endpoint
	opts []option.ClientOption
}

func NewClient(creds config.GoogleConfig, opts ...option.ClientOption) *Client {
	return &Client{creds: creds, now: time.Now, opts: opts}
}

func (c *Client) OAuthConfig() *oauth2.Config {
	return &oauth2.Config{
		ClientID:     c.creds.ClientID,
		ClientSecret: c.creds.ClientSecret,
		RedirectURL:  c.creds.RedirectURI,
		Endpoint:     googleoauth.Endpoint,
		Scopes: []string{
			calendar.CalendarReadonlyScope,
			tasks.TasksReadonlyScope,
		},
	}
}

func (c *Client) httpClient(ctx context.Context) *http.Client {
	return c.OAuthConfig().Client(ctx, &oauth2.Token{RefreshToken: c.creds.RefreshToken})
}

func (c *Client) clientOptions(ctx context.Context) []option.ClientOption {
	return append([]option.ClientOption{option.WithHTTPClient(c.httpClient(ctx))}, c.opts...)
}

func (c *Client) UpcomingEvents(ctx context.Context) ([]*calendar.Event, error) {
	svc, err := calendar.NewService(ctx, c.clientOptions(ctx)...)
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar service: %w", err)
	}

	events, err := svc.Events.List(primaryCalendar).
		TimeMin(c.now().Format(time.RFC3339)).
		MaxResults(upcomingLimit).
		SingleEvents(true).
		OrderBy("startTime").
		Context(ctx).
		Do()
	if err != nil {
		return nil, err
	}
	return events.Items, nil
}

func (c *Client) DefaultTasks(ctx context.Context) ([]*tasks.Task, error) {
	svc, err := tasks.NewService(ctx, c.clientOptions(ctx)...)
	if err != nil {
		return nil, fmt.Errorf("failed to create tasks service: %w", err)
	}

	list, err := svc.Tasks.List(defaultTaskList).Context(ctx).Do()
	if err != nil {
		return nil, err
	}
	return list.Items, nil
}

var _ Source = (*Client)(nil)
