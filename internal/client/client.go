// Package client talks to the calendar REST API on behalf of the view models
// and the terminal client.
package client

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"google.golang.org/api/calendar/v3"
	tasks "google.golang.org/api/tasks/v1"

	"github.com/BruksfildServices01/calendar-scheduler/internal/dto"
)

// APIError is a non-2xx answer. Backend routes fill Code and Message, the
// Google proxies fill Detail.
type APIError struct {
	Status  int    `json:"-"`
	Code    string `json:"error_code"`
	Message string `json:"message"`
	Detail  string `json:"error"`
}

func (e *APIError) Error() string {
	switch {
	case e.Code != "":
		return fmt.Sprintf("api status %d: %s: %s", e.Status, e.Code, e.Message)
	case e.Detail != "":
		return fmt.Sprintf("api status %d: %s", e.Status, e.Detail)
	default:
		return fmt.Sprintf("api status %d", e.Status)
	}
}

// StatusOf returns the HTTP status carried by err, or 0.
func StatusOf(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Status
	}
	return 0
}

type Client struct {
	http *resty.Client
}

func New(baseURL string) *Client {
	c := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Content-Type", "application/json").
		SetTimeout(15 * time.Second)

	return &Client{http: c}
}

// SetToken attaches a bearer token to every following request. An empty
// token removes it.
func (c *Client) SetToken(token string) {
	c.http.SetAuthToken(token)
}

func (c *Client) do(ctx context.Context, method, path string, req func(*resty.Request), out any) error {
	apiErr := &APIError{}
	r := c.http.R().
		SetContext(ctx).
		SetError(apiErr)
	if out != nil {
		r.SetResult(out)
	}
	if req != nil {
		req(r)
	}

	resp, err := r.Execute(method, path)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	if resp.IsError() {
		apiErr.Status = resp.StatusCode()
		return apiErr
	}
	return nil
}

// Me resolves a stored session value. A nil user with a nil error means
// the server does not know it.
func (c *Client) Me(ctx context.Context, token string) (*dto.User, error) {
	var out dto.MeResponse
	err := c.do(ctx, http.MethodGet, "/me", func(r *resty.Request) {
		r.SetQueryParam("token", token)
	}, &out)
	if err != nil {
		return nil, err
	}
	return out.User, nil
}

func (c *Client) Register(ctx context.Context, name, password string) (*dto.AuthResponse, error) {
	var out dto.AuthResponse
	err := c.do(ctx, http.MethodPost, "/register", func(r *resty.Request) {
		r.SetBody(dto.RegisterRequest{Username: name, Password: password})
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Login(ctx context.Context, username, password string) (*dto.AuthResponse, error) {
	var out dto.AuthResponse
	err := c.do(ctx, http.MethodPost, "/login", func(r *resty.Request) {
		r.SetBody(dto.LoginRequest{Username: username, Password: password})
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ListTasks(ctx context.Context, userID string) ([]dto.Task, error) {
	var out []dto.Task
	err := c.do(ctx, http.MethodGet, "/tasks", func(r *resty.Request) {
		r.SetQueryParam("userId", userID)
	}, &out)
	return out, err
}

func (c *Client) CreateTask(ctx context.Context, userID string, task dto.NewTask) (*dto.Task, error) {
	var out dto.Task
	err := c.do(ctx, http.MethodPost, "/tasks", func(r *resty.Request) {
		r.SetBody(dto.CreateTaskRequest{UserID: userID, Task: task})
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ListAvailability(ctx context.Context, userID string) ([]dto.Slot, error) {
	var out []dto.Slot
	err := c.do(ctx, http.MethodGet, "/availability", func(r *resty.Request) {
		r.SetQueryParam("userId", userID)
	}, &out)
	return out, err
}

func (c *Client) SubmitAvailability(ctx context.Context, userID string, slots []dto.Slot) (*dto.Ack, error) {
	if slots == nil {
		slots = []dto.Slot{}
	}
	var out dto.Ack
	err := c.do(ctx, http.MethodPost, "/availability", func(r *resty.Request) {
		r.SetBody(dto.SubmitAvailabilityRequest{UserID: userID, Slots: slots})
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateRandomUser(ctx context.Context, name string) (*dto.User, error) {
	var out dto.User
	err := c.do(ctx, http.MethodPost, "/random-user", func(r *resty.Request) {
		r.SetBody(dto.RandomUserRequest{Name: name})
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateAppointment(ctx context.Context, ownerID, recipientID string, ap dto.NewAppointment) (*dto.Appointment, error) {
	var out dto.Appointment
	err := c.do(ctx, http.MethodPost, "/appointments", func(r *resty.Request) {
		r.SetBody(dto.CreateAppointmentRequest{UserID: ownerID, RecipientID: recipientID, Appointment: ap})
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ListAppointments(ctx context.Context, userID string) ([]dto.Appointment, error) {
	var out []dto.Appointment
	err := c.do(ctx, http.MethodGet, "/appointments", func(r *resty.Request) {
		r.SetQueryParam("userId", userID)
	}, &out)
	return out, err
}

func (c *Client) GoogleEvents(ctx context.Context) ([]*calendar.Event, error) {
	var out struct {
		Events []*calendar.Event `json:"events"`
	}
	if err := c.do(ctx, http.MethodGet, "/google-calendar", nil, &out); err != nil {
		return nil, err
	}
	return out.Events, nil
}

func (c *Client) GoogleTasks(ctx context.Context) ([]*tasks.Task, error) {
	var out []*tasks.Task
	err := c.do(ctx, http.MethodGet, "/google-calendar-tasks", nil, &out)
	return out, err
}
