package dto

import "time"

type User struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type Task struct {
	ID     string    `json:"id"`
	UserID string    `json:"userId"`
	Title  string    `json:"title"`
	Start  time.Time `json:"start"`
	End    time.Time `json:"end"`
}

type Slot struct {
	Start time.Time `json:"start" binding:"required"`
	End   time.Time `json:"end" binding:"required"`
}

type Appointment struct {
	ID          string    `json:"id"`
	UserID      string    `json:"userId"`
	RecipientID string    `json:"recipientId"`
	Title       string    `json:"title"`
	Start       time.Time `json:"start"`
	End         time.Time `json:"end"`
}

// --------- Requests ---------

type NewTask struct {
	Title string    `json:"title" binding:"required"`
	Start time.Time `json:"start" binding:"required"`
	End   time.Time `json:"end" binding:"required"`
}

type CreateTaskRequest struct {
	UserID string  `json:"userId" binding:"required"`
	Task   NewTask `json:"task"`
}

type SubmitAvailabilityRequest struct {
	UserID string `json:"userId" binding:"required"`
	Slots  []Slot `json:"slots" binding:"dive"`
}

type NewAppointment struct {
	Title string    `json:"title"`
	Start time.Time `json:"start" binding:"required"`
	End   time.Time `json:"end" binding:"required"`
}

type CreateAppointmentRequest struct {
	UserID      string         `json:"userId" binding:"required"`
	RecipientID string         `json:"recipientId" binding:"required"`
	Appointment NewAppointment `json:"appointment"`
}

// RegisterRequest accepts both the "name" and the "username" spellings.
type RegisterRequest struct {
	Name     string `json:"name"`
	Username string `json:"username"`
	Password string `json:"password"`
}

func (r RegisterRequest) DisplayName() string {
	if r.Username != "" {
		return r.Username
	}
	return r.Name
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type RandomUserRequest struct {
	Name string `json:"name"`
}

// --------- Responses ---------

type AuthResponse struct {
	User  User   `json:"user"`
	Token string `json:"token,omitempty"`
}

// MeResponse carries a null user when the lookup matched nothing.
type MeResponse struct {
	User *User `json:"user"`
}

type Ack struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
}
