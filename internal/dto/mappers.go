package dto

import "github.com/BruksfildServices01/calendar-scheduler/internal/models"

func FromUser(u *models.User) User {
	return User{ID: u.ID, Name: u.Name}
}

func FromTask(t models.Task) Task {
	return Task{
		ID:     t.ID,
		UserID: t.UserID,
		Title:  t.Title,
		Start:  t.Start,
		End:    t.End,
	}
}

func FromTasks(in []models.Task) []Task {
	out := make([]Task, 0, len(in))
	for _, t := range in {
		out = append(out, FromTask(t))
	}
	return out
}

func FromSlots(in []models.AvailabilitySlot) []Slot {
	out := make([]Slot, 0, len(in))
	for _, s := range in {
		out = append(out, Slot{Start: s.Start, End: s.End})
	}
	return out
}

func FromAppointment(ap models.Appointment) Appointment {
	return Appointment{
		ID:          ap.ID,
		UserID:      ap.UserID,
		RecipientID: ap.RecipientID,
		Title:       ap.Title,
		Start:       ap.Start,
		End:         ap.End,
	}
}

func FromAppointments(in []models.Appointment) []Appointment {
	out := make([]Appointment, 0, len(in))
	for _, ap := range in {
		out = append(out, FromAppointment(ap))
	}
	return out
}
