// Package ical renders a user's tasks and booked appointments as an
// iCalendar feed that desktop calendars can subscribe to.
package ical

import (
	"io"
	"time"

	goical "github.com/emersion/go-ical"

	"github.com/BruksfildServices01/calendar-scheduler/internal/models"
)

const productID = "-//calendar-scheduler//EN"

// WriteFeed encodes one VEVENT per task and appointment. stamp is used as
// DTSTAMP for every event.
func WriteFeed(w io.Writer, tasks []models.Task, appointments []models.Appointment, stamp time.Time) error {
	cal := goical.NewCalendar()
	cal.Props.SetText(goical.PropVersion, "2.0")
	cal.Props.SetText(goical.PropProductID, productID)

	for _, t := range tasks {
		cal.Children = append(cal.Children, event("task-"+t.ID, t.Title, t.Start, t.End, stamp).Component)
	}
	for _, ap := range appointments {
		cal.Children = append(cal.Children, event("appointment-"+ap.ID, ap.Title, ap.Start, ap.End, stamp).Component)
	}

	return goical.NewEncoder(w).Encode(cal)
}

func event(uid, summary string, start, end, stamp time.Time) *goical.Event {
	ev := goical.NewEvent()
	ev.Props.SetText(goical.PropUID, uid)
	ev.Props.SetDateTime(goical.PropDateTimeStamp, stamp.UTC())
	ev.Props.SetDateTime(goical.PropDateTimeStart, start.UTC())
	ev.Props.SetDateTime(goical.PropDateTimeEnd, end.UTC())
	ev.Props.SetText(goical.PropSummary, summary)
	return ev
}
