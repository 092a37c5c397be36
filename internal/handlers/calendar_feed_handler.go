package handlers

import (
	"bytes"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	domain "github.com/BruksfildServices01/calendar-scheduler/internal/domain/scheduling"
	"github.com/BruksfildServices01/calendar-scheduler/internal/ical"
)

type CalendarFeedHandler struct {
	repo domain.Repository
	log  zerolog.Logger
	now  func() time.Time
}

func NewCalendarFeedHandler(repo domain.Repository, log zerolog.Logger) *CalendarFeedHandler {
	return &CalendarFeedHandler{repo: repo, log: log, now: time.Now}
}

func (h *CalendarFeedHandler) Feed(c *gin.Context) {
	userID, ok := requireUserIDQuery(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()

	tasks, err := h.repo.ListTasks(ctx, userID)
	if err != nil {
		writeError(c, h.log, err, "failed_to_list_tasks")
		return
	}
	apps, err := h.repo.ListAppointments(ctx, userID)
	if err != nil {
		writeError(c, h.log, err, "failed_to_list_appointments")
		return
	}

	var buf bytes.Buffer
	if err := ical.WriteFeed(&buf, tasks, apps, h.now()); err != nil {
		writeError(c, h.log, err, "failed_to_render_calendar")
		return
	}

	c.Data(http.StatusOK, "text/calendar; charset=utf-8", buf.Bytes())
}
