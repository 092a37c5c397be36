package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"google.golang.org/api/calendar/v3"
	tasks "google.golang.org/api/tasks/v1"

	"github.com/BruksfildServices01/calendar-scheduler/internal/google"
)

// GoogleHandler proxies read-only listings from the operator's Google
// account. Every failure, whatever its cause, becomes 500 {"error": msg}.
type GoogleHandler struct {
	source google.Source
	log    zerolog.Logger
}

func NewGoogleHandler(source google.Source, log zerolog.Logger) *GoogleHandler {
	return &GoogleHandler{source: source, log: log}
}

func (h *GoogleHandler) Events(c *gin.Context) {
	items, err := h.source.UpcomingEvents(c.Request.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("error fetching calendar events")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if items == nil {
		items = []*calendar.Event{}
	}

	c.JSON(http.StatusOK, gin.H{"events": items})
}

func (h *GoogleHandler) Tasks(c *gin.Context) {
	items, err := h.source.DefaultTasks(c.Request.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("error fetching tasks")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if items == nil {
		items = []*tasks.Task{}
	}

	h.log.Debug().Int("count", len(items)).Msg("fetched tasks")
	c.JSON(http.StatusOK, items)
}
