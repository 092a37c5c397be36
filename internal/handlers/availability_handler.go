package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	domain "github.com/BruksfildServices01/calendar-scheduler/internal/domain/scheduling"
	"github.com/BruksfildServices01/calendar-scheduler/internal/dto"
	"github.com/BruksfildServices01/calendar-scheduler/internal/httperr"
	"github.com/BruksfildServices01/calendar-scheduler/internal/models"
	uc "github.com/BruksfildServices01/calendar-scheduler/internal/usecase/scheduling"
)

type AvailabilityHandler struct {
	repo    domain.Repository
	replace *uc.ReplaceAvailability
	log     zerolog.Logger
}

func NewAvailabilityHandler(repo domain.Repository, replace *uc.ReplaceAvailability, log zerolog.Logger) *AvailabilityHandler {
	return &AvailabilityHandler{repo: repo, replace: replace, log: log}
}

func (h *AvailabilityHandler) List(c *gin.Context) {
	userID, ok := requireUserIDQuery(c)
	if !ok {
		return
	}

	slots, err := h.repo.ListAvailability(c.Request.Context(), userID)
	if err != nil {
		writeError(c, h.log, err, "failed_to_list_availability")
		return
	}

	c.JSON(http.StatusOK, dto.FromSlots(slots))
}

// Submit replaces the stored availability with the submitted list.
func (h *AvailabilityHandler) Submit(c *gin.Context) {
	var req dto.SubmitAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}
	if !ensureOwner(c, req.UserID) {
		return
	}

	slots := make([]models.AvailabilitySlot, 0, len(req.Slots))
	for _, s := range req.Slots {
		slots = append(slots, models.AvailabilitySlot{Start: s.Start, End: s.End})
	}

	n, err := h.replace.Execute(c.Request.Context(), uc.ReplaceAvailabilityInput{
		UserID: req.UserID,
		Slots:  slots,
	})
	if err != nil {
		writeError(c, h.log, err, "failed_to_save_availability")
		return
	}

	c.JSON(http.StatusOK, dto.Ack{Status: "ok", Count: n})
}
