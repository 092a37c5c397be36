package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	domain "github.com/BruksfildServices01/calendar-scheduler/internal/domain/scheduling"
	"github.com/BruksfildServices01/calendar-scheduler/internal/dto"
	"github.com/BruksfildServices01/calendar-scheduler/internal/httperr"
	uc "github.com/BruksfildServices01/calendar-scheduler/internal/usecase/scheduling"
)

type AppointmentHandler struct {
	repo domain.Repository
	book *uc.BookAppointment
	log  zerolog.Logger
}

func NewAppointmentHandler(repo domain.Repository, book *uc.BookAppointment, log zerolog.Logger) *AppointmentHandler {
	return &AppointmentHandler{repo: repo, book: book, log: log}
}

// Create is called anonymously from the public booking page.
func (h *AppointmentHandler) Create(c *gin.Context) {
	var req dto.CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	ap, err := h.book.Execute(c.Request.Context(), uc.BookAppointmentInput{
		OwnerID:     req.UserID,
		RecipientID: req.RecipientID,
		Title:       req.Appointment.Title,
		Start:       req.Appointment.Start,
		End:         req.Appointment.End,
	})
	if err != nil {
		writeError(c, h.log, err, "failed_to_create_appointment")
		return
	}

	c.JSON(http.StatusCreated, dto.FromAppointment(*ap))
}

func (h *AppointmentHandler) List(c *gin.Context) {
	userID, ok := requireUserIDQuery(c)
	if !ok {
		return
	}

	apps, err := h.repo.ListAppointments(c.Request.Context(), userID)
	if err != nil {
		writeError(c, h.log, err, "failed_to_list_appointments")
		return
	}

	c.JSON(http.StatusOK, dto.FromAppointments(apps))
}
