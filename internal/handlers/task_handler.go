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

type TaskHandler struct {
	repo   domain.Repository
	create *uc.CreateTask
	log    zerolog.Logger
}

func NewTaskHandler(repo domain.Repository, create *uc.CreateTask, log zerolog.Logger) *TaskHandler {
	return &TaskHandler{repo: repo, create: create, log: log}
}

func (h *TaskHandler) List(c *gin.Context) {
	userID, ok := requireUserIDQuery(c)
	if !ok {
		return
	}

	tasks, err := h.repo.ListTasks(c.Request.Context(), userID)
	if err != nil {
		writeError(c, h.log, err, "failed_to_list_tasks")
		return
	}

	c.JSON(http.StatusOK, dto.FromTasks(tasks))
}

func (h *TaskHandler) Create(c *gin.Context) {
	var req dto.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}
	if !ensureOwner(c, req.UserID) {
		return
	}

	task, err := h.create.Execute(c.Request.Context(), uc.CreateTaskInput{
		UserID: req.UserID,
		Title:  req.Task.Title,
		Start:  req.Task.Start,
		End:    req.Task.End,
	})
	if err != nil {
		writeError(c, h.log, err, "failed_to_create_task")
		return
	}

	c.JSON(http.StatusCreated, dto.FromTask(*task))
}
