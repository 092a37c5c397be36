package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	domain "github.com/BruksfildServices01/calendar-scheduler/internal/domain/scheduling"
	"github.com/BruksfildServices01/calendar-scheduler/internal/httperr"
	"github.com/BruksfildServices01/calendar-scheduler/internal/middleware"
)

// maxAuditPage keeps (page-1)*limit far from int overflow.
const maxAuditPage = 1_000_000

type AuditLogsHandler struct {
	repo domain.Repository
	log  zerolog.Logger
}

func NewAuditLogsHandler(repo domain.Repository, log zerolog.Logger) *AuditLogsHandler {
	return &AuditLogsHandler{repo: repo, log: log}
}

// List requires a token; users only see their own trail.
func (h *AuditLogsHandler) List(c *gin.Context) {
	userID, ok := middleware.AuthenticatedUserID(c)
	if !ok {
		httperr.Unauthorized(c, "missing_token", "A session token is required.")
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page <= 0 {
		page = 1
	}
	if page > maxAuditPage {
		page = maxAuditPage
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	logs, total, err := h.repo.ListAuditLogs(c.Request.Context(), userID, limit, (page-1)*limit)
	if err != nil {
		writeError(c, h.log, err, "audit_list_failed")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"page":  page,
		"limit": limit,
		"total": total,
		"logs":  logs,
	})
}
