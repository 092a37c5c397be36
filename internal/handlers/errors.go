package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	domain "github.com/BruksfildServices01/calendar-scheduler/internal/domain/scheduling"
	"github.com/BruksfildServices01/calendar-scheduler/internal/httperr"
	"github.com/BruksfildServices01/calendar-scheduler/internal/middleware"
)

// writeError maps use case failures onto the JSON error envelope.
func writeError(c *gin.Context, log zerolog.Logger, err error, fallbackCode string) {
	switch code := httperr.Code(err); code {
	case domain.CodeInvalidInterval:
		httperr.BadRequest(c, code, "Start must be before end.")
	case "invalid_name":
		httperr.BadRequest(c, code, "Name is required.")
	case "invalid_title":
		httperr.BadRequest(c, code, "Title is required.")
	case domain.CodeUserNotFound:
		httperr.NotFound(c, code, "User not found.")
	case domain.CodeRecipientNotFound:
		httperr.NotFound(c, code, "Recipient not found.")
	case domain.CodeUsernameTaken:
		httperr.Conflict(c, code, "Username already taken.")
	case domain.CodeInvalidCredentials:
		httperr.Unauthorized(c, code, "Invalid username or password.")
	default:
		log.Error().Err(err).Str("path", c.FullPath()).Msg(fallbackCode)
		httperr.Internal(c, fallbackCode, "Internal error.")
	}
}

// ensureOwner rejects writes whose token belongs to someone other than userID.
// Anonymous requests pass.
func ensureOwner(c *gin.Context, userID string) bool {
	if authed, ok := middleware.AuthenticatedUserID(c); ok && authed != userID {
		httperr.Forbidden(c, "not_owner", "Token does not belong to this user.")
		return false
	}
	return true
}

func requireUserIDQuery(c *gin.Context) (string, bool) {
	userID := c.Query("userId")
	if userID == "" {
		httperr.BadRequest(c, "missing_user_id", "userId is required.")
		return "", false
	}
	return userID, true
}
