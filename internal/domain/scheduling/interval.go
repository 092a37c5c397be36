package scheduling

import (
	"fmt"
	"time"

	"github.com/BruksfildServices01/calendar-scheduler/internal/httperr"
)

const (
	CodeInvalidInterval    = "invalid_interval"
	CodeUserNotFound       = "user_not_found"
	CodeRecipientNotFound  = "recipient_not_found"
	CodeUsernameTaken      = "username_taken"
	CodeInvalidCredentials = "invalid_credentials"
)

// ValidateInterval enforces start < end with both ends set.
func ValidateInterval(start, end time.Time) error {
	if start.IsZero() || end.IsZero() || !start.Before(end) {
		return httperr.ErrBusiness(CodeInvalidInterval)
	}
	return nil
}

// AppointmentTitle is the title given to a booking made by a visitor.
func AppointmentTitle(visitorName string) string {
	return fmt.Sprintf("Appointment with %s", visitorName)
}
