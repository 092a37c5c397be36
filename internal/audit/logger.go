package audit

import (
	"context"
	"encoding/json"

	"github.com/BruksfildServices01/calendar-scheduler/internal/models"
)

// Sink persists audit rows; the scheduling repositories implement it.
type Sink interface {
	SaveAuditLog(ctx context.Context, log *models.AuditLog) error
}

type Logger struct {
	sink Sink
}

func New(sink Sink) *Logger {
	return &Logger{sink: sink}
}

func (l *Logger) Log(ctx context.Context, ev Event) error {
	var metaJSON string
	if ev.Metadata != nil {
		if b, err := json.Marshal(ev.Metadata); err == nil {
			metaJSON = string(b)
		}
	}

	return l.sink.SaveAuditLog(ctx, &models.AuditLog{
		UserID:   ev.UserID,
		Action:   ev.Action,
		Entity:   ev.Entity,
		EntityID: ev.EntityID,
		Metadata: metaJSON,
	})
}
