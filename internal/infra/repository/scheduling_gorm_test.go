package repository

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/calendar-scheduler/internal/domain/scheduling"
)

func TestTranslate(t *testing.T) {
	assert.NoError(t, translate(nil))

	assert.ErrorIs(t, translate(gorm.ErrRecordNotFound), domain.ErrNotFound)
	assert.ErrorIs(t, translate(fmt.Errorf("first: %w", gorm.ErrRecordNotFound)), domain.ErrNotFound)

	unique := &pgconn.PgError{Code: "23505", ConstraintName: "idx_users_username"}
	assert.ErrorIs(t, translate(unique), domain.ErrDuplicate)
	assert.ErrorIs(t, translate(fmt.Errorf("create: %w", unique)), domain.ErrDuplicate)

	fk := &pgconn.PgError{Code: "23503"}
	assert.Equal(t, error(fk), translate(fk))

	other := errors.New("connection reset")
	assert.Equal(t, other, translate(other))
}
