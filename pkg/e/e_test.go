package e

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestWrapError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{name: "no rows", err: pgx.ErrNoRows, want: ErrNotFound},
		{name: "deadline", err: fmt.Errorf("query: %w", context.DeadlineExceeded), want: ErrDeadline},
		{name: "canceled", err: context.Canceled, want: ErrCanceled},
		{name: "unique", err: &pgconn.PgError{Code: pgerrcode.UniqueViolation}, want: ErrConflict},
		{name: "fk", err: &pgconn.PgError{Code: pgerrcode.ForeignKeyViolation}, want: ErrInvalidInput},
		{name: "other pg", err: &pgconn.PgError{Code: pgerrcode.DiskFull}, want: ErrInternal},
		{name: "unknown", err: errors.New("boom"), want: ErrInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := WrapError("repo.op", tt.err)
			assert.ErrorIs(t, got, tt.want)
			assert.ErrorContains(t, got, "repo.op")
		})
	}
}

func TestWrapError_Nil(t *testing.T) {
	assert.NoError(t, WrapError("op", nil))
}

func TestInvalid(t *testing.T) {
	err := Invalid("species reference is required")
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.ErrorContains(t, err, "species reference is required")
}
