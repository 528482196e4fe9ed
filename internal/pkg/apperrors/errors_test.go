package apperrors

import (
	"errors"
	"fmt"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSourceUnreadableError_UnwrapsToSentinel(t *testing.T) {
	err := NewSourceUnreadableError("missing.csv", os.ErrNotExist)

	assert.True(t, errors.Is(err, ErrSourceUnreadable))
	assert.Equal(t, "unable to open: missing.csv", err.Error())

	var ce *CustomError
	if assert.True(t, errors.As(err, &ce)) {
		assert.Equal(t, "missing.csv", ce.Details["path"])
	}
}

func TestSourceReadError_DistinctMessage(t *testing.T) {
	err := NewSourceReadError("courses.csv", errors.New("disk gone"))

	assert.True(t, errors.Is(err, ErrSourceUnreadable))
	assert.Equal(t, "unable to read: courses.csv", err.Error())
}

func TestIs_MatchesAnyInList(t *testing.T) {
	wrapped := fmt.Errorf("menu: %w", ErrInvalidOption)

	assert.True(t, Is(wrapped, ErrInputClosed, ErrInvalidOption))
	assert.False(t, Is(wrapped, ErrInputClosed, ErrMalformedRecord))
}

func TestCustomError_FallsBackToWrappedMessage(t *testing.T) {
	ce := &CustomError{Err: ErrMalformedRecord}
	assert.Equal(t, ErrMalformedRecord.Error(), ce.Error())

	assert.Equal(t, "unknown error", (&CustomError{}).Error())
}
