package usecase

import (
	"testing"

	"github.com/ferdian3456/tcbridge/internal/model"

	"github.com/stretchr/testify/require"
)

func TestScheduleWindow(t *testing.T) {
	startMs, endMs, err := scheduleWindow("29-11-2025 4:30PM", "29-11-2025 6:00PM")
	require.NoError(t, err, "a valid window should convert")
	require.Less(t, startMs, endMs, "start must come before end")
}

func TestScheduleWindowBadStart(t *testing.T) {
	_, _, err := scheduleWindow("2025-11-29", "29-11-2025 6:00PM")

	var validationErr *model.ValidationError
	require.ErrorAs(t, err, &validationErr, "a malformed start should be a ValidationError")
	require.Equal(t, "start_time", validationErr.Param, "the offending field should be named")
}

func TestScheduleWindowBadEnd(t *testing.T) {
	_, _, err := scheduleWindow("29-11-2025 4:30PM", "six pm")

	var validationErr *model.ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "end_time", validationErr.Param)
}

func TestScheduleWindowEndBeforeStart(t *testing.T) {
	_, _, err := scheduleWindow("29-11-2025 6:00PM", "29-11-2025 4:30PM")

	var validationErr *model.ValidationError
	require.ErrorAs(t, err, &validationErr, "an inverted window should be a ValidationError")
	require.Equal(t, "end_time", validationErr.Param)
}
