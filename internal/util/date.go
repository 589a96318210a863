package util

import (
	"strings"
	"time"
)

const wrapperDateLayout = "02-01-2006 3:04PM"

// DateToEpochMillis converts the wrapper's human date format
// DD-MM-YYYY HH:MMAM/PM (e.g. "29-11-2025 4:30PM") into milliseconds since
// the Unix epoch, interpreted in the process time zone.
func DateToEpochMillis(givenDate string) (int64, error) {
	parsed, err := time.ParseInLocation(wrapperDateLayout, strings.TrimSpace(givenDate), time.Local)
	if err != nil {
		return 0, err
	}
	return parsed.UnixMilli(), nil
}
