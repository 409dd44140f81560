package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseHoursOrHM parses a manual duration input into minutes. Accepts
// "H:MM" ("7:30"), decimal hours with dot or comma ("7.5", "7,5"), or plain
// hours ("2"). Returns ErrInvalidInput for anything else or a zero duration.
func ParseHoursOrHM(input string) (int, error) {
	t := strings.TrimSpace(input)
	if t == "" {
		return 0, fmt.Errorf("duration is required: %w", ErrInvalidInput)
	}

	if strings.Contains(t, ":") {
		parts := strings.SplitN(t, ":", 2)
		h, errH := strconv.Atoi(parts[0])
		m, errM := strconv.Atoi(parts[1])
		if errH != nil || errM != nil || h < 0 || m < 0 || m > 59 {
			return 0, fmt.Errorf("duration %q: %w", input, ErrInvalidInput)
		}
		min := h*60 + m
		if min == 0 {
			return 0, fmt.Errorf("duration %q is zero: %w", input, ErrInvalidInput)
		}
		return min, nil
	}

	dec, err := strconv.ParseFloat(strings.ReplaceAll(t, ",", "."), 64)
	if err != nil || dec < 0 {
		return 0, fmt.Errorf("duration %q: %w", input, ErrInvalidInput)
	}
	min := int(dec*60 + 0.5)
	if min == 0 {
		return 0, fmt.Errorf("duration %q is zero: %w", input, ErrInvalidInput)
	}
	return min, nil
}

// FormatMinutes renders minutes as "H:MM" for tabular display.
func FormatMinutes(min int) string {
	return fmt.Sprintf("%d:%02d", min/60, min%60)
}

// FormatMinutesHuman renders minutes as "2h 5m", or "45m" under an hour.
func FormatMinutesHuman(min int) string {
	h := min / 60
	m := min % 60
	if h == 0 {
		return fmt.Sprintf("%dm", m)
	}
	return fmt.Sprintf("%dh %dm", h, m)
}
