// Package timeutil provides duration parsing and time formatting
// utilities for FFmpeg commands.
package timeutil

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Layout identifies which textual layout a duration was written in.
type Layout int

const (
	// LayoutSeconds is a plain number of seconds ("90", "90.5").
	LayoutSeconds Layout = iota
	// LayoutMinutesSeconds is the MM:SS form ("05:30").
	LayoutMinutesSeconds
	// LayoutHoursMinutesSeconds is the HH:MM:SS form ("01:05:30").
	LayoutHoursMinutesSeconds
)

// String returns a human-readable name for the layout.
func (l Layout) String() string {
	switch l {
	case LayoutSeconds:
		return "seconds"
	case LayoutMinutesSeconds:
		return "MM:SS"
	case LayoutHoursMinutesSeconds:
		return "HH:MM:SS"
	default:
		return "unknown"
	}
}

// Duration is a parsed time value together with the layout it was
// written in. The layout is informational only; Seconds is always the
// total in seconds.
type Duration struct {
	Seconds float64
	Layout  Layout
}

// ParseDuration parses a duration in one of three layouts:
//
//	"90" or "90.5"  plain seconds, must be positive and finite
//	"05:30"         minutes:seconds, seconds in [0, 60)
//	"01:05:30"      hours:minutes:seconds, minutes and seconds in [0, 60)
//
// The colon layouts accept a zero total ("0:00"); callers that need a
// positive duration check the total themselves. Returns false for
// anything else: empty input, out-of-range fields ("00:60"), negative
// values, or extra fields.
func ParseDuration(raw string) (Duration, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return Duration{}, false
	}

	if v, err := strconv.ParseFloat(s, 64); err == nil {
		if v > 0 && !math.IsNaN(v) && !math.IsInf(v, 0) {
			return Duration{Seconds: v, Layout: LayoutSeconds}, true
		}
		// A non-positive number has no colon fields to fall back to.
		return Duration{}, false
	}

	parts := strings.Split(s, ":")
	switch len(parts) {
	case 2:
		minutes, err := strconv.Atoi(parts[0])
		if err != nil || minutes < 0 {
			return Duration{}, false
		}
		secs, ok := parseSecondsField(parts[1])
		if !ok {
			return Duration{}, false
		}
		return Duration{
			Seconds: float64(minutes)*60 + secs,
			Layout:  LayoutMinutesSeconds,
		}, true
	case 3:
		hours, err := strconv.Atoi(parts[0])
		if err != nil || hours < 0 {
			return Duration{}, false
		}
		minutes, err := strconv.Atoi(parts[1])
		if err != nil || minutes < 0 || minutes >= 60 {
			return Duration{}, false
		}
		secs, ok := parseSecondsField(parts[2])
		if !ok {
			return Duration{}, false
		}
		return Duration{
			Seconds: float64(hours)*3600 + float64(minutes)*60 + secs,
			Layout:  LayoutHoursMinutesSeconds,
		}, true
	}
	return Duration{}, false
}

// parseSecondsField parses the trailing seconds field of a colon
// layout. Fractional seconds are allowed; the value must be in [0, 60).
func parseSecondsField(field string) (float64, bool) {
	v, err := strconv.ParseFloat(field, 64)
	if err != nil || math.IsNaN(v) || v < 0 || v >= 60 {
		return 0, false
	}
	return v, true
}

// FormatSeconds converts seconds to HH:MM:SS.MS format for FFmpeg.
//
// This format is used for FFmpeg time parameters like -ss (seek start)
// and -to (seek end). Supports fractional seconds for precise timing.
//
// Example:
//
//	FormatSeconds(0)      // "00:00:00.00"
//	FormatSeconds(90)     // "00:01:30.00"
//	FormatSeconds(3661)   // "01:01:01.00"
//	FormatSeconds(30.53)  // "00:00:30.53"
//	FormatSeconds(1.999)  // "00:00:01.99"
func FormatSeconds(seconds float64) string {
	if seconds < 0 {
		seconds = 0
	}
	hours := int(seconds) / 3600
	minutes := (int(seconds) % 3600) / 60
	secs := seconds - float64(hours*3600) - float64(minutes*60)
	return fmt.Sprintf("%02d:%02d:%05.2f", hours, minutes, secs)
}
