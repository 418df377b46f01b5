package models

import (
	"errors"
	"fmt"
)

// Split plan errors callers branch on.
var (
	// ErrBoundaryNotPositive reports a split boundary at or below zero.
	ErrBoundaryNotPositive = errors.New("split boundary must be positive")
	// ErrBoundaryExceedsTotal reports a split boundary at or past the
	// end of the source. Equality counts: splitting at the exact total
	// would leave an empty second part.
	ErrBoundaryExceedsTotal = errors.New("split boundary exceeds total duration")
)

// PartRange is the time range of one output part of a split.
//
// Note: Start and End use float64 to preserve fractional seconds, which
// is critical for precise cut points and audio sync.
type PartRange struct {
	Index int     `json:"index"`
	Start float64 `json:"start"`
	End   float64 `json:"end"`
}

// NewPartRange creates a PartRange with validation.
//
// Returns an error if the parameters are invalid:
//   - Index must be at least 1
//   - Start cannot be negative
//   - End must be greater than Start
func NewPartRange(index int, start, end float64) (PartRange, error) {
	p := PartRange{Index: index, Start: start, End: end}
	if err := p.Validate(); err != nil {
		return PartRange{}, fmt.Errorf("invalid part range: %w", err)
	}
	return p, nil
}

// Validate checks if the PartRange has valid data.
func (p PartRange) Validate() error {
	if p.Index < 1 {
		return fmt.Errorf("index must be at least 1")
	}
	if p.Start < 0 {
		return fmt.Errorf("start must not be negative")
	}
	if p.End <= p.Start {
		return fmt.Errorf("end must be greater than start")
	}
	return nil
}

// Duration returns the length of the part in seconds.
func (p PartRange) Duration() float64 {
	return p.End - p.Start
}

// SplitPlan is the full plan for cutting a source at one boundary: two
// contiguous, non-overlapping parts covering the whole input.
//
// Use NewSplitPlan to create a validated instance; the boundary is
// never clamped into range.
type SplitPlan struct {
	Boundary float64      `json:"boundary"`
	Total    float64      `json:"total"`
	Parts    [2]PartRange `json:"parts"`
}

// NewSplitPlan creates a SplitPlan for splitting a source of the given
// total duration at boundary seconds.
//
// Returns ErrBoundaryNotPositive when boundary <= 0 and
// ErrBoundaryExceedsTotal when boundary >= total. The resulting parts
// are exactly [0, boundary] and [boundary, total].
func NewSplitPlan(boundary, total float64) (SplitPlan, error) {
	if boundary <= 0 {
		return SplitPlan{}, ErrBoundaryNotPositive
	}
	if total <= 0 {
		return SplitPlan{}, fmt.Errorf("total duration must be positive, got %.2f", total)
	}
	if boundary >= total {
		return SplitPlan{}, ErrBoundaryExceedsTotal
	}

	first, err := NewPartRange(1, 0, boundary)
	if err != nil {
		return SplitPlan{}, err
	}
	second, err := NewPartRange(2, boundary, total)
	if err != nil {
		return SplitPlan{}, err
	}

	return SplitPlan{
		Boundary: boundary,
		Total:    total,
		Parts:    [2]PartRange{first, second},
	}, nil
}
