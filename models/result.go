package models

import (
	"fmt"
	"strings"
)

// OperationResult represents the outcome of a single toolkit operation.
//
// Every operation reports exactly these two fields: success carries an
// empty message, failure carries one human-readable sentence describing
// the first check or engine call that failed. No partially completed
// operation is ever reported as a success.
//
// Use Succeeded or Failed to create consistent instances.
type OperationResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Succeeded creates a successful OperationResult.
func Succeeded() OperationResult {
	return OperationResult{Success: true}
}

// Failed creates a failed OperationResult with a formatted message.
//
// Example:
//
//	return models.Failed("invalid quality preset: %q", preset)
func Failed(format string, args ...any) OperationResult {
	return OperationResult{Success: false, Message: fmt.Sprintf(format, args...)}
}

// Validate checks if the OperationResult has consistent state.
//
// Returns an error if:
//   - Success is true but Message is non-empty
//   - Success is false but Message is empty (must say what failed)
func (r OperationResult) Validate() error {
	if r.Success && strings.TrimSpace(r.Message) != "" {
		return fmt.Errorf("inconsistent state: Success is true but Message is set")
	}
	if !r.Success && strings.TrimSpace(r.Message) == "" {
		return fmt.Errorf("failed result must have a message")
	}
	return nil
}
