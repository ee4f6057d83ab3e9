package domain

import "errors"

// RejectReason is a machine-readable code for a refused move. Clients surface
// these inline; none is fatal and the player simply re-selects.
type RejectReason string

const (
	RejectEmptySelection            RejectReason = "empty_selection"
	RejectSumMismatch               RejectReason = "sum_mismatch"
	RejectMissingCapturingCard      RejectReason = "missing_capturing_card"
	RejectBuildValueOutOfRange      RejectReason = "build_value_out_of_range"
	RejectBuildValueEqualsHandValue RejectReason = "build_value_equals_hand_value"
	RejectNotPlayersTurn            RejectReason = "not_players_turn"
)

// RuleError is a recoverable rejection of a proposed move. It is returned,
// never panicked, and a rejected move leaves game state untouched.
type RuleError struct {
	Reason  RejectReason
	Message string
}

func (e *RuleError) Error() string { return e.Message }

var (
	ErrEmptySelection = &RuleError{Reason: RejectEmptySelection, Message: "no table cards or builds selected"}
	ErrSumMismatch    = &RuleError{Reason: RejectSumMismatch, Message: "selected cards do not sum to the required value"}
	// ErrMissingCapturingCard enforces the capturing-card requirement: a build
	// may only be created by a player still holding a card able to capture it.
	ErrMissingCapturingCard      = &RuleError{Reason: RejectMissingCapturingCard, Message: "no other card in hand can capture the build"}
	ErrBuildValueOutOfRange      = &RuleError{Reason: RejectBuildValueOutOfRange, Message: "build value must be between 2 and 14"}
	ErrBuildValueEqualsHandValue = &RuleError{Reason: RejectBuildValueEqualsHandValue, Message: "build value may not equal the played card's own value"}
	ErrNotPlayersTurn            = &RuleError{Reason: RejectNotPlayersTurn, Message: "not this player's turn"}
)

// Lookup failures are caller bugs (stale IDs), not rule rejections.
var (
	ErrUnknownPlayer      = errors.New("player not found")
	ErrCardNotFound       = errors.New("card not found")
	ErrBuildNotFound      = errors.New("build not found")
	ErrDuplicateSelection = errors.New("duplicate card or build in selection")
)
