package domain

// ValidateCapture reports whether playing handCard may capture the selected
// table cards and builds. A capture is legal when at least one target is
// selected and the build values of the selected table cards plus the declared
// values of the selected builds sum to the played card's build value.
//
// Build ownership is deliberately not checked: either player may capture any
// build, their own or the opponent's, if the value matches.
func ValidateCapture(handCard Card, tableCards []Card, builds []Build) error {
	if len(tableCards)+len(builds) == 0 {
		return ErrEmptySelection
	}
	sum := SumBuildValues(tableCards)
	for _, b := range builds {
		sum += b.Value
	}
	if sum != BuildValue(handCard.Rank) {
		return ErrSumMismatch
	}
	return nil
}

// ValidateBuild reports whether playing handCard onto the selected table cards
// may create a build at the proposed value. hand is the acting player's full
// hand including handCard; the capturing-card requirement is checked against
// the rest of the hand.
func ValidateBuild(handCard Card, tableCards []Card, proposedValue int, hand []Card) error {
	if proposedValue < MinBuildValue || proposedValue > MaxBuildValue {
		return ErrBuildValueOutOfRange
	}
	if proposedValue == BuildValue(handCard.Rank) {
		return ErrBuildValueEqualsHandValue
	}
	if len(tableCards) == 0 {
		return ErrEmptySelection
	}
	if BuildValue(handCard.Rank)+SumBuildValues(tableCards) != proposedValue {
		return ErrSumMismatch
	}
	for _, c := range hand {
		if c.ID != handCard.ID && BuildValue(c.Rank) == proposedValue {
			return nil
		}
	}
	return ErrMissingCapturingCard
}

// ValidateTrail always succeeds: trailing is the fallback action available on
// every turn, since a player must dispose of exactly one hand card per turn.
func ValidateTrail(handCard Card) error {
	return nil
}

// CanCapture is the boolean convenience form of ValidateCapture.
func CanCapture(handCard Card, tableCards []Card, builds []Build) bool {
	return ValidateCapture(handCard, tableCards, builds) == nil
}

// CanBuild is the boolean convenience form of ValidateBuild.
func CanBuild(handCard Card, tableCards []Card, proposedValue int, hand []Card) bool {
	return ValidateBuild(handCard, tableCards, proposedValue, hand) == nil
}
