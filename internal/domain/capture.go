package domain

// ExecuteCapture plays the hand card identified by handCardID, capturing the
// selected table cards and builds into userID's captured pile. The returned
// slice holds every card that entered the pile: the hand card, the selected
// table cards, and the constituent cards of every captured build.
//
// The operation is atomic: every lookup and the rule validation run before
// any mutation, so a rejected capture leaves the game byte-for-byte unchanged.
func ExecuteCapture(g *Game, userID, handCardID string, tableCardIDs, buildIDs []string) ([]Card, error) {
	pl, ok := g.Players[userID]
	if !ok {
		return nil, ErrUnknownPlayer
	}
	if g.CurrentTurn != userID {
		return nil, ErrNotPlayersTurn
	}

	handCard, ok := FindCardByID(pl.Hand, handCardID)
	if !ok {
		return nil, ErrCardNotFound
	}
	// Selection IDs arrive from clients; a repeated ID would double-count a
	// card in the sum and duplicate it into the pile.
	seen := make(map[string]bool, len(tableCardIDs)+len(buildIDs))
	tableCards := make([]Card, 0, len(tableCardIDs))
	for _, id := range tableCardIDs {
		if seen[id] {
			return nil, ErrDuplicateSelection
		}
		seen[id] = true
		c, ok := FindCardByID(g.Table, id)
		if !ok {
			return nil, ErrCardNotFound
		}
		tableCards = append(tableCards, c)
	}
	builds := make([]Build, 0, len(buildIDs))
	for _, id := range buildIDs {
		if seen[id] {
			return nil, ErrDuplicateSelection
		}
		seen[id] = true
		b, ok := FindBuildByID(g.Builds, id)
		if !ok {
			return nil, ErrBuildNotFound
		}
		builds = append(builds, b)
	}

	if err := ValidateCapture(handCard, tableCards, builds); err != nil {
		return nil, err
	}

	pl.Hand, _ = RemoveCardByID(pl.Hand, handCard.ID)
	for _, c := range tableCards {
		g.Table, _ = RemoveCardByID(g.Table, c.ID)
	}

	captured := make([]Card, 0, 1+len(tableCards)+len(builds)*2)
	captured = append(captured, handCard)
	captured = append(captured, tableCards...)
	for _, b := range builds {
		g.Builds, _ = RemoveBuildByID(g.Builds, b.ID)
		captured = append(captured, b.Cards...)
	}

	pl.Captured = append(pl.Captured, captured...)
	return captured, nil
}

// ExecuteTrail plays the hand card identified by handCardID face-up onto the
// table with no capture or build effect.
func ExecuteTrail(g *Game, userID, handCardID string) (Card, error) {
	pl, ok := g.Players[userID]
	if !ok {
		return Card{}, ErrUnknownPlayer
	}
	if g.CurrentTurn != userID {
		return Card{}, ErrNotPlayersTurn
	}

	handCard, ok := FindCardByID(pl.Hand, handCardID)
	if !ok {
		return Card{}, ErrCardNotFound
	}
	if err := ValidateTrail(handCard); err != nil {
		return Card{}, err
	}

	pl.Hand, _ = RemoveCardByID(pl.Hand, handCard.ID)
	g.Table = append(g.Table, handCard)
	return handCard, nil
}
