package domain

// CreateBuild plays the hand card identified by handCardID together with the
// selected table cards as a new build at the given value for userID.
//
// On success the hand card and table cards move into a freshly allocated
// build. On any rejection the game state is left untouched. There is no build
// extension: cards can never be added to an existing build.
func CreateBuild(g *Game, userID, handCardID string, tableCardIDs []string, value int) (Build, error) {
	pl, ok := g.Players[userID]
	if !ok {
		return Build{}, ErrUnknownPlayer
	}
	if g.CurrentTurn != userID {
		return Build{}, ErrNotPlayersTurn
	}

	handCard, ok := FindCardByID(pl.Hand, handCardID)
	if !ok {
		return Build{}, ErrCardNotFound
	}
	seen := make(map[string]bool, len(tableCardIDs))
	tableCards := make([]Card, 0, len(tableCardIDs))
	for _, id := range tableCardIDs {
		if seen[id] {
			return Build{}, ErrDuplicateSelection
		}
		seen[id] = true
		c, ok := FindCardByID(g.Table, id)
		if !ok {
			return Build{}, ErrCardNotFound
		}
		tableCards = append(tableCards, c)
	}

	if err := ValidateBuild(handCard, tableCards, value, pl.Hand); err != nil {
		return Build{}, err
	}

	pl.Hand, _ = RemoveCardByID(pl.Hand, handCard.ID)
	for _, c := range tableCards {
		g.Table, _ = RemoveCardByID(g.Table, c.ID)
	}

	build := Build{
		ID:    g.NextBuildID(),
		Cards: append([]Card{handCard}, tableCards...),
		Value: value,
		Owner: userID,
	}
	g.Builds = append(g.Builds, build)
	return build, nil
}
