// Package profile holds per-user preferences and match statistics behind an
// explicit store with an injected load/save adapter. Nothing here is cached in
// package state; callers construct a Store and pass it where needed.
package profile

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Malungisa-Mndzebele/cassino-card-game-sub003/internal/ports"
)

// Preferences are the client-tunable settings.
type Preferences struct {
	SoundEnabled bool `json:"sound_enabled"`
	HintsEnabled bool `json:"hints_enabled"`
}

// Stats accumulates per-user results across rounds.
type Stats struct {
	RoundsPlayed int `json:"rounds_played"`
	RoundsWon    int `json:"rounds_won"`
	PointsScored int `json:"points_scored"`
}

// Profile is the stored unit: one per user.
type Profile struct {
	Preferences Preferences `json:"preferences"`
	Stats       Stats       `json:"stats"`
}

// DefaultProfile is what a user gets before they ever save anything.
func DefaultProfile() Profile {
	return Profile{
		Preferences: Preferences{SoundEnabled: true, HintsEnabled: true},
	}
}

// Store loads and saves profiles through the injected storage port.
type Store struct {
	storage ports.ProfileStorage
}

// NewStore constructs a Store. storage must be non-nil.
func NewStore(storage ports.ProfileStorage) *Store {
	return &Store{storage: storage}
}

// Load returns the user's profile, or the default profile when none is stored.
func (s *Store) Load(ctx context.Context, userID string) (Profile, error) {
	data, err := s.storage.Read(ctx, userID)
	if err != nil {
		return Profile{}, fmt.Errorf("failed to read profile: %w", err)
	}
	if data == nil {
		return DefaultProfile(), nil
	}

	var p Profile
	if err := json.Unmarshal(data, &p); err != nil {
		return Profile{}, fmt.Errorf("failed to unmarshal profile: %w", err)
	}
	return p, nil
}

// Save persists the user's profile.
func (s *Store) Save(ctx context.Context, userID string, p Profile) error {
	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("failed to marshal profile: %w", err)
	}
	if err := s.storage.Write(ctx, userID, data); err != nil {
		return fmt.Errorf("failed to write profile: %w", err)
	}
	return nil
}

// RecordRound folds one round result into the user's stats via load-modify-save.
func (s *Store) RecordRound(ctx context.Context, userID string, won bool, points int) error {
	p, err := s.Load(ctx, userID)
	if err != nil {
		return err
	}

	p.Stats.RoundsPlayed++
	if won {
		p.Stats.RoundsWon++
	}
	p.Stats.PointsScored += points

	return s.Save(ctx, userID, p)
}
