package testutil

import (
	"time"

	"github.com/alexanderramin/explore/internal/domain"
	"github.com/google/uuid"
)

// SessionOption customizes a SavedSession fixture.
type SessionOption func(*domain.SavedSession)

func WithScreen(s domain.Screen, stack ...domain.Screen) SessionOption {
	return func(ss *domain.SavedSession) {
		ss.Screen = s
		ss.Stack = stack
	}
}

func WithHomeCycleCompleted() SessionOption {
	return func(ss *domain.SavedSession) {
		ss.HomeCycleCompleted = true
	}
}

func WithUpdatedAt(t time.Time) SessionOption {
	return func(ss *domain.SavedSession) {
		ss.UpdatedAt = t
	}
}

// NewTestSession returns a session on the Home screen with a fresh id.
func NewTestSession(opts ...SessionOption) *domain.SavedSession {
	now := time.Now().UTC()
	s := &domain.SavedSession{
		ID:        uuid.New().String(),
		Screen:    domain.HomeScreen(),
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NewTestLocations returns a small catalog distinct from the Boston tour.
func NewTestLocations() []domain.Location {
	return []domain.Location{
		{ID: 10, Name: "Fenway Park", Category: "Sports", Description: "Home of the Red Sox."},
		{ID: 11, Name: "Faneuil Hall", Category: "History", Description: "Marketplace and meeting hall since 1743."},
		{ID: 12, Name: "TD Garden", Category: "Sports", Description: "Celtics and Bruins arena."},
	}
}
