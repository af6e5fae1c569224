package repository

import (
	"context"

	"github.com/alexanderramin/explore/internal/domain"
)

type LocationRepo interface {
	// Seed replaces the stored catalog with locs, keeping their order.
	Seed(ctx context.Context, locs []domain.Location) error
	List(ctx context.Context) ([]domain.Location, error)
	Count(ctx context.Context) (int, error)
}

type SessionRepo interface {
	Save(ctx context.Context, s *domain.SavedSession) error
	GetByID(ctx context.Context, id string) (*domain.SavedSession, error)
	// Latest returns the most recently saved session, or ErrNotFound.
	Latest(ctx context.Context) (*domain.SavedSession, error)
	DeleteAll(ctx context.Context) error
}
