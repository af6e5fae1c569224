package service

import (
	"context"

	"github.com/alexanderramin/explore/internal/catalog"
	"github.com/alexanderramin/explore/internal/nav"
)

type CatalogService interface {
	// Load seeds the location table from file (or the built-in tour when
	// file is empty) and returns a Store read back from it.
	Load(ctx context.Context, file string) (*catalog.Store, error)
}

type SessionService interface {
	// Restore returns the most recently saved state. ok is false when
	// nothing was saved, in which case state is nav.NewState().
	Restore(ctx context.Context) (state nav.State, ok bool, err error)
	Save(ctx context.Context, state nav.State) error
	Reset(ctx context.Context) error
}
