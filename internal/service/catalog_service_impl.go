package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/explore/internal/catalog"
	"github.com/alexanderramin/explore/internal/domain"
	"github.com/alexanderramin/explore/internal/repository"
)

type catalogService struct {
	locations repository.LocationRepo
	observer  UseCaseObserver
}

func NewCatalogService(locations repository.LocationRepo, observers ...UseCaseObserver) CatalogService {
	return &catalogService{
		locations: locations,
		observer:  useCaseObserverOrNoop(observers),
	}
}

func (s *catalogService) Load(ctx context.Context, file string) (store *catalog.Store, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"file": file}
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:     "load-catalog",
			Duration: time.Since(startedAt),
			Err:      err,
			Fields:   fields,
		})
	}()

	var locs []domain.Location
	if file == "" {
		locs = catalog.DefaultLocations()
	} else if locs, err = catalog.LoadTOML(file); err != nil {
		return nil, err
	}

	// Validate before touching the table so a bad file keeps the old rows.
	if _, err = catalog.New(locs); err != nil {
		return nil, err
	}
	if err = s.locations.Seed(ctx, locs); err != nil {
		return nil, fmt.Errorf("seeding catalog: %w", err)
	}

	stored, err := s.locations.List(ctx)
	if err != nil {
		return nil, err
	}
	store, err = catalog.New(stored)
	if err != nil {
		return nil, err
	}
	fields["locations"] = store.Len()
	fields["categories"] = len(store.Categories())
	return store, nil
}
