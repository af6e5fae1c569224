package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/alexanderramin/explore/internal/domain"
	"github.com/alexanderramin/explore/internal/nav"
	"github.com/alexanderramin/explore/internal/repository"
	"github.com/google/uuid"
)

type sessionService struct {
	sessions repository.SessionRepo
	observer UseCaseObserver
	now      func() time.Time

	// mu guards id and createdAt and orders writes.
	mu        sync.Mutex
	id        string
	createdAt time.Time
}

// NewSessionService returns a SessionService that writes under a fresh
// session id until Restore adopts a saved one.
func NewSessionService(sessions repository.SessionRepo, observers ...UseCaseObserver) SessionService {
	return &sessionService{
		sessions: sessions,
		observer: useCaseObserverOrNoop(observers),
		id:       uuid.New().String(),
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (s *sessionService) Restore(ctx context.Context) (state nav.State, ok bool, err error) {
	startedAt := s.now()
	fields := map[string]any{}
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:     "restore-session",
			Duration: time.Since(startedAt),
			Err:      err,
			Fields:   fields,
		})
	}()

	s.mu.Lock()
	defer s.mu.Unlock()

	saved, err := s.sessions.Latest(ctx)
	if errors.Is(err, repository.ErrNotFound) {
		fields["found"] = false
		return nav.NewState(), false, nil
	}
	if err != nil {
		return nav.NewState(), false, err
	}

	s.id = saved.ID
	s.createdAt = saved.CreatedAt
	fields["found"] = true
	fields["session_id"] = saved.ID
	fields["screen"] = saved.Screen.Route()
	return nav.State{
		Screen:             saved.Screen,
		Stack:              saved.Stack,
		HomeCycleCompleted: saved.HomeCycleCompleted,
	}, true, nil
}

func (s *sessionService) Save(ctx context.Context, state nav.State) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if s.createdAt.IsZero() {
		s.createdAt = now
	}
	return s.sessions.Save(ctx, &domain.SavedSession{
		ID:                 s.id,
		Screen:             state.Screen,
		Stack:              state.Stack,
		HomeCycleCompleted: state.HomeCycleCompleted,
		CreatedAt:          s.createdAt,
		UpdatedAt:          now,
	})
}

func (s *sessionService) Reset(ctx context.Context) (err error) {
	startedAt := s.now()
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:     "reset-session",
			Duration: time.Since(startedAt),
			Err:      err,
		})
	}()

	s.mu.Lock()
	defer s.mu.Unlock()

	if err = s.sessions.DeleteAll(ctx); err != nil {
		return err
	}
	s.id = uuid.New().String()
	s.createdAt = time.Time{}
	return nil
}
