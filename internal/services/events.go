package services

import (
	"context"
	"fmt"

	"kioskcheckin/internal/domain"
)

type eventService struct {
	events domain.EventRepository
}

// NewEventService creates the event listing service.
func NewEventService(events domain.EventRepository) domain.EventService {
	return &eventService{events: events}
}

func (s *eventService) ListActive(ctx context.Context) ([]*domain.Event, error) {
	all, err := s.events.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	active := make([]*domain.Event, 0, len(all))
	for _, e := range all {
		if e.IsActive {
			active = append(active, e)
		}
	}
	return active, nil
}

func (s *eventService) GetActiveByTitle(ctx context.Context, title string) (*domain.Event, error) {
	active, err := s.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	for _, e := range active {
		if sameTitle(e.Title, title) {
			return e, nil
		}
	}
	return nil, domain.ErrNotFound
}
