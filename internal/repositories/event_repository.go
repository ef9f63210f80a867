package repositories

import (
	"time"

	"clubin_backend/internal/models"
)

// EventRepository defines storage operations for club events.
type EventRepository interface {
	CreateEvent(event *models.Event) (*models.Event, error)
	GetEvents() ([]models.Event, error)
	GetEventsByClubID(clubID int64) ([]models.Event, error)
}

type eventRepository struct {
	store *MemoryStore
}

// NewEventRepository creates a new instance of EventRepository.
func NewEventRepository(store *MemoryStore) EventRepository {
	return &eventRepository{store: store}
}

func (r *eventRepository) CreateEvent(event *models.Event) (*models.Event, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextEventID++
	stored := *event
	stored.ID = s.nextEventID
	stored.CreatedAt = time.Now()
	s.events = append(s.events, &stored)

	out := stored
	return &out, nil
}

func (r *eventRepository) GetEvents() ([]models.Event, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	events := make([]models.Event, 0, len(s.events))
	for _, e := range s.events {
		events = append(events, *e)
	}
	return events, nil
}

func (r *eventRepository) GetEventsByClubID(clubID int64) ([]models.Event, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	events := []models.Event{}
	for _, e := range s.events {
		if e.ClubID == clubID {
			events = append(events, *e)
		}
	}
	return events, nil
}
