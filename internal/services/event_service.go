package services

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/apetrov/my-blog-be/internal/models"
	"github.com/apetrov/my-blog-be/internal/storage"
	"github.com/apetrov/my-blog-be/internal/util"
)

// Broadcaster pushes a serialized event to live feed subscribers.
type Broadcaster interface {
	BroadcastMessage(message []byte)
}

// EventServiceProvider defines the interface for activity log services.
type EventServiceProvider interface {
	Record(eventType, level, message string, userID int)
	Recent(limit int) ([]models.Event, error)
}

// EventService appends activity events to the events collection and feeds
// them to the websocket hub.
type EventService struct {
	store       storage.Store
	clock       util.Clock
	broadcaster Broadcaster // may be nil
}

// NewEventService creates a new EventService. broadcaster may be nil when no
// live feed is running.
func NewEventService(store storage.Store, clock util.Clock, broadcaster Broadcaster) *EventService {
	return &EventService{store: store, clock: clock, broadcaster: broadcaster}
}

// Record logs a new event. Failures are logged and swallowed; the activity
// log must never fail the operation that produced the event.
func (s *EventService) Record(eventType, level, message string, userID int) {
	event := models.Event{
		ID:        uuid.New().String(),
		Type:      eventType,
		Level:     level,
		Message:   message,
		UserID:    userID,
		CreatedAt: s.clock.Now(),
	}

	var events []models.Event
	if err := s.store.Load(storage.Events, &events); err != nil {
		log.Error().Err(err).Str("type", eventType).Msg("failed to load events")
		return
	}
	events = append(events, event)
	if err := s.store.Replace(storage.Events, events); err != nil {
		log.Error().Err(err).Str("type", eventType).Msg("failed to record event")
		return
	}

	if s.broadcaster != nil {
		payload, err := json.Marshal(event)
		if err != nil {
			log.Error().Err(err).Msg("failed to encode event for broadcast")
			return
		}
		s.broadcaster.BroadcastMessage(payload)
	}
}

// Recent returns the most recent events, newest first.
func (s *EventService) Recent(limit int) ([]models.Event, error) {
	events := []models.Event{}
	if err := s.store.Load(storage.Events, &events); err != nil {
		return nil, fmt.Errorf("load events: %w", err)
	}

	sort.Slice(events, func(i, j int) bool {
		return events[i].CreatedAt.After(events[j].CreatedAt)
	})
	if limit > 0 && limit < len(events) {
		events = events[:limit]
	}
	return events, nil
}
