package service

import (
	"errors"
	"fmt"
	"time"

	"eventfest/internal/domain"
	"eventfest/internal/normalize"
	"eventfest/internal/storage"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	ErrEventNotFound    = errors.New("event not found")
	ErrUserNotFound     = errors.New("user not found")
	ErrNotParticipating = errors.New("user is not participating in this event")
)

// EventService is the in-memory event registry. Events are cached at
// startup and written through on registration; participations are
// re-read from the store on every listing or resolve, the store stays
// the source of truth for them.
type EventService struct {
	eventStorage         storage.EventStorage
	participationStorage storage.ParticipationStorage
	users                *UserService
	log                  *logrus.Entry

	events []domain.Event
	now    func() time.Time
}

func NewEventService(l *logrus.Logger, es storage.EventStorage, ps storage.ParticipationStorage, users *UserService) (*EventService, error) {
	events, err := es.ListEvents()
	if err != nil {
		return nil, err
	}
	return &EventService{
		eventStorage:         es,
		participationStorage: ps,
		users:                users,
		log: l.WithFields(map[string]interface{}{
			"from": "event-service",
		}),
		events: events,
		now:    time.Now,
	}, nil
}

func (s *EventService) Register(event domain.Event) (domain.Event, error) {
	event.ID = uuid.New()
	event.Participants = nil
	err := s.eventStorage.AddEvent(event)
	if err != nil {
		return domain.Event{}, err
	}
	s.events = append(s.events, event)
	s.log.WithField("name", event.Name).Info("event registered")
	return event, nil
}

// ListAll returns every event with its participant list rebuilt from a
// fresh participation scan. The cached events are never mutated, so
// repeated listings cannot accumulate participants.
func (s *EventService) ListAll() ([]domain.Event, error) {
	participations, err := s.participationStorage.ListParticipations()
	if err != nil {
		return nil, err
	}
	listed := make([]domain.Event, len(s.events))
	for i := range s.events {
		listed[i] = s.events[i]
		listed[i].Participants = participantsOf(s.events[i].Name, participations)
	}
	return listed, nil
}

// participantsOf collects the participants of one event in first-seen
// order, filtering out duplicate rows.
func participantsOf(eventName string, participations []domain.Participation) []string {
	seen := mapset.NewSet[string]()
	var names []string
	for _, p := range participations {
		if p.EventName != eventName {
			continue
		}
		if seen.Add(p.ParticipantName) {
			names = append(names, p.ParticipantName)
		}
	}
	return names
}

func (s *EventService) ListUpcoming() ([]domain.Event, error) {
	return s.listWhere(domain.Event.IsUpcoming)
}

func (s *EventService) ListPast() ([]domain.Event, error) {
	return s.listWhere(domain.Event.IsPast)
}

func (s *EventService) listWhere(pred func(domain.Event, time.Time) bool) ([]domain.Event, error) {
	events, err := s.ListAll()
	if err != nil {
		return nil, err
	}
	now := s.now()
	filtered := make([]domain.Event, 0, len(events))
	for _, event := range events {
		if pred(event, now) {
			filtered = append(filtered, event)
		}
	}
	return filtered, nil
}

// Enroll records the user's participation in the event. Unknown event
// or user names are reportable outcomes, not fatal errors.
func (s *EventService) Enroll(eventName, userName string) error {
	event, ok := s.findEvent(eventName)
	if !ok {
		return fmt.Errorf("%q: %w", eventName, ErrEventNotFound)
	}
	user, ok := s.users.FindByName(userName)
	if !ok {
		return fmt.Errorf("%q: %w", userName, ErrUserNotFound)
	}
	err := s.participationStorage.AddParticipation(domain.Participation{
		EventName:       event.Name,
		ParticipantName: user.Name,
	})
	if err != nil {
		return err
	}
	s.log.WithFields(map[string]interface{}{
		"event": event.Name,
		"user":  user.Name,
	}).Info("user enrolled")
	return nil
}

// Withdraw removes the user's participation: delete the matching rows,
// then rewrite the surviving set wholesale so the table ends up
// consistent even when duplicate rows were present.
func (s *EventService) Withdraw(eventName, userName string) error {
	event, ok := s.findEvent(eventName)
	if !ok {
		return fmt.Errorf("%q: %w", eventName, ErrEventNotFound)
	}
	user, ok := s.users.FindByName(userName)
	if !ok {
		return fmt.Errorf("%q: %w", userName, ErrUserNotFound)
	}
	participations, err := s.participationStorage.ListParticipations()
	if err != nil {
		return err
	}
	if !containsPair(participations, event.Name, user.Name) {
		return fmt.Errorf("%q: %w", user.Name, ErrNotParticipating)
	}
	err = s.participationStorage.DeleteParticipation(event.Name, user.Name)
	if err != nil {
		// The full-table rewrite below reconciles the store anyway.
		s.log.WithError(err).Error("failed to delete participation rows")
	}
	participations, err = s.participationStorage.ListParticipations()
	if err != nil {
		return err
	}
	remaining := make([]domain.Participation, 0, len(participations))
	for _, p := range participations {
		if p.EventName == event.Name && p.ParticipantName == user.Name {
			continue
		}
		remaining = append(remaining, p)
	}
	err = s.participationStorage.ReplaceParticipations(remaining)
	if err != nil {
		return err
	}
	s.log.WithFields(map[string]interface{}{
		"event": event.Name,
		"user":  user.Name,
	}).Info("participation cancelled")
	return nil
}

// EventsForUser returns the names of registered events the user is
// enrolled in. An empty result is a reportable outcome, not an error.
func (s *EventService) EventsForUser(userName string) ([]string, error) {
	participations, err := s.participationStorage.ListParticipations()
	if err != nil {
		return nil, err
	}
	name := normalize.Name(userName)
	enrolled := mapset.NewSet[string]()
	for _, p := range participations {
		if p.ParticipantName == name {
			enrolled.Add(p.EventName)
		}
	}
	var names []string
	for _, event := range s.events {
		if enrolled.Contains(event.Name) {
			names = append(names, event.Name)
		}
	}
	return names, nil
}

func (s *EventService) findEvent(name string) (domain.Event, bool) {
	name = normalize.Name(name)
	for _, event := range s.events {
		if normalize.Name(event.Name) == name {
			return event, true
		}
	}
	return domain.Event{}, false
}

func containsPair(participations []domain.Participation, eventName, participantName string) bool {
	for _, p := range participations {
		if p.EventName == eventName && p.ParticipantName == participantName {
			return true
		}
	}
	return false
}
