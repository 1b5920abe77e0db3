package storage

import (
	"eventfest/internal/domain"
)

// Data is the full persisted state, as loaded at startup.
type Data struct {
	Users          []domain.User
	Events         []domain.Event
	Participations []domain.Participation
}

type UserStorage interface {
	ListUsers() ([]domain.User, error)
	AddUser(domain.User) error
}

type EventStorage interface {
	ListEvents() ([]domain.Event, error)
	AddEvent(domain.Event) error
}

type ParticipationStorage interface {
	ListParticipations() ([]domain.Participation, error)
	AddParticipation(domain.Participation) error
	// ReplaceParticipations clears the whole table and reinserts the
	// given rows in one transaction.
	ReplaceParticipations([]domain.Participation) error
	// DeleteParticipation removes every row matching the pair exactly.
	// No matching rows is a no-op, not an error.
	DeleteParticipation(eventName, participantName string) error
}

type Storage interface {
	UserStorage
	EventStorage
	ParticipationStorage

	LoadAll() (Data, error)
}
