package sqlite

import (
	"io"
	"path/filepath"
	"testing"
	"time"

	"eventfest/internal/config"
	"eventfest/internal/domain"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func testLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func newTestStorage(t *testing.T) *Storage {
	t.Helper()
	st, err := New(testLogger(), config.Server{
		SqliteFile: filepath.Join(t.TempDir(), "eventfest.sqlite"),
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, st.Close())
	})
	return st
}

func TestStorage_LoadAll_empty(t *testing.T) {
	st := newTestStorage(t)

	data, err := st.LoadAll()
	require.NoError(t, err)
	require.Empty(t, data.Users)
	require.Empty(t, data.Events)
	require.Empty(t, data.Participations)
}

func TestStorage_userRoundTrip(t *testing.T) {
	st := newTestStorage(t)

	user := domain.User{
		ID:         uuid.New(),
		Name:       "Ana",
		Age:        30,
		Gender:     "F",
		Phone:      "11 99999-0000",
		Address:    "Rua A, 10",
		PostalCode: "02000-000",
	}
	require.NoError(t, st.AddUser(user))

	users, err := st.ListUsers()
	require.NoError(t, err)
	require.Equal(t, []domain.User{user}, users)
}

func TestStorage_eventRoundTrip(t *testing.T) {
	st := newTestStorage(t)

	event := domain.Event{
		ID:          uuid.New(),
		Name:        "Feira",
		Address:     "Praça Central, 1",
		PostalCode:  "01000-000",
		Price:       25.50,
		Category:    "fair",
		Date:        time.Date(2024, 5, 11, 0, 0, 0, 0, time.Local),
		Time:        "10:00",
		Description: "food fair",
	}
	require.NoError(t, st.AddEvent(event))

	events, err := st.ListEvents()
	require.NoError(t, err)
	require.Equal(t, []domain.Event{event}, events)
	// Dates come back as local wall-clock time.
	require.Same(t, time.Local, events[0].Date.Location())
}

func TestStorage_participations(t *testing.T) {
	st := newTestStorage(t)

	p := domain.Participation{EventName: "Feira", ParticipantName: "Ana"}
	require.NoError(t, st.AddParticipation(p))
	require.NoError(t, st.AddParticipation(p))

	// Duplicate rows are kept as-is.
	participations, err := st.ListParticipations()
	require.NoError(t, err)
	require.Equal(t, []domain.Participation{p, p}, participations)

	// Deleting the pair removes every matching row.
	require.NoError(t, st.DeleteParticipation("Feira", "Ana"))
	participations, err = st.ListParticipations()
	require.NoError(t, err)
	require.Empty(t, participations)

	// Deleting again is a no-op, not an error.
	require.NoError(t, st.DeleteParticipation("Feira", "Ana"))
}

func TestStorage_ReplaceParticipations(t *testing.T) {
	st := newTestStorage(t)

	require.NoError(t, st.AddParticipation(domain.Participation{EventName: "Feira", ParticipantName: "Ana"}))
	require.NoError(t, st.AddParticipation(domain.Participation{EventName: "Feira", ParticipantName: "Bia"}))

	replacement := []domain.Participation{
		{EventName: "Show", ParticipantName: "Bia"},
	}
	require.NoError(t, st.ReplaceParticipations(replacement))

	participations, err := st.ListParticipations()
	require.NoError(t, err)
	require.Equal(t, replacement, participations)

	// Replacing with nothing clears the table.
	require.NoError(t, st.ReplaceParticipations(nil))
	participations, err = st.ListParticipations()
	require.NoError(t, err)
	require.Empty(t, participations)
}

func TestStorage_migrationsIdempotent(t *testing.T) {
	file := filepath.Join(t.TempDir(), "eventfest.sqlite")
	st, err := New(testLogger(), config.Server{SqliteFile: file})
	require.NoError(t, err)
	require.NoError(t, st.AddUser(domain.User{ID: uuid.New(), Name: "Ana"}))
	require.NoError(t, st.Close())

	// Reopening the same file runs migrations again without harm.
	st, err = New(testLogger(), config.Server{SqliteFile: file})
	require.NoError(t, err)
	defer func() {
		require.NoError(t, st.Close())
	}()
	users, err := st.ListUsers()
	require.NoError(t, err)
	require.Len(t, users, 1)
}
