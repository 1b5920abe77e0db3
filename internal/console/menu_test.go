package console

import (
	"bufio"
	"bytes"
	"io"
	"strings"
	"testing"

	"eventfest/internal/domain"
	"eventfest/internal/service"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	users          []domain.User
	events         []domain.Event
	participations []domain.Participation
}

func (f *fakeStore) ListUsers() ([]domain.User, error) {
	return f.users, nil
}

func (f *fakeStore) AddUser(user domain.User) error {
	f.users = append(f.users, user)
	return nil
}

func (f *fakeStore) ListEvents() ([]domain.Event, error) {
	return f.events, nil
}

func (f *fakeStore) AddEvent(event domain.Event) error {
	f.events = append(f.events, event)
	return nil
}

func (f *fakeStore) ListParticipations() ([]domain.Participation, error) {
	return f.participations, nil
}

func (f *fakeStore) AddParticipation(p domain.Participation) error {
	f.participations = append(f.participations, p)
	return nil
}

func (f *fakeStore) ReplaceParticipations(participations []domain.Participation) error {
	f.participations = participations
	return nil
}

func (f *fakeStore) DeleteParticipation(eventName, participantName string) error {
	return nil
}

func newTestConsole(t *testing.T, input string) (*Console, *fakeStore, *bytes.Buffer) {
	t.Helper()
	l := logrus.New()
	l.SetOutput(io.Discard)
	st := &fakeStore{}
	users, err := service.NewUserService(l, st)
	require.NoError(t, err)
	events, err := service.NewEventService(l, st, st, users)
	require.NoError(t, err)
	out := &bytes.Buffer{}
	return &Console{
		users:  users,
		events: events,
		log:    logrus.NewEntry(l),
		in:     bufio.NewScanner(strings.NewReader(input)),
		out:    out,
	}, st, out
}

func TestConsole_Run_exit(t *testing.T) {
	c, _, out := newTestConsole(t, "10\n")
	require.NoError(t, c.Run())
	require.Contains(t, out.String(), "Goodbye")
}

func TestConsole_Run_endOfInput(t *testing.T) {
	c, _, _ := newTestConsole(t, "")
	require.NoError(t, c.Run())
}

// Input ending in the middle of the user form must not persist a
// half-read record.
func TestConsole_registerUser_truncatedInput(t *testing.T) {
	c, st, _ := newTestConsole(t, "2\nAna\n")
	require.NoError(t, c.Run())
	require.Empty(t, st.users)
}

func TestConsole_registerEvent_truncatedInput(t *testing.T) {
	c, st, _ := newTestConsole(t, "1\nFeira\n")
	require.NoError(t, c.Run())
	require.Empty(t, st.events)
}

func TestConsole_registerUser(t *testing.T) {
	c, st, out := newTestConsole(t, "2\nAna\n30\nF\n11 99999-0000\nRua A, 10\n02000-000\n10\n")
	require.NoError(t, c.Run())
	require.Len(t, st.users, 1)
	require.Equal(t, "Ana", st.users[0].Name)
	require.Equal(t, 30, st.users[0].Age)
	require.Contains(t, out.String(), "User saved.")
}
