package service

import (
	"eventfest/internal/domain"
	"eventfest/internal/normalize"
	"eventfest/internal/storage"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// UserService is the in-memory user registry, loaded once at startup
// and written through to the store on every registration.
type UserService struct {
	storage storage.UserStorage
	log     *logrus.Entry
	users   []domain.User
}

func NewUserService(l *logrus.Logger, st storage.UserStorage) (*UserService, error) {
	users, err := st.ListUsers()
	if err != nil {
		return nil, err
	}
	return &UserService{
		storage: st,
		log: l.WithFields(map[string]interface{}{
			"from": "user-service",
		}),
		users: users,
	}, nil
}

// Register persists the user and appends it to the registry. Names are
// not checked for uniqueness, duplicates are permitted.
func (s *UserService) Register(user domain.User) (domain.User, error) {
	user.ID = uuid.New()
	err := s.storage.AddUser(user)
	if err != nil {
		return domain.User{}, err
	}
	s.users = append(s.users, user)
	s.log.WithField("name", user.Name).Info("user registered")
	return user, nil
}

// List returns the registered users in insertion order.
func (s *UserService) List() []domain.User {
	return s.users
}

// FindByName returns the first user whose trimmed name matches.
func (s *UserService) FindByName(name string) (domain.User, bool) {
	name = normalize.Name(name)
	for _, user := range s.users {
		if normalize.Name(user.Name) == name {
			return user, true
		}
	}
	return domain.User{}, false
}
