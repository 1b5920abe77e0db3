package sqlite

import (
	"database/sql"
	"fmt"

	"eventfest/gen/model"
	"eventfest/gen/table"
	"eventfest/internal/config"
	"eventfest/internal/domain"
	sqlite3 "eventfest/internal/migrate"
	"eventfest/internal/storage"

	"github.com/go-jet/jet/v2/sqlite"
	_ "github.com/mattn/go-sqlite3"
	"github.com/sirupsen/logrus"
)

type Storage struct {
	db  *sql.DB
	log *logrus.Entry
}

var _ storage.Storage = (*Storage)(nil)

func New(l *logrus.Logger, cfg config.Server) (*Storage, error) {
	log := l.WithFields(map[string]interface{}{
		"from": "storage",
	})
	db, err := sql.Open("sqlite3", buildSource(cfg.SqliteFile))
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)

	err = sqlite3.UpServerDB(db)
	if err != nil {
		return nil, err
	}

	err = db.Ping()
	if err != nil {
		return nil, err
	}
	log.Info("storage connected")
	return &Storage{
		db:  db,
		log: log,
	}, nil
}

func buildSource(fileName string) string {
	return "file:" + fileName + "?cache=shared"
}

func (s *Storage) Close() error {
	return s.db.Close()
}

func (s *Storage) LoadAll() (storage.Data, error) {
	users, err := s.ListUsers()
	if err != nil {
		return storage.Data{}, err
	}
	events, err := s.ListEvents()
	if err != nil {
		return storage.Data{}, err
	}
	participations, err := s.ListParticipations()
	if err != nil {
		return storage.Data{}, err
	}
	return storage.Data{
		Users:          users,
		Events:         events,
		Participations: participations,
	}, nil
}

func (s *Storage) ListUsers() ([]domain.User, error) {
	var users []model.Usuarios
	err := table.Usuarios.
		SELECT(table.Usuarios.AllColumns).
		FROM(table.Usuarios).
		Query(s.db, &users)
	if err != nil {
		return nil, err
	}
	return convertUsersToDomain(users)
}

func (s *Storage) AddUser(user domain.User) error {
	_, err := table.Usuarios.
		INSERT(table.Usuarios.AllColumns).
		MODEL(convertUserFromDomain(user)).
		Exec(s.db)
	if err != nil {
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

func (s *Storage) ListEvents() ([]domain.Event, error) {
	var events []model.Eventos
	err := table.Eventos.
		SELECT(table.Eventos.AllColumns).
		FROM(table.Eventos).
		Query(s.db, &events)
	if err != nil {
		return nil, err
	}
	return convertEventsToDomain(events)
}

func (s *Storage) AddEvent(event domain.Event) error {
	_, err := table.Eventos.
		INSERT(table.Eventos.AllColumns).
		MODEL(convertEventFromDomain(event)).
		Exec(s.db)
	if err != nil {
		return fmt.Errorf("insert event: %w", err)
	}
	return nil
}

func (s *Storage) ListParticipations() ([]domain.Participation, error) {
	var participations []model.Participacoes
	err := table.Participacoes.
		SELECT(table.Participacoes.AllColumns).
		FROM(table.Participacoes).
		Query(s.db, &participations)
	if err != nil {
		return nil, err
	}
	return convertParticipationsToDomain(participations), nil
}

func (s *Storage) AddParticipation(p domain.Participation) error {
	_, err := table.Participacoes.
		INSERT(table.Participacoes.MutableColumns).
		MODEL(convertParticipationFromDomain(p)).
		Exec(s.db)
	if err != nil {
		return fmt.Errorf("insert participation: %w", err)
	}
	return nil
}

func (s *Storage) ReplaceParticipations(participations []domain.Participation) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback()
	}()
	_, err = table.Participacoes.
		DELETE().
		WHERE(sqlite.Bool(true)).
		Exec(tx)
	if err != nil {
		return fmt.Errorf("clear participations: %w", err)
	}
	for _, p := range participations {
		_, err = table.Participacoes.
			INSERT(table.Participacoes.MutableColumns).
			MODEL(convertParticipationFromDomain(p)).
			Exec(tx)
		if err != nil {
			return fmt.Errorf("reinsert participation: %w", err)
		}
	}
	err = tx.Commit()
	if err != nil {
		return err
	}
	s.log.WithField("rows", len(participations)).Debug("participations replaced")
	return nil
}

func (s *Storage) DeleteParticipation(eventName, participantName string) error {
	_, err := table.Participacoes.
		DELETE().
		WHERE(
			table.Participacoes.EventoNome.EQ(sqlite.String(eventName)).
				AND(table.Participacoes.Participante.EQ(sqlite.String(participantName))),
		).Exec(s.db)
	if err != nil {
		return err
	}
	return nil
}
