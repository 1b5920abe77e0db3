package sqlite

import (
	"fmt"
	"time"

	"eventfest/gen/model"
	"eventfest/internal/domain"

	"github.com/google/uuid"
)

func convertUsersToDomain(users []model.Usuarios) ([]domain.User, error) {
	converted := make([]domain.User, 0, len(users))
	for _, user := range users {
		id, err := uuid.Parse(user.ID)
		if err != nil {
			return nil, fmt.Errorf("user %q: %w", user.Nome, err)
		}
		converted = append(converted, domain.User{
			ID:         id,
			Name:       user.Nome,
			Age:        int(user.Idade),
			Gender:     user.Sexo,
			Phone:      user.Telefone,
			Address:    user.Endereco,
			PostalCode: user.Cep,
		})
	}
	return converted, nil
}

func convertUserFromDomain(user domain.User) model.Usuarios {
	return model.Usuarios{
		ID:       user.ID.String(),
		Nome:     user.Name,
		Idade:    int32(user.Age),
		Sexo:     user.Gender,
		Telefone: user.Phone,
		Endereco: user.Address,
		Cep:      user.PostalCode,
	}
}

func convertEventsToDomain(events []model.Eventos) ([]domain.Event, error) {
	converted := make([]domain.Event, 0, len(events))
	for _, event := range events {
		id, err := uuid.Parse(event.ID)
		if err != nil {
			return nil, fmt.Errorf("event %q: %w", event.Nome, err)
		}
		date, err := time.ParseInLocation(domain.DateLayout, event.Data, time.Local)
		if err != nil {
			return nil, fmt.Errorf("event %q: %w", event.Nome, err)
		}
		converted = append(converted, domain.Event{
			ID:          id,
			Name:        event.Nome,
			Address:     event.Endereco,
			PostalCode:  event.Cep,
			Price:       event.Preco,
			Category:    event.Categoria,
			Date:        date,
			Time:        event.Hora,
			Description: event.Descricao,
		})
	}
	return converted, nil
}

func convertEventFromDomain(event domain.Event) model.Eventos {
	return model.Eventos{
		ID:        event.ID.String(),
		Nome:      event.Name,
		Endereco:  event.Address,
		Cep:       event.PostalCode,
		Preco:     event.Price,
		Categoria: event.Category,
		Data:      event.Date.Format(domain.DateLayout),
		Hora:      event.Time,
		Descricao: event.Description,
	}
}

func convertParticipationsToDomain(participations []model.Participacoes) []domain.Participation {
	converted := make([]domain.Participation, 0, len(participations))
	for _, p := range participations {
		converted = append(converted, domain.Participation{
			EventName:       p.EventoNome,
			ParticipantName: p.Participante,
		})
	}
	return converted
}

func convertParticipationFromDomain(p domain.Participation) model.Participacoes {
	return model.Participacoes{
		EventoNome:   p.EventName,
		Participante: p.ParticipantName,
	}
}
