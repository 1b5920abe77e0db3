package domain

import (
	"github.com/google/uuid"
)

type User struct {
	ID         uuid.UUID
	Name       string
	Age        int
	Gender     string
	Phone      string
	Address    string
	PostalCode string
}
