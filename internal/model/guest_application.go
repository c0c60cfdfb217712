package model

import (
	"time"

	"github.com/google/uuid"
)

// GuestApplication заявка гостя на игру недели
type GuestApplication struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Age       string    `json:"age"`
	Height    string    `json:"height"`
	Position  string    `json:"position"`
	Phone     string    `json:"phone"`
	AppliedAt time.Time `json:"applied_at"`
	IsHidden  bool      `json:"is_hidden"`
}
