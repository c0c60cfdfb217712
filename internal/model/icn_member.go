package model

import (
	"time"

	"github.com/google/uuid"
)

// IcnMember постоянный участник ICN с полугодовыми счётчиками игр
type IcnMember struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	Phone           string    `json:"phone"`
	Age             string    `json:"age"`
	Position        string    `json:"position"`
	HeightRange     string    `json:"height_range"`
	UniformSize     string    `json:"uniform_size"`
	IsActive        bool      `json:"is_active"`
	FirstHalfCount  int       `json:"first_half_count"`
	SecondHalfCount int       `json:"second_half_count"`
	CreatedAt       time.Time `json:"created_at"`
}
