package model

import (
	"time"

	"github.com/google/uuid"
)

// Тарифы членства
const (
	PlanRegular2  = "regular_2"
	PlanRegular4  = "regular_4"
	PlanGuestOnce = "guest_once"
)

// RegularPlans тарифы, которые считаются членством (без разовых гостей)
var RegularPlans = []string{PlanRegular2, PlanRegular4}

type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusPaid    PaymentStatus = "paid"
)

// MembershipApplication заявка на членство на конкретный месяц
type MembershipApplication struct {
	ID            uuid.UUID     `json:"id"`
	Name          string        `json:"name"`
	Phone         string        `json:"phone"`
	Age           string        `json:"age"`
	Position      string        `json:"position"`
	HeightRange   string        `json:"height_range"`
	UniformSize   string        `json:"uniform_size"`
	Plan          string        `json:"plan"`
	TargetMonth   time.Time     `json:"target_month"` // первое число месяца
	UsedCount     int           `json:"used_count"`
	GroupColor    *string       `json:"group_color,omitempty"`
	PaymentStatus PaymentStatus `json:"payment_status"`
	LastGameDate  *time.Time    `json:"last_game_date,omitempty"`
	CreatedAt     time.Time     `json:"created_at"`
}

// MemberStatus строка доски членства (не из БД)
type MemberStatus struct {
	*MembershipApplication
	CumulativeCount int    `json:"cumulative_count"` // сколько месяцев человек был в клубе
	PlanDisplay     string `json:"plan_display"`
	RemainingCount  int    `json:"remaining_count"`
}

// TotalGames число игр в месяц по тарифу
func (a *MembershipApplication) TotalGames() int {
	if a.Plan == PlanRegular4 {
		return 4
	}
	return 2
}

// RemainingGames сколько игр осталось в этом месяце
func (a *MembershipApplication) RemainingGames() int {
	return max(0, a.TotalGames()-a.UsedCount)
}
