package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Freeeeeet/thunders/internal/gameweek"
	"github.com/Freeeeeet/thunders/internal/model"
	"github.com/Freeeeeet/thunders/internal/signup"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Roster список гостей одной недели набора
type Roster struct {
	Week   gameweek.Week             `json:"week"`
	Offset int                       `json:"offset"`
	Guests []*model.GuestApplication `json:"guests"`
}

type RosterService struct {
	weeks  *gameweek.Calculator
	guests GuestStore
	logger *zap.Logger
}

func NewRosterService(weeks *gameweek.Calculator, guests GuestStore, logger *zap.Logger) *RosterService {
	return &RosterService{
		weeks:  weeks,
		guests: guests,
		logger: logger,
	}
}

// Calculator возвращает калькулятор недель сервиса
func (s *RosterService) Calculator() *gameweek.Calculator {
	return s.weeks
}

// Weeks возвращает count недель начиная с текущей
func (s *RosterService) Weeks(now time.Time, count int) ([]gameweek.Week, error) {
	return s.weeks.GenerateWeeks(now, count)
}

// GuestsForWeek возвращает видимых гостей, подавших заявку в окне недели
func (s *RosterService) GuestsForWeek(ctx context.Context, week gameweek.Week) ([]*model.GuestApplication, error) {
	guests, err := s.guests.ListByWindow(ctx, week.Start, week.End)
	if err != nil {
		return nil, fmt.Errorf("guests for week %s: %w", week.Label, err)
	}
	return guests, nil
}

// GuestsAt возвращает список гостей недели со смещением offset от текущей
func (s *RosterService) GuestsAt(ctx context.Context, now time.Time, offset int) (*Roster, error) {
	week := s.weeks.WeekAt(now, offset)

	guests, err := s.GuestsForWeek(ctx, week)
	if err != nil {
		return nil, err
	}

	return &Roster{Week: week, Offset: offset, Guests: guests}, nil
}

// ApplyGuest сохраняет заявку гостя и всех приведённых им друзей
func (s *RosterService) ApplyGuest(ctx context.Context, form signup.GuestForm, now time.Time) ([]*model.GuestApplication, error) {
	if err := form.Validate(); err != nil {
		return nil, err
	}

	var apps []*model.GuestApplication
	for _, g := range form.Guests() {
		apps = append(apps, &model.GuestApplication{
			ID:        uuid.New(),
			Name:      g.Name,
			Age:       g.Age,
			Height:    g.Height,
			Position:  g.Position,
			Phone:     form.Contact,
			AppliedAt: now,
		})
	}

	if err := s.guests.CreateBatch(ctx, apps); err != nil {
		return nil, fmt.Errorf("apply guest: %w", err)
	}

	week := s.weeks.WeekFor(s.weeks.CurrentDeadline(now))
	s.logger.Info("Guest application received",
		zap.String("name", form.Name),
		zap.Int("guests", len(apps)),
		zap.String("week", week.Label),
	)

	return apps, nil
}

// HideGuest скрывает заявку из недельного списка
func (s *RosterService) HideGuest(ctx context.Context, id uuid.UUID) error {
	found, err := s.guests.Hide(ctx, id)
	if err != nil {
		return fmt.Errorf("hide guest: %w", err)
	}
	if !found {
		return ErrGuestNotFound
	}

	s.logger.Info("Guest application hidden", zap.String("id", id.String()))
	return nil
}
