package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Freeeeeet/thunders/internal/model"
	"github.com/Freeeeeet/thunders/internal/repository"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type IcnService struct {
	members IcnMemberStore
	guests  GuestStore
	loc     *time.Location
	logger  *zap.Logger
}

func NewIcnService(members IcnMemberStore, guests GuestStore, loc *time.Location, logger *zap.Logger) *IcnService {
	return &IcnService{
		members: members,
		guests:  guests,
		loc:     loc,
		logger:  logger,
	}
}

// ActiveMembers возвращает активных участников ICN
func (s *IcnService) ActiveMembers(ctx context.Context) ([]*model.IcnMember, error) {
	members, err := s.members.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("active icn members: %w", err)
	}
	return members, nil
}

// IsFirstHalf true для января-июня по времени клуба
func (s *IcnService) IsFirstHalf(now time.Time) bool {
	return now.In(s.loc).Month() <= time.June
}

// AddAsGuest добавляет участника в список гостей и увеличивает счётчик полугодия.
// Ошибка счётчика не отменяет добавление гостя.
func (s *IcnService) AddAsGuest(ctx context.Context, id uuid.UUID, now time.Time) (*model.GuestApplication, error) {
	member, err := s.members.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get icn member: %w", err)
	}
	if member == nil {
		return nil, ErrMemberNotFound
	}

	guest := &model.GuestApplication{
		ID:        uuid.New(),
		Name:      member.Name + regularGuestSuffix,
		Age:       member.Age,
		Position:  member.Position,
		Height:    member.HeightRange,
		Phone:     member.Phone,
		AppliedAt: now,
	}

	if err := s.guests.Create(ctx, guest); err != nil {
		return nil, fmt.Errorf("add icn member as guest: %w", err)
	}

	firstHalf := s.IsFirstHalf(now)
	count, err := s.members.IncrementHalfCount(ctx, id, firstHalf)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		s.logger.Warn("ICN member disappeared before count update", zap.String("member_id", id.String()))
	case err != nil:
		s.logger.Error("Failed to update ICN half count", zap.String("member_id", id.String()), zap.Error(err))
	default:
		s.logger.Info("ICN member added as guest",
			zap.String("member_id", id.String()),
			zap.Bool("first_half", firstHalf),
			zap.Int("count", count),
		)
	}

	return guest, nil
}
