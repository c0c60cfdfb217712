package service

import (
	"context"
	"time"

	"github.com/Freeeeeet/thunders/internal/model"
	"github.com/Freeeeeet/thunders/internal/repository"
	"github.com/google/uuid"
)

// Интерфейсы хранилищ. Реализуются репозиториями из internal/repository,
// в тестах подменяются фейками в памяти.

type GuestStore interface {
	Create(ctx context.Context, app *model.GuestApplication) error
	CreateBatch(ctx context.Context, apps []*model.GuestApplication) error
	ListByWindow(ctx context.Context, from, to time.Time) ([]*model.GuestApplication, error)
	Hide(ctx context.Context, id uuid.UUID) (bool, error)
}

type MembershipStore interface {
	Create(ctx context.Context, app *model.MembershipApplication) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.MembershipApplication, error)
	ListRegularByMonth(ctx context.Context, month time.Time) ([]*model.MembershipApplication, error)
	CountRegularByPhones(ctx context.Context, phones []string, upTo time.Time) (map[string]int, error)
	IncrementUsedCount(ctx context.Context, id uuid.UUID, at time.Time) (int, error)
	SetGroupColor(ctx context.Context, ids []uuid.UUID, color *string) (int64, error)
}

type IcnMemberStore interface {
	ListActive(ctx context.Context) ([]*model.IcnMember, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.IcnMember, error)
	IncrementHalfCount(ctx context.Context, id uuid.UUID, firstHalf bool) (int, error)
}

type YoutubePostStore interface {
	Create(ctx context.Context, post *model.YoutubePost) error
	ListPage(ctx context.Context, search string, after *repository.PostCursor, limit int) ([]*model.YoutubePost, error)
}

type ContactMessageStore interface {
	Create(ctx context.Context, msg *model.ContactMessage) error
	List(ctx context.Context) ([]*model.ContactMessage, error)
}

type AdminStore interface {
	IsAdmin(ctx context.Context, telegramID int64) (bool, error)
	ListTelegramIDs(ctx context.Context) ([]int64, error)
}
