package callbacktypes

import (
	"time"

	"github.com/Freeeeeet/thunders/internal/assist"
	"github.com/Freeeeeet/thunders/internal/service"
	"go.uber.org/zap"
)

// UserState представляет текущее состояние пользователя в диалоге
type UserState string

const (
	StateNone UserState = ""
	// StateDraftNotice администратор вводит тему объявления для AI
	StateDraftNotice UserState = "draft_notice"
)

// StateManager интерфейс для управления состоянием пользователей
type StateManager interface {
	ClearState(telegramID int64)
	GetState(telegramID int64) UserState
	SetState(telegramID int64, state UserState)
}

// Handler содержит общие зависимости для всех callback handlers
type Handler struct {
	RosterService     *service.RosterService
	MembershipService *service.MembershipService
	AdminService      *service.AdminService
	Assistant         *assist.Assistant
	StateManager      StateManager
	Logger            *zap.Logger

	// FontPath TrueType шрифт для карточки списка, пустой - встроенный
	FontPath string
	Now      func() time.Time
}
