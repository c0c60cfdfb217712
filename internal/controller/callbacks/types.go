package callbacks

import (
	"context"
	"time"

	"github.com/Freeeeeet/thunders/internal/assist"
	"github.com/Freeeeeet/thunders/internal/controller/callbacks/callbacktypes"
	"github.com/Freeeeeet/thunders/internal/service"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// Handler обертка для callbacktypes.Handler с методами
type Handler struct {
	*callbacktypes.Handler
}

// NewHandler создаёт новый обработчик callbacks с зависимостями
func NewHandler(
	rosterService *service.RosterService,
	membershipService *service.MembershipService,
	adminService *service.AdminService,
	assistant *assist.Assistant,
	stateManager callbacktypes.StateManager,
	fontPath string,
	logger *zap.Logger,
) *Handler {
	inner := &callbacktypes.Handler{
		RosterService:     rosterService,
		MembershipService: membershipService,
		AdminService:      adminService,
		Assistant:         assistant,
		StateManager:      stateManager,
		Logger:            logger,
		FontPath:          fontPath,
		Now:               time.Now,
	}
	return &Handler{Handler: inner}
}

// HandleCallbackQuery - главный обработчик callback queries
func (h *Handler) HandleCallbackQuery(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.CallbackQuery == nil {
		return
	}

	callback := update.CallbackQuery

	h.Logger.Info("Callback received",
		zap.String("data", callback.Data),
		zap.Int64("user_id", callback.From.ID),
	)

	// Вызываем роутер
	Route(ctx, b, callback, h.Handler)
}
