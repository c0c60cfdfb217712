package callbacks

import (
	"context"
	"strings"

	"github.com/Freeeeeet/thunders/internal/controller/callbacks/admin"
	"github.com/Freeeeeet/thunders/internal/controller/callbacks/callbacktypes"
	"github.com/Freeeeeet/thunders/internal/controller/callbacks/common"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// ========================
// Main Callback Router
// ========================

// Route распределяет callback query по соответствующим обработчикам
func Route(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	data := callback.Data

	h.Logger.Info("Routing callback",
		zap.String("data", data),
		zap.Int64("user_id", callback.From.ID),
		zap.String("user_name", callback.From.FirstName))

	switch {
	case data == common.Noop:
		// No operation - просто подтверждаем callback
		common.AnswerCallback(ctx, b, callback.ID, "")
	case data == common.BackToMain:
		common.WithAdmin(ctx, b, callback, h, admin.HandleMainMenu)

	// ===== Недельный список гостей =====
	case strings.HasPrefix(data, common.GuestsWeek):
		common.WithAdmin(ctx, b, callback, h, admin.HandleGuestsWeek)
	case strings.HasPrefix(data, common.RosterCard):
		common.WithAdmin(ctx, b, callback, h, admin.HandleRosterCard)

	// ===== Доска членства =====
	case strings.HasPrefix(data, common.MembersMonth):
		common.WithAdmin(ctx, b, callback, h, admin.HandleMembersMonth)
	case strings.HasPrefix(data, common.MemberAttend):
		common.WithAdmin(ctx, b, callback, h, admin.HandleMemberAttend)

	// ===== Объявление =====
	case data == common.DraftNotice:
		common.WithAdmin(ctx, b, callback, h, admin.HandleDraftNotice)

	default:
		h.Logger.Warn("Unknown callback", zap.String("data", data))
		common.AnswerCallbackAlert(ctx, b, callback.ID, "❌ 알 수 없는 명령입니다")
	}
}
