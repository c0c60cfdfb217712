package handlers

import (
	"context"
	"strings"

	"github.com/Freeeeeet/thunders/internal/controller/callbacks/common"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// handleDraftNoticeStep получает тему объявления и отвечает черновиком от AI
func (h *Handlers) handleDraftNoticeStep(ctx context.Context, b *bot.Bot, update *models.Update) {
	telegramID := update.Message.From.ID
	chatID := update.Message.Chat.ID

	// повторная проверка: админа могли удалить посреди диалога
	if !h.requireAdmin(ctx, b, update) {
		h.stateManager.ClearState(telegramID)
		return
	}

	input := strings.TrimSpace(update.Message.Text)

	h.logger.Info("Drafting notice",
		zap.Int64("telegram_id", telegramID),
		zap.Int("input_length", len(input)))

	h.sendMessage(ctx, b, chatID, "⏳ 공지 초안을 작성하고 있습니다...")

	draft, err := h.assistant.Draft(ctx, input, h.now())
	if err != nil {
		h.logger.Error("Failed to draft notice", zap.Error(err))
		h.sendError(ctx, b, chatID, common.ErrorMessage(err)+"\n\n다시 입력하거나 /cancel 로 취소하세요.")
		return
	}

	h.stateManager.ClearState(telegramID)
	h.sendMessage(ctx, b, chatID, draft)
}
