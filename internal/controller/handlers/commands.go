package handlers

import (
	"context"
	"fmt"
	"strings"

	"github.com/Freeeeeet/thunders/internal/controller/callbacks/admin"
	"github.com/Freeeeeet/thunders/internal/controller/callbacks/common"
	"github.com/Freeeeeet/thunders/internal/controller/callbacks/common/keyboard"
	"github.com/Freeeeeet/thunders/internal/controller/state"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// HandleStart обрабатывает команду /start
func (h *Handlers) HandleStart(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil || update.Message.From == nil {
		return
	}

	telegramID := update.Message.From.ID
	chatID := update.Message.Chat.ID

	if !h.adminService.IsAdmin(ctx, telegramID) {
		h.sendMessage(ctx, b, chatID, fmt.Sprintf(
			"👋 안녕하세요, %s님!\n\n"+
				"썬더스 농구 동호회 관리자 봇입니다.\n"+
				"게스트 신청과 회원 가입은 홈페이지에서 해주세요.\n\n"+
				"관리자 등록이 필요하면 아래 ID를 운영진에게 알려주세요.\n"+
				"텔레그램 ID: %d",
			update.Message.From.FirstName,
			telegramID,
		))
		return
	}

	h.stateManager.ClearState(telegramID)

	text, kb := common.BuildMainMenu(h.membershipService.CurrentMonth(h.now()))
	h.sendHTML(ctx, b, chatID, text, kb)
}

// HandleHelp обрабатывает команду /help
func (h *Handlers) HandleHelp(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	helpText := "📚 명령어 안내\n\n" +
		"/start - 메인 메뉴\n" +
		"/guests - 이번 주 게스트 명단 (금요일 21시 마감)\n" +
		"/members - 이번 달 회원 현황과 출석 체크\n" +
		"/card - 게스트 명단 이미지\n" +
		"/draft - AI 공지 초안 작성\n" +
		"/cancel - 진행 중인 입력 취소\n" +
		"/help - 이 도움말\n\n" +
		"마감 시간이 되면 관리자 모두에게 명단이 자동으로 전송됩니다."

	h.sendMessage(ctx, b, update.Message.Chat.ID, helpText)
}

// HandleGuests обрабатывает команду /guests - список гостей текущей недели
func (h *Handlers) HandleGuests(ctx context.Context, b *bot.Bot, update *models.Update) {
	if !h.requireAdmin(ctx, b, update) {
		return
	}

	chatID := update.Message.Chat.ID

	roster, err := h.rosterService.GuestsAt(ctx, h.now(), 0)
	if err != nil {
		h.logger.Error("Failed to load roster", zap.Error(err))
		h.sendError(ctx, b, chatID, common.ErrorMessage(err))
		return
	}

	text, kb := common.BuildRosterScreen(roster)
	h.sendHTML(ctx, b, chatID, text, kb)
}

// HandleMembers обрабатывает команду /members - доска членства текущего месяца
func (h *Handlers) HandleMembers(ctx context.Context, b *bot.Bot, update *models.Update) {
	if !h.requireAdmin(ctx, b, update) {
		return
	}

	chatID := update.Message.Chat.ID
	month := h.membershipService.CurrentMonth(h.now())

	board, err := h.membershipService.Board(ctx, month)
	if err != nil {
		h.logger.Error("Failed to load membership board", zap.Error(err))
		h.sendError(ctx, b, chatID, common.ErrorMessage(err))
		return
	}

	text, kb := common.BuildMembersScreen(month, board)
	h.sendHTML(ctx, b, chatID, text, kb)
}

// HandleCard обрабатывает команду /card - список гостей картинкой
func (h *Handlers) HandleCard(ctx context.Context, b *bot.Bot, update *models.Update) {
	if !h.requireAdmin(ctx, b, update) {
		return
	}

	chatID := update.Message.Chat.ID

	roster, err := h.rosterService.GuestsAt(ctx, h.now(), 0)
	if err != nil {
		h.logger.Error("Failed to load roster", zap.Error(err))
		h.sendError(ctx, b, chatID, common.ErrorMessage(err))
		return
	}

	img, err := common.GenerateRosterImage(roster, h.fontPath)
	if err != nil {
		h.logger.Error("Failed to render roster card", zap.Error(err))
		h.sendError(ctx, b, chatID, common.ErrorMessage(err))
		return
	}

	_, kb := common.BuildRosterScreen(roster)
	h.sendPhoto(ctx, b, chatID, img, fmt.Sprintf("🏀 <b>%s</b> · %d명", roster.Week.Label, len(roster.Guests)), kb)
}

// HandleDraft обрабатывает команду /draft - начало диалога AI объявления
func (h *Handlers) HandleDraft(ctx context.Context, b *bot.Bot, update *models.Update) {
	if !h.requireAdmin(ctx, b, update) {
		return
	}

	chatID := update.Message.Chat.ID

	if !h.assistant.Enabled() {
		h.sendError(ctx, b, chatID, "❌ AI 기능이 설정되지 않았습니다")
		return
	}

	h.stateManager.SetState(update.Message.From.ID, state.StateDraftNotice)

	kb := keyboard.NewBuilder().
		Row(keyboard.CancelButton(common.BackToMain)).
		Build()
	h.sendHTML(ctx, b, chatID, admin.DraftPrompt, kb)
}

// HandleCancel обрабатывает команду /cancel - отмена текущего диалога
func (h *Handlers) HandleCancel(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil || update.Message.From == nil {
		return
	}

	telegramID := update.Message.From.ID
	currentState := h.stateManager.GetState(telegramID)

	if currentState == state.StateNone {
		h.sendMessage(ctx, b, update.Message.Chat.ID, "❌ 취소할 작업이 없습니다.")
		return
	}

	// Очищаем состояние
	h.stateManager.ClearState(telegramID)

	h.sendMessage(ctx, b, update.Message.Chat.ID, "✅ 취소되었습니다.\n\n/help 로 명령어를 확인하세요.")
}

// HandleTextMessage обрабатывает текстовые сообщения в зависимости от состояния пользователя
func (h *Handlers) HandleTextMessage(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil || update.Message.From == nil || update.Message.Text == "" {
		return
	}

	// Игнорируем команды (они обрабатываются другими handlers)
	if strings.HasPrefix(update.Message.Text, "/") {
		return
	}

	telegramID := update.Message.From.ID
	currentState := h.stateManager.GetState(telegramID)

	// Если нет активного состояния, игнорируем
	if currentState == state.StateNone {
		h.logger.Debug("No active state, ignoring message",
			zap.Int64("telegram_id", telegramID))
		return
	}

	switch currentState {
	case state.StateDraftNotice:
		h.handleDraftNoticeStep(ctx, b, update)
	default:
		h.logger.Warn("Unknown state", zap.String("state", string(currentState)))
		h.stateManager.ClearState(telegramID)
	}
}
