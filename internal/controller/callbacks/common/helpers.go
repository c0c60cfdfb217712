package common

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/Freeeeeet/thunders/internal/formatting"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/google/uuid"
)

// ========================
// Callback Data Patterns
// ========================

const (
	Noop       = "noop"
	BackToMain = "back_to_main"

	GuestsWeek   = "guests_week:"   // guests_week:-1 (смещение недели)
	RosterCard   = "roster_card:"   // roster_card:0 (смещение недели)
	MembersMonth = "members_month:" // members_month:2025-03
	MemberAttend = "member_attend:" // member_attend:<uuid>:2025-03
	DraftNotice  = "draft_notice"
)

// MaxWeekOffset на сколько недель назад и вперёд можно листать список
const MaxWeekOffset = 12

// monthKeyLayout формат месяца в callback data
const monthKeyLayout = "2006-01"

// Helper functions для всех callback handlers

// AnswerCallback отвечает на callback query (без alert)
func AnswerCallback(ctx context.Context, b *bot.Bot, callbackID string, text string) {
	b.AnswerCallbackQuery(ctx, &bot.AnswerCallbackQueryParams{
		CallbackQueryID: callbackID,
		Text:            text,
		ShowAlert:       false,
	})
}

// AnswerCallbackAlert отвечает на callback query с alert (всплывающее окно)
func AnswerCallbackAlert(ctx context.Context, b *bot.Bot, callbackID string, text string) {
	b.AnswerCallbackQuery(ctx, &bot.AnswerCallbackQueryParams{
		CallbackQueryID: callbackID,
		Text:            text,
		ShowAlert:       true,
	})
}

// GetMessageFromCallback извлекает сообщение из callback query
func GetMessageFromCallback(callback *models.CallbackQuery) *models.Message {
	if callback.Message.Message != nil {
		return callback.Message.Message
	}
	return nil
}

// ClampWeekOffset ограничивает смещение недели диапазоном [-MaxWeekOffset, MaxWeekOffset]
func ClampWeekOffset(offset int) int {
	return min(max(offset, -MaxWeekOffset), MaxWeekOffset)
}

// ParseWeekOffset извлекает смещение недели: "guests_week:-2" -> -2
func ParseWeekOffset(data, prefix string) (int, error) {
	raw, ok := strings.CutPrefix(data, prefix)
	if !ok {
		return 0, ErrInvalidFormat
	}
	offset, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	return ClampWeekOffset(offset), nil
}

// MonthKey ключ месяца для callback data
func MonthKey(month time.Time) string {
	return month.Format(monthKeyLayout)
}

// ParseMonthKey извлекает месяц: "members_month:2025-03" -> 2025-03-01
func ParseMonthKey(data, prefix string) (time.Time, error) {
	raw, ok := strings.CutPrefix(data, prefix)
	if !ok {
		return time.Time{}, ErrInvalidFormat
	}
	month, err := formatting.ParseMonth(raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	return month, nil
}

// ParseAttendCallback разбирает "member_attend:<uuid>:2025-03"
func ParseAttendCallback(data string) (uuid.UUID, time.Time, error) {
	raw, ok := strings.CutPrefix(data, MemberAttend)
	if !ok {
		return uuid.Nil, time.Time{}, ErrInvalidFormat
	}

	idPart, monthPart, ok := strings.Cut(raw, ":")
	if !ok {
		return uuid.Nil, time.Time{}, ErrInvalidFormat
	}

	id, err := uuid.Parse(idPart)
	if err != nil {
		return uuid.Nil, time.Time{}, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	month, err := formatting.ParseMonth(monthPart)
	if err != nil {
		return uuid.Nil, time.Time{}, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}

	return id, month, nil
}

// AttendCallback собирает callback отметки посещения
func AttendCallback(id uuid.UUID, month time.Time) string {
	return MemberAttend + id.String() + ":" + MonthKey(month)
}

// IsMessageNotModifiedError ошибка Telegram при редактировании без изменений
func IsMessageNotModifiedError(err error) bool {
	return err != nil && strings.Contains(err.Error(), "message is not modified")
}
