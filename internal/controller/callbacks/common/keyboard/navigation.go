package keyboard

import (
	"github.com/go-telegram/bot/models"
)

// BackToMainButton создаёт кнопку "메인 메뉴"
func BackToMainButton() models.InlineKeyboardButton {
	return Button("🏠 메인 메뉴", "back_to_main")
}

// CancelButton создаёт кнопку "취소"
func CancelButton(callbackData string) models.InlineKeyboardButton {
	return Button("❌ 취소", callbackData)
}

// AddBackToMainButton добавляет кнопку "메인 메뉴" к builder
func (b *Builder) AddBackToMainButton() *Builder {
	return b.Row(BackToMainButton())
}

// GuestsButton кнопка списка гостей текущей недели
func GuestsButton() models.InlineKeyboardButton {
	return Button("🏀 게스트 명단", "guests_week:0")
}

// MembersButton кнопка доски членства текущего месяца
func MembersButton(monthKey string) models.InlineKeyboardButton {
	return Button("📋 회원 현황", "members_month:"+monthKey)
}

// DraftButton кнопка черновика объявления
func DraftButton() models.InlineKeyboardButton {
	return Button("✍️ 공지 초안", "draft_notice")
}
