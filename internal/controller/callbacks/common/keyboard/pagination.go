package keyboard

import (
	"fmt"
	"time"

	"github.com/go-telegram/bot/models"
)

// WeekPagination создаёт пагинацию по неделям.
// Кнопки за пределами [-limit, limit] не показываются.
func WeekPagination(prefix string, weekOffset, limit int) []models.InlineKeyboardButton {
	var buttons []models.InlineKeyboardButton

	if weekOffset > -limit {
		buttons = append(buttons, Button("◀️ 이전 주", fmt.Sprintf("%s%d", prefix, weekOffset-1)))
	}
	// на соседней неделе "이번 주" совпал бы с одной из стрелок
	if weekOffset > 1 || weekOffset < -1 {
		buttons = append(buttons, Button("📍 이번 주", prefix+"0"))
	}
	if weekOffset < limit {
		buttons = append(buttons, Button("다음 주 ▶️", fmt.Sprintf("%s%d", prefix, weekOffset+1)))
	}

	return buttons
}

// MonthPagination создаёт пагинацию по месяцам (месяц/год)
func MonthPagination(prefix string, month time.Time) []models.InlineKeyboardButton {
	prev := month.AddDate(0, -1, 0)
	next := month.AddDate(0, 1, 0)

	return []models.InlineKeyboardButton{
		Button("◀️", prefix+prev.Format("2006-01")),
		Button(fmt.Sprintf("📅 %d/%02d", month.Year(), int(month.Month())), "noop"),
		Button("▶️", prefix+next.Format("2006-01")),
	}
}

// AddWeekPagination добавляет пагинацию по неделям к builder
func (b *Builder) AddWeekPagination(prefix string, weekOffset, limit int) *Builder {
	return b.Row(WeekPagination(prefix, weekOffset, limit)...)
}
