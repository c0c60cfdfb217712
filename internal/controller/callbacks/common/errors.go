package common

import (
	"errors"

	"github.com/Freeeeeet/thunders/internal/assist"
	"github.com/Freeeeeet/thunders/internal/service"
)

// Общие ошибки для обработчиков
var (
	ErrNotAdmin      = errors.New("user is not an admin")
	ErrNoMessage     = errors.New("no message in callback")
	ErrInvalidFormat = errors.New("invalid callback format")
)

// ErrorMessage возвращает пользовательское сообщение для ошибки
func ErrorMessage(err error) string {
	switch {
	case errors.Is(err, ErrNotAdmin):
		return "⛔ 관리자만 사용할 수 있습니다"
	case errors.Is(err, ErrNoMessage):
		return "❌ 메시지를 처리할 수 없습니다"
	case errors.Is(err, ErrInvalidFormat):
		return "❌ 잘못된 요청입니다"
	case errors.Is(err, service.ErrMemberNotFound):
		return "❌ 회원을 찾을 수 없습니다"
	case errors.Is(err, service.ErrGuestNotFound):
		return "❌ 신청 내역을 찾을 수 없습니다"
	case errors.Is(err, assist.ErrNotConfigured):
		return "❌ AI 기능이 설정되지 않았습니다"
	default:
		return "❌ 오류가 발생했습니다"
	}
}
