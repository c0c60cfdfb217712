package state

import "time"

// UserState представляет текущее состояние пользователя в диалоге
type UserState string

const (
	StateNone UserState = "" // Нет активного состояния

	// Ввод темы объявления для AI черновика
	StateDraftNotice UserState = "draft_notice"
)

// DefaultTTL через сколько брошенный диалог забывается
const DefaultTTL = 30 * time.Minute

// UserData состояние пользователя в диалоге
type UserData struct {
	State     UserState
	UpdatedAt time.Time
}
