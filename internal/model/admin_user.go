package model

import "time"

// AdminUser администратор клуба, узнаётся по Telegram ID
type AdminUser struct {
	TelegramID int64     `json:"telegram_id"`
	Name       string    `json:"name"`
	CreatedAt  time.Time `json:"created_at"`
}
