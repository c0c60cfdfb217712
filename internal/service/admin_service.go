package service

import (
	"context"

	"go.uber.org/zap"
)

type AdminService struct {
	admins AdminStore
	logger *zap.Logger
}

func NewAdminService(admins AdminStore, logger *zap.Logger) *AdminService {
	return &AdminService{admins: admins, logger: logger}
}

// IsAdmin проверяет права администратора. Ошибка хранилища трактуется как отказ
func (s *AdminService) IsAdmin(ctx context.Context, telegramID int64) bool {
	ok, err := s.admins.IsAdmin(ctx, telegramID)
	if err != nil {
		s.logger.Error("Failed to check admin", zap.Int64("telegram_id", telegramID), zap.Error(err))
		return false
	}
	return ok
}

// ChatIDs возвращает чаты администраторов для рассылки
func (s *AdminService) ChatIDs(ctx context.Context) ([]int64, error) {
	return s.admins.ListTelegramIDs(ctx)
}
