package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/Freeeeeet/thunders/internal/model"
	"go.uber.org/zap"
)

type ContactService struct {
	messages ContactMessageStore
	logger   *zap.Logger
}

func NewContactService(messages ContactMessageStore, logger *zap.Logger) *ContactService {
	return &ContactService{messages: messages, logger: logger}
}

// Create сохраняет сообщение с формы обратной связи
func (s *ContactService) Create(ctx context.Context, name, contact, message string) (*model.ContactMessage, error) {
	msg := &model.ContactMessage{
		Name:    strings.TrimSpace(name),
		Contact: strings.TrimSpace(contact),
		Message: strings.TrimSpace(message),
	}
	if msg.Name == "" || msg.Contact == "" || msg.Message == "" {
		return nil, fmt.Errorf("contact message: %w", ErrMissingFields)
	}

	if err := s.messages.Create(ctx, msg); err != nil {
		return nil, fmt.Errorf("create contact message: %w", err)
	}

	s.logger.Info("Contact message received", zap.String("id", msg.ID.String()))
	return msg, nil
}

// List возвращает все сообщения
func (s *ContactService) List(ctx context.Context) ([]*model.ContactMessage, error) {
	return s.messages.List(ctx)
}
