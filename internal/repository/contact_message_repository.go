package repository

import (
	"context"
	"fmt"

	"github.com/Freeeeeet/thunders/internal/model"
	"github.com/Freeeeeet/thunders/internal/repository/base"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ContactMessageRepository struct {
	*base.Repository
}

func NewContactMessageRepository(pool *pgxpool.Pool) *ContactMessageRepository {
	return &ContactMessageRepository{Repository: base.NewRepository(pool)}
}

// Create сохраняет сообщение с формы обратной связи
func (r *ContactMessageRepository) Create(ctx context.Context, msg *model.ContactMessage) error {
	if msg.ID == uuid.Nil {
		msg.ID = uuid.New()
	}

	query := `
		INSERT INTO contact_messages (id, name, contact, message)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at
	`

	err := r.QueryRow(ctx, query, msg.ID, msg.Name, msg.Contact, msg.Message).Scan(&msg.CreatedAt)
	if err != nil {
		return fmt.Errorf("create contact message: %w", err)
	}

	return nil
}

// List возвращает все сообщения, новые первыми
func (r *ContactMessageRepository) List(ctx context.Context) ([]*model.ContactMessage, error) {
	rows, err := r.Query(ctx, `
		SELECT id, name, contact, message, created_at
		FROM contact_messages
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("list contact messages: %w", err)
	}
	defer rows.Close()

	var messages []*model.ContactMessage
	for rows.Next() {
		var msg model.ContactMessage
		if err := rows.Scan(&msg.ID, &msg.Name, &msg.Contact, &msg.Message, &msg.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan contact message: %w", err)
		}
		messages = append(messages, &msg)
	}

	return messages, rows.Err()
}
