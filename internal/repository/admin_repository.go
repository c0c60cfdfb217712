package repository

import (
	"context"
	"fmt"

	"github.com/Freeeeeet/thunders/internal/repository/base"
	"github.com/jackc/pgx/v5/pgxpool"
)

type AdminRepository struct {
	*base.Repository
}

func NewAdminRepository(pool *pgxpool.Pool) *AdminRepository {
	return &AdminRepository{Repository: base.NewRepository(pool)}
}

// IsAdmin проверяет есть ли пользователь Telegram среди администраторов
func (r *AdminRepository) IsAdmin(ctx context.Context, telegramID int64) (bool, error) {
	var exists bool
	err := r.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM admin_users WHERE telegram_id = $1)`,
		telegramID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check admin: %w", err)
	}
	return exists, nil
}

// ListTelegramIDs возвращает Telegram ID всех администраторов
func (r *AdminRepository) ListTelegramIDs(ctx context.Context) ([]int64, error) {
	rows, err := r.Query(ctx, `SELECT telegram_id FROM admin_users ORDER BY telegram_id`)
	if err != nil {
		return nil, fmt.Errorf("list admins: %w", err)
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan admin id: %w", err)
		}
		ids = append(ids, id)
	}

	return ids, rows.Err()
}
