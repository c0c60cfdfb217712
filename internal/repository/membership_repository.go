package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/Freeeeeet/thunders/internal/model"
	"github.com/Freeeeeet/thunders/internal/repository/base"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type MembershipRepository struct {
	*base.Repository
}

func NewMembershipRepository(pool *pgxpool.Pool) *MembershipRepository {
	return &MembershipRepository{Repository: base.NewRepository(pool)}
}

const membershipColumns = `
	id, name, phone, age, position, height_range, uniform_size, plan, target_month,
	used_count, group_color, payment_status, last_game_date, created_at
`

func scanMembership(row pgx.Row) (*model.MembershipApplication, error) {
	var app model.MembershipApplication
	err := row.Scan(
		&app.ID,
		&app.Name,
		&app.Phone,
		&app.Age,
		&app.Position,
		&app.HeightRange,
		&app.UniformSize,
		&app.Plan,
		&app.TargetMonth,
		&app.UsedCount,
		&app.GroupColor,
		&app.PaymentStatus,
		&app.LastGameDate,
		&app.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &app, nil
}

// Create сохраняет заявку на членство
func (r *MembershipRepository) Create(ctx context.Context, app *model.MembershipApplication) error {
	if app.ID == uuid.Nil {
		app.ID = uuid.New()
	}
	if app.PaymentStatus == "" {
		app.PaymentStatus = model.PaymentStatusPending
	}

	query := `
		INSERT INTO membership_applications
			(id, name, phone, age, position, height_range, uniform_size, plan, target_month, payment_status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING created_at
	`

	err := r.QueryRow(ctx, query,
		app.ID,
		app.Name,
		app.Phone,
		app.Age,
		app.Position,
		app.HeightRange,
		app.UniformSize,
		app.Plan,
		app.TargetMonth,
		app.PaymentStatus,
	).Scan(&app.CreatedAt)
	if err != nil {
		return fmt.Errorf("create membership application: %w", err)
	}

	return nil
}

// GetByID получает заявку по ID
func (r *MembershipRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.MembershipApplication, error) {
	query := `SELECT ` + membershipColumns + ` FROM membership_applications WHERE id = $1`

	app, err := scanMembership(r.QueryRow(ctx, query, id))
	if err != nil {
		if base.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get membership application by id: %w", err)
	}

	return app, nil
}

// ListRegularByMonth возвращает регулярных членов месяца, по имени
func (r *MembershipRepository) ListRegularByMonth(ctx context.Context, month time.Time) ([]*model.MembershipApplication, error) {
	query := `SELECT ` + membershipColumns + `
		FROM membership_applications
		WHERE target_month = $1 AND plan = ANY($2)
		ORDER BY name ASC
	`

	rows, err := r.Query(ctx, query, month, model.RegularPlans)
	if err != nil {
		return nil, fmt.Errorf("list memberships by month: %w", err)
	}
	defer rows.Close()

	var apps []*model.MembershipApplication
	for rows.Next() {
		app, err := scanMembership(rows)
		if err != nil {
			return nil, fmt.Errorf("scan membership application: %w", err)
		}
		apps = append(apps, app)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate memberships: %w", err)
	}

	return apps, nil
}

// CountRegularByPhones считает регулярные заявки по телефонам до месяца upTo включительно
func (r *MembershipRepository) CountRegularByPhones(ctx context.Context, phones []string, upTo time.Time) (map[string]int, error) {
	counts := make(map[string]int, len(phones))
	if len(phones) == 0 {
		return counts, nil
	}

	query := `
		SELECT phone, COUNT(*)
		FROM membership_applications
		WHERE phone = ANY($1) AND plan = ANY($2) AND target_month <= $3
		GROUP BY phone
	`

	rows, err := r.Query(ctx, query, phones, model.RegularPlans, upTo)
	if err != nil {
		return nil, fmt.Errorf("count memberships by phone: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var phone string
		var count int
		if err := rows.Scan(&phone, &count); err != nil {
			return nil, fmt.Errorf("scan membership count: %w", err)
		}
		counts[phone] = count
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate membership counts: %w", err)
	}

	return counts, nil
}

// IncrementUsedCount отмечает посещение и возвращает новое значение счётчика
func (r *MembershipRepository) IncrementUsedCount(ctx context.Context, id uuid.UUID, at time.Time) (int, error) {
	query := `
		UPDATE membership_applications
		SET used_count = used_count + 1, last_game_date = $2
		WHERE id = $1
		RETURNING used_count
	`

	var used int
	err := r.QueryRow(ctx, query, id, at).Scan(&used)
	if err != nil {
		if base.IsNotFound(err) {
			return 0, fmt.Errorf("membership application %s: %w", id, ErrNotFound)
		}
		return 0, fmt.Errorf("increment used count: %w", err)
	}

	return used, nil
}

// SetGroupColor задаёт цвет группы для набора заявок (nil сбрасывает цвет)
func (r *MembershipRepository) SetGroupColor(ctx context.Context, ids []uuid.UUID, color *string) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	affected, err := r.ExecAffected(ctx,
		`UPDATE membership_applications SET group_color = $1 WHERE id = ANY($2)`,
		color, ids,
	)
	if err != nil {
		return 0, fmt.Errorf("set group color: %w", err)
	}

	return affected, nil
}
