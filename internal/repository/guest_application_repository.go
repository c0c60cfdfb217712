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

type GuestApplicationRepository struct {
	*base.Repository
}

func NewGuestApplicationRepository(pool *pgxpool.Pool) *GuestApplicationRepository {
	return &GuestApplicationRepository{Repository: base.NewRepository(pool)}
}

const insertGuestApplication = `
	INSERT INTO guest_applications (id, name, age, height, position, phone, applied_at, is_hidden)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
`

// Create сохраняет заявку гостя
func (r *GuestApplicationRepository) Create(ctx context.Context, app *model.GuestApplication) error {
	if app.ID == uuid.Nil {
		app.ID = uuid.New()
	}

	_, err := r.ExecAffected(ctx, insertGuestApplication,
		app.ID,
		app.Name,
		app.Age,
		app.Height,
		app.Position,
		app.Phone,
		app.AppliedAt,
		app.IsHidden,
	)
	if err != nil {
		return fmt.Errorf("create guest application: %w", err)
	}

	return nil
}

// CreateBatch сохраняет несколько заявок (основной гость и его друзья) одной пачкой
func (r *GuestApplicationRepository) CreateBatch(ctx context.Context, apps []*model.GuestApplication) error {
	if len(apps) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	for _, app := range apps {
		if app.ID == uuid.Nil {
			app.ID = uuid.New()
		}
		batch.Queue(insertGuestApplication,
			app.ID, app.Name, app.Age, app.Height, app.Position, app.Phone, app.AppliedAt, app.IsHidden)
	}

	results := r.SendBatch(ctx, batch)
	defer results.Close()

	for range apps {
		if _, err := results.Exec(); err != nil {
			return fmt.Errorf("create guest applications batch: %w", err)
		}
	}

	return nil
}

// ListByWindow возвращает видимые заявки с applied_at в [from, to], по времени подачи
func (r *GuestApplicationRepository) ListByWindow(ctx context.Context, from, to time.Time) ([]*model.GuestApplication, error) {
	query := `
		SELECT id, name, age, height, position, phone, applied_at, is_hidden
		FROM guest_applications
		WHERE applied_at >= $1 AND applied_at <= $2 AND is_hidden = false
		ORDER BY applied_at ASC
	`

	rows, err := r.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("list guest applications: %w", err)
	}
	defer rows.Close()

	var apps []*model.GuestApplication
	for rows.Next() {
		var app model.GuestApplication
		err := rows.Scan(
			&app.ID,
			&app.Name,
			&app.Age,
			&app.Height,
			&app.Position,
			&app.Phone,
			&app.AppliedAt,
			&app.IsHidden,
		)
		if err != nil {
			return nil, fmt.Errorf("scan guest application: %w", err)
		}
		apps = append(apps, &app)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate guest applications: %w", err)
	}

	return apps, nil
}

// Hide скрывает заявку из списков. Возвращает false если заявки нет
func (r *GuestApplicationRepository) Hide(ctx context.Context, id uuid.UUID) (bool, error) {
	affected, err := r.ExecAffected(ctx, `UPDATE guest_applications SET is_hidden = true WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("hide guest application: %w", err)
	}
	return affected > 0, nil
}
