package repository

import (
	"context"
	"fmt"

	"github.com/Freeeeeet/thunders/internal/model"
	"github.com/Freeeeeet/thunders/internal/repository/base"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type IcnMemberRepository struct {
	*base.Repository
}

func NewIcnMemberRepository(pool *pgxpool.Pool) *IcnMemberRepository {
	return &IcnMemberRepository{Repository: base.NewRepository(pool)}
}

const icnMemberColumns = `
	id, name, phone, age, position, height_range, uniform_size, is_active,
	first_half_count, second_half_count, created_at
`

func scanIcnMember(row pgx.Row) (*model.IcnMember, error) {
	var m model.IcnMember
	err := row.Scan(
		&m.ID,
		&m.Name,
		&m.Phone,
		&m.Age,
		&m.Position,
		&m.HeightRange,
		&m.UniformSize,
		&m.IsActive,
		&m.FirstHalfCount,
		&m.SecondHalfCount,
		&m.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// ListActive возвращает активных участников в порядке добавления
func (r *IcnMemberRepository) ListActive(ctx context.Context) ([]*model.IcnMember, error) {
	query := `SELECT ` + icnMemberColumns + `
		FROM icn_members
		WHERE is_active = true
		ORDER BY created_at ASC
	`

	rows, err := r.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list icn members: %w", err)
	}
	defer rows.Close()

	var members []*model.IcnMember
	for rows.Next() {
		m, err := scanIcnMember(rows)
		if err != nil {
			return nil, fmt.Errorf("scan icn member: %w", err)
		}
		members = append(members, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate icn members: %w", err)
	}

	return members, nil
}

// GetByID получает участника по ID
func (r *IcnMemberRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.IcnMember, error) {
	query := `SELECT ` + icnMemberColumns + ` FROM icn_members WHERE id = $1`

	m, err := scanIcnMember(r.QueryRow(ctx, query, id))
	if err != nil {
		if base.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get icn member by id: %w", err)
	}

	return m, nil
}

// IncrementHalfCount увеличивает счётчик игр за первое или второе полугодие
func (r *IcnMemberRepository) IncrementHalfCount(ctx context.Context, id uuid.UUID, firstHalf bool) (int, error) {
	query := `UPDATE icn_members SET second_half_count = second_half_count + 1 WHERE id = $1 RETURNING second_half_count`
	if firstHalf {
		query = `UPDATE icn_members SET first_half_count = first_half_count + 1 WHERE id = $1 RETURNING first_half_count`
	}

	var count int
	err := r.QueryRow(ctx, query, id).Scan(&count)
	if err != nil {
		if base.IsNotFound(err) {
			return 0, fmt.Errorf("icn member %s: %w", id, ErrNotFound)
		}
		return 0, fmt.Errorf("increment half count: %w", err)
	}

	return count, nil
}
