package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Freeeeeet/thunders/internal/model"
	"github.com/Freeeeeet/thunders/internal/repository/base"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrDuplicateVideo видео с таким youtube_id уже опубликовано
var ErrDuplicateVideo = errors.New("video already posted")

type YoutubePostRepository struct {
	*base.Repository
}

func NewYoutubePostRepository(pool *pgxpool.Pool) *YoutubePostRepository {
	return &YoutubePostRepository{Repository: base.NewRepository(pool)}
}

// Create публикует видео
func (r *YoutubePostRepository) Create(ctx context.Context, post *model.YoutubePost) error {
	query := `
		INSERT INTO youtube_posts (title, description, youtube_id, youtube_url)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`

	err := r.QueryRow(ctx, query,
		post.Title,
		post.Description,
		post.YoutubeID,
		post.YoutubeURL,
	).Scan(&post.ID, &post.CreatedAt)
	if err != nil {
		if base.IsUniqueViolation(err) {
			return fmt.Errorf("create youtube post %s: %w", post.YoutubeID, ErrDuplicateVideo)
		}
		return fmt.Errorf("create youtube post: %w", err)
	}

	return nil
}

// PostCursor позиция последнего видео страницы в порядке (created_at, id) DESC
type PostCursor struct {
	CreatedAt time.Time
	ID        int64
}

// ListPage возвращает до limit видео, новые первыми.
// search ищет по заголовку и описанию, after - видео строго после курсора.
func (r *YoutubePostRepository) ListPage(ctx context.Context, search string, after *PostCursor, limit int) ([]*model.YoutubePost, error) {
	var (
		conditions []string
		args       []interface{}
	)

	if q := strings.TrimSpace(search); q != "" {
		args = append(args, "%"+q+"%")
		conditions = append(conditions, fmt.Sprintf("(title ILIKE $%d OR description ILIKE $%d)", len(args), len(args)))
	}
	if after != nil {
		args = append(args, after.CreatedAt, after.ID)
		conditions = append(conditions, fmt.Sprintf("(created_at, id) < ($%d, $%d)", len(args)-1, len(args)))
	}

	query := `SELECT id, title, description, youtube_id, youtube_url, created_at FROM youtube_posts`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	args = append(args, limit)
	query += fmt.Sprintf(" ORDER BY created_at DESC, id DESC LIMIT $%d", len(args))

	rows, err := r.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list youtube posts: %w", err)
	}
	defer rows.Close()

	var posts []*model.YoutubePost
	for rows.Next() {
		var post model.YoutubePost
		err := rows.Scan(
			&post.ID,
			&post.Title,
			&post.Description,
			&post.YoutubeID,
			&post.YoutubeURL,
			&post.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan youtube post: %w", err)
		}
		posts = append(posts, &post)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate youtube posts: %w", err)
	}

	return posts, nil
}
