package service

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/Freeeeeet/thunders/internal/model"
	"github.com/Freeeeeet/thunders/internal/repository"
	"go.uber.org/zap"
)

// BoardPageSize сколько видео отдаётся за одну страницу
const BoardPageSize = 12

var (
	// ErrDuplicateVideo видео уже опубликовано
	ErrDuplicateVideo = repository.ErrDuplicateVideo

	youtubeIDPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{11}$`)
)

// BoardPage страница видео-доски
type BoardPage struct {
	Posts      []*model.YoutubePost `json:"posts"`
	NextCursor string               `json:"next_cursor,omitempty"`
	HasMore    bool                 `json:"has_more"`
}

type BoardService struct {
	posts  YoutubePostStore
	logger *zap.Logger
}

func NewBoardService(posts YoutubePostStore, logger *zap.Logger) *BoardService {
	return &BoardService{
		posts:  posts,
		logger: logger,
	}
}

// Create публикует видео по ссылке YouTube
func (s *BoardService) Create(ctx context.Context, title, description, rawURL string) (*model.YoutubePost, error) {
	title = strings.TrimSpace(title)
	if title == "" || strings.TrimSpace(rawURL) == "" {
		return nil, fmt.Errorf("youtube post: %w", ErrMissingFields)
	}

	videoID, err := ExtractYoutubeID(rawURL)
	if err != nil {
		return nil, err
	}

	post := &model.YoutubePost{
		Title:      title,
		YoutubeID:  videoID,
		YoutubeURL: strings.TrimSpace(rawURL),
	}
	if d := strings.TrimSpace(description); d != "" {
		post.Description = &d
	}

	if err := s.posts.Create(ctx, post); err != nil {
		if errors.Is(err, repository.ErrDuplicateVideo) {
			return nil, ErrDuplicateVideo
		}
		return nil, fmt.Errorf("create youtube post: %w", err)
	}

	s.logger.Info("Video posted", zap.Int64("id", post.ID), zap.String("youtube_id", videoID))
	return post, nil
}

// Page возвращает страницу видео. cursor - значение NextCursor предыдущей страницы
func (s *BoardService) Page(ctx context.Context, search, cursor string) (*BoardPage, error) {
	var after *repository.PostCursor
	if cursor != "" {
		c, err := ParseBoardCursor(cursor)
		if err != nil {
			return nil, err
		}
		after = &c
	}

	posts, err := s.posts.ListPage(ctx, search, after, BoardPageSize)
	if err != nil {
		return nil, fmt.Errorf("board page: %w", err)
	}

	page := &BoardPage{Posts: posts, HasMore: len(posts) == BoardPageSize}
	if page.Posts == nil {
		page.Posts = []*model.YoutubePost{}
	}
	if page.HasMore {
		last := posts[len(posts)-1]
		page.NextCursor = FormatBoardCursor(repository.PostCursor{CreatedAt: last.CreatedAt, ID: last.ID})
	}

	return page, nil
}

// FormatBoardCursor кодирует курсор как "<created_at RFC3339Nano>_<id>"
func FormatBoardCursor(c repository.PostCursor) string {
	return c.CreatedAt.UTC().Format(time.RFC3339Nano) + "_" + strconv.FormatInt(c.ID, 10)
}

// ParseBoardCursor разбирает курсор страницы.
// Курсор без id (только время) означает "старше этого момента".
func ParseBoardCursor(raw string) (repository.PostCursor, error) {
	ts, rawID, hasID := strings.Cut(raw, "_")

	t, err := time.Parse(time.RFC3339Nano, ts)
	if err != nil {
		return repository.PostCursor{}, fmt.Errorf("%w %q: %v", ErrInvalidCursor, raw, err)
	}

	c := repository.PostCursor{CreatedAt: t}
	if hasID {
		id, err := strconv.ParseInt(rawID, 10, 64)
		if err != nil || id <= 0 {
			return repository.PostCursor{}, fmt.Errorf("%w %q: bad id", ErrInvalidCursor, raw)
		}
		c.ID = id
	}

	return c, nil
}

// ExtractYoutubeID достаёт идентификатор видео из ссылки
// (watch?v=, youtu.be/, shorts/, embed/) или принимает сам идентификатор
func ExtractYoutubeID(rawURL string) (string, error) {
	rawURL = strings.TrimSpace(rawURL)
	if youtubeIDPattern.MatchString(rawURL) {
		return rawURL, nil
	}

	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return "", fmt.Errorf("%w: %q", ErrInvalidVideoURL, rawURL)
	}

	host := strings.TrimPrefix(strings.ToLower(u.Host), "www.")
	host = strings.TrimPrefix(host, "m.")

	var id string
	switch host {
	case "youtu.be":
		id = strings.Trim(u.Path, "/")
	case "youtube.com", "music.youtube.com":
		if v := u.Query().Get("v"); v != "" {
			id = v
			break
		}
		for _, prefix := range []string{"/shorts/", "/embed/", "/live/"} {
			if strings.HasPrefix(u.Path, prefix) {
				id = strings.Trim(strings.TrimPrefix(u.Path, prefix), "/")
			}
		}
	}

	if !youtubeIDPattern.MatchString(id) {
		return "", fmt.Errorf("%w: %q", ErrInvalidVideoURL, rawURL)
	}

	return id, nil
}
