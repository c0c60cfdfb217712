package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/Freeeeeet/thunders/internal/model"
	"github.com/Freeeeeet/thunders/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestExtractYoutubeID(t *testing.T) {
	valid := map[string]string{
		"dQw4w9WgXcQ":                                  "dQw4w9WgXcQ",
		"https://www.youtube.com/watch?v=dQw4w9WgXcQ":  "dQw4w9WgXcQ",
		"https://youtube.com/watch?v=dQw4w9WgXcQ&t=42": "dQw4w9WgXcQ",
		"https://m.youtube.com/watch?v=dQw4w9WgXcQ":    "dQw4w9WgXcQ",
		"https://youtu.be/dQw4w9WgXcQ":                 "dQw4w9WgXcQ",
		"https://youtu.be/dQw4w9WgXcQ?si=abc":          "dQw4w9WgXcQ",
		"https://www.youtube.com/shorts/dQw4w9WgXcQ":   "dQw4w9WgXcQ",
		"https://www.youtube.com/embed/dQw4w9WgXcQ":    "dQw4w9WgXcQ",
		"https://www.youtube.com/live/dQw4w9WgXcQ":     "dQw4w9WgXcQ",
		"  https://youtu.be/dQw4w9WgXcQ  ":             "dQw4w9WgXcQ",
	}
	for raw, want := range valid {
		t.Run(raw, func(t *testing.T) {
			got, err := ExtractYoutubeID(raw)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}

	invalid := []string{
		"",
		"not a url",
		"https://vimeo.com/123456",
		"https://www.youtube.com/watch?v=short",
		"https://www.youtube.com/channel/UC123",
	}
	for _, raw := range invalid {
		t.Run("invalid "+raw, func(t *testing.T) {
			_, err := ExtractYoutubeID(raw)
			assert.ErrorIs(t, err, ErrInvalidVideoURL)
		})
	}
}

func TestBoardCreate(t *testing.T) {
	ctx := context.Background()
	store := &fakePostStore{}
	svc := NewBoardService(store, zap.NewNop())

	post, err := svc.Create(ctx, "  결승전 하이라이트 ", "", "https://youtu.be/dQw4w9WgXcQ")
	require.NoError(t, err)
	assert.Equal(t, "결승전 하이라이트", post.Title)
	assert.Equal(t, "dQw4w9WgXcQ", post.YoutubeID)
	assert.Nil(t, post.Description)
	assert.NotZero(t, post.ID)

	t.Run("duplicate video", func(t *testing.T) {
		_, err := svc.Create(ctx, "다시", "", "https://www.youtube.com/watch?v=dQw4w9WgXcQ")
		assert.ErrorIs(t, err, ErrDuplicateVideo)
	})

	t.Run("missing title", func(t *testing.T) {
		_, err := svc.Create(ctx, " ", "", "https://youtu.be/dQw4w9WgXcQ")
		assert.ErrorIs(t, err, ErrMissingFields)
	})

	t.Run("bad url", func(t *testing.T) {
		_, err := svc.Create(ctx, "title", "", "https://example.com/video")
		assert.ErrorIs(t, err, ErrInvalidVideoURL)
	})
}

func TestBoardPage(t *testing.T) {
	ctx := context.Background()
	store := &fakePostStore{}
	svc := NewBoardService(store, zap.NewNop())

	for i := 0; i < 15; i++ {
		title := fmt.Sprintf("경기 %02d", i)
		if i%5 == 0 {
			title += " 하이라이트"
		}
		_, err := svc.Create(ctx, title, "", fmt.Sprintf("https://youtu.be/video%06d", i))
		require.NoError(t, err)
	}

	first, err := svc.Page(ctx, "", "")
	require.NoError(t, err)
	require.Len(t, first.Posts, BoardPageSize)
	assert.True(t, first.HasMore)
	assert.NotEmpty(t, first.NextCursor)
	assert.Equal(t, "경기 14", first.Posts[0].Title)

	second, err := svc.Page(ctx, "", first.NextCursor)
	require.NoError(t, err)
	require.Len(t, second.Posts, 3)
	assert.False(t, second.HasMore)
	assert.Empty(t, second.NextCursor)
	assert.Equal(t, "경기 02", second.Posts[0].Title)

	search, err := svc.Page(ctx, "하이라이트", "")
	require.NoError(t, err)
	assert.Len(t, search.Posts, 3)

	empty, err := svc.Page(ctx, "없는 영상", "")
	require.NoError(t, err)
	assert.NotNil(t, empty.Posts)
	assert.Empty(t, empty.Posts)

	_, err = svc.Page(ctx, "", "yesterday")
	assert.ErrorIs(t, err, ErrInvalidCursor)
}

func TestBoardPageSameCreatedAt(t *testing.T) {
	ctx := context.Background()
	store := &fakePostStore{}
	svc := NewBoardService(store, zap.NewNop())

	// все видео загружены одной пачкой с одинаковым created_at
	at := time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC)
	for i := 0; i < 15; i++ {
		require.NoError(t, store.Create(ctx, &model.YoutubePost{
			Title:     fmt.Sprintf("경기 %02d", i),
			YoutubeID: fmt.Sprintf("video%06d", i),
			CreatedAt: at,
		}))
	}

	first, err := svc.Page(ctx, "", "")
	require.NoError(t, err)
	require.Len(t, first.Posts, BoardPageSize)
	require.True(t, first.HasMore)

	second, err := svc.Page(ctx, "", first.NextCursor)
	require.NoError(t, err)
	require.Len(t, second.Posts, 3)

	seen := make(map[int64]bool)
	for _, p := range append(first.Posts, second.Posts...) {
		assert.False(t, seen[p.ID], "видео %d повторилось", p.ID)
		seen[p.ID] = true
	}
	assert.Len(t, seen, 15)
}

func TestBoardCursor(t *testing.T) {
	at := time.Date(2025, 1, 1, 9, 0, 0, 500, time.UTC)

	raw := FormatBoardCursor(repository.PostCursor{CreatedAt: at, ID: 42})
	c, err := ParseBoardCursor(raw)
	require.NoError(t, err)
	assert.True(t, c.CreatedAt.Equal(at))
	assert.Equal(t, int64(42), c.ID)

	// старый курсор без id
	c, err = ParseBoardCursor("2025-01-01T00:00:00Z")
	require.NoError(t, err)
	assert.Zero(t, c.ID)

	for _, bad := range []string{"yesterday", "2025-01-01T00:00:00Z_", "2025-01-01T00:00:00Z_abc", "2025-01-01T00:00:00Z_-1"} {
		_, err := ParseBoardCursor(bad)
		assert.ErrorIs(t, err, ErrInvalidCursor, bad)
	}
}
