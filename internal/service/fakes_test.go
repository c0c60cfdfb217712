package service

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/Freeeeeet/thunders/internal/model"
	"github.com/Freeeeeet/thunders/internal/repository"
	"github.com/google/uuid"
)

var errStore = errors.New("store unavailable")

type fakeGuestStore struct {
	mu      sync.Mutex
	apps    []*model.GuestApplication
	failing bool
}

func (f *fakeGuestStore) Create(_ context.Context, app *model.GuestApplication) error {
	return f.CreateBatch(context.Background(), []*model.GuestApplication{app})
}

func (f *fakeGuestStore) CreateBatch(_ context.Context, apps []*model.GuestApplication) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failing {
		return errStore
	}
	f.apps = append(f.apps, apps...)
	return nil
}

func (f *fakeGuestStore) ListByWindow(_ context.Context, from, to time.Time) ([]*model.GuestApplication, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failing {
		return nil, errStore
	}
	var out []*model.GuestApplication
	for _, app := range f.apps {
		if !app.IsHidden && !app.AppliedAt.Before(from) && !app.AppliedAt.After(to) {
			out = append(out, app)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].AppliedAt.Before(out[j].AppliedAt) })
	return out, nil
}

func (f *fakeGuestStore) Hide(_ context.Context, id uuid.UUID) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, app := range f.apps {
		if app.ID == id {
			app.IsHidden = true
			return true, nil
		}
	}
	return false, nil
}

type fakeMembershipStore struct {
	apps         map[uuid.UUID]*model.MembershipApplication
	failHistory  bool
	colorUpdates int
}

func newFakeMembershipStore(apps ...*model.MembershipApplication) *fakeMembershipStore {
	f := &fakeMembershipStore{apps: make(map[uuid.UUID]*model.MembershipApplication)}
	for _, app := range apps {
		f.apps[app.ID] = app
	}
	return f
}

func (f *fakeMembershipStore) Create(_ context.Context, app *model.MembershipApplication) error {
	if app.ID == uuid.Nil {
		app.ID = uuid.New()
	}
	app.CreatedAt = time.Now()
	f.apps[app.ID] = app
	return nil
}

func (f *fakeMembershipStore) GetByID(_ context.Context, id uuid.UUID) (*model.MembershipApplication, error) {
	app, ok := f.apps[id]
	if !ok {
		return nil, nil
	}
	cp := *app
	return &cp, nil
}

func isRegular(plan string) bool {
	return plan == model.PlanRegular2 || plan == model.PlanRegular4
}

func (f *fakeMembershipStore) ListRegularByMonth(_ context.Context, month time.Time) ([]*model.MembershipApplication, error) {
	var out []*model.MembershipApplication
	for _, app := range f.apps {
		if app.TargetMonth.Equal(month) && isRegular(app.Plan) {
			out = append(out, app)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (f *fakeMembershipStore) CountRegularByPhones(_ context.Context, phones []string, upTo time.Time) (map[string]int, error) {
	if f.failHistory {
		return nil, errStore
	}
	wanted := make(map[string]bool)
	for _, p := range phones {
		wanted[p] = true
	}
	counts := make(map[string]int)
	for _, app := range f.apps {
		if wanted[app.Phone] && isRegular(app.Plan) && !app.TargetMonth.After(upTo) {
			counts[app.Phone]++
		}
	}
	return counts, nil
}

func (f *fakeMembershipStore) IncrementUsedCount(_ context.Context, id uuid.UUID, at time.Time) (int, error) {
	app, ok := f.apps[id]
	if !ok {
		return 0, repository.ErrNotFound
	}
	app.UsedCount++
	app.LastGameDate = &at
	return app.UsedCount, nil
}

func (f *fakeMembershipStore) SetGroupColor(_ context.Context, ids []uuid.UUID, color *string) (int64, error) {
	f.colorUpdates++
	var n int64
	for _, id := range ids {
		if app, ok := f.apps[id]; ok {
			app.GroupColor = color
			n++
		}
	}
	return n, nil
}

type fakeIcnStore struct {
	members   map[uuid.UUID]*model.IcnMember
	failCount bool
}

func (f *fakeIcnStore) ListActive(_ context.Context) ([]*model.IcnMember, error) {
	var out []*model.IcnMember
	for _, m := range f.members {
		if m.IsActive {
			out = append(out, m)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (f *fakeIcnStore) GetByID(_ context.Context, id uuid.UUID) (*model.IcnMember, error) {
	return f.members[id], nil
}

func (f *fakeIcnStore) IncrementHalfCount(_ context.Context, id uuid.UUID, firstHalf bool) (int, error) {
	if f.failCount {
		return 0, errStore
	}
	m, ok := f.members[id]
	if !ok {
		return 0, repository.ErrNotFound
	}
	if firstHalf {
		m.FirstHalfCount++
		return m.FirstHalfCount, nil
	}
	m.SecondHalfCount++
	return m.SecondHalfCount, nil
}

type fakePostStore struct {
	posts  []*model.YoutubePost
	nextID int64
}

func (f *fakePostStore) Create(_ context.Context, post *model.YoutubePost) error {
	for _, p := range f.posts {
		if p.YoutubeID == post.YoutubeID {
			return repository.ErrDuplicateVideo
		}
	}
	f.nextID++
	post.ID = f.nextID
	if post.CreatedAt.IsZero() {
		post.CreatedAt = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC).Add(time.Duration(f.nextID) * time.Hour)
	}
	f.posts = append(f.posts, post)
	return nil
}

func (f *fakePostStore) ListPage(_ context.Context, search string, after *repository.PostCursor, limit int) ([]*model.YoutubePost, error) {
	var out []*model.YoutubePost
	q := strings.ToLower(strings.TrimSpace(search))
	for _, p := range f.posts {
		if after != nil && !postBefore(p, *after) {
			continue
		}
		if q != "" {
			desc := ""
			if p.Description != nil {
				desc = *p.Description
			}
			if !strings.Contains(strings.ToLower(p.Title), q) && !strings.Contains(strings.ToLower(desc), q) {
				continue
			}
		}
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID > out[j].ID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// postBefore повторяет (created_at, id) < (c.created_at, c.id)
func postBefore(p *model.YoutubePost, c repository.PostCursor) bool {
	if p.CreatedAt.Equal(c.CreatedAt) {
		return p.ID < c.ID
	}
	return p.CreatedAt.Before(c.CreatedAt)
}

type fakeContactStore struct {
	messages []*model.ContactMessage
}

func (f *fakeContactStore) Create(_ context.Context, msg *model.ContactMessage) error {
	msg.ID = uuid.New()
	f.messages = append(f.messages, msg)
	return nil
}

func (f *fakeContactStore) List(_ context.Context) ([]*model.ContactMessage, error) {
	return f.messages, nil
}

type fakeAdminStore struct {
	ids     []int64
	failing bool
}

func (f *fakeAdminStore) IsAdmin(_ context.Context, telegramID int64) (bool, error) {
	if f.failing {
		return false, errStore
	}
	for _, id := range f.ids {
		if id == telegramID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeAdminStore) ListTelegramIDs(_ context.Context) ([]int64, error) {
	return f.ids, nil
}
