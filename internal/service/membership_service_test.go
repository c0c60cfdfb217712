package service

import (
	"context"
	"testing"
	"time"

	"github.com/Freeeeeet/thunders/internal/model"
	"github.com/Freeeeeet/thunders/internal/signup"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func month(year int, m time.Month) time.Time {
	return time.Date(year, m, 1, 0, 0, 0, 0, time.UTC)
}

func member(name, phone, plan string, target time.Time, used int) *model.MembershipApplication {
	return &model.MembershipApplication{
		ID:          uuid.New(),
		Name:        name,
		Phone:       phone,
		Age:         "30",
		Position:    "small",
		HeightRange: "175~180",
		Plan:        plan,
		TargetMonth: target,
		UsedCount:   used,
	}
}

func TestMembershipBoard(t *testing.T) {
	ctx := context.Background()
	march := month(2025, time.March)

	veteran := member("박지성", "01011112222", model.PlanRegular4, march, 1)
	rookie := member("김민수", "01033334444", model.PlanRegular2, march, 3)
	guestOnce := member("최게스트", "01055556666", model.PlanGuestOnce, march, 0)

	store := newFakeMembershipStore(
		veteran, rookie, guestOnce,
		member("박지성", "01011112222", model.PlanRegular2, month(2025, time.January), 2),
		member("박지성", "01011112222", model.PlanRegular2, month(2025, time.February), 2),
		member("박지성", "01011112222", model.PlanRegular2, month(2025, time.April), 0),
	)
	svc := NewMembershipService(store, &fakeGuestStore{}, kst, zap.NewNop())

	t.Run("regular plans with counters", func(t *testing.T) {
		board, err := svc.Board(ctx, time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC))
		require.NoError(t, err)
		require.Len(t, board, 2)

		// по имени
		assert.Equal(t, "김민수", board[0].Name)
		assert.Equal(t, 1, board[0].CumulativeCount)
		assert.Equal(t, "2회", board[0].PlanDisplay)
		assert.Equal(t, 0, board[0].RemainingCount)

		assert.Equal(t, "박지성", board[1].Name)
		assert.Equal(t, 3, board[1].CumulativeCount)
		assert.Equal(t, "4회", board[1].PlanDisplay)
		assert.Equal(t, 3, board[1].RemainingCount)
	})

	t.Run("empty month", func(t *testing.T) {
		board, err := svc.Board(ctx, month(2024, time.June))
		require.NoError(t, err)
		assert.NotNil(t, board)
		assert.Empty(t, board)
	})

	t.Run("history failure falls back to one", func(t *testing.T) {
		store.failHistory = true
		defer func() { store.failHistory = false }()

		board, err := svc.Board(ctx, march)
		require.NoError(t, err)
		for _, row := range board {
			assert.Equal(t, 1, row.CumulativeCount)
		}
	})
}

func TestMembershipMarkAttendance(t *testing.T) {
	ctx := context.Background()
	app := member("박지성", "01011112222", model.PlanRegular2, month(2025, time.March), 1)
	store := newFakeMembershipStore(app)
	svc := NewMembershipService(store, &fakeGuestStore{}, kst, zap.NewNop())

	now := kstTime(2025, 3, 8, 19, 0)
	updated, err := svc.MarkAttendance(ctx, app.ID, now)
	require.NoError(t, err)
	assert.Equal(t, 2, updated.UsedCount)
	assert.Equal(t, 0, updated.RemainingGames())
	require.NotNil(t, updated.LastGameDate)
	assert.True(t, now.Equal(*updated.LastGameDate))

	_, err = svc.MarkAttendance(ctx, uuid.New(), now)
	assert.ErrorIs(t, err, ErrMemberNotFound)
}

func TestMembershipAddAsGuest(t *testing.T) {
	ctx := context.Background()
	app := member("박지성", "01011112222", model.PlanRegular2, month(2025, time.March), 0)
	guests := &fakeGuestStore{}
	svc := NewMembershipService(newFakeMembershipStore(app), guests, kst, zap.NewNop())

	now := kstTime(2025, 3, 5, 10, 0)
	guest, err := svc.AddAsGuest(ctx, app.ID, now)
	require.NoError(t, err)

	assert.Equal(t, "박지성(정규)", guest.Name)
	assert.Equal(t, "175~180", guest.Height)
	assert.Equal(t, app.Phone, guest.Phone)
	require.Len(t, guests.apps, 1)
	assert.True(t, now.Equal(guests.apps[0].AppliedAt))

	_, err = svc.AddAsGuest(ctx, uuid.New(), now)
	assert.ErrorIs(t, err, ErrMemberNotFound)
}

func TestMembershipSetGroupColor(t *testing.T) {
	ctx := context.Background()
	a := member("a", "1", model.PlanRegular2, month(2025, time.March), 0)
	b := member("b", "2", model.PlanRegular2, month(2025, time.March), 0)
	store := newFakeMembershipStore(a, b)
	svc := NewMembershipService(store, &fakeGuestStore{}, kst, zap.NewNop())

	n, err := svc.SetGroupColor(ctx, []uuid.UUID{a.ID, b.ID}, "blue")
	require.NoError(t, err)
	assert.EqualValues(t, 2, n)
	require.NotNil(t, a.GroupColor)
	assert.Equal(t, "blue", *a.GroupColor)

	t.Run("empty color clears", func(t *testing.T) {
		_, err := svc.SetGroupColor(ctx, []uuid.UUID{a.ID}, "")
		require.NoError(t, err)
		assert.Nil(t, a.GroupColor)
	})

	t.Run("unknown color rejected", func(t *testing.T) {
		updates := store.colorUpdates
		_, err := svc.SetGroupColor(ctx, []uuid.UUID{a.ID}, "purple")
		assert.ErrorIs(t, err, ErrInvalidColor)
		assert.Equal(t, updates, store.colorUpdates)
	})
}

func TestMembershipCycleGroupColor(t *testing.T) {
	ctx := context.Background()
	a := member("a", "1", model.PlanRegular2, month(2025, time.March), 0)
	store := newFakeMembershipStore(a)
	svc := NewMembershipService(store, &fakeGuestStore{}, kst, zap.NewNop())

	next, err := svc.CycleGroupColor(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, "red", next)
	require.NotNil(t, a.GroupColor)
	assert.Equal(t, "red", *a.GroupColor)

	next, err = svc.CycleGroupColor(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, "yellow", next)

	t.Run("last color wraps to none", func(t *testing.T) {
		pink := "pink"
		a.GroupColor = &pink
		next, err := svc.CycleGroupColor(ctx, a.ID)
		require.NoError(t, err)
		assert.Empty(t, next)
		assert.Nil(t, a.GroupColor)
	})

	t.Run("unknown member", func(t *testing.T) {
		updates := store.colorUpdates
		_, err := svc.CycleGroupColor(ctx, uuid.New())
		assert.ErrorIs(t, err, ErrMemberNotFound)
		assert.Equal(t, updates, store.colorUpdates)
	})
}

func TestNextGroupColor(t *testing.T) {
	assert.Equal(t, "red", NextGroupColor(""))
	assert.Equal(t, "yellow", NextGroupColor("red"))
	assert.Equal(t, "", NextGroupColor("pink"))
	assert.Equal(t, "red", NextGroupColor("unknown"))
}

func TestMembershipApply(t *testing.T) {
	ctx := context.Background()
	now := kstTime(2025, 3, 31, 23, 30)

	form := signup.MembershipForm{
		Name:           "홍길동",
		Contact:        "01099998888",
		Age:            "35",
		Position:       "baseline",
		Height:         "185~190",
		JerseySize:     "xl",
		MembershipType: "dormant",
		AgreeRules:     true,
		DataConsent:    true,
	}

	t.Run("defaults to current club month", func(t *testing.T) {
		store := newFakeMembershipStore()
		svc := NewMembershipService(store, &fakeGuestStore{}, kst, zap.NewNop())

		app, err := svc.Apply(ctx, form, now)
		require.NoError(t, err)
		assert.Equal(t, model.PlanRegular4, app.Plan)
		assert.True(t, month(2025, time.March).Equal(app.TargetMonth))
		assert.Equal(t, "xl", app.UniformSize)
		assert.Len(t, store.apps, 1)
	})

	t.Run("explicit target month", func(t *testing.T) {
		svc := NewMembershipService(newFakeMembershipStore(), &fakeGuestStore{}, kst, zap.NewNop())

		f := form
		f.TargetMonth = "2025-05"
		app, err := svc.Apply(ctx, f, now)
		require.NoError(t, err)
		assert.True(t, month(2025, time.May).Equal(app.TargetMonth))
	})

	t.Run("consent required", func(t *testing.T) {
		svc := NewMembershipService(newFakeMembershipStore(), &fakeGuestStore{}, kst, zap.NewNop())

		f := form
		f.DataConsent = false
		_, err := svc.Apply(ctx, f, now)
		assert.ErrorIs(t, err, signup.ErrConsentRequired)
	})

	t.Run("bad target month", func(t *testing.T) {
		svc := NewMembershipService(newFakeMembershipStore(), &fakeGuestStore{}, kst, zap.NewNop())

		f := form
		f.TargetMonth = "next month"
		_, err := svc.Apply(ctx, f, now)
		assert.ErrorIs(t, err, ErrMissingFields)
	})
}

func TestMonthOptions(t *testing.T) {
	svc := NewMembershipService(newFakeMembershipStore(), &fakeGuestStore{}, kst, zap.NewNop())

	options := svc.MonthOptions(kstTime(2025, 1, 15, 12, 0), 5)
	require.Len(t, options, 5)
	assert.Equal(t, MonthOption{Label: "2024년 11월", Value: "2024-11-01"}, options[0])
	assert.Equal(t, MonthOption{Label: "2025년 1월", Value: "2025-01-01"}, options[2])
	assert.Equal(t, MonthOption{Label: "2025년 3월", Value: "2025-03-01"}, options[4])

	assert.Nil(t, svc.MonthOptions(time.Now(), 0))

	// 31 декабря 20:00 UTC уже 1 января в Сеуле
	assert.True(t, month(2025, time.January).Equal(svc.CurrentMonth(time.Date(2024, 12, 31, 20, 0, 0, 0, time.UTC))))
}
