package service

import (
	"context"
	"testing"
	"time"

	"github.com/Freeeeeet/thunders/internal/model"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newIcnStore(members ...*model.IcnMember) *fakeIcnStore {
	store := &fakeIcnStore{members: make(map[uuid.UUID]*model.IcnMember)}
	for _, m := range members {
		store.members[m.ID] = m
	}
	return store
}

func TestIcnActiveMembers(t *testing.T) {
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	store := newIcnStore(
		&model.IcnMember{ID: uuid.New(), Name: "second", IsActive: true, CreatedAt: base.Add(time.Hour)},
		&model.IcnMember{ID: uuid.New(), Name: "first", IsActive: true, CreatedAt: base},
		&model.IcnMember{ID: uuid.New(), Name: "inactive", IsActive: false, CreatedAt: base},
	)
	svc := NewIcnService(store, &fakeGuestStore{}, kst, zap.NewNop())

	members, err := svc.ActiveMembers(context.Background())
	require.NoError(t, err)
	require.Len(t, members, 2)
	assert.Equal(t, "first", members[0].Name)
	assert.Equal(t, "second", members[1].Name)
}

func TestIcnIsFirstHalf(t *testing.T) {
	svc := NewIcnService(newIcnStore(), &fakeGuestStore{}, kst, zap.NewNop())

	assert.True(t, svc.IsFirstHalf(kstTime(2025, 1, 1, 0, 0)))
	assert.True(t, svc.IsFirstHalf(kstTime(2025, 6, 30, 23, 59)))
	assert.False(t, svc.IsFirstHalf(kstTime(2025, 7, 1, 0, 0)))
	// 30 июня 16:00 UTC = 1 июля 01:00 KST
	assert.False(t, svc.IsFirstHalf(time.Date(2025, 6, 30, 16, 0, 0, 0, time.UTC)))
}

func TestIcnAddAsGuest(t *testing.T) {
	ctx := context.Background()

	t.Run("counts by half year", func(t *testing.T) {
		m := &model.IcnMember{ID: uuid.New(), Name: "이강인", HeightRange: "170~175", IsActive: true}
		guests := &fakeGuestStore{}
		svc := NewIcnService(newIcnStore(m), guests, kst, zap.NewNop())

		guest, err := svc.AddAsGuest(ctx, m.ID, kstTime(2025, 3, 1, 10, 0))
		require.NoError(t, err)
		assert.Equal(t, "이강인(정규)", guest.Name)
		assert.Equal(t, 1, m.FirstHalfCount)

		_, err = svc.AddAsGuest(ctx, m.ID, kstTime(2025, 9, 1, 10, 0))
		require.NoError(t, err)
		assert.Equal(t, 1, m.SecondHalfCount)
		assert.Len(t, guests.apps, 2)
	})

	t.Run("counter failure keeps guest", func(t *testing.T) {
		m := &model.IcnMember{ID: uuid.New(), Name: "손흥민", IsActive: true}
		store := newIcnStore(m)
		store.failCount = true
		guests := &fakeGuestStore{}
		svc := NewIcnService(store, guests, kst, zap.NewNop())

		_, err := svc.AddAsGuest(ctx, m.ID, kstTime(2025, 3, 1, 10, 0))
		require.NoError(t, err)
		assert.Len(t, guests.apps, 1)
	})

	t.Run("unknown member", func(t *testing.T) {
		svc := NewIcnService(newIcnStore(), &fakeGuestStore{}, kst, zap.NewNop())
		_, err := svc.AddAsGuest(ctx, uuid.New(), time.Now())
		assert.ErrorIs(t, err, ErrMemberNotFound)
	})
}
