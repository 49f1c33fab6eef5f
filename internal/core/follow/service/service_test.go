package followapp

import (
	"context"
	"sync"
	"testing"

	"tailorspace/internal/core/access"
	"tailorspace/internal/core/actor"
	"tailorspace/internal/core/apperr"
	followEntity "tailorspace/internal/core/follow"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeFollowRepo struct {
	mu     sync.Mutex
	nextID uint
	rows   []*followEntity.Follow
}

func (f *fakeFollowRepo) Create(_ context.Context, fl *followEntity.Follow) (*followEntity.Follow, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	fl.ID = f.nextID
	f.rows = append(f.rows, fl)
	return fl, nil
}

func (f *fakeFollowRepo) Delete(_ context.Context, userID, actorID uint) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	kept := f.rows[:0]
	for _, r := range f.rows {
		if r.IDUser != userID || r.IDActor != actorID {
			kept = append(kept, r)
		}
	}
	f.rows = kept
	return nil
}

func (f *fakeFollowRepo) FindByUserID(_ context.Context, userID uint) ([]*followEntity.Follow, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*followEntity.Follow
	for _, r := range f.rows {
		if r.IDUser == userID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeFollowRepo) Exists(_ context.Context, userID, actorID uint) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, r := range f.rows {
		if r.IDUser == userID && r.IDActor == actorID {
			return true, nil
		}
	}
	return false, nil
}

type fakeActorRepo struct {
	byID     map[uint]*actor.Actor
	byUserID map[uint]*actor.Actor
}

func newFakeActorRepo(actors ...*actor.Actor) *fakeActorRepo {
	r := &fakeActorRepo{byID: map[uint]*actor.Actor{}, byUserID: map[uint]*actor.Actor{}}
	for _, a := range actors {
		r.byID[a.ID] = a
		r.byUserID[a.IDUser] = a
	}
	return r
}

func (f *fakeActorRepo) Create(_ context.Context, a *actor.Actor) (*actor.Actor, error) {
	f.byID[a.ID] = a
	f.byUserID[a.IDUser] = a
	return a, nil
}

func (f *fakeActorRepo) FindByID(_ context.Context, id uint) (*actor.Actor, error) {
	return f.byID[id], nil
}

func (f *fakeActorRepo) FindByUserID(_ context.Context, userID uint) (*actor.Actor, error) {
	return f.byUserID[userID], nil
}

func (f *fakeActorRepo) FindAll(_ context.Context) ([]*actor.Actor, error) {
	var out []*actor.Actor
	for _, a := range f.byID {
		out = append(out, a)
	}
	return out, nil
}

func (f *fakeActorRepo) Update(_ context.Context, id uint, _ map[string]interface{}) (*actor.Actor, error) {
	return f.byID[id], nil
}

func (f *fakeActorRepo) Delete(_ context.Context, id uint) error {
	a := f.byID[id]
	if a != nil {
		delete(f.byUserID, a.IDUser)
	}
	delete(f.byID, id)
	return nil
}

type fakeFeedCache struct {
	sets   map[uint][]uint
	dirty  []uint
	misses int
}

func newFakeFeedCache() *fakeFeedCache {
	return &fakeFeedCache{sets: map[uint][]uint{}}
}

func (f *fakeFeedCache) GetActorSet(_ context.Context, userID uint) ([]uint, bool, error) {
	ids, ok := f.sets[userID]
	if !ok {
		f.misses++
	}
	return ids, ok, nil
}

func (f *fakeFeedCache) SetActorSet(_ context.Context, userID uint, actorIDs []uint) error {
	f.sets[userID] = actorIDs
	return nil
}

func (f *fakeFeedCache) MarkDirty(_ context.Context, userID uint) error {
	delete(f.sets, userID)
	f.dirty = append(f.dirty, userID)
	return nil
}

func (f *fakeFeedCache) PopDirty(_ context.Context, limit int) ([]uint, error) {
	if limit > len(f.dirty) {
		limit = len(f.dirty)
	}
	out := f.dirty[:limit]
	f.dirty = f.dirty[limit:]
	return out, nil
}

func newService(follows *fakeFollowRepo, actors *fakeActorRepo, cache *fakeFeedCache) *FollowService {
	if cache == nil {
		return NewFollowService(follows, actors, nil, zap.NewNop())
	}
	return NewFollowService(follows, actors, cache, zap.NewNop())
}

func TestFollowedActorIDs(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		userID  uint
		follows []*followEntity.Follow
		actors  []*actor.Actor
		want    map[uint]struct{}
	}{
		{
			name:   "no follows and no actor yields empty set",
			userID: 1,
			want:   map[uint]struct{}{},
		},
		{
			name:   "follows only",
			userID: 1,
			follows: []*followEntity.Follow{
				{IDUser: 1, IDActor: 10},
				{IDUser: 1, IDActor: 11},
				{IDUser: 2, IDActor: 12},
			},
			want: map[uint]struct{}{10: {}, 11: {}},
		},
		{
			name:   "own actor unioned in",
			userID: 1,
			follows: []*followEntity.Follow{
				{IDUser: 1, IDActor: 10},
			},
			actors: []*actor.Actor{{ID: 42, IDUser: 1, Role: "TAILOR"}},
			want:   map[uint]struct{}{10: {}, 42: {}},
		},
		{
			name:   "own actor with no follows",
			userID: 1,
			actors: []*actor.Actor{{ID: 42, IDUser: 1, Role: "VENDOR"}},
			want:   map[uint]struct{}{42: {}},
		},
		{
			name:   "own actor already followed is not duplicated",
			userID: 1,
			follows: []*followEntity.Follow{
				{IDUser: 1, IDActor: 42},
			},
			actors: []*actor.Actor{{ID: 42, IDUser: 1, Role: "TAILOR"}},
			want:   map[uint]struct{}{42: {}},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			followRepo := &fakeFollowRepo{rows: tc.follows}
			svc := newService(followRepo, newFakeActorRepo(tc.actors...), nil)

			got, err := svc.FollowedActorIDs(ctx, tc.userID)
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestFollowedActorIDsUsesCache(t *testing.T) {
	ctx := context.Background()
	cache := newFakeFeedCache()
	followRepo := &fakeFollowRepo{rows: []*followEntity.Follow{{IDUser: 1, IDActor: 10}}}
	svc := newService(followRepo, newFakeActorRepo(), cache)

	// First call misses and fills the cache.
	got, err := svc.FollowedActorIDs(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, map[uint]struct{}{10: {}}, got)
	require.Equal(t, 1, cache.misses)
	require.Equal(t, []uint{10}, cache.sets[1])

	// Second call is served from the cache even if the store changed.
	followRepo.rows = nil
	got, err = svc.FollowedActorIDs(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, map[uint]struct{}{10: {}}, got)
	require.Equal(t, 1, cache.misses)
}

func TestFollow(t *testing.T) {
	ctx := context.Background()
	tailor := &actor.Actor{ID: 5, IDUser: 9, Role: "TAILOR"}

	t.Run("success marks cache dirty", func(t *testing.T) {
		cache := newFakeFeedCache()
		svc := newService(&fakeFollowRepo{}, newFakeActorRepo(tailor), cache)

		dto, err := svc.Follow(ctx, access.Principal{UserID: 1}, 5)
		require.NoError(t, err)
		require.Equal(t, uint(1), dto.IDUser)
		require.Equal(t, uint(5), dto.IDActor)
		require.Equal(t, []uint{1}, cache.dirty)
	})

	t.Run("unknown actor", func(t *testing.T) {
		svc := newService(&fakeFollowRepo{}, newFakeActorRepo(), nil)

		_, err := svc.Follow(ctx, access.Principal{UserID: 1}, 99)
		require.Error(t, err)
		require.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
	})

	t.Run("duplicate", func(t *testing.T) {
		repo := &fakeFollowRepo{rows: []*followEntity.Follow{{IDUser: 1, IDActor: 5}}}
		svc := newService(repo, newFakeActorRepo(tailor), nil)

		_, err := svc.Follow(ctx, access.Principal{UserID: 1}, 5)
		require.Error(t, err)
		require.Equal(t, apperr.KindValidation, apperr.KindOf(err))
		require.Len(t, repo.rows, 1)
	})

	t.Run("own actor is implicit", func(t *testing.T) {
		repo := &fakeFollowRepo{}
		svc := newService(repo, newFakeActorRepo(tailor), nil)

		_, err := svc.Follow(ctx, access.Principal{UserID: 9, ActorID: 5, Role: "TAILOR"}, 5)
		require.Error(t, err)
		require.Equal(t, apperr.KindValidation, apperr.KindOf(err))
		require.Empty(t, repo.rows)
	})
}

func TestUnfollow(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		repo := &fakeFollowRepo{rows: []*followEntity.Follow{{ID: 1, IDUser: 1, IDActor: 5}}}
		cache := newFakeFeedCache()
		svc := newService(repo, newFakeActorRepo(), cache)

		require.NoError(t, svc.Unfollow(ctx, access.Principal{UserID: 1}, 5))
		require.Empty(t, repo.rows)
		require.Equal(t, []uint{1}, cache.dirty)
	})

	t.Run("not following", func(t *testing.T) {
		svc := newService(&fakeFollowRepo{}, newFakeActorRepo(), nil)

		err := svc.Unfollow(ctx, access.Principal{UserID: 1}, 5)
		require.Error(t, err)
		require.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
	})
}

func TestRebuildCache(t *testing.T) {
	ctx := context.Background()
	cache := newFakeFeedCache()
	repo := &fakeFollowRepo{rows: []*followEntity.Follow{{IDUser: 1, IDActor: 10}}}
	svc := newService(repo, newFakeActorRepo(&actor.Actor{ID: 42, IDUser: 1, Role: "TAILOR"}), cache)

	require.NoError(t, svc.RebuildCache(ctx, 1))
	require.ElementsMatch(t, []uint{10, 42}, cache.sets[1])
}
