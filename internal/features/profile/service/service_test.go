package service

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DruxAMB/based-list/internal/features/profile/models"
	repodocstore "github.com/DruxAMB/based-list/internal/features/profile/repository/docstore"
	"github.com/DruxAMB/based-list/internal/identity"
	"github.com/DruxAMB/based-list/internal/platform/docstore"
)

// fakeStore is an in-memory stand-in for the remote document store.
type fakeStore struct {
	mu       sync.Mutex
	profiles map[string]models.Profile
	puts     int
	failAll  bool
}

func (f *fakeStore) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/profile/", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()

		if f.failAll {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		userID := r.URL.Path[len("/api/profile/"):]
		switch r.Method {
		case http.MethodGet:
			p, ok := f.profiles[userID]
			if !ok {
				w.WriteHeader(http.StatusNotFound)
				return
			}
			json.NewEncoder(w).Encode(p)
		case http.MethodPut:
			f.puts++
			var p models.Profile
			if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
				w.WriteHeader(http.StatusBadRequest)
				return
			}
			f.profiles[userID] = p
			json.NewEncoder(w).Encode(p)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	})
	return mux
}

// recordingCache records cache operations in order.
type recordingCache struct {
	mu      sync.Mutex
	entries map[string]*models.Profile
	ops     []string
	setErr  error
}

func newRecordingCache() *recordingCache {
	return &recordingCache{entries: make(map[string]*models.Profile)}
}

func (c *recordingCache) Get(ctx context.Context, userID string) (*models.Profile, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ops = append(c.ops, "get")
	if p, ok := c.entries[userID]; ok {
		return p, nil
	}
	return nil, errors.New("cache miss")
}

func (c *recordingCache) Set(ctx context.Context, userID string, p *models.Profile) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ops = append(c.ops, "set")
	if c.setErr != nil {
		return c.setErr
	}
	c.entries[userID] = p
	return nil
}

func (c *recordingCache) Invalidate(ctx context.Context, userID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ops = append(c.ops, "invalidate")
	delete(c.entries, userID)
	return nil
}

func newTestService(t *testing.T) (ProfileService, *fakeStore) {
	t.Helper()
	store := &fakeStore{profiles: make(map[string]models.Profile)}
	srv := httptest.NewServer(store.handler())
	t.Cleanup(srv.Close)

	client := docstore.NewClient(srv.URL, 5*time.Second)
	return NewProfileService(repodocstore.NewProfileRepository(client), nil), store
}

func TestGetOrCreateSeedsOnFirstVisit(t *testing.T) {
	svc, store := newTestService(t)
	ident := identity.CurrentIdentity{UserID: "u1", FirstName: "Alice", ImageURL: "https://img.example/a.png"}

	p, degraded, err := svc.GetOrCreate(context.Background(), ident)
	require.NoError(t, err)
	assert.False(t, degraded)

	// 404 drove a full-document PUT with seeded defaults.
	assert.Equal(t, 1, store.puts)
	assert.Equal(t, "Alice", p.Name)
	assert.Equal(t, "https://img.example/a.png", p.ProfileImage)
	require.Len(t, p.Links, models.DefaultLinkCount)

	// A subsequent read returns the stored document without another create.
	again, degraded, err := svc.GetOrCreate(context.Background(), ident)
	require.NoError(t, err)
	assert.False(t, degraded)
	assert.Equal(t, 1, store.puts)
	assert.True(t, p.Equal(*again))
}

func TestGetOrCreateDegradesOnStoreFailure(t *testing.T) {
	svc, store := newTestService(t)
	store.failAll = true
	ident := identity.CurrentIdentity{UserID: "u1", FirstName: "Alice"}

	p, degraded, err := svc.GetOrCreate(context.Background(), ident)
	require.NoError(t, err)

	// The view degrades to unpersisted defaults instead of blocking.
	assert.True(t, degraded)
	assert.Equal(t, "Alice", p.Name)
	assert.Equal(t, 0, store.puts)
}

func TestGetNotFound(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Get(context.Background(), "nobody")
	assert.ErrorIs(t, err, ErrProfileNotFound)
}

func TestReplaceStoresFullDocument(t *testing.T) {
	svc, store := newTestService(t)
	ident := identity.CurrentIdentity{UserID: "u1", FirstName: "Alice"}

	_, _, err := svc.GetOrCreate(context.Background(), ident)
	require.NoError(t, err)

	draft := models.DefaultProfile("Alice", "")
	draft.Bio = "builder"
	draft.Socials.Twitter = "@alice"
	draft.AddLink(models.Link{Name: "Blog", URL: "https://blog.example"})

	stored, err := svc.Replace(context.Background(), "u1", draft)
	require.NoError(t, err)
	assert.True(t, draft.Equal(*stored))

	got, err := svc.Get(context.Background(), "u1")
	require.NoError(t, err)
	assert.True(t, draft.Equal(*got))
	assert.Equal(t, 2, store.puts)
}

func TestReplaceInvalidatesCacheBeforeWrite(t *testing.T) {
	store := &fakeStore{profiles: make(map[string]models.Profile)}
	srv := httptest.NewServer(store.handler())
	t.Cleanup(srv.Close)

	cache := newRecordingCache()
	svc := NewProfileService(repodocstore.NewProfileRepository(docstore.NewClient(srv.URL, 5*time.Second)), cache)

	draft := models.DefaultProfile("Alice", "")
	_, err := svc.Replace(context.Background(), "u1", draft)
	require.NoError(t, err)
	assert.Equal(t, []string{"invalidate", "set"}, cache.ops)
}

func TestReplaceWithFailedRefreshLeavesNoStaleEntry(t *testing.T) {
	store := &fakeStore{profiles: make(map[string]models.Profile)}
	srv := httptest.NewServer(store.handler())
	t.Cleanup(srv.Close)

	cache := newRecordingCache()
	svc := NewProfileService(repodocstore.NewProfileRepository(docstore.NewClient(srv.URL, 5*time.Second)), cache)

	stale := models.DefaultProfile("Old Name", "")
	require.NoError(t, cache.Set(context.Background(), "u1", &stale))
	cache.setErr = errors.New("redis down")

	draft := models.DefaultProfile("Alice", "")
	_, err := svc.Replace(context.Background(), "u1", draft)
	require.NoError(t, err)

	// The stale entry was removed before the write, so the failed refresh
	// leaves a miss, not the old document.
	_, err = cache.Get(context.Background(), "u1")
	assert.Error(t, err)
}
