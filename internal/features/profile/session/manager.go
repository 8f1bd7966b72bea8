package session

import (
	"context"
	"sync"

	"github.com/DruxAMB/based-list/internal/features/profile/service"
	"github.com/DruxAMB/based-list/internal/identity"
)

// Manager keys one edit session per identity. The session is created on the
// identity's first profile visit, which is also where lazy profile creation
// happens.
type Manager struct {
	mu       sync.Mutex
	sessions map[string]*Session

	profiles service.ProfileService
	uploader Uploader
}

func NewManager(profiles service.ProfileService, uploader Uploader) *Manager {
	return &Manager{
		sessions: make(map[string]*Session),
		profiles: profiles,
		uploader: uploader,
	}
}

// Session returns the identity's session, resolving or lazily creating the
// profile on first access. When the store degraded to defaults the session is
// not retained, so the next visit retries the fetch instead of pinning an
// unpersisted default as committed state.
func (m *Manager) Session(ctx context.Context, ident identity.CurrentIdentity) (*Session, bool, error) {
	m.mu.Lock()
	if s, ok := m.sessions[ident.UserID]; ok {
		m.mu.Unlock()
		return s, false, nil
	}
	m.mu.Unlock()

	profile, degraded, err := m.profiles.GetOrCreate(ctx, ident)
	if err != nil {
		return nil, false, err
	}

	s := New(ident, *profile, m.profiles, m.uploader)
	if degraded {
		return s, true, nil
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if existing, ok := m.sessions[ident.UserID]; ok {
		return existing, false, nil
	}
	m.sessions[ident.UserID] = s
	return s, false, nil
}
