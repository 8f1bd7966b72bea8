// Package session implements the profile edit lifecycle: a VIEWING/EDITING/
// SAVING state machine owning a copy-on-write draft of the committed profile.
package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/DruxAMB/based-list/internal/common/logger"
	"github.com/DruxAMB/based-list/internal/features/profile/models"
	"github.com/DruxAMB/based-list/internal/features/profile/service"
	"github.com/DruxAMB/based-list/internal/identity"
)

// State of the edit lifecycle.
type State string

const (
	StateViewing State = "viewing"
	StateEditing State = "editing"
	StateSaving  State = "saving"
)

var (
	// ErrNotEditing is returned for draft operations outside EDITING.
	ErrNotEditing = errors.New("no edit session in progress")
	// ErrAlreadyEditing is returned when BeginEdit is called twice.
	ErrAlreadyEditing = errors.New("edit session already in progress")
	// ErrUploadInFlight is returned when an image upload is already running.
	ErrUploadInFlight = errors.New("image upload already in progress")
)

// Uploader sends image bytes to the black-box upload endpoint.
type Uploader interface {
	Upload(ctx context.Context, filename string, file io.Reader) (string, error)
}

// Session holds one identity's committed profile and, while editing, its
// draft. The committed value is single-writer: only a successful commit
// replaces it. The draft is an independent deep copy, so discarding it can
// never lose committed state.
type Session struct {
	mu        sync.Mutex
	ident     identity.CurrentIdentity
	state     State
	committed models.Profile
	draft     *models.Profile
	uploading bool

	profiles service.ProfileService
	uploader Uploader
}

// Snapshot is a point-in-time view of the session for rendering.
type Snapshot struct {
	State     State          `json:"state"`
	Profile   models.Profile `json:"profile"`
	Uploading bool           `json:"uploading"`
}

func New(ident identity.CurrentIdentity, committed models.Profile, profiles service.ProfileService, uploader Uploader) *Session {
	return &Session{
		ident:     ident,
		state:     StateViewing,
		committed: committed,
		profiles:  profiles,
		uploader:  uploader,
	}
}

// Snapshot returns the current state and the profile value it presents:
// the draft while editing or saving, the committed profile otherwise.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	profile := s.committed
	if s.draft != nil {
		profile = *s.draft
	}
	return Snapshot{State: s.state, Profile: profile.Clone(), Uploading: s.uploading}
}

// Committed returns the last committed profile value.
func (s *Session) Committed() models.Profile {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.committed.Clone()
}

// BeginEdit moves VIEWING → EDITING, making a deep copy of the committed
// profile the draft.
func (s *Session) BeginEdit() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateViewing {
		return ErrAlreadyEditing
	}

	draft := s.committed.Clone()
	s.draft = &draft
	s.state = StateEditing
	return nil
}

// Discard drops the draft and returns to VIEWING. It is immediate and
// irreversible for unsaved edits; the committed profile is untouched.
func (s *Session) Discard() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateEditing {
		return ErrNotEditing
	}

	s.draft = nil
	s.state = StateViewing
	return nil
}

// Commit sends the full draft through the store client. On success the draft
// becomes the committed profile and the session returns to VIEWING; on
// failure the session returns to EDITING with the draft preserved so no typed
// input is lost.
func (s *Session) Commit(ctx context.Context) (models.Profile, error) {
	s.mu.Lock()
	if s.state != StateEditing {
		s.mu.Unlock()
		return models.Profile{}, ErrNotEditing
	}
	s.state = StateSaving
	outbound := s.draft.Clone()
	s.mu.Unlock()

	stored, err := s.profiles.Replace(ctx, s.ident.UserID, outbound)

	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		s.state = StateEditing
		logger.Warn().Err(err).Str("user_id", s.ident.UserID).Msg("Profile commit failed, draft preserved")
		return models.Profile{}, fmt.Errorf("commit profile: %w", err)
	}

	s.committed = stored.Clone()
	s.draft = nil
	s.state = StateViewing
	return s.committed.Clone(), nil
}

// UploadImage sends the file to the upload endpoint and, on success, updates
// the draft's image in place. The upload runs outside the session lock and is
// independent of commit: if the session left EDITING while the upload was in
// flight, the result is dropped and whatever the draft held at commit time is
// what got persisted.
func (s *Session) UploadImage(ctx context.Context, filename string, file io.Reader) (string, error) {
	s.mu.Lock()
	if s.state != StateEditing {
		s.mu.Unlock()
		return "", ErrNotEditing
	}
	if s.uploading {
		s.mu.Unlock()
		return "", ErrUploadInFlight
	}
	s.uploading = true
	s.mu.Unlock()

	url, err := s.uploader.Upload(ctx, filename, file)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.uploading = false

	if err != nil {
		// Draft stays exactly as it was; EDITING is unaffected.
		logger.Warn().Err(err).Str("user_id", s.ident.UserID).Msg("Image upload failed")
		return "", fmt.Errorf("upload image: %w", err)
	}

	if s.state == StateEditing && s.draft != nil {
		s.draft.ProfileImage = url
	}
	return url, nil
}

// Draft mutations. Each applies to the draft only and requires EDITING;
// nothing below touches the network or the committed profile.

func (s *Session) SetName(name string) error {
	return s.mutate(func(d *models.Profile) error {
		d.Name = name
		return nil
	})
}

func (s *Session) SetBio(bio string) error {
	return s.mutate(func(d *models.Profile) error {
		d.Bio = bio
		return nil
	})
}

func (s *Session) SetSocial(platform, value string) error {
	return s.mutate(func(d *models.Profile) error {
		return d.SetSocial(platform, value)
	})
}

func (s *Session) SetLinkName(index int, name string) error {
	return s.mutate(func(d *models.Profile) error {
		return d.SetLinkName(index, name)
	})
}

func (s *Session) SetLinkURL(index int, url string) error {
	return s.mutate(func(d *models.Profile) error {
		return d.SetLinkURL(index, url)
	})
}

func (s *Session) AddLink(link models.Link) error {
	return s.mutate(func(d *models.Profile) error {
		d.AddLink(link)
		return nil
	})
}

func (s *Session) RemoveLink(index int) error {
	return s.mutate(func(d *models.Profile) error {
		return d.RemoveLink(index)
	})
}

func (s *Session) ToggleRole(role models.Role) error {
	return s.mutate(func(d *models.Profile) error {
		if !role.IsValid() {
			return fmt.Errorf("unknown role: %s", role)
		}
		d.ToggleRole(role)
		return nil
	})
}

func (s *Session) mutate(fn func(*models.Profile) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateEditing || s.draft == nil {
		return ErrNotEditing
	}
	return fn(s.draft)
}
