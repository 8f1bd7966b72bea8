package service

import (
	"context"
	"errors"

	"github.com/DruxAMB/based-list/internal/common/logger"
	"github.com/DruxAMB/based-list/internal/features/profile/models"
	"github.com/DruxAMB/based-list/internal/features/profile/repository"
	"github.com/DruxAMB/based-list/internal/identity"
)

// ErrProfileNotFound is surfaced on the public read path when an identity has
// no stored profile.
var ErrProfileNotFound = errors.New("profile not found")

// Cache is the read cache the service consults before the document store.
type Cache interface {
	Get(ctx context.Context, userID string) (*models.Profile, error)
	Set(ctx context.Context, userID string, p *models.Profile) error
	Invalidate(ctx context.Context, userID string) error
}

type ProfileService interface {
	// Get reads a profile for public viewing.
	Get(ctx context.Context, userID string) (*models.Profile, error)
	// GetOrCreate resolves the identity's profile, lazily creating it with
	// seeded defaults on first visit. The degraded flag is set when the store
	// misbehaved and the returned value is an unpersisted default.
	GetOrCreate(ctx context.Context, ident identity.CurrentIdentity) (profile *models.Profile, degraded bool, err error)
	// Replace commits a full profile document for the identity.
	Replace(ctx context.Context, userID string, profile models.Profile) (*models.Profile, error)
}

type profileService struct {
	repo  repository.ProfileRepository
	cache Cache
}

func NewProfileService(repo repository.ProfileRepository, cache Cache) ProfileService {
	return &profileService{repo: repo, cache: cache}
}

func (s *profileService) Get(ctx context.Context, userID string) (*models.Profile, error) {
	if s.cache != nil {
		if p, err := s.cache.Get(ctx, userID); err == nil {
			return p, nil
		}
	}

	p, err := s.repo.Fetch(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}

	s.cacheSet(ctx, userID, p)
	return p, nil
}

func (s *profileService) GetOrCreate(ctx context.Context, ident identity.CurrentIdentity) (*models.Profile, bool, error) {
	p, err := s.Get(ctx, ident.UserID)
	if err == nil {
		return p, false, nil
	}

	seed := models.DefaultProfile(ident.FirstName, ident.ImageURL)

	if !errors.Is(err, ErrProfileNotFound) {
		// Transient store failure: the view degrades to defaults instead of
		// blocking. Nothing is persisted; a later visit retries.
		logger.Warn().Err(err).Str("user_id", ident.UserID).Msg("Profile fetch failed, serving defaults")
		return &seed, true, nil
	}

	created, err := s.repo.Replace(ctx, ident.UserID, seed)
	if err != nil {
		logger.Warn().Err(err).Str("user_id", ident.UserID).Msg("Profile creation failed, serving defaults")
		return &seed, true, nil
	}

	logger.Info().Str("user_id", ident.UserID).Msg("Profile created")
	s.cacheSet(ctx, ident.UserID, created)
	return created, false, nil
}

func (s *profileService) Replace(ctx context.Context, userID string, profile models.Profile) (*models.Profile, error) {
	// Invalidate before the write so a failed refresh below cannot leave a
	// stale entry behind.
	if s.cache != nil {
		if err := s.cache.Invalidate(ctx, userID); err != nil {
			logger.Debug().Err(err).Str("user_id", userID).Msg("Profile cache invalidation failed")
		}
	}

	stored, err := s.repo.Replace(ctx, userID, profile)
	if err != nil {
		return nil, err
	}

	s.cacheSet(ctx, userID, stored)
	return stored, nil
}

func (s *profileService) cacheSet(ctx context.Context, userID string, p *models.Profile) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Set(ctx, userID, p); err != nil {
		logger.Debug().Err(err).Str("user_id", userID).Msg("Profile cache write failed")
	}
}
