package repository

import (
	"context"
	"errors"

	"github.com/DruxAMB/based-list/internal/features/profile/models"
)

// ErrNotFound means the identity has no stored profile yet. Callers treat it
// as the lazy-creation trigger, not a failure.
var ErrNotFound = errors.New("profile not found")

// ProfileRepository reads and writes profile documents keyed by identity.
// There is no partial update: Replace always carries the full document and is
// also how first-time creation happens.
type ProfileRepository interface {
	Fetch(ctx context.Context, userID string) (*models.Profile, error)
	Replace(ctx context.Context, userID string, profile models.Profile) (*models.Profile, error)
}
