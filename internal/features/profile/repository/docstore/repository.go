package docstore

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"github.com/DruxAMB/based-list/internal/platform/docstore"

	"github.com/DruxAMB/based-list/internal/features/profile/models"
	"github.com/DruxAMB/based-list/internal/features/profile/repository"
)

type profileRepository struct {
	client *docstore.Client
}

func NewProfileRepository(client *docstore.Client) repository.ProfileRepository {
	return &profileRepository{client: client}
}

func (r *profileRepository) Fetch(ctx context.Context, userID string) (*models.Profile, error) {
	var profile models.Profile
	err := r.client.GetJSON(ctx, "/api/profile/"+url.PathEscape(userID), nil, &profile)
	if err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("fetch profile %s: %w", userID, err)
	}

	profile.Normalize()
	return &profile, nil
}

func (r *profileRepository) Replace(ctx context.Context, userID string, profile models.Profile) (*models.Profile, error) {
	var stored models.Profile
	err := r.client.PutJSON(ctx, "/api/profile/"+url.PathEscape(userID), profile, &stored)
	if err != nil {
		return nil, fmt.Errorf("replace profile %s: %w", userID, err)
	}

	stored.Normalize()
	return &stored, nil
}
