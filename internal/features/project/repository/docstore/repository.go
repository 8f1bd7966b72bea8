package docstore

import (
	"context"
	"fmt"
	"net/url"

	"github.com/DruxAMB/based-list/internal/features/project/models"
	"github.com/DruxAMB/based-list/internal/features/project/repository"
	"github.com/DruxAMB/based-list/internal/platform/docstore"
)

type projectRepository struct {
	client *docstore.Client
}

func NewProjectRepository(client *docstore.Client) repository.ProjectRepository {
	return &projectRepository{client: client}
}

func (r *projectRepository) ListByUser(ctx context.Context, userID string) ([]models.Project, error) {
	query := url.Values{"userId": {userID}}

	var projects []models.Project
	if err := r.client.GetJSON(ctx, "/api/projects", query, &projects); err != nil {
		return nil, fmt.Errorf("list projects for %s: %w", userID, err)
	}
	return projects, nil
}
