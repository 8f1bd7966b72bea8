package repository

import (
	"context"

	"github.com/DruxAMB/based-list/internal/features/project/models"
)

// ProjectRepository reads project summaries from the remote store. Listing is
// the only operation: projects are owned by the submission subsystem.
type ProjectRepository interface {
	ListByUser(ctx context.Context, userID string) ([]models.Project, error)
}
