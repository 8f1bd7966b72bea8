package service

import (
	"context"

	"github.com/DruxAMB/based-list/internal/features/project/models"
	"github.com/DruxAMB/based-list/internal/features/project/repository"
)

// Feed is a user's project list ready for rendering. EmptyState marks the
// call-to-action rendering for users who have not submitted anything yet.
type Feed struct {
	Projects   []models.Project `json:"projects"`
	EmptyState bool             `json:"empty_state"`
}

type ProjectService interface {
	ListByUser(ctx context.Context, userID string) (*Feed, error)
}

type projectService struct {
	repo repository.ProjectRepository
}

func NewProjectService(repo repository.ProjectRepository) ProjectService {
	return &projectService{repo: repo}
}

func (s *projectService) ListByUser(ctx context.Context, userID string) (*Feed, error) {
	projects, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	if projects == nil {
		projects = []models.Project{}
	}
	return &Feed{Projects: projects, EmptyState: len(projects) == 0}, nil
}
