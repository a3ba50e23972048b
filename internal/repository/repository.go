package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/emberwatch/emberwatch/internal/models"
)

var (
	ErrOrganizationNotFound = errors.New("organization not found")
	ErrProjectNotFound      = errors.New("project not found")
	ErrEventExists          = errors.New("event already exists")
)

// Repository is the data access layer for organizations, projects and events.
type Repository interface {
	GetOrganizationBySlug(ctx context.Context, slug string) (*models.Organization, error)

	// GetProjectBySlug resolves a project by its composite key
	// (organization slug, project slug).
	GetProjectBySlug(ctx context.Context, orgSlug, projectSlug string) (*models.Project, error)
	ListProjects(ctx context.Context, orgSlug string) ([]*models.Project, error)

	InsertEvent(ctx context.Context, event *models.Event) error

	// MarkFirstEvent sets the project's first_event timestamp if and only if
	// it is currently unset. It reports whether the timestamp was written.
	MarkFirstEvent(ctx context.Context, projectID uuid.UUID, ts time.Time) (bool, error)

	Close()
}
