package repository

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/emberwatch/emberwatch/internal/models"
)

// InMemoryRepository is a map-backed Repository used by tests and
// memory:// development runs.
type InMemoryRepository struct {
	orgs     map[string]*models.Organization // keyed by slug
	projects map[string]*models.Project      // keyed by orgSlug/projectSlug
	events   map[string]*models.Event        // keyed by event ID
	mu       sync.RWMutex
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		orgs:     make(map[string]*models.Organization),
		projects: make(map[string]*models.Project),
		events:   make(map[string]*models.Event),
	}
}

// AddOrganization registers an organization. Test seeding helper.
func (r *InMemoryRepository) AddOrganization(org *models.Organization) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.orgs[org.Slug] = org
}

// AddProject registers a project under the given organization slug.
// Test seeding helper.
func (r *InMemoryRepository) AddProject(orgSlug string, project *models.Project) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.projects[orgSlug+"/"+project.Slug] = project
}

func (r *InMemoryRepository) GetOrganizationBySlug(ctx context.Context, slug string) (*models.Organization, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	org, exists := r.orgs[slug]
	if !exists {
		return nil, ErrOrganizationNotFound
	}
	return org, nil
}

func (r *InMemoryRepository) GetProjectBySlug(ctx context.Context, orgSlug, projectSlug string) (*models.Project, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	project, exists := r.projects[orgSlug+"/"+projectSlug]
	if !exists {
		return nil, ErrProjectNotFound
	}
	return project, nil
}

func (r *InMemoryRepository) ListProjects(ctx context.Context, orgSlug string) ([]*models.Project, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	org, exists := r.orgs[orgSlug]
	if !exists {
		return nil, ErrOrganizationNotFound
	}

	var projects []*models.Project
	for _, p := range r.projects {
		if p.OrganizationID == org.ID {
			projects = append(projects, p)
		}
	}
	return projects, nil
}

func (r *InMemoryRepository) InsertEvent(ctx context.Context, event *models.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.events[event.ID]; exists {
		return ErrEventExists
	}
	r.events[event.ID] = event
	return nil
}

func (r *InMemoryRepository) MarkFirstEvent(ctx context.Context, projectID uuid.UUID, ts time.Time) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, p := range r.projects {
		if p.ID == projectID {
			if p.FirstEvent != nil {
				return false, nil
			}
			p.FirstEvent = &ts
			return true, nil
		}
	}
	return false, ErrProjectNotFound
}

// GetEvent returns a stored event by ID. Test helper.
func (r *InMemoryRepository) GetEvent(id string) (*models.Event, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	event, exists := r.events[id]
	return event, exists
}

func (r *InMemoryRepository) Close() {}
