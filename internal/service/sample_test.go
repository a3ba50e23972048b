package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emberwatch/emberwatch/internal/models"
	"github.com/emberwatch/emberwatch/internal/repository"
	"github.com/emberwatch/emberwatch/internal/sample"
)

type recordingPublisher struct {
	subjects []string
	err      error
}

func (p *recordingPublisher) PublishJSON(ctx context.Context, subject string, v interface{}) error {
	if p.err != nil {
		return p.err
	}
	p.subjects = append(p.subjects, subject)
	return nil
}

func newTestService(t *testing.T, pub Publisher) (*SampleService, *repository.InMemoryRepository, *models.Project) {
	t.Helper()

	repo := repository.NewInMemoryRepository()

	org := &models.Organization{ID: uuid.New(), Slug: "acme", Name: "Acme Corp", CreatedAt: time.Now()}
	repo.AddOrganization(org)

	project := &models.Project{
		ID:             uuid.New(),
		OrganizationID: org.ID,
		Slug:           "web",
		Name:           "Web Frontend",
		Platform:       "javascript",
		CreatedAt:      time.Now(),
	}
	repo.AddProject(org.Slug, project)

	gen, err := sample.NewGenerator(sample.Options{Seed: 42})
	require.NoError(t, err)

	return NewSampleService(repo, gen, pub, nil), repo, project
}

func TestCreateSampleEvent(t *testing.T) {
	svc, repo, project := newTestService(t, nil)

	result, err := svc.Create(context.Background(), "acme", "web", "python")
	require.NoError(t, err)

	assert.True(t, result.FirstEvent)
	assert.Equal(t, project.ID, result.Event.ProjectID)
	assert.Equal(t, "python", result.Event.Platform)

	stored, ok := repo.GetEvent(result.Event.ID)
	require.True(t, ok)
	assert.True(t, stored.Sample)

	got, err := repo.GetProjectBySlug(context.Background(), "acme", "web")
	require.NoError(t, err)
	require.NotNil(t, got.FirstEvent)
	assert.Equal(t, result.Event.Timestamp, *got.FirstEvent)
}

func TestCreateDefaultsToProjectPlatform(t *testing.T) {
	svc, _, _ := newTestService(t, nil)

	result, err := svc.Create(context.Background(), "acme", "web", "")
	require.NoError(t, err)
	assert.Equal(t, "javascript", result.Event.Platform)
}

func TestCreateFirstEventOnlyOnce(t *testing.T) {
	svc, repo, _ := newTestService(t, nil)
	ctx := context.Background()

	first, err := svc.Create(ctx, "acme", "web", "go")
	require.NoError(t, err)
	assert.True(t, first.FirstEvent)

	second, err := svc.Create(ctx, "acme", "web", "go")
	require.NoError(t, err)
	assert.False(t, second.FirstEvent)

	got, err := repo.GetProjectBySlug(ctx, "acme", "web")
	require.NoError(t, err)
	require.NotNil(t, got.FirstEvent)
	assert.Equal(t, first.Event.Timestamp, *got.FirstEvent)
}

func TestCreateUnknownPlatform(t *testing.T) {
	svc, repo, _ := newTestService(t, nil)

	_, err := svc.Create(context.Background(), "acme", "web", "cobol")
	assert.ErrorIs(t, err, sample.ErrUnknownPlatform)

	// Nothing was stored and the project remains untouched.
	got, lookupErr := repo.GetProjectBySlug(context.Background(), "acme", "web")
	require.NoError(t, lookupErr)
	assert.Nil(t, got.FirstEvent)
}

func TestCreateProjectNotFound(t *testing.T) {
	svc, _, _ := newTestService(t, nil)

	_, err := svc.Create(context.Background(), "acme", "missing", "python")
	assert.ErrorIs(t, err, repository.ErrProjectNotFound)

	_, err = svc.Create(context.Background(), "other-org", "web", "python")
	assert.ErrorIs(t, err, repository.ErrProjectNotFound)
}

func TestCreatePublishesEvent(t *testing.T) {
	pub := &recordingPublisher{}
	svc, _, _ := newTestService(t, pub)

	result, err := svc.Create(context.Background(), "acme", "web", "python")
	require.NoError(t, err)
	require.NotNil(t, result.Event)

	require.Len(t, pub.subjects, 1)
	assert.Equal(t, "events.sample.web", pub.subjects[0])
}

func TestCreateSurvivesPublishFailure(t *testing.T) {
	pub := &recordingPublisher{err: errors.New("broker down")}
	svc, repo, _ := newTestService(t, pub)

	result, err := svc.Create(context.Background(), "acme", "web", "python")
	require.NoError(t, err)

	// Event is durably stored even though publication failed.
	_, ok := repo.GetEvent(result.Event.ID)
	assert.True(t, ok)
}
