// Package service orchestrates sample-event creation over the
// repository, generator and message bus.
package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/emberwatch/emberwatch/internal/messaging"
	"github.com/emberwatch/emberwatch/internal/models"
	"github.com/emberwatch/emberwatch/internal/repository"
	"github.com/emberwatch/emberwatch/pkg/logging"
)

// ErrNoEvent is returned when the generator produced nothing for the
// requested platform.
var ErrNoEvent = errors.New("no event created")

// Publisher is the subset of the message bus used after event creation.
type Publisher interface {
	PublishJSON(ctx context.Context, subject string, v interface{}) error
}

// Generator produces sample events for a project/platform pair.
type Generator interface {
	Generate(project *models.Project, platform string) (*models.Event, error)
	Supports(platform string) bool
}

// CreateResult describes the outcome of a sample-event creation.
type CreateResult struct {
	Event *models.Event
	// FirstEvent is true when this creation recorded the project's
	// first-event timestamp.
	FirstEvent bool
}

// SampleService creates sample events for projects.
type SampleService struct {
	repo repository.Repository
	gen  Generator
	pub  Publisher // nil when publication is disabled
	log  *logging.Logger
}

// NewSampleService wires a sample service. pub may be nil.
func NewSampleService(repo repository.Repository, gen Generator, pub Publisher, log *logging.Logger) *SampleService {
	if log == nil {
		log = logging.Default()
	}
	return &SampleService{repo: repo, gen: gen, pub: pub, log: log}
}

// Create resolves the project by organization and project slug,
// generates a sample event on the given platform (defaulting to the
// project's own platform), persists it, and records the project's
// first-event timestamp if previously unset.
func (s *SampleService) Create(ctx context.Context, orgSlug, projectSlug, platform string) (*CreateResult, error) {
	project, err := s.repo.GetProjectBySlug(ctx, orgSlug, projectSlug)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve project %s/%s: %w", orgSlug, projectSlug, err)
	}

	if platform == "" {
		platform = project.Platform
	}

	event, err := s.gen.Generate(project, platform)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, ErrNoEvent
	}

	if err := s.repo.InsertEvent(ctx, event); err != nil {
		return nil, fmt.Errorf("failed to store event: %w", err)
	}

	first, err := s.repo.MarkFirstEvent(ctx, project.ID, event.Timestamp)
	if err != nil {
		return nil, fmt.Errorf("failed to record first event: %w", err)
	}

	s.publish(ctx, project, event)

	s.log.InfoContext(ctx, "created sample event",
		logging.Org(orgSlug),
		logging.Project(projectSlug),
		logging.Platform(platform),
		logging.EventID(event.ID),
	)

	return &CreateResult{Event: event, FirstEvent: first}, nil
}

// publish notifies the message bus about the new event. The event is
// already durably stored, so publish failures are logged and dropped.
func (s *SampleService) publish(ctx context.Context, project *models.Project, event *models.Event) {
	if s.pub == nil {
		return
	}

	subject := messaging.SampleEventSubjectPrefix + project.Slug
	if err := s.pub.PublishJSON(ctx, subject, event); err != nil {
		s.log.WarnContext(ctx, "failed to publish sample event",
			logging.Subject(subject),
			logging.EventID(event.ID),
			logging.Error(err),
		)
	}
}
