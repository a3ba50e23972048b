package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/emberwatch/emberwatch/internal/models"
)

const queryTimeout = 5 * time.Second

type PostgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(ctx context.Context, connString string) (*PostgresRepository, error) {
	config, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database config: %w", err)
	}

	config.MaxConns = 10
	config.MinConns = 1
	config.MaxConnLifetime = 5 * time.Minute
	config.MaxConnIdleTime = time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &PostgresRepository{pool: pool}, nil
}

func (r *PostgresRepository) Close() {
	r.pool.Close()
}

func (r *PostgresRepository) GetOrganizationBySlug(ctx context.Context, slug string) (*models.Organization, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	query := `
		SELECT id, slug, name, created_at
		FROM organizations
		WHERE slug = $1
	`

	var org models.Organization
	err := r.pool.QueryRow(ctx, query, slug).Scan(
		&org.ID, &org.Slug, &org.Name, &org.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrOrganizationNotFound
		}
		return nil, fmt.Errorf("failed to get organization: %w", err)
	}

	return &org, nil
}

func (r *PostgresRepository) GetProjectBySlug(ctx context.Context, orgSlug, projectSlug string) (*models.Project, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	query := `
		SELECT p.id, p.organization_id, p.slug, p.name, p.platform, p.first_event, p.created_at
		FROM projects p
		JOIN organizations o ON o.id = p.organization_id
		WHERE o.slug = $1 AND p.slug = $2
	`

	var project models.Project
	err := r.pool.QueryRow(ctx, query, orgSlug, projectSlug).Scan(
		&project.ID, &project.OrganizationID, &project.Slug, &project.Name,
		&project.Platform, &project.FirstEvent, &project.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}

	return &project, nil
}

func (r *PostgresRepository) ListProjects(ctx context.Context, orgSlug string) ([]*models.Project, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	query := `
		SELECT p.id, p.organization_id, p.slug, p.name, p.platform, p.first_event, p.created_at
		FROM projects p
		JOIN organizations o ON o.id = p.organization_id
		WHERE o.slug = $1
		ORDER BY p.slug
	`

	rows, err := r.pool.Query(ctx, query, orgSlug)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	defer rows.Close()

	var projects []*models.Project
	for rows.Next() {
		var project models.Project
		if err := rows.Scan(
			&project.ID, &project.OrganizationID, &project.Slug, &project.Name,
			&project.Platform, &project.FirstEvent, &project.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan project: %w", err)
		}
		projects = append(projects, &project)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read projects: %w", err)
	}

	return projects, nil
}

func (r *PostgresRepository) InsertEvent(ctx context.Context, event *models.Event) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to encode event payload: %w", err)
	}

	query := `
		INSERT INTO events (id, project_id, platform, message, level, environment, release, is_sample, occurred_at, payload)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err = r.pool.Exec(ctx, query,
		event.ID, event.ProjectID, event.Platform, event.Message, event.Level,
		event.Environment, event.Release, event.Sample, event.Timestamp, payload,
	)

	if err != nil {
		return fmt.Errorf("failed to insert event: %w", err)
	}

	return nil
}

func (r *PostgresRepository) MarkFirstEvent(ctx context.Context, projectID uuid.UUID, ts time.Time) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	// Conditional write keeps first_event write-once even under
	// concurrent event creation.
	query := `
		UPDATE projects
		SET first_event = $2
		WHERE id = $1 AND first_event IS NULL
	`

	result, err := r.pool.Exec(ctx, query, projectID, ts)
	if err != nil {
		return false, fmt.Errorf("failed to mark first event: %w", err)
	}

	return result.RowsAffected() > 0, nil
}
