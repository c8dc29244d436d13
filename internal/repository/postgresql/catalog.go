package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/nexus-ceredi/nexus-backend-go/internal/domain/catalog"
	"github.com/nexus-ceredi/nexus-backend-go/internal/pkg/database"
)

type catalogRepository struct {
	db *database.DB
}

func NewCatalogRepository(db *database.DB) catalog.Repository {
	return &catalogRepository{db: db}
}

// Create implements catalog.Repository.
func (c *catalogRepository) Create(ctx context.Context, s catalog.Service) (catalog.Service, error) {
	q := GetQuerier(ctx, c.db)

	err := q.QueryRow(ctx, `
		INSERT INTO services (id, name, description)
		VALUES ($1, $2, $3)
		RETURNING created_at, updated_at
	`, s.ID, s.Name, s.Description).Scan(&s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return catalog.Service{}, catalog.ErrServiceNameTaken
		}
		return catalog.Service{}, fmt.Errorf("failed to create service: %w", err)
	}

	return s, nil
}

// GetByID implements catalog.Repository.
func (c *catalogRepository) GetByID(ctx context.Context, id string) (catalog.Service, error) {
	q := GetQuerier(ctx, c.db)

	var s catalog.Service
	err := q.QueryRow(ctx, `
		SELECT id, name, description, created_at, updated_at
		FROM services WHERE id = $1
	`, id).Scan(&s.ID, &s.Name, &s.Description, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return catalog.Service{}, catalog.ErrServiceNotFound
		}
		return catalog.Service{}, fmt.Errorf("failed to get service: %w", err)
	}

	return s, nil
}

// Update implements catalog.Repository.
func (c *catalogRepository) Update(ctx context.Context, s catalog.Service) (catalog.Service, error) {
	q := GetQuerier(ctx, c.db)

	err := q.QueryRow(ctx, `
		UPDATE services
		SET name = $2, description = $3, updated_at = NOW()
		WHERE id = $1
		RETURNING created_at, updated_at
	`, s.ID, s.Name, s.Description).Scan(&s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return catalog.Service{}, catalog.ErrServiceNotFound
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return catalog.Service{}, catalog.ErrServiceNameTaken
		}
		return catalog.Service{}, fmt.Errorf("failed to update service: %w", err)
	}

	return s, nil
}

// Delete implements catalog.Repository.
func (c *catalogRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, c.db)

	tag, err := q.Exec(ctx, `DELETE FROM services WHERE id = $1`, id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return catalog.ErrServiceInUse
		}
		return fmt.Errorf("failed to delete service: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return catalog.ErrServiceNotFound
	}

	return nil
}

// List implements catalog.Repository.
func (c *catalogRepository) List(ctx context.Context) ([]catalog.Service, error) {
	q := GetQuerier(ctx, c.db)

	rows, err := q.Query(ctx, `
		SELECT id, name, description, created_at, updated_at
		FROM services
		ORDER BY name ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list services: %w", err)
	}
	defer rows.Close()

	var services []catalog.Service
	for rows.Next() {
		var s catalog.Service
		if err := rows.Scan(&s.ID, &s.Name, &s.Description, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan service: %w", err)
		}
		services = append(services, s)
	}
	return services, rows.Err()
}
