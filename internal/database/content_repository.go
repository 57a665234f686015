package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/Team-Bro-buggers-C211010/Ai-Content-Generator/internal/models"
)

// ContentRepository provides database operations for generated content.
// It performs no validation; callers pass fully validated fields.
type ContentRepository struct {
	db *sqlx.DB
}

// NewContentRepository creates a new content repository instance
func NewContentRepository(db *sqlx.DB) *ContentRepository {
	return &ContentRepository{db: db}
}

// Create persists a generated content record, assigning id and created_at.
func (r *ContentRepository) Create(
	ctx context.Context,
	userID uuid.UUID,
	prompt string,
	contentType models.ContentType,
	output string,
) (*models.Content, error) {
	content := &models.Content{
		ID:          uuid.New(),
		UserID:      userID,
		Prompt:      prompt,
		ContentType: contentType,
		Output:      output,
		CreatedAt:   time.Now(),
	}

	query := `
		INSERT INTO contents (id, user_id, prompt, content_type, output, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, user_id, prompt, content_type, output, created_at
	`

	err := r.db.QueryRowxContext(
		ctx, query,
		content.ID, content.UserID, content.Prompt, content.ContentType, content.Output, content.CreatedAt,
	).StructScan(content)

	if err != nil {
		return nil, fmt.Errorf("failed to create content: %w", err)
	}

	return content, nil
}

// ListByOwner retrieves all content owned by userID, newest first.
// The owner filter lives in SQL so a record for another user can never
// appear in the result regardless of what the caller does with it.
func (r *ContentRepository) ListByOwner(ctx context.Context, userID uuid.UUID) ([]models.Content, error) {
	contents := []models.Content{}
	query := `
		SELECT id, user_id, prompt, content_type, output, created_at
		FROM contents
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	err := r.db.SelectContext(ctx, &contents, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list contents: %w", err)
	}

	return contents, nil
}

// GetByID retrieves a content record by ID. There is no ownership filter
// here; the service layer checks the owner against the caller.
func (r *ContentRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Content, error) {
	content := &models.Content{}
	query := `
		SELECT id, user_id, prompt, content_type, output, created_at
		FROM contents
		WHERE id = $1
	`

	err := r.db.GetContext(ctx, content, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get content: %w", err)
	}

	return content, nil
}

// Ping verifies database connectivity, used by health checks.
func (r *ContentRepository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}
