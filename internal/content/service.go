// Package content implements the generation pipeline: validate the
// request, authorize the caller against the resource owner, resolve the
// prompt template, call the model, persist the result.
package content

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Team-Bro-buggers-C211010/Ai-Content-Generator/internal/cache"
	"github.com/Team-Bro-buggers-C211010/Ai-Content-Generator/internal/logger"
	"github.com/Team-Bro-buggers-C211010/Ai-Content-Generator/internal/metrics"
	"github.com/Team-Bro-buggers-C211010/Ai-Content-Generator/internal/models"
	"github.com/Team-Bro-buggers-C211010/Ai-Content-Generator/internal/prompts"
)

// Generator issues the outbound call to the model endpoint.
type Generator interface {
	Generate(ctx context.Context, system, user string) (string, error)
}

// Repository persists and retrieves content records.
type Repository interface {
	Create(ctx context.Context, userID uuid.UUID, prompt string, contentType models.ContentType, output string) (*models.Content, error)
	ListByOwner(ctx context.Context, userID uuid.UUID) ([]models.Content, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Content, error)
}

// ListCache caches per-owner content lists. May be nil to disable caching.
type ListCache interface {
	Get(ctx context.Context, ownerID uuid.UUID) ([]models.Content, error)
	Set(ctx context.Context, ownerID uuid.UUID, contents []models.Content) error
	Invalidate(ctx context.Context, ownerID uuid.UUID) error
}

// Service orchestrates the generation pipeline.
type Service struct {
	repo      Repository
	generator Generator
	cache     ListCache
	tracker   *metrics.Tracker
	logger    logger.Logger
}

// NewService creates a new content service. cache and tracker may be nil.
func NewService(repo Repository, generator Generator, listCache ListCache, tracker *metrics.Tracker, log logger.Logger) *Service {
	return &Service{
		repo:      repo,
		generator: generator,
		cache:     listCache,
		tracker:   tracker,
		logger:    log,
	}
}

// Generate runs the pipeline for one request. The sequence is linear and
// aborts on the first failure: nothing is persisted when validation,
// authorization, or the upstream call fails, and a persistence failure
// discards the generated text (at-most-once, no retry).
func (s *Service) Generate(ctx context.Context, callerID uuid.UUID, req *models.GenerateRequest) (*models.Content, error) {
	contentType, ownerID, err := s.validate(req)
	if err != nil {
		s.record(req.ContentType, metrics.OutcomeInvalid)
		return nil, err
	}

	if err := authorize(callerID, ownerID); err != nil {
		s.record(string(contentType), metrics.OutcomeForbidden)
		return nil, err
	}

	tmpl, err := prompts.Lookup(contentType)
	if err != nil {
		// Unreachable after enum validation; a miss here is a bug.
		s.logger.Error("Template lookup failed after validation",
			logger.String("content_type", string(contentType)),
			logger.Error(err),
		)
		s.record(string(contentType), metrics.OutcomeError)
		return nil, fmt.Errorf("resolve template: %w", err)
	}

	start := time.Now()
	output, err := s.generator.Generate(ctx, tmpl.System, tmpl.UserPrompt(req.Prompt))
	if err != nil {
		s.logger.Error("Content generation failed",
			logger.String("user_id", ownerID.String()),
			logger.String("content_type", string(contentType)),
			logger.Error(err),
		)
		s.record(string(contentType), metrics.OutcomeFailed)
		return nil, err
	}
	if s.tracker != nil {
		s.tracker.RecordUpstreamDuration(time.Since(start))
	}

	record, err := s.repo.Create(ctx, ownerID, req.Prompt, contentType, output)
	if err != nil {
		s.record(string(contentType), metrics.OutcomeError)
		return nil, fmt.Errorf("persist content: %w", err)
	}

	if s.cache != nil {
		if err := s.cache.Invalidate(ctx, ownerID); err != nil {
			s.logger.Warn("Failed to invalidate content cache",
				logger.String("user_id", ownerID.String()),
				logger.Error(err),
			)
		}
	}

	s.logger.Info("Content generated",
		logger.String("content_id", record.ID.String()),
		logger.String("user_id", ownerID.String()),
		logger.String("content_type", string(contentType)),
		logger.Duration("elapsed", time.Since(start)),
	)
	s.record(string(contentType), metrics.OutcomeSuccess)

	return record, nil
}

// List returns the caller's records, newest first. The cache is
// consulted first; any cache failure degrades to the database read.
func (s *Service) List(ctx context.Context, callerID uuid.UUID) ([]models.Content, error) {
	if s.cache != nil {
		contents, err := s.cache.Get(ctx, callerID)
		if err == nil {
			return contents, nil
		}
		if !errors.Is(err, cache.ErrCacheMiss) {
			s.logger.Debug("Content cache read failed",
				logger.String("user_id", callerID.String()),
				logger.Error(err),
			)
		}
	}

	contents, err := s.repo.ListByOwner(ctx, callerID)
	if err != nil {
		return nil, fmt.Errorf("list contents: %w", err)
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, callerID, contents); err != nil {
			s.logger.Debug("Content cache write failed",
				logger.String("user_id", callerID.String()),
				logger.Error(err),
			)
		}
	}

	return contents, nil
}

// Get returns a single record. Ownership is checked here, not in the
// repository: a record owned by someone else yields models.ErrForbidden,
// an absent record models.ErrNotFound.
func (s *Service) Get(ctx context.Context, callerID, id uuid.UUID) (*models.Content, error) {
	record, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := authorize(callerID, record.UserID); err != nil {
		return nil, err
	}

	return record, nil
}

// validate checks the request shape and returns the resolved content
// type and owner id. All field problems are collected into one
// ValidationError so the client sees every message at once.
func (s *Service) validate(req *models.GenerateRequest) (models.ContentType, uuid.UUID, error) {
	var messages []string

	if req.Prompt == "" {
		messages = append(messages, "Prompt is required")
	}
	if req.UserID == "" {
		messages = append(messages, "User ID is required")
	}

	contentType := models.DefaultContentType
	if req.ContentType != "" {
		contentType = models.ContentType(req.ContentType)
		if !contentType.Valid() {
			messages = append(messages, fmt.Sprintf("Unknown content type %q", req.ContentType))
		}
	}

	var ownerID uuid.UUID
	if req.UserID != "" {
		var err error
		ownerID, err = uuid.Parse(req.UserID)
		if err != nil {
			messages = append(messages, "User ID must be a valid UUID")
		}
	}

	if len(messages) > 0 {
		return "", uuid.Nil, models.NewValidationError(messages...)
	}

	return contentType, ownerID, nil
}

// authorize is the ownership guard: the caller must be the owner.
func authorize(callerID, ownerID uuid.UUID) error {
	if callerID != ownerID {
		return models.ErrForbidden
	}
	return nil
}

// record counts the request outcome. Label values stay within the known
// content-type enum so client input can never mint new metric series.
func (s *Service) record(contentType, outcome string) {
	if s.tracker == nil {
		return
	}
	switch {
	case contentType == "":
		contentType = string(models.DefaultContentType)
	case !models.ContentType(contentType).Valid():
		contentType = metrics.LabelInvalidType
	}
	s.tracker.RecordRequest(contentType, outcome)
}
