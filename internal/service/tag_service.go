package service

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"kanban-board-api/internal/domain"
	"kanban-board-api/internal/dto"
	"kanban-board-api/internal/metrics"
	"kanban-board-api/internal/repository"
	"kanban-board-api/internal/response"
)

// TagService defines the interface for tag business logic
type TagService interface {
	CreateTag(ctx context.Context, req *dto.CreateTagRequest) (*dto.TagResponse, error)
	ListTags(ctx context.Context) ([]dto.TagResponse, error)
	DeleteTag(ctx context.Context, tagID uint) error
	AttachTag(ctx context.Context, ticketID uint, req *dto.AttachTagRequest) error
	DetachTag(ctx context.Context, ticketID, tagID uint) error
}

// tagServiceImpl is the implementation of TagService
type tagServiceImpl struct {
	tagRepo    repository.TagRepository
	ticketRepo repository.TicketRepository
	metrics    *metrics.Metrics
	logger     *zap.Logger
}

// NewTagService creates a new instance of TagService
func NewTagService(
	tagRepo repository.TagRepository,
	ticketRepo repository.TicketRepository,
	m *metrics.Metrics,
	logger *zap.Logger,
) TagService {
	return &tagServiceImpl{
		tagRepo:    tagRepo,
		ticketRepo: ticketRepo,
		metrics:    m,
		logger:     logger,
	}
}

// CreateTag creates a tag, reporting a conflict on duplicate names
func (s *tagServiceImpl) CreateTag(ctx context.Context, req *dto.CreateTagRequest) (*dto.TagResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, response.NewAppError(response.ErrCodeValidation, "Name is required", "")
	}

	color := req.Color
	if color == "" {
		color = domain.DefaultTagColor
	}

	if _, err := s.tagRepo.FindByName(ctx, name); err == nil {
		return nil, response.NewAppError(response.ErrCodeAlreadyExists, "Tag already exists", name)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to check tag name", err.Error())
	}

	tag := &domain.Tag{Name: name, Color: color}
	if err := s.tagRepo.Create(ctx, tag); err != nil {
		// The unique index is the real arbiter; the pre-check only gives a
		// nicer error for the common case
		if errors.Is(err, gorm.ErrDuplicatedKey) || strings.Contains(err.Error(), "UNIQUE") {
			return nil, response.NewAppError(response.ErrCodeAlreadyExists, "Tag already exists", name)
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to create tag", err.Error())
	}

	s.logger.Info("Tag created", zap.Uint("tag_id", tag.ID), zap.String("name", tag.Name))

	resp := dto.NewTagResponse(tag)
	return &resp, nil
}

// ListTags returns all tags ordered by name
func (s *tagServiceImpl) ListTags(ctx context.Context) ([]dto.TagResponse, error) {
	tags, err := s.tagRepo.FindAll(ctx)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to list tags", err.Error())
	}

	responses := make([]dto.TagResponse, 0, len(tags))
	for _, tag := range tags {
		responses = append(responses, dto.NewTagResponse(tag))
	}
	return responses, nil
}

// DeleteTag removes a tag; its ticket associations cascade away
func (s *tagServiceImpl) DeleteTag(ctx context.Context, tagID uint) error {
	if err := s.tagRepo.Delete(ctx, tagID); err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to delete tag", err.Error())
	}
	return nil
}

// AttachTag adds a tag to a ticket. Attaching an already-present tag is a
// success, not an error.
func (s *tagServiceImpl) AttachTag(ctx context.Context, ticketID uint, req *dto.AttachTagRequest) error {
	if _, err := s.ticketRepo.FindByID(ctx, ticketID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewAppError(response.ErrCodeNotFound, "Ticket not found", "")
		}
		return response.NewAppError(response.ErrCodeInternal, "Failed to load ticket", err.Error())
	}
	if _, err := s.tagRepo.FindByID(ctx, req.TagID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewAppError(response.ErrCodeNotFound, "Tag not found", "")
		}
		return response.NewAppError(response.ErrCodeInternal, "Failed to load tag", err.Error())
	}

	if err := s.tagRepo.AttachToTicket(ctx, ticketID, req.TagID); err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to attach tag", err.Error())
	}
	return nil
}

// DetachTag removes a tag from a ticket; a missing association is a no-op
func (s *tagServiceImpl) DetachTag(ctx context.Context, ticketID, tagID uint) error {
	if err := s.tagRepo.DetachFromTicket(ctx, ticketID, tagID); err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to detach tag", err.Error())
	}
	return nil
}
