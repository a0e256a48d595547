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

// CommentService defines the interface for comment business logic
type CommentService interface {
	CreateComment(ctx context.Context, ticketID uint, req *dto.CreateCommentRequest) (*dto.CommentResponse, error)
	ListComments(ctx context.Context, ticketID uint) ([]dto.CommentResponse, error)
	DeleteComment(ctx context.Context, commentID uint) error
}

// commentServiceImpl is the implementation of CommentService
type commentServiceImpl struct {
	commentRepo repository.CommentRepository
	ticketRepo  repository.TicketRepository
	metrics     *metrics.Metrics
	logger      *zap.Logger
}

// NewCommentService creates a new instance of CommentService
func NewCommentService(
	commentRepo repository.CommentRepository,
	ticketRepo repository.TicketRepository,
	m *metrics.Metrics,
	logger *zap.Logger,
) CommentService {
	return &commentServiceImpl{
		commentRepo: commentRepo,
		ticketRepo:  ticketRepo,
		metrics:     m,
		logger:      logger,
	}
}

// CreateComment adds a comment to an existing ticket
func (s *commentServiceImpl) CreateComment(ctx context.Context, ticketID uint, req *dto.CreateCommentRequest) (*dto.CommentResponse, error) {
	body := strings.TrimSpace(req.Body)
	if body == "" {
		return nil, response.NewAppError(response.ErrCodeValidation, "Comment body is required", "")
	}

	if _, err := s.ticketRepo.FindByID(ctx, ticketID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewAppError(response.ErrCodeNotFound, "Ticket not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to load ticket", err.Error())
	}

	comment := &domain.Comment{
		TicketID: ticketID,
		Body:     body,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to create comment", err.Error())
	}

	s.metrics.IncrementCommentCreated()

	resp := dto.NewCommentResponse(comment)
	return &resp, nil
}

// ListComments returns a ticket's comments, newest first
func (s *commentServiceImpl) ListComments(ctx context.Context, ticketID uint) ([]dto.CommentResponse, error) {
	if _, err := s.ticketRepo.FindByID(ctx, ticketID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewAppError(response.ErrCodeNotFound, "Ticket not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to load ticket", err.Error())
	}

	comments, err := s.commentRepo.FindByTicketID(ctx, ticketID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to list comments", err.Error())
	}

	responses := make([]dto.CommentResponse, 0, len(comments))
	for _, comment := range comments {
		responses = append(responses, dto.NewCommentResponse(comment))
	}
	return responses, nil
}

// DeleteComment removes a comment; an unknown id is a no-op
func (s *commentServiceImpl) DeleteComment(ctx context.Context, commentID uint) error {
	if err := s.commentRepo.Delete(ctx, commentID); err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to delete comment", err.Error())
	}
	return nil
}
