package dto

import (
	"time"

	"kanban-board-api/internal/domain"
)

// CreateCommentRequest represents the request to create a new comment
type CreateCommentRequest struct {
	Body string `json:"body" binding:"required,min=1" example:"Deployed the fix to staging"`
}

// CommentResponse represents one comment
type CommentResponse struct {
	ID        uint      `json:"id" example:"7"`
	TicketID  uint      `json:"ticketId" example:"5"`
	Body      string    `json:"body" example:"Deployed the fix to staging"`
	CreatedAt time.Time `json:"createdAt" example:"2024-01-15T10:30:00Z"`
}

// NewCommentResponse maps a domain comment to its response shape
func NewCommentResponse(comment *domain.Comment) CommentResponse {
	return CommentResponse{
		ID:        comment.ID,
		TicketID:  comment.TicketID,
		Body:      comment.Body,
		CreatedAt: comment.CreatedAt,
	}
}
