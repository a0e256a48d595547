package dto

import (
	"time"

	"kanban-board-api/internal/domain"
)

// CreateTicketRequest represents the request to create a new ticket
// @Description Request body for creating a ticket. Column is optional and
// @Description defaults to todo; the ticket is appended at the end of it.
type CreateTicketRequest struct {
	Title  string `json:"title" binding:"required" example:"Fix login redirect"`
	Column string `json:"column" binding:"omitempty,oneof=todo doing done" example:"todo"`
}

// UpdateTicketRequest represents a partial ticket update
// @Description At least one of title or description must be present.
// @Description Column and position are never touched by this request.
type UpdateTicketRequest struct {
	Title       *string `json:"title" binding:"omitempty" example:"Fix login redirect loop"`
	Description *string `json:"description" example:"Repro: log out twice in a row"`
}

// MoveTicketRequest relocates one ticket to a column and index
// @Description newPosition is the desired index in the target column after
// @Description the move; values past the end are clamped to append.
type MoveTicketRequest struct {
	TicketID    uint   `json:"ticketId" binding:"required" example:"5"`
	TargetColumn string `json:"targetColumn" binding:"required,oneof=todo doing done" example:"doing"`
	NewPosition *int   `json:"newPosition" binding:"required,gte=0" example:"0"`
}

// ReorderColumnRequest replaces a column's entire ordering
// @Description ticketIds is the full desired order for the column; tickets
// @Description listed from other columns are pulled in as part of the reorder.
type ReorderColumnRequest struct {
	Column    string `json:"column" binding:"required,oneof=todo doing done" example:"todo"`
	TicketIDs []uint `json:"ticketIds" binding:"required,min=1" example:"3,1,2"`
}

// TicketResponse represents one ticket with its tags
type TicketResponse struct {
	ID          uint          `json:"id" example:"5"`
	Title       string        `json:"title" example:"Fix login redirect"`
	Description string        `json:"description" example:""`
	Column      string        `json:"column" example:"todo"`
	Position    int           `json:"position" example:"2"`
	Tags        []TagResponse `json:"tags"`
	CreatedAt   time.Time     `json:"createdAt" example:"2024-01-15T10:30:00Z"`
	UpdatedAt   time.Time     `json:"updatedAt" example:"2024-01-15T14:20:00Z"`
}

// TicketDetailResponse is a ticket with its tags and comments
type TicketDetailResponse struct {
	TicketResponse
	Comments []CommentResponse `json:"comments"`
}

// BoardResponse is the whole board grouped by column, each group ordered by
// position ascending
type BoardResponse struct {
	Todo      []TicketResponse `json:"todo"`
	Doing     []TicketResponse `json:"doing"`
	Done      []TicketResponse `json:"done"`
	DoneCount int              `json:"doneCount" example:"4"`
}

// OKResponse acknowledges a mutation with no other payload
type OKResponse struct {
	OK bool `json:"ok" example:"true"`
}

// NewTicketResponse maps a domain ticket to its response shape
func NewTicketResponse(ticket *domain.Ticket) TicketResponse {
	tags := make([]TagResponse, 0, len(ticket.Tags))
	for i := range ticket.Tags {
		tags = append(tags, NewTagResponse(&ticket.Tags[i]))
	}
	return TicketResponse{
		ID:          ticket.ID,
		Title:       ticket.Title,
		Description: ticket.Description,
		Column:      ticket.Column.String(),
		Position:    ticket.Position,
		Tags:        tags,
		CreatedAt:   ticket.CreatedAt,
		UpdatedAt:   ticket.UpdatedAt,
	}
}
