package dto

import "kanban-board-api/internal/domain"

// CreateTagRequest represents the request to create a new tag
// @Description Tag names are unique across the board; color is optional
// @Description and falls back to the default palette color.
type CreateTagRequest struct {
	Name  string `json:"name" binding:"required,max=100" example:"bug"`
	Color string `json:"color" binding:"omitempty,max=20" example:"#e05252"`
}

// AttachTagRequest attaches an existing tag to a ticket
type AttachTagRequest struct {
	TagID uint `json:"tagId" binding:"required" example:"2"`
}

// TagResponse represents one tag
type TagResponse struct {
	ID    uint   `json:"id" example:"2"`
	Name  string `json:"name" example:"bug"`
	Color string `json:"color" example:"#e05252"`
}

// NewTagResponse maps a domain tag to its response shape
func NewTagResponse(tag *domain.Tag) TagResponse {
	return TagResponse{
		ID:    tag.ID,
		Name:  tag.Name,
		Color: tag.Color,
	}
}
