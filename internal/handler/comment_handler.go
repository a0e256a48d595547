package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"kanban-board-api/internal/dto"
	"kanban-board-api/internal/response"
	"kanban-board-api/internal/service"
)

// CommentHandler exposes comment endpoints
type CommentHandler struct {
	commentService service.CommentService
}

// NewCommentHandler creates a new instance of CommentHandler
func NewCommentHandler(commentService service.CommentService) *CommentHandler {
	return &CommentHandler{
		commentService: commentService,
	}
}

// ListComments godoc
// @Summary      List a ticket's comments
// @Description  Returns comments newest first
// @Tags         comments
// @Produce      json
// @Param        id path int true "Ticket ID"
// @Success      200 {object} response.SuccessResponse{data=[]dto.CommentResponse}
// @Failure      404 {object} response.ErrorResponse
// @Router       /tickets/{id}/comments [get]
func (h *CommentHandler) ListComments(c *gin.Context) {
	ticketID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	comments, err := h.commentService.ListComments(c.Request.Context(), ticketID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, comments)
}

// CreateComment godoc
// @Summary      Comment on a ticket
// @Description  Adds a comment with a non-empty body to an existing ticket
// @Tags         comments
// @Accept       json
// @Produce      json
// @Param        id path int true "Ticket ID"
// @Param        request body dto.CreateCommentRequest true "Comment creation request"
// @Success      201 {object} response.SuccessResponse{data=dto.CommentResponse}
// @Failure      400 {object} response.ErrorResponse
// @Failure      404 {object} response.ErrorResponse
// @Router       /tickets/{id}/comments [post]
func (h *CommentHandler) CreateComment(c *gin.Context) {
	ticketID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, err.Error())
		return
	}

	comment, err := h.commentService.CreateComment(c.Request.Context(), ticketID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusCreated, comment)
}

// DeleteComment godoc
// @Summary      Delete a comment
// @Description  Removes a comment; an unknown id is a no-op
// @Tags         comments
// @Produce      json
// @Param        id path int true "Comment ID"
// @Success      200 {object} response.SuccessResponse{data=dto.OKResponse}
// @Router       /comments/{id} [delete]
func (h *CommentHandler) DeleteComment(c *gin.Context) {
	commentID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.commentService.DeleteComment(c.Request.Context(), commentID); err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, dto.OKResponse{OK: true})
}
