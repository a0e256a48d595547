package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"kanban-board-api/internal/dto"
	"kanban-board-api/internal/response"
	"kanban-board-api/internal/service"
)

// TagHandler exposes tag CRUD and ticket-tag association endpoints
type TagHandler struct {
	tagService service.TagService
}

// NewTagHandler creates a new instance of TagHandler
func NewTagHandler(tagService service.TagService) *TagHandler {
	return &TagHandler{
		tagService: tagService,
	}
}

// ListTags godoc
// @Summary      List tags
// @Description  Returns every tag ordered by name
// @Tags         tags
// @Produce      json
// @Success      200 {object} response.SuccessResponse{data=[]dto.TagResponse}
// @Router       /tags [get]
func (h *TagHandler) ListTags(c *gin.Context) {
	tags, err := h.tagService.ListTags(c.Request.Context())
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, tags)
}

// CreateTag godoc
// @Summary      Create a tag
// @Description  Creates a tag; names are unique across the board
// @Tags         tags
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateTagRequest true "Tag creation request"
// @Success      201 {object} response.SuccessResponse{data=dto.TagResponse}
// @Failure      400 {object} response.ErrorResponse
// @Failure      409 {object} response.ErrorResponse
// @Router       /tags [post]
func (h *TagHandler) CreateTag(c *gin.Context) {
	var req dto.CreateTagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, err.Error())
		return
	}

	tag, err := h.tagService.CreateTag(c.Request.Context(), &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusCreated, tag)
}

// DeleteTag godoc
// @Summary      Delete a tag
// @Description  Removes a tag and all its ticket associations
// @Tags         tags
// @Produce      json
// @Param        id path int true "Tag ID"
// @Success      200 {object} response.SuccessResponse{data=dto.OKResponse}
// @Router       /tags/{id} [delete]
func (h *TagHandler) DeleteTag(c *gin.Context) {
	tagID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.tagService.DeleteTag(c.Request.Context(), tagID); err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, dto.OKResponse{OK: true})
}

// AttachTag godoc
// @Summary      Attach a tag to a ticket
// @Description  Adds a tag to a ticket; attaching an already-present tag succeeds without change
// @Tags         tags
// @Accept       json
// @Produce      json
// @Param        id path int true "Ticket ID"
// @Param        request body dto.AttachTagRequest true "Attach request"
// @Success      200 {object} response.SuccessResponse{data=dto.OKResponse}
// @Failure      404 {object} response.ErrorResponse
// @Router       /tickets/{id}/tags [post]
func (h *TagHandler) AttachTag(c *gin.Context) {
	ticketID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.AttachTagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, err.Error())
		return
	}

	if err := h.tagService.AttachTag(c.Request.Context(), ticketID, &req); err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, dto.OKResponse{OK: true})
}

// DetachTag godoc
// @Summary      Detach a tag from a ticket
// @Description  Removes a tag from a ticket; a missing association is a no-op
// @Tags         tags
// @Produce      json
// @Param        id path int true "Ticket ID"
// @Param        tagId path int true "Tag ID"
// @Success      200 {object} response.SuccessResponse{data=dto.OKResponse}
// @Router       /tickets/{id}/tags/{tagId} [delete]
func (h *TagHandler) DetachTag(c *gin.Context) {
	ticketID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	tagID, ok := parseIDParam(c, "tagId")
	if !ok {
		return
	}

	if err := h.tagService.DetachTag(c.Request.Context(), ticketID, tagID); err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, dto.OKResponse{OK: true})
}
