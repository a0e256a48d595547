package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"kanban-board-api/internal/dto"
	"kanban-board-api/internal/response"
	"kanban-board-api/internal/service"
)

// TicketHandler exposes ticket CRUD and the two ordering mutations
type TicketHandler struct {
	ticketService service.TicketService
}

// NewTicketHandler creates a new instance of TicketHandler
func NewTicketHandler(ticketService service.TicketService) *TicketHandler {
	return &TicketHandler{
		ticketService: ticketService,
	}
}

// GetBoard godoc
// @Summary      Get the board
// @Description  Returns all tickets grouped by column, ordered by position
// @Tags         tickets
// @Produce      json
// @Success      200 {object} response.SuccessResponse{data=dto.BoardResponse}
// @Failure      500 {object} response.ErrorResponse
// @Router       /board [get]
func (h *TicketHandler) GetBoard(c *gin.Context) {
	board, err := h.ticketService.GetBoard(c.Request.Context())
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, board)
}

// GetTicket godoc
// @Summary      Get one ticket
// @Description  Returns a ticket with its tags and comments
// @Tags         tickets
// @Produce      json
// @Param        id path int true "Ticket ID"
// @Success      200 {object} response.SuccessResponse{data=dto.TicketDetailResponse}
// @Failure      404 {object} response.ErrorResponse
// @Router       /tickets/{id} [get]
func (h *TicketHandler) GetTicket(c *gin.Context) {
	ticketID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	ticket, err := h.ticketService.GetTicket(c.Request.Context(), ticketID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, ticket)
}

// CreateTicket godoc
// @Summary      Create a ticket
// @Description  Creates a ticket appended at the end of its column (todo by default)
// @Tags         tickets
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateTicketRequest true "Ticket creation request"
// @Success      201 {object} response.SuccessResponse{data=dto.TicketResponse}
// @Failure      400 {object} response.ErrorResponse
// @Router       /tickets [post]
func (h *TicketHandler) CreateTicket(c *gin.Context) {
	var req dto.CreateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, err.Error())
		return
	}

	ticket, err := h.ticketService.CreateTicket(c.Request.Context(), &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusCreated, ticket)
}

// UpdateTicket godoc
// @Summary      Update a ticket
// @Description  Partial update of title and/or description
// @Tags         tickets
// @Accept       json
// @Produce      json
// @Param        id path int true "Ticket ID"
// @Param        request body dto.UpdateTicketRequest true "Ticket update request"
// @Success      200 {object} response.SuccessResponse{data=dto.TicketResponse}
// @Failure      400 {object} response.ErrorResponse
// @Failure      404 {object} response.ErrorResponse
// @Router       /tickets/{id} [put]
func (h *TicketHandler) UpdateTicket(c *gin.Context) {
	ticketID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, err.Error())
		return
	}

	ticket, err := h.ticketService.UpdateTicket(c.Request.Context(), ticketID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, ticket)
}

// DeleteTicket godoc
// @Summary      Delete a ticket
// @Description  Removes a ticket, its comments and tag associations, and renumbers the column
// @Tags         tickets
// @Produce      json
// @Param        id path int true "Ticket ID"
// @Success      200 {object} response.SuccessResponse{data=dto.OKResponse}
// @Router       /tickets/{id} [delete]
func (h *TicketHandler) DeleteTicket(c *gin.Context) {
	ticketID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.ticketService.DeleteTicket(c.Request.Context(), ticketID); err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, dto.OKResponse{OK: true})
}

// MoveTicket godoc
// @Summary      Move a ticket
// @Description  Relocates one ticket to a column and index, shifting others to keep positions contiguous
// @Tags         tickets
// @Accept       json
// @Produce      json
// @Param        request body dto.MoveTicketRequest true "Move request"
// @Success      200 {object} response.SuccessResponse{data=dto.OKResponse}
// @Failure      400 {object} response.ErrorResponse
// @Failure      404 {object} response.ErrorResponse
// @Router       /tickets/move [post]
func (h *TicketHandler) MoveTicket(c *gin.Context) {
	var req dto.MoveTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, err.Error())
		return
	}

	if err := h.ticketService.MoveTicket(c.Request.Context(), &req); err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, dto.OKResponse{OK: true})
}

// ReorderColumn godoc
// @Summary      Reorder a column
// @Description  Replaces a column's entire ordering from the supplied ticket id list
// @Tags         tickets
// @Accept       json
// @Produce      json
// @Param        request body dto.ReorderColumnRequest true "Reorder request"
// @Success      200 {object} response.SuccessResponse{data=dto.OKResponse}
// @Failure      400 {object} response.ErrorResponse
// @Router       /tickets/reorder [post]
func (h *TicketHandler) ReorderColumn(c *gin.Context) {
	var req dto.ReorderColumnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, err.Error())
		return
	}

	if err := h.ticketService.ReorderColumn(c.Request.Context(), &req); err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, dto.OKResponse{OK: true})
}

// ClearDone godoc
// @Summary      Clear the done column
// @Description  Deletes every ticket currently in done
// @Tags         tickets
// @Produce      json
// @Success      200 {object} response.SuccessResponse{data=dto.OKResponse}
// @Router       /tickets/done/clear [delete]
func (h *TicketHandler) ClearDone(c *gin.Context) {
	if _, err := h.ticketService.ClearDone(c.Request.Context()); err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, dto.OKResponse{OK: true})
}

// parseIDParam reads a positive integer path parameter, replying 400 itself
// when the value is malformed
func parseIDParam(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid "+name+" parameter")
		return 0, false
	}
	return uint(id), true
}
