package service

import (
	"context"
	"errors"
	"strings"
	"sync"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"kanban-board-api/internal/domain"
	"kanban-board-api/internal/dto"
	"kanban-board-api/internal/metrics"
	"kanban-board-api/internal/repository"
	"kanban-board-api/internal/response"
)

// TicketService defines the interface for ticket business logic, including
// the two ordering mutations that keep every column's positions contiguous
type TicketService interface {
	CreateTicket(ctx context.Context, req *dto.CreateTicketRequest) (*dto.TicketResponse, error)
	GetTicket(ctx context.Context, ticketID uint) (*dto.TicketDetailResponse, error)
	GetBoard(ctx context.Context) (*dto.BoardResponse, error)
	UpdateTicket(ctx context.Context, ticketID uint, req *dto.UpdateTicketRequest) (*dto.TicketResponse, error)
	DeleteTicket(ctx context.Context, ticketID uint) error
	MoveTicket(ctx context.Context, req *dto.MoveTicketRequest) error
	ReorderColumn(ctx context.Context, req *dto.ReorderColumnRequest) error
	ClearDone(ctx context.Context) (int64, error)
}

// ticketServiceImpl is the implementation of TicketService
//
// The mutex serializes every mutation that reads positions before writing
// them. Transactions alone only give atomicity; two concurrent moves could
// still interleave their read-shift-write cycles and corrupt the ordering,
// so the one logical board acts as a single mutual-exclusion domain.
type ticketServiceImpl struct {
	ticketRepo  repository.TicketRepository
	commentRepo repository.CommentRepository
	metrics     *metrics.Metrics
	logger      *zap.Logger

	mu sync.Mutex
}

// NewTicketService creates a new instance of TicketService
func NewTicketService(
	ticketRepo repository.TicketRepository,
	commentRepo repository.CommentRepository,
	m *metrics.Metrics,
	logger *zap.Logger,
) TicketService {
	return &ticketServiceImpl{
		ticketRepo:  ticketRepo,
		commentRepo: commentRepo,
		metrics:     m,
		logger:      logger,
	}
}

// CreateTicket creates a ticket at the end of its column
func (s *ticketServiceImpl) CreateTicket(ctx context.Context, req *dto.CreateTicketRequest) (*dto.TicketResponse, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, response.NewAppError(response.ErrCodeValidation, "Title is required", "")
	}

	column := domain.ColumnTodo
	if req.Column != "" {
		column = domain.Column(req.Column)
		if !column.IsValid() {
			return nil, response.NewAppError(response.ErrCodeValidation, "Invalid column", req.Column)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	ticket := &domain.Ticket{
		Title:  title,
		Column: column,
	}

	err := s.ticketRepo.Transaction(ctx, func(repo repository.TicketRepository) error {
		maxPos, err := repo.MaxPosition(ctx, column)
		if err != nil {
			return err
		}
		ticket.Position = maxPos + 1
		return repo.Create(ctx, ticket)
	})
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to create ticket", err.Error())
	}

	s.logger.Info("Ticket created",
		zap.Uint("ticket_id", ticket.ID),
		zap.String("column", column.String()),
		zap.Int("position", ticket.Position),
	)
	s.metrics.IncrementTicketCreated(column.String())

	resp := dto.NewTicketResponse(ticket)
	return &resp, nil
}

// GetTicket returns one ticket with its tags and comments
func (s *ticketServiceImpl) GetTicket(ctx context.Context, ticketID uint) (*dto.TicketDetailResponse, error) {
	ticket, err := s.ticketRepo.FindByIDWithTags(ctx, ticketID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewAppError(response.ErrCodeNotFound, "Ticket not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to load ticket", err.Error())
	}

	comments, err := s.commentRepo.FindByTicketID(ctx, ticketID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to load comments", err.Error())
	}

	detail := &dto.TicketDetailResponse{
		TicketResponse: dto.NewTicketResponse(ticket),
		Comments:       make([]dto.CommentResponse, 0, len(comments)),
	}
	for _, comment := range comments {
		detail.Comments = append(detail.Comments, dto.NewCommentResponse(comment))
	}
	return detail, nil
}

// GetBoard returns all tickets grouped by column, ordered by position
func (s *ticketServiceImpl) GetBoard(ctx context.Context) (*dto.BoardResponse, error) {
	tickets, err := s.ticketRepo.FindAllWithTags(ctx)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to load board", err.Error())
	}

	board := &dto.BoardResponse{
		Todo:  make([]dto.TicketResponse, 0),
		Doing: make([]dto.TicketResponse, 0),
		Done:  make([]dto.TicketResponse, 0),
	}
	for _, ticket := range tickets {
		resp := dto.NewTicketResponse(ticket)
		switch ticket.Column {
		case domain.ColumnTodo:
			board.Todo = append(board.Todo, resp)
		case domain.ColumnDoing:
			board.Doing = append(board.Doing, resp)
		case domain.ColumnDone:
			board.Done = append(board.Done, resp)
		}
	}
	board.DoneCount = len(board.Done)
	return board, nil
}

// UpdateTicket applies a partial title/description update. Column and
// position are never touched here.
func (s *ticketServiceImpl) UpdateTicket(ctx context.Context, ticketID uint, req *dto.UpdateTicketRequest) (*dto.TicketResponse, error) {
	if req.Title == nil && req.Description == nil {
		return nil, response.NewAppError(response.ErrCodeValidation, "Nothing to update", "")
	}
	if req.Title != nil && strings.TrimSpace(*req.Title) == "" {
		return nil, response.NewAppError(response.ErrCodeValidation, "Title cannot be empty", "")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	ticket, err := s.ticketRepo.FindByID(ctx, ticketID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewAppError(response.ErrCodeNotFound, "Ticket not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to load ticket", err.Error())
	}

	if req.Title != nil {
		ticket.Title = strings.TrimSpace(*req.Title)
	}
	if req.Description != nil {
		ticket.Description = *req.Description
	}

	if err := s.ticketRepo.Update(ctx, ticket); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to update ticket", err.Error())
	}

	resp := dto.NewTicketResponse(ticket)
	return &resp, nil
}

// DeleteTicket removes a ticket and renumbers its former column so the
// remaining positions stay gap-free. Deleting an unknown id is a no-op.
func (s *ticketServiceImpl) DeleteTicket(ctx context.Context, ticketID uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := s.ticketRepo.Transaction(ctx, func(repo repository.TicketRepository) error {
		ticket, err := repo.FindByID(ctx, ticketID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return err
		}

		if err := repo.Delete(ctx, ticket.ID); err != nil {
			return err
		}
		return repo.ClosePositionGap(ctx, ticket.Column, ticket.Position)
	})
	if err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to delete ticket", err.Error())
	}

	s.metrics.IncrementTicketDeleted()
	return nil
}

// MoveTicket relocates one ticket to a column and index inside a single
// transaction. Step order matters: the source gap is closed first so that a
// same-column move computes the open-gap shift against the already compacted
// ordering. newPosition is clamped to the target column's valid range.
func (s *ticketServiceImpl) MoveTicket(ctx context.Context, req *dto.MoveTicketRequest) error {
	targetColumn := domain.Column(req.TargetColumn)
	if !targetColumn.IsValid() {
		return response.NewAppError(response.ErrCodeValidation, "Invalid target column", req.TargetColumn)
	}
	if req.NewPosition == nil || *req.NewPosition < 0 {
		return response.NewAppError(response.ErrCodeValidation, "newPosition must be a non-negative integer", "")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var sourceColumn domain.Column
	err := s.ticketRepo.Transaction(ctx, func(repo repository.TicketRepository) error {
		ticket, err := repo.FindByID(ctx, req.TicketID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return response.NewAppError(response.ErrCodeNotFound, "Ticket not found", "")
			}
			return err
		}
		sourceColumn = ticket.Column

		if err := repo.ClosePositionGap(ctx, ticket.Column, ticket.Position); err != nil {
			return err
		}

		// Clamp to the target's size with the moving ticket excluded; the
		// append slot is one past the last occupied index
		targetCount, err := repo.CountByColumn(ctx, targetColumn)
		if err != nil {
			return err
		}
		maxIndex := int(targetCount)
		if ticket.Column == targetColumn {
			maxIndex--
		}
		newPosition := *req.NewPosition
		if newPosition > maxIndex {
			newPosition = maxIndex
		}

		if err := repo.OpenPositionGap(ctx, targetColumn, newPosition); err != nil {
			return err
		}
		return repo.Place(ctx, ticket.ID, targetColumn, newPosition)
	})
	if err != nil {
		var appErr *response.AppError
		if errors.As(err, &appErr) {
			return err
		}
		return response.NewAppError(response.ErrCodeInternal, "Failed to move ticket", err.Error())
	}

	s.logger.Info("Ticket moved",
		zap.Uint("ticket_id", req.TicketID),
		zap.String("source", sourceColumn.String()),
		zap.String("target", targetColumn.String()),
	)
	s.metrics.IncrementTicketMoved(sourceColumn.String(), targetColumn.String())
	return nil
}

// ReorderColumn replaces a column's entire ordering from the supplied id
// list. Tickets listed from other columns are pulled in, and every column
// they vacate is renumbered in the same transaction, as is the target, so
// no column on the board is left with duplicate or skipped positions.
// Unknown ids are skipped.
func (s *ticketServiceImpl) ReorderColumn(ctx context.Context, req *dto.ReorderColumnRequest) error {
	column := domain.Column(req.Column)
	if !column.IsValid() {
		return response.NewAppError(response.ErrCodeValidation, "Invalid column", req.Column)
	}
	if len(req.TicketIDs) == 0 {
		return response.NewAppError(response.ErrCodeValidation, "ticketIds must not be empty", "")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	err := s.ticketRepo.Transaction(ctx, func(repo repository.TicketRepository) error {
		vacated := make(map[domain.Column]struct{})

		index := 0
		for _, id := range req.TicketIDs {
			ticket, err := repo.FindByID(ctx, id)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					continue
				}
				return err
			}
			if ticket.Column != column {
				vacated[ticket.Column] = struct{}{}
			}
			if err := repo.Place(ctx, ticket.ID, column, index); err != nil {
				return err
			}
			index++
		}

		// The target is renumbered too, in case the list omitted tickets
		// that were already in the column
		vacated[column] = struct{}{}
		for col := range vacated {
			if err := repo.RenumberColumn(ctx, col); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to reorder column", err.Error())
	}

	s.metrics.IncrementColumnReordered(column.String())
	return nil
}

// ClearDone deletes every ticket in the done column
func (s *ticketServiceImpl) ClearDone(ctx context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	deleted, err := s.ticketRepo.DeleteByColumn(ctx, domain.ColumnDone)
	if err != nil {
		return 0, response.NewAppError(response.ErrCodeInternal, "Failed to clear done column", err.Error())
	}

	s.logger.Info("Done column cleared", zap.Int64("deleted", deleted))
	s.metrics.IncrementDoneCleared()
	return deleted, nil
}
