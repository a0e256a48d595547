package service

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"kanban-board-api/internal/domain"
	"kanban-board-api/internal/repository"
)

// MockTicketRepository is a mock implementation of TicketRepository
type MockTicketRepository struct {
	mock.Mock
}

func (m *MockTicketRepository) Create(ctx context.Context, ticket *domain.Ticket) error {
	args := m.Called(ctx, ticket)
	return args.Error(0)
}

func (m *MockTicketRepository) FindByID(ctx context.Context, id uint) (*domain.Ticket, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Ticket), args.Error(1)
}

func (m *MockTicketRepository) FindByIDWithTags(ctx context.Context, id uint) (*domain.Ticket, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Ticket), args.Error(1)
}

func (m *MockTicketRepository) FindAllWithTags(ctx context.Context) ([]*domain.Ticket, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Ticket), args.Error(1)
}

func (m *MockTicketRepository) FindByColumn(ctx context.Context, column domain.Column) ([]*domain.Ticket, error) {
	args := m.Called(ctx, column)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Ticket), args.Error(1)
}

func (m *MockTicketRepository) FindDoneOlderThan(ctx context.Context, cutoff time.Time) ([]*domain.Ticket, error) {
	args := m.Called(ctx, cutoff)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Ticket), args.Error(1)
}

func (m *MockTicketRepository) MaxPosition(ctx context.Context, column domain.Column) (int, error) {
	args := m.Called(ctx, column)
	return args.Int(0), args.Error(1)
}

func (m *MockTicketRepository) CountByColumn(ctx context.Context, column domain.Column) (int64, error) {
	args := m.Called(ctx, column)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockTicketRepository) Update(ctx context.Context, ticket *domain.Ticket) error {
	args := m.Called(ctx, ticket)
	return args.Error(0)
}

func (m *MockTicketRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockTicketRepository) DeleteByColumn(ctx context.Context, column domain.Column) (int64, error) {
	args := m.Called(ctx, column)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockTicketRepository) ClosePositionGap(ctx context.Context, column domain.Column, afterPosition int) error {
	args := m.Called(ctx, column, afterPosition)
	return args.Error(0)
}

func (m *MockTicketRepository) OpenPositionGap(ctx context.Context, column domain.Column, fromPosition int) error {
	args := m.Called(ctx, column, fromPosition)
	return args.Error(0)
}

func (m *MockTicketRepository) Place(ctx context.Context, id uint, column domain.Column, position int) error {
	args := m.Called(ctx, id, column, position)
	return args.Error(0)
}

func (m *MockTicketRepository) RenumberColumn(ctx context.Context, column domain.Column) error {
	args := m.Called(ctx, column)
	return args.Error(0)
}

// Transaction runs the callback against the mock itself so tests can set
// expectations on the inner repository calls directly.
func (m *MockTicketRepository) Transaction(ctx context.Context, fn func(repo repository.TicketRepository) error) error {
	return fn(m)
}

// MockTagRepository is a mock implementation of TagRepository
type MockTagRepository struct {
	mock.Mock
}

func (m *MockTagRepository) Create(ctx context.Context, tag *domain.Tag) error {
	args := m.Called(ctx, tag)
	return args.Error(0)
}

func (m *MockTagRepository) FindByID(ctx context.Context, id uint) (*domain.Tag, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Tag), args.Error(1)
}

func (m *MockTagRepository) FindByName(ctx context.Context, name string) (*domain.Tag, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Tag), args.Error(1)
}

func (m *MockTagRepository) FindAll(ctx context.Context) ([]*domain.Tag, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Tag), args.Error(1)
}

func (m *MockTagRepository) FindByTicketID(ctx context.Context, ticketID uint) ([]*domain.Tag, error) {
	args := m.Called(ctx, ticketID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Tag), args.Error(1)
}

func (m *MockTagRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockTagRepository) AttachToTicket(ctx context.Context, ticketID, tagID uint) error {
	args := m.Called(ctx, ticketID, tagID)
	return args.Error(0)
}

func (m *MockTagRepository) DetachFromTicket(ctx context.Context, ticketID, tagID uint) error {
	args := m.Called(ctx, ticketID, tagID)
	return args.Error(0)
}

// MockCommentRepository is a mock implementation of CommentRepository
type MockCommentRepository struct {
	mock.Mock
}

func (m *MockCommentRepository) Create(ctx context.Context, comment *domain.Comment) error {
	args := m.Called(ctx, comment)
	return args.Error(0)
}

func (m *MockCommentRepository) FindByID(ctx context.Context, id uint) (*domain.Comment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Comment), args.Error(1)
}

func (m *MockCommentRepository) FindByTicketID(ctx context.Context, ticketID uint) ([]*domain.Comment, error) {
	args := m.Called(ctx, ticketID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Comment), args.Error(1)
}

func (m *MockCommentRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
