package job

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"kanban-board-api/internal/domain"
)

// MockTicketFinder is a mock implementation of the repository side of the job
type MockTicketFinder struct {
	mock.Mock
}

func (m *MockTicketFinder) FindDoneOlderThan(ctx context.Context, cutoff time.Time) ([]*domain.Ticket, error) {
	args := m.Called(ctx, cutoff)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Ticket), args.Error(1)
}

// MockTicketDeleter is a mock implementation of the service side of the job
type MockTicketDeleter struct {
	mock.Mock
}

func (m *MockTicketDeleter) DeleteTicket(ctx context.Context, ticketID uint) error {
	args := m.Called(ctx, ticketID)
	return args.Error(0)
}

func TestRetentionJob_Run_DeletesExpiredTickets(t *testing.T) {
	mockFinder := new(MockTicketFinder)
	mockDeleter := new(MockTicketDeleter)

	job := NewRetentionJob(mockFinder, mockDeleter, nil, zap.NewNop(), 30*24*time.Hour)

	expired := []*domain.Ticket{
		{ID: 1, Column: domain.ColumnDone, Position: 0},
		{ID: 2, Column: domain.ColumnDone, Position: 1},
	}
	mockFinder.On("FindDoneOlderThan", mock.Anything, mock.Anything).Return(expired, nil)
	mockDeleter.On("DeleteTicket", mock.Anything, uint(1)).Return(nil)
	mockDeleter.On("DeleteTicket", mock.Anything, uint(2)).Return(nil)

	job.Run()

	mockFinder.AssertExpectations(t)
	mockDeleter.AssertExpectations(t)
}

func TestRetentionJob_Run_NoExpiredTickets(t *testing.T) {
	mockFinder := new(MockTicketFinder)
	mockDeleter := new(MockTicketDeleter)

	job := NewRetentionJob(mockFinder, mockDeleter, nil, zap.NewNop(), 30*24*time.Hour)

	mockFinder.On("FindDoneOlderThan", mock.Anything, mock.Anything).Return([]*domain.Ticket{}, nil)

	job.Run()

	mockFinder.AssertExpectations(t)
	mockDeleter.AssertNotCalled(t, "DeleteTicket")
}

func TestRetentionJob_Run_FindErrorStopsPass(t *testing.T) {
	mockFinder := new(MockTicketFinder)
	mockDeleter := new(MockTicketDeleter)

	job := NewRetentionJob(mockFinder, mockDeleter, nil, zap.NewNop(), 30*24*time.Hour)

	mockFinder.On("FindDoneOlderThan", mock.Anything, mock.Anything).Return(nil, errors.New("database error"))

	job.Run()

	mockDeleter.AssertNotCalled(t, "DeleteTicket")
}

func TestRetentionJob_Run_ContinuesPastDeleteFailure(t *testing.T) {
	mockFinder := new(MockTicketFinder)
	mockDeleter := new(MockTicketDeleter)

	job := NewRetentionJob(mockFinder, mockDeleter, nil, zap.NewNop(), 30*24*time.Hour)

	expired := []*domain.Ticket{
		{ID: 1, Column: domain.ColumnDone, Position: 0},
		{ID: 2, Column: domain.ColumnDone, Position: 1},
	}
	mockFinder.On("FindDoneOlderThan", mock.Anything, mock.Anything).Return(expired, nil)
	mockDeleter.On("DeleteTicket", mock.Anything, uint(1)).Return(errors.New("locked"))
	mockDeleter.On("DeleteTicket", mock.Anything, uint(2)).Return(nil)

	job.Run()

	mockFinder.AssertExpectations(t)
	mockDeleter.AssertExpectations(t)
}
