package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"kanban-board-api/internal/domain"
	"kanban-board-api/internal/dto"
	"kanban-board-api/internal/response"
)

func newCommentServiceForTest(commentRepo *MockCommentRepository, ticketRepo *MockTicketRepository) CommentService {
	return NewCommentService(commentRepo, ticketRepo, nil, zap.NewNop())
}

func TestCreateComment_TrimsBodyAndCreates(t *testing.T) {
	mockComments := new(MockCommentRepository)
	mockTickets := new(MockTicketRepository)
	svc := newCommentServiceForTest(mockComments, mockTickets)

	mockTickets.On("FindByID", mock.Anything, uint(5)).Return(&domain.Ticket{ID: 5}, nil)
	mockComments.On("Create", mock.Anything, mock.MatchedBy(func(comment *domain.Comment) bool {
		return comment.TicketID == 5 && comment.Body == "looks good to me"
	})).Return(nil)

	resp, err := svc.CreateComment(context.Background(), 5, &dto.CreateCommentRequest{
		Body: "  looks good to me  ",
	})

	assert.NoError(t, err)
	assert.Equal(t, "looks good to me", resp.Body)
	mockComments.AssertExpectations(t)
}

func TestCreateComment_BlankBodyRejected(t *testing.T) {
	mockComments := new(MockCommentRepository)
	mockTickets := new(MockTicketRepository)
	svc := newCommentServiceForTest(mockComments, mockTickets)

	_, err := svc.CreateComment(context.Background(), 5, &dto.CreateCommentRequest{Body: "  "})

	var appErr *response.AppError
	assert.ErrorAs(t, err, &appErr)
	assert.Equal(t, response.ErrCodeValidation, appErr.Code)
	mockTickets.AssertNotCalled(t, "FindByID")
}

func TestCreateComment_UnknownTicketReturnsNotFound(t *testing.T) {
	mockComments := new(MockCommentRepository)
	mockTickets := new(MockTicketRepository)
	svc := newCommentServiceForTest(mockComments, mockTickets)

	mockTickets.On("FindByID", mock.Anything, uint(99)).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.CreateComment(context.Background(), 99, &dto.CreateCommentRequest{Body: "hello"})

	var appErr *response.AppError
	assert.ErrorAs(t, err, &appErr)
	assert.Equal(t, response.ErrCodeNotFound, appErr.Code)
	mockComments.AssertNotCalled(t, "Create")
}

func TestListComments_ReturnsNewestFirst(t *testing.T) {
	mockComments := new(MockCommentRepository)
	mockTickets := new(MockTicketRepository)
	svc := newCommentServiceForTest(mockComments, mockTickets)

	mockTickets.On("FindByID", mock.Anything, uint(3)).Return(&domain.Ticket{ID: 3}, nil)
	mockComments.On("FindByTicketID", mock.Anything, uint(3)).Return([]*domain.Comment{
		{ID: 2, TicketID: 3, Body: "second"},
		{ID: 1, TicketID: 3, Body: "first"},
	}, nil)

	resp, err := svc.ListComments(context.Background(), 3)

	assert.NoError(t, err)
	assert.Len(t, resp, 2)
	assert.Equal(t, "second", resp[0].Body)
}

func TestListComments_UnknownTicketReturnsNotFound(t *testing.T) {
	mockComments := new(MockCommentRepository)
	mockTickets := new(MockTicketRepository)
	svc := newCommentServiceForTest(mockComments, mockTickets)

	mockTickets.On("FindByID", mock.Anything, uint(404)).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.ListComments(context.Background(), 404)

	var appErr *response.AppError
	assert.ErrorAs(t, err, &appErr)
	assert.Equal(t, response.ErrCodeNotFound, appErr.Code)
}

func TestDeleteComment_Succeeds(t *testing.T) {
	mockComments := new(MockCommentRepository)
	svc := newCommentServiceForTest(mockComments, new(MockTicketRepository))

	mockComments.On("Delete", mock.Anything, uint(8)).Return(nil)

	err := svc.DeleteComment(context.Background(), 8)

	assert.NoError(t, err)
	mockComments.AssertExpectations(t)
}
