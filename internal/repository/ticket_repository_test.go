package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"kanban-board-api/internal/database"
	"kanban-board-api/internal/domain"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	db.Exec("PRAGMA foreign_keys = ON")

	if err := database.AutoMigrate(db); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return db
}

func seedTicket(t *testing.T, db *gorm.DB, title string, column domain.Column, position int) *domain.Ticket {
	ticket := &domain.Ticket{Title: title, Column: column, Position: position}
	if err := db.Create(ticket).Error; err != nil {
		t.Fatalf("failed to seed ticket: %v", err)
	}
	return ticket
}

func columnPositions(t *testing.T, db *gorm.DB, column domain.Column) []int {
	var tickets []*domain.Ticket
	require.NoError(t, db.Where("column_name = ?", column).Order("position ASC").Find(&tickets).Error)
	positions := make([]int, 0, len(tickets))
	for _, ticket := range tickets {
		positions = append(positions, ticket.Position)
	}
	return positions
}

func TestTicketRepository_MaxPosition(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTicketRepository(db)
	ctx := context.Background()

	max, err := repo.MaxPosition(ctx, domain.ColumnTodo)
	require.NoError(t, err)
	assert.Equal(t, -1, max)

	seedTicket(t, db, "a", domain.ColumnTodo, 0)
	seedTicket(t, db, "b", domain.ColumnTodo, 1)
	seedTicket(t, db, "c", domain.ColumnDoing, 0)

	max, err = repo.MaxPosition(ctx, domain.ColumnTodo)
	require.NoError(t, err)
	assert.Equal(t, 1, max)
}

func TestTicketRepository_GapShifts(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTicketRepository(db)
	ctx := context.Background()

	seedTicket(t, db, "a", domain.ColumnTodo, 0)
	seedTicket(t, db, "b", domain.ColumnTodo, 1)
	seedTicket(t, db, "c", domain.ColumnTodo, 2)

	// Removing position 0 leaves 1 and 2, which compact to 0 and 1
	require.NoError(t, db.Where("title = ?", "a").Delete(&domain.Ticket{}).Error)
	require.NoError(t, repo.ClosePositionGap(ctx, domain.ColumnTodo, 0))
	assert.Equal(t, []int{0, 1}, columnPositions(t, db, domain.ColumnTodo))

	// Opening a gap at 0 shifts everything up
	require.NoError(t, repo.OpenPositionGap(ctx, domain.ColumnTodo, 0))
	assert.Equal(t, []int{1, 2}, columnPositions(t, db, domain.ColumnTodo))
}

func TestTicketRepository_GapShiftsDoNotCrossColumns(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTicketRepository(db)
	ctx := context.Background()

	seedTicket(t, db, "a", domain.ColumnTodo, 0)
	seedTicket(t, db, "b", domain.ColumnDoing, 0)

	require.NoError(t, repo.OpenPositionGap(ctx, domain.ColumnTodo, 0))

	assert.Equal(t, []int{1}, columnPositions(t, db, domain.ColumnTodo))
	assert.Equal(t, []int{0}, columnPositions(t, db, domain.ColumnDoing))
}

func TestTicketRepository_Place(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTicketRepository(db)
	ctx := context.Background()

	ticket := seedTicket(t, db, "a", domain.ColumnTodo, 0)

	require.NoError(t, repo.Place(ctx, ticket.ID, domain.ColumnDone, 3))

	placed, err := repo.FindByID(ctx, ticket.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.ColumnDone, placed.Column)
	assert.Equal(t, 3, placed.Position)
}

func TestTicketRepository_RenumberColumn(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTicketRepository(db)
	ctx := context.Background()

	// Positions with holes keep their relative order after renumbering
	first := seedTicket(t, db, "a", domain.ColumnTodo, 2)
	second := seedTicket(t, db, "b", domain.ColumnTodo, 5)
	third := seedTicket(t, db, "c", domain.ColumnTodo, 9)

	require.NoError(t, repo.RenumberColumn(ctx, domain.ColumnTodo))

	assert.Equal(t, []int{0, 1, 2}, columnPositions(t, db, domain.ColumnTodo))

	renumbered, err := repo.FindByColumn(ctx, domain.ColumnTodo)
	require.NoError(t, err)
	assert.Equal(t, first.ID, renumbered[0].ID)
	assert.Equal(t, second.ID, renumbered[1].ID)
	assert.Equal(t, third.ID, renumbered[2].ID)
}

func TestTicketRepository_DeleteByColumn(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTicketRepository(db)
	ctx := context.Background()

	seedTicket(t, db, "a", domain.ColumnDone, 0)
	seedTicket(t, db, "b", domain.ColumnDone, 1)
	seedTicket(t, db, "c", domain.ColumnTodo, 0)

	deleted, err := repo.DeleteByColumn(ctx, domain.ColumnDone)
	require.NoError(t, err)
	assert.Equal(t, int64(2), deleted)

	count, err := repo.CountByColumn(ctx, domain.ColumnDone)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)

	count, err = repo.CountByColumn(ctx, domain.ColumnTodo)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestTicketRepository_FindDoneOlderThan(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTicketRepository(db)
	ctx := context.Background()

	old := seedTicket(t, db, "old", domain.ColumnDone, 0)
	require.NoError(t, db.Model(old).UpdateColumn("created_at", time.Now().Add(-48*time.Hour)).Error)
	seedTicket(t, db, "fresh", domain.ColumnDone, 1)
	seedTicket(t, db, "todo", domain.ColumnTodo, 0)

	expired, err := repo.FindDoneOlderThan(ctx, time.Now().Add(-24*time.Hour))
	require.NoError(t, err)
	require.Len(t, expired, 1)
	assert.Equal(t, "old", expired[0].Title)
}

func TestTicketRepository_TransactionRollsBackOnError(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTicketRepository(db)
	ctx := context.Background()

	err := repo.Transaction(ctx, func(txRepo TicketRepository) error {
		if err := txRepo.Create(ctx, &domain.Ticket{Title: "doomed", Column: domain.ColumnTodo}); err != nil {
			return err
		}
		return gorm.ErrInvalidData
	})
	require.Error(t, err)

	count, err := repo.CountByColumn(ctx, domain.ColumnTodo)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}

func TestTicketRepository_DeleteCascadesCommentsAndTags(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTicketRepository(db)
	ctx := context.Background()

	ticket := seedTicket(t, db, "a", domain.ColumnTodo, 0)
	tag := &domain.Tag{Name: "bug", Color: domain.DefaultTagColor}
	require.NoError(t, db.Create(tag).Error)
	require.NoError(t, db.Create(&domain.TicketTag{TicketID: ticket.ID, TagID: tag.ID}).Error)
	require.NoError(t, db.Create(&domain.Comment{TicketID: ticket.ID, Body: "note"}).Error)

	require.NoError(t, repo.Delete(ctx, ticket.ID))

	var linkCount int64
	require.NoError(t, db.Model(&domain.TicketTag{}).Where("ticket_id = ?", ticket.ID).Count(&linkCount).Error)
	assert.Equal(t, int64(0), linkCount)

	var commentCount int64
	require.NoError(t, db.Model(&domain.Comment{}).Where("ticket_id = ?", ticket.ID).Count(&commentCount).Error)
	assert.Equal(t, int64(0), commentCount)

	// The tag itself survives
	var tagCount int64
	require.NoError(t, db.Model(&domain.Tag{}).Count(&tagCount).Error)
	assert.Equal(t, int64(1), tagCount)
}
