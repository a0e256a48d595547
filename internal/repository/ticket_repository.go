package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"kanban-board-api/internal/domain"
)

// TicketRepository defines the interface for ticket data access, including
// the position-shift queries the ordering engine is built on
type TicketRepository interface {
	Create(ctx context.Context, ticket *domain.Ticket) error
	FindByID(ctx context.Context, id uint) (*domain.Ticket, error)
	FindByIDWithTags(ctx context.Context, id uint) (*domain.Ticket, error)
	FindAllWithTags(ctx context.Context) ([]*domain.Ticket, error)
	FindByColumn(ctx context.Context, column domain.Column) ([]*domain.Ticket, error)
	FindDoneOlderThan(ctx context.Context, cutoff time.Time) ([]*domain.Ticket, error)
	MaxPosition(ctx context.Context, column domain.Column) (int, error)
	CountByColumn(ctx context.Context, column domain.Column) (int64, error)
	Update(ctx context.Context, ticket *domain.Ticket) error
	Delete(ctx context.Context, id uint) error
	DeleteByColumn(ctx context.Context, column domain.Column) (int64, error)
	ClosePositionGap(ctx context.Context, column domain.Column, afterPosition int) error
	OpenPositionGap(ctx context.Context, column domain.Column, fromPosition int) error
	Place(ctx context.Context, id uint, column domain.Column, position int) error
	RenumberColumn(ctx context.Context, column domain.Column) error
	Transaction(ctx context.Context, fn func(repo TicketRepository) error) error
}

// ticketRepositoryImpl is the GORM implementation of TicketRepository
type ticketRepositoryImpl struct {
	db *gorm.DB
}

// NewTicketRepository creates a new instance of TicketRepository
func NewTicketRepository(db *gorm.DB) TicketRepository {
	return &ticketRepositoryImpl{db: db}
}

// Create creates a new ticket
func (r *ticketRepositoryImpl) Create(ctx context.Context, ticket *domain.Ticket) error {
	if err := r.db.WithContext(ctx).Create(ticket).Error; err != nil {
		return err
	}
	return nil
}

// FindByID finds a ticket by its ID
func (r *ticketRepositoryImpl) FindByID(ctx context.Context, id uint) (*domain.Ticket, error) {
	var ticket domain.Ticket
	if err := r.db.WithContext(ctx).First(&ticket, id).Error; err != nil {
		return nil, err
	}
	return &ticket, nil
}

// FindByIDWithTags finds a ticket by its ID with tags eager-loaded
func (r *ticketRepositoryImpl) FindByIDWithTags(ctx context.Context, id uint) (*domain.Ticket, error) {
	var ticket domain.Ticket
	if err := r.db.WithContext(ctx).
		Preload("Tags", func(db *gorm.DB) *gorm.DB {
			return db.Order("tags.name ASC")
		}).
		First(&ticket, id).Error; err != nil {
		return nil, err
	}
	return &ticket, nil
}

// FindAllWithTags returns every ticket ordered by position with tags loaded
func (r *ticketRepositoryImpl) FindAllWithTags(ctx context.Context) ([]*domain.Ticket, error) {
	var tickets []*domain.Ticket
	if err := r.db.WithContext(ctx).
		Preload("Tags", func(db *gorm.DB) *gorm.DB {
			return db.Order("tags.name ASC")
		}).
		Order("position ASC").
		Find(&tickets).Error; err != nil {
		return nil, err
	}
	return tickets, nil
}

// FindByColumn returns the tickets of one column ordered by position
func (r *ticketRepositoryImpl) FindByColumn(ctx context.Context, column domain.Column) ([]*domain.Ticket, error) {
	var tickets []*domain.Ticket
	if err := r.db.WithContext(ctx).
		Where("column_name = ?", column).
		Order("position ASC").
		Find(&tickets).Error; err != nil {
		return nil, err
	}
	return tickets, nil
}

// FindDoneOlderThan returns done tickets created before the cutoff
func (r *ticketRepositoryImpl) FindDoneOlderThan(ctx context.Context, cutoff time.Time) ([]*domain.Ticket, error) {
	var tickets []*domain.Ticket
	if err := r.db.WithContext(ctx).
		Where("column_name = ? AND created_at < ?", domain.ColumnDone, cutoff).
		Order("position ASC").
		Find(&tickets).Error; err != nil {
		return nil, err
	}
	return tickets, nil
}

// MaxPosition returns the highest position in a column, or -1 if it is empty
func (r *ticketRepositoryImpl) MaxPosition(ctx context.Context, column domain.Column) (int, error) {
	var max int
	if err := r.db.WithContext(ctx).
		Model(&domain.Ticket{}).
		Where("column_name = ?", column).
		Select("COALESCE(MAX(position), -1)").
		Scan(&max).Error; err != nil {
		return 0, err
	}
	return max, nil
}

// CountByColumn returns the number of tickets in a column
func (r *ticketRepositoryImpl) CountByColumn(ctx context.Context, column domain.Column) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&domain.Ticket{}).
		Where("column_name = ?", column).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Update saves changed ticket fields
func (r *ticketRepositoryImpl) Update(ctx context.Context, ticket *domain.Ticket) error {
	if err := r.db.WithContext(ctx).Save(ticket).Error; err != nil {
		return err
	}
	return nil
}

// Delete removes a ticket; tag associations and comments cascade
func (r *ticketRepositoryImpl) Delete(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Delete(&domain.Ticket{}, id).Error; err != nil {
		return err
	}
	return nil
}

// DeleteByColumn removes every ticket in a column and reports how many
func (r *ticketRepositoryImpl) DeleteByColumn(ctx context.Context, column domain.Column) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("column_name = ?", column).
		Delete(&domain.Ticket{})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

// ClosePositionGap decrements every position greater than afterPosition,
// closing the hole a ticket leaves behind
func (r *ticketRepositoryImpl) ClosePositionGap(ctx context.Context, column domain.Column, afterPosition int) error {
	return r.db.WithContext(ctx).
		Model(&domain.Ticket{}).
		Where("column_name = ? AND position > ?", column, afterPosition).
		UpdateColumn("position", gorm.Expr("position - 1")).Error
}

// OpenPositionGap increments every position at or above fromPosition,
// making room for an arriving ticket
func (r *ticketRepositoryImpl) OpenPositionGap(ctx context.Context, column domain.Column, fromPosition int) error {
	return r.db.WithContext(ctx).
		Model(&domain.Ticket{}).
		Where("column_name = ? AND position >= ?", column, fromPosition).
		UpdateColumn("position", gorm.Expr("position + 1")).Error
}

// Place writes a ticket's column and position directly
func (r *ticketRepositoryImpl) Place(ctx context.Context, id uint, column domain.Column, position int) error {
	return r.db.WithContext(ctx).
		Model(&domain.Ticket{}).
		Where("id = ?", id).
		UpdateColumns(map[string]interface{}{
			"column_name": column,
			"position":    position,
		}).Error
}

// RenumberColumn rewrites a column's positions to the contiguous sequence
// 0..n-1, keeping the current relative order
func (r *ticketRepositoryImpl) RenumberColumn(ctx context.Context, column domain.Column) error {
	var tickets []*domain.Ticket
	if err := r.db.WithContext(ctx).
		Where("column_name = ?", column).
		Order("position ASC").
		Find(&tickets).Error; err != nil {
		return err
	}

	for i, ticket := range tickets {
		if ticket.Position == i {
			continue
		}
		if err := r.db.WithContext(ctx).
			Model(&domain.Ticket{}).
			Where("id = ?", ticket.ID).
			UpdateColumn("position", i).Error; err != nil {
			return err
		}
	}
	return nil
}

// Transaction runs fn against a repository bound to one database transaction.
// Any error rolls the whole transaction back.
func (r *ticketRepositoryImpl) Transaction(ctx context.Context, fn func(repo TicketRepository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&ticketRepositoryImpl{db: tx})
	})
}
