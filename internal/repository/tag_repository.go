package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"kanban-board-api/internal/domain"
)

// TagRepository defines the interface for tag data access, including the
// ticket-tag association rows
type TagRepository interface {
	Create(ctx context.Context, tag *domain.Tag) error
	FindByID(ctx context.Context, id uint) (*domain.Tag, error)
	FindByName(ctx context.Context, name string) (*domain.Tag, error)
	FindAll(ctx context.Context) ([]*domain.Tag, error)
	FindByTicketID(ctx context.Context, ticketID uint) ([]*domain.Tag, error)
	Delete(ctx context.Context, id uint) error
	AttachToTicket(ctx context.Context, ticketID, tagID uint) error
	DetachFromTicket(ctx context.Context, ticketID, tagID uint) error
}

// tagRepositoryImpl is the GORM implementation of TagRepository
type tagRepositoryImpl struct {
	db *gorm.DB
}

// NewTagRepository creates a new instance of TagRepository
func NewTagRepository(db *gorm.DB) TagRepository {
	return &tagRepositoryImpl{db: db}
}

// Create creates a new tag
func (r *tagRepositoryImpl) Create(ctx context.Context, tag *domain.Tag) error {
	if err := r.db.WithContext(ctx).Create(tag).Error; err != nil {
		return err
	}
	return nil
}

// FindByID finds a tag by its ID
func (r *tagRepositoryImpl) FindByID(ctx context.Context, id uint) (*domain.Tag, error) {
	var tag domain.Tag
	if err := r.db.WithContext(ctx).First(&tag, id).Error; err != nil {
		return nil, err
	}
	return &tag, nil
}

// FindByName finds a tag by its unique name
func (r *tagRepositoryImpl) FindByName(ctx context.Context, name string) (*domain.Tag, error) {
	var tag domain.Tag
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&tag).Error; err != nil {
		return nil, err
	}
	return &tag, nil
}

// FindAll returns every tag ordered by name
func (r *tagRepositoryImpl) FindAll(ctx context.Context) ([]*domain.Tag, error) {
	var tags []*domain.Tag
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&tags).Error; err != nil {
		return nil, err
	}
	return tags, nil
}

// FindByTicketID returns the tags attached to one ticket
func (r *tagRepositoryImpl) FindByTicketID(ctx context.Context, ticketID uint) ([]*domain.Tag, error) {
	var tags []*domain.Tag
	if err := r.db.WithContext(ctx).
		Joins("JOIN ticket_tags ON ticket_tags.tag_id = tags.id").
		Where("ticket_tags.ticket_id = ?", ticketID).
		Order("tags.name ASC").
		Find(&tags).Error; err != nil {
		return nil, err
	}
	return tags, nil
}

// Delete removes a tag; association rows cascade
func (r *tagRepositoryImpl) Delete(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Delete(&domain.Tag{}, id).Error; err != nil {
		return err
	}
	return nil
}

// AttachToTicket inserts an association row. A duplicate insert is a no-op,
// so attaching is idempotent from the caller's perspective.
func (r *tagRepositoryImpl) AttachToTicket(ctx context.Context, ticketID, tagID uint) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&domain.TicketTag{TicketID: ticketID, TagID: tagID}).Error
}

// DetachFromTicket removes an association row. Removing an absent association
// is a silent no-op.
func (r *tagRepositoryImpl) DetachFromTicket(ctx context.Context, ticketID, tagID uint) error {
	return r.db.WithContext(ctx).
		Where("ticket_id = ? AND tag_id = ?", ticketID, tagID).
		Delete(&domain.TicketTag{}).Error
}
