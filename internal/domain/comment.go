package domain

import "time"

// Comment represents a comment on a ticket, ordered by creation time only
type Comment struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	TicketID  uint      `gorm:"not null;index:idx_comments_ticket_id" json:"ticket_id"`
	Body      string    `gorm:"type:text;not null" json:"body"`
	CreatedAt time.Time `json:"created_at"`
	Ticket    Ticket    `gorm:"foreignKey:TicketID;constraint:OnDelete:CASCADE" json:"ticket,omitempty"`
}

// TableName specifies the table name for Comment
func (Comment) TableName() string {
	return "comments"
}
