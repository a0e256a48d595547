package domain

import "time"

// Ticket represents a card on the kanban board
// Within each column, ticket positions form a contiguous zero-based sequence
type Ticket struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Title       string    `gorm:"type:varchar(255);not null" json:"title"`
	Description string    `gorm:"type:text;not null;default:''" json:"description"`
	Column      Column    `gorm:"column:column_name;type:varchar(20);not null;default:'todo';index:idx_tickets_column_position,priority:1" json:"column"`
	Position    int       `gorm:"type:int;not null;default:0;index:idx_tickets_column_position,priority:2" json:"position"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	Tags        []Tag     `gorm:"many2many:ticket_tags;constraint:OnDelete:CASCADE" json:"tags,omitempty"`
	Comments    []Comment `gorm:"foreignKey:TicketID;constraint:OnDelete:CASCADE" json:"comments,omitempty"`
}

// TableName specifies the table name for Ticket
func (Ticket) TableName() string {
	return "tickets"
}
