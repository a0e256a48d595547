package domain

// DefaultTagColor is applied when a tag is created without an explicit color
const DefaultTagColor = "#f179af"

// Tag represents a label that can be attached to any number of tickets
type Tag struct {
	ID      uint     `gorm:"primaryKey;autoIncrement" json:"id"`
	Name    string   `gorm:"type:varchar(100);not null;uniqueIndex:uq_tags_name" json:"name"`
	Color   string   `gorm:"type:varchar(20);not null;default:'#f179af'" json:"color"`
	Tickets []Ticket `gorm:"many2many:ticket_tags;constraint:OnDelete:CASCADE" json:"tickets,omitempty"`
}

// TableName specifies the table name for Tag
func (Tag) TableName() string {
	return "tags"
}
