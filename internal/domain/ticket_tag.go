package domain

// TicketTag is the join row between tickets and tags. Membership is a plain
// set: the composite key makes duplicates impossible and rows cascade away
// with either parent.
type TicketTag struct {
	TicketID uint `gorm:"primaryKey" json:"ticket_id"`
	TagID    uint `gorm:"primaryKey" json:"tag_id"`
}

// TableName specifies the table name for TicketTag
func (TicketTag) TableName() string {
	return "ticket_tags"
}
