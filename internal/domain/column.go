package domain

// Column represents one of the three fixed workflow stages a ticket moves through
type Column string

// Column constants
const (
	ColumnTodo  Column = "todo"
	ColumnDoing Column = "doing"
	ColumnDone  Column = "done"
)

// Columns lists all valid columns in display order
func Columns() []Column {
	return []Column{ColumnTodo, ColumnDoing, ColumnDone}
}

// IsValid reports whether c is one of the three fixed columns
func (c Column) IsValid() bool {
	switch c {
	case ColumnTodo, ColumnDoing, ColumnDone:
		return true
	}
	return false
}

// String returns the column identifier as a plain string
func (c Column) String() string {
	return string(c)
}
