package metrics

// IncrementTicketCreated increments the creation counter for a column
func (m *Metrics) IncrementTicketCreated(column string) {
	m.safeExecute("IncrementTicketCreated", func() {
		m.TicketCreatedTotal.WithLabelValues(column).Inc()
	})
}

// IncrementTicketMoved increments the move counter for a source/target pair
func (m *Metrics) IncrementTicketMoved(source, target string) {
	m.safeExecute("IncrementTicketMoved", func() {
		m.TicketMovedTotal.WithLabelValues(source, target).Inc()
	})
}

// IncrementColumnReordered increments the reorder counter for a column
func (m *Metrics) IncrementColumnReordered(column string) {
	m.safeExecute("IncrementColumnReordered", func() {
		m.ColumnReorderedTotal.WithLabelValues(column).Inc()
	})
}

// IncrementTicketDeleted increments the ticket deletion counter
func (m *Metrics) IncrementTicketDeleted() {
	m.safeExecute("IncrementTicketDeleted", func() {
		m.TicketDeletedTotal.Inc()
	})
}

// IncrementCommentCreated increments the comment creation counter
func (m *Metrics) IncrementCommentCreated() {
	m.safeExecute("IncrementCommentCreated", func() {
		m.CommentCreatedTotal.Inc()
	})
}

// IncrementDoneCleared increments the clear-done counter
func (m *Metrics) IncrementDoneCleared() {
	m.safeExecute("IncrementDoneCleared", func() {
		m.DoneClearedTotal.Inc()
	})
}

// AddRetentionDeleted adds to the retention job deletion counter
func (m *Metrics) AddRetentionDeleted(count int64) {
	m.safeExecute("AddRetentionDeleted", func() {
		m.RetentionDeletedTotal.Add(float64(count))
	})
}

// SetTicketsPerColumn sets the per-column ticket gauge
func (m *Metrics) SetTicketsPerColumn(column string, count int64) {
	m.safeExecute("SetTicketsPerColumn", func() {
		m.TicketsPerColumn.WithLabelValues(column).Set(float64(count))
	})
}

// SetTagsTotal sets the total tags gauge
func (m *Metrics) SetTagsTotal(count int64) {
	m.safeExecute("SetTagsTotal", func() {
		m.TagsTotal.Set(float64(count))
	})
}
