package metrics

import (
	"context"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// BusinessMetricsCollector refreshes the board gauges periodically
type BusinessMetricsCollector struct {
	db      *gorm.DB
	metrics *Metrics
	logger  *zap.Logger
	ticker  *time.Ticker
	done    chan bool
}

// NewBusinessMetricsCollector creates a new collector
func NewBusinessMetricsCollector(db *gorm.DB, metrics *Metrics, logger *zap.Logger) *BusinessMetricsCollector {
	return &BusinessMetricsCollector{
		db:      db,
		metrics: metrics,
		logger:  logger,
		ticker:  time.NewTicker(60 * time.Second),
		done:    make(chan bool),
	}
}

// Start begins collecting metrics
func (c *BusinessMetricsCollector) Start() {
	go func() {
		c.collect()

		for {
			select {
			case <-c.ticker.C:
				c.collect()
			case <-c.done:
				return
			}
		}
	}()
}

// Stop stops the collector
func (c *BusinessMetricsCollector) Stop() {
	c.ticker.Stop()
	c.done <- true
}

// collect gathers the per-column ticket counts and the tag count
func (c *BusinessMetricsCollector) collect() {
	defer func() {
		if r := recover(); r != nil {
			c.logger.Error("Panic in business metrics collection",
				zap.Any("panic", r),
			)
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	type columnCount struct {
		ColumnName string
		Count      int64
	}

	var counts []columnCount
	if err := c.db.WithContext(ctx).
		Table("tickets").
		Select("column_name, COUNT(*) as count").
		Group("column_name").
		Scan(&counts).Error; err != nil {
		c.logger.Error("Failed to count tickets per column", zap.Error(err))
	} else {
		// Reset all three so emptied columns read zero
		for _, column := range []string{"todo", "doing", "done"} {
			c.metrics.SetTicketsPerColumn(column, 0)
		}
		for _, cc := range counts {
			c.metrics.SetTicketsPerColumn(cc.ColumnName, cc.Count)
		}
	}

	var tagCount int64
	if err := c.db.WithContext(ctx).Table("tags").Count(&tagCount).Error; err != nil {
		c.logger.Error("Failed to count tags", zap.Error(err))
	} else {
		c.metrics.SetTagsTotal(tagCount)
	}
}
