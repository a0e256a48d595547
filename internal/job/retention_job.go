package job

import (
	"context"
	"time"

	"go.uber.org/zap"

	"kanban-board-api/internal/domain"
	"kanban-board-api/internal/metrics"
)

// TicketFinder locates done tickets past their retention age
type TicketFinder interface {
	FindDoneOlderThan(ctx context.Context, cutoff time.Time) ([]*domain.Ticket, error)
}

// TicketDeleter removes one ticket and renumbers its column
type TicketDeleter interface {
	DeleteTicket(ctx context.Context, ticketID uint) error
}

// RetentionJob prunes done tickets older than the configured age. Deletion
// goes through the ticket service so the done column is renumbered and the
// board mutex is honored.
type RetentionJob struct {
	finder  TicketFinder
	deleter TicketDeleter
	metrics *metrics.Metrics
	logger  *zap.Logger
	maxAge  time.Duration
}

// NewRetentionJob creates a new RetentionJob instance
func NewRetentionJob(
	finder TicketFinder,
	deleter TicketDeleter,
	m *metrics.Metrics,
	logger *zap.Logger,
	maxAge time.Duration,
) *RetentionJob {
	return &RetentionJob{
		finder:  finder,
		deleter: deleter,
		metrics: m,
		logger:  logger,
		maxAge:  maxAge,
	}
}

// Run executes one retention pass
func (j *RetentionJob) Run() {
	ctx := context.Background()
	cutoff := time.Now().UTC().Add(-j.maxAge)

	expired, err := j.finder.FindDoneOlderThan(ctx, cutoff)
	if err != nil {
		j.logger.Error("Failed to find expired done tickets", zap.Error(err))
		return
	}

	if len(expired) == 0 {
		return
	}

	j.logger.Info("Pruning expired done tickets",
		zap.Int("count", len(expired)),
		zap.Time("cutoff", cutoff),
	)

	var deleted int64
	for _, ticket := range expired {
		if err := j.deleter.DeleteTicket(ctx, ticket.ID); err != nil {
			j.logger.Error("Failed to delete expired ticket",
				zap.Uint("ticket_id", ticket.ID),
				zap.Error(err),
			)
			continue
		}
		deleted++
	}

	j.metrics.AddRetentionDeleted(deleted)
	j.logger.Info("Retention pass completed",
		zap.Int64("deleted", deleted),
		zap.Int("found", len(expired)),
	)
}
