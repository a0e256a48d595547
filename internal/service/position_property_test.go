package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"kanban-board-api/internal/database"
	"kanban-board-api/internal/domain"
	"kanban-board-api/internal/dto"
	"kanban-board-api/internal/repository"
)

// For any sequence of board mutations, every column's positions must remain
// the contiguous sequence 0..n-1 with no duplicates and no holes.
func TestProperty_PositionsStayContiguous(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 30
	properties := gopter.NewProperties(parameters)

	properties.Property("Random mutation sequences keep every column gap-free", prop.ForAll(
		func(opSeeds []int) bool {
			db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
			if err != nil {
				t.Logf("failed to open database: %v", err)
				return false
			}
			db.Exec("PRAGMA foreign_keys = ON")
			if err := database.AutoMigrate(db); err != nil {
				t.Logf("failed to migrate: %v", err)
				return false
			}

			ticketRepo := repository.NewTicketRepository(db)
			commentRepo := repository.NewCommentRepository(db)
			svc := NewTicketService(ticketRepo, commentRepo, nil, zap.NewNop())
			ctx := context.Background()

			for step, seed := range opSeeds {
				if seed < 0 {
					seed = -seed
				}
				if err := applyRandomOp(ctx, svc, ticketRepo, seed); err != nil {
					t.Logf("step %d failed: %v", step, err)
					return false
				}
				if err := assertColumnsContiguous(db); err != nil {
					t.Logf("invariant broken after step %d (seed %d): %v", step, seed, err)
					return false
				}
			}
			return true
		},
		gen.SliceOfN(25, gen.IntRange(0, 1<<20)),
	))

	properties.TestingRun(t)
}

// applyRandomOp decodes one seed into a board mutation. Validation errors
// from intentionally odd inputs are fine; anything else fails the run.
func applyRandomOp(ctx context.Context, svc TicketService, ticketRepo repository.TicketRepository, seed int) error {
	columns := domain.Columns()
	tickets, err := ticketRepo.FindAllWithTags(ctx)
	if err != nil {
		return err
	}

	switch seed % 5 {
	case 0:
		_, err := svc.CreateTicket(ctx, &dto.CreateTicketRequest{
			Title:  fmt.Sprintf("ticket-%d", seed),
			Column: columns[seed/5%3].String(),
		})
		return err
	case 1:
		if len(tickets) == 0 {
			return nil
		}
		ticket := tickets[seed/5%len(tickets)]
		position := seed / 15 % (len(tickets) + 2)
		return svc.MoveTicket(ctx, &dto.MoveTicketRequest{
			TicketID:     ticket.ID,
			TargetColumn: columns[seed/7%3].String(),
			NewPosition:  &position,
		})
	case 2:
		if len(tickets) == 0 {
			return nil
		}
		// Reverse every ticket into one column, occasionally with a bogus id
		target := columns[seed/5%3]
		ids := make([]uint, 0, len(tickets)+1)
		for i := len(tickets) - 1; i >= 0; i-- {
			ids = append(ids, tickets[i].ID)
		}
		if seed%2 == 0 {
			ids = append(ids, 999999)
		}
		return svc.ReorderColumn(ctx, &dto.ReorderColumnRequest{
			Column:    target.String(),
			TicketIDs: ids,
		})
	case 3:
		if len(tickets) == 0 {
			return nil
		}
		return svc.DeleteTicket(ctx, tickets[seed/5%len(tickets)].ID)
	default:
		_, err := svc.ClearDone(ctx)
		return err
	}
}

func assertColumnsContiguous(db *gorm.DB) error {
	for _, column := range domain.Columns() {
		var positions []int
		if err := db.Model(&domain.Ticket{}).
			Where("column_name = ?", column).
			Order("position ASC").
			Pluck("position", &positions).Error; err != nil {
			return err
		}
		for i, position := range positions {
			if position != i {
				return fmt.Errorf("column %s has positions %v, want 0..%d", column, positions, len(positions)-1)
			}
		}
	}
	return nil
}
