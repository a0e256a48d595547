package database

import (
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"kanban-board-api/internal/domain"
)

// AutoMigrate runs GORM auto-migration for all domain models
// Tables, indexes and foreign key constraints come from the struct tags
// in the domain package
func AutoMigrate(db *gorm.DB) error {
	if err := db.SetupJoinTable(&domain.Ticket{}, "Tags", &domain.TicketTag{}); err != nil {
		return fmt.Errorf("failed to set up ticket_tags join table: %w", err)
	}

	models := []interface{}{
		&domain.Ticket{},
		&domain.Tag{},
		&domain.Comment{},
	}

	if err := db.AutoMigrate(models...); err != nil {
		return fmt.Errorf("failed to run auto-migration: %w", err)
	}

	return nil
}

// SafeAutoMigrate runs auto-migration table by table, logging whether each
// table was created or only updated. Existing tables only receive schema
// additions; nothing is dropped.
func SafeAutoMigrate(db *gorm.DB, logger *zap.Logger) error {
	if err := db.SetupJoinTable(&domain.Ticket{}, "Tags", &domain.TicketTag{}); err != nil {
		return fmt.Errorf("failed to set up ticket_tags join table: %w", err)
	}

	migrator := db.Migrator()

	models := []struct {
		model     interface{}
		tableName string
	}{
		{&domain.Ticket{}, "tickets"},
		{&domain.Tag{}, "tags"},
		{&domain.Comment{}, "comments"},
	}

	for _, m := range models {
		existed := migrator.HasTable(m.model)

		if err := db.AutoMigrate(m.model); err != nil {
			logger.Error("Failed to migrate table",
				zap.String("table", m.tableName),
				zap.Bool("table_existed", existed),
				zap.Error(err),
			)
			return fmt.Errorf("failed to migrate table %s: %w", m.tableName, err)
		}

		logger.Info("Migrated table",
			zap.String("table", m.tableName),
			zap.Bool("was_existing", existed),
		)
	}

	return nil
}
