package database

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"kanban-board-api/internal/domain"
)

// recordedQuery captures one RecordDBQuery invocation
type recordedQuery struct {
	operation string
	table     string
	err       error
}

// fakeRecorder collects metric callback invocations for assertions
type fakeRecorder struct {
	mu      sync.Mutex
	queries []recordedQuery
	stats   int
}

func (r *fakeRecorder) RecordDBQuery(operation, table string, duration time.Duration, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.queries = append(r.queries, recordedQuery{operation: operation, table: table, err: err})
}

func (r *fakeRecorder) UpdateDBStats(stats interface{}) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.stats++
}

func (r *fakeRecorder) operations() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	ops := make([]string, 0, len(r.queries))
	for _, q := range r.queries {
		ops = append(ops, q.operation)
	}
	return ops
}

func setupCallbackTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, AutoMigrate(db))
	return db
}

func TestRegisterMetricsCallbacks_RecordsAllStatementKinds(t *testing.T) {
	db := setupCallbackTestDB(t)
	recorder := &fakeRecorder{}
	RegisterMetricsCallbacks(db, recorder)

	ticket := &domain.Ticket{Title: "instrumented", Column: domain.ColumnTodo}
	require.NoError(t, db.Create(ticket).Error)

	var loaded domain.Ticket
	require.NoError(t, db.First(&loaded, ticket.ID).Error)

	require.NoError(t, db.Model(&loaded).UpdateColumn("position", 1).Error)
	require.NoError(t, db.Delete(&domain.Ticket{}, ticket.ID).Error)

	ops := recorder.operations()
	assert.Contains(t, ops, "insert")
	assert.Contains(t, ops, "select")
	assert.Contains(t, ops, "update")
	assert.Contains(t, ops, "delete")
}

func TestRegisterMetricsCallbacks_RecordsTableAndError(t *testing.T) {
	db := setupCallbackTestDB(t)
	recorder := &fakeRecorder{}
	RegisterMetricsCallbacks(db, recorder)

	require.NoError(t, db.Create(&domain.Tag{Name: "bug"}).Error)

	// The duplicate insert must surface as a recorded error
	assert.Error(t, db.Create(&domain.Tag{Name: "bug"}).Error)

	recorder.mu.Lock()
	defer recorder.mu.Unlock()
	require.NotEmpty(t, recorder.queries)

	var sawTagsTable, sawError bool
	for _, q := range recorder.queries {
		if q.table == "tags" {
			sawTagsTable = true
		}
		if q.err != nil {
			sawError = true
		}
	}
	assert.True(t, sawTagsTable, "expected a query recorded against the tags table")
	assert.True(t, sawError, "expected the failed insert to be recorded with its error")
}
