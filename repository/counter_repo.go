package repository

import (
	"context"
	"fmt"
	"sync/atomic"

	"hitbadge-backend/dal"
	"hitbadge-backend/infrastructure"
	"hitbadge-backend/models"
	"hitbadge-backend/utils/logger"
)

const counterTableBase = "hitcounterstore"

type CounterRepository struct {
	db     dal.DatabaseClientInterface
	config *models.Config
	logger logger.Logger

	// Set after the first successful table check. Racing requests may
	// re-run the check; that only costs a redundant DescribeTable.
	tableChecked atomic.Bool
}

// NewCounterRepository creates a new counter repository
func NewCounterRepository(db dal.DatabaseClientInterface, cfg *models.Config, log logger.Logger) *CounterRepository {
	return &CounterRepository{
		db:     db,
		config: cfg,
		logger: log,
	}
}

func (r *CounterRepository) tableName() string {
	return r.config.DynamoDBTablePrefix + "_" + counterTableBase
}

// Fetch loads the counter for (user, pageID). A pair that was never
// visited yields a fresh in-memory record with count zero.
func (r *CounterRepository) Fetch(ctx context.Context, user, pageID string) (*models.HitRecord, error) {
	if err := r.ensureTable(ctx); err != nil {
		return nil, err
	}

	record := &models.HitRecord{}
	found, err := r.db.GetItem(ctx, r.tableName(), "user", user, "page_id", pageID, record)
	if err != nil {
		r.logger.Errorf("Failed to fetch hit record %s/%s: %v", user, pageID, err)
		return nil, err
	}
	if !found {
		return models.NewHitRecord(user, pageID, 0), nil
	}
	return record, nil
}

// Upsert persists the record, overwriting whatever is stored. The
// version token from the fetch is deliberately discarded; last write
// wins. The in-process guard in the counter service is what keeps
// concurrent writers in one process from losing updates.
func (r *CounterRepository) Upsert(ctx context.Context, record *models.HitRecord) error {
	if err := r.db.PutItem(ctx, r.tableName(), record); err != nil {
		r.logger.Errorf("Failed to upsert hit record %s/%s: %v", record.User, record.PageID, err)
		return err
	}
	return nil
}

// ensureTable creates the counter table on the first call per process
// lifetime. Subsequent calls return immediately.
func (r *CounterRepository) ensureTable(ctx context.Context) error {
	if r.tableChecked.Load() {
		return nil
	}

	if err := ensureTableExists(ctx, r.db, r.tableName(), r.logger); err != nil {
		return fmt.Errorf("failed to ensure table %s: %w", r.tableName(), err)
	}

	r.tableChecked.Store(true)
	return nil
}

// ensureTableExists creates tableName from the embedded schema if it
// does not exist yet. A racing creation by another process is fine.
func ensureTableExists(ctx context.Context, db dal.DatabaseClientInterface, tableName string, log logger.Logger) error {
	_, err := db.DescribeTable(ctx, tableName)
	if err == nil {
		return nil
	}
	if !dal.IsTableNotFound(err) {
		return err
	}

	input, err := infrastructure.GetTables(tableName)
	if err != nil {
		return err
	}

	if err := db.CreateTable(ctx, input); err != nil {
		if dal.IsTableInUse(err) {
			log.Infof("Table %s is being created by another process", tableName)
			return nil
		}
		return err
	}

	log.Infof("Created table %s", tableName)
	return nil
}
