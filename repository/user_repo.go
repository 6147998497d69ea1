package repository

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"

	"hitbadge-backend/dal"
	"hitbadge-backend/models"
	"hitbadge-backend/utils/logger"
)

const userTableBase = "userstore"

type UserRepository struct {
	db     dal.DatabaseClientInterface
	config *models.Config
	logger logger.Logger

	tableChecked atomic.Bool
}

// NewUserRepository creates a new user repository
func NewUserRepository(db dal.DatabaseClientInterface, cfg *models.Config, log logger.Logger) *UserRepository {
	return &UserRepository{
		db:     db,
		config: cfg,
		logger: log,
	}
}

func (r *UserRepository) tableName() string {
	return r.config.DynamoDBTablePrefix + "_" + userTableBase
}

// Insert writes a new allow-list entry. Returns false when the user is
// already registered; that is an expected outcome, not an error.
func (r *UserRepository) Insert(ctx context.Context, record *models.UserRecord) (bool, error) {
	if err := r.ensureTable(ctx); err != nil {
		return false, err
	}

	err := r.db.InsertItem(ctx, r.tableName(), "list", record)
	if err != nil {
		if errors.Is(err, dal.ErrItemExists) {
			return false, nil
		}
		r.logger.Errorf("Failed to insert user record %s: %v", record.Username, err)
		return false, err
	}
	return true, nil
}

// Get fetches the allow-list entry for username. Returns nil when no
// entry exists.
func (r *UserRepository) Get(ctx context.Context, username string) (*models.UserRecord, error) {
	if err := r.ensureTable(ctx); err != nil {
		return nil, err
	}

	record := &models.UserRecord{}
	found, err := r.db.GetItem(ctx, r.tableName(), "list", models.UserListPartition, "username", username, record)
	if err != nil {
		r.logger.Errorf("Failed to fetch user record %s: %v", username, err)
		return nil, err
	}
	if !found {
		return nil, nil
	}
	return record, nil
}

func (r *UserRepository) ensureTable(ctx context.Context) error {
	if r.tableChecked.Load() {
		return nil
	}

	if err := ensureTableExists(ctx, r.db, r.tableName(), r.logger); err != nil {
		return fmt.Errorf("failed to ensure table %s: %w", r.tableName(), err)
	}

	r.tableChecked.Store(true)
	return nil
}
