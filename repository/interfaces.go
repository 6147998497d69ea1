package repository

import (
	"context"

	"hitbadge-backend/models"
)

// CounterRepositoryInterface defines persistence for hit records
type CounterRepositoryInterface interface {
	Fetch(ctx context.Context, user, pageID string) (*models.HitRecord, error)
	Upsert(ctx context.Context, record *models.HitRecord) error
}

// UserRepositoryInterface defines persistence for allow-list entries
type UserRepositoryInterface interface {
	Insert(ctx context.Context, record *models.UserRecord) (bool, error)
	Get(ctx context.Context, username string) (*models.UserRecord, error)
}
