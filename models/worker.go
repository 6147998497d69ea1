package models

import (
	"context"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// TableManager is the slice of the database client the infrastructure
// worker needs. Declared here to avoid a circular dependency on dal.
type TableManager interface {
	CreateTable(ctx context.Context, input *dynamodb.CreateTableInput) error
	DescribeTable(ctx context.Context, tableName string) (*dynamodb.DescribeTableOutput, error)
}

// LockInfo represents the on-disk provisioning lock
type LockInfo struct {
	ID          string    `json:"id"`
	Owner       string    `json:"owner"`
	AcquiredAt  time.Time `json:"acquired_at"`
	ExpiresAt   time.Time `json:"expires_at"`
	Environment string    `json:"environment"`
}

// WorkerStatus represents the current status of the infrastructure worker
type WorkerStatus string

const (
	StatusIdle      WorkerStatus = "idle"
	StatusRunning   WorkerStatus = "running"
	StatusCompleted WorkerStatus = "completed"
	StatusFailed    WorkerStatus = "failed"
)

// SetupStatus is the persisted outcome of the last provisioning run
type SetupStatus struct {
	Status        WorkerStatus `json:"status"`
	Success       bool         `json:"success"`
	Environment   string       `json:"environment"`
	TablesCreated []string     `json:"tables_created"`
	StartTime     time.Time    `json:"start_time"`
	EndTime       time.Time    `json:"end_time"`
	ErrorMessage  string       `json:"error_message,omitempty"`
}
