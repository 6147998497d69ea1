package dal

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// DatabaseClientInterface defines the contract for database operations
type DatabaseClientInterface interface {
	// Item operations
	GetItem(ctx context.Context, tableName, pkName, pkValue, skName, skValue string, result interface{}) (bool, error)
	PutItem(ctx context.Context, tableName string, item interface{}) error
	InsertItem(ctx context.Context, tableName, pkName string, item interface{}) error

	// Table management operations
	CreateTable(ctx context.Context, input *dynamodb.CreateTableInput) error
	DescribeTable(ctx context.Context, tableName string) (*dynamodb.DescribeTableOutput, error)
}
