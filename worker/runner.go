package worker

import (
	"context"
	"fmt"

	"hitbadge-backend/dal"
	"hitbadge-backend/models"
	"hitbadge-backend/utils/logger"
)

// Service wraps the infrastructure worker for easy integration
type Service struct {
	worker *Worker
	logger logger.Logger
}

// NewService creates a new worker service with its own database client
func NewService(ctx context.Context, cfg *models.Config, log logger.Logger) (*Service, error) {
	dbClient, err := dal.NewDynamoDBClient(cfg, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create DynamoDB client: %w", err)
	}

	return &Service{
		worker: NewWorker(ctx, cfg, dbClient, log),
		logger: log,
	}, nil
}

// StartInBackground starts the infrastructure worker in the background
func (s *Service) StartInBackground() error {
	s.logger.Info("Starting infrastructure worker service in background")

	go func() {
		if err := s.worker.Start(); err != nil {
			s.logger.Errorf("Infrastructure worker failed to start: %v", err)
		}
	}()

	return nil
}

// Stop stops the infrastructure worker service
func (s *Service) Stop() {
	s.logger.Info("Stopping infrastructure worker service")
	s.worker.Stop()
}

// GetHealthStatus returns a health status for monitoring
func (s *Service) GetHealthStatus() map[string]interface{} {
	status, err := s.worker.GetStatus()
	if err != nil {
		return map[string]interface{}{
			"status":         "error",
			"message":        fmt.Sprintf("Failed to get status: %v", err),
			"healthy":        false,
			"worker_running": s.worker.IsRunning(),
		}
	}

	return map[string]interface{}{
		"status":         string(status.Status),
		"healthy":        status.Status == models.StatusCompleted && status.Success,
		"worker_running": s.worker.IsRunning(),
		"tables_created": status.TablesCreated,
		"environment":    status.Environment,
		"error_message":  status.ErrorMessage,
	}
}
