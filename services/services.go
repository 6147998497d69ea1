package services

import (
	"context"

	"hitbadge-backend/models"
	"hitbadge-backend/repository"
	"hitbadge-backend/utils/logger"
)

// Service implements ServiceContainerInterface
type Service struct {
	counterService CounterServiceInterface
	userService    UserServiceInterface
}

// NewService creates a new service container with all dependencies injected
func NewService(ctx context.Context, repo *repository.Repository, log logger.Logger, config *models.Config) ServiceContainerInterface {
	return &Service{
		counterService: NewCounterService(ctx, repo.Counter, log, config.CounterGuardCapacity),
		userService:    NewUserService(ctx, repo.User, log),
	}
}

// GetCounterService returns the counter service interface
func (s *Service) GetCounterService() CounterServiceInterface {
	return s.counterService
}

// GetUserService returns the user service interface
func (s *Service) GetUserService() UserServiceInterface {
	return s.userService
}
