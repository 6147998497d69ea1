package services

import "hitbadge-backend/models"

// CounterServiceInterface defines the visit recording contract
type CounterServiceInterface interface {
	RecordVisit(user, pageID string, suppressCount bool) (*models.HitRecord, error)
}

// UserServiceInterface defines registration and allow-list checks
type UserServiceInterface interface {
	Register(user string) (bool, error)
	IsAllowed(user string) (bool, error)
}

// ServiceContainerInterface exposes all services to the controllers
type ServiceContainerInterface interface {
	GetCounterService() CounterServiceInterface
	GetUserService() UserServiceInterface
}
