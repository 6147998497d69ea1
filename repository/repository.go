package repository

import (
	"hitbadge-backend/dal"
	"hitbadge-backend/models"
	"hitbadge-backend/utils/logger"
)

type Repository struct {
	Counter *CounterRepository
	User    *UserRepository
}

func NewRepository(db dal.DatabaseClientInterface, cfg *models.Config, log logger.Logger) *Repository {
	return &Repository{
		Counter: NewCounterRepository(db, cfg, log),
		User:    NewUserRepository(db, cfg, log),
	}
}
