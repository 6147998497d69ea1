package services

import (
	"context"

	"hitbadge-backend/models"
	"hitbadge-backend/repository"
	"hitbadge-backend/utils/logger"
)

type UserService struct {
	ctx    context.Context
	repo   repository.UserRepositoryInterface
	logger logger.Logger
}

func NewUserService(ctx context.Context, repo repository.UserRepositoryInterface, log logger.Logger) *UserService {
	return &UserService{
		ctx:    ctx,
		repo:   repo,
		logger: log,
	}
}

// Register adds user to the allow-list. Returns true when newly
// registered and false when the user already existed. Registering
// twice never corrupts state.
func (s *UserService) Register(user string) (bool, error) {
	created, err := s.repo.Insert(s.ctx, models.NewUserRecord(user))
	if err != nil {
		return false, err
	}
	if created {
		s.logger.Infof("Registered user %s", user)
	}
	return created, nil
}

// IsAllowed reports whether user may have counters served. A user with
// no allow-list entry is denied; registration is mandatory before
// counting.
func (s *UserService) IsAllowed(user string) (bool, error) {
	record, err := s.repo.Get(s.ctx, user)
	if err != nil {
		return false, err
	}
	return record != nil && !record.IsBlocked, nil
}
