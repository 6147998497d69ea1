package services

import (
	"context"

	"hitbadge-backend/models"
	"hitbadge-backend/repository"
	"hitbadge-backend/utils/logger"
)

type CounterService struct {
	ctx    context.Context
	repo   repository.CounterRepositoryInterface
	guard  *admissionGuard
	logger logger.Logger
}

// NewCounterService creates the counter service. guardCapacity bounds
// how many requests may hold or wait for the update guard at once.
func NewCounterService(ctx context.Context, repo repository.CounterRepositoryInterface, log logger.Logger, guardCapacity int) *CounterService {
	return &CounterService{
		ctx:    ctx,
		repo:   repo,
		guard:  newAdmissionGuard(guardCapacity),
		logger: log,
	}
}

// RecordVisit fetches the counter for (user, pageID), increments it
// unless suppressCount is set, and writes it back. The whole sequence
// runs under the process-wide guard so two in-flight requests cannot
// interleave their fetch and write. The write overwrites whatever is
// stored; concurrent writers in other processes lose updates and that
// is accepted.
func (s *CounterService) RecordVisit(user, pageID string, suppressCount bool) (*models.HitRecord, error) {
	if err := s.guard.Acquire(); err != nil {
		s.logger.Warnf("Rejecting visit for %s/%s: %v", user, pageID, err)
		return nil, err
	}
	defer s.guard.Release()

	record, err := s.repo.Fetch(s.ctx, user, pageID)
	if err != nil {
		return nil, err
	}

	if !suppressCount {
		record.HitCount++
	}

	if err := s.repo.Upsert(s.ctx, record); err != nil {
		return nil, err
	}

	return record, nil
}
