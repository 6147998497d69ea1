// Package worker provisions the DynamoDB tables ahead of first
// traffic. The repositories still lazily ensure their tables, so the
// worker is an amortization, not a correctness requirement.
package worker

import (
	"context"
	"fmt"
	"sync"
	"time"

	"hitbadge-backend/dal"
	"hitbadge-backend/infrastructure"
	"hitbadge-backend/models"
	"hitbadge-backend/utils"
	"hitbadge-backend/utils/logger"

	"github.com/robfig/cron"
)

const (
	lockTimeout    = 5 * time.Minute
	setupRetries   = 3
	setupBaseDelay = 5 * time.Second
)

// Worker runs table provisioning at startup and re-verifies on a cron
// schedule.
type Worker struct {
	config  *models.Config
	logger  logger.Logger
	db      models.TableManager
	cronJob *cron.Cron
	lock    *LockManager
	status  *StatusManager
	ownerID string

	mu      sync.Mutex
	running bool

	ctx    context.Context
	cancel context.CancelFunc
}

// NewWorker creates the infrastructure worker
func NewWorker(ctx context.Context, cfg *models.Config, db models.TableManager, log logger.Logger) *Worker {
	workerCtx, cancel := context.WithCancel(ctx)
	return &Worker{
		config:  cfg,
		logger:  log,
		db:      db,
		cronJob: cron.New(),
		lock:    NewLockManager(cfg.WorkerLockFilePath, lockTimeout, cfg.AppEnv),
		status:  NewStatusManager(cfg.WorkerStatusFilePath),
		ownerID: fmt.Sprintf("worker-%s", utils.GenerateUUID()),
		ctx:     workerCtx,
		cancel:  cancel,
	}
}

// Start runs provisioning once, then schedules periodic re-checks.
func (w *Worker) Start() error {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return fmt.Errorf("worker already running")
	}
	w.running = true
	w.mu.Unlock()

	w.logger.Infof("Infrastructure worker %s starting", w.ownerID)

	if err := w.runSetup(); err != nil {
		// Lazy per-repository ensure still covers correctness.
		w.logger.Errorf("Initial infrastructure setup failed: %v", err)
	}

	if err := w.cronJob.AddFunc(w.config.WorkerCronSchedule, func() {
		if err := w.runSetup(); err != nil {
			w.logger.Errorf("Scheduled infrastructure check failed: %v", err)
		}
	}); err != nil {
		return fmt.Errorf("failed to add cron job: %w", err)
	}

	w.cronJob.Start()
	return nil
}

// Stop halts the cron scheduler and releases the lock
func (w *Worker) Stop() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if !w.running {
		return
	}
	w.running = false

	w.cronJob.Stop()
	w.cancel()
	if err := w.lock.ReleaseLock(w.ownerID); err != nil {
		w.logger.Warnf("Failed to release provisioning lock: %v", err)
	}
	w.logger.Info("Infrastructure worker stopped")
}

// IsRunning reports whether the worker is active
func (w *Worker) IsRunning() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.running
}

// GetStatus returns the persisted outcome of the last run
func (w *Worker) GetStatus() (*models.SetupStatus, error) {
	return w.status.Read()
}

// runSetup provisions every configured table under the file lock
func (w *Worker) runSetup() error {
	if _, err := w.lock.AcquireLock(w.ownerID); err != nil {
		w.logger.Infof("Skipping provisioning run: %v", err)
		return nil
	}

	status := &models.SetupStatus{
		Status:      models.StatusRunning,
		Environment: w.config.AppEnv,
		StartTime:   time.Now(),
	}
	if err := w.status.Write(status); err != nil {
		w.logger.Warnf("Failed to write status file: %v", err)
	}

	for _, base := range w.config.Tables {
		tableName := w.config.DynamoDBTablePrefix + "_" + base
		if err := w.ensureTableWithRetry(tableName); err != nil {
			status.Status = models.StatusFailed
			status.Success = false
			status.EndTime = time.Now()
			status.ErrorMessage = err.Error()
			_ = w.status.Write(status)
			return err
		}
		status.TablesCreated = append(status.TablesCreated, tableName)
	}

	status.Status = models.StatusCompleted
	status.Success = true
	status.EndTime = time.Now()
	if err := w.status.Write(status); err != nil {
		w.logger.Warnf("Failed to write status file: %v", err)
	}

	w.logger.Infof("Infrastructure setup completed, tables: %v", status.TablesCreated)
	return nil
}

// ensureTableWithRetry creates the table if missing, retrying with
// linear backoff between attempts.
func (w *Worker) ensureTableWithRetry(tableName string) error {
	for attempt := 0; attempt <= setupRetries; attempt++ {
		if attempt > 0 {
			delay := time.Duration(attempt) * setupBaseDelay
			w.logger.Infof("Retrying table setup for %s in %v (attempt %d/%d)", tableName, delay, attempt+1, setupRetries+1)

			select {
			case <-time.After(delay):
			case <-w.ctx.Done():
				return w.ctx.Err()
			}
		}

		if err := w.ensureTable(tableName); err != nil {
			w.logger.Errorf("Attempt %d failed to set up table %s: %v", attempt+1, tableName, err)
			continue
		}
		return nil
	}

	return fmt.Errorf("exhausted all retry attempts for table %s", tableName)
}

func (w *Worker) ensureTable(tableName string) error {
	_, err := w.db.DescribeTable(w.ctx, tableName)
	if err == nil {
		return nil
	}
	if !dal.IsTableNotFound(err) {
		return fmt.Errorf("failed to describe table: %w", err)
	}

	input, err := infrastructure.GetTables(tableName)
	if err != nil {
		return fmt.Errorf("failed to get table input: %w", err)
	}

	if err := w.db.CreateTable(w.ctx, input); err != nil {
		if dal.IsTableInUse(err) {
			w.logger.Infof("Table %s is being created by another process", tableName)
			return nil
		}
		return fmt.Errorf("failed to create table: %w", err)
	}

	w.logger.Infof("Created table %s", tableName)
	return nil
}
