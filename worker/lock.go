package worker

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"hitbadge-backend/models"
)

// LockManager guards provisioning with a lock file so co-located
// processes do not create tables concurrently. Processes on other
// hosts are not covered; DynamoDB tolerates racing CreateTable calls.
type LockManager struct {
	LockFilePath string
	LockTimeout  time.Duration
	Environment  string
}

// NewLockManager creates a new lock manager
func NewLockManager(lockPath string, timeout time.Duration, env string) *LockManager {
	return &LockManager{
		LockFilePath: lockPath,
		LockTimeout:  timeout,
		Environment:  env,
	}
}

// AcquireLock takes or extends the provisioning lock for ownerID.
// A live lock held by another owner is an error.
func (lm *LockManager) AcquireLock(ownerID string) (*models.LockInfo, error) {
	if err := os.MkdirAll(filepath.Dir(lm.LockFilePath), 0755); err != nil {
		return nil, err
	}

	if existing, err := lm.readLockFile(); err == nil {
		if time.Now().Before(existing.ExpiresAt) {
			if existing.Owner != ownerID || existing.Environment != lm.Environment {
				return nil, fmt.Errorf("lock held by %s until %s", existing.Owner, existing.ExpiresAt.Format(time.RFC3339))
			}
			// Already ours, extend it
			existing.ExpiresAt = time.Now().Add(lm.LockTimeout)
			if err := lm.writeLockFile(existing); err != nil {
				return nil, fmt.Errorf("failed to extend lock: %w", err)
			}
			return existing, nil
		}
	}

	lockInfo := &models.LockInfo{
		ID:          fmt.Sprintf("infra-lock-%d", time.Now().UnixNano()),
		Owner:       ownerID,
		AcquiredAt:  time.Now(),
		ExpiresAt:   time.Now().Add(lm.LockTimeout),
		Environment: lm.Environment,
	}

	if err := lm.writeLockFile(lockInfo); err != nil {
		return nil, fmt.Errorf("failed to create lock file: %w", err)
	}
	return lockInfo, nil
}

// ReleaseLock drops the lock if ownerID still holds it
func (lm *LockManager) ReleaseLock(ownerID string) error {
	existing, err := lm.readLockFile()
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	if existing.Owner != ownerID {
		return fmt.Errorf("cannot release lock owned by %s", existing.Owner)
	}

	return os.Remove(lm.LockFilePath)
}

func (lm *LockManager) readLockFile() (*models.LockInfo, error) {
	data, err := os.ReadFile(lm.LockFilePath)
	if err != nil {
		return nil, err
	}

	var lockInfo models.LockInfo
	if err := json.Unmarshal(data, &lockInfo); err != nil {
		return nil, fmt.Errorf("failed to parse lock file: %w", err)
	}
	return &lockInfo, nil
}

func (lm *LockManager) writeLockFile(lockInfo *models.LockInfo) error {
	data, err := json.MarshalIndent(lockInfo, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(lm.LockFilePath, data, 0644)
}
