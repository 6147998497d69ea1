package worker

import (
	"path/filepath"
	"testing"
	"time"

	"hitbadge-backend/models"

	"github.com/stretchr/testify/assert"
)

func TestLockManagerAcquireAndRelease(t *testing.T) {
	lockPath := filepath.Join(t.TempDir(), "infra.lock")
	lm := NewLockManager(lockPath, time.Minute, "test")

	lock, err := lm.AcquireLock("owner-1")
	assert.NoError(t, err)
	assert.Equal(t, "owner-1", lock.Owner)

	// A second owner cannot take a live lock.
	_, err = lm.AcquireLock("owner-2")
	assert.Error(t, err)

	// The holder can re-acquire (extend) its own lock.
	extended, err := lm.AcquireLock("owner-1")
	assert.NoError(t, err)
	assert.True(t, extended.ExpiresAt.After(lock.AcquiredAt))

	assert.NoError(t, lm.ReleaseLock("owner-1"))

	// Released lock is free for anyone.
	_, err = lm.AcquireLock("owner-2")
	assert.NoError(t, err)
}

func TestLockManagerExpiredLockIsTakenOver(t *testing.T) {
	lockPath := filepath.Join(t.TempDir(), "infra.lock")

	short := NewLockManager(lockPath, -time.Second, "test")
	_, err := short.AcquireLock("owner-1")
	assert.NoError(t, err)

	lm := NewLockManager(lockPath, time.Minute, "test")
	lock, err := lm.AcquireLock("owner-2")
	assert.NoError(t, err)
	assert.Equal(t, "owner-2", lock.Owner)
}

func TestLockManagerReleaseByNonOwnerFails(t *testing.T) {
	lockPath := filepath.Join(t.TempDir(), "infra.lock")
	lm := NewLockManager(lockPath, time.Minute, "test")

	_, err := lm.AcquireLock("owner-1")
	assert.NoError(t, err)

	assert.Error(t, lm.ReleaseLock("owner-2"))
}

func TestStatusManagerRoundTrip(t *testing.T) {
	statusPath := filepath.Join(t.TempDir(), "status.json")
	sm := NewStatusManager(statusPath)

	status := &models.SetupStatus{
		Status:        models.StatusCompleted,
		Success:       true,
		Environment:   "test",
		TablesCreated: []string{"test_hitcounterstore", "test_userstore"},
		StartTime:     time.Now(),
		EndTime:       time.Now(),
	}
	assert.NoError(t, sm.Write(status))

	loaded, err := sm.Read()
	assert.NoError(t, err)
	assert.Equal(t, models.StatusCompleted, loaded.Status)
	assert.True(t, loaded.Success)
	assert.Equal(t, status.TablesCreated, loaded.TablesCreated)
}

func TestStatusManagerMissingFileReadsIdle(t *testing.T) {
	sm := NewStatusManager(filepath.Join(t.TempDir(), "missing.json"))

	status, err := sm.Read()
	assert.NoError(t, err)
	assert.Equal(t, models.StatusIdle, status.Status)
}
