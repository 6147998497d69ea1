package worker

import (
	"encoding/json"
	"os"
	"path/filepath"

	"hitbadge-backend/models"
)

// StatusManager persists the outcome of the last provisioning run so
// operators (and the health endpoint) can inspect it.
type StatusManager struct {
	StatusFilePath string
}

// NewStatusManager creates a new status manager
func NewStatusManager(statusPath string) *StatusManager {
	return &StatusManager{StatusFilePath: statusPath}
}

// Write persists the status file
func (sm *StatusManager) Write(status *models.SetupStatus) error {
	if err := os.MkdirAll(filepath.Dir(sm.StatusFilePath), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(status, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(sm.StatusFilePath, data, 0644)
}

// Read loads the last persisted status. A missing file reads as idle.
func (sm *StatusManager) Read() (*models.SetupStatus, error) {
	data, err := os.ReadFile(sm.StatusFilePath)
	if err != nil {
		if os.IsNotExist(err) {
			return &models.SetupStatus{Status: models.StatusIdle}, nil
		}
		return nil, err
	}

	var status models.SetupStatus
	if err := json.Unmarshal(data, &status); err != nil {
		return nil, err
	}
	return &status, nil
}
