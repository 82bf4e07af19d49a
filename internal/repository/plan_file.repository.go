package repository

import (
	"encoding/json"
	"fmt"
	"os"
	"rebalancer/internal/domain"
)

// PlanFileRepository writes a computed run as indented JSON.
type PlanFileRepository interface {
	Write(path string, run domain.RebalanceRun) error
}

type planFileRepositoryHandler struct{}

func NewPlanFileRepository() PlanFileRepository {
	return planFileRepositoryHandler{}
}

func (h planFileRepositoryHandler) Write(path string, run domain.RebalanceRun) error {
	bytes, err := json.MarshalIndent(run, "", "    ")
	if err != nil {
		return fmt.Errorf("failed to marshal run %s: %w", run.ID.String(), err)
	}
	err = os.WriteFile(path, bytes, 0o644)
	if err != nil {
		return fmt.Errorf("failed to write plan %s: %w", path, err)
	}
	return nil
}
