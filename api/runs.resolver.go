package api

import (
	"errors"
	"fmt"
	l3_service "rebalancer/internal/service/l3"

	"github.com/gin-gonic/gin"
	"github.com/go-jet/jet/v2/qrm"
	"github.com/google/uuid"
)

func runErrorCode(err error) int {
	switch {
	case errors.Is(err, l3_service.ErrRunStorageDisabled):
		return 503
	case errors.Is(err, qrm.ErrNoRows):
		return 404
	default:
		return 500
	}
}

func (m ApiHandler) listRuns(c *gin.Context) {
	runs, err := m.RebalanceService.ListRuns()
	if err != nil {
		returnErrorJsonCode(fmt.Errorf("failed to list runs: %w", err), c, runErrorCode(err))
		return
	}

	out := []RebalanceResponse{}
	for _, run := range runs {
		out = append(out, rebalanceResponseFromRun(run))
	}

	c.JSON(200, out)
}

func (m ApiHandler) getRun(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		returnErrorJsonCode(fmt.Errorf("invalid run id: %w", err), c, 400)
		return
	}

	run, err := m.RebalanceService.GetRun(id)
	if err != nil {
		returnErrorJsonCode(fmt.Errorf("failed to get run %s: %w", id.String(), err), c, runErrorCode(err))
		return
	}

	c.JSON(200, rebalanceResponseFromRun(*run))
}
