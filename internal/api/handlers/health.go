package handlers

import (
	"context"
	"time"

	"github.com/RMahshie/cactusplot/pkg/models"
)

// Version is reported by the health endpoint
const Version = "1.0.0"

// Health returns the health status of the service
func Health(ctx context.Context, _ *struct{}) (*models.HealthResponse, error) {
	resp := &models.HealthResponse{}
	resp.Body.Status = "healthy"
	resp.Body.Version = Version
	resp.Body.Time = time.Now()
	return resp, nil
}
