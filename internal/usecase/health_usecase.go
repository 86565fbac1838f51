package usecase

import (
	"context"

	"go-vacancy-backend/internal/domain"
	"go-vacancy-backend/pkg/logger"
)

type healthUsecase struct {
	checks map[string]domain.Pinger
}

// NewHealthUsecase reports on each named dependency. Nil pingers are skipped.
func NewHealthUsecase(checks map[string]domain.Pinger) domain.HealthUsecase {
	active := make(map[string]domain.Pinger, len(checks))
	for name, p := range checks {
		if p != nil {
			active[name] = p
		}
	}
	return &healthUsecase{checks: active}
}

func (u *healthUsecase) Check(ctx context.Context) (map[string]string, bool) {
	status := map[string]string{"status": "ok"}
	healthy := true
	for name, p := range u.checks {
		if err := p.PingContext(ctx); err != nil {
			logger.Log.Warn("health check failed", "dependency", name, "error", err)
			status[name] = "down"
			healthy = false
			continue
		}
		status[name] = "up"
	}
	if !healthy {
		status["status"] = "degraded"
	}
	return status, healthy
}
