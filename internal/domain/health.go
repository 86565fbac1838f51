package domain

import "context"

// Pinger is anything whose reachability the health check reports.
type Pinger interface {
	PingContext(ctx context.Context) error
}

type HealthUsecase interface {
	Check(ctx context.Context) (map[string]string, bool)
}
