package health

import "context"

// DBPinger checks cache store availability.
type DBPinger interface {
	Ping(ctx context.Context) error
}

// AnnotatorChecker checks annotation provider availability.
type AnnotatorChecker interface {
	HealthCheck(ctx context.Context) error
}
