package service

import (
	"context"
	"fmt"
	"time"

	"backoffice/internal/logger"
	"backoffice/internal/model"
	"backoffice/internal/repository"
)

const (
	DefaultHealthHistory = 20
	MaxHealthHistory     = 100

	connectFailedMessage = "could not connect to the health-check endpoint"
)

// --- Interface ---

type HealthService interface {
	// Check probes the upstream now and records the result.
	Check(ctx context.Context) (model.HealthCheck, error)
	// Latest returns the last recorded check, UNKNOWN when none exists.
	Latest(ctx context.Context) (model.HealthCheck, error)
	History(ctx context.Context, limit int) ([]model.HealthCheck, error)
	// Poll checks once immediately and then every interval until ctx ends.
	Poll(ctx context.Context, interval time.Duration)
}

// --- Implementation ---

type healthService struct {
	prober HealthProber
	repo   repository.HealthCheckRepository
	now    func() time.Time
}

func NewHealthService(prober HealthProber, repo repository.HealthCheckRepository) HealthService {
	return &healthService{prober: prober, repo: repo, now: time.Now}
}

func (s *healthService) Check(ctx context.Context) (model.HealthCheck, error) {
	res, err := s.prober.Ping(ctx)
	check := model.HealthCheck{CheckedAt: s.now().UTC()}

	switch {
	case err != nil && ctx.Err() != nil:
		return model.HealthCheck{}, fmt.Errorf("health check interrupted: %w", ctx.Err())
	case err != nil:
		check.Status = model.HealthDown
		check.ErrorMessage = connectFailedMessage
	case res.OK():
		ms := res.Elapsed.Milliseconds()
		check.Status = model.HealthUp
		check.ResponseTimeMs = &ms
		check.StatusCode = res.StatusCode
	default:
		ms := res.Elapsed.Milliseconds()
		check.Status = model.HealthDown
		check.ResponseTimeMs = &ms
		check.StatusCode = res.StatusCode
		check.ErrorMessage = fmt.Sprintf("status code: %d", res.StatusCode)
	}

	if err := s.repo.Save(ctx, &check); err != nil {
		return check, fmt.Errorf("failed to record health check: %w", err)
	}
	return check, nil
}

func (s *healthService) Latest(ctx context.Context) (model.HealthCheck, error) {
	latest, err := s.repo.Latest(ctx)
	if err != nil {
		return model.HealthCheck{}, fmt.Errorf("failed to load latest health check: %w", err)
	}
	if latest == nil {
		return model.HealthCheck{Status: model.HealthUnknown}, nil
	}
	return *latest, nil
}

func (s *healthService) History(ctx context.Context, limit int) ([]model.HealthCheck, error) {
	if limit < 1 {
		limit = DefaultHealthHistory
	}
	if limit > MaxHealthHistory {
		limit = MaxHealthHistory
	}
	checks, err := s.repo.List(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list health checks: %w", err)
	}
	if checks == nil {
		checks = []model.HealthCheck{}
	}
	return checks, nil
}

func (s *healthService) Poll(ctx context.Context, interval time.Duration) {
	log := logger.FromContext(ctx)
	if interval <= 0 {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		check, err := s.Check(ctx)
		switch {
		case ctx.Err() != nil:
			return
		case err != nil:
			log.Error().Err(err).Msg("Health poll failed")
		default:
			log.Debug().Str("status", check.Status).Msg("Health poll")
		}

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}
