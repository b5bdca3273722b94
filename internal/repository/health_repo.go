package repository

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"backoffice/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// HealthCheckRepository stores upstream health observations.
type HealthCheckRepository interface {
	Save(ctx context.Context, check *model.HealthCheck) error
	// Latest returns nil when nothing was recorded yet.
	Latest(ctx context.Context) (*model.HealthCheck, error)
	// List returns up to limit checks, newest first.
	List(ctx context.Context, limit int) ([]model.HealthCheck, error)
}

type healthCheckRepository struct {
	db        *gorm.DB
	retention int
}

// NewHealthCheckRepository stores checks in PostgreSQL, keeping the newest retention rows.
func NewHealthCheckRepository(db *gorm.DB, retention int) HealthCheckRepository {
	return &healthCheckRepository{db: db, retention: retention}
}

func (r *healthCheckRepository) Save(ctx context.Context, check *model.HealthCheck) error {
	if check.ID == uuid.Nil {
		check.ID = uuid.New()
	}
	return RunInTx(ctx, r.db, func(txCtx context.Context) error {
		db := GetDB(txCtx, r.db)
		if err := db.Create(check).Error; err != nil {
			return fmt.Errorf("failed to save health check: %w", err)
		}
		if r.retention < 1 {
			return nil
		}
		keep := db.Model(&model.HealthCheck{}).Select("id").Order("checked_at desc").Limit(r.retention)
		if err := db.Where("id NOT IN (?)", keep).Delete(&model.HealthCheck{}).Error; err != nil {
			return fmt.Errorf("failed to prune health checks: %w", err)
		}
		return nil
	})
}

func (r *healthCheckRepository) Latest(ctx context.Context) (*model.HealthCheck, error) {
	var check model.HealthCheck
	err := GetDB(ctx, r.db).Order("checked_at desc").First(&check).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &check, nil
}

func (r *healthCheckRepository) List(ctx context.Context, limit int) ([]model.HealthCheck, error) {
	var checks []model.HealthCheck
	if err := GetDB(ctx, r.db).Order("checked_at desc").Limit(limit).Find(&checks).Error; err != nil {
		return nil, err
	}
	return checks, nil
}

// memoryHealthCheckRepository keeps the newest checks in a ring.
type memoryHealthCheckRepository struct {
	mu     sync.RWMutex
	checks []model.HealthCheck
	next   int
	size   int
}

// NewMemoryHealthCheckRepository keeps at most capacity checks in memory.
func NewMemoryHealthCheckRepository(capacity int) HealthCheckRepository {
	if capacity < 1 {
		capacity = 1
	}
	return &memoryHealthCheckRepository{checks: make([]model.HealthCheck, capacity)}
}

func (r *memoryHealthCheckRepository) Save(_ context.Context, check *model.HealthCheck) error {
	if check.ID == uuid.Nil {
		check.ID = uuid.New()
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	r.checks[r.next] = *check
	r.next = (r.next + 1) % len(r.checks)
	if r.size < len(r.checks) {
		r.size++
	}
	return nil
}

func (r *memoryHealthCheckRepository) Latest(_ context.Context) (*model.HealthCheck, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.size == 0 {
		return nil, nil
	}
	latest := r.checks[(r.next-1+len(r.checks))%len(r.checks)]
	return &latest, nil
}

func (r *memoryHealthCheckRepository) List(_ context.Context, limit int) ([]model.HealthCheck, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if limit < 1 || limit > r.size {
		limit = r.size
	}
	out := make([]model.HealthCheck, 0, limit)
	for i := 1; i <= limit; i++ {
		out = append(out, r.checks[(r.next-i+len(r.checks))%len(r.checks)])
	}
	return out, nil
}
