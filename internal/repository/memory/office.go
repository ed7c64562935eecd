package memory

import (
	"context"
	"sync"
	"time"

	"github.com/wifiattend/attendance-server/internal/domain/office"
)

type OfficeConfigRepository struct {
	mu    sync.Mutex
	cfg   *office.OfficeConfig
	Reads int
}

func NewOfficeConfigRepository() *OfficeConfigRepository {
	return &OfficeConfigRepository{}
}

func (r *OfficeConfigRepository) Get(ctx context.Context) (office.OfficeConfig, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.Reads++
	if r.cfg == nil {
		return office.OfficeConfig{}, office.ErrOfficeConfigNotFound
	}
	return *r.cfg, nil
}

func (r *OfficeConfigRepository) Create(ctx context.Context, cfg office.OfficeConfig) (office.OfficeConfig, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.cfg != nil {
		return office.OfficeConfig{}, office.ErrOfficeConfigExists
	}
	now := time.Now()
	cfg.CreatedAt = now
	cfg.UpdatedAt = now
	r.cfg = &cfg
	return cfg, nil
}

func (r *OfficeConfigRepository) Update(ctx context.Context, cfg office.OfficeConfig) (office.OfficeConfig, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.cfg == nil {
		return office.OfficeConfig{}, office.ErrOfficeConfigNotFound
	}
	cfg.CreatedAt = r.cfg.CreatedAt
	cfg.UpdatedAt = time.Now()
	r.cfg = &cfg
	return cfg, nil
}
