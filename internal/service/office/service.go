package office

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/wifiattend/attendance-server/internal/domain/office"
	"github.com/wifiattend/attendance-server/internal/pkg/cache"
	"github.com/wifiattend/attendance-server/internal/pkg/macaddr"
)

const officeConfigCacheKey = "attendance:office_config"

type OfficeServiceImpl struct {
	repo  office.OfficeConfigRepository
	cache cache.Cache
	ttl   time.Duration
}

// NewOfficeService returns the office config service. Reads are served from c
// when present; every write invalidates the cached copy.
func NewOfficeService(repo office.OfficeConfigRepository, c cache.Cache, ttl time.Duration) office.OfficeService {
	if c == nil {
		c = cache.Noop{}
	}
	return &OfficeServiceImpl{
		repo:  repo,
		cache: c,
		ttl:   ttl,
	}
}

// Current implements office.Provider.
func (s *OfficeServiceImpl) Current(ctx context.Context) (office.OfficeConfig, error) {
	var cfg office.OfficeConfig
	err := s.cache.Get(ctx, officeConfigCacheKey, &cfg)
	if err == nil {
		return cfg, nil
	}
	if !errors.Is(err, cache.ErrMiss) {
		slog.Warn("office config cache read failed", "error", err)
	}

	cfg, err = s.repo.Get(ctx)
	if err != nil {
		if errors.Is(err, office.ErrOfficeConfigNotFound) {
			return office.OfficeConfig{}, err
		}
		return office.OfficeConfig{}, fmt.Errorf("failed to load office config: %w", err)
	}

	if err := s.cache.Set(ctx, officeConfigCacheKey, cfg, s.ttl); err != nil {
		slog.Warn("office config cache write failed", "error", err)
	}
	return cfg, nil
}

// Create implements office.OfficeService.
func (s *OfficeServiceImpl) Create(ctx context.Context, updatedBy string, req office.UpsertOfficeConfigRequest) (office.OfficeConfig, error) {
	if err := req.Validate(); err != nil {
		return office.OfficeConfig{}, err
	}

	created, err := s.repo.Create(ctx, office.OfficeConfig{
		MacAddress: macaddr.Normalize(req.MacAddress),
		UpdatedBy:  &updatedBy,
	})
	if err != nil {
		if errors.Is(err, office.ErrOfficeConfigExists) {
			slog.Warn("office config create rejected: already exists", "user_id", updatedBy)
			return office.OfficeConfig{}, err
		}
		return office.OfficeConfig{}, fmt.Errorf("failed to create office config: %w", err)
	}

	s.invalidate(ctx)
	slog.Info("office MAC address configured", "user_id", updatedBy, "mac_address", created.MacAddress)
	return created, nil
}

// Update implements office.OfficeService.
func (s *OfficeServiceImpl) Update(ctx context.Context, updatedBy string, req office.UpsertOfficeConfigRequest) (office.OfficeConfig, error) {
	if err := req.Validate(); err != nil {
		return office.OfficeConfig{}, err
	}

	updated, err := s.repo.Update(ctx, office.OfficeConfig{
		MacAddress: macaddr.Normalize(req.MacAddress),
		UpdatedBy:  &updatedBy,
	})
	if err != nil {
		if errors.Is(err, office.ErrOfficeConfigNotFound) {
			return office.OfficeConfig{}, err
		}
		return office.OfficeConfig{}, fmt.Errorf("failed to update office config: %w", err)
	}

	s.invalidate(ctx)
	slog.Info("office MAC address updated", "user_id", updatedBy, "mac_address", updated.MacAddress)
	return updated, nil
}

func (s *OfficeServiceImpl) invalidate(ctx context.Context) {
	if err := s.cache.Delete(ctx, officeConfigCacheKey); err != nil {
		slog.Warn("office config cache invalidation failed", "error", err)
	}
}
