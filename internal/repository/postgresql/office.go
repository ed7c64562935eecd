package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/wifiattend/attendance-server/internal/domain/office"
	"github.com/wifiattend/attendance-server/internal/pkg/database"
)

type officeConfigRepository struct {
	db *database.DB
}

func NewOfficeConfigRepository(db *database.DB) office.OfficeConfigRepository {
	return &officeConfigRepository{db: db}
}

func scanOfficeConfig(row pgx.Row) (office.OfficeConfig, error) {
	var cfg office.OfficeConfig
	err := row.Scan(&cfg.MacAddress, &cfg.UpdatedBy, &cfg.CreatedAt, &cfg.UpdatedAt)
	return cfg, err
}

// Get implements office.OfficeConfigRepository.
func (r *officeConfigRepository) Get(ctx context.Context) (office.OfficeConfig, error) {
	q := GetQuerier(ctx, r.db)

	cfg, err := scanOfficeConfig(q.QueryRow(ctx,
		`SELECT mac_address, updated_by, created_at, updated_at FROM office_config WHERE id = 1`))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return office.OfficeConfig{}, office.ErrOfficeConfigNotFound
		}
		return office.OfficeConfig{}, fmt.Errorf("failed to get office config: %w", err)
	}
	return cfg, nil
}

// Create implements office.OfficeConfigRepository.
func (r *officeConfigRepository) Create(ctx context.Context, cfg office.OfficeConfig) (office.OfficeConfig, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO office_config (id, mac_address, updated_by)
		VALUES (1, $1, $2)
		RETURNING mac_address, updated_by, created_at, updated_at
	`

	created, err := scanOfficeConfig(q.QueryRow(ctx, query, cfg.MacAddress, cfg.UpdatedBy))
	if err != nil {
		if isUniqueViolation(err, "office_config_pkey") {
			return office.OfficeConfig{}, office.ErrOfficeConfigExists
		}
		return office.OfficeConfig{}, fmt.Errorf("failed to insert office config: %w", err)
	}
	return created, nil
}

// Update implements office.OfficeConfigRepository.
func (r *officeConfigRepository) Update(ctx context.Context, cfg office.OfficeConfig) (office.OfficeConfig, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE office_config
		SET mac_address = $1, updated_by = $2, updated_at = NOW()
		WHERE id = 1
		RETURNING mac_address, updated_by, created_at, updated_at
	`

	updated, err := scanOfficeConfig(q.QueryRow(ctx, query, cfg.MacAddress, cfg.UpdatedBy))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return office.OfficeConfig{}, office.ErrOfficeConfigNotFound
		}
		return office.OfficeConfig{}, fmt.Errorf("failed to update office config: %w", err)
	}
	return updated, nil
}
