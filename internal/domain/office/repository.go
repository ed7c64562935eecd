package office

import "context"

type OfficeConfigRepository interface {
	Get(ctx context.Context) (OfficeConfig, error)
	Create(ctx context.Context, cfg OfficeConfig) (OfficeConfig, error)
	Update(ctx context.Context, cfg OfficeConfig) (OfficeConfig, error)
}
