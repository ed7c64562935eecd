package office

import "context"

// Provider supplies the current office configuration to the check-in verifier.
type Provider interface {
	Current(ctx context.Context) (OfficeConfig, error)
}

type OfficeService interface {
	Provider
	Create(ctx context.Context, updatedBy string, req UpsertOfficeConfigRequest) (OfficeConfig, error)
	Update(ctx context.Context, updatedBy string, req UpsertOfficeConfigRequest) (OfficeConfig, error)
}
