// Package memory holds in-process repository implementations with the same
// uniqueness rules as the PostgreSQL schema. Service tests run against them.
package memory

import (
	"context"

	"github.com/google/uuid"
)

// newID mirrors the gen_random_uuid() column defaults.
func newID() string {
	return uuid.NewString()
}

// TxManager runs fn without a transaction.
type TxManager struct{}

func (TxManager) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}
