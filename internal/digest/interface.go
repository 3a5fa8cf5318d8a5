package digest

import (
	"context"
	"stalepr/pkg/domain"
)

// Source supplies the merged stale PR records of one run, in merge order.
//
//go:generate mockgen -package mockdigest -source=interface.go -destination=mock/mockdigest.go *
type Source interface {
	Records(ctx context.Context) ([]domain.StaleRecord, error)
}
