package interfaces

import (
	"context"
	"workorder_rollup/internal/domain/entities"
)

// IWorkOrderRepository abstracts persistence for the parent work order.
//
// ApplyRollup is a partial update: only the triad that belongs to kind is written,
// every other attribute of the stored record is left untouched.
type IWorkOrderRepository interface {
	ApplyRollup(ctx context.Context, workOrderID string, kind entities.LineKind, totals entities.RollupTotals) error
	GetByID(ctx context.Context, id string) (entities.WorkOrder, error)
}
