package interfaces

import (
	"context"
	"workorder_rollup/internal/domain/entities"
)

// ILineRepository reads child lines of a work order.
//
// Implementations must return only active (non-voided) records of the given kind
// whose work_order_id matches, with the kind's projection populated.
type ILineRepository interface {
	ListActiveByWorkOrder(ctx context.Context, kind entities.LineKind, workOrderID string) ([]entities.Line, error)
}
