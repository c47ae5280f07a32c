package interfaces

import "errors"

// ErrWorkOrderNotFound is returned by IWorkOrderRepository.ApplyRollup when the target
// work order does not exist. The rollup never creates work orders.
var ErrWorkOrderNotFound = errors.New("work order not found")
