package usecase

import (
	"strings"

	"workorder_rollup/internal/domain/entities"
)

// Qualification is the outcome of a qualified change: which work order to recompute
// and for which line kind.
type Qualification struct {
	WorkOrderID string
	Kind        entities.LineKind
}

// TriggerQualifier decides whether a change notification warrants a rollup recompute.
//
// Create and update require the post-image to carry the work order, the line status and
// at least one non-null amount. Delete requires the same from the pre-image, and the
// deleted line must have been Used.
type TriggerQualifier struct{}

func NewTriggerQualifier() TriggerQualifier {
	return TriggerQualifier{}
}

func (TriggerQualifier) Qualify(event entities.ChangeEvent) (Qualification, bool) {
	kind, ok := entities.LineKindForEntity(event.Entity)
	if !ok {
		return Qualification{}, false
	}

	snap := event.Snapshot
	if !snap.WorkOrderID.Present() || !snap.Status.Present() || !snap.HasMonetaryField() {
		return Qualification{}, false
	}

	workOrderID, ok := snap.WorkOrderID.Get()
	workOrderID = strings.TrimSpace(workOrderID)
	if !ok || workOrderID == "" {
		return Qualification{}, false
	}
	status, ok := snap.Status.Get()
	if !ok || !status.Valid() {
		return Qualification{}, false
	}

	switch event.Operation {
	case entities.ChangeOperationCreate, entities.ChangeOperationUpdate:
	case entities.ChangeOperationDelete:
		if !status.IsUsed() {
			return Qualification{}, false
		}
	default:
		return Qualification{}, false
	}

	if !snap.HasMonetaryValue() {
		return Qualification{}, false
	}
	return Qualification{WorkOrderID: workOrderID, Kind: kind}, true
}
