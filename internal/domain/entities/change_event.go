package entities

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type ChangeOperation string

const (
	ChangeOperationCreate ChangeOperation = "create"
	ChangeOperationUpdate ChangeOperation = "update"
	ChangeOperationDelete ChangeOperation = "delete"
)

func ParseChangeOperation(raw string) (ChangeOperation, bool) {
	op := ChangeOperation(strings.ToLower(strings.TrimSpace(raw)))
	switch op {
	case ChangeOperationCreate, ChangeOperationUpdate, ChangeOperationDelete:
		return op, true
	}
	return op, false
}

// LineSnapshot is the image of a line carried by a change notification:
// the record after the change for create/update, before it for delete.
//
// Every field keeps its presence so that "not in the image" and "explicitly null"
// stay distinguishable.
type LineSnapshot struct {
	WorkOrderID Optional[string]
	Status      Optional[LineStatus]
	TotalAmount Optional[decimal.Decimal]
	TotalCost   Optional[decimal.Decimal]
	Upsold      Optional[bool]
}

// HasMonetaryField reports whether either amount key is in the image.
func (s LineSnapshot) HasMonetaryField() bool {
	return s.TotalAmount.Present() || s.TotalCost.Present()
}

// HasMonetaryValue reports whether either amount carries a non-null value.
func (s LineSnapshot) HasMonetaryValue() bool {
	return s.TotalAmount.HasValue() || s.TotalCost.HasValue()
}

// ChangeEvent is one create/update/delete notification on a record.
type ChangeEvent struct {
	ID         string
	Entity     string
	Operation  ChangeOperation
	Snapshot   LineSnapshot
	OccurredAt time.Time
}
