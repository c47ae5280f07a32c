package entities

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// LineKind identifies which child line table a change belongs to.
type LineKind string

const (
	LineKindService LineKind = "service"
	LineKindProduct LineKind = "product"
)

// Logical attribute names shared by both line tables.
const (
	AttrLineID      = "id"
	AttrWorkOrderID = "work_order_id"
	AttrLineStatus  = "line_status"
	AttrTotalAmount = "total_amount"
	AttrTotalCost   = "total_cost"
	AttrRecordState = "state_code"
)

// RollupFields names the three work order attributes written for one line kind.
type RollupFields struct {
	TotalCost   string
	TotalPrice  string
	UpsoldTotal string
}

// LineKindDescriptor is everything that differs between service and product lines.
type LineKindDescriptor struct {
	Kind            LineKind
	EntityName      string
	UpsoldAttribute string
	Rollup          RollupFields
}

// Projection lists the attributes read when recomputing a rollup for this kind.
func (d LineKindDescriptor) Projection() []string {
	return []string{
		AttrLineID,
		AttrTotalAmount,
		AttrTotalCost,
		AttrWorkOrderID,
		AttrLineStatus,
		AttrRecordState,
		d.UpsoldAttribute,
	}
}

var lineKinds = map[LineKind]LineKindDescriptor{
	LineKindService: {
		Kind:            LineKindService,
		EntityName:      "work_order_service",
		UpsoldAttribute: "is_upsold_service",
		Rollup: RollupFields{
			TotalCost:   "service_total_cost",
			TotalPrice:  "service_total_price",
			UpsoldTotal: "upsold_services_total",
		},
	},
	LineKindProduct: {
		Kind:            LineKindProduct,
		EntityName:      "work_order_product",
		UpsoldAttribute: "is_upsold_product",
		Rollup: RollupFields{
			TotalCost:   "product_total_cost",
			TotalPrice:  "product_total_price",
			UpsoldTotal: "upsold_products_total",
		},
	},
}

// LineKinds returns the supported kinds in a stable order.
func LineKinds() []LineKind {
	return []LineKind{LineKindService, LineKindProduct}
}

func (k LineKind) Descriptor() (LineKindDescriptor, bool) {
	d, ok := lineKinds[k]
	return d, ok
}

func (k LineKind) Valid() bool {
	_, ok := lineKinds[k]
	return ok
}

// ParseLineKind accepts either the short kind ("service") or the entity name ("work_order_service").
func ParseLineKind(raw string) (LineKind, bool) {
	v := strings.ToLower(strings.TrimSpace(raw))
	if k := LineKind(v); k.Valid() {
		return k, true
	}
	return LineKindForEntity(v)
}

// LineKindForEntity resolves the kind from a change notification entity name.
func LineKindForEntity(entity string) (LineKind, bool) {
	for _, d := range lineKinds {
		if d.EntityName == entity {
			return d.Kind, true
		}
	}
	return "", false
}

// LineStatus is the lifecycle state of a line. Only Used lines count toward rollups.
type LineStatus string

const (
	LineStatusEstimated LineStatus = "estimated"
	LineStatusUsed      LineStatus = "used"
	LineStatusCompleted LineStatus = "completed"
)

// Field Service option set codes for line status.
const (
	lineStatusCodeEstimated = 690970000
	lineStatusCodeUsed      = 690970001
)

func (s LineStatus) Valid() bool {
	switch s {
	case LineStatusEstimated, LineStatusUsed, LineStatusCompleted:
		return true
	}
	return false
}

func (s LineStatus) IsUsed() bool { return s == LineStatusUsed }

// ParseLineStatus accepts a status name or its option set code.
// Unknown values come back as-is with ok=false.
func ParseLineStatus(raw string) (LineStatus, bool) {
	v := strings.ToLower(strings.TrimSpace(raw))
	if code, err := strconv.Atoi(v); err == nil {
		switch code {
		case lineStatusCodeEstimated:
			return LineStatusEstimated, true
		case lineStatusCodeUsed:
			return LineStatusUsed, true
		}
		return LineStatus(v), false
	}
	s := LineStatus(v)
	return s, s.Valid()
}

// RecordState is the active/inactive flag of a line record, unrelated to LineStatus.
type RecordState string

const (
	RecordStateActive   RecordState = "active"
	RecordStateInactive RecordState = "inactive"
)

// Line is a service or product line as read for rollup purposes.
type Line struct {
	ID          string
	Kind        LineKind
	WorkOrderID string
	Status      LineStatus
	State       RecordState
	TotalAmount Optional[decimal.Decimal]
	TotalCost   Optional[decimal.Decimal]
	Upsold      bool
}
