// Package dynamoattr decodes DynamoDB items into presence-aware domain values.
//
// A key missing from the item decodes to Absent, a NULL attribute to Null. Values of an
// unexpected type or that cannot be parsed decode to Null: they carry no usable value,
// but the key was there.
package dynamoattr

import (
	"strings"

	"workorder_rollup/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
)

type Item = map[string]types.AttributeValue

// lookup reports the attribute when present and not NULL, and whether the key existed.
func lookup(item Item, name string) (av types.AttributeValue, present bool) {
	av, present = item[name]
	if !present {
		return nil, false
	}
	if _, isNull := av.(*types.AttributeValueMemberNULL); isNull {
		return nil, true
	}
	return av, true
}

// String decodes an S or N attribute.
func String(item Item, name string) entities.Optional[string] {
	av, present := lookup(item, name)
	if !present {
		return entities.Absent[string]()
	}
	var s string
	if av == nil || attributevalue.Unmarshal(av, &s) != nil {
		return entities.Null[string]()
	}
	return entities.Some(s)
}

// Decimal decodes an N attribute, or an S attribute holding a number.
func Decimal(item Item, name string) entities.Optional[decimal.Decimal] {
	raw := String(item, name)
	s, ok := raw.Get()
	if !ok {
		if raw.Present() {
			return entities.Null[decimal.Decimal]()
		}
		return entities.Absent[decimal.Decimal]()
	}
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return entities.Null[decimal.Decimal]()
	}
	return entities.Some(d)
}

func Bool(item Item, name string) entities.Optional[bool] {
	av, present := lookup(item, name)
	if !present {
		return entities.Absent[bool]()
	}
	var b bool
	if av == nil || attributevalue.Unmarshal(av, &b) != nil {
		return entities.Null[bool]()
	}
	return entities.Some(b)
}

// Status decodes a line status stored either as its name (S) or its option set code (N).
// Unknown values are kept so callers can tell them apart from a missing status.
func Status(item Item, name string) entities.Optional[entities.LineStatus] {
	raw := String(item, name)
	v, ok := raw.Get()
	if !ok {
		if raw.Present() {
			return entities.Null[entities.LineStatus]()
		}
		return entities.Absent[entities.LineStatus]()
	}
	status, _ := entities.ParseLineStatus(v)
	return entities.Some(status)
}

// LineSnapshot reads the rollup-relevant fields of a line image.
func LineSnapshot(item Item, kind entities.LineKind) entities.LineSnapshot {
	snap := entities.LineSnapshot{
		WorkOrderID: String(item, entities.AttrWorkOrderID),
		Status:      Status(item, entities.AttrLineStatus),
		TotalAmount: Decimal(item, entities.AttrTotalAmount),
		TotalCost:   Decimal(item, entities.AttrTotalCost),
	}
	if d, ok := kind.Descriptor(); ok {
		snap.Upsold = Bool(item, d.UpsoldAttribute)
	}
	return snap
}

// Line builds a Line from a queried item.
func Line(item Item, kind entities.LineKind) entities.Line {
	snap := LineSnapshot(item, kind)
	return entities.Line{
		ID:          String(item, entities.AttrLineID).OrElse(""),
		Kind:        kind,
		WorkOrderID: snap.WorkOrderID.OrElse(""),
		Status:      snap.Status.OrElse(""),
		State:       entities.RecordState(String(item, entities.AttrRecordState).OrElse("")),
		TotalAmount: snap.TotalAmount,
		TotalCost:   snap.TotalCost,
		Upsold:      snap.Upsold.OrElse(false),
	}
}

func Number(d decimal.Decimal) *types.AttributeValueMemberN {
	return &types.AttributeValueMemberN{Value: d.String()}
}
