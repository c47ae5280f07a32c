package request

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"workorder_rollup/internal/domain/entities"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidEntity    = errors.New("invalid entity")
	ErrInvalidOperation = errors.New("invalid operation")
)

// NotificationRequest is a change notification pushed by the platform.
//
// `snapshot` holds the post-image for create/update and the pre-image for delete.
// Keys are kept raw so that a missing key and an explicit null stay distinguishable.
type NotificationRequest struct {
	EventID    string                     `json:"event_id"`
	Entity     string                     `json:"entity" binding:"required"`
	Operation  string                     `json:"operation" binding:"required"`
	Snapshot   map[string]json.RawMessage `json:"snapshot" swaggertype:"object"`
	OccurredAt *time.Time                 `json:"occurred_at"`
}

func (r NotificationRequest) ToChangeEvent() (entities.ChangeEvent, error) {
	entity := strings.ToLower(strings.TrimSpace(r.Entity))
	if entity == "" {
		return entities.ChangeEvent{}, ErrInvalidEntity
	}
	op, ok := entities.ParseChangeOperation(r.Operation)
	if !ok {
		return entities.ChangeEvent{}, ErrInvalidOperation
	}

	id := strings.TrimSpace(r.EventID)
	if id == "" {
		id = uuid.NewString()
	}
	occurredAt := time.Now().UTC()
	if r.OccurredAt != nil {
		occurredAt = r.OccurredAt.UTC()
	}

	kind, _ := entities.LineKindForEntity(entity)
	return entities.ChangeEvent{
		ID:         id,
		Entity:     entity,
		Operation:  op,
		Snapshot:   DecodeSnapshot(r.Snapshot, kind),
		OccurredAt: occurredAt,
	}, nil
}

// DecodeSnapshot maps a raw JSON image onto a LineSnapshot. Values of the wrong shape are
// treated as null.
func DecodeSnapshot(raw map[string]json.RawMessage, kind entities.LineKind) entities.LineSnapshot {
	snap := entities.LineSnapshot{
		WorkOrderID: jsonReference(raw, entities.AttrWorkOrderID),
		Status:      jsonStatus(raw, entities.AttrLineStatus),
		TotalAmount: jsonDecimal(raw, entities.AttrTotalAmount),
		TotalCost:   jsonDecimal(raw, entities.AttrTotalCost),
	}
	if d, ok := kind.Descriptor(); ok {
		snap.Upsold = jsonBool(raw, d.UpsoldAttribute)
	}
	return snap
}

func isNull(v json.RawMessage) bool {
	return len(bytes.TrimSpace(v)) == 0 || bytes.Equal(bytes.TrimSpace(v), []byte("null"))
}

// jsonReference accepts either a plain id or an entity reference object {"id": "..."}.
func jsonReference(raw map[string]json.RawMessage, key string) entities.Optional[string] {
	v, ok := raw[key]
	if !ok {
		return entities.Absent[string]()
	}
	if isNull(v) {
		return entities.Null[string]()
	}
	var s string
	if err := json.Unmarshal(v, &s); err == nil {
		return entities.Some(s)
	}
	var ref struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(v, &ref); err == nil && ref.ID != "" {
		return entities.Some(ref.ID)
	}
	return entities.Null[string]()
}

// jsonStatus accepts a status name or an option set code, bare or as {"value": code}.
func jsonStatus(raw map[string]json.RawMessage, key string) entities.Optional[entities.LineStatus] {
	v, ok := raw[key]
	if !ok {
		return entities.Absent[entities.LineStatus]()
	}
	if isNull(v) {
		return entities.Null[entities.LineStatus]()
	}
	var s string
	if err := json.Unmarshal(v, &s); err == nil {
		status, _ := entities.ParseLineStatus(s)
		return entities.Some(status)
	}
	var n json.Number
	if err := json.Unmarshal(v, &n); err == nil {
		status, _ := entities.ParseLineStatus(n.String())
		return entities.Some(status)
	}
	var opt struct {
		Value json.Number `json:"value"`
	}
	if err := json.Unmarshal(v, &opt); err == nil && opt.Value != "" {
		status, _ := entities.ParseLineStatus(opt.Value.String())
		return entities.Some(status)
	}
	return entities.Null[entities.LineStatus]()
}

// jsonDecimal accepts a bare number or numeric string, or a money object {"value": 12.5}.
func jsonDecimal(raw map[string]json.RawMessage, key string) entities.Optional[decimal.Decimal] {
	v, ok := raw[key]
	if !ok {
		return entities.Absent[decimal.Decimal]()
	}
	if isNull(v) {
		return entities.Null[decimal.Decimal]()
	}
	var d decimal.Decimal
	if err := d.UnmarshalJSON(v); err == nil {
		return entities.Some(d)
	}
	var money struct {
		Value *decimal.Decimal `json:"value"`
	}
	if err := json.Unmarshal(v, &money); err == nil && money.Value != nil {
		return entities.Some(*money.Value)
	}
	return entities.Null[decimal.Decimal]()
}

func jsonBool(raw map[string]json.RawMessage, key string) entities.Optional[bool] {
	v, ok := raw[key]
	if !ok {
		return entities.Absent[bool]()
	}
	var b bool
	if isNull(v) || json.Unmarshal(v, &b) != nil {
		return entities.Null[bool]()
	}
	return entities.Some(b)
}
