package response

import (
	"workorder_rollup/internal/domain/entities"
	"workorder_rollup/internal/usecase"

	"github.com/shopspring/decimal"
)

type RollupTotalsResponse struct {
	TotalCost   decimal.Decimal `json:"total_cost" swaggertype:"string" example:"50"`
	TotalPrice  decimal.Decimal `json:"total_price" swaggertype:"string" example:"150"`
	UpsoldTotal decimal.Decimal `json:"upsold_total" swaggertype:"string" example:"50"`
}

type NotificationResponse struct {
	EventID     string                `json:"event_id"`
	Qualified   bool                  `json:"qualified"`
	WorkOrderID string                `json:"work_order_id,omitempty"`
	Kind        string                `json:"kind,omitempty"`
	Totals      *RollupTotalsResponse `json:"totals,omitempty"`
}

type RecomputeResponse struct {
	WorkOrderID string               `json:"work_order_id"`
	Kind        string               `json:"kind"`
	Totals      RollupTotalsResponse `json:"totals"`
}

type WorkOrderResponse struct {
	ID       string               `json:"id"`
	Name     string               `json:"name,omitempty"`
	Services RollupTotalsResponse `json:"services"`
	Products RollupTotalsResponse `json:"products"`
}

func FromRollupTotals(t entities.RollupTotals) RollupTotalsResponse {
	return RollupTotalsResponse{
		TotalCost:   t.TotalCost,
		TotalPrice:  t.TotalPrice,
		UpsoldTotal: t.UpsoldTotal,
	}
}

func FromRollupResult(eventID string, r usecase.RollupResult) NotificationResponse {
	res := NotificationResponse{EventID: eventID, Qualified: r.Qualified}
	if !r.Qualified {
		return res
	}
	totals := FromRollupTotals(r.Totals)
	res.WorkOrderID = r.WorkOrderID
	res.Kind = string(r.Kind)
	res.Totals = &totals
	return res
}

func FromRecompute(workOrderID string, kind entities.LineKind, t entities.RollupTotals) RecomputeResponse {
	return RecomputeResponse{WorkOrderID: workOrderID, Kind: string(kind), Totals: FromRollupTotals(t)}
}

func FromWorkOrder(w entities.WorkOrder) WorkOrderResponse {
	return WorkOrderResponse{
		ID:       w.ID,
		Name:     w.Name,
		Services: FromRollupTotals(w.Services),
		Products: FromRollupTotals(w.Products),
	}
}
