package entities

import "github.com/shopspring/decimal"

// RollupTotals is one triad of derived sums for a single line kind.
type RollupTotals struct {
	TotalCost   decimal.Decimal
	TotalPrice  decimal.Decimal
	UpsoldTotal decimal.Decimal
}

func (t RollupTotals) Equal(o RollupTotals) bool {
	return t.TotalCost.Equal(o.TotalCost) &&
		t.TotalPrice.Equal(o.TotalPrice) &&
		t.UpsoldTotal.Equal(o.UpsoldTotal)
}

// WorkOrder is the parent record whose rollups are maintained.
//
// Storage model (DynamoDB):
//   - PK: id
//   - service triad: service_total_cost, service_total_price, upsold_services_total
//   - product triad: product_total_cost, product_total_price, upsold_products_total
type WorkOrder struct {
	ID       string
	Name     string
	Services RollupTotals
	Products RollupTotals
}

// Totals returns the triad that belongs to kind.
func (w WorkOrder) Totals(kind LineKind) RollupTotals {
	if kind == LineKindProduct {
		return w.Products
	}
	return w.Services
}
