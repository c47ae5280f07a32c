package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"workorder_rollup/internal/domain/entities"
	"workorder_rollup/internal/infrastructure/logger"
	"workorder_rollup/internal/usecase/interfaces"
)

var (
	ErrInvalidWorkOrderID   = errors.New("invalid work_order_id")
	ErrUnknownLineKind      = errors.New("unknown line kind")
	ErrLineQueryFailed      = errors.New("line query failed")
	ErrWorkOrderWriteFailed = errors.New("work order write failed")
	ErrWorkOrderNotFound    = interfaces.ErrWorkOrderNotFound
)

// RollupResult describes what handling one change notification did.
type RollupResult struct {
	Qualified   bool
	WorkOrderID string
	Kind        entities.LineKind
	Totals      entities.RollupTotals
}

// IRollupUseCase exposes the rollup operations:
//   - HandleChange: qualify a change notification and, when relevant, recompute
//   - Recompute: rebuild one triad of a work order from its current lines
//   - GetWorkOrder: read the stored totals
type IRollupUseCase interface {
	HandleChange(ctx context.Context, event entities.ChangeEvent) (RollupResult, error)
	Recompute(ctx context.Context, workOrderID string, kind entities.LineKind) (entities.RollupTotals, error)
	GetWorkOrder(ctx context.Context, id string) (entities.WorkOrder, error)
}

type RollupUseCase struct {
	lines      interfaces.ILineRepository
	workOrders interfaces.IWorkOrderRepository
	qualifier  TriggerQualifier
	log        *logger.Logger
}

var _ IRollupUseCase = (*RollupUseCase)(nil)

func NewRollupUseCase(lines interfaces.ILineRepository, workOrders interfaces.IWorkOrderRepository, log *logger.Logger) *RollupUseCase {
	if log == nil {
		log = logger.NewNop()
	}
	return &RollupUseCase{
		lines:      lines,
		workOrders: workOrders,
		qualifier:  NewTriggerQualifier(),
		log:        log.Component("rollup.usecase"),
	}
}

func (u *RollupUseCase) HandleChange(ctx context.Context, event entities.ChangeEvent) (RollupResult, error) {
	log := u.log.With("event_id", event.ID, "entity", event.Entity, "operation", string(event.Operation))

	q, ok := u.qualifier.Qualify(event)
	if !ok {
		log.Debug("change not qualified")
		return RollupResult{}, nil
	}

	totals, err := u.recompute(ctx, log, q.WorkOrderID, q.Kind)
	if err != nil {
		return RollupResult{}, err
	}
	return RollupResult{Qualified: true, WorkOrderID: q.WorkOrderID, Kind: q.Kind, Totals: totals}, nil
}

func (u *RollupUseCase) Recompute(ctx context.Context, workOrderID string, kind entities.LineKind) (entities.RollupTotals, error) {
	return u.recompute(ctx, u.log, workOrderID, kind)
}

func (u *RollupUseCase) recompute(ctx context.Context, log *logger.Logger, workOrderID string, kind entities.LineKind) (entities.RollupTotals, error) {
	workOrderID = strings.TrimSpace(workOrderID)
	if workOrderID == "" {
		return entities.RollupTotals{}, ErrInvalidWorkOrderID
	}
	if !kind.Valid() {
		return entities.RollupTotals{}, ErrUnknownLineKind
	}
	log = log.With("work_order_id", workOrderID, "kind", string(kind))

	lines, err := u.lines.ListActiveByWorkOrder(ctx, kind, workOrderID)
	if err != nil {
		log.Error("rollup failed", "stage", "query", "error", err.Error())
		return entities.RollupTotals{}, fmt.Errorf("%w: %w", ErrLineQueryFailed, err)
	}

	totals := AggregateLines(lines)

	if err := u.workOrders.ApplyRollup(ctx, workOrderID, kind, totals); err != nil {
		log.Error("rollup failed", "stage", "write", "error", err.Error(),
			"total_price", totals.TotalPrice.String(),
			"total_cost", totals.TotalCost.String(),
			"upsold_total", totals.UpsoldTotal.String())
		return entities.RollupTotals{}, fmt.Errorf("%w: %w", ErrWorkOrderWriteFailed, err)
	}

	log.Info("rollup applied",
		"lines", len(lines),
		"total_price", totals.TotalPrice.String(),
		"total_cost", totals.TotalCost.String(),
		"upsold_total", totals.UpsoldTotal.String())
	return totals, nil
}

// AggregateLines sums the Used lines. Lines in any other status contribute nothing,
// and a missing amount or cost contributes zero.
func AggregateLines(lines []entities.Line) entities.RollupTotals {
	var totals entities.RollupTotals
	for _, line := range lines {
		if !line.Status.IsUsed() {
			continue
		}
		amount, hasAmount := line.TotalAmount.Get()
		if hasAmount {
			totals.TotalPrice = totals.TotalPrice.Add(amount)
		}
		if cost, ok := line.TotalCost.Get(); ok {
			totals.TotalCost = totals.TotalCost.Add(cost)
		}
		if line.Upsold && hasAmount {
			totals.UpsoldTotal = totals.UpsoldTotal.Add(amount)
		}
	}
	return totals
}

func (u *RollupUseCase) GetWorkOrder(ctx context.Context, id string) (entities.WorkOrder, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.WorkOrder{}, ErrInvalidWorkOrderID
	}

	wo, err := u.workOrders.GetByID(ctx, id)
	if err != nil {
		return entities.WorkOrder{}, err
	}
	if wo.ID == "" {
		return entities.WorkOrder{}, ErrWorkOrderNotFound
	}
	return wo, nil
}
