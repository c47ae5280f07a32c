package handlers

import (
	"errors"
	"net/http"

	request "workorder_rollup/internal/adapter/http/dto/request"
	response "workorder_rollup/internal/adapter/http/dto/response"
	"workorder_rollup/internal/domain/entities"
	"workorder_rollup/internal/infrastructure/logger"
	"workorder_rollup/internal/usecase"
	"workorder_rollup/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidNotificationPayload = pkg.NewDomainErrorSimple("INVALID_NOTIFICATION", "Invalid change notification payload", http.StatusBadRequest)
	errInvalidLineKind            = pkg.NewDomainErrorSimple("INVALID_LINE_KIND", "Line kind must be service or product", http.StatusBadRequest)
)

// RollupHandler exposes the rollup over HTTP: the platform pushes change notifications,
// operators can force a recompute or read the stored totals.
type RollupHandler struct {
	usecase usecase.IRollupUseCase
	log     *logger.Logger
}

func NewRollupHandler(uc usecase.IRollupUseCase, log *logger.Logger) *RollupHandler {
	if log == nil {
		log = logger.NewNop()
	}
	return &RollupHandler{usecase: uc, log: log.Component("rollup.handler")}
}

// HandleNotification qualifies a change notification and recomputes when relevant.
//
// A failed recompute answers with a non-2xx status so the platform sees the error and
// applies its own retry policy.
//
// @Summary  Handle a line change notification
// @Tags     rollup
// @Accept   json
// @Produce  json
// @Param    notification  body      request.NotificationRequest  true  "Change notification"
// @Success  200           {object}  response.NotificationResponse
// @Failure  400           {object}  pkg.HTTPError
// @Failure  404           {object}  pkg.HTTPError
// @Failure  502           {object}  pkg.HTTPError
// @Router   /notifications [post]
func (h *RollupHandler) HandleNotification(c *gin.Context) {
	var payload request.NotificationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidNotificationPayload.HTTPStatus, errInvalidNotificationPayload.ToHTTPError())
		return
	}

	event, err := payload.ToChangeEvent()
	if err != nil {
		c.JSON(errInvalidNotificationPayload.HTTPStatus, errInvalidNotificationPayload.ToHTTPError())
		return
	}

	result, err := h.usecase.HandleChange(c.Request.Context(), event)
	if err != nil {
		h.log.Warn("notification failed", "event_id", event.ID, "entity", event.Entity, "error", err.Error())
		appErr := mapRollupError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromRollupResult(event.ID, result))
}

// RecomputeWorkOrder rebuilds one triad of a work order from its current lines.
//
// @Summary  Recompute work order totals
// @Tags     rollup
// @Produce  json
// @Param    id    path      string  true  "Work order id"
// @Param    kind  path      string  true  "Line kind"  Enums(service, product)
// @Success  200   {object}  response.RecomputeResponse
// @Failure  400   {object}  pkg.HTTPError
// @Failure  404   {object}  pkg.HTTPError
// @Failure  502   {object}  pkg.HTTPError
// @Router   /work-orders/{id}/rollups/{kind} [post]
func (h *RollupHandler) RecomputeWorkOrder(c *gin.Context) {
	kind, ok := entities.ParseLineKind(c.Param("kind"))
	if !ok {
		c.JSON(errInvalidLineKind.HTTPStatus, errInvalidLineKind.ToHTTPError())
		return
	}
	workOrderID := c.Param("id")

	totals, err := h.usecase.Recompute(c.Request.Context(), workOrderID, kind)
	if err != nil {
		appErr := mapRollupError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromRecompute(workOrderID, kind, totals))
}

// @Summary  Get work order totals
// @Tags     rollup
// @Produce  json
// @Param    id   path      string  true  "Work order id"
// @Success  200  {object}  response.WorkOrderResponse
// @Failure  404  {object}  pkg.HTTPError
// @Router   /work-orders/{id} [get]
func (h *RollupHandler) GetWorkOrder(c *gin.Context) {
	wo, err := h.usecase.GetWorkOrder(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapRollupError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromWorkOrder(wo))
}

func mapRollupError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidWorkOrderID), errors.Is(err, usecase.ErrUnknownLineKind):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrWorkOrderNotFound):
		return pkg.NewDomainErrorSimple("WORK_ORDER_NOT_FOUND", "Work order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrLineQueryFailed), errors.Is(err, usecase.ErrWorkOrderWriteFailed):
		return pkg.NewDomainError("STORE_FAILURE", "Rollup could not be applied", err, http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
