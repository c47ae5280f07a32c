package routes

import (
	"workorder_rollup/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathNotifications = "/notifications"
	PathWorkOrders    = "/work-orders"
)

func addRollupRoutes(rg *gin.RouterGroup, rollupHandler *handlers.RollupHandler) {
	// Change notifications pushed by the platform for service/product lines.
	rg.POST(PathNotifications, rollupHandler.HandleNotification)

	workOrders := rg.Group(PathWorkOrders)
	{
		workOrders.GET("/:id", rollupHandler.GetWorkOrder)
		workOrders.POST("/:id/rollups/:kind", rollupHandler.RecomputeWorkOrder)
	}
}
