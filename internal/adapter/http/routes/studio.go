package routes

import (
	"studio_arq/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathTickets    = "/tickets"
	PathGroups     = "/groups"
	PathWorkOrders = "/work-orders"
	PathArchitects = "/architects"
)

func addStudioRoutes(rg *gin.RouterGroup, triageHandler *handlers.TriageHandler, reorderHandler *handlers.ReorderHandler, checklistHandler *handlers.ChecklistHandler, workOrderHandler *handlers.WorkOrderHandler) {
	tickets := rg.Group(PathTickets)
	{
		tickets.GET("/triage", triageHandler.ListTriage)
		tickets.PATCH("/:id/status", triageHandler.UpdateTicketStatus)
	}

	groups := rg.Group(PathGroups)
	{
		groups.GET("/:group_key", reorderHandler.GetGroup)
		groups.POST("/:group_key/reorder", reorderHandler.ReorderGroup)
	}

	workOrders := rg.Group(PathWorkOrders)
	{
		workOrders.POST("", workOrderHandler.CreateWorkOrder)
		workOrders.POST("/events/created", workOrderHandler.WorkOrderCreatedEvent)
		workOrders.GET("/:id", workOrderHandler.GetWorkOrder)
		workOrders.GET("/:id/checklist", checklistHandler.GetChecklist)
		workOrders.POST("/:id/checklist/ops", checklistHandler.ApplyChecklistOp)
	}

	architects := rg.Group(PathArchitects)
	{
		architects.GET("/:id", workOrderHandler.GetArchitect)
	}
}
