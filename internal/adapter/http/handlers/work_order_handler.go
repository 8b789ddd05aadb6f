package handlers

import (
	"errors"
	"log"
	"net/http"

	request "studio_arq/internal/adapter/http/dto/request"
	response "studio_arq/internal/adapter/http/dto/response"
	"studio_arq/internal/usecase"
	"studio_arq/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidWorkOrderPayload = pkg.NewDomainErrorSimple("INVALID_WORK_ORDER_INPUT", "Invalid work order payload", http.StatusBadRequest)

// WorkOrderHandler creates and reads work orders, replays creation events
// into the incentive accrual and serves architect lookups.

type WorkOrderHandler struct {
	workOrders usecase.IWorkOrderUseCase
	accrual    usecase.IIncentiveAccrualUseCase
	architects usecase.IArchitectUseCase
}

func NewWorkOrderHandler(workOrders usecase.IWorkOrderUseCase, accrual usecase.IIncentiveAccrualUseCase, architects usecase.IArchitectUseCase) *WorkOrderHandler {
	return &WorkOrderHandler{workOrders: workOrders, accrual: accrual, architects: architects}
}

// CreateWorkOrder opens a new project with the default checklist already
// seeded. When an architect id is present the referral discount accrues once.
func (h *WorkOrderHandler) CreateWorkOrder(c *gin.Context) {
	var payload request.WorkOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidWorkOrderPayload.HTTPStatus, errInvalidWorkOrderPayload.ToHTTPError())
		return
	}

	wo, err := h.workOrders.Create(c.Request.Context(), payload.ResolveTitle(), payload.ResolveArchitectID())
	if err != nil {
		log.Printf("[workorder][handler] create failed title=%q err=%v", payload.ResolveTitle(), err)
		appErr := mapWorkOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromWorkOrder(wo, usecase.PercentComplete(wo.Checklist)))
}

// GetWorkOrder returns a work order with its checklist.
func (h *WorkOrderHandler) GetWorkOrder(c *gin.Context) {
	id := c.Param("id")

	wo, err := h.workOrders.GetByID(c.Request.Context(), id)
	if err != nil {
		log.Printf("[workorder][handler] get failed work_order_id=%s err=%v", id, err)
		appErr := mapWorkOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromWorkOrder(wo, usecase.PercentComplete(wo.Checklist)))
}

// WorkOrderCreatedEvent replays a creation event into the incentive accrual.
// Redelivered events answer 200 with credited=false.
func (h *WorkOrderHandler) WorkOrderCreatedEvent(c *gin.Context) {
	var payload request.WorkOrderCreatedEventRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidWorkOrderPayload.HTTPStatus, errInvalidWorkOrderPayload.ToHTTPError())
		return
	}
	workOrderID := payload.ResolveWorkOrderID()

	architect, credited, err := h.accrual.OnWorkOrderCreated(c.Request.Context(), workOrderID, payload.ResolveArchitectID())
	if err != nil {
		log.Printf("[workorder][handler] accrual failed work_order_id=%s err=%v", workOrderID, err)
		if credited {
			// The ledger recorded the credit but the new discount was not
			// saved; surface the failure without revoking the credit.
			appErr := pkg.NewDomainErrorSimple("ACCRUAL_PERSIST_FAILURE", "Credit recorded but discount not saved", http.StatusBadGateway)
			c.JSON(appErr.HTTPStatus, gin.H{"error": appErr.ToHTTPError(), "result": response.FromAccrual(workOrderID, credited, architect)})
			return
		}
		appErr := mapWorkOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromAccrual(workOrderID, credited, architect))
}

// GetArchitect returns an architect with the current referral discount.
func (h *WorkOrderHandler) GetArchitect(c *gin.Context) {
	id := c.Param("id")

	architect, err := h.architects.GetByID(c.Request.Context(), id)
	if err != nil {
		log.Printf("[workorder][handler] get-architect failed architect_id=%s err=%v", id, err)
		appErr := mapWorkOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromArchitect(architect))
}

func mapWorkOrderError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidWorkOrderTitle),
		errors.Is(err, usecase.ErrInvalidWorkOrderID),
		errors.Is(err, usecase.ErrInvalidArchitectID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrWorkOrderNotFound):
		return pkg.NewDomainErrorSimple("WORK_ORDER_NOT_FOUND", "Work order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrArchitectNotFound):
		return pkg.NewDomainErrorSimple("ARCHITECT_NOT_FOUND", "Architect not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
