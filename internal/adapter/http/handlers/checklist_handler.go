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

var errInvalidChecklistPayload = pkg.NewDomainErrorSimple("INVALID_CHECKLIST_INPUT", "Invalid checklist payload", http.StatusBadRequest)

// ChecklistHandler serves a work order's checklist and its edit operations.

type ChecklistHandler struct {
	usecase usecase.IChecklistUseCase
}

func NewChecklistHandler(uc usecase.IChecklistUseCase) *ChecklistHandler {
	return &ChecklistHandler{usecase: uc}
}

// GetChecklist returns the work order with its checklist and completion
// percentage.
func (h *ChecklistHandler) GetChecklist(c *gin.Context) {
	id := c.Param("id")

	wo, err := h.usecase.GetChecklist(c.Request.Context(), id)
	if err != nil {
		log.Printf("[checklist][handler] get failed work_order_id=%s err=%v", id, err)
		appErr := mapChecklistError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromWorkOrder(wo, usecase.PercentComplete(wo.Checklist)))
}

// ApplyChecklistOp applies a single checklist operation (add, edit text,
// delete, toggle done) and returns the updated work order.
func (h *ChecklistHandler) ApplyChecklistOp(c *gin.Context) {
	id := c.Param("id")

	var payload request.ChecklistOpRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidChecklistPayload.HTTPStatus, errInvalidChecklistPayload.ToHTTPError())
		return
	}

	op := usecase.ChecklistOp{
		Kind: usecase.ChecklistOpKind(payload.ResolveOp()),
		Key:  payload.ResolveKey(),
		Text: payload.Text,
		Done: payload.ResolveDone(),
	}

	wo, err := h.usecase.ApplyOp(c.Request.Context(), id, op)
	if err != nil {
		log.Printf("[checklist][handler] apply-op failed work_order_id=%s op=%s err=%v", id, payload.ResolveOp(), err)
		appErr := mapChecklistError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromWorkOrder(wo, usecase.PercentComplete(wo.Checklist)))
}

func mapChecklistError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidWorkOrderID),
		errors.Is(err, usecase.ErrInvalidChecklistOp),
		errors.Is(err, usecase.ErrInvalidChecklistKey),
		errors.Is(err, usecase.ErrEmptyChecklistText):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrWorkOrderNotFound):
		return pkg.NewDomainErrorSimple("WORK_ORDER_NOT_FOUND", "Work order not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
