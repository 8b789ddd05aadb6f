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

var errInvalidReorderPayload = pkg.NewDomainErrorSimple("INVALID_REORDER_INPUT", "Invalid reorder payload", http.StatusBadRequest)

// ReorderHandler exposes group ordering reads and drag-and-drop reorders.

type ReorderHandler struct {
	coordinator usecase.IReorderCoordinator
}

func NewReorderHandler(coordinator usecase.IReorderCoordinator) *ReorderHandler {
	return &ReorderHandler{coordinator: coordinator}
}

// GetGroup returns a group's items in their current saved order.
func (h *ReorderHandler) GetGroup(c *gin.Context) {
	groupKey := c.Param("group_key")

	items, err := h.coordinator.ReadGroup(c.Request.Context(), groupKey)
	if err != nil {
		log.Printf("[reorder][handler] read-group failed group_key=%s err=%v", groupKey, err)
		appErr := mapReorderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromOrderedItems(items))
}

// ReorderGroup applies a full permutation of a group's item ids. A reorder
// superseded by a newer one for the same group answers 200 with the
// superseded flag set and no outcomes.
func (h *ReorderHandler) ReorderGroup(c *gin.Context) {
	groupKey := c.Param("group_key")

	var payload request.ReorderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidReorderPayload.HTTPStatus, errInvalidReorderPayload.ToHTTPError())
		return
	}

	outcomes, err := h.coordinator.Reorder(c.Request.Context(), groupKey, payload.ResolveOrderedIDs())
	if err != nil {
		if errors.Is(err, usecase.ErrStaleReorder) {
			c.JSON(http.StatusOK, response.ReorderResponse{GroupKey: groupKey, Superseded: true})
			return
		}
		log.Printf("[reorder][handler] reorder failed group_key=%s err=%v", groupKey, err)
		appErr := mapReorderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	resp := response.FromOrderOutcomes(groupKey, outcomes)
	if resp.Failed > 0 {
		log.Printf("[reorder][handler] partial persistence group_key=%s failed=%d", groupKey, resp.Failed)
		appErr := pkg.NewDomainErrorSimple("REORDER_PARTIAL_FAILURE", "Some positions could not be saved", http.StatusBadGateway)
		c.JSON(appErr.HTTPStatus, gin.H{"error": appErr.ToHTTPError(), "result": resp})
		return
	}
	c.JSON(http.StatusOK, resp)
}

func mapReorderError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidGroupKey), errors.Is(err, usecase.ErrInvalidPermutation):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
