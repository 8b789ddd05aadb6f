package handlers

import (
	"errors"
	"log"
	"net/http"

	request "studio_arq/internal/adapter/http/dto/request"
	response "studio_arq/internal/adapter/http/dto/response"
	"studio_arq/internal/domain/entities"
	"studio_arq/internal/usecase"
	"studio_arq/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidTicketPayload = pkg.NewDomainErrorSimple("INVALID_TICKET_INPUT", "Invalid ticket payload", http.StatusBadRequest)

// TriageHandler serves the triage display order and status changes.

type TriageHandler struct {
	usecase usecase.ITicketTriageUseCase
}

func NewTriageHandler(uc usecase.ITicketTriageUseCase) *TriageHandler {
	return &TriageHandler{usecase: uc}
}

// ListTriage returns every ticket in display/priority order: urgent pending
// first, then the pending backlog, then everything else.
func (h *TriageHandler) ListTriage(c *gin.Context) {
	tickets, err := h.usecase.ListTriage(c.Request.Context())
	if err != nil {
		log.Printf("[triage][handler] list failed err=%v", err)
		appErr := mapTriageError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromTickets(tickets))
}

// UpdateTicketStatus sets a ticket's status; any status is reachable from any
// other at any time.
func (h *TriageHandler) UpdateTicketStatus(c *gin.Context) {
	id := c.Param("id")

	var payload request.TicketStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidTicketPayload.HTTPStatus, errInvalidTicketPayload.ToHTTPError())
		return
	}

	ticket, err := h.usecase.UpdateStatus(c.Request.Context(), id, entities.TicketStatus(payload.ResolveStatus()))
	if err != nil {
		log.Printf("[triage][handler] update-status failed ticket_id=%s err=%v", id, err)
		appErr := mapTriageError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromTicket(ticket))
}

func mapTriageError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidTicketID), errors.Is(err, usecase.ErrInvalidTicketStatus):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrTicketNotFound):
		return pkg.NewDomainErrorSimple("TICKET_NOT_FOUND", "Ticket not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
