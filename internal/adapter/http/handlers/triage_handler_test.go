package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"studio_arq/internal/adapter/http/handlers/mocks"
	"studio_arq/internal/domain/entities"
	"studio_arq/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestTriageHandler_ListTriage(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success preserves order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITicketTriageUseCase(ctrl)
		h := NewTriageHandler(uc)

		r := gin.New()
		r.GET("/v1/tickets/triage", h.ListTriage)

		now := time.Now().UTC()
		uc.EXPECT().ListTriage(gomock.Any()).Return([]entities.Ticket{
			{ID: "t-urgent", Status: entities.TicketStatusPending, CreatedAt: now},
			{ID: "t-backlog", Status: entities.TicketStatusPending, CreatedAt: now.Add(-time.Hour)},
			{ID: "t-done", Status: entities.TicketStatusCompleted, CreatedAt: now},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/tickets/triage", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body []map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if len(body) != 3 || body[0]["id"] != "t-urgent" || body[2]["id"] != "t-done" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("usecase error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITicketTriageUseCase(ctrl)
		h := NewTriageHandler(uc)

		r := gin.New()
		r.GET("/v1/tickets/triage", h.ListTriage)

		uc.EXPECT().ListTriage(gomock.Any()).Return(nil, errors.New("dynamodb down"))

		req := httptest.NewRequest(http.MethodGet, "/v1/tickets/triage", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}

func TestTriageHandler_UpdateTicketStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITicketTriageUseCase(ctrl)
		h := NewTriageHandler(uc)

		r := gin.New()
		r.PATCH("/v1/tickets/:id/status", h.UpdateTicketStatus)

		req := httptest.NewRequest(http.MethodPatch, "/v1/tickets/t-1/status", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unknown status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITicketTriageUseCase(ctrl)
		h := NewTriageHandler(uc)

		r := gin.New()
		r.PATCH("/v1/tickets/:id/status", h.UpdateTicketStatus)

		uc.EXPECT().UpdateStatus(gomock.Any(), "t-1", entities.TicketStatus("archived")).Return(entities.Ticket{}, usecase.ErrInvalidTicketStatus)

		req := httptest.NewRequest(http.MethodPatch, "/v1/tickets/t-1/status", bytes.NewBufferString(`{"status":"archived"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITicketTriageUseCase(ctrl)
		h := NewTriageHandler(uc)

		r := gin.New()
		r.PATCH("/v1/tickets/:id/status", h.UpdateTicketStatus)

		uc.EXPECT().UpdateStatus(gomock.Any(), "missing", entities.TicketStatusCompleted).Return(entities.Ticket{}, usecase.ErrTicketNotFound)

		req := httptest.NewRequest(http.MethodPatch, "/v1/tickets/missing/status", bytes.NewBufferString(`{"status":"completed"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITicketTriageUseCase(ctrl)
		h := NewTriageHandler(uc)

		r := gin.New()
		r.PATCH("/v1/tickets/:id/status", h.UpdateTicketStatus)

		uc.EXPECT().UpdateStatus(gomock.Any(), "t-1", entities.TicketStatusInProgress).Return(entities.Ticket{ID: "t-1", Status: entities.TicketStatusInProgress}, nil)

		req := httptest.NewRequest(http.MethodPatch, "/v1/tickets/t-1/status", bytes.NewBufferString(`{"status":"in_progress"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["status"] != "in_progress" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}
