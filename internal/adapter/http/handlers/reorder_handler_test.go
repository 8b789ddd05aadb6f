package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"studio_arq/internal/adapter/http/handlers/mocks"
	"studio_arq/internal/domain/entities"
	"studio_arq/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestReorderHandler_GetGroup(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success in saved order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		coord := mocks.NewMockIReorderCoordinator(ctrl)
		h := NewReorderHandler(coord)

		r := gin.New()
		r.GET("/v1/groups/:group_key", h.GetGroup)

		coord.EXPECT().ReadGroup(gomock.Any(), "living-room").Return([]entities.OrderedItem{
			{ID: "a", GroupKey: "living-room", Label: "Sofa", OrderIndex: 0},
			{ID: "b", GroupKey: "living-room", Label: "Mesa", OrderIndex: 1},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/groups/living-room", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body []map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if len(body) != 2 || body[0]["id"] != "a" || body[1]["order_index"] != float64(1) {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("invalid group key", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		coord := mocks.NewMockIReorderCoordinator(ctrl)
		h := NewReorderHandler(coord)

		r := gin.New()
		r.GET("/v1/groups/:group_key", h.GetGroup)

		coord.EXPECT().ReadGroup(gomock.Any(), "  ").Return(nil, usecase.ErrInvalidGroupKey)

		req := httptest.NewRequest(http.MethodGet, "/v1/groups/%20%20", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestReorderHandler_ReorderGroup(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		coord := mocks.NewMockIReorderCoordinator(ctrl)
		h := NewReorderHandler(coord)

		r := gin.New()
		r.POST("/v1/groups/:group_key/reorder", h.ReorderGroup)

		req := httptest.NewRequest(http.MethodPost, "/v1/groups/g1/reorder", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("bad permutation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		coord := mocks.NewMockIReorderCoordinator(ctrl)
		h := NewReorderHandler(coord)

		r := gin.New()
		r.POST("/v1/groups/:group_key/reorder", h.ReorderGroup)

		coord.EXPECT().Reorder(gomock.Any(), "g1", []string{"a", "a"}).Return(nil, usecase.ErrInvalidPermutation)

		req := httptest.NewRequest(http.MethodPost, "/v1/groups/g1/reorder", bytes.NewBufferString(`{"ordered_ids":["a","a"]}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("superseded reorder answers 200", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		coord := mocks.NewMockIReorderCoordinator(ctrl)
		h := NewReorderHandler(coord)

		r := gin.New()
		r.POST("/v1/groups/:group_key/reorder", h.ReorderGroup)

		coord.EXPECT().Reorder(gomock.Any(), "g1", []string{"b", "a"}).Return(nil, usecase.ErrStaleReorder)

		req := httptest.NewRequest(http.MethodPost, "/v1/groups/g1/reorder", bytes.NewBufferString(`{"ordered_ids":["b","a"]}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["superseded"] != true {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("partial persistence failure answers 502 with per-id outcomes", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		coord := mocks.NewMockIReorderCoordinator(ctrl)
		h := NewReorderHandler(coord)

		r := gin.New()
		r.POST("/v1/groups/:group_key/reorder", h.ReorderGroup)

		coord.EXPECT().Reorder(gomock.Any(), "g1", []string{"b", "a"}).Return([]entities.OrderWriteOutcome{
			{ID: "b", Index: 0, OK: true},
			{ID: "a", Index: 1, OK: false, Err: errors.New("conditional check failed")},
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/groups/g1/reorder", bytes.NewBufferString(`{"ordered_ids":["b","a"]}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		result, ok := body["result"].(map[string]any)
		if !ok || result["failed"] != float64(1) {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		coord := mocks.NewMockIReorderCoordinator(ctrl)
		h := NewReorderHandler(coord)

		r := gin.New()
		r.POST("/v1/groups/:group_key/reorder", h.ReorderGroup)

		coord.EXPECT().Reorder(gomock.Any(), "g1", []string{"c", "a", "b"}).Return([]entities.OrderWriteOutcome{
			{ID: "c", Index: 0, OK: true},
			{ID: "a", Index: 1, OK: true},
			{ID: "b", Index: 2, OK: true},
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/groups/g1/reorder", bytes.NewBufferString(`{"ordered_ids":["c","a","b"]}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		outcomes, ok := body["outcomes"].([]any)
		if !ok || len(outcomes) != 3 || body["failed"] != float64(0) {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}
