package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Shreevarshagopal/E-waste-price-estimator/internal/adapter/http/handlers/mocks"
	"github.com/Shreevarshagopal/E-waste-price-estimator/internal/domain/entities"
	"github.com/Shreevarshagopal/E-waste-price-estimator/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func TestEstimateHandler_EstimatePrice(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(h *EstimateHandler) *gin.Engine {
		r := gin.New()
		r.POST("/v1/estimates", h.EstimatePrice)
		return r
	}

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewEstimateHandler(mocks.NewMockIPricingUseCase(ctrl), mocks.NewMockIMaterialValueUseCase(ctrl))

		req := httptest.NewRequest(http.MethodPost, "/v1/estimates", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		newRouter(h).ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("invalid age value", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewEstimateHandler(mocks.NewMockIPricingUseCase(ctrl), mocks.NewMockIMaterialValueUseCase(ctrl))

		req := httptest.NewRequest(http.MethodPost, "/v1/estimates", bytes.NewBufferString(`{"item_type":"mobile","age":"abc"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		newRouter(h).ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("rule-based success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		pricing := mocks.NewMockIPricingUseCase(ctrl)
		h := NewEstimateHandler(pricing, mocks.NewMockIMaterialValueUseCase(ctrl))

		pricing.EXPECT().EstimatePrice(gomock.Any()).Return(entities.PriceEstimate{
			Amount: decimal.RequireFromString("1600.00"),
			Basis:  entities.EstimateBasisRuleBased,
		}, nil)

		body := `{"item_type":"mobile","age":0,"functional_status":"working","battery_status":"good","screen_condition":"good","motherboard_status":"good"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/estimates", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		newRouter(h).ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
		}
		var resp map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response json: %v", err)
		}
		if resp["amount"] != "1600.00" || resp["currency"] != "INR" || resp["basis"] != "rule-based" {
			t.Fatalf("unexpected response: %v", resp)
		}
	})

	t.Run("learned basis falls back to rules", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		pricing := mocks.NewMockIPricingUseCase(ctrl)
		h := NewEstimateHandler(pricing, mocks.NewMockIMaterialValueUseCase(ctrl))

		pricing.EXPECT().PredictPrice(gomock.Any()).Return(entities.PriceEstimate{}, errors.New("artifacts missing"))
		pricing.EXPECT().EstimatePrice(gomock.Any()).Return(entities.PriceEstimate{
			Amount: decimal.RequireFromString("1600.00"),
			Basis:  entities.EstimateBasisRuleBased,
		}, nil)

		body := `{"item_type":"mobile","basis":"learned-model"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/estimates", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		newRouter(h).ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response json: %v", err)
		}
		if resp["basis"] != "rule-based" {
			t.Fatalf("expected rule-based fallback, got %v", resp["basis"])
		}
	})

	t.Run("learned basis success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		pricing := mocks.NewMockIPricingUseCase(ctrl)
		h := NewEstimateHandler(pricing, mocks.NewMockIMaterialValueUseCase(ctrl))

		pricing.EXPECT().PredictPrice(gomock.Any()).Return(entities.PriceEstimate{
			Amount: decimal.RequireFromString("1950.75"),
			Basis:  entities.EstimateBasisLearnedModel,
		}, nil)

		body := `{"item_type":"mobile","basis":"learned-model"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/estimates", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		newRouter(h).ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response json: %v", err)
		}
		if resp["basis"] != "learned-model" || resp["amount"] != "1950.75" {
			t.Fatalf("unexpected response: %v", resp)
		}
	})

	t.Run("negative age maps to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		pricing := mocks.NewMockIPricingUseCase(ctrl)
		h := NewEstimateHandler(pricing, mocks.NewMockIMaterialValueUseCase(ctrl))

		pricing.EXPECT().EstimatePrice(gomock.Any()).Return(entities.PriceEstimate{}, usecase.ErrNegativeAge)

		req := httptest.NewRequest(http.MethodPost, "/v1/estimates", bytes.NewBufferString(`{"item_type":"mobile","age":-1}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		newRouter(h).ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("internal error maps to 500", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		pricing := mocks.NewMockIPricingUseCase(ctrl)
		h := NewEstimateHandler(pricing, mocks.NewMockIMaterialValueUseCase(ctrl))

		pricing.EXPECT().EstimatePrice(gomock.Any()).Return(entities.PriceEstimate{}, errors.New("boom"))

		req := httptest.NewRequest(http.MethodPost, "/v1/estimates", bytes.NewBufferString(`{"item_type":"mobile"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		newRouter(h).ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}

func TestEstimateHandler_CalculateModelPrice(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(h *EstimateHandler) *gin.Engine {
		r := gin.New()
		r.POST("/v1/estimates/calculate", h.CalculateModelPrice)
		return r
	}

	t.Run("missing model id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewEstimateHandler(mocks.NewMockIPricingUseCase(ctrl), mocks.NewMockIMaterialValueUseCase(ctrl))

		req := httptest.NewRequest(http.MethodPost, "/v1/estimates/calculate", bytes.NewBufferString(`{"condition":"working"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		newRouter(h).ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("model not found maps to 404", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		pricing := mocks.NewMockIPricingUseCase(ctrl)
		h := NewEstimateHandler(pricing, mocks.NewMockIMaterialValueUseCase(ctrl))

		pricing.EXPECT().CalculateModelPrice(gomock.Any(), "missing", "working", gomock.Any()).
			Return(usecase.ModelPriceEstimate{}, usecase.ErrModelNotFound)

		req := httptest.NewRequest(http.MethodPost, "/v1/estimates/calculate", bytes.NewBufferString(`{"model_id":"missing","condition":"working","age":1}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		newRouter(h).ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success with the floor applied", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		pricing := mocks.NewMockIPricingUseCase(ctrl)
		h := NewEstimateHandler(pricing, mocks.NewMockIMaterialValueUseCase(ctrl))

		pricing.EXPECT().CalculateModelPrice(gomock.Any(), "m-1", "working", gomock.Any()).
			Return(usecase.ModelPriceEstimate{
				Model: entities.DeviceModel{ID: "m-1", Name: "Budget Phone", DeviceType: entities.DeviceTypePhone},
				Estimate: entities.PriceEstimate{
					Amount:             decimal.RequireFromString("211.70"),
					Basis:              entities.EstimateBasisRuleBased,
					MaterialFloorValue: decimal.RequireFromString("211.70"),
					MaterialFloorUsed:  true,
				},
				MaterialValues: map[entities.Material]decimal.Decimal{
					entities.MaterialGold: decimal.RequireFromString("170.00"),
				},
			}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/estimates/calculate", bytes.NewBufferString(`{"model_id":"m-1","condition":"working","age":0}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		newRouter(h).ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
		}
		var resp map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response json: %v", err)
		}
		if resp["amount"] != "211.70" || resp["material_floor_applied"] != true {
			t.Fatalf("unexpected response: %v", resp)
		}
	})
}

func TestEstimateHandler_MaterialValue(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		materials := mocks.NewMockIMaterialValueUseCase(ctrl)
		h := NewEstimateHandler(mocks.NewMockIPricingUseCase(ctrl), materials)

		materials.EXPECT().EstimateMaterialValue(gomock.Any(), entities.DeviceTypePhone).Return(usecase.MaterialValue{
			Values: map[entities.Material]decimal.Decimal{
				entities.MaterialGold: decimal.RequireFromString("170.00"),
			},
			Total: decimal.RequireFromString("211.70"),
		}, nil)

		r := gin.New()
		r.GET("/v1/materials/value", h.MaterialValue)
		req := httptest.NewRequest(http.MethodGet, "/v1/materials/value?type=phone", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response json: %v", err)
		}
		if resp["total"] != "211.70" {
			t.Fatalf("unexpected response: %v", resp)
		}
	})

	t.Run("usecase failure maps to 500", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		materials := mocks.NewMockIMaterialValueUseCase(ctrl)
		h := NewEstimateHandler(mocks.NewMockIPricingUseCase(ctrl), materials)

		materials.EXPECT().EstimateMaterialValue(gomock.Any(), gomock.Any()).Return(usecase.MaterialValue{}, errors.New("db"))

		r := gin.New()
		r.GET("/v1/materials/value", h.MaterialValue)
		req := httptest.NewRequest(http.MethodGet, "/v1/materials/value?type=phone", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}

func TestEstimateHandler_ModelMaterialValue(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(h *EstimateHandler) *gin.Engine {
		r := gin.New()
		r.GET("/v1/materials/value/models/:id", h.ModelMaterialValue)
		return r
	}

	t.Run("unknown model maps to 404", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		materials := mocks.NewMockIMaterialValueUseCase(ctrl)
		h := NewEstimateHandler(mocks.NewMockIPricingUseCase(ctrl), materials)

		materials.EXPECT().EstimateModelMaterialValue(gomock.Any(), "missing").
			Return(usecase.MaterialValue{}, usecase.ErrModelNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/materials/value/models/missing", nil)
		w := httptest.NewRecorder()
		newRouter(h).ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		materials := mocks.NewMockIMaterialValueUseCase(ctrl)
		h := NewEstimateHandler(mocks.NewMockIPricingUseCase(ctrl), materials)

		materials.EXPECT().EstimateModelMaterialValue(gomock.Any(), "m-1").Return(usecase.MaterialValue{
			Values: map[entities.Material]decimal.Decimal{
				entities.MaterialAluminum: decimal.RequireFromString("10.00"),
				entities.MaterialGold:     decimal.RequireFromString("150.00"),
			},
			Total: decimal.RequireFromString("160.00"),
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/materials/value/models/m-1", nil)
		w := httptest.NewRecorder()
		newRouter(h).ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response json: %v", err)
		}
		if resp["model_id"] != "m-1" || resp["total"] != "160.00" {
			t.Fatalf("unexpected response: %v", resp)
		}
	})
}

func TestEstimateHandler_UpdateMaterialPrice(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(h *EstimateHandler) *gin.Engine {
		r := gin.New()
		r.PUT("/v1/materials/prices", h.UpdateMaterialPrice)
		return r
	}

	t.Run("missing fields fail binding", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewEstimateHandler(mocks.NewMockIPricingUseCase(ctrl), mocks.NewMockIMaterialValueUseCase(ctrl))

		req := httptest.NewRequest(http.MethodPut, "/v1/materials/prices", bytes.NewBufferString(`{"material":"gold"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		newRouter(h).ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unknown material maps to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		materials := mocks.NewMockIMaterialValueUseCase(ctrl)
		h := NewEstimateHandler(mocks.NewMockIPricingUseCase(ctrl), materials)

		materials.EXPECT().UpdateMaterialPrice(gomock.Any(), "vibranium", gomock.Any()).
			Return(entities.MaterialPrice{}, usecase.ErrUnknownMaterial)

		body := `{"material":"vibranium","price_per_gram":100}`
		req := httptest.NewRequest(http.MethodPut, "/v1/materials/prices", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		newRouter(h).ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success returns the stored price", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		materials := mocks.NewMockIMaterialValueUseCase(ctrl)
		h := NewEstimateHandler(mocks.NewMockIPricingUseCase(ctrl), materials)

		materials.EXPECT().UpdateMaterialPrice(gomock.Any(), "gold", gomock.Any()).
			Return(entities.MaterialPrice{
				Material:     entities.MaterialGold,
				PricePerGram: decimal.RequireFromString("6000"),
			}, nil)

		body := `{"material":"gold","price_per_gram":6000}`
		req := httptest.NewRequest(http.MethodPut, "/v1/materials/prices", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		newRouter(h).ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
		}
		var resp map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response json: %v", err)
		}
		if resp["material"] != "gold" || resp["price_per_gram"] != "6000" {
			t.Fatalf("unexpected response: %v", resp)
		}
	})
}
