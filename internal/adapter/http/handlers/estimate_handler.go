package handlers

import (
	"errors"
	"log"
	"net/http"

	request "github.com/Shreevarshagopal/E-waste-price-estimator/internal/adapter/http/dto/request"
	response "github.com/Shreevarshagopal/E-waste-price-estimator/internal/adapter/http/dto/response"
	"github.com/Shreevarshagopal/E-waste-price-estimator/internal/domain/entities"
	"github.com/Shreevarshagopal/E-waste-price-estimator/internal/usecase"
	"github.com/Shreevarshagopal/E-waste-price-estimator/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidEstimatePayload = pkg.NewDomainErrorSimple("INVALID_ESTIMATE_INPUT", "Invalid estimate payload", http.StatusBadRequest)

// EstimateHandler handles the pricing endpoints: the generic self-report
// path, the catalog-driven path with the material value floor, and the
// standalone material value breakdown.

type EstimateHandler struct {
	pricing   usecase.IPricingUseCase
	materials usecase.IMaterialValueUseCase
}

func NewEstimateHandler(pricing usecase.IPricingUseCase, materials usecase.IMaterialValueUseCase) *EstimateHandler {
	return &EstimateHandler{pricing: pricing, materials: materials}
}

// EstimatePrice prices a self-reported device. The basis field selects the
// learned path; a soft-failing predictor silently falls back to the rules.
func (h *EstimateHandler) EstimatePrice(c *gin.Context) {
	var payload request.EstimateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEstimatePayload.HTTPStatus, errInvalidEstimatePayload.ToHTTPError())
		return
	}

	input, err := payload.ToEstimateInput()
	if err != nil {
		c.JSON(errInvalidEstimatePayload.HTTPStatus, errInvalidEstimatePayload.ToHTTPError())
		return
	}

	estimate, err := h.estimate(payload.ResolveBasis(), input)
	if err != nil {
		appErr := mapPricingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPriceEstimate(estimate))
}

func (h *EstimateHandler) estimate(basis entities.EstimateBasis, input entities.EstimateInput) (entities.PriceEstimate, error) {
	if basis == entities.EstimateBasisLearnedModel {
		estimate, err := h.pricing.PredictPrice(input)
		if err == nil {
			return estimate, nil
		}
		if errors.Is(err, usecase.ErrNegativeAge) {
			return entities.PriceEstimate{}, err
		}
		log.Printf("[estimate][handler] learned path unavailable, falling back to rules err=%v", err)
	}
	return h.pricing.EstimatePrice(input)
}

// CalculateModelPrice prices a concrete catalog entry; the response carries
// the material breakdown backing the floor decision.
func (h *EstimateHandler) CalculateModelPrice(c *gin.Context) {
	var payload request.CalculatePriceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEstimatePayload.HTTPStatus, errInvalidEstimatePayload.ToHTTPError())
		return
	}

	age, err := payload.ResolveAge()
	if err != nil {
		c.JSON(errInvalidEstimatePayload.HTTPStatus, errInvalidEstimatePayload.ToHTTPError())
		return
	}

	result, err := h.pricing.CalculateModelPrice(c.Request.Context(), payload.ResolveModelID(), payload.Condition, age)
	if err != nil {
		appErr := mapPricingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromModelPriceEstimate(result))
}

// MaterialValue returns the per-material scrap value for a device type.
// Unknown types fall back to the default weight profile rather than failing.
func (h *EstimateHandler) MaterialValue(c *gin.Context) {
	deviceType := entities.ParseDeviceType(c.Query("type"))

	value, err := h.materials.EstimateMaterialValue(c.Request.Context(), deviceType)
	if err != nil {
		appErr := mapPricingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromMaterialValue(deviceType, value))
}

// ModelMaterialValue returns the material breakdown of one catalog entry,
// using its persisted composition when present.
func (h *EstimateHandler) ModelMaterialValue(c *gin.Context) {
	value, err := h.materials.EstimateModelMaterialValue(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapPricingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromModelMaterialValue(c.Param("id"), value))
}

// UpdateMaterialPrice overrides one per-gram material price on behalf of an
// operator; subsequent floor calculations pick the new value up.
func (h *EstimateHandler) UpdateMaterialPrice(c *gin.Context) {
	var payload request.MaterialPriceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_PRICE_INPUT", "Invalid material price payload", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	price, err := payload.ResolvePricePerGram()
	if err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_PRICE_INPUT", "Invalid material price payload", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	updated, err := h.materials.UpdateMaterialPrice(c.Request.Context(), payload.ResolveMaterial(), price)
	if err != nil {
		appErr := mapPricingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromMaterialPrice(updated))
}

func mapPricingError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrNegativeAge),
		errors.Is(err, usecase.ErrInvalidDeviceModelID),
		errors.Is(err, usecase.ErrUnknownMaterial),
		errors.Is(err, usecase.ErrInvalidMaterialPrice):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrModelNotFound):
		return pkg.NewDomainErrorSimple("MODEL_NOT_FOUND", "Device model not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
