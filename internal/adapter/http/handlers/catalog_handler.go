package handlers

import (
	"errors"
	"net/http"

	request "github.com/Shreevarshagopal/E-waste-price-estimator/internal/adapter/http/dto/request"
	response "github.com/Shreevarshagopal/E-waste-price-estimator/internal/adapter/http/dto/response"
	"github.com/Shreevarshagopal/E-waste-price-estimator/internal/usecase"
	"github.com/Shreevarshagopal/E-waste-price-estimator/pkg"

	"github.com/gin-gonic/gin"
)

// CatalogHandler serves brand/model lookups for the device-selector flow.

type CatalogHandler struct {
	usecase usecase.ICatalogUseCase
}

func NewCatalogHandler(uc usecase.ICatalogUseCase) *CatalogHandler {
	return &CatalogHandler{usecase: uc}
}

// GetBrands lists (and seeds, when empty) the brands for a device type.
func (h *CatalogHandler) GetBrands(c *gin.Context) {
	brands, err := h.usecase.GetBrands(c.Request.Context(), c.Query("type"))
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, gin.H{"brands": response.FromBrands(brands)})
}

// GetModels lists (and seeds, when empty) the models for a brand and type.
func (h *CatalogHandler) GetModels(c *gin.Context) {
	models, err := h.usecase.GetModels(c.Request.Context(), c.Query("type"), c.Query("brand"))
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, gin.H{"models": response.FromModels(models)})
}

// GetModelByID resolves one catalog entry; unknown ids are a 404.
func (h *CatalogHandler) GetModelByID(c *gin.Context) {
	model, err := h.usecase.GetModelByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromModel(model))
}

// UpdateModelPrice applies an administrative base price change; the change is
// recorded in the model's price history.
func (h *CatalogHandler) UpdateModelPrice(c *gin.Context) {
	var payload request.UpdateBasePriceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_PRICE_INPUT", "Invalid base price payload", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	price, err := payload.ResolveBasePrice()
	if err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_PRICE_INPUT", "Invalid base price payload", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	model, err := h.usecase.UpdateBasePrice(c.Request.Context(), c.Param("id"), price)
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromModel(model))
}

// GetPriceHistory lists the recorded base price changes of a model.
func (h *CatalogHandler) GetPriceHistory(c *gin.Context) {
	history, err := h.usecase.GetPriceHistory(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, gin.H{"history": response.FromPriceHistory(history)})
}

func mapCatalogError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidDeviceType),
		errors.Is(err, usecase.ErrInvalidBrandName),
		errors.Is(err, usecase.ErrInvalidDeviceModelID),
		errors.Is(err, usecase.ErrInvalidBasePrice):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrModelNotFound):
		return pkg.NewDomainErrorSimple("MODEL_NOT_FOUND", "Device model not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
