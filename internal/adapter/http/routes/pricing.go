package routes

import (
	"github.com/Shreevarshagopal/E-waste-price-estimator/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathEstimates   = "/estimates"
	PathMaterials   = "/materials"
	PathCatalog     = "/catalog"
	PathSubmissions = "/submissions"
)

func addPricingRoutes(rg *gin.RouterGroup, estimateHandler *handlers.EstimateHandler, catalogHandler *handlers.CatalogHandler, submissionHandler *handlers.SubmissionHandler) {
	estimates := rg.Group(PathEstimates)
	{
		estimates.POST("", estimateHandler.EstimatePrice)
		estimates.POST("/calculate", estimateHandler.CalculateModelPrice)
	}

	materials := rg.Group(PathMaterials)
	{
		materials.GET("/value", estimateHandler.MaterialValue)
		materials.GET("/value/models/:id", estimateHandler.ModelMaterialValue)
		materials.PUT("/prices", estimateHandler.UpdateMaterialPrice)
	}

	catalog := rg.Group(PathCatalog)
	{
		catalog.GET("/brands", catalogHandler.GetBrands)
		catalog.GET("/models", catalogHandler.GetModels)
		catalog.GET("/models/:id", catalogHandler.GetModelByID)
		catalog.PUT("/models/:id/price", catalogHandler.UpdateModelPrice)
		catalog.GET("/models/:id/history", catalogHandler.GetPriceHistory)
	}

	submissions := rg.Group(PathSubmissions)
	{
		submissions.POST("", submissionHandler.CreateSubmission)
		submissions.GET("/:id", submissionHandler.GetSubmission)
	}
}
