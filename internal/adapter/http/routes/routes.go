package routes

import (
	"log"
	"os"
	"strconv"

	_ "github.com/Shreevarshagopal/E-waste-price-estimator/docs" // This will be auto-generated
	"github.com/Shreevarshagopal/E-waste-price-estimator/internal/adapter/http/handlers"
	repository2 "github.com/Shreevarshagopal/E-waste-price-estimator/internal/adapter/persistence/repository"
	"github.com/Shreevarshagopal/E-waste-price-estimator/internal/infrastructure/database"
	"github.com/Shreevarshagopal/E-waste-price-estimator/internal/infrastructure/ml"
	"github.com/Shreevarshagopal/E-waste-price-estimator/internal/infrastructure/vision"
	"github.com/Shreevarshagopal/E-waste-price-estimator/internal/usecase"
	"github.com/Shreevarshagopal/E-waste-price-estimator/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	catalogRepo := repository2.NewDeviceCatalogDynamoRepository(ddb)
	materialRepo := repository2.NewMaterialPriceDynamoRepository(ddb)
	itemRepo := repository2.NewEWasteItemDynamoRepository(ddb)

	var predictor interfaces.IPricePredictor
	if p, err := ml.Default(); err != nil {
		log.Printf("[routes][setup] learned price model not available, rule engine only err=%v", err)
	} else {
		predictor = p
	}

	var classifier interfaces.IConditionClassifier
	if gw, err := vision.NewDetectorGateway(os.Getenv("DETECTOR_URL")); err != nil {
		log.Printf("[routes][setup] condition classifier not configured, self-reported statuses only err=%v", err)
	} else {
		classifier = gw
	}

	materialUseCase := usecase.NewMaterialValueUseCase(materialRepo, catalogRepo)
	pricingUseCase := usecase.NewPricingUseCase(catalogRepo, materialUseCase, predictor)
	catalogUseCase := usecase.NewCatalogUseCase(catalogRepo)
	submissionUseCase := usecase.NewSubmissionUseCase(itemRepo, classifier, pricingUseCase)

	estimateHandler := handlers.NewEstimateHandler(pricingUseCase, materialUseCase)
	catalogHandler := handlers.NewCatalogHandler(catalogUseCase)
	submissionHandler := handlers.NewSubmissionHandler(submissionUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addPricingRoutes(v1, estimateHandler, catalogHandler, submissionHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
