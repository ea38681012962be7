package main

import (
	_ "github.com/Shreevarshagopal/E-waste-price-estimator/docs"
	"github.com/Shreevarshagopal/E-waste-price-estimator/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           E-Waste Price Estimator API
// @version         1.0
// @description     Price estimation for discarded electronics (rule engine, material value floor and a learned model) backed by DynamoDB.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	routes.Run()
}
