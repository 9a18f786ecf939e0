package main

import (
	"github.com/aws/aws-lambda-go/lambda"

	"storefront-voting/api"
	"storefront-voting/config"
	"storefront-voting/db"
	"storefront-voting/helper"
	"storefront-voting/services"
)

func main() {
	config := config.GetConfig()
	logger := helper.NewLogger("results", config.LOG_LEVEL)

	store, err := db.NewStore(config)
	if err != nil {
		logger.Fatalf("store: %v", err)
	}

	results := services.NewResultsReporter(services.ResultsConfig{
		Table: config.DYNAMODB_TABLE,
	}, store, logger)

	lambda.Start(api.LambdaHandler(results))
}
