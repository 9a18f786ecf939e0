package main

import (
	"net/http"

	"github.com/aws/aws-lambda-go/lambda"

	"storefront-voting/api"
	"storefront-voting/config"
	"storefront-voting/db"
	"storefront-voting/helper"
	"storefront-voting/services"
)

func main() {
	config := config.GetConfig()
	logger := helper.NewLogger("vote", config.LOG_LEVEL)

	// Store handles are created once per container and reused across invocations.
	store, err := db.NewStore(config)
	if err != nil {
		logger.Fatalf("store: %v", err)
	}

	vote := services.NewVoteRecorder(services.VoteConfig{
		Table:       config.DYNAMODB_TABLE,
		TemplateURL: config.TEMPLATE_URL,
	}, store, services.NewHTTPTemplateFetcher(http.DefaultClient), logger)

	lambda.Start(api.LambdaHandler(vote))
}
