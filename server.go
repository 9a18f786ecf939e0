package main

import (
	"net/http"

	"storefront-voting/api"
	"storefront-voting/config"
	"storefront-voting/cron"
	"storefront-voting/db"
	"storefront-voting/helper"
	"storefront-voting/route"
	"storefront-voting/services"
)

// Local dev server hosting all three handlers. Production runs them as
// separate Lambda functions from cmd/.
func main() {
	config := config.GetConfig()
	logger := helper.NewLogger("server", config.LOG_LEVEL)

	store, err := db.NewStore(config)
	if err != nil {
		logger.Fatalf("store: %v", err)
	}
	defer store.Close()

	fetcher := services.NewHTTPTemplateFetcher(http.DefaultClient)
	handlers := &api.Handlers{
		Flyer: services.NewFlyerGenerator(services.FlyerConfig{
			BaseURL:     config.BASE_URL,
			TemplateURL: config.FlyerTemplateURL(),
		}, fetcher, services.NewGoQRCode(), helper.NewLogger("flyer", config.LOG_LEVEL)),
		Vote: services.NewVoteRecorder(services.VoteConfig{
			Table:       config.DYNAMODB_TABLE,
			TemplateURL: config.TEMPLATE_URL,
		}, store, fetcher, helper.NewLogger("vote", config.LOG_LEVEL)),
		Results: services.NewResultsReporter(services.ResultsConfig{
			Table: config.DYNAMODB_TABLE,
		}, store, helper.NewLogger("results", config.LOG_LEVEL)),
	}

	if config.LEADERBOARD_LOG_MINUTES > 0 && config.DYNAMODB_TABLE != "" {
		go cron.Init(store, config.DYNAMODB_TABLE, config.LEADERBOARD_LOG_MINUTES, helper.NewLogger("cron", config.LOG_LEVEL))
	}

	e := route.Init(handlers, config.RESULTS_JWT_SECRET, logger)
	e.Logger.Fatal(e.Start(":" + config.RUN_PORT))
}
