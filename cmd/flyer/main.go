package main

import (
	"net/http"

	"github.com/aws/aws-lambda-go/lambda"

	"storefront-voting/api"
	"storefront-voting/config"
	"storefront-voting/helper"
	"storefront-voting/services"
)

func main() {
	config := config.GetConfig()
	flyer := services.NewFlyerGenerator(services.FlyerConfig{
		BaseURL:     config.BASE_URL,
		TemplateURL: config.TEMPLATE_URL,
	}, services.NewHTTPTemplateFetcher(http.DefaultClient), services.NewGoQRCode(), helper.NewLogger("flyer", config.LOG_LEVEL))

	lambda.Start(api.LambdaHandler(flyer))
}
