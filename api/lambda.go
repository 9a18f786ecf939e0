package api

import (
	"context"

	"github.com/aws/aws-lambda-go/events"

	"storefront-voting/services"
)

type LambdaFunc func(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error)

// LambdaHandler adapts a handler to the API Gateway proxy contract. Failures
// are already rendered into the response, so the error is always nil.
func LambdaHandler(handler services.Handler) LambdaFunc {
	return func(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
		resp := handler.Handle(ctx, services.Request{Query: req.QueryStringParameters})

		out := events.APIGatewayProxyResponse{
			StatusCode: int(resp.StatusCode),
			Body:       resp.Body,
		}
		if len(resp.Headers) > 0 {
			out.Headers = resp.Headers.Map()
		}
		return out, nil
	}
}
