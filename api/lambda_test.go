package api

import (
	"context"
	"net/http"
	"testing"

	"github.com/aws/aws-lambda-go/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront-voting/services"
)

type stubHandler struct {
	got  services.Request
	resp services.Response
}

func (s *stubHandler) Handle(ctx context.Context, req services.Request) services.Response {
	s.got = req
	return s.resp
}

func TestLambdaHandler(t *testing.T) {
	stub := &stubHandler{resp: services.Response{
		StatusCode: http.StatusOK,
		Headers:    services.Headers{{Key: "Content-Type", Value: "text/html"}, {Key: "Cache-Control", Value: "no-cache"}},
		Body:       "<h1>90210</h1>",
	}}

	out, err := LambdaHandler(stub)(context.Background(), events.APIGatewayProxyRequest{
		QueryStringParameters: map[string]string{"postal_code": "90210"},
	})

	require.NoError(t, err)
	assert.Equal(t, "90210", stub.got.Param("postal_code"))
	assert.Equal(t, http.StatusOK, out.StatusCode)
	assert.Equal(t, "<h1>90210</h1>", out.Body)
	assert.Equal(t, map[string]string{"Content-Type": "text/html", "Cache-Control": "no-cache"}, out.Headers)
}

func TestLambdaHandler_NilQueryAndNoHeaders(t *testing.T) {
	stub := &stubHandler{resp: services.Response{StatusCode: http.StatusBadRequest, Body: "Missing postal_code parameter"}}

	out, err := LambdaHandler(stub)(context.Background(), events.APIGatewayProxyRequest{})

	require.NoError(t, err)
	assert.Equal(t, "", stub.got.Param("postal_code"))
	assert.Equal(t, http.StatusBadRequest, out.StatusCode)
	assert.Nil(t, out.Headers)
}
