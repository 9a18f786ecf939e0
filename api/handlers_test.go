package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront-voting/services"
)

func TestHandlers_ServeWritesResponse(t *testing.T) {
	stub := &stubHandler{resp: services.Response{
		StatusCode: http.StatusOK,
		Headers:    services.Headers{{Key: "Content-Type", Value: "text/plain"}},
		Body:       "Visit Count | Postal Code",
	}}
	h := &Handlers{Results: stub}

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/results?limit=3&limit=9", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.GetResults(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/plain", rec.Header().Get("Content-Type"))
	assert.Equal(t, "Visit Count | Postal Code", rec.Body.String())
	assert.Equal(t, "3", stub.got.Param("limit"))
}

func TestHandlers_PassesPostalCode(t *testing.T) {
	flyer := &stubHandler{resp: services.Response{StatusCode: http.StatusBadRequest, Body: "Missing postal_code parameter"}}
	vote := &stubHandler{resp: services.Response{StatusCode: http.StatusOK, Body: "ok"}}
	h := &Handlers{Flyer: flyer, Vote: vote}
	e := echo.New()

	rec := httptest.NewRecorder()
	require.NoError(t, h.GetFlyer(e.NewContext(httptest.NewRequest(http.MethodGet, "/flyer", nil), rec)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "", flyer.got.Param("postal_code"))

	rec = httptest.NewRecorder()
	require.NoError(t, h.GetVote(e.NewContext(httptest.NewRequest(http.MethodGet, "/vote?postal_code=SW1A+1AA", nil), rec)))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "SW1A 1AA", vote.got.Param("postal_code"))
}
