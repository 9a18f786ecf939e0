package api

import (
	"net/http"
	"net/url"

	"github.com/labstack/echo/v4"

	"storefront-voting/services"
)

// Handlers exposes the three invocation handlers over echo for local runs.
type Handlers struct {
	Flyer   services.Handler
	Vote    services.Handler
	Results services.Handler
}

func (h *Handlers) GetFlyer(c echo.Context) error {
	return serve(c, h.Flyer)
}

func (h *Handlers) GetVote(c echo.Context) error {
	return serve(c, h.Vote)
}

func (h *Handlers) GetResults(c echo.Context) error {
	return serve(c, h.Results)
}

func Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

func serve(c echo.Context, handler services.Handler) error {
	req := services.Request{Query: firstValues(c.QueryParams())}
	resp := handler.Handle(c.Request().Context(), req)
	return writeResponse(c, resp)
}

func writeResponse(c echo.Context, resp services.Response) error {
	header := c.Response().Header()
	for _, h := range resp.Headers {
		header.Set(h.Key, h.Value)
	}
	c.Response().WriteHeader(int(resp.StatusCode))
	_, err := c.Response().Write([]byte(resp.Body))
	return err
}

// firstValues mirrors API Gateway, which keeps one value per query key.
func firstValues(values url.Values) map[string]string {
	query := make(map[string]string, len(values))
	for key, v := range values {
		if len(v) > 0 {
			query[key] = v[0]
		}
	}
	return query
}
