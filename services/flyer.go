package services

import (
	"context"
	"net/url"

	"github.com/labstack/gommon/log"

	"storefront-voting/constant"
	"storefront-voting/helper"
	"storefront-voting/model"
	"storefront-voting/validator"
)

const (
	TOKEN_FLYER_POSTAL_CODE = "{{POSTAL_CODE}}"
	TOKEN_FLYER_QR_CODE     = "{{QR_CODE}}"
	TOKEN_FLYER_TARGET_URL  = "{{TARGET_URL}}"
)

type FlyerConfig struct {
	BaseURL     string `env:"BASE_URL" validate:"required"`
	TemplateURL string `env:"TEMPLATE_URL" validate:"required"`
}

// FlyerGenerator renders the printable flyer whose QR code points at the
// vote page for one postal code.
type FlyerGenerator struct {
	config  FlyerConfig
	fetcher TemplateFetcher
	encoder QREncoder
	logger  *log.Logger
}

func NewFlyerGenerator(cfg FlyerConfig, fetcher TemplateFetcher, encoder QREncoder, logger *log.Logger) *FlyerGenerator {
	if logger == nil {
		logger = helper.NewLogger("flyer", "info")
	}
	return &FlyerGenerator{config: cfg, fetcher: fetcher, encoder: encoder, logger: logger}
}

func (g *FlyerGenerator) Handle(ctx context.Context, req Request) (resp Response) {
	defer recoverInto(&resp, g.failure)

	page, err := g.generate(ctx, req)
	if err != nil {
		return g.failure(err)
	}
	resp = Response{StatusCode: StatusOK, Body: page}
	resp.Headers.Set("Content-Type", constant.CONTENT_TYPE_HTML)
	resp.Headers.Set("Cache-Control", "no-cache")
	return resp
}

func (g *FlyerGenerator) generate(ctx context.Context, req Request) (string, error) {
	postalCode, err := model.NewPostalCode(req.Param(constant.PARAM_POSTAL_CODE))
	if err != nil {
		return "", newError(ValidationError, "Missing postal_code parameter", nil)
	}
	if err := validator.RequiredSettings(g.config); err != nil {
		return "", newError(ConfigError, "", err)
	}

	targetURL := TargetURL(g.config.BaseURL, postalCode)
	png, err := g.encoder.EncodePNG(targetURL)
	if err != nil {
		return "", newError(UnknownError, "", err)
	}

	template, err := g.fetcher.Fetch(ctx, g.config.TemplateURL)
	if err != nil {
		return "", newError(UpstreamFetchError, "", err)
	}

	return Substitute(template, []Replacement{
		{Token: TOKEN_FLYER_POSTAL_CODE, Value: postalCode.String()},
		{Token: TOKEN_FLYER_QR_CODE, Value: PNGDataURI(png)},
		{Token: TOKEN_FLYER_TARGET_URL, Value: targetURL},
	}), nil
}

func (g *FlyerGenerator) failure(err error) Response {
	kind := KindOf(err)
	var body string
	switch kind {
	case ValidationError:
		body = err.Error()
	case UpstreamFetchError:
		body = "Error fetching template: " + err.Error()
	default:
		body = "Internal error: " + err.Error()
	}
	if kind != ValidationError {
		g.logger.Errorj(log.JSON{"kind": kind.String(), "error": err.Error()})
	}
	resp := Response{StatusCode: kind.Status(), Body: body}
	resp.Headers.Set("Content-Type", constant.CONTENT_TYPE_HTML)
	return resp
}

// TargetURL appends the url-encoded postal code to base.
func TargetURL(base string, postalCode model.PostalCode) string {
	params := url.Values{}
	params.Set(constant.PARAM_POSTAL_CODE, postalCode.String())
	return base + "?" + params.Encode()
}
