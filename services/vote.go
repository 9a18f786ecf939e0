package services

import (
	"context"
	"errors"
	"strconv"

	"github.com/labstack/gommon/log"

	"storefront-voting/constant"
	"storefront-voting/db"
	"storefront-voting/helper"
	"storefront-voting/model"
	"storefront-voting/validator"
)

// The vote page template uses lower case tokens, unlike the flyer template.
const (
	TOKEN_VOTE_POSTAL_CODE = "{{postal_code}}"
	TOKEN_VOTE_VISIT_COUNT = "{{visit_count}}"
)

type VoteConfig struct {
	Table       string `env:"DYNAMODB_TABLE" validate:"required"`
	TemplateURL string `env:"TEMPLATE_URL" validate:"required"`
}

// VoteRecorder counts one scan of a flyer and renders the thank-you page.
type VoteRecorder struct {
	config  VoteConfig
	store   db.CounterStore
	fetcher TemplateFetcher
	logger  *log.Logger
}

func NewVoteRecorder(cfg VoteConfig, store db.CounterStore, fetcher TemplateFetcher, logger *log.Logger) *VoteRecorder {
	if logger == nil {
		logger = helper.NewLogger("vote", "info")
	}
	return &VoteRecorder{config: cfg, store: store, fetcher: fetcher, logger: logger}
}

func (v *VoteRecorder) Handle(ctx context.Context, req Request) (resp Response) {
	defer recoverInto(&resp, v.failure)

	page, err := v.record(ctx, req)
	if err != nil {
		return v.failure(err)
	}
	resp = Response{StatusCode: StatusOK, Body: page}
	resp.Headers.Set("Content-Type", constant.CONTENT_TYPE_HTML)
	return resp
}

func (v *VoteRecorder) record(ctx context.Context, req Request) (string, error) {
	postalCode, err := model.NewPostalCode(req.Param(constant.PARAM_POSTAL_CODE))
	if err != nil {
		return "", newError(ValidationError, "Missing postal_code parameter", nil)
	}
	if err := validator.RequiredSettings(v.config); err != nil {
		return "", newError(ConfigError, "", err)
	}

	visitCount, err := v.store.Increment(ctx, v.config.Table, postalCode)
	if err != nil {
		return "", newError(StoreError, "Error updating counter", err)
	}
	v.logger.Debugj(log.JSON{"postal_code": postalCode.String(), "visit_count": visitCount})

	template, err := v.fetcher.Fetch(ctx, v.config.TemplateURL)
	if err != nil {
		return "", newError(UpstreamFetchError, "Error fetching template", err)
	}

	return Substitute(template, []Replacement{
		{Token: TOKEN_VOTE_POSTAL_CODE, Value: postalCode.String()},
		{Token: TOKEN_VOTE_VISIT_COUNT, Value: strconv.FormatInt(visitCount, 10)},
	}), nil
}

// failure keeps error details in the log; callers only see a short message.
func (v *VoteRecorder) failure(err error) Response {
	kind := KindOf(err)
	body := "Internal server error"
	switch kind {
	case ValidationError:
		body = err.Error()
	case StoreError, UpstreamFetchError:
		var e *Error
		if errors.As(err, &e) {
			body = e.Msg
		}
	}
	if kind != ValidationError {
		v.logger.Errorj(log.JSON{"kind": kind.String(), "error": err.Error()})
	}
	return Response{StatusCode: kind.Status(), Body: body}
}
