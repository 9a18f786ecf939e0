package services

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/labstack/gommon/log"

	"storefront-voting/constant"
	"storefront-voting/db"
	"storefront-voting/helper"
	"storefront-voting/model"
	"storefront-voting/validator"
)

const (
	HEADER_VISIT_COUNT = "Visit Count"
	HEADER_POSTAL_CODE = "Postal Code"
	NO_RECORDS_MESSAGE = "No records found"
)

type ResultsConfig struct {
	Table string `env:"DYNAMODB_TABLE" validate:"required"`
}

// ResultsReporter renders the leaderboard as a plain text table.
type ResultsReporter struct {
	config ResultsConfig
	store  db.CounterStore
	logger *log.Logger
}

func NewResultsReporter(cfg ResultsConfig, store db.CounterStore, logger *log.Logger) *ResultsReporter {
	if logger == nil {
		logger = helper.NewLogger("results", "info")
	}
	return &ResultsReporter{config: cfg, store: store, logger: logger}
}

func (r *ResultsReporter) Handle(ctx context.Context, req Request) (resp Response) {
	defer recoverInto(&resp, r.failure)

	records, err := r.leaderboard(ctx, req)
	if err != nil {
		return r.failure(err)
	}
	if len(records) == 0 {
		return jsonResponse(StatusOK, map[string]string{"message": NO_RECORDS_MESSAGE})
	}
	resp = Response{StatusCode: StatusOK, Body: FormatTable(records)}
	resp.Headers.Set("Content-Type", constant.CONTENT_TYPE_PLAIN)
	return resp
}

func (r *ResultsReporter) leaderboard(ctx context.Context, req Request) ([]model.PostalCodeRecord, error) {
	if err := validator.RequiredSettings(r.config); err != nil {
		return nil, newError(ConfigError, "", err)
	}
	limit := parseLimit(req.Param(constant.PARAM_LIMIT))

	records, err := r.store.Scan(ctx, r.config.Table)
	if err != nil {
		return nil, newError(StoreError, "", err)
	}
	ranked := Rank(records)
	if limit > 0 && limit < len(ranked) {
		ranked = ranked[:limit]
	}
	return ranked, nil
}

func (r *ResultsReporter) failure(err error) Response {
	kind := KindOf(err)
	if kind != ValidationError {
		r.logger.Errorj(log.JSON{"kind": kind.String(), "error": err.Error()})
	}
	return jsonResponse(kind.Status(), map[string]string{"error": err.Error()})
}

// parseLimit returns 0, meaning the full table, unless raw is a positive integer.
func parseLimit(raw string) int {
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return 0
	}
	return n
}

// Rank returns a copy sorted by visit count, highest first. Ties keep their
// read order.
func Rank(records []model.PostalCodeRecord) []model.PostalCodeRecord {
	ranked := make([]model.PostalCodeRecord, len(records))
	copy(ranked, records)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].VisitCount > ranked[j].VisitCount
	})
	return ranked
}

// FormatTable left-justifies both columns to the widest cell, header included.
func FormatTable(records []model.PostalCodeRecord) string {
	visitWidth := utf8.RuneCountInString(HEADER_VISIT_COUNT)
	postalWidth := utf8.RuneCountInString(HEADER_POSTAL_CODE)
	for _, rec := range records {
		if w := len(strconv.FormatInt(rec.VisitCount, 10)); w > visitWidth {
			visitWidth = w
		}
		if w := utf8.RuneCountInString(rec.PostalCode.String()); w > postalWidth {
			postalWidth = w
		}
	}

	lines := make([]string, 0, len(records)+2)
	lines = append(lines,
		fmt.Sprintf("%-*s | %-*s", visitWidth, HEADER_VISIT_COUNT, postalWidth, HEADER_POSTAL_CODE),
		strings.Repeat("-", visitWidth)+"-+-"+strings.Repeat("-", postalWidth),
	)
	for _, rec := range records {
		lines = append(lines, fmt.Sprintf("%-*d | %-*s", visitWidth, rec.VisitCount, postalWidth, rec.PostalCode.String()))
	}
	return strings.Join(lines, "\n")
}

func jsonResponse(status StatusCode, payload map[string]string) Response {
	body, err := json.Marshal(payload)
	if err != nil {
		body = []byte(`{"error":"internal error"}`)
	}
	resp := Response{StatusCode: status, Body: string(body)}
	resp.Headers.Set("Content-Type", constant.CONTENT_TYPE_JSON)
	return resp
}
